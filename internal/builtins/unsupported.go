package builtins

import (
	"github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

// unsupportedBuiltIn and unsupportedSingleOperand build stand-ins for
// procedures this interpreter names but deliberately does not implement, so
// a user who calls one gets a clear UnsupportedOperation instead of falling
// through to NameNotFound.
func unsupportedBuiltIn(name string) func(value.Evaluator, []value.Value, *value.Frame) (value.Value, error) {
	return func(value.Evaluator, []value.Value, *value.Frame) (value.Value, error) {
		return nil, schemeerr.UnsupportedOperation(name)
	}
}

func unsupportedSingleOperand(name string) func(value.Evaluator, value.Value, *value.Frame) (value.Value, error) {
	return func(value.Evaluator, value.Value, *value.Frame) (value.Value, error) {
		return nil, schemeerr.UnsupportedOperation(name)
	}
}

// registerUnsupported installs the remaining procedures this interpreter
// recognizes by name but never implements: control operators needing
// first-class continuations, multiple return values, ports, and a
// REPL-only transcript facility.
func registerUnsupported(g *value.Frame) {
	names := []string{
		"call-with-current-continuation",
		"call/cc",
		"values",
		"call-with-values",
		"dynamic-wind",
		"scheme-report-environment",
		"null-environment",
		"interaction-environment",
		"transcript-on",
		"transcript-off",
		"call-with-input-file",
		"call-with-output-file",
		"current-input-port",
		"current-output-port",
		"with-input-from-file",
		"with-output-to-file",
		"open-input-file",
		"open-output-file",
		"close-input-port",
		"close-output-port",
		"read",
		"read-char",
		"peek-char",
		"char-ready?",
		"rationalize",
		"make-rectangular",
		"make-polar",
		"real-part",
		"imag-part",
		"magnitude",
		"angle",
	}
	for _, name := range names {
		bind(g, value.NewBuiltIn(name, unsupportedBuiltIn(name)))
	}
}
