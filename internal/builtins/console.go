package builtins

import (
	"github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

// registerConsole installs the program-output procedures. Each writes
// through the evaluator's hooks sink rather than directly to stdout, so a
// caller running under trace.Recording (tests, for example)
// sees the same output a live run would produce.
func registerConsole(g *value.Frame) {
	bind(g, value.NewBuiltIn("write", writeProc))
	bind(g, value.NewBuiltIn("display", displayProc))
	bind(g, value.NewBuiltIn("newline", newlineProc))
	bind(g, value.NewBuiltIn("write-char", writeCharProc))
}

func writeProc(ev value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if len(operands) == 2 {
		return nil, schemeerr.UnsupportedOperation("write to a port")
	}
	if err := verifyExact("write", 1, len(operands)); err != nil {
		return nil, err
	}
	ev.Out(operands[0])
	return value.Undefined, nil
}

func displayProc(ev value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if len(operands) == 2 {
		return nil, schemeerr.UnsupportedOperation("display to a port")
	}
	if err := verifyExact("display", 1, len(operands)); err != nil {
		return nil, err
	}
	switch v := operands[0].(type) {
	case *value.String:
		ev.RawOut(v.Go())
	case *value.Character:
		ev.RawOut(string(v.Rune))
	default:
		ev.Out(v)
	}
	return value.Undefined, nil
}

func newlineProc(ev value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("newline", 0, len(operands)); err != nil {
		return nil, err
	}
	ev.RawOut("\n")
	return value.Undefined, nil
}

func writeCharProc(ev value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("write-char", 1, len(operands)); err != nil {
		return nil, err
	}
	c, err := asCharacter("write-char", operands[0])
	if err != nil {
		return nil, err
	}
	ev.RawOut(string(c.Rune))
	return value.Undefined, nil
}
