// Package schemeerr defines the typed error kinds signalled by the lexer,
// reader, environment, evaluator, and primitive library: one SchemeError
// struct tagged by Kind, carrying its formatted message plus an optional
// position, source, and offending value.
package schemeerr

import (
	"fmt"
	"strings"

	"github.com/amirkamil/cs61a-scheme-editor/internal/lexer"
)

// Kind tags the category of a Scheme error.
type Kind string

const (
	KindParseError            Kind = "ParseError"
	KindNameNotFound          Kind = "NameNotFound"
	KindArityError            Kind = "ArityError"
	KindOperandDeduce         Kind = "OperandDeduce"
	KindTypeMismatch          Kind = "TypeMismatch"
	KindCallableResolution    Kind = "CallableResolution"
	KindUnsupportedOperation  Kind = "UnsupportedOperation"
	KindIrreversibleOperation Kind = "IrreversibleOperation"
	KindLoadError             Kind = "LoadError"
	KindRecursionLimit        Kind = "RecursionLimit"
	KindUser                  Kind = "User"
)

// Printer renders a runtime value to its printed form for error messages.
// The value package's init supplies an implementation backed by its Write
// printer (printer_wiring.go); schemeerr stays free of a value-package import so that
// lexer/reader errors (which predate any Value) and evaluator errors (which
// need to print one) share the same error types.
type Printer interface {
	PrintValue(v any) string
}

// defaultPrinter falls back to fmt.Sprintf("%v", ...) when no Printer is
// wired in (e.g. lexer errors, which never carry a Value).
type defaultPrinter struct{}

func (defaultPrinter) PrintValue(v any) string { return fmt.Sprintf("%v", v) }

// ActivePrinter is overridden once by the value package's init so that every
// SchemeError formats offending values using the language's own printer
// instead of Go's %v. The indirection is a package-level variable rather than a
// constructor argument so that schemeerr need not import value.
var ActivePrinter Printer = defaultPrinter{}

// Position is the lexer/reader source position an error may be anchored to.
type Position = lexer.Position

// SchemeError is the single error type every Scheme error kind boxes itself
// into. Kind-specific constructors below build the Message field; callers
// that need to branch on kind use errors.As and inspect Kind.
type SchemeError struct {
	Kind     Kind
	Message  string
	Pos      Position
	Source   string // full source text, for caret rendering; empty if unknown
	File     string
	Cause    error
	Carried  any // the offending Scheme value, when the kind is User
}

func (e *SchemeError) Error() string {
	return e.Format(false)
}

func (e *SchemeError) Unwrap() error { return e.Cause }

// Format renders "<KIND>: <message>", optionally with a source-line-and-caret
// block beneath it when a position and source text are both known.
func (e *SchemeError) Format(color bool) string {
	var sb strings.Builder
	if e.File != "" {
		fmt.Fprintf(&sb, "%s: %s (%s:%s)", e.Kind, e.Message, e.File, e.Pos)
	} else if e.Pos.Line != 0 {
		fmt.Fprintf(&sb, "%s: %s (%s)", e.Kind, e.Message, e.Pos)
	} else {
		fmt.Fprintf(&sb, "%s: %s", e.Kind, e.Message)
	}

	if e.Source != "" && e.Pos.Line > 0 {
		line := sourceLine(e.Source, e.Pos.Line)
		if line != "" {
			sb.WriteString("\n")
			prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteString("\n")
			col := e.Pos.Column
			if col < 1 {
				col = 1
			}
			sb.WriteString(strings.Repeat(" ", len(prefix)+col-1))
			if color {
				sb.WriteString("\033[1;31m^\033[0m")
			} else {
				sb.WriteString("^")
			}
		}
	}

	return sb.String()
}

func sourceLine(source string, line int) string {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// New constructs a bare SchemeError of the given kind with no position.
func New(kind Kind, format string, args ...any) *SchemeError {
	return &SchemeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithPos attaches a source position (and, optionally, the full source and
// filename) so Format can render a caret. Returns the same error for
// chaining: schemeerr.New(...).WithPos(pos)
func (e *SchemeError) WithPos(pos Position) *SchemeError {
	e.Pos = pos
	return e
}

// WithSource attaches source text and a filename for caret rendering.
func (e *SchemeError) WithSource(source, file string) *SchemeError {
	e.Source = source
	e.File = file
	return e
}

// WithCause wraps an underlying error (e.g. an os.PathError from load).
func (e *SchemeError) WithCause(cause error) *SchemeError {
	e.Cause = cause
	return e
}

// --- Kind-specific constructors, one per error kind ---

func ParseError(format string, args ...any) *SchemeError {
	return New(KindParseError, format, args...)
}

func NameNotFound(name string) *SchemeError {
	return New(KindNameNotFound, "unbound name %q", name)
}

// ArityError reports an operand count outside an operator's declared arity.
// min == max means an exact arity; max < 0 means unbounded.
type Arity struct {
	Min, Max int
}

func ArityError(who string, want Arity, got int) *SchemeError {
	var wantStr string
	switch {
	case want.Max < 0 && want.Min <= 0:
		wantStr = "any number of arguments"
	case want.Max < 0:
		wantStr = fmt.Sprintf("at least %d argument(s)", want.Min)
	case want.Min == want.Max:
		wantStr = fmt.Sprintf("exactly %d argument(s)", want.Min)
	default:
		wantStr = fmt.Sprintf("between %d and %d arguments", want.Min, want.Max)
	}
	return New(KindArityError, "%s expected %s, received %d", who, wantStr, got)
}

func OperandDeduce(format string, args ...any) *SchemeError {
	return New(KindOperandDeduce, format, args...)
}

func TypeMismatch(format string, args ...any) *SchemeError {
	return New(KindTypeMismatch, format, args...)
}

func CallableResolution(format string, args ...any) *SchemeError {
	return New(KindCallableResolution, format, args...)
}

func UnsupportedOperation(name string) *SchemeError {
	return New(KindUnsupportedOperation, "%s is not supported", name)
}

func IrreversibleOperation(what string) *SchemeError {
	return New(KindIrreversibleOperation, "%s is not permitted in fragile mode", what)
}

func LoadError(format string, args ...any) *SchemeError {
	return New(KindLoadError, format, args...)
}

func RecursionLimit() *SchemeError {
	return New(KindRecursionLimit, "recursion depth exceeded the host control-stack budget")
}

// UserError wraps a value raised by Scheme code via (error x).
func UserError(value any) *SchemeError {
	e := New(KindUser, "%s", ActivePrinter.PrintValue(value))
	e.Carried = value
	return e
}
