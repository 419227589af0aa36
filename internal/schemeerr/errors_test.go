package schemeerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatWithoutPosition(t *testing.T) {
	err := New(KindTypeMismatch, "expected %s, got %s", "number", "string")
	assert.Equal(t, "TypeMismatch: expected number, got string", err.Error())
}

func TestFormatWithPositionNoSource(t *testing.T) {
	err := ParseError("unexpected token").WithPos(Position{Line: 2, Column: 3})
	assert.Equal(t, "ParseError: unexpected token (2:3)", err.Error())
}

func TestFormatWithFile(t *testing.T) {
	err := ParseError("boom").WithPos(Position{Line: 1, Column: 1}).WithSource("(boom", "foo.scm")
	assert.Contains(t, err.Error(), "foo.scm:1:1")
}

func TestFormatCaretRendering(t *testing.T) {
	source := "(+ 1 )\n(oops"
	err := ParseError("unterminated list").WithPos(Position{Line: 2, Column: 1}).WithSource(source, "")
	got := err.Format(false)
	assert.Contains(t, got, "(oops")
	assert.Contains(t, got, "^")
}

func TestArityErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		want Arity
		got  int
		want2 string
	}{
		{"f", Arity{Min: 2, Max: 2}, 1, "exactly 2 argument(s)"},
		{"f", Arity{Min: 1, Max: -1}, 0, "at least 1 argument(s)"},
		{"f", Arity{Min: 1, Max: 3}, 5, "between 1 and 3 arguments"},
		{"f", Arity{Min: 0, Max: -1}, 5, "any number of arguments"},
	}
	for _, tt := range tests {
		err := ArityError(tt.name, tt.want, tt.got)
		assert.Contains(t, err.Error(), tt.want2)
	}
}

func TestNameNotFound(t *testing.T) {
	err := NameNotFound("x")
	assert.Equal(t, KindNameNotFound, err.Kind)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestUnsupportedOperation(t *testing.T) {
	err := UnsupportedOperation("call/cc")
	assert.Contains(t, err.Error(), "call/cc is not supported")
}

func TestIrreversibleOperation(t *testing.T) {
	err := IrreversibleOperation("set-car!")
	assert.Contains(t, err.Error(), "fragile mode")
}

func TestRecursionLimit(t *testing.T) {
	err := RecursionLimit()
	assert.Equal(t, KindRecursionLimit, err.Kind)
}

func TestWithCauseUnwraps(t *testing.T) {
	cause := errors.New("file not found")
	err := LoadError("could not load %s", "foo.scm").WithCause(cause)
	assert.Same(t, cause, errors.Unwrap(err))
}

func TestUserErrorUsesActivePrinter(t *testing.T) {
	prev := ActivePrinter
	defer func() { ActivePrinter = prev }()
	ActivePrinter = stubPrinter{}

	err := UserError("boom")
	assert.Equal(t, "User: <<boom>>", err.Error())
	assert.Equal(t, "boom", err.Carried)
}

func TestDefaultPrinterFallsBackToSprintf(t *testing.T) {
	prev := ActivePrinter
	defer func() { ActivePrinter = prev }()
	ActivePrinter = defaultPrinter{}

	err := UserError(42)
	assert.Equal(t, "User: 42", err.Error())
}

type stubPrinter struct{}

func (stubPrinter) PrintValue(v any) string { return "<<" + v.(string) + ">>" }

func TestSchemeErrorSatisfiesErrorInterface(t *testing.T) {
	var err error = New(KindUser, "whatever")
	require.Error(t, err)
}
