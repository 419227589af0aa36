package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirkamil/cs61a-scheme-editor/internal/builtins"
	"github.com/amirkamil/cs61a-scheme-editor/internal/eval"
	"github.com/amirkamil/cs61a-scheme-editor/internal/lexer"
	"github.com/amirkamil/cs61a-scheme-editor/internal/reader"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

func newEvaluator() *eval.Evaluator {
	return eval.New(builtins.Register)
}

func newFragileEvaluator() *eval.Evaluator {
	return eval.New(builtins.Register, eval.WithFragile(true))
}

func evalOne(t *testing.T, e *eval.Evaluator, source string) value.Value {
	t.Helper()
	lex := lexer.New(source)
	r := reader.New(lex, source, "<test>", reader.Config{Dotted: e.Config.Dotted})
	datums, err := r.ReadProgram()
	require.NoError(t, err)
	var result value.Value = value.Undefined
	for _, d := range datums {
		result, err = e.Eval(d, e.Global, false)
		require.NoError(t, err)
	}
	return result
}

func evalErr(t *testing.T, e *eval.Evaluator, source string) error {
	t.Helper()
	lex := lexer.New(source)
	r := reader.New(lex, source, "<test>", reader.Config{Dotted: e.Config.Dotted})
	datums, err := r.ReadProgram()
	require.NoError(t, err)
	for _, d := range datums {
		if _, err := e.Eval(d, e.Global, false); err != nil {
			return err
		}
	}
	return nil
}

func TestArithmeticBasics(t *testing.T) {
	e := newEvaluator()
	tests := []struct {
		source string
		want   string
	}{
		{"(+ 1 2 3)", "6"},
		{"(+)", "0"},
		{"(- 10 3 2)", "5"},
		{"(- 5)", "-5"},
		{"(* 2 3 4)", "24"},
		{"(*)", "1"},
		{"(/ 10 2)", "5."},
		{"(/ 1 3)", "0.3333333333333333"},
		{"(abs -5)", "5"},
		{"(abs 5)", "5"},
		{"(expt 2 10)", "1024"},
		{"(modulo 7 3)", "1"},
		{"(modulo -7 3)", "2"},
		{"(quotient 7 3)", "2"},
		{"(remainder -7 3)", "-1"},
		{"(gcd 12 18)", "6"},
		{"(lcm 4 6)", "12"},
		{"(max 1 5 3)", "5"},
		{"(min 1 5 3)", "1"},
		{"(round 2.5)", "2."},
		{"(not #f)", "#t"},
		{"(not 3)", "#f"},
	}
	for _, tt := range tests {
		got := evalOne(t, e, tt.source)
		assert.Equal(t, tt.want, value.Write(got), tt.source)
	}
}

func TestArithmeticComparisons(t *testing.T) {
	e := newEvaluator()
	tests := []struct {
		source string
		want   string
	}{
		{"(= 1 1 1)", "#t"},
		{"(= 1 2)", "#f"},
		{"(< 1 2 3)", "#t"},
		{"(< 1 3 2)", "#f"},
		{"(<= 1 1 2)", "#t"},
		{"(> 3 2 1)", "#t"},
		{"(>= 3 3 2)", "#t"},
		{"(even? 4)", "#t"},
		{"(odd? 4)", "#f"},
		{"(zero? 0)", "#t"},
		{"(positive? 1)", "#t"},
		{"(negative? -1)", "#t"},
		{"(exact? 1)", "#t"},
		{"(exact? 1.0)", "#f"},
		{"(inexact? 1.0)", "#t"},
	}
	for _, tt := range tests {
		got := evalOne(t, e, tt.source)
		assert.Equal(t, tt.want, value.Write(got), tt.source)
	}
}

func TestDivisionByZeroErrors(t *testing.T) {
	e := newEvaluator()
	err := evalErr(t, e, "(/ 1 0)")
	assert.Error(t, err)
}

func TestSqrtExactnessPropagation(t *testing.T) {
	e := newEvaluator()
	got := evalOne(t, e, "(sqrt 4)")
	assert.Equal(t, "2", value.Write(got))
}
