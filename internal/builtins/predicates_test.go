package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

func TestTypePredicates(t *testing.T) {
	e := newEvaluator()
	tests := []struct {
		source string
		want   string
	}{
		{"(boolean? #t)", "#t"},
		{"(boolean? 1)", "#f"},
		{"(integer? 3)", "#t"},
		{"(integer? 3.5)", "#f"},
		{"(number? 3.5)", "#t"},
		{"(null? '())", "#t"},
		{"(null? (list 1))", "#f"},
		{"(pair? (cons 1 2))", "#t"},
		{"(pair? '())", "#f"},
		{"(procedure? car)", "#t"},
		{"(procedure? 5)", "#f"},
		{`(string? "hi")`, "#t"},
		{"(symbol? 'x)", "#t"},
		{`(char? #\a)`, "#t"},
		{"(vector? (vector 1))", "#t"},
		{"(list? (list 1 2))", "#t"},
		{"(list? (cons 1 2))", "#f"},
		{"(atom? 5)", "#t"},
		{"(atom? (cons 1 2))", "#f"},
		{"(input-port? 5)", "#f"},
		{"(output-port? 5)", "#f"},
		{"(eof-object? 5)", "#f"},
	}
	for _, tt := range tests {
		got := evalOne(t, e, tt.source)
		assert.Equal(t, tt.want, value.Write(got), tt.source)
	}
}
