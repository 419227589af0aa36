package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

func TestEqualityPrimitives(t *testing.T) {
	e := newEvaluator()
	tests := []struct {
		source string
		want   string
	}{
		{"(eq? 'a 'a)", "#t"},
		{"(eq? (list 1) (list 1))", "#f"},
		{"(eqv? 1 1)", "#t"},
		{"(eqv? 1 1.0)", "#f"},
		{`(equal? (list 1 "a") (list 1 "a"))`, "#t"},
		{"(equal? (vector 1 2) (vector 1 2))", "#t"},
	}
	for _, tt := range tests {
		got := evalOne(t, e, tt.source)
		assert.Equal(t, tt.want, value.Write(got), tt.source)
	}
}
