package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

func TestVectorConstructionAndAccess(t *testing.T) {
	e := newEvaluator()
	tests := []struct {
		source string
		want   string
	}{
		{"(vector 1 2 3)", "#(1 2 3)"},
		{"(make-vector 3 0)", "#(0 0 0)"},
		{"(vector-length (vector 1 2 3))", "3"},
		{"(vector-ref (vector 10 20 30) 1)", "20"},
	}
	for _, tt := range tests {
		got := evalOne(t, e, tt.source)
		assert.Equal(t, tt.want, value.Write(got), tt.source)
	}
}

func TestVectorSetMutatesInPlace(t *testing.T) {
	e := newEvaluator()
	got := evalOne(t, e, `
		(define v (vector 1 2 3))
		(vector-set! v 1 99)
		v
	`)
	assert.Equal(t, "#(1 99 3)", value.Write(got))
}

func TestVectorSetRejectedUnderFragileMode(t *testing.T) {
	e := newFragileEvaluator()
	assert.Error(t, evalErr(t, e, "(vector-set! (vector 1 2) 0 9)"))
}

func TestVectorFillReplacesAllElements(t *testing.T) {
	e := newEvaluator()
	got := evalOne(t, e, `
		(define v (vector 1 2 3))
		(vector-fill! v 7)
		v
	`)
	assert.Equal(t, "#(7 7 7)", value.Write(got))
}

func TestVectorRefOutOfRangeErrors(t *testing.T) {
	e := newEvaluator()
	assert.Error(t, evalErr(t, e, "(vector-ref (vector 1 2) 5)"))
}
