package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

func TestEvalReEvaluatesAnExpression(t *testing.T) {
	e := newEvaluator()
	got := evalOne(t, e, `(define x 10) (eval (list '+ x 5))`)
	assert.Equal(t, "15", value.Write(got))
}

func TestApplySpreadsFinalListArgument(t *testing.T) {
	e := newEvaluator()
	got := evalOne(t, e, `(apply + 1 2 (list 3 4))`)
	assert.Equal(t, "10", value.Write(got))
}

func TestApplyRequiresACallableFirstArgument(t *testing.T) {
	e := newEvaluator()
	assert.Error(t, evalErr(t, e, `(apply 5 (list 1 2))`))
}

func TestErrorRaisesUserError(t *testing.T) {
	e := newEvaluator()
	err := evalErr(t, e, `(error "boom")`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
