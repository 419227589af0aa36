package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirkamil/cs61a-scheme-editor/internal/builtins"
	"github.com/amirkamil/cs61a-scheme-editor/internal/lexer"
	"github.com/amirkamil/cs61a-scheme-editor/internal/reader"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

func newTestEvaluator(opts ...Option) *Evaluator {
	return New(builtins.Register, opts...)
}

// evalSource reads and evaluates every top-level form in source, returning
// the last result.
func evalSource(t *testing.T, e *Evaluator, source string) (value.Value, error) {
	t.Helper()
	lex := lexer.New(source)
	r := reader.New(lex, source, "<test>", reader.Config{Dotted: e.Config.Dotted})
	datums, err := r.ReadProgram()
	require.NoError(t, err)
	var result value.Value = value.Undefined
	for _, d := range datums {
		result, err = e.Eval(d, e.Global, false)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func mustEval(t *testing.T, e *Evaluator, source string) value.Value {
	t.Helper()
	v, err := evalSource(t, e, source)
	require.NoError(t, err)
	return v
}

func TestSelfEvaluatingForms(t *testing.T) {
	e := newTestEvaluator()
	tests := []struct {
		source string
		want   string
	}{
		{"42", "42"},
		{"#t", "#t"},
		{`"hi"`, `"hi"`},
		{`#\a`, `#\a`},
	}
	for _, tt := range tests {
		got := mustEval(t, e, tt.source)
		assert.Equal(t, tt.want, value.Write(got), tt.source)
	}
}

func TestDefineAndLookup(t *testing.T) {
	e := newTestEvaluator()
	mustEval(t, e, "(define x 10)")
	got := mustEval(t, e, "x")
	assert.Equal(t, "10", value.Write(got))
}

func TestDefineProcedureShorthand(t *testing.T) {
	e := newTestEvaluator()
	mustEval(t, e, "(define (square x) (* x x))")
	got := mustEval(t, e, "(square 5)")
	assert.Equal(t, "25", value.Write(got))
}

func TestLambdaClosure(t *testing.T) {
	e := newTestEvaluator()
	got := mustEval(t, e, `
		(define (make-adder n) (lambda (x) (+ x n)))
		(define add5 (make-adder 5))
		(add5 10)
	`)
	assert.Equal(t, "15", value.Write(got))
}

func TestIfBranches(t *testing.T) {
	e := newTestEvaluator()
	assert.Equal(t, "yes", value.Write(mustEval(t, e, `(if #t "yes" "no")`)))
	assert.Equal(t, "no", value.Write(mustEval(t, e, `(if #f "yes" "no")`)))
}

func TestCondElse(t *testing.T) {
	e := newTestEvaluator()
	got := mustEval(t, e, `(cond (#f 1) (#f 2) (else 3))`)
	assert.Equal(t, "3", value.Write(got))
}

func TestCaseMatchesDatum(t *testing.T) {
	e := newTestEvaluator()
	got := mustEval(t, e, `(case (* 2 3) ((2 3 5 7) "prime") ((1 4 6 8 9) "composite") (else "other"))`)
	assert.Equal(t, `"composite"`, value.Write(got))
}

func TestAndOrShortCircuit(t *testing.T) {
	e := newTestEvaluator()
	assert.Equal(t, "#f", value.Write(mustEval(t, e, `(and 1 2 #f 3)`)))
	assert.Equal(t, "3", value.Write(mustEval(t, e, `(or #f #f 3)`)))
	assert.Equal(t, "#t", value.Write(mustEval(t, e, `(and)`)))
	assert.Equal(t, "#f", value.Write(mustEval(t, e, `(or)`)))
}

func TestLetBindsInNewFrame(t *testing.T) {
	e := newTestEvaluator()
	got := mustEval(t, e, `(let ((x 1) (y 2)) (+ x y))`)
	assert.Equal(t, "3", value.Write(got))
}

func TestLetStarSeesEarlierBindings(t *testing.T) {
	e := newTestEvaluator()
	got := mustEval(t, e, `(let* ((x 1) (y (+ x 1))) y)`)
	assert.Equal(t, "2", value.Write(got))
}

func TestSetMutatesExistingBinding(t *testing.T) {
	e := newTestEvaluator()
	got := mustEval(t, e, `(define x 1) (set! x 2) x`)
	assert.Equal(t, "2", value.Write(got))
}

func TestSetUnboundFails(t *testing.T) {
	e := newTestEvaluator()
	_, err := evalSource(t, e, `(set! nope 1)`)
	assert.Error(t, err)
}

func TestVariadicLambda(t *testing.T) {
	e := newTestEvaluator()
	got := mustEval(t, e, `(define (f . args) args) (f 1 2 3)`)
	assert.Equal(t, "(1 2 3)", value.Write(got))
}

func TestMuDynamicScope(t *testing.T) {
	e := newTestEvaluator()
	got := mustEval(t, e, `
		(define f (mu () x))
		(define (g) (define x 42) (f))
		(g)
	`)
	assert.Equal(t, "42", value.Write(got))
}

func TestDeepTailRecursionDoesNotOverflow(t *testing.T) {
	e := newTestEvaluator(WithRecursionLimit(200))
	got := mustEval(t, e, `
		(define (loop n acc) (if (= n 0) acc (loop (- n 1) (+ acc 1))))
		(loop 100000 0)
	`)
	assert.Equal(t, "100000", value.Write(got))
}

func TestNonTailRecursionHitsRecursionLimit(t *testing.T) {
	e := newTestEvaluator(WithRecursionLimit(50))
	_, err := evalSource(t, e, `
		(define (count n) (if (= n 0) 0 (+ 1 (count (- n 1)))))
		(count 10000)
	`)
	require.Error(t, err)
}

func TestArityErrorOnLambdaCall(t *testing.T) {
	e := newTestEvaluator()
	_, err := evalSource(t, e, `(define (f x y) (+ x y)) (f 1)`)
	require.Error(t, err)
}

func TestUnboundNameError(t *testing.T) {
	e := newTestEvaluator()
	_, err := evalSource(t, e, `undefined-name`)
	require.Error(t, err)
}

func TestApplyingNonCallableErrors(t *testing.T) {
	e := newTestEvaluator()
	_, err := evalSource(t, e, `(1 2 3)`)
	require.Error(t, err)
}

func TestDefineMacro(t *testing.T) {
	e := newTestEvaluator()
	got := mustEval(t, e, `
		(define-macro (my-if c t f) (list 'cond (list c t) (list 'else f)))
		(my-if #t 1 2)
	`)
	assert.Equal(t, "1", value.Write(got))
}

func TestDelayForceMemoizes(t *testing.T) {
	e := newTestEvaluator()
	got := mustEval(t, e, `
		(define calls 0)
		(define p (delay (begin (set! calls (+ calls 1)) calls)))
		(force p)
		(force p)
		calls
	`)
	assert.Equal(t, "1", value.Write(got))
}

func TestForceRejectedUnderFragileMode(t *testing.T) {
	e := newTestEvaluator(WithFragile(true))
	_, err := evalSource(t, e, `(force (delay 1))`)
	require.Error(t, err)
}

func TestDottedParamListDisabledRejectsVariadic(t *testing.T) {
	e := newTestEvaluator(WithDotted(false))
	_, err := evalSource(t, e, `(define (f . args) args)`)
	assert.Error(t, err)
}

func TestQuoteReturnsUnevaluated(t *testing.T) {
	e := newTestEvaluator()
	got := mustEval(t, e, `(quote (+ 1 2))`)
	assert.Equal(t, "(+ 1 2)", value.Write(got))
}

func TestApplyPublicEntryPoint(t *testing.T) {
	e := newTestEvaluator()
	mustEval(t, e, `(define (add a b) (+ a b))`)
	proc, err := e.Global.Lookup(value.Intern("add"))
	require.NoError(t, err)
	callable := proc.(value.Callable)
	result, err := e.Apply(callable, []value.Value{value.NewInt(2), value.NewInt(3)}, e.Global, false)
	require.NoError(t, err)
	assert.Equal(t, "5", value.Write(result))
}
