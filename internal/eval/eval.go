// Package eval implements the evaluator and applicator: the component that
// walks an expression tree under a Frame and produces a Value, dispatching
// special forms, macros, and procedure application. A single struct holds
// configuration and hooks, with Eval/Apply as its two public entry points.
package eval

import (
	"github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"
	"github.com/amirkamil/cs61a-scheme-editor/internal/trace"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

// defaultRecursionLimit bounds non-tail Go-stack recursion before a
// RecursionLimit error is raised, well short of an actual stack overflow.
const defaultRecursionLimit = 8000

// Evaluator is the single evaluator/applicator instance for one program run.
// It satisfies value.Evaluator, the seam BuiltIns, special forms, and macros
// call back into.
type Evaluator struct {
	Config Config
	Hooks  trace.Hooks
	Global *value.Frame

	recursionLimit int
	depth          int
}

// New builds an Evaluator over a fresh global frame populated by register,
// which installs the primitive registry (e.g. internal/builtins), and then
// by this package's special forms (specialforms.go).
func New(register func(g *value.Frame), opts ...Option) *Evaluator {
	e := &Evaluator{
		Config:         DefaultConfig(),
		Hooks:          trace.NoOp{},
		Global:         value.NewGlobalFrame(),
		recursionLimit: defaultRecursionLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	if register != nil {
		register(e.Global)
	}
	e.registerSpecialForms(e.Global)
	return e
}

// cont is the internal continuation a combination dispatch hands back to the
// trampoline loop in Eval to request "keep evaluating, but with this new
// (expr, frame) pair, in tail position" instead of "here is the value."
type cont struct {
	expr  value.Value
	frame *value.Frame
}

// Eval evaluates expr under frame, in tail position when tail is true.
// The for loop is the trampoline that gives tail calls constant control
// state — a chain of special-form and procedure tail calls of arbitrary
// depth runs entirely inside this one loop, never recursing into Eval again.
func (e *Evaluator) Eval(expr value.Value, frame *value.Frame, tail bool) (value.Value, error) {
	e.depth++
	defer func() { e.depth-- }()
	if e.recursionLimit > 0 && e.depth > e.recursionLimit {
		return nil, schemeerr.RecursionLimit()
	}

	for {
		e.Hooks.OnEnter(expr, frame)
		result, next, err := e.step(expr, frame, tail)
		if err != nil {
			return nil, err
		}
		if next != nil {
			expr, frame = next.expr, next.frame
			tail = true
			continue
		}
		e.Hooks.OnComplete(expr, result)
		return result, nil
	}
}

// Tail implements value.Evaluator.Tail: hand a tail sub-expression back to
// whichever Eval loop invoked the special form calling this.
func (e *Evaluator) Tail(expr value.Value, frame *value.Frame) value.Value {
	return &value.TailSignal{Expr: expr, Frame: frame}
}

// RawOut implements value.Evaluator.RawOut by delegating to the hooks sink.
func (e *Evaluator) RawOut(text string) {
	e.Hooks.RawOut(text)
}

// Out implements value.Evaluator.Out by delegating to the hooks sink.
func (e *Evaluator) Out(v value.Value) {
	e.Hooks.Out(v)
}

// Fragile implements value.Evaluator.Fragile from the evaluator's own config.
func (e *Evaluator) Fragile() bool {
	return e.Config.Fragile
}

// step performs exactly one dispatch (self-evaluating / symbol / combination)
// and either returns a final value or a continuation for the trampoline.
func (e *Evaluator) step(expr value.Value, frame *value.Frame, tail bool) (value.Value, *cont, error) {
	switch v := expr.(type) {
	case *value.Symbol:
		result, err := frame.Lookup(v)
		return result, nil, err
	case *value.Pair:
		return e.evalCombination(v, frame, tail)
	default:
		// Number, Boolean, String, Character, Nil, Undefined, Vector,
		// Promise, Callable — all self-evaluating.
		return expr, nil, nil
	}
}

// evalCombination handles the Pair case: evaluate head, then dispatch on
// what it resolves to.
func (e *Evaluator) evalCombination(p *value.Pair, frame *value.Frame, tail bool) (value.Value, *cont, error) {
	opVal, err := e.Eval(p.First, frame, false)
	if err != nil {
		return nil, nil, err
	}

	switch op := opVal.(type) {
	case *value.SpecialForm:
		result, err := op.Fn(e, p.Rest, frame, tail)
		if err != nil {
			return nil, nil, err
		}
		if ts, ok := result.(*value.TailSignal); ok {
			return nil, &cont{ts.Expr, ts.Frame}, nil
		}
		return result, nil, nil

	case *value.Macro:
		rawOperands, err := value.ListToSlice(p.Rest)
		if err != nil {
			return nil, nil, err
		}
		expanded, err := e.expandMacro(op, rawOperands, frame)
		if err != nil {
			return nil, nil, err
		}
		if tail {
			return nil, &cont{expanded, frame}, nil
		}
		v, err := e.Eval(expanded, frame, false)
		return v, nil, err

	default:
		callable, ok := opVal.(value.Callable)
		if !ok {
			return nil, nil, schemeerr.CallableResolution("%s is not applicable", value.Write(opVal))
		}
		operands, err := e.evalOperands(p.Rest, frame)
		if err != nil {
			return nil, nil, err
		}
		e.Hooks.OnApply(callable, operands)
		return e.applyDispatch(callable, operands, frame, tail)
	}
}

// evalOperands evaluates a raw operand list left-to-right, non-tail, with
// no overlap between one operand's evaluation and the next's.
func (e *Evaluator) evalOperands(operandList value.Value, frame *value.Frame) ([]value.Value, error) {
	items, err := value.ListToSlice(operandList)
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, len(items))
	for i, it := range items {
		v, err := e.Eval(it, frame, false)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Apply implements value.Evaluator.Apply — the public entry point primitives
// like apply/eval/map use to invoke a callable directly. It always runs to
// completion, so it never returns a TailSignal outward: a tail continuation
// from a Procedure body is resolved by evaluating it here rather than
// propagated.
func (e *Evaluator) Apply(callable value.Callable, operands []value.Value, frame *value.Frame, tail bool) (value.Value, error) {
	e.Hooks.OnApply(callable, operands)
	result, next, err := e.applyDispatch(callable, operands, frame, false)
	if err != nil {
		return nil, err
	}
	if next != nil {
		return e.Eval(next.expr, next.frame, false)
	}
	return result, nil
}

// applyDispatch dispatches a callable by its concrete kind: BuiltIn,
// SingleOperandPrimitive, or Procedure (lambda/mu). It may return a
// continuation instead of a value when tail is true and the callable is a
// Procedure, letting the evaluator's own trampoline absorb the call.
func (e *Evaluator) applyDispatch(callable value.Callable, operands []value.Value, callerFrame *value.Frame, tail bool) (value.Value, *cont, error) {
	switch c := callable.(type) {
	case *value.BuiltIn:
		v, err := c.Fn(e, operands, callerFrame)
		return v, nil, err

	case *value.SingleOperandPrimitive:
		if len(operands) != 1 {
			return nil, nil, schemeerr.ArityError(c.Name, schemeerr.Arity{Min: 1, Max: 1}, len(operands))
		}
		v, err := c.Fn(e, operands[0], callerFrame)
		return v, nil, err

	case *value.Procedure:
		newFrame, err := e.bindProcedureParams(c, operands, callerFrame)
		if err != nil {
			return nil, nil, err
		}
		return e.evalBody(c.Body, newFrame, tail)

	default:
		return nil, nil, schemeerr.CallableResolution("%s is not applicable", value.Write(callable))
	}
}

// evalBody evaluates a procedure/macro body: every expression but the last
// runs to completion (non-tail); the last runs in tail context, which — when
// tail is true — becomes a continuation instead of a recursive Eval call.
func (e *Evaluator) evalBody(body []value.Value, frame *value.Frame, tail bool) (value.Value, *cont, error) {
	if len(body) == 0 {
		return value.Undefined, nil, nil
	}
	for _, expr := range body[:len(body)-1] {
		if _, err := e.Eval(expr, frame, false); err != nil {
			return nil, nil, err
		}
	}
	last := body[len(body)-1]
	if tail {
		return nil, &cont{last, frame}, nil
	}
	v, err := e.Eval(last, frame, true)
	return v, nil, err
}

// bindProcedureParams constructs the new frame for a procedure call:
// parent is the procedure's closure for lambda, the caller's frame for mu.
func (e *Evaluator) bindProcedureParams(proc *value.Procedure, operands []value.Value, callerFrame *value.Frame) (*value.Frame, error) {
	parent := proc.Closure
	if proc.IsMu {
		parent = callerFrame
	}
	return bindParams(proc.CallableName(), proc.Params, proc.Variadic, operands, parent)
}

// bindParams binds a parameter list (fixed names plus an optional variadic
// tail) against an operand slice into a fresh child frame, implementing the
// lambda/mu parameter grammar.
func bindParams(name string, params []*value.Symbol, variadic *value.Symbol, operands []value.Value, parent *value.Frame) (*value.Frame, error) {
	want := schemeerr.Arity{Min: len(params), Max: len(params)}
	if variadic != nil {
		want.Max = -1
	}
	if len(operands) < len(params) || (variadic == nil && len(operands) > len(params)) {
		return nil, schemeerr.ArityError(name, want, len(operands))
	}
	frame := value.NewChildFrame(parent, name)
	for i, p := range params {
		frame.Assign(p, operands[i])
	}
	if variadic != nil {
		frame.Assign(variadic, value.SliceToList(operands[len(params):]))
	}
	return frame, nil
}

// expandMacro binds parameters to the raw, unevaluated operand expressions,
// then evaluates the macro body to produce a new expression. The resulting
// expression is evaluated by the caller (evalCombination), in the caller's
// frame, in tail context.
func (e *Evaluator) expandMacro(m *value.Macro, rawOperands []value.Value, callerFrame *value.Frame) (value.Value, error) {
	frame, err := bindParams(m.Name, m.Params, m.Variadic, rawOperands, m.Closure)
	if err != nil {
		return nil, err
	}
	var result value.Value = value.Undefined
	for _, expr := range m.Body {
		v, err := e.Eval(expr, frame, false)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
