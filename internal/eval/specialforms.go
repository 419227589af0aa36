package eval

import (
	"fmt"

	"github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

// registerSpecialForms installs every special-form handler into g as an
// ordinary binding, pre-populating the global scope the way built-in
// procedures are. Handlers close over e directly (rather than relying
// solely on the ev parameter each receives at call time) so they can read
// e.Config — no-dotted and fragile mode affect parameter-list parsing,
// force, and load/load-all.
func (e *Evaluator) registerSpecialForms(g *value.Frame) {
	reg := func(name string, fn func(value.Evaluator, value.Value, *value.Frame, bool) (value.Value, error)) {
		g.Assign(value.Intern(name), &value.SpecialForm{Name: name, Fn: fn})
	}

	reg("quote", e.quoteForm)
	reg("if", e.ifForm)
	reg("cond", e.condForm)
	reg("case", e.caseForm)
	reg("and", e.andForm)
	reg("or", e.orForm)
	reg("begin", e.beginForm)
	reg("let", e.letForm)
	reg("let*", e.letStarForm)
	reg("define", e.defineForm)
	reg("define-macro", e.defineMacroForm)
	reg("set!", e.setForm)
	reg("lambda", e.lambdaForm)
	reg("mu", e.muForm)
	reg("delay", e.delayForm)
	reg("force", e.forceForm)
	reg("quasiquote", e.quasiquoteForm)
	reg("unquote", unquoteOutsideForm)
	reg("unquote-splicing", unquoteSplicingOutsideForm)
	reg("variadic", variadicOutsideForm)
	reg("expect", e.expectForm)
	reg("begin-noexcept", e.beginNoExceptForm)
	reg("load", e.loadForm)
	reg("load-all", e.loadAllForm)

	for _, name := range []string{"letrec", "do", "let-syntax", "letrec-syntax", "syntax-rules", "define-syntax"} {
		reg(name, unsupportedForm(name))
	}
}

// unsupportedForm builds a handler for a syntactic form this interpreter
// recognizes by name but does not implement, so a user who writes one gets
// a clear UnsupportedOperation instead of an unbound-name NameNotFound.
func unsupportedForm(name string) func(value.Evaluator, value.Value, *value.Frame, bool) (value.Value, error) {
	return func(value.Evaluator, value.Value, *value.Frame, bool) (value.Value, error) {
		return nil, schemeerr.UnsupportedOperation(name)
	}
}

// evalSequenceTail evaluates a body sequence: every expression but the last
// runs to completion; the last runs in tail context when tail is true.
func (e *Evaluator) evalSequenceTail(body []value.Value, frame *value.Frame, tail bool) (value.Value, error) {
	if len(body) == 0 {
		return value.Undefined, nil
	}
	for _, expr := range body[:len(body)-1] {
		if _, err := e.Eval(expr, frame, false); err != nil {
			return nil, err
		}
	}
	last := body[len(body)-1]
	if tail {
		return e.Tail(last, frame), nil
	}
	return e.Eval(last, frame, false)
}

func (e *Evaluator) quoteForm(_ value.Evaluator, operands value.Value, _ *value.Frame, _ bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil {
		return nil, err
	}
	if len(items) != 1 {
		return nil, schemeerr.ArityError("quote", schemeerr.Arity{Min: 1, Max: 1}, len(items))
	}
	return items[0], nil
}

func (e *Evaluator) ifForm(_ value.Evaluator, operands value.Value, frame *value.Frame, tail bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil {
		return nil, err
	}
	if len(items) < 2 || len(items) > 3 {
		return nil, schemeerr.ArityError("if", schemeerr.Arity{Min: 2, Max: 3}, len(items))
	}
	test, err := e.Eval(items[0], frame, false)
	if err != nil {
		return nil, err
	}
	if value.Truthy(test) {
		return e.evalSequenceTail(items[1:2], frame, tail)
	}
	if len(items) == 3 {
		return e.evalSequenceTail(items[2:3], frame, tail)
	}
	return value.Undefined, nil
}

func (e *Evaluator) condForm(_ value.Evaluator, operands value.Value, frame *value.Frame, tail bool) (value.Value, error) {
	clauses, err := value.ListToSlice(operands)
	if err != nil {
		return nil, err
	}
	for i, clauseVal := range clauses {
		items, err := value.ListToSlice(clauseVal)
		if err != nil || len(items) == 0 {
			return nil, schemeerr.OperandDeduce("malformed cond clause %s", value.Write(clauseVal))
		}
		var testVal value.Value
		if sym, ok := items[0].(*value.Symbol); ok && sym.Name == "else" {
			if i != len(clauses)-1 {
				return nil, schemeerr.OperandDeduce("cond: else clause must be last")
			}
			testVal = value.True
		} else {
			v, err := e.Eval(items[0], frame, false)
			if err != nil {
				return nil, err
			}
			if !value.Truthy(v) {
				continue
			}
			testVal = v
		}
		body := items[1:]
		if len(body) == 0 {
			return testVal, nil
		}
		return e.evalSequenceTail(body, frame, tail)
	}
	return value.Undefined, nil
}

func (e *Evaluator) caseForm(_ value.Evaluator, operands value.Value, frame *value.Frame, tail bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil || len(items) < 1 {
		return nil, schemeerr.ArityError("case", schemeerr.Arity{Min: 1, Max: -1}, len(items))
	}
	keyVal, err := e.Eval(items[0], frame, false)
	if err != nil {
		return nil, err
	}
	clauses := items[1:]
	for i, clauseVal := range clauses {
		clauseItems, err := value.ListToSlice(clauseVal)
		if err != nil || len(clauseItems) == 0 {
			return nil, schemeerr.OperandDeduce("malformed case clause %s", value.Write(clauseVal))
		}
		matched := false
		if sym, ok := clauseItems[0].(*value.Symbol); ok && sym.Name == "else" {
			if i != len(clauses)-1 {
				return nil, schemeerr.OperandDeduce("case: else clause must be last")
			}
			matched = true
		} else {
			datums, err := value.ListToSlice(clauseItems[0])
			if err != nil {
				return nil, schemeerr.OperandDeduce("malformed case datum list %s", value.Write(clauseItems[0]))
			}
			for _, d := range datums {
				if value.Eqv(keyVal, d) {
					matched = true
					break
				}
			}
		}
		if !matched {
			continue
		}
		body := clauseItems[1:]
		if len(body) == 0 {
			return keyVal, nil
		}
		return e.evalSequenceTail(body, frame, tail)
	}
	return value.Undefined, nil
}

func (e *Evaluator) andForm(_ value.Evaluator, operands value.Value, frame *value.Frame, tail bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return value.True, nil
	}
	for _, it := range items[:len(items)-1] {
		v, err := e.Eval(it, frame, false)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(v) {
			return v, nil
		}
	}
	return e.evalSequenceTail(items[len(items)-1:], frame, tail)
}

func (e *Evaluator) orForm(_ value.Evaluator, operands value.Value, frame *value.Frame, tail bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return value.False, nil
	}
	for _, it := range items[:len(items)-1] {
		v, err := e.Eval(it, frame, false)
		if err != nil {
			return nil, err
		}
		if value.Truthy(v) {
			return v, nil
		}
	}
	return e.evalSequenceTail(items[len(items)-1:], frame, tail)
}

func (e *Evaluator) beginForm(_ value.Evaluator, operands value.Value, frame *value.Frame, tail bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, schemeerr.ArityError("begin", schemeerr.Arity{Min: 1, Max: -1}, 0)
	}
	return e.evalSequenceTail(items, frame, tail)
}

func (e *Evaluator) letForm(_ value.Evaluator, operands value.Value, frame *value.Frame, tail bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil || len(items) < 1 {
		return nil, schemeerr.OperandDeduce("malformed let")
	}
	bindings, err := value.ListToSlice(items[0])
	if err != nil {
		return nil, schemeerr.OperandDeduce("malformed let bindings")
	}

	names := make([]*value.Symbol, 0, len(bindings))
	vals := make([]value.Value, 0, len(bindings))
	seen := map[*value.Symbol]bool{}
	for _, b := range bindings {
		bi, err := value.ListToSlice(b)
		if err != nil || len(bi) != 2 {
			return nil, schemeerr.OperandDeduce("malformed let binding %s", value.Write(b))
		}
		name, ok := bi[0].(*value.Symbol)
		if !ok {
			return nil, schemeerr.OperandDeduce("let binding name must be a symbol")
		}
		if seen[name] {
			return nil, schemeerr.OperandDeduce("duplicate let binding name %q", name.Name)
		}
		seen[name] = true
		v, err := e.Eval(bi[1], frame, false)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		vals = append(vals, v)
	}

	newFrame := value.NewChildFrame(frame, "let")
	for i, n := range names {
		newFrame.Assign(n, vals[i])
	}
	return e.evalSequenceTail(items[1:], newFrame, tail)
}

func (e *Evaluator) letStarForm(_ value.Evaluator, operands value.Value, frame *value.Frame, tail bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil || len(items) < 1 {
		return nil, schemeerr.OperandDeduce("malformed let*")
	}
	bindings, err := value.ListToSlice(items[0])
	if err != nil {
		return nil, schemeerr.OperandDeduce("malformed let* bindings")
	}

	cur := frame
	for _, b := range bindings {
		bi, err := value.ListToSlice(b)
		if err != nil || len(bi) != 2 {
			return nil, schemeerr.OperandDeduce("malformed let* binding %s", value.Write(b))
		}
		name, ok := bi[0].(*value.Symbol)
		if !ok {
			return nil, schemeerr.OperandDeduce("let* binding name must be a symbol")
		}
		v, err := e.Eval(bi[1], cur, false)
		if err != nil {
			return nil, err
		}
		cur = value.NewChildFrame(cur, "let*")
		cur.Assign(name, v)
	}
	if len(bindings) == 0 {
		cur = value.NewChildFrame(frame, "let*")
	}
	return e.evalSequenceTail(items[1:], cur, tail)
}

func (e *Evaluator) defineForm(_ value.Evaluator, operands value.Value, frame *value.Frame, _ bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil || len(items) < 1 {
		return nil, schemeerr.OperandDeduce("malformed define")
	}
	switch head := items[0].(type) {
	case *value.Symbol:
		if len(items) > 2 {
			return nil, schemeerr.ArityError("define", schemeerr.Arity{Min: 1, Max: 2}, len(items))
		}
		val := value.Undefined
		if len(items) == 2 {
			v, err := e.Eval(items[1], frame, false)
			if err != nil {
				return nil, err
			}
			val = v
		}
		frame.Assign(head, val)
		return value.Undefined, nil

	case *value.Pair:
		nameSym, ok := head.First.(*value.Symbol)
		if !ok {
			return nil, schemeerr.OperandDeduce("define: procedure name must be a symbol")
		}
		params, variadic, err := e.parseParamList(head.Rest)
		if err != nil {
			return nil, err
		}
		proc := &value.Procedure{Name: nameSym.Name, Params: params, Variadic: variadic, Body: items[1:], Closure: frame}
		frame.Assign(nameSym, proc)
		return value.Undefined, nil

	default:
		return nil, schemeerr.OperandDeduce("malformed define target %s", value.Write(items[0]))
	}
}

func (e *Evaluator) defineMacroForm(_ value.Evaluator, operands value.Value, frame *value.Frame, _ bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil || len(items) < 1 {
		return nil, schemeerr.OperandDeduce("malformed define-macro")
	}
	head, ok := items[0].(*value.Pair)
	if !ok {
		return nil, schemeerr.OperandDeduce("define-macro requires a (name params...) head")
	}
	nameSym, ok := head.First.(*value.Symbol)
	if !ok {
		return nil, schemeerr.OperandDeduce("define-macro: macro name must be a symbol")
	}
	params, variadic, err := e.parseParamList(head.Rest)
	if err != nil {
		return nil, err
	}
	macro := &value.Macro{Name: nameSym.Name, Params: params, Variadic: variadic, Body: items[1:], Closure: frame}
	frame.Assign(nameSym, macro)
	return value.Undefined, nil
}

func (e *Evaluator) setForm(_ value.Evaluator, operands value.Value, frame *value.Frame, _ bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil || len(items) != 2 {
		return nil, schemeerr.ArityError("set!", schemeerr.Arity{Min: 2, Max: 2}, len(items))
	}
	name, ok := items[0].(*value.Symbol)
	if !ok {
		return nil, schemeerr.OperandDeduce("set! target must be a symbol")
	}
	v, err := e.Eval(items[1], frame, false)
	if err != nil {
		return nil, err
	}
	if err := frame.Mutate(name, v); err != nil {
		return nil, err
	}
	return value.Undefined, nil
}

func (e *Evaluator) lambdaForm(_ value.Evaluator, operands value.Value, frame *value.Frame, _ bool) (value.Value, error) {
	return e.buildProcedure("lambda", operands, frame, false)
}

func (e *Evaluator) muForm(_ value.Evaluator, operands value.Value, frame *value.Frame, _ bool) (value.Value, error) {
	return e.buildProcedure("mu", operands, frame, true)
}

func (e *Evaluator) buildProcedure(name string, operands value.Value, frame *value.Frame, isMu bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil || len(items) < 1 {
		return nil, schemeerr.OperandDeduce("malformed %s", name)
	}
	params, variadic, err := e.parseParamList(items[0])
	if err != nil {
		return nil, err
	}
	closure := frame
	if isMu {
		closure = nil
	}
	return &value.Procedure{Name: name, Params: params, Variadic: variadic, Body: items[1:], Closure: closure, IsMu: isMu}, nil
}

func (e *Evaluator) delayForm(_ value.Evaluator, operands value.Value, frame *value.Frame, _ bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil || len(items) != 1 {
		return nil, schemeerr.ArityError("delay", schemeerr.Arity{Min: 1, Max: 1}, len(items))
	}
	return value.NewPromise(items[0], frame), nil
}

// forceForm implements force, including the fragile-mode rejection and a
// no-dotted-mode result-shape restriction preserved only in that mode.
func (e *Evaluator) forceForm(_ value.Evaluator, operands value.Value, frame *value.Frame, _ bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil || len(items) != 1 {
		return nil, schemeerr.ArityError("force", schemeerr.Arity{Min: 1, Max: 1}, len(items))
	}
	if e.Config.Fragile {
		return nil, schemeerr.IrreversibleOperation("force")
	}
	target, err := e.Eval(items[0], frame, false)
	if err != nil {
		return nil, err
	}
	promise, ok := target.(*value.Promise)
	if !ok {
		return nil, schemeerr.TypeMismatch("force expects a promise, received %s", value.Write(target))
	}
	if !promise.Forced {
		v, err := e.Eval(promise.Expr, promise.Frame, false)
		if err != nil {
			return nil, err
		}
		if !e.Config.Dotted && !value.IsNil(v) {
			if _, ok := v.(*value.Pair); !ok {
				return nil, schemeerr.TypeMismatch("force result must be a pair or the empty list in no-dotted mode, received %s", value.Write(v))
			}
		}
		promise.Cached = v
		promise.Forced = true
	}
	return promise.Cached, nil
}

func (e *Evaluator) expectForm(_ value.Evaluator, operands value.Value, frame *value.Frame, _ bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil || len(items) != 2 {
		return nil, schemeerr.ArityError("expect", schemeerr.Arity{Min: 2, Max: 2}, len(items))
	}
	caseVal, err := e.Eval(items[0], frame, false)
	if err != nil {
		return nil, err
	}
	expectedVal, err := e.Eval(items[1], frame, false)
	if err != nil {
		return nil, err
	}
	status := "ok"
	if !value.Equal(caseVal, expectedVal) {
		status = "FAIL"
	}
	e.Hooks.RawOut(fmt.Sprintf("%s: %s => %s (expected %s)\n", status, value.Write(items[0]), value.Write(caseVal), value.Write(expectedVal)))
	return value.Undefined, nil
}

func (e *Evaluator) beginNoExceptForm(_ value.Evaluator, operands value.Value, frame *value.Frame, _ bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil {
		return nil, err
	}
	return e.evalNoExcept(items, frame), nil
}

// parseParamList implements the parameter grammar: a proper list of
// distinct symbols, a dotted "(p1 p2 . rest)" tail, or — in no-dotted mode
// — a proper list whose final element is the "(variadic name)" wrapper.
func (e *Evaluator) parseParamList(paramsExpr value.Value) ([]*value.Symbol, *value.Symbol, error) {
	var params []*value.Symbol
	cur := paramsExpr
	for {
		if value.IsNil(cur) {
			return params, nil, nil
		}
		if sym, ok := cur.(*value.Symbol); ok {
			if !e.Config.Dotted {
				return nil, nil, schemeerr.OperandDeduce("dotted parameter lists are disabled")
			}
			return params, sym, nil
		}
		pair, ok := cur.(*value.Pair)
		if !ok {
			return nil, nil, schemeerr.OperandDeduce("malformed parameter list")
		}
		if wrapper, ok := pair.First.(*value.Pair); ok {
			if wrapperItems, err := value.ListToSlice(wrapper); err == nil && len(wrapperItems) == 2 {
				if headSym, ok := wrapperItems[0].(*value.Symbol); ok && headSym.Name == "variadic" {
					nameSym, ok := wrapperItems[1].(*value.Symbol)
					if !ok {
						return nil, nil, schemeerr.OperandDeduce("malformed variadic parameter wrapper")
					}
					if !value.IsNil(pair.Rest) {
						return nil, nil, schemeerr.OperandDeduce("variadic parameter must be the last in the list")
					}
					return params, nameSym, nil
				}
			}
		}
		sym, ok := pair.First.(*value.Symbol)
		if !ok {
			return nil, nil, schemeerr.OperandDeduce("parameter must be a symbol")
		}
		for _, p := range params {
			if p == sym {
				return nil, nil, schemeerr.OperandDeduce("duplicate parameter %s", sym.Name)
			}
		}
		params = append(params, sym)
		cur = pair.Rest
	}
}

func unquoteOutsideForm(value.Evaluator, value.Value, *value.Frame, bool) (value.Value, error) {
	return nil, schemeerr.CallableResolution("unquote used outside quasiquote")
}

func unquoteSplicingOutsideForm(value.Evaluator, value.Value, *value.Frame, bool) (value.Value, error) {
	return nil, schemeerr.CallableResolution("unquote-splicing used outside a list template")
}

func variadicOutsideForm(value.Evaluator, value.Value, *value.Frame, bool) (value.Value, error) {
	return nil, schemeerr.CallableResolution("variadic used outside a parameter list")
}
