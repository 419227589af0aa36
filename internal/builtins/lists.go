package builtins

import (
	"github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

func registerLists(g *value.Frame) {
	bind(g, value.NewBuiltIn("append", appendProc))
	bind(g, value.NewSingleOperandPrimitive("car", carProc))
	bind(g, value.NewSingleOperandPrimitive("cdr", cdrProc))
	bind(g, value.NewBuiltIn("cons", consProc))
	bind(g, value.NewSingleOperandPrimitive("length", lengthProc))
	bind(g, value.NewBuiltIn("map", mapProc))
	bind(g, value.NewBuiltIn("for-each", forEachProc))
	bind(g, value.NewBuiltIn("list", listProc))
	bind(g, value.NewBuiltIn("set-car!", setCarProc))
	bind(g, value.NewBuiltIn("set-cdr!", setCdrProc))
	bind(g, value.NewSingleOperandPrimitive("reverse", reverseProc))
	bind(g, value.NewBuiltIn("memq", memqProc))
	bind(g, value.NewBuiltIn("memv", memvProc))
	bind(g, value.NewBuiltIn("member", memberProc))
	bind(g, value.NewBuiltIn("assq", assqProc))
	bind(g, value.NewBuiltIn("assv", assvProc))
	bind(g, value.NewBuiltIn("assoc", assocProc))
}

func appendProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if len(operands) == 0 {
		return value.Nil, nil
	}
	var items []value.Value
	for _, op := range operands[:len(operands)-1] {
		chunk, err := asList("append", op)
		if err != nil {
			return nil, err
		}
		items = append(items, chunk...)
	}
	out := operands[len(operands)-1]
	for i := len(items) - 1; i >= 0; i-- {
		out = value.Cons(items[i], out)
	}
	return out, nil
}

func carProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	p, ok := operand.(*value.Pair)
	if !ok {
		return nil, schemeerr.OperandDeduce("unable to extract first element, %s is not a pair", value.Write(operand))
	}
	return p.First, nil
}

func cdrProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	p, ok := operand.(*value.Pair)
	if !ok {
		return nil, schemeerr.OperandDeduce("unable to extract rest, %s is not a pair", value.Write(operand))
	}
	return p.Rest, nil
}

func consProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("cons", 2, len(operands)); err != nil {
		return nil, err
	}
	return value.Cons(operands[0], operands[1]), nil
}

func lengthProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	items, err := asList("length", operand)
	if err != nil {
		return nil, err
	}
	return value.NewInt(int64(len(items))), nil
}

func mapProc(ev value.Evaluator, operands []value.Value, frame *value.Frame) (value.Value, error) {
	if err := verifyMin("map", 2, len(operands)); err != nil {
		return nil, err
	}
	callable, ok := operands[0].(value.Callable)
	if !ok {
		return nil, schemeerr.OperandDeduce("unable to call %s", value.Write(operands[0]))
	}
	lists := make([][]value.Value, len(operands)-1)
	for i, op := range operands[1:] {
		items, err := asList("map", op)
		if err != nil {
			return nil, err
		}
		if i > 0 && len(items) != len(lists[0]) {
			return nil, schemeerr.OperandDeduce("list arguments to map must all have the same length")
		}
		lists[i] = items
	}
	var out []value.Value
	n := 0
	if len(lists) > 0 {
		n = len(lists[0])
	}
	for i := 0; i < n; i++ {
		args := make([]value.Value, len(lists))
		for j := range lists {
			args[j] = lists[j][i]
		}
		v, err := ev.Apply(callable, args, frame, false)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return value.SliceToList(out), nil
}

func forEachProc(ev value.Evaluator, operands []value.Value, frame *value.Frame) (value.Value, error) {
	if _, err := mapProc(ev, operands, frame); err != nil {
		return nil, err
	}
	return value.Undefined, nil
}

func listProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	return value.SliceToList(operands), nil
}

func setCarProc(ev value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("set-car!", 2, len(operands)); err != nil {
		return nil, err
	}
	if ev.Fragile() {
		return nil, schemeerr.IrreversibleOperation("set-car!")
	}
	p, ok := operands[0].(*value.Pair)
	if !ok {
		return nil, schemeerr.OperandDeduce("set-car! expects a pair, received %s", value.Write(operands[0]))
	}
	p.First = operands[1]
	ev.RawOut("warning: set-car! mutates shared structure\n")
	return value.Undefined, nil
}

func setCdrProc(ev value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("set-cdr!", 2, len(operands)); err != nil {
		return nil, err
	}
	if ev.Fragile() {
		return nil, schemeerr.IrreversibleOperation("set-cdr!")
	}
	p, ok := operands[0].(*value.Pair)
	if !ok {
		return nil, schemeerr.OperandDeduce("set-cdr! expects a pair, received %s", value.Write(operands[0]))
	}
	p.Rest = operands[1]
	ev.RawOut("warning: set-cdr! mutates shared structure\n")
	return value.Undefined, nil
}

func reverseProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	items, err := asList("reverse", operand)
	if err != nil {
		return nil, err
	}
	var out value.Value = value.Nil
	for _, it := range items {
		out = value.Cons(it, out)
	}
	return out, nil
}

func searchList(who string, sequence value.Value, match func(value.Value) bool) (value.Value, error) {
	for {
		if value.IsNil(sequence) {
			return value.False, nil
		}
		p, ok := sequence.(*value.Pair)
		if !ok {
			return nil, schemeerr.OperandDeduce("%s expects a list as its second argument", who)
		}
		if match(p.First) {
			return p, nil
		}
		sequence = p.Rest
	}
}

func memqProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("memq", 2, len(operands)); err != nil {
		return nil, err
	}
	return searchList("memq", operands[1], func(v value.Value) bool { return value.Eq(operands[0], v) })
}

func memvProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("memv", 2, len(operands)); err != nil {
		return nil, err
	}
	return searchList("memv", operands[1], func(v value.Value) bool { return value.Eqv(operands[0], v) })
}

func memberProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("member", 2, len(operands)); err != nil {
		return nil, err
	}
	return searchList("member", operands[1], func(v value.Value) bool { return value.Equal(operands[0], v) })
}

func searchAssoc(who string, sequence value.Value, match func(value.Value) bool) (value.Value, error) {
	items, err := asList(who, sequence)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		p, ok := item.(*value.Pair)
		if !ok {
			return nil, schemeerr.OperandDeduce("association list expected a pair, received %s", value.Write(item))
		}
		if match(p.First) {
			return p, nil
		}
	}
	return value.False, nil
}

func assqProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("assq", 2, len(operands)); err != nil {
		return nil, err
	}
	return searchAssoc("assq", operands[1], func(v value.Value) bool { return value.Eq(operands[0], v) })
}

func assvProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("assv", 2, len(operands)); err != nil {
		return nil, err
	}
	return searchAssoc("assv", operands[1], func(v value.Value) bool { return value.Eqv(operands[0], v) })
}

func assocProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("assoc", 2, len(operands)); err != nil {
		return nil, err
	}
	return searchAssoc("assoc", operands[1], func(v value.Value) bool { return value.Equal(operands[0], v) })
}

func isListProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	if _, ok := operand.(*value.Pair); !ok {
		return value.False, nil
	}
	return value.Bool(value.IsProperList(operand)), nil
}
