package builtins

import (
	"github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

func registerVectors(g *value.Frame) {
	bind(g, value.NewBuiltIn("make-vector", makeVectorProc))
	bind(g, value.NewBuiltIn("vector", vectorProc))
	bind(g, value.NewSingleOperandPrimitive("vector-length", vectorLengthProc))
	bind(g, value.NewBuiltIn("vector-ref", vectorRefProc))
	bind(g, value.NewBuiltIn("vector-set!", vectorSetProc))
	bind(g, value.NewBuiltIn("vector-fill!", vectorFillProc))
}

func makeVectorProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyRange("make-vector", 1, 2, len(operands)); err != nil {
		return nil, err
	}
	n, err := asInt("make-vector", operands[0])
	if err != nil {
		return nil, err
	}
	var fill value.Value = value.Undefined
	if len(operands) == 2 {
		fill = operands[1]
	}
	items := make([]value.Value, n)
	for i := range items {
		items[i] = fill
	}
	return value.NewVector(items), nil
}

func vectorProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	items := make([]value.Value, len(operands))
	copy(items, operands)
	return value.NewVector(items), nil
}

func vectorLengthProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	v, err := asVector("vector-length", operand)
	if err != nil {
		return nil, err
	}
	return value.NewInt(int64(len(v.Items))), nil
}

func vectorRefProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("vector-ref", 2, len(operands)); err != nil {
		return nil, err
	}
	v, err := asVector("vector-ref", operands[0])
	if err != nil {
		return nil, err
	}
	idx, err := asInt("vector-ref", operands[1])
	if err != nil {
		return nil, err
	}
	if err := checkInRange("vector-ref", idx, len(v.Items)); err != nil {
		return nil, err
	}
	return v.Items[idx], nil
}

func vectorSetProc(ev value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("vector-set!", 3, len(operands)); err != nil {
		return nil, err
	}
	if ev.Fragile() {
		return nil, schemeerr.IrreversibleOperation("vector-set!")
	}
	v, err := asVector("vector-set!", operands[0])
	if err != nil {
		return nil, err
	}
	idx, err := asInt("vector-set!", operands[1])
	if err != nil {
		return nil, err
	}
	if err := checkInRange("vector-set!", idx, len(v.Items)); err != nil {
		return nil, err
	}
	v.Items[idx] = operands[2]
	ev.RawOut("warning: vector-set! mutates shared structure\n")
	return value.Undefined, nil
}

func vectorFillProc(ev value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("vector-fill!", 2, len(operands)); err != nil {
		return nil, err
	}
	if ev.Fragile() {
		return nil, schemeerr.IrreversibleOperation("vector-fill!")
	}
	v, err := asVector("vector-fill!", operands[0])
	if err != nil {
		return nil, err
	}
	for i := range v.Items {
		v.Items[i] = operands[1]
	}
	ev.RawOut("warning: vector-fill! mutates shared structure\n")
	return value.Undefined, nil
}
