package builtins

import "github.com/amirkamil/cs61a-scheme-editor/internal/value"

func registerPredicates(g *value.Frame) {
	bind(g, value.NewSingleOperandPrimitive("atom?", isAtomProc))
	bind(g, value.NewSingleOperandPrimitive("boolean?", typePredicate(func(v value.Value) bool { _, ok := v.(*value.Boolean); return ok })))
	bind(g, value.NewSingleOperandPrimitive("integer?", isIntegerProc))
	bind(g, value.NewSingleOperandPrimitive("number?", typePredicate(func(v value.Value) bool { _, ok := v.(*value.Number); return ok })))
	bind(g, value.NewSingleOperandPrimitive("complex?", typePredicate(func(v value.Value) bool { _, ok := v.(*value.Number); return ok })))
	bind(g, value.NewSingleOperandPrimitive("real?", typePredicate(func(v value.Value) bool { _, ok := v.(*value.Number); return ok })))
	bind(g, value.NewSingleOperandPrimitive("rational?", isIntegerProc))
	bind(g, value.NewSingleOperandPrimitive("null?", typePredicate(value.IsNil)))
	bind(g, value.NewSingleOperandPrimitive("pair?", typePredicate(func(v value.Value) bool { _, ok := v.(*value.Pair); return ok })))
	bind(g, value.NewSingleOperandPrimitive("procedure?", isProcedureProc))
	bind(g, value.NewSingleOperandPrimitive("string?", typePredicate(func(v value.Value) bool { _, ok := v.(*value.String); return ok })))
	bind(g, value.NewSingleOperandPrimitive("symbol?", typePredicate(func(v value.Value) bool { _, ok := v.(*value.Symbol); return ok })))
	bind(g, value.NewSingleOperandPrimitive("char?", typePredicate(func(v value.Value) bool { _, ok := v.(*value.Character); return ok })))
	bind(g, value.NewSingleOperandPrimitive("vector?", typePredicate(func(v value.Value) bool { _, ok := v.(*value.Vector); return ok })))
	bind(g, value.NewSingleOperandPrimitive("list?", isListProc))
	bind(g, value.NewSingleOperandPrimitive("input-port?", alwaysFalse))
	bind(g, value.NewSingleOperandPrimitive("output-port?", alwaysFalse))
	bind(g, value.NewSingleOperandPrimitive("eof-object?", alwaysFalse))
}

func typePredicate(pred func(value.Value) bool) func(value.Evaluator, value.Value, *value.Frame) (value.Value, error) {
	return func(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
		return value.Bool(pred(operand)), nil
	}
}

func alwaysFalse(_ value.Evaluator, _ value.Value, _ *value.Frame) (value.Value, error) {
	return value.False, nil
}

func isAtomProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	switch operand.(type) {
	case *value.Boolean, *value.Number, *value.Symbol:
		return value.True, nil
	}
	if value.IsNil(operand) {
		return value.True, nil
	}
	return value.False, nil
}

func isIntegerProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	n, ok := operand.(*value.Number)
	if !ok {
		return value.False, nil
	}
	return value.Bool(n.Exact), nil
}

func isProcedureProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	switch operand.(type) {
	case *value.Procedure, *value.Macro, *value.BuiltIn, *value.SingleOperandPrimitive:
		return value.True, nil
	}
	return value.False, nil
}
