package builtins

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

func registerConversions(g *value.Frame) {
	bind(g, value.NewSingleOperandPrimitive("exact->inexact", unsupportedSingleOperand("exact->inexact")))
	bind(g, value.NewSingleOperandPrimitive("inexact->exact", unsupportedSingleOperand("inexact->exact")))
	bind(g, value.NewBuiltIn("number->string", numberToStringProc))
	bind(g, value.NewBuiltIn("string->number", stringToNumberProc))
	bind(g, value.NewSingleOperandPrimitive("symbol->string", symbolToStringProc))
	bind(g, value.NewSingleOperandPrimitive("string->symbol", stringToSymbolProc))
	bind(g, value.NewSingleOperandPrimitive("char->integer", charToIntegerProc))
	bind(g, value.NewSingleOperandPrimitive("integer->char", integerToCharProc))
	bind(g, value.NewSingleOperandPrimitive("string->list", stringToListProc))
	bind(g, value.NewSingleOperandPrimitive("list->string", listToStringProc))
	bind(g, value.NewSingleOperandPrimitive("vector->list", vectorToListProc))
	bind(g, value.NewSingleOperandPrimitive("list->vector", listToVectorProc))
}

func validRadix(v value.Value) (int64, bool) {
	n, ok := v.(*value.Number)
	if !ok || !n.Exact {
		return 0, false
	}
	switch n.Int {
	case 2, 8, 10, 16:
		return n.Int, true
	default:
		return 0, false
	}
}

func numberToStringProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyRange("number->string", 1, 2, len(operands)); err != nil {
		return nil, err
	}
	n, ok := operands[0].(*value.Number)
	if !ok {
		return nil, schemeerr.OperandDeduce("number->string expects a number, received %s", value.Write(operands[0]))
	}
	base := int64(10)
	if len(operands) == 2 {
		r, ok := validRadix(operands[1])
		if !ok {
			return nil, schemeerr.OperandDeduce("number->string expects the radix to be 2, 8, 10, or 16, received %s", value.Write(operands[1]))
		}
		base = r
	}
	if base != 10 && !n.Exact {
		return nil, schemeerr.OperandDeduce("number->string only supports a radix of 10 for floating-point numbers, received radix %d for number %s", base, value.Write(n))
	}
	if base == 10 {
		return value.NewString(n.String()), nil
	}
	return value.NewString(strconv.FormatInt(n.Int, int(base))), nil
}

func stringToNumberProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyRange("string->number", 1, 2, len(operands)); err != nil {
		return nil, err
	}
	s, err := asString("string->number", operands[0])
	if err != nil {
		return nil, err
	}
	base := int64(10)
	if len(operands) == 2 {
		r, ok := validRadix(operands[1])
		if !ok {
			return nil, schemeerr.OperandDeduce("string->number expects the radix to be 2, 8, 10, or 16, received %s", value.Write(operands[1]))
		}
		base = r
	}
	text := s.Go()
	if i, err := strconv.ParseInt(text, int(base), 64); err == nil {
		return value.NewInt(i), nil
	}
	if base != 10 {
		return nil, schemeerr.OperandDeduce("string->number only supports a radix other than 10 for integers, received radix %d for incompatible string %s", base, value.Write(s))
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return value.NewFloat(f), nil
	}
	return nil, schemeerr.OperandDeduce("string does not represent a supported number in radix 10: %s", value.Write(s))
}

func symbolToStringProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	sym, ok := operand.(*value.Symbol)
	if !ok {
		return nil, schemeerr.OperandDeduce("symbol->string expects a symbol, received %s", value.Write(operand))
	}
	return value.NewString(sym.Name), nil
}

func stringToSymbolProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	s, err := asString("string->symbol", operand)
	if err != nil {
		return nil, err
	}
	return value.Intern(s.Go()), nil
}

func charToIntegerProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	c, err := asCharacter("char->integer", operand)
	if err != nil {
		return nil, err
	}
	return value.NewInt(int64(c.Rune)), nil
}

func integerToCharProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	n, ok := operand.(*value.Number)
	if !ok || !n.Exact {
		return nil, schemeerr.OperandDeduce("integer->char expects an integer, received %s", value.Write(operand))
	}
	return value.NewCharacter(rune(n.Int)), nil
}

func stringToListProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	s, err := asString("string->list", operand)
	if err != nil {
		return nil, err
	}
	items := lo.Map(s.Runes, func(r rune, _ int) value.Value { return value.NewCharacter(r) })
	return value.SliceToList(items), nil
}

func listToStringProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	items, err := asList("list->string", operand)
	if err != nil {
		return nil, err
	}
	runes := make([]rune, len(items))
	for i, item := range items {
		c, ok := item.(*value.Character)
		if !ok {
			return nil, schemeerr.OperandDeduce("list->string expects a list of characters, received %s", value.Write(operand))
		}
		runes[i] = c.Rune
	}
	return &value.String{Runes: runes}, nil
}

func vectorToListProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	v, err := asVector("vector->list", operand)
	if err != nil {
		return nil, err
	}
	return value.SliceToList(v.Items), nil
}

func listToVectorProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	items, err := asList("list->vector", operand)
	if err != nil {
		return nil, err
	}
	out := lo.Map(items, func(v value.Value, _ int) value.Value { return v })
	return value.NewVector(out), nil
}
