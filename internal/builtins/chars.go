package builtins

import (
	"unicode"

	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

func registerChars(g *value.Frame) {
	bind(g, value.NewBuiltIn("char=?", charCompareProc("char=?", false, func(a, b rune) bool { return a == b })))
	bind(g, value.NewBuiltIn("char-ci=?", charCompareProc("char-ci=?", true, func(a, b rune) bool { return a == b })))
	bind(g, value.NewBuiltIn("char<?", charCompareProc("char<?", false, func(a, b rune) bool { return a < b })))
	bind(g, value.NewBuiltIn("char-ci<?", charCompareProc("char-ci<?", true, func(a, b rune) bool { return a < b })))
	bind(g, value.NewBuiltIn("char>?", charCompareProc("char>?", false, func(a, b rune) bool { return a > b })))
	bind(g, value.NewBuiltIn("char-ci>?", charCompareProc("char-ci>?", true, func(a, b rune) bool { return a > b })))
	bind(g, value.NewBuiltIn("char<=?", charCompareProc("char<=?", false, func(a, b rune) bool { return a <= b })))
	bind(g, value.NewBuiltIn("char-ci<=?", charCompareProc("char-ci<=?", true, func(a, b rune) bool { return a <= b })))
	bind(g, value.NewBuiltIn("char>=?", charCompareProc("char>=?", false, func(a, b rune) bool { return a >= b })))
	bind(g, value.NewBuiltIn("char-ci>=?", charCompareProc("char-ci>=?", true, func(a, b rune) bool { return a >= b })))
	bind(g, value.NewSingleOperandPrimitive("char-alphabetic?", charPredicate(unicode.IsLetter)))
	bind(g, value.NewSingleOperandPrimitive("char-numeric?", charPredicate(unicode.IsDigit)))
	bind(g, value.NewSingleOperandPrimitive("char-whitespace?", charPredicate(unicode.IsSpace)))
	bind(g, value.NewSingleOperandPrimitive("char-lower-case?", charPredicate(unicode.IsLower)))
	bind(g, value.NewSingleOperandPrimitive("char-upper-case?", charPredicate(unicode.IsUpper)))
	bind(g, value.NewSingleOperandPrimitive("char-upcase", charMap(unicode.ToUpper)))
	bind(g, value.NewSingleOperandPrimitive("char-downcase", charMap(unicode.ToLower)))
}

func charCompareProc(who string, ci bool, cmp func(a, b rune) bool) func(value.Evaluator, []value.Value, *value.Frame) (value.Value, error) {
	return func(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
		if err := verifyExact(who, 2, len(operands)); err != nil {
			return nil, err
		}
		a, err := asCharacter(who, operands[0])
		if err != nil {
			return nil, err
		}
		b, err := asCharacter(who, operands[1])
		if err != nil {
			return nil, err
		}
		ar, br := a.Rune, b.Rune
		if ci {
			ar, br = unicode.ToLower(ar), unicode.ToLower(br)
		}
		return value.Bool(cmp(ar, br)), nil
	}
}

func charPredicate(pred func(rune) bool) func(value.Evaluator, value.Value, *value.Frame) (value.Value, error) {
	return func(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
		c, err := asCharacter("character predicate", operand)
		if err != nil {
			return nil, err
		}
		return value.Bool(pred(c.Rune)), nil
	}
}

func charMap(fn func(rune) rune) func(value.Evaluator, value.Value, *value.Frame) (value.Value, error) {
	return func(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
		c, err := asCharacter("character conversion", operand)
		if err != nil {
			return nil, err
		}
		return value.NewCharacter(fn(c.Rune)), nil
	}
}
