package builtins

import (
	"strings"

	"github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

func registerStrings(g *value.Frame) {
	bind(g, value.NewBuiltIn("make-string", makeStringProc))
	bind(g, value.NewBuiltIn("string", stringProc))
	bind(g, value.NewSingleOperandPrimitive("string-length", stringLengthProc))
	bind(g, value.NewBuiltIn("string-ref", stringRefProc))
	bind(g, value.NewBuiltIn("string-set!", unsupportedBuiltIn("string-set!")))
	bind(g, value.NewBuiltIn("string=?", stringCompareProc("string=?", false, func(a, b string) bool { return a == b })))
	bind(g, value.NewBuiltIn("string-ci=?", stringCompareProc("string-ci=?", true, func(a, b string) bool { return a == b })))
	bind(g, value.NewBuiltIn("string<?", stringCompareProc("string<?", false, func(a, b string) bool { return a < b })))
	bind(g, value.NewBuiltIn("string-ci<?", stringCompareProc("string-ci<?", true, func(a, b string) bool { return a < b })))
	bind(g, value.NewBuiltIn("string<=?", stringCompareProc("string<=?", false, func(a, b string) bool { return a <= b })))
	bind(g, value.NewBuiltIn("string-ci<=?", stringCompareProc("string-ci<=?", true, func(a, b string) bool { return a <= b })))
	bind(g, value.NewBuiltIn("string>?", stringCompareProc("string>?", false, func(a, b string) bool { return a > b })))
	bind(g, value.NewBuiltIn("string-ci>?", stringCompareProc("string-ci>?", true, func(a, b string) bool { return a > b })))
	bind(g, value.NewBuiltIn("string>=?", stringCompareProc("string>=?", false, func(a, b string) bool { return a >= b })))
	bind(g, value.NewBuiltIn("string-ci>=?", stringCompareProc("string-ci>=?", true, func(a, b string) bool { return a >= b })))
	bind(g, value.NewBuiltIn("substring", substringProc))
	bind(g, value.NewBuiltIn("string-append", stringAppendProc))
	bind(g, value.NewSingleOperandPrimitive("string-copy", stringCopyProc))
	bind(g, value.NewBuiltIn("string-fill!", unsupportedBuiltIn("string-fill!")))
}

func makeStringProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if len(operands) == 1 {
		return nil, schemeerr.UnsupportedOperation("make-string with no fill character")
	}
	if err := verifyExact("make-string", 2, len(operands)); err != nil {
		return nil, err
	}
	n, err := asInt("make-string", operands[0])
	if err != nil {
		return nil, err
	}
	c, err := asCharacter("make-string", operands[1])
	if err != nil {
		return nil, err
	}
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = c.Rune
	}
	return &value.String{Runes: runes}, nil
}

func stringProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	runes := make([]rune, len(operands))
	for i, op := range operands {
		c, err := asCharacter("string", op)
		if err != nil {
			return nil, err
		}
		runes[i] = c.Rune
	}
	return &value.String{Runes: runes}, nil
}

func stringLengthProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	s, err := asString("string-length", operand)
	if err != nil {
		return nil, err
	}
	return value.NewInt(int64(len(s.Runes))), nil
}

func stringRefProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("string-ref", 2, len(operands)); err != nil {
		return nil, err
	}
	s, err := asString("string-ref", operands[0])
	if err != nil {
		return nil, err
	}
	idx, err := asInt("string-ref", operands[1])
	if err != nil {
		return nil, err
	}
	if err := checkInRange("string-ref", idx, len(s.Runes)); err != nil {
		return nil, err
	}
	return value.NewCharacter(s.Runes[idx]), nil
}

func stringCompareProc(who string, ci bool, cmp func(a, b string) bool) func(value.Evaluator, []value.Value, *value.Frame) (value.Value, error) {
	return func(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
		if err := verifyExact(who, 2, len(operands)); err != nil {
			return nil, err
		}
		a, err := asString(who, operands[0])
		if err != nil {
			return nil, err
		}
		b, err := asString(who, operands[1])
		if err != nil {
			return nil, err
		}
		as, bs := a.Go(), b.Go()
		if ci {
			as, bs = strings.ToLower(as), strings.ToLower(bs)
		}
		return value.Bool(cmp(as, bs)), nil
	}
}

func substringProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("substring", 3, len(operands)); err != nil {
		return nil, err
	}
	s, err := asString("substring", operands[0])
	if err != nil {
		return nil, err
	}
	start, err := asInt("substring", operands[1])
	if err != nil {
		return nil, err
	}
	end, err := asInt("substring", operands[2])
	if err != nil {
		return nil, err
	}
	if start < 0 || end > int64(len(s.Runes)) || start > end {
		return nil, schemeerr.OperandDeduce("substring received out-of-range bounds [%d, %d) for a string of length %d", start, end, len(s.Runes))
	}
	runes := make([]rune, end-start)
	copy(runes, s.Runes[start:end])
	return &value.String{Runes: runes}, nil
}

func stringAppendProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	var runes []rune
	for _, op := range operands {
		s, err := asString("string-append", op)
		if err != nil {
			return nil, err
		}
		runes = append(runes, s.Runes...)
	}
	return &value.String{Runes: runes}, nil
}

func stringCopyProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	s, err := asString("string-copy", operand)
	if err != nil {
		return nil, err
	}
	runes := make([]rune, len(s.Runes))
	copy(runes, s.Runes)
	return &value.String{Runes: runes}, nil
}
