package builtins

import (
	"math"

	"github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

func registerArithmetic(g *value.Frame) {
	bind(g, value.NewBuiltIn("+", addProc))
	bind(g, value.NewBuiltIn("-", subtractProc))
	bind(g, value.NewBuiltIn("*", multiplyProc))
	bind(g, value.NewBuiltIn("/", divideProc))
	bind(g, value.NewSingleOperandPrimitive("abs", absProc))
	bind(g, value.NewBuiltIn("expt", exptProc))
	bind(g, value.NewBuiltIn("modulo", moduloProc))
	bind(g, value.NewBuiltIn("quotient", quotientProc))
	bind(g, value.NewBuiltIn("remainder", remainderProc))
	bind(g, value.NewBuiltIn("gcd", gcdProc))
	bind(g, value.NewBuiltIn("lcm", lcmProc))
	bind(g, value.NewSingleOperandPrimitive("sqrt", sqrtProc))
	bind(g, value.NewBuiltIn("=", numEqProc))
	bind(g, value.NewBuiltIn("<", numLessProc))
	bind(g, value.NewBuiltIn("<=", numLessEqProc))
	bind(g, value.NewBuiltIn(">", numGreaterProc))
	bind(g, value.NewBuiltIn(">=", numGreaterEqProc))
	bind(g, value.NewSingleOperandPrimitive("even?", isEvenProc))
	bind(g, value.NewSingleOperandPrimitive("odd?", isOddProc))
	bind(g, value.NewSingleOperandPrimitive("zero?", isZeroProc))
	bind(g, value.NewSingleOperandPrimitive("not", notProc))
	bind(g, value.NewSingleOperandPrimitive("round", roundProc))
	bind(g, value.NewBuiltIn("max", maxProc))
	bind(g, value.NewBuiltIn("min", minProc))
	bind(g, value.NewSingleOperandPrimitive("positive?", isPositiveProc))
	bind(g, value.NewSingleOperandPrimitive("negative?", isNegativeProc))
	bind(g, value.NewSingleOperandPrimitive("exact?", isExactProc))
	bind(g, value.NewSingleOperandPrimitive("inexact?", isInexactProc))
}

func allExact(nums []*value.Number) bool {
	for _, n := range nums {
		if !n.Exact {
			return false
		}
	}
	return true
}

func addProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	nums, err := asNumbers("+", operands)
	if err != nil {
		return nil, err
	}
	if allExact(nums) {
		var sum int64
		for _, n := range nums {
			sum += n.Int
		}
		return value.NewInt(sum), nil
	}
	var sum float64
	for _, n := range nums {
		sum += n.AsFloat()
	}
	return value.NewFloat(sum), nil
}

func subtractProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyMin("-", 1, len(operands)); err != nil {
		return nil, err
	}
	nums, err := asNumbers("-", operands)
	if err != nil {
		return nil, err
	}
	if allExact(nums) {
		if len(nums) == 1 {
			return value.NewInt(-nums[0].Int), nil
		}
		out := nums[0].Int
		for _, n := range nums[1:] {
			out -= n.Int
		}
		return value.NewInt(out), nil
	}
	if len(nums) == 1 {
		return value.NewFloat(-nums[0].AsFloat()), nil
	}
	out := nums[0].AsFloat()
	for _, n := range nums[1:] {
		out -= n.AsFloat()
	}
	return value.NewFloat(out), nil
}

func multiplyProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	nums, err := asNumbers("*", operands)
	if err != nil {
		return nil, err
	}
	if allExact(nums) {
		out := int64(1)
		for _, n := range nums {
			out *= n.Int
		}
		return value.NewInt(out), nil
	}
	out := 1.0
	for _, n := range nums {
		out *= n.AsFloat()
	}
	return value.NewFloat(out), nil
}

// divideProc always produces an inexact result, even between two exact
// integer operands — true division rather than Scheme's usual rational
// arithmetic, which this interpreter does not implement.
func divideProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyMin("/", 1, len(operands)); err != nil {
		return nil, err
	}
	nums, err := asNumbers("/", operands)
	if err != nil {
		return nil, err
	}
	divisors := nums[1:]
	if len(nums) == 1 {
		divisors = nums
	}
	for _, d := range divisors {
		if d.AsFloat() == 0 {
			return nil, schemeerr.OperandDeduce("division by zero")
		}
	}
	if len(nums) == 1 {
		return value.NewFloat(1 / nums[0].AsFloat()), nil
	}
	out := nums[0].AsFloat()
	for _, n := range nums[1:] {
		out /= n.AsFloat()
	}
	return value.NewFloat(out), nil
}

func absProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	n, err := asNumbers("abs", []value.Value{operand})
	if err != nil {
		return nil, err
	}
	if n[0].Exact {
		v := n[0].Int
		if v < 0 {
			v = -v
		}
		return value.NewInt(v), nil
	}
	return value.NewFloat(math.Abs(n[0].Float)), nil
}

func exptProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("expt", 2, len(operands)); err != nil {
		return nil, err
	}
	nums, err := asNumbers("expt", operands)
	if err != nil {
		return nil, err
	}
	if nums[0].Exact && nums[1].Exact && nums[1].Int >= 0 {
		out := int64(1)
		for i := int64(0); i < nums[1].Int; i++ {
			out *= nums[0].Int
		}
		return value.NewInt(out), nil
	}
	return value.NewFloat(math.Pow(nums[0].AsFloat(), nums[1].AsFloat())), nil
}

func moduloProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("modulo", 2, len(operands)); err != nil {
		return nil, err
	}
	a, err := asInt("modulo", operands[0])
	if err != nil {
		return nil, err
	}
	b, err := asInt("modulo", operands[1])
	if err != nil {
		return nil, err
	}
	if b < 0 {
		b = -b
	}
	m := a % b
	if m < 0 {
		m += b
	}
	return value.NewInt(m), nil
}

func quotientProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("quotient", 2, len(operands)); err != nil {
		return nil, err
	}
	a, err := asInt("quotient", operands[0])
	if err != nil {
		return nil, err
	}
	b, err := asInt("quotient", operands[1])
	if err != nil {
		return nil, err
	}
	return value.NewInt(a / b), nil
}

func remainderProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("remainder", 2, len(operands)); err != nil {
		return nil, err
	}
	a, err := asInt("remainder", operands[0])
	if err != nil {
		return nil, err
	}
	b, err := asInt("remainder", operands[1])
	if err != nil {
		return nil, err
	}
	return value.NewInt(a % b), nil
}

func gcdInt(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func gcdProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if len(operands) == 0 {
		return value.NewInt(0), nil
	}
	out, err := asInt("gcd", operands[0])
	if err != nil {
		return nil, err
	}
	for _, op := range operands[1:] {
		n, err := asInt("gcd", op)
		if err != nil {
			return nil, err
		}
		out = gcdInt(out, n)
	}
	return value.NewInt(out), nil
}

func lcmProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if len(operands) == 0 {
		return value.NewInt(1), nil
	}
	out, err := asInt("lcm", operands[0])
	if err != nil {
		return nil, err
	}
	if out < 0 {
		out = -out
	}
	for _, op := range operands[1:] {
		n, err := asInt("lcm", op)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			n = -n
		}
		if out == 0 || n == 0 {
			out = 0
			continue
		}
		out = out / gcdInt(out, n) * n
	}
	return value.NewInt(out), nil
}

func sqrtProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	n, err := asNumbers("sqrt", []value.Value{operand})
	if err != nil {
		return nil, err
	}
	if n[0].Exact && n[0].Int >= 0 {
		root := int64(math.Sqrt(float64(n[0].Int)))
		for _, candidate := range []int64{root - 1, root, root + 1} {
			if candidate >= 0 && candidate*candidate == n[0].Int {
				return value.NewInt(candidate), nil
			}
		}
	}
	return value.NewFloat(math.Sqrt(n[0].AsFloat())), nil
}

func comparisonChain(who string, operands []value.Value, ok func(a, b float64) bool) (value.Value, error) {
	if err := verifyMin(who, 2, len(operands)); err != nil {
		return nil, err
	}
	nums, err := asNumbers(who, operands)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(nums); i++ {
		if !ok(nums[i-1].AsFloat(), nums[i].AsFloat()) {
			return value.False, nil
		}
	}
	return value.True, nil
}

func numEqProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	return comparisonChain("=", operands, func(a, b float64) bool { return a == b })
}

func numLessProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	return comparisonChain("<", operands, func(a, b float64) bool { return a < b })
}

func numLessEqProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	return comparisonChain("<=", operands, func(a, b float64) bool { return a <= b })
}

func numGreaterProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	return comparisonChain(">", operands, func(a, b float64) bool { return a > b })
}

func numGreaterEqProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	return comparisonChain(">=", operands, func(a, b float64) bool { return a >= b })
}

func isEvenProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	n, err := asInt("even?", operand)
	if err != nil {
		return nil, err
	}
	return value.Bool(n%2 == 0), nil
}

func isOddProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	n, err := asInt("odd?", operand)
	if err != nil {
		return nil, err
	}
	return value.Bool(n%2 != 0), nil
}

func isZeroProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	n, err := asNumbers("zero?", []value.Value{operand})
	if err != nil {
		return nil, err
	}
	return value.Bool(n[0].AsFloat() == 0), nil
}

func notProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	return value.Bool(!value.Truthy(operand)), nil
}

func roundProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	n, err := asNumbers("round", []value.Value{operand})
	if err != nil {
		return nil, err
	}
	if n[0].Exact {
		return n[0], nil
	}
	// Round half to even, per R5RS round semantics.
	f := n[0].Float
	below := math.Floor(f)
	above := math.Ceil(f)
	switch {
	case above == below:
		return value.NewFloat(above), nil
	case f-below < above-f:
		return value.NewFloat(below), nil
	case above-f < f-below:
		return value.NewFloat(above), nil
	case math.Mod(below, 2) == 0:
		return value.NewFloat(below), nil
	default:
		return value.NewFloat(above), nil
	}
}

func maxProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyMin("max", 1, len(operands)); err != nil {
		return nil, err
	}
	nums, err := asNumbers("max", operands)
	if err != nil {
		return nil, err
	}
	best := nums[0]
	inexact := !best.Exact
	for _, n := range nums[1:] {
		inexact = inexact || !n.Exact
		if n.AsFloat() > best.AsFloat() {
			best = n
		}
	}
	if inexact && best.Exact {
		return value.NewFloat(best.AsFloat()), nil
	}
	return best, nil
}

func minProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyMin("min", 1, len(operands)); err != nil {
		return nil, err
	}
	nums, err := asNumbers("min", operands)
	if err != nil {
		return nil, err
	}
	best := nums[0]
	inexact := !best.Exact
	for _, n := range nums[1:] {
		inexact = inexact || !n.Exact
		if n.AsFloat() < best.AsFloat() {
			best = n
		}
	}
	if inexact && best.Exact {
		return value.NewFloat(best.AsFloat()), nil
	}
	return best, nil
}

func isPositiveProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	n, err := asNumbers("positive?", []value.Value{operand})
	if err != nil {
		return nil, err
	}
	return value.Bool(n[0].AsFloat() > 0), nil
}

func isNegativeProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	n, err := asNumbers("negative?", []value.Value{operand})
	if err != nil {
		return nil, err
	}
	return value.Bool(n[0].AsFloat() < 0), nil
}

func isExactProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	n, ok := operand.(*value.Number)
	return value.Bool(ok && n.Exact), nil
}

func isInexactProc(_ value.Evaluator, operand value.Value, _ *value.Frame) (value.Value, error) {
	n, ok := operand.(*value.Number)
	return value.Bool(ok && !n.Exact), nil
}
