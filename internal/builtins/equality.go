package builtins

import "github.com/amirkamil/cs61a-scheme-editor/internal/value"

// registerEquality exposes the three-tier equality hierarchy (value.Eq,
// value.Eqv, value.Equal) as ordinary procedures; the comparisons themselves
// already live on the data model, next to the types they compare.
func registerEquality(g *value.Frame) {
	bind(g, value.NewBuiltIn("eq?", func(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
		if err := verifyExact("eq?", 2, len(operands)); err != nil {
			return nil, err
		}
		return value.Bool(value.Eq(operands[0], operands[1])), nil
	}))
	bind(g, value.NewBuiltIn("eqv?", func(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
		if err := verifyExact("eqv?", 2, len(operands)); err != nil {
			return nil, err
		}
		return value.Bool(value.Eqv(operands[0], operands[1])), nil
	}))
	bind(g, value.NewBuiltIn("equal?", func(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
		if err := verifyExact("equal?", 2, len(operands)); err != nil {
			return nil, err
		}
		return value.Bool(value.Equal(operands[0], operands[1])), nil
	}))
}
