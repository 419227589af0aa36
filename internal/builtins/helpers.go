package builtins

import (
	"github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

// verifyExact and verifyMin are arity guards a BuiltIn with a fixed or
// minimum operand count runs before touching its operands.
func verifyExact(who string, want, got int) error {
	if got != want {
		return schemeerr.ArityError(who, schemeerr.Arity{Min: want, Max: want}, got)
	}
	return nil
}

func verifyMin(who string, want, got int) error {
	if got < want {
		return schemeerr.ArityError(who, schemeerr.Arity{Min: want, Max: -1}, got)
	}
	return nil
}

func verifyRange(who string, min, max, got int) error {
	if got < min || got > max {
		return schemeerr.ArityError(who, schemeerr.Arity{Min: min, Max: max}, got)
	}
	return nil
}

func asNumbers(who string, operands []value.Value) ([]*value.Number, error) {
	out := make([]*value.Number, len(operands))
	for i, op := range operands {
		n, ok := op.(*value.Number)
		if !ok {
			return nil, schemeerr.OperandDeduce("%s expects a number, received %s", who, value.Write(op))
		}
		out[i] = n
	}
	return out, nil
}

func asInt(who string, v value.Value) (int64, error) {
	n, ok := v.(*value.Number)
	if !ok || !n.Exact {
		return 0, schemeerr.OperandDeduce("%s expects an integer, received %s", who, value.Write(v))
	}
	return n.Int, nil
}

func asString(who string, v value.Value) (*value.String, error) {
	s, ok := v.(*value.String)
	if !ok {
		return nil, schemeerr.OperandDeduce("%s expects a string, received %s", who, value.Write(v))
	}
	return s, nil
}

func asCharacter(who string, v value.Value) (*value.Character, error) {
	c, ok := v.(*value.Character)
	if !ok {
		return nil, schemeerr.OperandDeduce("%s expects a character, received %s", who, value.Write(v))
	}
	return c, nil
}

func asVector(who string, v value.Value) (*value.Vector, error) {
	vec, ok := v.(*value.Vector)
	if !ok {
		return nil, schemeerr.OperandDeduce("%s expects a vector, received %s", who, value.Write(v))
	}
	return vec, nil
}

func asList(who string, v value.Value) ([]value.Value, error) {
	if !value.IsNil(v) {
		if _, ok := v.(*value.Pair); !ok {
			return nil, schemeerr.OperandDeduce("%s expects a list, received %s", who, value.Write(v))
		}
	}
	return value.ListToSlice(v)
}

func checkInRange(who string, idx int64, length int) error {
	if idx < 0 || int(idx) >= length {
		return schemeerr.OperandDeduce("%s received out-of-range index %d for a sequence of length %d", who, idx, length)
	}
	return nil
}
