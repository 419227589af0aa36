package value

import "github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"

// SliceToList builds a proper list from items.
func SliceToList(items []Value) Value {
	var out Value = Nil
	for i := len(items) - 1; i >= 0; i-- {
		out = Cons(items[i], out)
	}
	return out
}

// ListToSlice flattens a proper list into a slice. Returns an
// OperandDeduce error if the chain does not terminate at Nil.
func ListToSlice(v Value) ([]Value, error) {
	var out []Value
	for {
		switch t := v.(type) {
		case nilType:
			return out, nil
		case *Pair:
			out = append(out, t.First)
			v = t.Rest
		default:
			return nil, schemeerr.OperandDeduce("expected a proper list, received improper tail %s", Write(v))
		}
	}
}

// IsProperList reports whether v is a Nil-terminated chain of Pairs,
// tolerating cycles by bounding the walk with Floyd's cycle detection
// rather than looping forever.
func IsProperList(v Value) bool {
	slow, fast := v, v
	for {
		if IsNil(fast) {
			return true
		}
		fp, ok := fast.(*Pair)
		if !ok {
			return false
		}
		fast = fp.Rest
		if IsNil(fast) {
			return true
		}
		fp, ok = fast.(*Pair)
		if !ok {
			return false
		}
		fast = fp.Rest

		sp := slow.(*Pair)
		slow = sp.Rest

		if slow == fast {
			return false // cyclic: never proper
		}
	}
}

// ListLength returns the length of a proper list.
func ListLength(v Value) (int, error) {
	items, err := ListToSlice(v)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
