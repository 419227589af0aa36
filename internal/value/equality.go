package value

// Eq implements eq?: identity equality, authoritative for every variant.
// Numbers and characters are heap-allocated precisely so that two
// separately-constructed equal values are eqv? but not eq?; two such
// strings are neither, only equal?.
func Eq(a, b Value) bool {
	switch av := a.(type) {
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av == bv
	case nilType:
		_, ok := b.(nilType)
		return ok
	case undefinedType:
		_, ok := b.(undefinedType)
		return ok
	case *Symbol:
		bv, ok := b.(*Symbol)
		return ok && av == bv
	case *Number:
		bv, ok := b.(*Number)
		return ok && av == bv
	case *Character:
		bv, ok := b.(*Character)
		return ok && av == bv
	case *String:
		bv, ok := b.(*String)
		return ok && av == bv
	case *Pair:
		bv, ok := b.(*Pair)
		return ok && av == bv
	case *Vector:
		bv, ok := b.(*Vector)
		return ok && av == bv
	case *Promise:
		bv, ok := b.(*Promise)
		return ok && av == bv
	default:
		// Callables: compare by identity of the concrete pointer.
		return a == b
	}
}

// Eqv implements eqv?: value equality for numbers and characters, identity
// for everything else including strings.
func Eqv(a, b Value) bool {
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		if !ok || av.Exact != bv.Exact {
			return false
		}
		if av.Exact {
			return av.Int == bv.Int
		}
		return av.Float == bv.Float
	case *Character:
		bv, ok := b.(*Character)
		return ok && av.Rune == bv.Rune
	default:
		return Eq(a, b)
	}
}

// Equal implements equal?: recurses structurally through pairs and vectors,
// compares strings by content, and falls back to eqv? otherwise. Equal does not guard against cycles.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Pair:
		bv, ok := b.(*Pair)
		return ok && Equal(av.First, bv.First) && Equal(av.Rest, bv.Rest)
	case *Vector:
		bv, ok := b.(*Vector)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case *String:
		bv, ok := b.(*String)
		return ok && string(av.Runes) == string(bv.Runes)
	default:
		return Eqv(a, b)
	}
}
