package builtins

import "github.com/amirkamil/cs61a-scheme-editor/internal/value"

// registerCombinators installs the cxxr family (caar .. cddddr): every
// combination of 2 to 4 car/cdr steps, generated from every "a"/"d" string
// of the right length rather than writing all twenty-eight out by hand.
func registerCombinators(g *value.Frame) {
	for length := 2; length <= 4; length++ {
		for _, ops := range combinations(length) {
			bind(g, value.NewSingleOperandPrimitive(combinatorName(ops), combinatorFn(ops)))
		}
	}
}

// combinations enumerates every string of 'a'/'d' of the given length, each
// built by prepending 'a' then 'd' to every shorter string (aa, da, ad, dd, ...).
func combinations(length int) [][]byte {
	if length == 0 {
		return [][]byte{{}}
	}
	var out [][]byte
	for _, rest := range combinations(length - 1) {
		for _, c := range []byte{'a', 'd'} {
			combo := append(append([]byte{}, c), rest...)
			out = append(out, combo)
		}
	}
	return out
}

func combinatorName(ops []byte) string {
	return "c" + string(ops) + "r"
}

// combinatorFn applies car/cdr steps right-to-left, matching the reading
// order of the name: (cadr x) takes the cdr of x, then the car of that.
func combinatorFn(ops []byte) func(value.Evaluator, value.Value, *value.Frame) (value.Value, error) {
	return func(ev value.Evaluator, operand value.Value, frame *value.Frame) (value.Value, error) {
		v := operand
		for i := len(ops) - 1; i >= 0; i-- {
			var err error
			if ops[i] == 'a' {
				v, err = carProc(ev, v, frame)
			} else {
				v, err = cdrProc(ev, v, frame)
			}
			if err != nil {
				return nil, err
			}
		}
		return v, nil
	}
}
