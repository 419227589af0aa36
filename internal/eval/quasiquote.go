package eval

import (
	"github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

// quasiquoteForm walks the datum tree, substituting unquote and splicing
// unquote-splicing, copying structure rather than sharing it.
func (e *Evaluator) quasiquoteForm(_ value.Evaluator, operands value.Value, frame *value.Frame, _ bool) (value.Value, error) {
	items, err := value.ListToSlice(operands)
	if err != nil || len(items) != 1 {
		return nil, schemeerr.ArityError("quasiquote", schemeerr.Arity{Min: 1, Max: 1}, len(items))
	}
	return e.quasiquoteWalk(items[0], frame)
}

// quasiquoteWalk dispatches on what the current template position is: a
// bare unquote/unquote-splicing/quasiquote form, a list template, a vector
// template, or an atom (copied through unchanged).
func (e *Evaluator) quasiquoteWalk(expr value.Value, frame *value.Frame) (value.Value, error) {
	switch t := expr.(type) {
	case *value.Pair:
		if sym, ok := t.First.(*value.Symbol); ok {
			switch sym.Name {
			case "unquote":
				args, err := value.ListToSlice(t.Rest)
				if err != nil || len(args) != 1 {
					return nil, schemeerr.OperandDeduce("malformed unquote")
				}
				return e.Eval(args[0], frame, false)
			case "quasiquote":
				// Nested quasiquote forms are returned unevaluated — the
				// inner quasiquote is not re-entered — but
				// still structurally copied.
				return deepCopy(t), nil
			case "unquote-splicing":
				return nil, schemeerr.CallableResolution("unquote-splicing used outside a list template")
			}
		}
		return e.quasiquoteListElements(t, frame)
	case *value.Vector:
		return e.quasiquoteVector(t, frame)
	default:
		return expr, nil
	}
}

// quasiquoteListElements walks one cons cell of a list template, honoring
// unquote-splicing when it appears as a list element ((a ,@b c)) and
// recursing into both first and rest, left to right.
func (e *Evaluator) quasiquoteListElements(p *value.Pair, frame *value.Frame) (value.Value, error) {
	if elemPair, ok := p.First.(*value.Pair); ok {
		if sym, ok := elemPair.First.(*value.Symbol); ok && sym.Name == "unquote-splicing" {
			args, err := value.ListToSlice(elemPair.Rest)
			if err != nil || len(args) != 1 {
				return nil, schemeerr.OperandDeduce("malformed unquote-splicing")
			}
			v, err := e.Eval(args[0], frame, false)
			if err != nil {
				return nil, err
			}
			items, err := value.ListToSlice(v)
			if err != nil {
				return nil, schemeerr.OperandDeduce("unquote-splicing requires a proper list, received %s", value.Write(v))
			}
			restVal, err := e.quasiquoteWalk(p.Rest, frame)
			if err != nil {
				return nil, err
			}
			out := restVal
			for i := len(items) - 1; i >= 0; i-- {
				out = value.Cons(items[i], out)
			}
			return out, nil
		}
	}

	headVal, err := e.quasiquoteWalk(p.First, frame)
	if err != nil {
		return nil, err
	}
	restVal, err := e.quasiquoteWalk(p.Rest, frame)
	if err != nil {
		return nil, err
	}
	return value.Cons(headVal, restVal), nil
}

// quasiquoteVector applies the same per-element splicing rule as a list
// template: a vector literal is just another template shape.
func (e *Evaluator) quasiquoteVector(vec *value.Vector, frame *value.Frame) (value.Value, error) {
	var out []value.Value
	for _, item := range vec.Items {
		if elemPair, ok := item.(*value.Pair); ok {
			if sym, ok := elemPair.First.(*value.Symbol); ok && sym.Name == "unquote-splicing" {
				args, err := value.ListToSlice(elemPair.Rest)
				if err != nil || len(args) != 1 {
					return nil, schemeerr.OperandDeduce("malformed unquote-splicing")
				}
				v, err := e.Eval(args[0], frame, false)
				if err != nil {
					return nil, err
				}
				items, err := value.ListToSlice(v)
				if err != nil {
					return nil, schemeerr.OperandDeduce("unquote-splicing requires a proper list, received %s", value.Write(v))
				}
				out = append(out, items...)
				continue
			}
		}
		walked, err := e.quasiquoteWalk(item, frame)
		if err != nil {
			return nil, err
		}
		out = append(out, walked)
	}
	return value.NewVector(out), nil
}

// deepCopy copies pair/vector structure rather than sharing it, used for the
// pass-through of a nested, unevaluated quasiquote template.
func deepCopy(v value.Value) value.Value {
	switch t := v.(type) {
	case *value.Pair:
		return value.Cons(deepCopy(t.First), deepCopy(t.Rest))
	case *value.Vector:
		items := make([]value.Value, len(t.Items))
		for i, it := range t.Items {
			items[i] = deepCopy(it)
		}
		return value.NewVector(items)
	default:
		return v
	}
}
