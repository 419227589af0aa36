package builtins

import (
	"github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"
	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

// registerControl installs eval, apply, and error: the three primitives that
// reach back into the evaluator itself rather than just manipulating data.
func registerControl(g *value.Frame) {
	bind(g, value.NewSingleOperandPrimitive("eval", evalProc))
	bind(g, value.NewBuiltIn("apply", applyProc))
	bind(g, value.NewBuiltIn("error", errorProc))
}

// evalProc takes a single already-evaluated expression and evaluates it
// again in the caller's frame. There is no optional environment argument;
// this interpreter exposes only one kind of frame to reach from user code.
func evalProc(ev value.Evaluator, operand value.Value, frame *value.Frame) (value.Value, error) {
	return ev.Eval(operand, frame, false)
}

// applyProc calls its first operand with the middle operands plus the
// elements of its final (list) operand, without re-evaluating any of them.
func applyProc(ev value.Evaluator, operands []value.Value, frame *value.Frame) (value.Value, error) {
	if err := verifyMin("apply", 2, len(operands)); err != nil {
		return nil, err
	}
	callable, ok := operands[0].(value.Callable)
	if !ok {
		return nil, schemeerr.OperandDeduce("unable to call %s", value.Write(operands[0]))
	}
	tail, err := asList("apply", operands[len(operands)-1])
	if err != nil {
		return nil, err
	}
	args := append(append([]value.Value{}, operands[1:len(operands)-1]...), tail...)
	return ev.Apply(callable, args, frame, false)
}

func errorProc(_ value.Evaluator, operands []value.Value, _ *value.Frame) (value.Value, error) {
	if err := verifyExact("error", 1, len(operands)); err != nil {
		return nil, err
	}
	return nil, schemeerr.UserError(operands[0])
}
