// Package trace defines the evaluator's hook surface: a small interface an
// external tracer (step-through debugger, REPL, visualizer) can implement
// to observe every evaluation step and receive program output. The default
// implementation provides stdout sinks and no-op structural hooks.
package trace

import (
	"fmt"
	"io"

	"github.com/amirkamil/cs61a-scheme-editor/internal/value"
)

// Hooks is the evaluator's trace surface. No recursive evaluator method is
// visible to consumers other than through this interface.
type Hooks interface {
	// OnEnter fires before evaluation of expr begins.
	OnEnter(expr value.Value, frame *value.Frame)
	// OnComplete fires after expr has produced result.
	OnComplete(expr value.Value, result value.Value)
	// OnApply fires just before a callable is dispatched.
	OnApply(callable value.Callable, operands []value.Value)
	// RawOut writes raw text (display, newline, write-char, expect, warnings).
	RawOut(text string)
	// Out writes a single expression's printed form (write, and display of
	// values other than strings and characters).
	Out(expr value.Value)
}

// NoOp implements Hooks with every structural hook a no-op and every sink
// discarding its input — used by tests that only care about return values.
type NoOp struct{}

func (NoOp) OnEnter(value.Value, *value.Frame)            {}
func (NoOp) OnComplete(value.Value, value.Value)          {}
func (NoOp) OnApply(value.Callable, []value.Value)        {}
func (NoOp) RawOut(string)                                {}
func (NoOp) Out(value.Value)                              {}

// Stdout implements Hooks with no-op structural hooks but writers that
// route program output to the given io.Writer (typically os.Stdout).
type Stdout struct {
	W io.Writer
}

func NewStdout(w io.Writer) *Stdout { return &Stdout{W: w} }

func (*Stdout) OnEnter(value.Value, *value.Frame)     {}
func (*Stdout) OnComplete(value.Value, value.Value)   {}
func (*Stdout) OnApply(value.Callable, []value.Value) {}

func (s *Stdout) RawOut(text string) {
	fmt.Fprint(s.W, text)
}

func (s *Stdout) Out(expr value.Value) {
	fmt.Fprint(s.W, value.Write(expr))
}

// Recording implements Hooks by buffering every call, for tests that assert
// on trace behavior (e.g. a promise's side effect firing exactly once).
type Recording struct {
	Entered   []value.Value
	Completed []value.Value
	Applied   []value.Callable
	RawLines  []string
	Written   []value.Value
}

func (r *Recording) OnEnter(expr value.Value, _ *value.Frame) { r.Entered = append(r.Entered, expr) }
func (r *Recording) OnComplete(_ value.Value, result value.Value) {
	r.Completed = append(r.Completed, result)
}
func (r *Recording) OnApply(c value.Callable, _ []value.Value) { r.Applied = append(r.Applied, c) }
func (r *Recording) RawOut(text string)                        { r.RawLines = append(r.RawLines, text) }
func (r *Recording) Out(expr value.Value)                      { r.Written = append(r.Written, expr) }
