package eval

import "github.com/amirkamil/cs61a-scheme-editor/internal/trace"

// Config holds the evaluator's recognized configuration options.
type Config struct {
	// Dotted accepts dotted pairs and dotted parameter lists when true
	// (default). When false, dotted notation is rejected and force
	// additionally requires a pair-or-Nil result.
	Dotted bool
	// Fragile rejects irreversible operations — pair/vector mutators,
	// force, load — with IrreversibleOperation.
	Fragile bool
}

func DefaultConfig() Config { return Config{Dotted: true} }

// Option configures a new Evaluator via the functional-options pattern.
type Option func(*Evaluator)

// WithDotted toggles dotted-pair acceptance.
func WithDotted(enabled bool) Option {
	return func(e *Evaluator) { e.Config.Dotted = enabled }
}

// WithFragile toggles fragile mode.
func WithFragile(enabled bool) Option {
	return func(e *Evaluator) { e.Config.Fragile = enabled }
}

// WithHooks installs a trace.Hooks implementation.
func WithHooks(h trace.Hooks) Option {
	return func(e *Evaluator) { e.Hooks = h }
}

// WithRecursionLimit overrides the non-tail recursion depth budget.
func WithRecursionLimit(n int) Option {
	return func(e *Evaluator) { e.recursionLimit = n }
}
