// Package builtins is the primitive registry and library: every procedure a
// fresh global frame is populated with before a program runs. Procedures
// are grouped one Go file per domain (arithmetic, lists, strings, chars,
// vectors, conversions, type checking, console), each contributing a set of
// value.BuiltIn/SingleOperandPrimitive values installed by a single Register
// entry point.
package builtins

import "github.com/amirkamil/cs61a-scheme-editor/internal/value"

// Register installs the full primitive library into g. It is the register
// callback eval.New expects, keeping internal/eval free of any dependency
// on the concrete primitive set it runs.
func Register(g *value.Frame) {
	registerArithmetic(g)
	registerEquality(g)
	registerLists(g)
	registerCombinators(g)
	registerStrings(g)
	registerChars(g)
	registerVectors(g)
	registerConversions(g)
	registerPredicates(g)
	registerConsole(g)
	registerControl(g)
	registerUnsupported(g)
}

// bind installs c under its own CallableName.
func bind(g *value.Frame, c value.Callable) {
	g.Assign(value.Intern(c.CallableName()), c)
}

// bindAs installs c under an explicit name rather than its CallableName.
// Every registration in this package uses bind instead.
func bindAs(g *value.Frame, name string, c value.Callable) {
	g.Assign(value.Intern(name), c)
}
