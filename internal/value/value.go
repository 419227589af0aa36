// Package value implements the Scheme data model: the tagged
// Expression/Value variants, the process-unique singletons, mutable pair and
// vector cells, and the environment/frame chain that binds them. Expression
// and Value are the same domain since Scheme is homoiconic, so one package
// owns both the AST node types and the runtime value types, avoiding a
// lexer/ast ↔ runtime import cycle.
package value

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Value is the interface every Scheme datum implements. Type returns a
// lowercase type tag (e.g. "number"/"string") used by the tree and JSON printers;
// String returns a best-effort debug form — primitives that need the
// precise read/write syntax use Write/Display (write.go) instead.
type Value interface {
	Type() string
	String() string
}

// Number is either an exact integer or an inexact float.
// Number is heap-allocated so that eq? (identity) and eqv?/= (value) can
// differ: two separately constructed Numbers with the same value are eqv?
// but not eq?.
type Number struct {
	Exact bool
	Int   int64
	Float float64
}

func NewInt(i int64) *Number       { return &Number{Exact: true, Int: i} }
func NewFloat(f float64) *Number   { return &Number{Exact: false, Float: f} }

func (n *Number) Type() string { return "number" }

func (n *Number) String() string {
	if n.Exact {
		return strconv.FormatInt(n.Int, 10)
	}
	return formatFloat(n.Float)
}

func formatFloat(f float64) string {
	if math.IsInf(f, 1) {
		return "+inf.0"
	}
	if math.IsInf(f, -1) {
		return "-inf.0"
	}
	if math.IsNaN(f) {
		return "+nan.0"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// Ensure a float always prints with a decimal marker so round-tripping
	// through the reader reproduces an inexact number, not an integer.
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return s
		}
	}
	return s + "."
}

// AsFloat returns n's value widened to float64, regardless of exactness.
func (n *Number) AsFloat() float64 {
	if n.Exact {
		return float64(n.Int)
	}
	return n.Float
}

// Boolean is one of the two process-unique singletons #t / #f.
type Boolean struct{ Value bool }

var (
	True  = &Boolean{Value: true}
	False = &Boolean{Value: false}
)

func Bool(b bool) *Boolean {
	if b {
		return True
	}
	return False
}

func (b *Boolean) Type() string   { return "boolean" }
func (b *Boolean) String() string { return map[bool]string{true: "#t", false: "#f"}[b.Value] }

// Truthy implements "every value except the #f singleton is truthy".
func Truthy(v Value) bool {
	b, ok := v.(*Boolean)
	return !ok || b.Value
}

// Symbol is interned by text: two symbols with the same name are the same
// *Symbol pointer, so eq? on symbols is a pointer compare.
type Symbol struct{ Name string }

var (
	symbolTable   = map[string]*Symbol{}
	symbolTableMu sync.Mutex
)

// Intern returns the unique *Symbol for name, creating it on first use.
func Intern(name string) *Symbol {
	symbolTableMu.Lock()
	defer symbolTableMu.Unlock()
	if s, ok := symbolTable[name]; ok {
		return s
	}
	s := &Symbol{Name: name}
	symbolTable[name] = s
	return s
}

func (s *Symbol) Type() string   { return "symbol" }
func (s *Symbol) String() string { return s.Name }

// String is a mutable sequence of characters. Object identity, not content,
// distinguishes two strings for eqv?; equal? recurses on Runes instead.
type String struct{ Runes []rune }

func NewString(s string) *String { return &String{Runes: []rune(s)} }

func (s *String) Type() string   { return "string" }
func (s *String) String() string { return string(s.Runes) }
func (s *String) Go() string     { return string(s.Runes) }

// Character is a single Unicode code point.
type Character struct{ Rune rune }

func NewCharacter(r rune) *Character { return &Character{Rune: r} }

func (c *Character) Type() string   { return "character" }
func (c *Character) String() string { return string(c.Rune) }

// Nil is the process-unique empty-list singleton, distinct from #f.
type nilType struct{}

func (nilType) Type() string   { return "null" }
func (nilType) String() string { return "()" }

var Nil Value = nilType{}

// IsNil reports whether v is the empty-list singleton.
func IsNil(v Value) bool {
	_, ok := v.(nilType)
	return ok
}

// Undefined is the process-unique singleton side-effecting forms return.
type undefinedType struct{}

func (undefinedType) Type() string   { return "undefined" }
func (undefinedType) String() string { return "" }

var Undefined Value = undefinedType{}

// IsUndefined reports whether v is the Undefined singleton.
func IsUndefined(v Value) bool {
	_, ok := v.(undefinedType)
	return ok
}

// Pair is a mutable cons cell. Rest may be any Expression: proper-list
// discipline is not enforced by the type itself,
// only by operators that require a proper list.
type Pair struct {
	First Value
	Rest  Value
}

func Cons(first, rest Value) *Pair { return &Pair{First: first, Rest: rest} }

func (p *Pair) Type() string { return "pair" }
func (p *Pair) String() string {
	return fmt.Sprintf("(%s . %s)", printAny(p.First), printAny(p.Rest))
}

// printAny is a tiny fallback used only by String() debug forms above, which
// must not import the write package (write.go lives in this same package,
// but keeping this local avoids a forward-reference headache while the file
// is read top-to-bottom).
func printAny(v Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}

// Vector is a mutable, fixed-length ordered array of Expressions.
type Vector struct{ Items []Value }

func NewVector(items []Value) *Vector { return &Vector{Items: items} }

func (v *Vector) Type() string { return "vector" }
func (v *Vector) String() string {
	s := "#("
	for i, it := range v.Items {
		if i > 0 {
			s += " "
		}
		s += printAny(it)
	}
	return s + ")"
}

// FrameID is a process-unique identifier for a Frame, surfaced to trace
// hooks and CLI diagnostics. Modeled as a uuid rather than a counter so
// frames created by concurrently-running REPL/driver goroutines (outside
// the single-threaded evaluator itself) never collide.
type FrameID = uuid.UUID

func newFrameID() FrameID { return uuid.New() }
