package value

import "github.com/amirkamil/cs61a-scheme-editor/internal/schemeerr"

// Frame is a binding environment: a parent link plus a name→value map, with
// a process-unique ID for diagnostics. Frames form a tree rooted at the
// global frame.
type Frame struct {
	ID       FrameID
	Name     string
	Parent   *Frame
	bindings map[*Symbol]Value
}

// NewGlobalFrame creates the root frame with no parent. The primitive
// registry populates it (internal/builtins).
func NewGlobalFrame() *Frame {
	return &Frame{ID: newFrameID(), Name: "global", bindings: map[*Symbol]Value{}}
}

// NewChildFrame creates a frame enclosed by parent, e.g. for a procedure
// call or a let body.
func NewChildFrame(parent *Frame, name string) *Frame {
	return &Frame{ID: newFrameID(), Name: name, Parent: parent, bindings: map[*Symbol]Value{}}
}

// Assign defines or rebinds name in this frame only.
func (f *Frame) Assign(name *Symbol, v Value) {
	f.bindings[name] = v
}

// Lookup walks up the frame chain for name, failing with NameNotFound if
// unbound anywhere.
func (f *Frame) Lookup(name *Symbol) (Value, error) {
	for fr := f; fr != nil; fr = fr.Parent {
		if v, ok := fr.bindings[name]; ok {
			return v, nil
		}
	}
	return nil, schemeerr.NameNotFound(name.Name)
}

// Mutate walks up the frame chain for name and rebinds it in place, never
// creating a new binding; fails with NameNotFound if unbound anywhere.
func (f *Frame) Mutate(name *Symbol, v Value) error {
	for fr := f; fr != nil; fr = fr.Parent {
		if _, ok := fr.bindings[name]; ok {
			fr.bindings[name] = v
			return nil
		}
	}
	return schemeerr.NameNotFound(name.Name)
}

// Has reports whether name is bound in this frame only, ignoring parent
// frames.
func (f *Frame) Has(name *Symbol) bool {
	_, ok := f.bindings[name]
	return ok
}
