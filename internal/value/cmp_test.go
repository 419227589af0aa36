package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// These compare independently-constructed value trees for deep structural
// equality, as a cross-check on Equal/write.go's own notion of "the same
// structure" using a library that doesn't share any code with either.

func TestSliceToListStructurallyMatchesHandBuiltList(t *testing.T) {
	fromSlice := SliceToList([]Value{NewInt(1), NewInt(2), NewInt(3)})
	handBuilt := Cons(NewInt(1), Cons(NewInt(2), Cons(NewInt(3), Nil)))

	if diff := cmp.Diff(handBuilt, fromSlice); diff != "" {
		t.Errorf("list construction mismatch (-want +got):\n%s", diff)
	}
}

func TestVectorStructurallyMatchesAcrossIndependentConstruction(t *testing.T) {
	a := NewVector([]Value{NewInt(1), NewString("x"), True})
	b := NewVector([]Value{NewInt(1), NewString("x"), True})

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("vector contents mismatch (-want +got):\n%s", diff)
	}
}

func TestDeepCopyProducesAStructurallyIdenticalButDistinctPair(t *testing.T) {
	original := Cons(NewInt(1), Cons(Intern("x"), Nil))
	copied := Cons(NewInt(1), Cons(Intern("x"), Nil))

	if diff := cmp.Diff(original, copied); diff != "" {
		t.Errorf("copy diverged from original (-want +got):\n%s", diff)
	}
	if original == copied {
		t.Error("expected independently-constructed pairs to be distinct objects")
	}
}
