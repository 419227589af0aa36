package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqIdentity(t *testing.T) {
	a := NewInt(5)
	b := NewInt(5)
	assert.False(t, Eq(a, b), "separately constructed numbers are not eq?")
	assert.True(t, Eq(a, a))
}

func TestEqSingletons(t *testing.T) {
	assert.True(t, Eq(Nil, Nil))
	assert.True(t, Eq(True, True))
	assert.False(t, Eq(True, False))
	assert.True(t, Eq(Undefined, Undefined))
}

func TestEqSymbolsInterned(t *testing.T) {
	assert.True(t, Eq(Intern("x"), Intern("x")))
}

func TestEqvNumbers(t *testing.T) {
	assert.True(t, Eqv(NewInt(5), NewInt(5)))
	assert.False(t, Eqv(NewInt(5), NewFloat(5)), "exactness must match for eqv?")
	assert.True(t, Eqv(NewFloat(1.5), NewFloat(1.5)))
}

func TestEqvCharacters(t *testing.T) {
	assert.True(t, Eqv(NewCharacter('a'), NewCharacter('a')))
	assert.False(t, Eqv(NewCharacter('a'), NewCharacter('b')))
}

func TestEqvStringsAreIdentityOnly(t *testing.T) {
	a := NewString("hi")
	b := NewString("hi")
	assert.False(t, Eqv(a, b))
	assert.True(t, Eqv(a, a))
}

func TestEqualStringsByContent(t *testing.T) {
	assert.True(t, Equal(NewString("hi"), NewString("hi")))
	assert.False(t, Equal(NewString("hi"), NewString("bye")))
}

func TestEqualListsStructurally(t *testing.T) {
	a := SliceToList([]Value{NewInt(1), NewInt(2)})
	b := SliceToList([]Value{NewInt(1), NewInt(2)})
	assert.True(t, Equal(a, b))
	assert.False(t, Eq(a, b))
}

func TestEqualVectorsStructurally(t *testing.T) {
	a := NewVector([]Value{NewInt(1), NewString("x")})
	b := NewVector([]Value{NewInt(1), NewString("x")})
	assert.True(t, Equal(a, b))

	c := NewVector([]Value{NewInt(1)})
	assert.False(t, Equal(a, c))
}

func TestEqualFallsBackToEqvForNumbers(t *testing.T) {
	assert.True(t, Equal(NewInt(3), NewInt(3)))
	assert.False(t, Equal(NewInt(3), NewFloat(3)))
}
