package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinEquality(t *testing.T) {
	assert.True(t, Number.Equal(Number))
	assert.True(t, Number.Equal(&NumberType{}), "equality is structural, not pointer identity")
	assert.False(t, Number.Equal(Int32), "Number and Int32 never unify")
	assert.False(t, Int32.Equal(Bool))
	assert.True(t, Void.Equal(Void))
}

func TestBuiltinCatalog(t *testing.T) {
	assert.Equal(t, []string{"Number", "Int32", "Bool", "Void"}, BuiltinNames())
	for _, name := range BuiltinNames() {
		assert.True(t, IsBuiltinType(name))
		assert.Equal(t, name, Builtins[name].Name())
	}
	assert.False(t, IsBuiltinType("Matrix"))
}

func TestCompositeNames(t *testing.T) {
	fn := &FunctionType{Params: []Type{Number, Number}, Return: Number}
	assert.Equal(t, "fn(Number, Number) -> Number", fn.Name())

	assert.Equal(t, "List<Int32>", (&ListType{Elem: Int32}).Name())
	assert.Equal(t, "Point", (&StructType{TypeName: "Point"}).Name())
}

func TestCompositeEquality(t *testing.T) {
	a := &FunctionType{Params: []Type{Number}, Return: Void}
	b := &FunctionType{Params: []Type{Number}, Return: Void}
	c := &FunctionType{Params: []Type{Int32}, Return: Void}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(&FunctionType{Return: Void}), "arity is part of the type")

	assert.True(t, (&ListType{Elem: Int32}).Equal(&ListType{Elem: Int32}))
	assert.False(t, (&ListType{Elem: Int32}).Equal(&ListType{Elem: Number}))

	assert.True(t, (&StructType{TypeName: "Point"}).Equal(&StructType{TypeName: "Point"}))
	assert.False(t, (&StructType{TypeName: "Point"}).Equal(&StructType{TypeName: "Size"}))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsVoid(Void))
	assert.False(t, IsVoid(Number))

	assert.True(t, IsArithmetic(Number))
	assert.True(t, IsArithmetic(Int32))
	assert.False(t, IsArithmetic(Bool))
	assert.False(t, IsArithmetic(&ListType{Elem: Int32}))

	assert.True(t, IsComparable(Bool))
	assert.False(t, IsComparable(Void))
	assert.False(t, IsComparable(&StructType{TypeName: "Point"}))
}
