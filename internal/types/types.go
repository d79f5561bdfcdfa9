package types

import (
	"fmt"
	"strings"
)

// Type is the closed set of value shapes the compiler knows about.
// Two typed values may only be combined when their types are equal;
// there are no implicit conversions.
type Type interface {
	Name() string
	Equal(Type) bool
}

// NumberType is a 64-bit IEEE-754 float.
type NumberType struct{}

// Int32Type is a 32-bit signed integer.
type Int32Type struct{}

// BoolType is a 1-bit integer.
type BoolType struct{}

// VoidType is the absence of a value.
type VoidType struct{}

type FunctionType struct {
	Params []Type
	Return Type
}

type StructType struct {
	TypeName string
	Fields   []Type
}

type ListType struct {
	Elem Type
}

func (*NumberType) Name() string { return "Number" }
func (*Int32Type) Name() string  { return "Int32" }
func (*BoolType) Name() string   { return "Bool" }
func (*VoidType) Name() string   { return "Void" }

func (f *FunctionType) Name() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Name()
	}
	return fmt.Sprintf("fn(%s) -> %s", strings.Join(params, ", "), f.Return.Name())
}

func (s *StructType) Name() string { return s.TypeName }

func (l *ListType) Name() string { return fmt.Sprintf("List<%s>", l.Elem.Name()) }

func (*NumberType) Equal(other Type) bool {
	_, ok := other.(*NumberType)
	return ok
}

func (*Int32Type) Equal(other Type) bool {
	_, ok := other.(*Int32Type)
	return ok
}

func (*BoolType) Equal(other Type) bool {
	_, ok := other.(*BoolType)
	return ok
}

func (*VoidType) Equal(other Type) bool {
	_, ok := other.(*VoidType)
	return ok
}

func (f *FunctionType) Equal(other Type) bool {
	o, ok := other.(*FunctionType)
	if !ok || len(f.Params) != len(o.Params) {
		return false
	}
	for i, p := range f.Params {
		if !p.Equal(o.Params[i]) {
			return false
		}
	}
	return f.Return.Equal(o.Return)
}

func (s *StructType) Equal(other Type) bool {
	o, ok := other.(*StructType)
	return ok && s.TypeName == o.TypeName
}

func (l *ListType) Equal(other Type) bool {
	o, ok := other.(*ListType)
	return ok && l.Elem.Equal(o.Elem)
}

// IsVoid reports whether t is the Void type.
func IsVoid(t Type) bool {
	_, ok := t.(*VoidType)
	return ok
}

// IsArithmetic reports whether t supports the arithmetic operators.
// Struct, List and function values do not.
func IsArithmetic(t Type) bool {
	switch t.(type) {
	case *NumberType, *Int32Type:
		return true
	default:
		return false
	}
}

// IsComparable reports whether values of t can be compared. Bool allows
// equality only; the caller checks orderedness separately.
func IsComparable(t Type) bool {
	switch t.(type) {
	case *NumberType, *Int32Type, *BoolType:
		return true
	default:
		return false
	}
}
