package types

// Builtin type instances. The variants carry no state, so sharing one
// instance per builtin keeps comparisons cheap.
var (
	Number = &NumberType{}
	Int32  = &Int32Type{}
	Bool   = &BoolType{}
	Void   = &VoidType{}
)

// Builtins is the catalog seeded once per compilation session into the
// outermost scope. Never mutated.
var Builtins = map[string]Type{
	"Number": Number,
	"Int32":  Int32,
	"Bool":   Bool,
	"Void":   Void,
}

// BuiltinNames returns the catalog names in deterministic order.
func BuiltinNames() []string {
	return []string{"Number", "Int32", "Bool", "Void"}
}

// IsBuiltinType checks if a type name is part of the builtin catalog.
func IsBuiltinType(name string) bool {
	_, ok := Builtins[name]
	return ok
}
