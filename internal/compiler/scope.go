package compiler

import (
	"ksc/internal/ast"
	"ksc/internal/errors"
	"ksc/internal/ir"
	"ksc/internal/types"
)

// binding is a named, addressable value: the declared type plus the
// storage slot holding the current value.
type binding struct {
	typ  types.Type
	slot *ir.Value
}

// scope holds the type and value bindings introduced in one lexical
// region. Popping the scope discards both kinds at once.
type scope struct {
	types  map[string]types.Type
	values map[string]*binding
}

func newScope() *scope {
	return &scope{
		types:  make(map[string]types.Type),
		values: make(map[string]*binding),
	}
}

// PushScope opens a scope; called on function-body and block entry.
func (c *Context) PushScope() {
	c.scopes = append(c.scopes, newScope())
}

// PopScope discards every binding introduced since the matching push.
// The root scope with the builtin catalog is never popped.
func (c *Context) PopScope() {
	if len(c.scopes) > 1 {
		c.scopes = c.scopes[:len(c.scopes)-1]
	}
}

// DefineType inserts a type into the innermost scope.
func (c *Context) DefineType(name string, t types.Type, pos ast.Position) error {
	inner := c.scopes[len(c.scopes)-1]
	if _, exists := inner.types[name]; exists {
		return errors.DuplicateType(name, pos)
	}
	inner.types[name] = t
	return nil
}

// ResolveType searches innermost to outermost and returns the first
// binding for name.
func (c *Context) ResolveType(name string, pos ast.Position) (types.Type, error) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if t, ok := c.scopes[i].types[name]; ok {
			return t, nil
		}
	}
	return nil, errors.UndefinedType(name, pos)
}

// Bind records a value binding in the innermost scope. Rebinding the
// same name shadows the previous binding: last bind wins for later
// lookups in this scope.
func (c *Context) Bind(name string, t types.Type, slot *ir.Value) {
	inner := c.scopes[len(c.scopes)-1]
	inner.values[name] = &binding{typ: t, slot: slot}
}

// LookupVar searches innermost to outermost for a value binding.
func (c *Context) LookupVar(name string, pos ast.Position) (*binding, error) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if b, ok := c.scopes[i].values[name]; ok {
			return b, nil
		}
	}
	return nil, errors.UndefinedVariable(name, pos)
}
