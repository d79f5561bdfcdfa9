package compiler

import (
	"ksc/internal/ast"
	"ksc/internal/errors"
	"ksc/internal/ir"
	"ksc/internal/types"
)

// TypedValue couples an IR value with its language type. Void values
// carry no underlying IR value.
type TypedValue struct {
	Type  types.Type
	Value *ir.Value
}

func voidValue() TypedValue {
	return TypedValue{Type: types.Void}
}

// Context is the state of one compilation session: the module under
// construction, the scope stack, and the single insertion cursor.
// Exactly one basic block is open for writing at any time; every
// lowering routine leaves the cursor at the correct successor block
// before returning.
type Context struct {
	module *ir.Module
	fn     *ir.Function
	cursor *ir.BasicBlock
	blocks int // per-function label counter
	scopes []*scope
}

// NewContext starts a session with the builtin type catalog bound in
// the outermost scope.
func NewContext() *Context {
	c := &Context{scopes: []*scope{newScope()}}
	for _, name := range types.BuiltinNames() {
		c.scopes[0].types[name] = types.Builtins[name]
	}
	return c
}

// CreateModule creates the session's module, exactly once.
func (c *Context) CreateModule(name string, pos ast.Position) error {
	if c.module != nil {
		return errors.ModuleAlreadyCreated(c.module.Name, pos)
	}
	c.module = ir.NewModule(name)
	return nil
}

// Module returns the module under construction, or nil before
// CreateModule.
func (c *Context) Module() *ir.Module {
	return c.module
}

// InFunction reports whether a function body is currently being
// lowered.
func (c *Context) InFunction() bool {
	return c.fn != nil
}

// DeclareFunction registers a callable signature without a body. Every
// named type must resolve before anything is created.
func (c *Context) DeclareFunction(name string, returnType string, paramTypes []string, pos ast.Position) (*ir.Function, error) {
	if c.module == nil {
		return nil, errors.NoModule(pos)
	}
	ret, err := c.ResolveType(returnType, pos)
	if err != nil {
		return nil, err
	}
	params := make([]*ir.Parameter, len(paramTypes))
	for i, typeName := range paramTypes {
		t, err := c.ResolveType(typeName, pos)
		if err != nil {
			return nil, err
		}
		params[i] = &ir.Parameter{Type: t}
	}
	if c.module.Function(name) != nil {
		return nil, errors.DuplicateFunction(name, pos)
	}
	fn := &ir.Function{Name: name, Params: params, ReturnType: ret}
	c.module.AddFunction(fn)
	return fn, nil
}

// DefineFunction registers the signature, opens the entry block,
// positions the cursor there, and binds each parameter to a fresh
// storage slot in a newly pushed scope. The signature lands in the
// module's function table before the body is lowered, so recursive
// calls resolve.
func (c *Context) DefineFunction(decl *ast.FunctionDecl) (*ir.Function, error) {
	paramTypes := make([]string, len(decl.Params))
	for i, p := range decl.Params {
		paramTypes[i] = p.TypeName
	}
	fn, err := c.DeclareFunction(decl.Name, decl.Return, paramTypes, decl.Pos)
	if err != nil {
		return nil, err
	}

	c.fn = fn
	c.blocks = 0
	c.cursor = fn.NewBlock("entry")
	c.PushScope()

	for i, p := range decl.Params {
		param := fn.Params[i]
		param.Name = p.Name
		param.Value = ir.NewParam(p.Name, param.Type)

		slot := c.EmitAlloca(param.Type)
		c.EmitStore(param.Value, slot)
		c.Bind(p.Name, param.Type, slot)
	}
	return fn, nil
}

// EndFunction closes the body scope and clears the cursor.
func (c *Context) EndFunction() {
	c.PopScope()
	c.fn = nil
	c.cursor = nil
}
