package compiler

import (
	"ksc/internal/ast"
	"ksc/internal/errors"
	"ksc/internal/ir"
	"ksc/internal/types"
)

// Compiler lowers a parsed program into an SSA-form IR module. The
// first error aborts compilation; nothing is emitted speculatively and
// the AST is never mutated.
type Compiler struct {
	ctx *Context
}

func New() *Compiler {
	return &Compiler{ctx: NewContext()}
}

// Context exposes the session state, mainly for tests and embedders.
func (c *Compiler) Context() *Context {
	return c.ctx
}

// Compile creates the module and lowers every statement of the
// program. A compiler drives a single module; compiling a second
// program with the same Compiler is ModuleAlreadyCreated.
func (c *Compiler) Compile(moduleName string, prog *ast.Program) (*ir.Module, error) {
	if err := c.ctx.CreateModule(moduleName, prog.NodePos()); err != nil {
		return nil, err
	}
	for _, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case *ast.FunctionDecl:
			if err := c.compileFunctionDecl(s); err != nil {
				return nil, err
			}
		case *ast.ExprStmt:
			return nil, errors.NoEnclosingFunction("a top-level expression", s.Pos)
		default:
			return nil, errors.UnsupportedConstruct("statement", stmt.NodePos())
		}
	}
	return c.ctx.Module(), nil
}

func (c *Compiler) compileFunctionDecl(decl *ast.FunctionDecl) error {
	if decl.Body == nil {
		paramTypes := make([]string, len(decl.Params))
		for i, p := range decl.Params {
			paramTypes[i] = p.TypeName
		}
		_, err := c.ctx.DeclareFunction(decl.Name, decl.Return, paramTypes, decl.Pos)
		return err
	}

	fn, err := c.ctx.DefineFunction(decl)
	if err != nil {
		return err
	}
	defer c.ctx.EndFunction()

	tail, err := c.compileFunctionBody(decl.Body, fn.ReturnType)
	if err != nil {
		return err
	}

	if types.IsVoid(fn.ReturnType) {
		c.ctx.terminate(&ir.Ret{})
		return nil
	}
	if !tail.Type.Equal(fn.ReturnType) {
		return errors.TypeMismatch(fn.ReturnType.Name(), tail.Type.Name(), decl.Body.Pos)
	}
	c.ctx.terminate(&ir.Ret{Val: tail.Value})
	return nil
}

// compileFunctionBody lowers a function body and yields its tail
// value. A bare expression body is the tail itself; a block body opens
// a scope and, when the function returns non-Void, takes the value of
// its final expression statement as the tail.
func (c *Compiler) compileFunctionBody(body *ast.ExprStmt, ret types.Type) (TypedValue, error) {
	if body.Expr != nil {
		var want types.Type
		if !types.IsVoid(ret) {
			want = ret
		}
		return c.compileExpr(body.Expr, want)
	}

	c.ctx.PushScope()
	defer c.ctx.PopScope()

	tail := voidValue()
	stmts := body.Block.Statements
	for i, stmt := range stmts {
		last := i == len(stmts)-1
		if last && !types.IsVoid(ret) {
			es, ok := stmt.(*ast.ExprStmt)
			if ok && es.Expr != nil {
				v, err := c.compileExpr(es.Expr, ret)
				if err != nil {
					return TypedValue{}, err
				}
				tail = v
				break
			}
		}
		if err := c.compileStmt(stmt); err != nil {
			return TypedValue{}, err
		}
	}
	return tail, nil
}

func (c *Compiler) compileStmt(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := c.compileExprStmt(s)
		return err
	case *ast.FunctionDecl:
		return errors.UnsupportedConstruct("a nested function declaration", s.Pos)
	default:
		return errors.UnsupportedConstruct("statement", stmt.NodePos())
	}
}

// compileArm lowers an expression statement in branch position (if
// arms, loop bodies). The arm gets a scope of its own, so a declaration
// in a bare-expression arm is as local as one inside a block and never
// survives the merge.
func (c *Compiler) compileArm(stmt *ast.ExprStmt) (TypedValue, error) {
	c.ctx.PushScope()
	defer c.ctx.PopScope()
	return c.compileExprStmt(stmt)
}

// compileExprStmt lowers one expression statement. A block opens a
// scope, lowers its statements, and yields Void; a bare expression
// yields its value.
func (c *Compiler) compileExprStmt(stmt *ast.ExprStmt) (TypedValue, error) {
	if stmt.Expr != nil {
		return c.compileExpr(stmt.Expr, nil)
	}

	c.ctx.PushScope()
	defer c.ctx.PopScope()
	for _, s := range stmt.Block.Statements {
		if err := c.compileStmt(s); err != nil {
			return TypedValue{}, err
		}
	}
	return voidValue(), nil
}
