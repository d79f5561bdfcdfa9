package compiler

import (
	"ksc/internal/ast"
	"ksc/internal/errors"
	"ksc/internal/ir"
	"ksc/internal/types"
)

// compileIf lowers an if-expression:
//
//  1. lower the condition and normalize it to Bool shape;
//  2. create then/else/merge blocks, in that order, and branch;
//  3. lower each branch, recording the block the cursor actually ends
//     in before jumping to merge — branch lowering may open and close
//     further blocks, so the originally created block is not assumed
//     to be the phi predecessor;
//  4. position at merge and phi the two recorded exits together.
//
// Two Void branches make the whole expression Void with no phi. One
// Void branch against a valued one is a type error, never a coercion.
func (c *Compiler) compileIf(e *ast.IfExpr) (TypedValue, error) {
	if !c.ctx.InFunction() {
		return TypedValue{}, errors.NoEnclosingFunction("an if expression", e.Pos)
	}

	cond, err := c.compileExpr(e.Cond, nil)
	if err != nil {
		return TypedValue{}, err
	}

	thenBlock := c.ctx.NewBlock("then")
	elseBlock := c.ctx.NewBlock("else")
	mergeBlock := c.ctx.NewBlock("merge")

	if err := c.ctx.BranchCond(cond, thenBlock, elseBlock, e.Pos); err != nil {
		return TypedValue{}, err
	}

	c.ctx.Position(thenBlock)
	thenVal, err := c.compileArm(e.Then)
	if err != nil {
		return TypedValue{}, err
	}
	thenExit := c.ctx.Block()
	c.ctx.Branch(mergeBlock)

	c.ctx.Position(elseBlock)
	elseVal, err := c.compileArm(e.Else)
	if err != nil {
		return TypedValue{}, err
	}
	elseExit := c.ctx.Block()
	c.ctx.Branch(mergeBlock)

	c.ctx.Position(mergeBlock)

	thenVoid := types.IsVoid(thenVal.Type)
	elseVoid := types.IsVoid(elseVal.Type)
	if thenVoid && elseVoid {
		return voidValue(), nil
	}
	if thenVoid != elseVoid {
		return TypedValue{}, errors.TypeMismatch(thenVal.Type.Name(), elseVal.Type.Name(), e.Pos)
	}
	return c.ctx.MergePhi(thenVal, thenExit, elseVal, elseExit, e.Pos)
}

// compileWhile lowers a while-expression as header, body and exit
// blocks. The header's conditional branch decides body-vs-exit; the
// body jumps back to the header. Loops yield Void, so no phi is
// needed.
func (c *Compiler) compileWhile(e *ast.WhileExpr) (TypedValue, error) {
	if !c.ctx.InFunction() {
		return TypedValue{}, errors.NoEnclosingFunction("a while expression", e.Pos)
	}

	header := c.ctx.NewBlock("loop")
	body := c.ctx.NewBlock("body")
	exit := c.ctx.NewBlock("endloop")

	c.ctx.Branch(header)
	c.ctx.Position(header)
	cond, err := c.compileExpr(e.Cond, nil)
	if err != nil {
		return TypedValue{}, err
	}
	if err := c.ctx.BranchCond(cond, body, exit, e.Pos); err != nil {
		return TypedValue{}, err
	}

	c.ctx.Position(body)
	if _, err := c.compileArm(e.Body); err != nil {
		return TypedValue{}, err
	}
	c.ctx.Branch(header)

	c.ctx.Position(exit)
	return voidValue(), nil
}

// compileFor lowers `for x from n do body`: a counter slot starts at
// zero and the loop runs while counter < n, incrementing by one after
// each body pass. The loop variable is bound to the counter slot in a
// scope of its own.
func (c *Compiler) compileFor(e *ast.ForExpr) (TypedValue, error) {
	if !c.ctx.InFunction() {
		return TypedValue{}, errors.NoEnclosingFunction("a for expression", e.Pos)
	}

	src, err := c.ctx.LookupVar(e.Source, e.Pos)
	if err != nil {
		return TypedValue{}, err
	}
	if !types.IsArithmetic(src.typ) {
		return TypedValue{}, errors.TypeMismatch("Number", src.typ.Name(), e.Pos)
	}

	counter := c.ctx.EmitAlloca(src.typ)
	c.ctx.EmitStore(zeroConst(src.typ), counter)

	header := c.ctx.NewBlock("loop")
	body := c.ctx.NewBlock("body")
	exit := c.ctx.NewBlock("endloop")

	c.ctx.Branch(header)
	c.ctx.Position(header)
	current := c.ctx.EmitLoad(counter, src.typ)
	limit := c.ctx.EmitLoad(src.slot, src.typ)
	cond := c.ctx.EmitCmp(ir.Lt, current, limit)
	if err := c.ctx.BranchCond(TypedValue{Type: types.Bool, Value: cond}, body, exit, e.Pos); err != nil {
		return TypedValue{}, err
	}

	c.ctx.Position(body)
	c.ctx.PushScope()
	c.ctx.Bind(e.Var, src.typ, counter)
	if _, err := c.compileArm(e.Body); err != nil {
		c.ctx.PopScope()
		return TypedValue{}, err
	}
	stepped := c.ctx.EmitBinary(addOp(src.typ), c.ctx.EmitLoad(counter, src.typ), oneConst(src.typ), src.typ)
	c.ctx.EmitStore(stepped, counter)
	c.ctx.PopScope()
	c.ctx.Branch(header)

	c.ctx.Position(exit)
	return voidValue(), nil
}

func addOp(t types.Type) ir.BinaryOp {
	if _, ok := t.(*types.Int32Type); ok {
		return ir.Add
	}
	return ir.FAdd
}
