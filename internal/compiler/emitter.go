package compiler

import (
	"fmt"
	"strconv"

	"ksc/internal/ast"
	"ksc/internal/errors"
	"ksc/internal/ir"
	"ksc/internal/types"
)

// NewBlock creates a basic block in the current function. The label is
// the purpose plus a per-function counter, so block naming follows
// creation order deterministically.
func (c *Context) NewBlock(purpose string) *ir.BasicBlock {
	label := fmt.Sprintf("%s%d", purpose, c.blocks)
	c.blocks++
	return c.fn.NewBlock(label)
}

// Position moves the insertion cursor. It terminates nothing; it is
// used to resume emission into a previously created block.
func (c *Context) Position(block *ir.BasicBlock) {
	c.cursor = block
}

// Block returns the block the cursor is currently in. Branch lowering
// reads this to learn the actual predecessor for a phi edge.
func (c *Context) Block() *ir.BasicBlock {
	return c.cursor
}

func (c *Context) emit(inst ir.Instruction) {
	c.cursor.Append(inst)
}

func (c *Context) terminate(t ir.Terminator) {
	c.cursor.Term = t
}

func (c *Context) EmitAlloca(t types.Type) *ir.Value {
	res := ir.NewResult(t)
	c.emit(&ir.Alloca{Res: res, Ty: t})
	return res
}

func (c *Context) EmitStore(val, slot *ir.Value) {
	c.emit(&ir.Store{Addr: slot, Val: val})
}

func (c *Context) EmitLoad(slot *ir.Value, t types.Type) *ir.Value {
	res := ir.NewResult(t)
	c.emit(&ir.Load{Res: res, Addr: slot})
	return res
}

func (c *Context) EmitBinary(op ir.BinaryOp, l, r *ir.Value, t types.Type) *ir.Value {
	res := ir.NewResult(t)
	c.emit(&ir.Binary{Res: res, Op: op, L: l, R: r})
	return res
}

func (c *Context) EmitCmp(pred ir.CmpPred, l, r *ir.Value) *ir.Value {
	res := ir.NewResult(types.Bool)
	c.emit(&ir.Cmp{Res: res, Pred: pred, L: l, R: r})
	return res
}

// EmitCall emits a call and yields its result; Void callees yield no
// value.
func (c *Context) EmitCall(fn *ir.Function, args []*ir.Value) TypedValue {
	if types.IsVoid(fn.ReturnType) {
		c.emit(&ir.Call{Callee: fn, Args: args})
		return voidValue()
	}
	res := ir.NewResult(fn.ReturnType)
	c.emit(&ir.Call{Res: res, Callee: fn, Args: args})
	return TypedValue{Type: fn.ReturnType, Value: res}
}

// Branch terminates the current block with an unconditional jump.
func (c *Context) Branch(target *ir.BasicBlock) {
	c.terminate(&ir.Br{Target: target})
}

// BranchCond terminates the current block with a conditional branch.
// The condition is normalized to Bool shape first: a Bool feeds the
// branch directly, a Number or Int32 is compared against the zero
// constant of its own representation, anything else is a type error.
func (c *Context) BranchCond(cond TypedValue, then, els *ir.BasicBlock, pos ast.Position) error {
	truth, err := c.truthValue(cond, pos)
	if err != nil {
		return err
	}
	c.terminate(&ir.CondBr{Cond: truth, Then: then, Else: els})
	return nil
}

func (c *Context) truthValue(cond TypedValue, pos ast.Position) (*ir.Value, error) {
	switch cond.Type.(type) {
	case *types.BoolType:
		return cond.Value, nil
	case *types.NumberType, *types.Int32Type:
		return c.EmitCmp(ir.Ne, cond.Value, zeroConst(cond.Type)), nil
	default:
		return nil, errors.TypeMismatch("Bool", cond.Type.Name(), pos)
	}
}

// MergePhi produces the SSA value of a two-way merge. The cursor must
// already be positioned in the merge block, and both incoming values
// must have exactly the same type.
func (c *Context) MergePhi(thenVal TypedValue, thenBlock *ir.BasicBlock, elseVal TypedValue, elseBlock *ir.BasicBlock, pos ast.Position) (TypedValue, error) {
	if !thenVal.Type.Equal(elseVal.Type) {
		return TypedValue{}, errors.TypeMismatch(thenVal.Type.Name(), elseVal.Type.Name(), pos)
	}
	res := ir.NewResult(thenVal.Type)
	c.emit(&ir.Phi{Res: res, Incoming: []ir.PhiEdge{
		{Block: thenBlock, Value: thenVal.Value},
		{Block: elseBlock, Value: elseVal.Value},
	}})
	return TypedValue{Type: thenVal.Type, Value: res}, nil
}

// zeroConst returns the zero constant of a Number, Int32 or Bool
// representation.
func zeroConst(t types.Type) *ir.Value {
	if _, ok := t.(*types.BoolType); ok {
		return ir.NewConst("false", t)
	}
	return ir.NewConst("0", t)
}

func oneConst(t types.Type) *ir.Value {
	return ir.NewConst("1", t)
}

func numberLiteral(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
