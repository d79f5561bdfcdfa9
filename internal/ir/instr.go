package ir

import (
	"ksc/internal/types"
)

type Instruction interface {
	Result() *Value
	isInstr()
}

// Terminator ends a basic block.
type Terminator interface {
	Instruction
	Successors() []*BasicBlock
}

// Alloca reserves one addressable storage slot. The result value is the
// slot address; its Type field records the pointee type.
type Alloca struct {
	Res *Value
	Ty  types.Type
}

// Load reads the current value out of a slot.
type Load struct {
	Res  *Value
	Addr *Value
}

// Store writes a value into a slot. Produces no result.
type Store struct {
	Addr *Value
	Val  *Value
}

// BinaryOp names the representation-specific arithmetic primitives.
type BinaryOp string

const (
	// Number (IEEE-754 double) arithmetic
	FAdd BinaryOp = "FADD"
	FSub BinaryOp = "FSUB"
	FMul BinaryOp = "FMUL"
	FDiv BinaryOp = "FDIV"
	FRem BinaryOp = "FREM"

	// Int32 (signed) arithmetic
	Add BinaryOp = "ADD"
	Sub BinaryOp = "SUB"
	Mul BinaryOp = "MUL"
	Div BinaryOp = "DIV"
	Rem BinaryOp = "REM"
)

type Binary struct {
	Res *Value
	Op  BinaryOp
	L   *Value
	R   *Value
}

// CmpPred is a comparison predicate; the operand type picks the
// float or signed-integer flavor.
type CmpPred string

const (
	Eq CmpPred = "eq"
	Ne CmpPred = "ne"
	Lt CmpPred = "lt"
	Le CmpPred = "le"
	Gt CmpPred = "gt"
	Ge CmpPred = "ge"
)

// Cmp compares two same-typed operands and yields a Bool.
type Cmp struct {
	Res  *Value
	Pred CmpPred
	L    *Value
	R    *Value
}

// Call invokes a module function. Res is nil when the callee returns
// Void.
type Call struct {
	Res    *Value
	Callee *Function
	Args   []*Value
}

// PhiEdge is one incoming (predecessor block, value) pair. Edges keep
// insertion order; rendering never iterates a map.
type PhiEdge struct {
	Block *BasicBlock
	Value *Value
}

// Phi selects among incoming values based on the predecessor control
// arrived from.
type Phi struct {
	Res      *Value
	Incoming []PhiEdge
}

// CondBr terminates a block with a two-way conditional branch.
type CondBr struct {
	Cond *Value
	Then *BasicBlock
	Else *BasicBlock
}

// Br terminates a block with an unconditional jump.
type Br struct {
	Target *BasicBlock
}

// Ret terminates a block returning Val, or void when Val is nil.
type Ret struct {
	Val *Value
}

func (a *Alloca) Result() *Value { return a.Res }
func (l *Load) Result() *Value   { return l.Res }
func (s *Store) Result() *Value  { return nil }
func (b *Binary) Result() *Value { return b.Res }
func (c *Cmp) Result() *Value    { return c.Res }
func (c *Call) Result() *Value   { return c.Res }
func (p *Phi) Result() *Value    { return p.Res }
func (b *CondBr) Result() *Value { return nil }
func (b *Br) Result() *Value     { return nil }
func (r *Ret) Result() *Value    { return nil }

func (*Alloca) isInstr() {}
func (*Load) isInstr()   {}
func (*Store) isInstr()  {}
func (*Binary) isInstr() {}
func (*Cmp) isInstr()    {}
func (*Call) isInstr()   {}
func (*Phi) isInstr()    {}
func (*CondBr) isInstr() {}
func (*Br) isInstr()     {}
func (*Ret) isInstr()    {}

func (b *CondBr) Successors() []*BasicBlock { return []*BasicBlock{b.Then, b.Else} }
func (b *Br) Successors() []*BasicBlock     { return []*BasicBlock{b.Target} }
func (r *Ret) Successors() []*BasicBlock    { return nil }
