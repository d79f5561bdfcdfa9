package ir

import (
	"ksc/internal/types"
)

// The IR is in static single assignment form: functions hold basic
// blocks, each block is a straight-line instruction sequence ending in
// exactly one terminator, and control-flow joins merge values with phi
// instructions.

// Module owns the functions of one compilation unit. Functions keeps
// declaration order so rendering is deterministic; byName is the lookup
// table call lowering consults.
type Module struct {
	Name      string
	Functions []*Function
	byName    map[string]*Function
}

func NewModule(name string) *Module {
	return &Module{
		Name:   name,
		byName: make(map[string]*Function),
	}
}

// Function returns the named function, or nil.
func (m *Module) Function(name string) *Function {
	return m.byName[name]
}

// AddFunction registers fn under its name. The caller has already
// rejected duplicates.
func (m *Module) AddFunction(fn *Function) {
	m.Functions = append(m.Functions, fn)
	m.byName[fn.Name] = fn
}

// Function is created once. A function with no blocks is a declaration
// without a body; defining it adds the entry block and any blocks the
// body lowering inserts.
type Function struct {
	Name       string
	Params     []*Parameter
	ReturnType types.Type
	Blocks     []*BasicBlock
}

type Parameter struct {
	Name  string
	Type  types.Type
	Value *Value
}

// Defined reports whether the function has a body.
func (f *Function) Defined() bool {
	return len(f.Blocks) > 0
}

// Entry returns the entry block, or nil for a declaration.
func (f *Function) Entry() *BasicBlock {
	if len(f.Blocks) == 0 {
		return nil
	}
	return f.Blocks[0]
}

// NewBlock appends a block with the given label to the function.
func (f *Function) NewBlock(label string) *BasicBlock {
	block := &BasicBlock{Label: label}
	f.Blocks = append(f.Blocks, block)
	return block
}

type BasicBlock struct {
	Label        string
	Instructions []Instruction
	Term         Terminator
}

// Terminated reports whether the block already has its terminator.
func (b *BasicBlock) Terminated() bool {
	return b.Term != nil
}

func (b *BasicBlock) Append(inst Instruction) {
	b.Instructions = append(b.Instructions, inst)
}

// Value is an SSA value: defined exactly once, by an instruction, a
// parameter, or a constant. Unnamed values receive their numbers at
// render time so identical modules print identically.
type Value struct {
	Name    string // parameter name; empty for unnamed results
	Literal string // constant rendering; empty for instruction results
	Type    types.Type
}

// IsConst reports whether the value is an inline constant.
func (v *Value) IsConst() bool {
	return v.Literal != ""
}

// NewResult creates an unnamed instruction-result value.
func NewResult(t types.Type) *Value {
	return &Value{Type: t}
}

// NewParam creates a named incoming-parameter value.
func NewParam(name string, t types.Type) *Value {
	return &Value{Name: name, Type: t}
}

// NewConst creates an inline constant value with its literal rendering.
func NewConst(literal string, t types.Type) *Value {
	return &Value{Literal: literal, Type: t}
}
