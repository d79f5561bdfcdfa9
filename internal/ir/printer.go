package ir

import (
	"fmt"
	"strings"
)

// Printer renders a module to text. Rendering is deterministic: block
// order is creation order, phi edges keep insertion order, and unnamed
// values are numbered monotonically from zero per render.
type Printer struct {
	output  strings.Builder
	numbers map[*Value]int
	next    int
}

func NewPrinter() *Printer {
	return &Printer{numbers: make(map[*Value]int)}
}

// Print returns the textual rendering of a module.
func Print(m *Module) string {
	p := NewPrinter()
	p.printModule(m)
	return p.output.String()
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

func (p *Printer) printModule(m *Module) {
	p.writeLine("MODULE %s", m.Name)

	for _, fn := range m.Functions {
		p.writeLine("")
		if fn.Defined() {
			p.printFunction(fn)
		} else {
			p.writeLine("DECLARE %s", p.signature(fn))
		}
	}
}

func (p *Printer) signature(fn *Function) string {
	params := make([]string, len(fn.Params))
	for i, param := range fn.Params {
		if param.Name == "" {
			// declare-only signatures carry no parameter names
			params[i] = param.Type.Name()
		} else {
			params[i] = fmt.Sprintf("%s: %s", param.Name, param.Type.Name())
		}
	}
	return fmt.Sprintf("%s(%s) -> %s", fn.Name, strings.Join(params, ", "), fn.ReturnType.Name())
}

func (p *Printer) printFunction(fn *Function) {
	p.writeLine("FUNCTION %s {", p.signature(fn))
	for _, block := range fn.Blocks {
		p.printBlock(block)
	}
	p.writeLine("}")
}

func (p *Printer) printBlock(block *BasicBlock) {
	p.writeLine("%s:", block.Label)
	for _, inst := range block.Instructions {
		p.writeLine("  %s", p.instruction(inst))
	}
	if block.Term != nil {
		p.writeLine("  %s", p.instruction(block.Term))
	}
}

func (p *Printer) instruction(inst Instruction) string {
	switch i := inst.(type) {
	case *Alloca:
		return fmt.Sprintf("%s = ALLOCA %s", p.value(i.Res), i.Ty.Name())
	case *Load:
		return fmt.Sprintf("%s = LOAD %s", p.value(i.Res), p.value(i.Addr))
	case *Store:
		return fmt.Sprintf("STORE %s, %s", p.value(i.Val), p.value(i.Addr))
	case *Binary:
		return fmt.Sprintf("%s = %s %s, %s", p.value(i.Res), i.Op, p.value(i.L), p.value(i.R))
	case *Cmp:
		return fmt.Sprintf("%s = CMP %s %s, %s", p.value(i.Res), i.Pred, p.value(i.L), p.value(i.R))
	case *Call:
		if i.Res != nil {
			return fmt.Sprintf("%s = CALL %s(%s)", p.value(i.Res), i.Callee.Name, p.args(i.Args))
		}
		return fmt.Sprintf("CALL %s(%s)", i.Callee.Name, p.args(i.Args))
	case *Phi:
		edges := make([]string, len(i.Incoming))
		for n, edge := range i.Incoming {
			edges[n] = fmt.Sprintf("[%s: %s]", edge.Block.Label, p.value(edge.Value))
		}
		return fmt.Sprintf("%s = PHI %s", p.value(i.Res), strings.Join(edges, ", "))
	case *CondBr:
		return fmt.Sprintf("br_if(%s, %s, %s)", p.value(i.Cond), i.Then.Label, i.Else.Label)
	case *Br:
		return fmt.Sprintf("jump %s", i.Target.Label)
	case *Ret:
		if i.Val != nil {
			return fmt.Sprintf("RETURN %s", p.value(i.Val))
		}
		return "RETURN"
	default:
		return fmt.Sprintf("UNKNOWN_INST<%T>", i)
	}
}

// value renders a single value: constants inline, named values as
// %name, unnamed results as %N in first-seen order.
func (p *Printer) value(v *Value) string {
	if v == nil {
		return "null"
	}
	if v.IsConst() {
		return v.Literal
	}
	if v.Name != "" {
		return "%" + v.Name
	}
	n, ok := p.numbers[v]
	if !ok {
		n = p.next
		p.numbers[v] = n
		p.next++
	}
	return fmt.Sprintf("%%%d", n)
}

func (p *Printer) args(args []*Value) string {
	strs := make([]string, len(args))
	for i, arg := range args {
		strs[i] = p.value(arg)
	}
	return strings.Join(strs, ", ")
}

func (m *Module) String() string { return Print(m) }
