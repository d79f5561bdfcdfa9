package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// String methods render nodes back into surface-like syntax. The output
// is for debugging and tests, not for re-parsing.

func (p *Program) String() string {
	var sb strings.Builder
	for _, stmt := range p.Statements {
		sb.WriteString(stmt.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func (e *ExprStmt) String() string {
	if e.Block != nil {
		return e.Block.String()
	}
	return e.Expr.String() + ";"
}

func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range b.Statements {
		sb.WriteString("  " + stmt.String() + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (f *FunctionDecl) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	head := fmt.Sprintf("func %s(%s) -> %s", f.Name, strings.Join(params, ", "), f.Return)
	if f.Body == nil {
		return "extern " + head + ";"
	}
	return head + " " + f.Body.String()
}

func (p *Param) String() string {
	if p.Name == "" {
		return p.TypeName
	}
	return p.TypeName + " " + p.Name
}

func (c *CallExpr) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee, strings.Join(args, ", "))
}

func (v *VarDeclExpr) String() string {
	return fmt.Sprintf("%s %s = %s", v.TypeName, v.Name, v.Init.String())
}

func (i *IfExpr) String() string {
	return fmt.Sprintf("if %s then %s else %s", i.Cond.String(), i.Then.String(), i.Else.String())
}

func (f *ForExpr) String() string {
	return fmt.Sprintf("for %s from %s do %s", f.Var, f.Source, f.Body.String())
}

func (w *WhileExpr) String() string {
	return fmt.Sprintf("while %s do %s", w.Cond.String(), w.Body.String())
}

func (s *StringLit) String() string {
	return strconv.Quote(s.Value)
}

func (n *NumberLit) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left.String(), b.Op.String(), b.Right.String())
}

func (v *VarRefExpr) String() string {
	return v.Name
}
