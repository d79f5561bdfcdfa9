package ast

// Position points at a location in the source text. Positions are carried
// through lowering so diagnostics can name where a construct came from.
type Position struct {
	Line   int
	Column int
}

type Node interface {
	NodePos() Position
	NodeType() NodeType
	String() string
}

func (p *Program) NodePos() Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].NodePos()
	}
	return Position{Line: 1, Column: 1}
}
func (*Program) NodeType() NodeType { return PROGRAM }

func (e *ExprStmt) NodePos() Position { return e.Pos }
func (*ExprStmt) NodeType() NodeType  { return EXPR_STMT }

func (b *Block) NodePos() Position { return b.Pos }
func (*Block) NodeType() NodeType  { return BLOCK }

func (f *FunctionDecl) NodePos() Position { return f.Pos }
func (*FunctionDecl) NodeType() NodeType  { return FUNCTION_DECL }

func (p *Param) NodePos() Position { return p.Pos }
func (*Param) NodeType() NodeType  { return PARAM }

func (c *CallExpr) NodePos() Position { return c.Pos }
func (*CallExpr) NodeType() NodeType  { return CALL_EXPR }

func (v *VarDeclExpr) NodePos() Position { return v.Pos }
func (*VarDeclExpr) NodeType() NodeType  { return VAR_DECL_EXPR }

func (i *IfExpr) NodePos() Position { return i.Pos }
func (*IfExpr) NodeType() NodeType  { return IF_EXPR }

func (f *ForExpr) NodePos() Position { return f.Pos }
func (*ForExpr) NodeType() NodeType  { return FOR_EXPR }

func (w *WhileExpr) NodePos() Position { return w.Pos }
func (*WhileExpr) NodeType() NodeType  { return WHILE_EXPR }

func (s *StringLit) NodePos() Position { return s.Pos }
func (*StringLit) NodeType() NodeType  { return STRING_LIT }

func (n *NumberLit) NodePos() Position { return n.Pos }
func (*NumberLit) NodeType() NodeType  { return NUMBER_LIT }

func (b *BinaryExpr) NodePos() Position { return b.Pos }
func (*BinaryExpr) NodeType() NodeType  { return BINARY_EXPR }

func (v *VarRefExpr) NodePos() Position { return v.Pos }
func (*VarRefExpr) NodeType() NodeType  { return VAR_REF_EXPR }
