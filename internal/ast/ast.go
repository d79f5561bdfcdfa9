package ast

// Program is an ordered sequence of statements, as handed over by the
// parser. The compiler consumes it read-only.
type Program struct {
	Statements []Statement
}

// Statement is either an expression statement or a function declaration.
type Statement interface {
	Node
	isStmt()
}

func (*ExprStmt) isStmt()     {}
func (*FunctionDecl) isStmt() {}

// ExprStmt wraps either a bare expression or a block. Exactly one of
// Expr and Block is set; a block can appear in statement position only,
// never as a bare expression.
type ExprStmt struct {
	Pos   Position
	Expr  Expr
	Block *Block
}

// Block groups statements and opens a fresh lexical scope.
type Block struct {
	Pos        Position
	Statements []Statement
}

// FunctionDecl declares a callable. A nil Body is a declaration without
// a definition (an extern); a non-nil Body defines the function.
type FunctionDecl struct {
	Pos    Position
	Name   string
	Params []*Param
	Return string // type name
	Body   *ExprStmt
}

// Param is a (type-name, name) pair in a function signature.
type Param struct {
	Pos      Position
	TypeName string
	Name     string
}

// Expr is anything that can be evaluated to a value.
type Expr interface {
	Node
	isExpr()
}

func (*CallExpr) isExpr()    {}
func (*VarDeclExpr) isExpr() {}
func (*IfExpr) isExpr()      {}
func (*ForExpr) isExpr()     {}
func (*WhileExpr) isExpr()   {}
func (*StringLit) isExpr()   {}
func (*NumberLit) isExpr()   {}
func (*BinaryExpr) isExpr()  {}
func (*VarRefExpr) isExpr()  {}

type CallExpr struct {
	Pos    Position
	Callee string
	Args   []Expr
}

// VarDeclExpr declares a variable with an explicit type name and a
// required initializer, and evaluates to the stored value.
type VarDeclExpr struct {
	Pos      Position
	TypeName string
	Name     string
	Init     Expr
}

type IfExpr struct {
	Pos  Position
	Cond Expr
	Then *ExprStmt
	Else *ExprStmt
}

// ForExpr iterates Var over 0 ..< the value named by Source.
type ForExpr struct {
	Pos    Position
	Var    string
	Source string
	Body   *ExprStmt
}

type WhileExpr struct {
	Pos  Position
	Cond Expr
	Body *ExprStmt
}

type StringLit struct {
	Pos   Position
	Value string
}

type NumberLit struct {
	Pos   Position
	Value float64
}

type BinaryExpr struct {
	Pos   Position
	Op    BinaryOp
	Left  Expr
	Right Expr
}

type VarRefExpr struct {
	Pos  Position
	Name string
}
