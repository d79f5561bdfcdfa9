package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// The participle grammar for the KSC surface syntax. These nodes are a
// parse tree only; parser.go converts them into the internal AST.

type sourceFile struct {
	Statements []*statementNode `@@*`
}

type statementNode struct {
	Pos lexer.Position

	Extern *externDecl   `  @@`
	Func   *funcDecl     `| @@`
	Stmt   *exprStmtNode `| @@`
}

// externDecl declares a function without a body: the parameter list
// names types only.
type externDecl struct {
	Pos lexer.Position

	Name       string   `"extern" "func" @Ident`
	ParamTypes []string `"(" ( @Ident ( "," @Ident )* )? ")"`
	Return     string   `"->" @Ident ";"`
}

type funcDecl struct {
	Pos lexer.Position

	Name   string        `"func" @Ident`
	Params []*paramNode  `"(" ( @@ ( "," @@ )* )? ")"`
	Return string        `"->" @Ident`
	Body   *exprStmtNode `@@`
}

type paramNode struct {
	Pos lexer.Position

	Type string `@Ident`
	Name string `@Ident`
}

// exprStmtNode is an expression statement in statement position: a
// block, or an expression terminated by a semicolon.
type exprStmtNode struct {
	Pos lexer.Position

	Block *blockNode `  @@`
	Expr  *exprNode  `| @@ ";"`
}

// branchNode is an expression statement in branch position (if arms,
// loop bodies), where the statement terminator is omitted.
type branchNode struct {
	Pos lexer.Position

	Block *blockNode `  @@`
	Expr  *exprNode  `| @@`
}

type blockNode struct {
	Pos lexer.Position

	Statements []*statementNode `"{" @@* "}"`
}

type exprNode struct {
	Pos lexer.Position

	Cmp *cmpNode `@@`
}

// cmpNode is the (non-associative) comparison layer.
type cmpNode struct {
	Pos lexer.Position

	Left  *addNode `@@`
	Op    string   `( @("==" | "!=" | "<=" | ">=" | "<" | ">")`
	Right *addNode `  @@ )?`
}

type addNode struct {
	Pos lexer.Position

	Left *mulNode   `@@`
	Rest []*addRest `@@*`
}

type addRest struct {
	Pos lexer.Position

	Op   string   `@("+" | "-")`
	Term *mulNode `@@`
}

type mulNode struct {
	Pos lexer.Position

	Left *primaryNode `@@`
	Rest []*mulRest   `@@*`
}

type mulRest struct {
	Pos lexer.Position

	Op   string       `@("//" | "*" | "/" | "%")`
	Term *primaryNode `@@`
}

type primaryNode struct {
	Pos lexer.Position

	If      *ifNode      `  @@`
	While   *whileNode   `| @@`
	For     *forNode     `| @@`
	VarDecl *varDeclNode `| @@`
	Call    *callNode    `| @@`
	Number  *float64     `| @Number`
	Str     *string      `| @String`
	Paren   *exprNode    `| "(" @@ ")"`
	Ref     *string      `| @Ident`
}

type ifNode struct {
	Pos lexer.Position

	Cond *exprNode   `"if" @@`
	Then *branchNode `"then" @@`
	Else *branchNode `"else" @@`
}

type whileNode struct {
	Pos lexer.Position

	Cond *exprNode   `"while" @@`
	Body *branchNode `"do" @@`
}

type forNode struct {
	Pos lexer.Position

	Var    string      `"for" @Ident`
	Source string      `"from" @Ident`
	Body   *branchNode `"do" @@`
}

type varDeclNode struct {
	Pos lexer.Position

	Type string    `@Ident`
	Name string    `@Ident`
	Init *exprNode `"=" @@`
}

type callNode struct {
	Pos lexer.Position

	Callee string      `@Ident`
	Args   []*exprNode `"(" ( @@ ( "," @@ )* )? ")"`
}
