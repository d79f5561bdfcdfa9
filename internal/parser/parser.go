package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/fatih/color"

	"ksc/internal/ast"
)

var kscParser = participle.MustBuild[sourceFile](
	participle.Lexer(kscLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
	participle.UseLookahead(3),
)

// Parse turns KSC source text into the AST the compiler consumes.
func Parse(filename, source string) (*ast.Program, error) {
	file, err := kscParser.ParseString(filename, source)
	if err != nil {
		return nil, err
	}
	return convertProgram(file), nil
}

// FormatError renders a parse error with a caret pointing at the
// offending location.
func FormatError(source string, err error) string {
	pe, ok := err.(participle.Error)
	if !ok {
		return color.RedString("error: %s\n", err)
	}

	pos := pe.Position()
	lines := strings.Split(source, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return color.RedString("syntax error: %s\n", pe.Message())
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(0, pos.Column-1)) + "^"

	var sb strings.Builder
	sb.WriteString(color.RedString("syntax error in %s at line %d, column %d:\n",
		pos.Filename, pos.Line, pos.Column))
	sb.WriteString(line + "\n")
	sb.WriteString(color.HiRedString(caret + "\n"))
	sb.WriteString(fmt.Sprintf("-> %s\n", pe.Message()))
	return sb.String()
}

func position(pos lexer.Position) ast.Position {
	return ast.Position{Line: pos.Line, Column: pos.Column}
}

func convertProgram(file *sourceFile) *ast.Program {
	prog := &ast.Program{}
	for _, stmt := range file.Statements {
		prog.Statements = append(prog.Statements, convertStatement(stmt))
	}
	return prog
}

func convertStatement(node *statementNode) ast.Statement {
	switch {
	case node.Extern != nil:
		decl := &ast.FunctionDecl{
			Pos:    position(node.Extern.Pos),
			Name:   node.Extern.Name,
			Return: node.Extern.Return,
		}
		for _, typeName := range node.Extern.ParamTypes {
			decl.Params = append(decl.Params, &ast.Param{
				Pos:      position(node.Extern.Pos),
				TypeName: typeName,
			})
		}
		return decl
	case node.Func != nil:
		decl := &ast.FunctionDecl{
			Pos:    position(node.Func.Pos),
			Name:   node.Func.Name,
			Return: node.Func.Return,
			Body:   convertExprStmt(node.Func.Body),
		}
		for _, p := range node.Func.Params {
			decl.Params = append(decl.Params, &ast.Param{
				Pos:      position(p.Pos),
				TypeName: p.Type,
				Name:     p.Name,
			})
		}
		return decl
	default:
		return convertExprStmt(node.Stmt)
	}
}

func convertExprStmt(node *exprStmtNode) *ast.ExprStmt {
	if node.Block != nil {
		return &ast.ExprStmt{Pos: position(node.Pos), Block: convertBlock(node.Block)}
	}
	return &ast.ExprStmt{Pos: position(node.Pos), Expr: convertExpr(node.Expr)}
}

func convertBranch(node *branchNode) *ast.ExprStmt {
	if node.Block != nil {
		return &ast.ExprStmt{Pos: position(node.Pos), Block: convertBlock(node.Block)}
	}
	return &ast.ExprStmt{Pos: position(node.Pos), Expr: convertExpr(node.Expr)}
}

func convertBlock(node *blockNode) *ast.Block {
	block := &ast.Block{Pos: position(node.Pos)}
	for _, stmt := range node.Statements {
		block.Statements = append(block.Statements, convertStatement(stmt))
	}
	return block
}

var binaryOps = map[string]ast.BinaryOp{
	"+":  ast.ADD,
	"-":  ast.SUB,
	"*":  ast.MUL,
	"/":  ast.DIV,
	"//": ast.INT_DIV,
	"%":  ast.REM,
	"==": ast.EQ,
	"!=": ast.NE,
	"<":  ast.LT,
	"<=": ast.LE,
	">":  ast.GT,
	">=": ast.GE,
}

func convertExpr(node *exprNode) ast.Expr {
	return convertCmp(node.Cmp)
}

func convertCmp(node *cmpNode) ast.Expr {
	left := convertAdd(node.Left)
	if node.Op == "" {
		return left
	}
	return &ast.BinaryExpr{
		Pos:   position(node.Pos),
		Op:    binaryOps[node.Op],
		Left:  left,
		Right: convertAdd(node.Right),
	}
}

func convertAdd(node *addNode) ast.Expr {
	expr := convertMul(node.Left)
	for _, rest := range node.Rest {
		expr = &ast.BinaryExpr{
			Pos:   position(rest.Pos),
			Op:    binaryOps[rest.Op],
			Left:  expr,
			Right: convertMul(rest.Term),
		}
	}
	return expr
}

func convertMul(node *mulNode) ast.Expr {
	expr := convertPrimary(node.Left)
	for _, rest := range node.Rest {
		expr = &ast.BinaryExpr{
			Pos:   position(rest.Pos),
			Op:    binaryOps[rest.Op],
			Left:  expr,
			Right: convertPrimary(rest.Term),
		}
	}
	return expr
}

func convertPrimary(node *primaryNode) ast.Expr {
	pos := position(node.Pos)
	switch {
	case node.If != nil:
		return &ast.IfExpr{
			Pos:  pos,
			Cond: convertExpr(node.If.Cond),
			Then: convertBranch(node.If.Then),
			Else: convertBranch(node.If.Else),
		}
	case node.While != nil:
		return &ast.WhileExpr{
			Pos:  pos,
			Cond: convertExpr(node.While.Cond),
			Body: convertBranch(node.While.Body),
		}
	case node.For != nil:
		return &ast.ForExpr{
			Pos:    pos,
			Var:    node.For.Var,
			Source: node.For.Source,
			Body:   convertBranch(node.For.Body),
		}
	case node.VarDecl != nil:
		return &ast.VarDeclExpr{
			Pos:      pos,
			TypeName: node.VarDecl.Type,
			Name:     node.VarDecl.Name,
			Init:     convertExpr(node.VarDecl.Init),
		}
	case node.Call != nil:
		call := &ast.CallExpr{Pos: pos, Callee: node.Call.Callee}
		for _, arg := range node.Call.Args {
			call.Args = append(call.Args, convertExpr(arg))
		}
		return call
	case node.Number != nil:
		return &ast.NumberLit{Pos: pos, Value: *node.Number}
	case node.Str != nil:
		return &ast.StringLit{Pos: pos, Value: *node.Str}
	case node.Paren != nil:
		return convertExpr(node.Paren)
	default:
		return &ast.VarRefExpr{Pos: pos, Name: *node.Ref}
	}
}
