package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionDeclString(t *testing.T) {
	decl := &FunctionDecl{
		Name: "gcd",
		Params: []*Param{
			{TypeName: "Number", Name: "a"},
			{TypeName: "Number", Name: "b"},
		},
		Return: "Number",
		Body: &ExprStmt{
			Expr: &IfExpr{
				Cond: &BinaryExpr{
					Op:    EQ,
					Left:  &VarRefExpr{Name: "b"},
					Right: &NumberLit{Value: 0},
				},
				Then: &ExprStmt{Expr: &VarRefExpr{Name: "a"}},
				Else: &ExprStmt{Expr: &CallExpr{
					Callee: "gcd",
					Args: []Expr{
						&VarRefExpr{Name: "b"},
						&BinaryExpr{
							Op:    REM,
							Left:  &VarRefExpr{Name: "a"},
							Right: &VarRefExpr{Name: "b"},
						},
					},
				}},
			},
		},
	}
	assert.Equal(t,
		"func gcd(Number a, Number b) -> Number if b == 0 then a else gcd(b, a % b);",
		decl.String())
}

func TestExternDeclString(t *testing.T) {
	decl := &FunctionDecl{
		Name:   "printNumber",
		Params: []*Param{{TypeName: "Number"}},
		Return: "Void",
	}
	assert.Equal(t, "extern func printNumber(Number) -> Void;", decl.String())
}

func TestBlockString(t *testing.T) {
	block := &ExprStmt{Block: &Block{Statements: []Statement{
		&ExprStmt{Expr: &VarDeclExpr{TypeName: "Number", Name: "x", Init: &NumberLit{Value: 1}}},
		&ExprStmt{Expr: &VarRefExpr{Name: "x"}},
	}}}
	assert.Equal(t, "{\n  Number x = 1;\n  x;\n}", block.String())
}

func TestLoopStrings(t *testing.T) {
	while := &WhileExpr{
		Cond: &BinaryExpr{Op: LT, Left: &VarRefExpr{Name: "n"}, Right: &NumberLit{Value: 10}},
		Body: &ExprStmt{Block: &Block{}},
	}
	assert.Equal(t, "while n < 10 do {\n}", while.String())

	forExpr := &ForExpr{Var: "i", Source: "n", Body: &ExprStmt{Block: &Block{}}}
	assert.Equal(t, "for i from n do {\n}", forExpr.String())
}

func TestLiteralStrings(t *testing.T) {
	assert.Equal(t, "3.5", (&NumberLit{Value: 3.5}).String())
	assert.Equal(t, "42", (&NumberLit{Value: 42}).String())
	assert.Equal(t, `"hi\n"`, (&StringLit{Value: "hi\n"}).String())
}

func TestNodeTypes(t *testing.T) {
	assert.Equal(t, IF_EXPR, (&IfExpr{}).NodeType())
	assert.Equal(t, BINARY_EXPR, (&BinaryExpr{}).NodeType())
	assert.Equal(t, FUNCTION_DECL, (&FunctionDecl{}).NodeType())
	assert.Equal(t, PROGRAM, (&Program{}).NodeType())
}

func TestBinaryOpStrings(t *testing.T) {
	assert.Equal(t, "//", INT_DIV.String())
	assert.Equal(t, "==", EQ.String())
	assert.True(t, GE.IsComparison())
	assert.False(t, ADD.IsComparison())
	assert.Equal(t, "?", BinaryOp(999).String())
}
