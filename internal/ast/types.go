package ast

type NodeType int

const (
	ILLEGAL NodeType = iota

	// High-level constructs
	PROGRAM

	// Statements
	EXPR_STMT
	BLOCK
	FUNCTION_DECL
	PARAM

	// Expressions
	CALL_EXPR
	VAR_DECL_EXPR
	IF_EXPR
	FOR_EXPR
	WHILE_EXPR
	STRING_LIT
	NUMBER_LIT
	BINARY_EXPR
	VAR_REF_EXPR
)
