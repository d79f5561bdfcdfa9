package ast

type BinaryOp int

const (
	ADD BinaryOp = iota
	SUB
	MUL
	DIV
	INT_DIV
	REM

	// Comparisons yield Bool.
	EQ
	NE
	LT
	LE
	GT
	GE
)

var opNames = map[BinaryOp]string{
	ADD:     "+",
	SUB:     "-",
	MUL:     "*",
	DIV:     "/",
	INT_DIV: "//",
	REM:     "%",
	EQ:      "==",
	NE:      "!=",
	LT:      "<",
	LE:      "<=",
	GT:      ">",
	GE:      ">=",
}

func (op BinaryOp) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return "?"
}

// IsComparison reports whether the operator produces a Bool rather than
// a value of the operand representation.
func (op BinaryOp) IsComparison() bool {
	switch op {
	case EQ, NE, LT, LE, GT, GE:
		return true
	default:
		return false
	}
}
