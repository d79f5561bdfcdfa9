package compiler

import (
	"math"
	"strconv"

	"ksc/internal/ast"
	"ksc/internal/errors"
	"ksc/internal/ir"
	"ksc/internal/types"
)

// compileExpr recursively lowers one expression to a typed IR value.
// want is the type the surrounding context expects, or nil; it steers
// constant construction only, never conversions.
func (c *Compiler) compileExpr(expr ast.Expr, want types.Type) (TypedValue, error) {
	switch e := expr.(type) {
	case *ast.NumberLit:
		return c.numberConst(e, want)
	case *ast.StringLit:
		return c.stringConst(e, want)
	case *ast.VarRefExpr:
		return c.compileVarRef(e)
	case *ast.VarDeclExpr:
		return c.compileVarDecl(e)
	case *ast.BinaryExpr:
		return c.compileBinary(e, want)
	case *ast.CallExpr:
		return c.compileCall(e)
	case *ast.IfExpr:
		return c.compileIf(e)
	case *ast.WhileExpr:
		return c.compileWhile(e)
	case *ast.ForExpr:
		return c.compileFor(e)
	default:
		return TypedValue{}, errors.UnsupportedConstruct("this expression", expr.NodePos())
	}
}

// numberConst builds a constant against the expected type. With no
// expectation a literal is a Number; an Int32 target rounds to nearest
// and must fit the 32-bit range. Any other target cannot hold a number
// literal.
func (c *Compiler) numberConst(lit *ast.NumberLit, want types.Type) (TypedValue, error) {
	switch want.(type) {
	case nil, *types.NumberType:
		v := ir.NewConst(numberLiteral(lit.Value), types.Number)
		return TypedValue{Type: types.Number, Value: v}, nil
	case *types.Int32Type:
		n := math.Round(lit.Value)
		if n < math.MinInt32 || n > math.MaxInt32 {
			return TypedValue{}, errors.InvalidConstantForType(want.Name(), lit.Pos)
		}
		v := ir.NewConst(strconv.FormatInt(int64(n), 10), types.Int32)
		return TypedValue{Type: types.Int32, Value: v}, nil
	default:
		return TypedValue{}, errors.InvalidConstantForType(want.Name(), lit.Pos)
	}
}

// stringConst builds a byte-sequence constant of List<Int32> shape.
func (c *Compiler) stringConst(lit *ast.StringLit, want types.Type) (TypedValue, error) {
	t := &types.ListType{Elem: types.Int32}
	if want != nil && !want.Equal(t) {
		return TypedValue{}, errors.InvalidConstantForType(want.Name(), lit.Pos)
	}
	v := ir.NewConst(strconv.Quote(lit.Value), t)
	return TypedValue{Type: t, Value: v}, nil
}

// compileVarRef resolves the name and loads the current value from its
// slot.
func (c *Compiler) compileVarRef(ref *ast.VarRefExpr) (TypedValue, error) {
	b, err := c.ctx.LookupVar(ref.Name, ref.Pos)
	if err != nil {
		return TypedValue{}, err
	}
	loaded := c.ctx.EmitLoad(b.slot, b.typ)
	return TypedValue{Type: b.typ, Value: loaded}, nil
}

// compileVarDecl resolves the declared type, lowers the initializer
// against it, allocates a slot, stores, and binds the name in the
// current scope. The declaration yields the stored value.
func (c *Compiler) compileVarDecl(decl *ast.VarDeclExpr) (TypedValue, error) {
	declared, err := c.ctx.ResolveType(decl.TypeName, decl.Pos)
	if err != nil {
		return TypedValue{}, err
	}
	if types.IsVoid(declared) {
		return TypedValue{}, errors.UnsupportedConstruct("a variable of type Void", decl.Pos)
	}
	init, err := c.compileExpr(decl.Init, declared)
	if err != nil {
		return TypedValue{}, err
	}
	if !init.Type.Equal(declared) {
		return TypedValue{}, errors.TypeMismatch(declared.Name(), init.Type.Name(), decl.Pos)
	}
	slot := c.ctx.EmitAlloca(declared)
	c.ctx.EmitStore(init.Value, slot)
	c.ctx.Bind(decl.Name, declared, slot)
	return TypedValue{Type: declared, Value: init.Value}, nil
}

var numberOps = map[ast.BinaryOp]ir.BinaryOp{
	ast.ADD: ir.FAdd,
	ast.SUB: ir.FSub,
	ast.MUL: ir.FMul,
	ast.DIV: ir.FDiv,
	ast.REM: ir.FRem,
}

var int32Ops = map[ast.BinaryOp]ir.BinaryOp{
	ast.ADD:     ir.Add,
	ast.SUB:     ir.Sub,
	ast.MUL:     ir.Mul,
	ast.DIV:     ir.Div,
	ast.INT_DIV: ir.Div,
	ast.REM:     ir.Rem,
}

var cmpPreds = map[ast.BinaryOp]ir.CmpPred{
	ast.EQ: ir.Eq,
	ast.NE: ir.Ne,
	ast.LT: ir.Lt,
	ast.LE: ir.Le,
	ast.GT: ir.Gt,
	ast.GE: ir.Ge,
}

// compileBinary lowers both operands, requires their types to match
// exactly, and dispatches to the representation-specific primitive.
func (c *Compiler) compileBinary(bin *ast.BinaryExpr, want types.Type) (TypedValue, error) {
	var leftWant types.Type
	if !bin.Op.IsComparison() {
		leftWant = want
	}
	left, err := c.compileExpr(bin.Left, leftWant)
	if err != nil {
		return TypedValue{}, err
	}
	right, err := c.compileExpr(bin.Right, left.Type)
	if err != nil {
		return TypedValue{}, err
	}
	if !left.Type.Equal(right.Type) {
		return TypedValue{}, errors.TypeMismatch(left.Type.Name(), right.Type.Name(), bin.Pos)
	}

	if bin.Op.IsComparison() {
		return c.compileComparison(bin, left, right)
	}

	if !types.IsArithmetic(left.Type) {
		return TypedValue{}, errors.UnsupportedOperation(left.Type.Name(), bin.Op.String(), bin.Pos)
	}
	var op ir.BinaryOp
	var ok bool
	switch left.Type.(type) {
	case *types.NumberType:
		op, ok = numberOps[bin.Op]
	case *types.Int32Type:
		op, ok = int32Ops[bin.Op]
	}
	if !ok {
		return TypedValue{}, errors.UnsupportedOperation(left.Type.Name(), bin.Op.String(), bin.Pos)
	}
	res := c.ctx.EmitBinary(op, left.Value, right.Value, left.Type)
	return TypedValue{Type: left.Type, Value: res}, nil
}

func (c *Compiler) compileComparison(bin *ast.BinaryExpr, left, right TypedValue) (TypedValue, error) {
	if !types.IsComparable(left.Type) {
		return TypedValue{}, errors.UnsupportedOperation(left.Type.Name(), bin.Op.String(), bin.Pos)
	}
	// Bool is unordered: equality only.
	if _, isBool := left.Type.(*types.BoolType); isBool && bin.Op != ast.EQ && bin.Op != ast.NE {
		return TypedValue{}, errors.UnsupportedOperation(left.Type.Name(), bin.Op.String(), bin.Pos)
	}
	res := c.ctx.EmitCmp(cmpPreds[bin.Op], left.Value, right.Value)
	return TypedValue{Type: types.Bool, Value: res}, nil
}

// compileCall lowers each argument left to right against the declared
// parameter type, validates the signature, and emits the call.
func (c *Compiler) compileCall(call *ast.CallExpr) (TypedValue, error) {
	fn := c.ctx.Module().Function(call.Callee)
	if fn == nil {
		return TypedValue{}, errors.UndefinedFunction(call.Callee, call.Pos)
	}
	if len(call.Args) != len(fn.Params) {
		return TypedValue{}, errors.ParameterCountMismatch(call.Callee, len(fn.Params), len(call.Args), call.Pos)
	}
	args := make([]*ir.Value, len(call.Args))
	for i, argExpr := range call.Args {
		arg, err := c.compileExpr(argExpr, fn.Params[i].Type)
		if err != nil {
			return TypedValue{}, err
		}
		if !arg.Type.Equal(fn.Params[i].Type) {
			return TypedValue{}, errors.TypeMismatch(fn.Params[i].Type.Name(), arg.Type.Name(), argExpr.NodePos())
		}
		args[i] = arg.Value
	}
	return c.ctx.EmitCall(fn, args), nil
}
