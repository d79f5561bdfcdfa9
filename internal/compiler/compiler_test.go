package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ksc/internal/ast"
	"ksc/internal/errors"
	"ksc/internal/ir"
	"ksc/internal/parser"
)

func compileSource(t *testing.T, source string) (*ir.Module, error) {
	t.Helper()
	program, err := parser.Parse("test.ksc", source)
	require.NoError(t, err, "source should parse")
	return New().Compile("test", program)
}

func mustCompile(t *testing.T, source string) *ir.Module {
	t.Helper()
	module, err := compileSource(t, source)
	require.NoError(t, err)
	return module
}

const gcdSource = `
func gcd(Number a, Number b) -> Number
    if b == 0 then a else gcd(b, a % b);

func main() -> Int32 {
    gcd(12, 18);
    0;
}
`

func TestCompileGcdProgram(t *testing.T) {
	module := mustCompile(t, gcdSource)
	require.Len(t, module.Functions, 2)

	gcd := module.Function("gcd")
	require.NotNil(t, gcd)
	assert.True(t, gcd.Defined())

	// entry plus the three if-protocol blocks
	require.Len(t, gcd.Blocks, 4)
	assert.Equal(t, "entry", gcd.Blocks[0].Label)
	assert.Equal(t, "then0", gcd.Blocks[1].Label)
	assert.Equal(t, "else1", gcd.Blocks[2].Label)
	assert.Equal(t, "merge2", gcd.Blocks[3].Label)

	merge := gcd.Blocks[3]
	require.Len(t, merge.Instructions, 1)
	phi, ok := merge.Instructions[0].(*ir.Phi)
	require.True(t, ok, "merge block should hold exactly one phi")
	require.Len(t, phi.Incoming, 2)
	assert.Equal(t, "then0", phi.Incoming[0].Block.Label)
	assert.Equal(t, "else1", phi.Incoming[1].Block.Label)
	assert.Equal(t, "Number", phi.Res.Type.Name())

	ret, ok := merge.Term.(*ir.Ret)
	require.True(t, ok)
	assert.Same(t, phi.Res, ret.Val)

	main := module.Function("main")
	require.NotNil(t, main)
	require.Len(t, main.Blocks, 1)
	entry := main.Blocks[0]
	require.Len(t, entry.Instructions, 1)
	call, ok := entry.Instructions[0].(*ir.Call)
	require.True(t, ok, "main should call gcd before returning")
	assert.Equal(t, "gcd", call.Callee.Name)

	ret, ok = entry.Term.(*ir.Ret)
	require.True(t, ok)
	require.NotNil(t, ret.Val)
	assert.Equal(t, "Int32", ret.Val.Type.Name())
	assert.Equal(t, "0", ret.Val.Literal)
}

func TestCompileDeterministicRendering(t *testing.T) {
	first := ir.Print(mustCompile(t, gcdSource))
	second := ir.Print(mustCompile(t, gcdSource))
	assert.Equal(t, first, second, "identical ASTs must render to byte-identical text")
	assert.Contains(t, first, "%0 = ALLOCA Number", "unnamed numbering starts at zero")
}

func TestCompileDeclareOnlyCall(t *testing.T) {
	source := `
extern func printNumber(Number) -> Void;

func main() -> Int32 {
    printNumber(42);
    0;
}
`
	module := mustCompile(t, source)

	printNumber := module.Function("printNumber")
	require.NotNil(t, printNumber)
	assert.False(t, printNumber.Defined())
	assert.Empty(t, printNumber.Blocks)

	main := module.Function("main")
	call, ok := main.Blocks[0].Instructions[0].(*ir.Call)
	require.True(t, ok)
	assert.Nil(t, call.Res, "a Void call yields no value")

	text := ir.Print(module)
	assert.Contains(t, text, "DECLARE printNumber(Number) -> Void")
	assert.Contains(t, text, "CALL printNumber(42)")
}

func TestCompileBinaryTypeMismatch(t *testing.T) {
	_, err := compileSource(t, `func f(Int32 a, Number b) -> Number a + b;`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, errors.CodeOf(err))
}

func TestCompileUndefinedVariable(t *testing.T) {
	_, err := compileSource(t, `func f() -> Number nope;`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorUndefinedVariable, errors.CodeOf(err))
}

func TestCompileUndefinedFunction(t *testing.T) {
	_, err := compileSource(t, `func f() -> Number missing(1);`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorUndefinedFunction, errors.CodeOf(err))
}

func TestCompileUndefinedType(t *testing.T) {
	_, err := compileSource(t, `func f(Matrix a) -> Number 1;`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorUndefinedType, errors.CodeOf(err))
}

func TestCompileDuplicateFunction(t *testing.T) {
	_, err := compileSource(t, `
func f() -> Void 1;
func f() -> Void 2;
`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorDuplicateFunction, errors.CodeOf(err))
}

func TestCompileParameterCountMismatch(t *testing.T) {
	_, err := compileSource(t, `
extern func printNumber(Number) -> Void;
func main() -> Void printNumber(1, 2);
`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorParameterCountMismatch, errors.CodeOf(err))
}

func TestCompileArgumentTypeMismatch(t *testing.T) {
	_, err := compileSource(t, `
extern func half(Int32) -> Int32;
func main(Number n) -> Int32 half(n);
`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, errors.CodeOf(err))
}

func TestCompileInvalidConstantForType(t *testing.T) {
	_, err := compileSource(t, `func f() -> Number { Bool b = 5; 1; }`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorInvalidConstantForType, errors.CodeOf(err))
}

func TestCompileInt32LiteralOutOfRange(t *testing.T) {
	_, err := compileSource(t, `func f() -> Int32 3000000000;`)
	require.Error(t, err, "a literal past the 32-bit range must not wrap")
	assert.Equal(t, errors.ErrorInvalidConstantForType, errors.CodeOf(err))

	_, err = compileSource(t, `func f() -> Number { Int32 x = 0 - 3000000000; 1; }`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorInvalidConstantForType, errors.CodeOf(err))
}

func TestCompileUnsupportedOperation(t *testing.T) {
	_, err := compileSource(t, `func f() -> Number { "a" + "b"; 1; }`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorUnsupportedOperation, errors.CodeOf(err))
}

func TestCompileIntDivOnNumberRejected(t *testing.T) {
	_, err := compileSource(t, `func f(Number a, Number b) -> Number a // b;`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorUnsupportedOperation, errors.CodeOf(err))
}

func TestCompileTopLevelExpressionRejected(t *testing.T) {
	_, err := compileSource(t, `1 + 2;`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorNoEnclosingFunction, errors.CodeOf(err))
}

func TestCompileNestedFunctionRejected(t *testing.T) {
	_, err := compileSource(t, `
func outer() -> Void {
    func inner() -> Void 1;
}
`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorUnsupportedConstruct, errors.CodeOf(err))
}

func TestCompileSecondProgramRejected(t *testing.T) {
	program, err := parser.Parse("test.ksc", `func f() -> Void 1;`)
	require.NoError(t, err)

	comp := New()
	_, err = comp.Compile("first", program)
	require.NoError(t, err)

	again, err := parser.Parse("test.ksc", `func g() -> Void 1;`)
	require.NoError(t, err)
	_, err = comp.Compile("second", again)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorModuleAlreadyCreated, errors.CodeOf(err))
}

func TestCompileIfBranchTypeMismatch(t *testing.T) {
	_, err := compileSource(t, `func f(Number n) -> Number if n then { } else 1;`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, errors.CodeOf(err))
}

func TestCompileIfBothBranchesVoid(t *testing.T) {
	module := mustCompile(t, `
func f(Number n) -> Int32 {
    if n then { } else { };
    0;
}
`)
	fn := module.Function("f")
	require.Len(t, fn.Blocks, 4)
	merge := fn.Blocks[3]
	assert.Empty(t, merge.Instructions, "a Void if needs no phi")
}

func TestCompileIfScopeDiscipline(t *testing.T) {
	_, err := compileSource(t, `
func f(Number n) -> Number {
    if n then { Number x = 1; } else { };
    x;
}
`)
	require.Error(t, err, "a branch-local variable must not survive the merge")
	assert.Equal(t, errors.ErrorUndefinedVariable, errors.CodeOf(err))
}

func TestCompileIfBareArmScopeDiscipline(t *testing.T) {
	// a declaration in a bare-expression arm is as branch-local as one
	// inside a block
	_, err := compileSource(t, `
func f(Number n) -> Number {
    if n then Number x = 1 else 2;
    x;
}
`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorUndefinedVariable, errors.CodeOf(err))
}

func TestCompileWhileBodyScopeDiscipline(t *testing.T) {
	_, err := compileSource(t, `
func f(Number n) -> Number {
    while n < 10 do Number x = 1;
    x;
}
`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorUndefinedVariable, errors.CodeOf(err))
}

func TestCompileForBodyScopeDiscipline(t *testing.T) {
	_, err := compileSource(t, `
func f(Number n) -> Number {
    for i from n do Number x = i;
    x;
}
`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorUndefinedVariable, errors.CodeOf(err))
}

func TestCompileWhileShape(t *testing.T) {
	module := mustCompile(t, `
func spin(Number n) -> Int32 {
    while n < 10 do { Number step = n + 1; };
    0;
}
`)
	fn := module.Function("spin")
	require.Len(t, fn.Blocks, 4)
	assert.Equal(t, "loop0", fn.Blocks[1].Label)
	assert.Equal(t, "body1", fn.Blocks[2].Label)
	assert.Equal(t, "endloop2", fn.Blocks[3].Label)

	// body jumps back to the header, the header branches body-vs-exit
	br, ok := fn.Blocks[2].Term.(*ir.Br)
	require.True(t, ok)
	assert.Equal(t, "loop0", br.Target.Label)
	cond, ok := fn.Blocks[1].Term.(*ir.CondBr)
	require.True(t, ok)
	assert.Equal(t, "body1", cond.Then.Label)
	assert.Equal(t, "endloop2", cond.Else.Label)
}

func TestCompileForShape(t *testing.T) {
	module := mustCompile(t, `
func sum(Number n) -> Int32 {
    for i from n do { Number x = i; };
    0;
}
`)
	fn := module.Function("sum")
	require.Len(t, fn.Blocks, 4)

	text := ir.Print(module)
	assert.Contains(t, text, "CMP lt")

	// the counter slot lives in the entry block, after the parameter slot
	var allocas int
	for _, inst := range fn.Blocks[0].Instructions {
		if _, ok := inst.(*ir.Alloca); ok {
			allocas++
		}
	}
	assert.Equal(t, 2, allocas)
}

func TestCompileForVarScoped(t *testing.T) {
	_, err := compileSource(t, `
func f(Number n) -> Number {
    for i from n do { };
    i;
}
`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorUndefinedVariable, errors.CodeOf(err))
}

func TestCompileRecursionResolvesOwnName(t *testing.T) {
	// the signature lands in the function table before the body is
	// lowered, so the self-call must resolve
	module := mustCompile(t, `func down(Number n) -> Number if n then down(n - 1) else 0;`)
	fn := module.Function("down")
	require.NotNil(t, fn)
	assert.True(t, fn.Defined())
}

func TestCompileReturnTypeMismatch(t *testing.T) {
	_, err := compileSource(t, `func f(Int32 n) -> Number n;`)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, errors.CodeOf(err))
}

func TestCompileVoidFunctionDiscardsBodyValue(t *testing.T) {
	module := mustCompile(t, `func f(Number n) -> Void n + 1;`)
	fn := module.Function("f")
	ret, ok := fn.Blocks[0].Term.(*ir.Ret)
	require.True(t, ok)
	assert.Nil(t, ret.Val)
}

func TestCompileVariableShadowing(t *testing.T) {
	// rebinding in the same scope shadows; last bind wins
	module := mustCompile(t, `
func f() -> Number {
    Number x = 1;
    Number x = 2;
    x;
}
`)
	require.NotNil(t, module.Function("f"))
}

func TestCompileNeverMutatesAST(t *testing.T) {
	program, err := parser.Parse("test.ksc", gcdSource)
	require.NoError(t, err)
	before := program.String()

	_, err = New().Compile("test", program)
	require.NoError(t, err)
	assert.Equal(t, before, program.String())
}

func TestCompileErrorCarriesPosition(t *testing.T) {
	_, err := compileSource(t, `func f() -> Number nope;`)
	require.Error(t, err)
	ce, ok := errors.AsCompileError(err)
	require.True(t, ok)
	assert.NotEqual(t, ast.Position{}, ce.Position)
}
