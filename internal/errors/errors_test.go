package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ksc/internal/ast"
)

func TestCompileErrorMessage(t *testing.T) {
	err := TypeMismatch("Number", "Int32", ast.Position{Line: 4, Column: 12})
	assert.Equal(t, "E0003: expected type 'Number', got 'Int32'", err.Error())
	assert.Equal(t, 4, err.Position.Line)
}

func TestCodeOf(t *testing.T) {
	err := UndefinedVariable("x", ast.Position{Line: 1, Column: 1})
	assert.Equal(t, ErrorUndefinedVariable, CodeOf(err))

	wrapped := fmt.Errorf("while lowering main: %w", err)
	assert.Equal(t, ErrorUndefinedVariable, CodeOf(wrapped), "CodeOf should see through wrapping")

	assert.Empty(t, CodeOf(fmt.Errorf("plain error")))
	assert.Empty(t, CodeOf(nil))
}

func TestAsCompileError(t *testing.T) {
	err := NoModule(ast.Position{Line: 2, Column: 3})
	ce, ok := AsCompileError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorNoModule, ce.Code)

	_, ok = AsCompileError(fmt.Errorf("plain error"))
	assert.False(t, ok)
}

func TestConstructorCodes(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 1}
	cases := []struct {
		err  *CompileError
		code string
	}{
		{UndefinedVariable("x", pos), ErrorUndefinedVariable},
		{UndefinedFunction("f", pos), ErrorUndefinedFunction},
		{TypeMismatch("Number", "Bool", pos), ErrorTypeMismatch},
		{UndefinedType("Matrix", pos), ErrorUndefinedType},
		{DuplicateType("Point", pos), ErrorDuplicateType},
		{DuplicateFunction("f", pos), ErrorDuplicateFunction},
		{ParameterCountMismatch("f", 2, 3, pos), ErrorParameterCountMismatch},
		{InvalidConstantForType("Void", pos), ErrorInvalidConstantForType},
		{UnsupportedOperation("Bool", "+", pos), ErrorUnsupportedOperation},
		{UnsupportedConstruct("nested function declaration", pos), ErrorUnsupportedConstruct},
		{NoModule(pos), ErrorNoModule},
		{ModuleAlreadyCreated("m", pos), ErrorModuleAlreadyCreated},
		{NoEnclosingFunction("an expression statement", pos), ErrorNoEnclosingFunction},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.NotEqual(t, "unknown error", GetErrorDescription(tc.err.Code), "every code needs a description")
	}
}

func TestGetErrorDescriptionUnknown(t *testing.T) {
	assert.Equal(t, "unknown error", GetErrorDescription("E9999"))
}

func TestReporterFormat(t *testing.T) {
	source := "func f() -> Number {\n    Number x = count;\n    x;\n}"
	reporter := NewReporter("main.ksc", source)

	out := reporter.Format(UndefinedVariable("count", ast.Position{Line: 2, Column: 16}))
	assert.Contains(t, out, "[E0001]")
	assert.Contains(t, out, "undefined variable 'count'")
	assert.Contains(t, out, "main.ksc:2:16")
	assert.Contains(t, out, "Number x = count;")
	assert.Contains(t, out, "^")
}

func TestReporterFormatOutOfRangeLine(t *testing.T) {
	reporter := NewReporter("main.ksc", "func f() -> Void 1;")
	out := reporter.Format(NoModule(ast.Position{Line: 99, Column: 1}))
	assert.Contains(t, out, "[E0100]")
	assert.NotContains(t, out, "99 |", "no source excerpt for a line past the file end")
}
