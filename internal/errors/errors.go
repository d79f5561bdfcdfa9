package errors

import (
	"errors"
	"fmt"

	"ksc/internal/ast"
)

// CompileError is the single error shape every compiler stage returns.
// The first error aborts lowering; there is no recovery or partial IR.
type CompileError struct {
	Code     string
	Message  string
	Position ast.Position
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf extracts the error code from err, or "" when err does not wrap
// a CompileError.
func CodeOf(err error) string {
	if ce, ok := AsCompileError(err); ok {
		return ce.Code
	}
	return ""
}

// AsCompileError unwraps err into a CompileError when possible.
func AsCompileError(err error) (*CompileError, bool) {
	var ce *CompileError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

func newError(code, message string, pos ast.Position) *CompileError {
	return &CompileError{Code: code, Message: message, Position: pos}
}

func UndefinedVariable(name string, pos ast.Position) *CompileError {
	return newError(ErrorUndefinedVariable, fmt.Sprintf("undefined variable '%s'", name), pos)
}

func UndefinedFunction(name string, pos ast.Position) *CompileError {
	return newError(ErrorUndefinedFunction, fmt.Sprintf("undefined function '%s'", name), pos)
}

func UndefinedType(name string, pos ast.Position) *CompileError {
	return newError(ErrorUndefinedType, fmt.Sprintf("undefined type '%s'", name), pos)
}

func DuplicateType(name string, pos ast.Position) *CompileError {
	return newError(ErrorDuplicateType, fmt.Sprintf("type '%s' is already defined in this scope", name), pos)
}

func DuplicateFunction(name string, pos ast.Position) *CompileError {
	return newError(ErrorDuplicateFunction, fmt.Sprintf("function '%s' is already declared", name), pos)
}

func ParameterCountMismatch(name string, expected, actual int, pos ast.Position) *CompileError {
	return newError(ErrorParameterCountMismatch,
		fmt.Sprintf("function '%s' expects %d argument(s), got %d", name, expected, actual), pos)
}

func TypeMismatch(expected, actual string, pos ast.Position) *CompileError {
	return newError(ErrorTypeMismatch,
		fmt.Sprintf("expected type '%s', got '%s'", expected, actual), pos)
}

func InvalidConstantForType(typeName string, pos ast.Position) *CompileError {
	return newError(ErrorInvalidConstantForType,
		fmt.Sprintf("type '%s' cannot hold a literal", typeName), pos)
}

func UnsupportedOperation(typeName, op string, pos ast.Position) *CompileError {
	return newError(ErrorUnsupportedOperation,
		fmt.Sprintf("operator '%s' is not supported for type '%s'", op, typeName), pos)
}

func UnsupportedConstruct(what string, pos ast.Position) *CompileError {
	return newError(ErrorUnsupportedConstruct,
		fmt.Sprintf("no lowering defined for %s", what), pos)
}

func NoModule(pos ast.Position) *CompileError {
	return newError(ErrorNoModule, "no module has been created", pos)
}

func ModuleAlreadyCreated(name string, pos ast.Position) *CompileError {
	return newError(ErrorModuleAlreadyCreated,
		fmt.Sprintf("module '%s' already created for this session", name), pos)
}

func NoEnclosingFunction(what string, pos ast.Position) *CompileError {
	return newError(ErrorNoEnclosingFunction,
		fmt.Sprintf("%s is only legal inside a function body", what), pos)
}
