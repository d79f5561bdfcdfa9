package errors

// Error codes for the KSC compiler. The codes are stable identifiers
// used in rendered diagnostics and documentation.
//
// Error code ranges:
// E0001-E0099: symbol and type resolution errors
// E0100-E0199: lowering / IR construction errors
const (
	// E0001: referencing a variable no scope binds
	ErrorUndefinedVariable = "E0001"

	// E0002: calling a function the module does not know
	ErrorUndefinedFunction = "E0002"

	// E0003: combining values whose types do not match exactly
	ErrorTypeMismatch = "E0003"

	// E0004: naming a type no scope binds
	ErrorUndefinedType = "E0004"

	// E0005: redefining a type name in the same scope
	ErrorDuplicateType = "E0005"

	// E0006: declaring a function name twice in one module
	ErrorDuplicateFunction = "E0006"

	// E0007: calling a function with the wrong number of arguments
	ErrorParameterCountMismatch = "E0007"

	// E0008: a literal the target type cannot hold
	ErrorInvalidConstantForType = "E0008"

	// E0009: an operator applied to a type without support for it
	ErrorUnsupportedOperation = "E0009"

	// E0010: an AST shape with no defined lowering
	ErrorUnsupportedConstruct = "E0010"

	// E0100: an operation that needs a module before one was created
	ErrorNoModule = "E0100"

	// E0101: creating a second module in one session
	ErrorModuleAlreadyCreated = "E0101"

	// E0102: control flow outside any function body
	ErrorNoEnclosingFunction = "E0102"
)

var codeDescriptions = map[string]string{
	ErrorUndefinedVariable:      "undefined variable",
	ErrorUndefinedFunction:      "undefined function",
	ErrorTypeMismatch:           "type mismatch",
	ErrorUndefinedType:          "undefined type",
	ErrorDuplicateType:          "duplicate type definition",
	ErrorDuplicateFunction:      "duplicate function",
	ErrorParameterCountMismatch: "wrong number of arguments",
	ErrorInvalidConstantForType: "invalid constant for type",
	ErrorUnsupportedOperation:   "unsupported operation",
	ErrorUnsupportedConstruct:   "unsupported construct",
	ErrorNoModule:               "no module created",
	ErrorModuleAlreadyCreated:   "module already created",
	ErrorNoEnclosingFunction:    "no enclosing function",
}

// GetErrorDescription returns a human-readable description of the code.
func GetErrorDescription(code string) string {
	if desc, ok := codeDescriptions[code]; ok {
		return desc
	}
	return "unknown error"
}
