package errors

// Error codes for the Mica compiler. Codes appear in rendered messages and
// give tests and tooling a stable identity for each diagnostic kind.
//
// Error code ranges:
// E0001-E0099: semantic analysis errors
// E0100-E0199: parser errors
// E0600-E0699: flow control errors

const (
	// E0001: duplicate or void-typed binding
	ErrorIllegalBinding = "E0001"

	// E0002: unresolved variable or function name
	ErrorUndefinedSymbol = "E0002"

	// E0003: expression type does not match any expected type
	ErrorTypeMismatch = "E0003"

	// E0004: disallowed cast source/target pair
	ErrorIllegalCast = "E0004"

	// E0005: call-site argument count mismatch
	ErrorArgumentCount = "E0005"

	// E0006: duplicate function declaration
	ErrorRedeclaration = "E0006"

	// E0007: no function named "main"
	ErrorMissingEntryPoint = "E0007"

	// E0008: address-of applied to a non-lvalue
	ErrorAddressOfNonLvalue = "E0008"

	// E0009: assignment to a non-lvalue
	ErrorAssignToNonLvalue = "E0009"

	// E0010: malformed struct field access
	ErrorStructAccess = "E0010"

	// Flow control errors (E0600-E0699)

	// E0600: statement after a return in the same block
	ErrorDeadCode = "E0600"
)

// Describe returns a human-readable description of the error code.
func Describe(code string) string {
	switch code {
	case ErrorIllegalBinding:
		return "Binding is void-typed or duplicates an existing name"
	case ErrorUndefinedSymbol:
		return "Variable or function is used but not declared"
	case ErrorTypeMismatch:
		return "Expression type does not match the expected type"
	case ErrorIllegalCast:
		return "Cast between these two types is not permitted"
	case ErrorArgumentCount:
		return "Function call has the wrong number of arguments"
	case ErrorRedeclaration:
		return "Function name is declared more than once"
	case ErrorMissingEntryPoint:
		return "Program has no function named 'main'"
	case ErrorAddressOfNonLvalue:
		return "Address-of operand is not an lvalue"
	case ErrorAssignToNonLvalue:
		return "Assignment target is not an lvalue"
	case ErrorStructAccess:
		return "Struct field access is malformed or names an unknown field"
	case ErrorDeadCode:
		return "Statement can never execute because it follows a return"
	default:
		return "Unknown error code"
	}
}
