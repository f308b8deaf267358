package errors

import (
	"fmt"
	"strings"

	"mica/internal/ast"
)

// Constructors for the closed taxonomy of semantic diagnostics. Every error
// the checker can produce goes through one of these, so messages stay
// uniform and the structured fields are always populated.

// IllegalVoidBinding reports a declaration with type void.
func IllegalVoidBinding(kind, name string, pos ast.Position) *CompilerError {
	return New(ErrorIllegalBinding, fmt.Sprintf("illegal void %s '%s'", kind, name), pos).
		WithLength(len(name)).
		WithActual("void").
		WithNote("only function return types may be void").
		Build()
}

// IllegalDuplicateBinding reports a name declared twice in the same scope
// and kind.
func IllegalDuplicateBinding(kind, name string, pos ast.Position) *CompilerError {
	return New(ErrorIllegalBinding, fmt.Sprintf("duplicate %s '%s'", kind, name), pos).
		WithLength(len(name)).
		WithNote(fmt.Sprintf("each %s name may be declared only once in its scope", kind)).
		Build()
}

// UndefinedVariable reports an identifier that resolves to no binding.
func UndefinedVariable(name string, pos ast.Position) *CompilerError {
	return New(ErrorUndefinedSymbol, fmt.Sprintf("undefined variable '%s'", name), pos).
		WithLength(len(name)).
		WithHelp("variables must be declared as a global, a parameter, or a local before use").
		Build()
}

// UndefinedFunction reports a call to a name absent from the function table.
func UndefinedFunction(name string, pos ast.Position) *CompilerError {
	return New(ErrorUndefinedSymbol, fmt.Sprintf("undefined function '%s'", name), pos).
		WithLength(len(name)).
		WithHelp("functions must be declared before the point of call").
		Build()
}

// TypeMismatch reports an expression whose type is not in the expected set.
func TypeMismatch(expected []string, actual string, pos ast.Position) *CompilerError {
	var want string
	if len(expected) == 1 {
		want = expected[0]
	} else {
		want = "one of " + strings.Join(expected, ", ")
	}
	return New(ErrorTypeMismatch, fmt.Sprintf("type mismatch: expected %s, found %s", want, actual), pos).
		WithExpected(expected...).
		WithActual(actual).
		Build()
}

// IllegalCast reports a cast between a disallowed type pair.
func IllegalCast(from, to string, pos ast.Position) *CompilerError {
	return New(ErrorIllegalCast, fmt.Sprintf("illegal cast from %s to %s", from, to), pos).
		WithExpected(to).
		WithActual(from).
		WithNote("permitted casts: pointer to pointer, pointer to int, int to pointer, int to float").
		Build()
}

// ArgumentCount reports a call with the wrong number of arguments.
func ArgumentCount(name string, expected, actual int, pos ast.Position) *CompilerError {
	return New(ErrorArgumentCount,
		fmt.Sprintf("function '%s' expects %d argument(s), got %d", name, expected, actual), pos).
		WithExpected(fmt.Sprintf("%d", expected)).
		WithActual(fmt.Sprintf("%d", actual)).
		Build()
}

// Redeclaration reports a function name registered twice.
func Redeclaration(name string, pos ast.Position) *CompilerError {
	return New(ErrorRedeclaration, fmt.Sprintf("redeclaration of function '%s'", name), pos).
		WithLength(len(name)).
		Build()
}

// MissingEntryPoint reports a program without a main function.
func MissingEntryPoint(pos ast.Position) *CompilerError {
	return New(ErrorMissingEntryPoint, "program has no entry point: function 'main' not found", pos).
		WithHelp("declare a function named 'main'").
		Build()
}

// AddressOfNonLvalue reports '&' applied to something without an address.
func AddressOfNonLvalue(pos ast.Position) *CompilerError {
	return New(ErrorAddressOfNonLvalue, "cannot take the address of a non-lvalue", pos).
		WithHelp("the operand of '&' must be a variable, a dereference, or a field access").
		Build()
}

// AssignToNonLvalue reports an assignment whose target has no location.
func AssignToNonLvalue(pos ast.Position) *CompilerError {
	return New(ErrorAssignToNonLvalue, "cannot assign to a non-lvalue", pos).
		WithHelp("the assignment target must be a variable, a dereference, or a field access").
		Build()
}

// NonIdentifierField reports a field access whose right side is not a bare
// identifier.
func NonIdentifierField(pos ast.Position) *CompilerError {
	return New(ErrorStructAccess, "struct field access requires an identifier after '.'", pos).
		Build()
}

// NonLvalueBase reports a field access on something without a location.
func NonLvalueBase(pos ast.Position) *CompilerError {
	return New(ErrorStructAccess, "struct field access requires an lvalue base", pos).
		Build()
}

// UnknownField reports access to a field the struct does not declare.
func UnknownField(structName, field string, pos ast.Position) *CompilerError {
	return New(ErrorStructAccess,
		fmt.Sprintf("struct '%s' has no field '%s'", structName, field), pos).
		WithLength(len(field)).
		Build()
}

// DeadCode reports a statement that follows a return in the same block.
func DeadCode(pos ast.Position) *CompilerError {
	return New(ErrorDeadCode, "unreachable statement after return", pos).
		WithNote("nothing may follow a return within a block").
		Build()
}
