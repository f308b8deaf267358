package errors

import (
	"fmt"

	"mica/internal/ast"
)

// ErrorLevel represents the severity of a diagnostic.
type ErrorLevel string

const (
	Error ErrorLevel = "error"
	Note  ErrorLevel = "note"
)

// CompilerError is the single diagnostic value a failed analysis produces.
// The checker is fail-fast, so at most one of these comes out of a run; the
// structured fields let a front end render a precise message without the
// core doing any formatting or I/O itself.
type CompilerError struct {
	Level    ErrorLevel
	Code     string       // error code like E0003
	Message  string       // primary message
	Position ast.Position // location of the offending node
	Length   int          // length of the problematic region
	Expected []string     // expected types, when the kind carries them
	Actual   string       // actual type, when the kind carries it
	Notes    []string     // additional context
	HelpText string       // help text for the error
}

// Error renders the bare diagnostic; use ErrorReporter for the full
// source-annotated form.
func (e *CompilerError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s[%s]: %s", e.Level, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Level, e.Message)
}

// Builder provides a fluent interface for assembling diagnostics.
type Builder struct {
	err CompilerError
}

// New starts a diagnostic with the given code, message, and location.
func New(code, message string, pos ast.Position) *Builder {
	return &Builder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span.
func (b *Builder) WithLength(length int) *Builder {
	b.err.Length = length
	return b
}

// WithExpected records the set of types the checker would have accepted.
func (b *Builder) WithExpected(expected ...string) *Builder {
	b.err.Expected = expected
	return b
}

// WithActual records the type the checker actually found.
func (b *Builder) WithActual(actual string) *Builder {
	b.err.Actual = actual
	return b
}

// WithNote adds a context note to the error.
func (b *Builder) WithNote(note string) *Builder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error.
func (b *Builder) WithHelp(help string) *Builder {
	b.err.HelpText = help
	return b
}

// Build returns the completed diagnostic.
func (b *Builder) Build() *CompilerError {
	return &b.err
}
