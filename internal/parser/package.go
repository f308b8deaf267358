package parser

import "mica/internal/ast"

// ParseSource scans and parses a whole source file. The returned program is
// usable only when both error lists are empty.
func ParseSource(path string, source string) (*ast.Program, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	parser := NewParser(path, tokens)
	program := parser.ParseProgram()

	return program, parser.errors, scanner.errors
}
