package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"mica/internal/errors"
	"mica/internal/parser"
)

// ConvertScanErrors transforms scanner errors into LSP diagnostics:
// invalid characters, unterminated strings, and similar tokenization issues.
func ConvertScanErrors(scanErrors []parser.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		endChar := uint32(scanErr.Position.Column - 1 + scanErr.Length)
		if scanErr.Length == 0 {
			endChar = uint32(scanErr.Position.Column) // minimal visible span
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1), // LSP is 0-based
					Character: uint32(scanErr.Position.Column - 1),
				},
				End: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: endChar,
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("mica-scanner"),
			Message:  scanErr.Message,
		})
	}

	return diagnostics
}

// ConvertParseErrors transforms parser errors into LSP diagnostics.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),
					Character: uint32(parseErr.Position.Column - 1),
				},
				End: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),
					Character: uint32(parseErr.Position.Column + 1),
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("mica-parser"),
			Message:  parseErr.Message,
		})
	}

	return diagnostics
}

// ConvertSemanticError transforms the checker's single fail-fast diagnostic
// into an LSP diagnostic.
func ConvertSemanticError(err *errors.CompilerError) []protocol.Diagnostic {
	if err == nil {
		return nil
	}

	length := err.Length
	if length < 1 {
		length = 1
	}

	message := err.Message
	if err.Code != "" {
		message = err.Code + ": " + message
	}

	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(err.Position.Line - 1),
				Character: uint32(err.Position.Column - 1),
			},
			End: protocol.Position{
				Line:      uint32(err.Position.Line - 1),
				Character: uint32(err.Position.Column - 1 + length),
			},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("mica-checker"),
		Message:  message,
	}}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
