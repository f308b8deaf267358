package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(source string) ([]Token, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()
	return tokens, scanner.errors
}

func tokenTypes(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}

func TestScanSimpleDeclaration(t *testing.T) {
	tokens, errs := scanAll("int x;")
	require.Empty(t, errs)

	assert.Equal(t, []TokenType{INT, IDENTIFIER, SEMICOLON, EOF}, tokenTypes(tokens))
	assert.Equal(t, "x", tokens[1].Lexeme)
}

func TestScanKeywordsVsIdentifiers(t *testing.T) {
	tokens, errs := scanAll("while whilex for forth return returns")
	require.Empty(t, errs)

	assert.Equal(t,
		[]TokenType{WHILE, IDENTIFIER, FOR, IDENTIFIER, RETURN, IDENTIFIER, EOF},
		tokenTypes(tokens))
}

func TestScanMultiCharacterOperators(t *testing.T) {
	tokens, errs := scanAll("== != <= >= && || = ! < > & |")
	require.Empty(t, errs)

	assert.Equal(t, []TokenType{
		EQUAL_EQUAL, BANG_EQUAL, LESS_EQUAL, GREATER_EQUAL, AND, OR,
		EQUAL, BANG, LESS, GREATER, AMPERSAND, PIPE, EOF,
	}, tokenTypes(tokens))
}

func TestScanNumbers(t *testing.T) {
	tokens, errs := scanAll("42 3.14 7.")
	require.Empty(t, errs)

	// "7." is an int followed by a dot: a fractional part needs a digit.
	assert.Equal(t, []TokenType{INT_LITERAL, FLOAT_LITERAL, INT_LITERAL, DOT, EOF}, tokenTypes(tokens))
	assert.Equal(t, "3.14", tokens[1].Lexeme)
}

func TestScanStringAndCharLiterals(t *testing.T) {
	tokens, errs := scanAll(`"hello\n" 'a' '\n'`)
	require.Empty(t, errs)

	require.Equal(t, []TokenType{STRING_LITERAL, CHAR_LITERAL, CHAR_LITERAL, EOF}, tokenTypes(tokens))
	assert.Equal(t, `"hello\n"`, tokens[0].Lexeme)
	assert.Equal(t, "'a'", tokens[1].Lexeme)
}

func TestScanComments(t *testing.T) {
	source := `int a; // trailing comment
/* block
   comment */ int b;`

	tokens, errs := scanAll(source)
	require.Empty(t, errs)

	assert.Equal(t, []TokenType{INT, IDENTIFIER, SEMICOLON, INT, IDENTIFIER, SEMICOLON, EOF}, tokenTypes(tokens))
}

func TestScanUnterminatedString(t *testing.T) {
	_, errs := scanAll(`"oops`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "unterminated string")
}

func TestScanUnterminatedBlockComment(t *testing.T) {
	_, errs := scanAll("/* never closed")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "unterminated block comment")
}

func TestScanUnexpectedCharacter(t *testing.T) {
	_, errs := scanAll("int a; @")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "unexpected character")
	assert.Equal(t, 8, errs[0].Position.Column)
}

func TestScanTracksLines(t *testing.T) {
	tokens, errs := scanAll("int a;\nfloat b;")
	require.Empty(t, errs)

	assert.Equal(t, 1, tokens[0].Position.Line)
	assert.Equal(t, 2, tokens[3].Position.Line)
	assert.Equal(t, 1, tokens[3].Position.Column)
}
