package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	INT_LITERAL
	FLOAT_LITERAL
	STRING_LITERAL
	CHAR_LITERAL

	// Keywords
	INT
	FLOAT
	BOOL
	CHAR
	VOID
	STRUCT
	IF
	ELSE
	WHILE
	FOR
	RETURN
	TRUE
	FALSE
	NULL
	SIZEOF

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	CARET
	AMPERSAND
	PIPE
	AND
	OR
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL

	// Separators
	COMMA
	DOT
	SEMICOLON

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
)

var KEYWORDS = map[string]TokenType{
	"int":    INT,
	"float":  FLOAT,
	"bool":   BOOL,
	"char":   CHAR,
	"void":   VOID,
	"struct": STRUCT,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"for":    FOR,
	"return": RETURN,
	"true":   TRUE,
	"false":  FALSE,
	"null":   NULL,
	"sizeof": SIZEOF,
}

// Position is a scanner-level source location; the parser lifts it into
// ast.Position by adding the filename.
type Position struct {
	Line   int
	Column int
	Offset int
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}
