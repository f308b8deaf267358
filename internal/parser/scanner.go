package parser

import (
	"fmt"
	"unicode"
)

type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	startColumn int
	column      int
	errors      []ScanError
}

type ScanError struct {
	Message  string
	Position Position
	Length   int
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.current}})
	return s.tokens
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case ',':
		s.addToken(COMMA)
	case '.':
		s.addToken(DOT)
	case ';':
		s.addToken(SEMICOLON)
	case '+':
		s.addToken(PLUS)
	case '-':
		s.addToken(MINUS)
	case '*':
		s.addToken(STAR)
	case '^':
		s.addToken(CARET)

	// Operators with potential multi-character variants
	case '&':
		if s.matchNext('&') {
			s.addToken(AND)
		} else {
			s.addToken(AMPERSAND)
		}
	case '|':
		if s.matchNext('|') {
			s.addToken(OR)
		} else {
			s.addToken(PIPE)
		}
	case '!':
		if s.matchNext('=') {
			s.addToken(BANG_EQUAL)
		} else {
			s.addToken(BANG)
		}
	case '=':
		if s.matchNext('=') {
			s.addToken(EQUAL_EQUAL)
		} else {
			s.addToken(EQUAL)
		}
	case '<':
		if s.matchNext('=') {
			s.addToken(LESS_EQUAL)
		} else {
			s.addToken(LESS)
		}
	case '>':
		if s.matchNext('=') {
			s.addToken(GREATER_EQUAL)
		} else {
			s.addToken(GREATER)
		}
	case '/':
		s.scanSlash()

	// Whitespace (ignored)
	case ' ', '\r', '\t':
	case '\n':
		// Handled in advance()

	case '"':
		s.scanString()
	case '\'':
		s.scanChar()

	default:
		s.scanDefault(c)
	}
}

func (s *Scanner) scanSlash() {
	if s.matchNext('/') {
		for !s.isAtEnd() && s.peek() != '\n' {
			s.advance()
		}
	} else if s.matchNext('*') {
		for !s.isAtEnd() {
			if s.peek() == '*' && s.peekNext() == '/' {
				s.advance()
				s.advance()
				return
			}
			s.advance()
		}
		s.addError("unterminated block comment")
	} else {
		s.addToken(SLASH)
	}
}

func (s *Scanner) scanString() {
	for !s.isAtEnd() && s.peek() != '"' {
		if s.peek() == '\\' {
			s.advance()
		}
		if !s.isAtEnd() {
			s.advance()
		}
	}
	if s.isAtEnd() {
		s.addError("unterminated string literal")
		return
	}
	s.advance() // closing quote
	s.addToken(STRING_LITERAL)
}

func (s *Scanner) scanChar() {
	if s.isAtEnd() {
		s.addError("unterminated character literal")
		return
	}
	if s.peek() == '\\' {
		s.advance()
	}
	if !s.isAtEnd() {
		s.advance()
	}
	if s.isAtEnd() || s.peek() != '\'' {
		s.addError("unterminated character literal")
		return
	}
	s.advance() // closing quote
	s.addToken(CHAR_LITERAL)
}

func (s *Scanner) scanDefault(c byte) {
	switch {
	case isDigit(c):
		s.scanNumber()
	case isAlpha(c):
		s.scanIdentifier()
	default:
		s.addError(fmt.Sprintf("unexpected character %q", c))
	}
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
		s.addToken(FLOAT_LITERAL)
		return
	}
	s.addToken(INT_LITERAL)
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	lexeme := s.source[s.start:s.current]
	if keyword, ok := KEYWORDS[lexeme]; ok {
		s.addToken(keyword)
		return
	}
	s.addToken(IDENTIFIER)
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) addToken(tt TokenType) {
	s.tokens = append(s.tokens, Token{
		Type:     tt,
		Lexeme:   s.source[s.start:s.current],
		Position: Position{Line: s.line, Column: s.startColumn, Offset: s.start},
	})
}

func (s *Scanner) addError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: Position{Line: s.line, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c))
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
