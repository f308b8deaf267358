package parser

import (
	"strconv"

	"mica/internal/ast"
)

var binaryOps = map[TokenType]struct {
	op   ast.BinOp
	prec int
}{
	OR:            {ast.Or, 1},
	AND:           {ast.And, 2},
	PIPE:          {ast.BitOr, 3},
	AMPERSAND:     {ast.BitAnd, 4},
	EQUAL_EQUAL:   {ast.Eq, 5},
	BANG_EQUAL:    {ast.Neq, 5},
	LESS:          {ast.Lt, 6},
	LESS_EQUAL:    {ast.Leq, 6},
	GREATER:       {ast.Gt, 6},
	GREATER_EQUAL: {ast.Geq, 6},
	PLUS:          {ast.Add, 7},
	MINUS:         {ast.Sub, 7},
	STAR:          {ast.Mult, 8},
	SLASH:         {ast.Div, 8},
	CARET:         {ast.Pow, 9},
}

// parseExpr parses a full expression. Assignment is right-associative and
// binds loosest; lvalue validation is the checker's job, not the parser's.
func (p *Parser) parseExpr() ast.Expr {
	target := p.parsePrattExpr(1)
	if p.match(EQUAL) {
		value := p.parseExpr()
		return &ast.AssignExpr{
			Pos:    target.NodePos(),
			EndPos: value.NodeEndPos(),
			Target: target,
			Value:  value,
		}
	}
	return target
}

func (p *Parser) parsePrattExpr(minPrec int) ast.Expr {
	expr := p.parsePrefixExpr()

	for {
		entry, ok := binaryOps[p.peek().Type]
		if !ok || entry.prec < minPrec {
			break
		}
		p.advance()

		// Power is right-associative; everything else associates left.
		nextPrec := entry.prec + 1
		if entry.op == ast.Pow {
			nextPrec = entry.prec
		}
		right := p.parsePrattExpr(nextPrec)

		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     entry.op,
			Left:   expr,
			Right:  right,
		}
	}
	return expr
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	switch {
	case p.match(MINUS):
		op := p.previous()
		value := p.parsePrefixExpr()
		return &ast.UnaryExpr{Pos: p.makePos(op), EndPos: value.NodeEndPos(), Op: ast.Neg, Value: value}
	case p.match(BANG):
		op := p.previous()
		value := p.parsePrefixExpr()
		return &ast.UnaryExpr{Pos: p.makePos(op), EndPos: value.NodeEndPos(), Op: ast.Not, Value: value}
	case p.match(AMPERSAND):
		op := p.previous()
		value := p.parsePrefixExpr()
		return &ast.AddrExpr{Pos: p.makePos(op), EndPos: value.NodeEndPos(), Value: value}
	case p.match(STAR):
		op := p.previous()
		value := p.parsePrefixExpr()
		return &ast.DerefExpr{Pos: p.makePos(op), EndPos: value.NodeEndPos(), Value: value}
	}

	// A parenthesis opening a type is a cast, which binds like a prefix
	// operator. Type keywords cannot open an expression, so one token of
	// lookahead disambiguates casts from grouping.
	if p.check(LEFT_PAREN) && p.typeStartAhead(1) {
		open := p.advance()
		target, _ := p.parseType()
		p.consume(RIGHT_PAREN, "expected ')' after cast type")
		value := p.parsePrefixExpr()
		return &ast.CastExpr{
			Pos:    p.makePos(open),
			EndPos: value.NodeEndPos(),
			Target: target,
			Value:  value,
		}
	}

	return p.parsePostfixExpr(p.parsePrimaryExpr())
}

func (p *Parser) parsePostfixExpr(expr ast.Expr) ast.Expr {
	for p.match(DOT) {
		field := p.consume(IDENTIFIER, "expected field name after '.'")
		expr = &ast.FieldAccessExpr{
			Pos:    expr.NodePos(),
			EndPos: p.makeEndPos(field),
			Target: expr,
			Field:  &ast.IdentExpr{Pos: p.makePos(field), EndPos: p.makeEndPos(field), Name: field.Lexeme},
		}
	}
	return expr
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	tok := p.peek()
	switch tok.Type {
	case INT_LITERAL:
		p.advance()
		value, _ := strconv.ParseInt(tok.Lexeme, 10, 64)
		return &ast.IntLit{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Value: value}

	case FLOAT_LITERAL:
		p.advance()
		value, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return &ast.FloatLit{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Value: value}

	case STRING_LITERAL:
		p.advance()
		return &ast.StringLit{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Value: unquoteString(tok.Lexeme)}

	case CHAR_LITERAL:
		p.advance()
		return &ast.CharLit{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Value: unquoteChar(tok.Lexeme)}

	case TRUE, FALSE:
		p.advance()
		return &ast.BoolLit{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Value: tok.Type == TRUE}

	case NULL:
		p.advance()
		return &ast.NullLit{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok)}

	case SIZEOF:
		p.advance()
		p.consume(LEFT_PAREN, "expected '(' after 'sizeof'")
		target, _ := p.parseType()
		end := p.consume(RIGHT_PAREN, "expected ')' after sizeof type")
		return &ast.SizeofExpr{Pos: p.makePos(tok), EndPos: p.makeEndPos(end), Target: target}

	case IDENTIFIER:
		p.advance()
		if p.check(LEFT_PAREN) {
			return p.parseCall(tok)
		}
		return &ast.IdentExpr{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Name: tok.Lexeme}

	case LEFT_PAREN:
		p.advance()
		expr := p.parseExpr()
		p.consume(RIGHT_PAREN, "expected ')' after expression")
		return expr
	}

	p.errorAtCurrent("expected an expression")
	pos := p.makePos(tok)
	p.advance()
	return &ast.NoExpr{Pos: pos, EndPos: pos}
}

func (p *Parser) parseCall(name Token) ast.Expr {
	p.consume(LEFT_PAREN, "expected '(' after function name")
	call := &ast.CallExpr{Pos: p.makePos(name), Name: name.Lexeme}
	if !p.check(RIGHT_PAREN) {
		for {
			call.Args = append(call.Args, p.parseExpr())
			if !p.match(COMMA) {
				break
			}
		}
	}
	end := p.consume(RIGHT_PAREN, "expected ')' after arguments")
	call.EndPos = p.makeEndPos(end)
	return call
}

// typeStartAhead reports whether the token at the given offset opens a type.
func (p *Parser) typeStartAhead(offset int) bool {
	switch p.peekAhead(offset).Type {
	case INT, FLOAT, BOOL, CHAR, VOID, STRUCT:
		return true
	}
	return false
}

// unquoteString strips the quotes and resolves escapes in a scanned string
// lexeme. The scanner has already verified the quoting.
func unquoteString(lexeme string) string {
	body := lexeme[1 : len(lexeme)-1]
	out := make([]rune, 0, len(body))
	escaped := false
	for _, r := range body {
		if escaped {
			out = append(out, unescape(r))
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func unquoteChar(lexeme string) rune {
	body := []rune(lexeme[1 : len(lexeme)-1])
	if len(body) == 2 && body[0] == '\\' {
		return unescape(body[1])
	}
	if len(body) == 0 {
		return 0
	}
	return body[0]
}

func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return r
	}
}
