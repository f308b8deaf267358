package parser

import (
	"mica/internal/ast"
	"mica/internal/types"
)

// Parser is a recursive-descent parser over the scanned token stream. It
// produces the untyped tree the checker consumes; it does no name or type
// resolution of its own.
type Parser struct {
	filename string
	tokens   []Token
	current  int
	errors   []ParseError
}

type ParseError struct {
	Message  string
	Position Position
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{filename: filename, tokens: tokens}
}

// ParseProgram parses top-level declarations until end of input.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{Pos: p.makePos(p.peek())}
	for !p.isAtEnd() {
		before := p.current
		p.parseDeclaration(prog)
		if p.current == before {
			// Ensure progress even on a token no declaration can start with.
			p.errorAtCurrent("expected a declaration")
			p.advance()
		}
	}
	prog.EndPos = p.makePos(p.peek())
	return prog
}

// parseDeclaration dispatches on the token shapes that may open a top-level
// declaration: a struct definition, a global variable, or a function. A
// leading "struct" is ambiguous (definition vs. struct-typed declaration);
// the brace after the name settles it.
func (p *Parser) parseDeclaration(prog *ast.Program) {
	if p.check(STRUCT) && p.checkAhead(1, IDENTIFIER) && p.checkAhead(2, LEFT_BRACE) {
		if decl := p.parseStructDecl(); decl != nil {
			prog.Structs = append(prog.Structs, decl)
		}
		return
	}

	start := p.peek()
	declType, ok := p.parseType()
	if !ok {
		return
	}
	name := p.consume(IDENTIFIER, "expected a name after the type")

	if p.check(LEFT_PAREN) {
		if fn := p.parseFunction(start, declType, name); fn != nil {
			prog.Functions = append(prog.Functions, fn)
		}
		return
	}

	end := p.consume(SEMICOLON, "expected ';' after global declaration")
	prog.Globals = append(prog.Globals, &ast.Bind{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Type:   declType,
		Name:   name.Lexeme,
	})
}

func (p *Parser) parseStructDecl() *ast.StructDecl {
	start := p.consume(STRUCT, "expected 'struct'")
	name := p.consume(IDENTIFIER, "expected struct name")
	p.consume(LEFT_BRACE, "expected '{' after struct name")

	decl := &ast.StructDecl{Pos: p.makePos(start), Name: name.Lexeme}
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		fieldStart := p.peek()
		fieldType, ok := p.parseType()
		if !ok {
			p.synchronize()
			continue
		}
		fieldName := p.consume(IDENTIFIER, "expected field name")
		fieldEnd := p.consume(SEMICOLON, "expected ';' after struct field")
		decl.Fields = append(decl.Fields, &ast.Bind{
			Pos:    p.makePos(fieldStart),
			EndPos: p.makeEndPos(fieldEnd),
			Type:   fieldType,
			Name:   fieldName.Lexeme,
		})
	}
	p.consume(RIGHT_BRACE, "expected '}' after struct fields")
	end := p.consume(SEMICOLON, "expected ';' after struct definition")
	decl.EndPos = p.makeEndPos(end)
	return decl
}

func (p *Parser) parseFunction(start Token, returnType types.Type, name Token) *ast.Function {
	fn := &ast.Function{
		Pos:    p.makePos(start),
		Return: returnType,
		Name:   name.Lexeme,
	}

	p.consume(LEFT_PAREN, "expected '(' after function name")
	if !p.check(RIGHT_PAREN) {
		for {
			paramStart := p.peek()
			paramType, ok := p.parseType()
			if !ok {
				break
			}
			paramName := p.consume(IDENTIFIER, "expected parameter name")
			fn.Formals = append(fn.Formals, &ast.Bind{
				Pos:    p.makePos(paramStart),
				EndPos: p.makeEndPos(paramName),
				Type:   paramType,
				Name:   paramName.Lexeme,
			})
			if !p.match(COMMA) {
				break
			}
		}
	}
	p.consume(RIGHT_PAREN, "expected ')' after parameters")
	p.consume(LEFT_BRACE, "expected '{' before function body")

	// Locals come first inside the body, one per declaration, before any
	// statement.
	for p.checkTypeStart() {
		localStart := p.peek()
		localType, ok := p.parseType()
		if !ok {
			p.synchronize()
			continue
		}
		localName := p.consume(IDENTIFIER, "expected local variable name")
		localEnd := p.consume(SEMICOLON, "expected ';' after local declaration")
		fn.Locals = append(fn.Locals, &ast.Bind{
			Pos:    p.makePos(localStart),
			EndPos: p.makeEndPos(localEnd),
			Type:   localType,
			Name:   localName.Lexeme,
		})
	}

	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		fn.Body = append(fn.Body, p.parseStatement())
	}
	end := p.consume(RIGHT_BRACE, "expected '}' after function body")
	fn.EndPos = p.makeEndPos(end)
	return fn
}

// parseType parses a base type keyword with any number of trailing '*'s.
func (p *Parser) parseType() (types.Type, bool) {
	var base types.Type
	switch {
	case p.match(INT):
		base = types.Int
	case p.match(FLOAT):
		base = types.Float
	case p.match(BOOL):
		base = types.Bool
	case p.match(CHAR):
		base = types.Char
	case p.match(VOID):
		base = types.Void
	case p.match(STRUCT):
		name := p.consume(IDENTIFIER, "expected struct name after 'struct'")
		base = types.Struct{Name: name.Lexeme}
	default:
		p.errorAtCurrent("expected a type")
		return nil, false
	}
	for p.match(STAR) {
		base = types.PointerTo(base)
	}
	return base, true
}

// checkTypeStart reports whether the upcoming tokens open a type, which in
// statement position can only mean a local declaration.
func (p *Parser) checkTypeStart() bool {
	switch p.peek().Type {
	case INT, FLOAT, BOOL, CHAR, VOID:
		return true
	case STRUCT:
		return p.checkAhead(1, IDENTIFIER)
	}
	return false
}

func (p *Parser) parseStatement() ast.Stmt {
	switch {
	case p.check(LEFT_BRACE):
		return p.parseBlock()
	case p.check(IF):
		return p.parseIf()
	case p.check(WHILE):
		return p.parseWhile()
	case p.check(FOR):
		return p.parseFor()
	case p.check(RETURN):
		return p.parseReturn()
	}

	start := p.peek()
	expr := p.parseExpr()
	end := p.consume(SEMICOLON, "expected ';' after expression")
	return &ast.ExprStmt{Pos: p.makePos(start), EndPos: p.makeEndPos(end), X: expr}
}

func (p *Parser) parseBlock() ast.Stmt {
	start := p.consume(LEFT_BRACE, "expected '{'")
	block := &ast.BlockStmt{Pos: p.makePos(start)}
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		block.Stmts = append(block.Stmts, p.parseStatement())
	}
	end := p.consume(RIGHT_BRACE, "expected '}' after block")
	block.EndPos = p.makeEndPos(end)
	return block
}

func (p *Parser) parseIf() ast.Stmt {
	start := p.consume(IF, "expected 'if'")
	p.consume(LEFT_PAREN, "expected '(' after 'if'")
	cond := p.parseExpr()
	p.consume(RIGHT_PAREN, "expected ')' after condition")
	then := p.parseStatement()

	stmt := &ast.IfStmt{Pos: p.makePos(start), Cond: cond, Then: then}
	stmt.EndPos = then.NodeEndPos()
	if p.match(ELSE) {
		stmt.Else = p.parseStatement()
		stmt.EndPos = stmt.Else.NodeEndPos()
	}
	return stmt
}

func (p *Parser) parseWhile() ast.Stmt {
	start := p.consume(WHILE, "expected 'while'")
	p.consume(LEFT_PAREN, "expected '(' after 'while'")
	cond := p.parseExpr()
	p.consume(RIGHT_PAREN, "expected ')' after condition")
	body := p.parseStatement()
	return &ast.WhileStmt{
		Pos:    p.makePos(start),
		EndPos: body.NodeEndPos(),
		Cond:   cond,
		Body:   body,
	}
}

func (p *Parser) parseFor() ast.Stmt {
	start := p.consume(FOR, "expected 'for'")
	p.consume(LEFT_PAREN, "expected '(' after 'for'")
	init := p.parseOptionalExpr(SEMICOLON)
	p.consume(SEMICOLON, "expected ';' after for-initializer")
	cond := p.parseOptionalExpr(SEMICOLON)
	p.consume(SEMICOLON, "expected ';' after for-condition")
	post := p.parseOptionalExpr(RIGHT_PAREN)
	p.consume(RIGHT_PAREN, "expected ')' after for-clauses")
	body := p.parseStatement()
	return &ast.ForStmt{
		Pos:    p.makePos(start),
		EndPos: body.NodeEndPos(),
		Init:   init,
		Cond:   cond,
		Post:   post,
		Body:   body,
	}
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.consume(RETURN, "expected 'return'")
	value := p.parseOptionalExpr(SEMICOLON)
	end := p.consume(SEMICOLON, "expected ';' after return")
	return &ast.ReturnStmt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Value:  value,
	}
}

// parseOptionalExpr parses an expression unless the terminator comes first,
// in which case the omitted slot becomes a NoExpr placeholder.
func (p *Parser) parseOptionalExpr(terminator TokenType) ast.Expr {
	if p.check(terminator) {
		pos := p.makePos(p.peek())
		return &ast.NoExpr{Pos: pos, EndPos: pos}
	}
	return p.parseExpr()
}
