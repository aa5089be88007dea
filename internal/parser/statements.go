package parser

import (
	"whitelang/internal/ast"
	"whitelang/internal/lexer"
)

// parseStatement dispatches on the current token to the matching statement
// parser; any other token that can begin an expression starts an expression
// statement. For a token that can start neither, it records an error,
// synchronizes to the next likely statement boundary and returns a
// SyntaxErrorStatement placeholder. The individual statement parsers return
// their partially filled node when they hit an error, and an empty
// statement (a lone ';') yields nil.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.LET, lexer.VAR:
		return p.parseVarDeclStatement()
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.FOR:
		return p.parseForInStatement()
	case lexer.BREAK:
		return p.parseBreakStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.FUNCTION:
		return p.parseFunctionDeclStatement()
	case lexer.PRINT:
		return p.parsePrintStatement()
	case lexer.LBRACE:
		return p.parseBlockStatement()
	case lexer.IDENT:
		if p.peekTokenIs(lexer.EQUAL) {
			return p.parseAssignStatement()
		}
		return p.parseExpressionOrCallStatement()
	case lexer.SEMICOLON:
		// Empty statement; caller's ParseProgram loop advances past it.
		return nil
	default:
		if _, ok := p.prefixParseFns[p.curToken.Type]; ok {
			return p.parseExpressionOrCallStatement()
		}
		tok := p.curToken
		p.errorf(tok.Pos, "unexpected token %s at start of statement", tok.Type)
		p.synchronize()
		return &ast.SyntaxErrorStatement{Token: tok, Message: "unexpected token"}
	}
}

func (p *Parser) parseVarDeclStatement() *ast.VarDeclStatement {
	stmt := &ast.VarDeclStatement{Token: p.curToken, Keyword: p.curToken.Literal}

	if !p.expectPeek(lexer.IDENT) {
		p.synchronize()
		return stmt
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if p.peekTokenIs(lexer.COLON) {
		p.nextToken() // consume ':'
		p.nextToken() // move to type token
		stmt.TypeAnn = p.parseTypeAnnotation()
	}

	if !p.expectPeek(lexer.EQUAL) {
		p.synchronize()
		return stmt
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseAssignStatement() *ast.AssignStatement {
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	tok := p.curToken
	p.nextToken() // consume identifier, curToken is '='
	p.nextToken() // move to value
	value := p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return &ast.AssignStatement{Token: tok, Name: name, Value: value}
}

// parseExpressionOrCallStatement handles a bare expression statement, with
// the common case — a top-level function call — wrapped as a
// CallStatement so the interpreter can discard its value uniformly.
func (p *Parser) parseExpressionOrCallStatement() ast.Statement {
	tok := p.curToken
	expr := p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}

	if call, ok := expr.(*ast.CallExpression); ok {
		return &ast.CallStatement{Token: tok, Call: call}
	}
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

func (p *Parser) parsePrintStatement() *ast.PrintStatement {
	tok := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		p.synchronize()
		return &ast.PrintStatement{Token: tok}
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		p.synchronize()
		return &ast.PrintStatement{Token: tok, Value: value}
	}
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return &ast.PrintStatement{Token: tok, Value: value}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	p.nextToken() // consume '{'

	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

// parseTypeAnnotation parses a type name. Entry: curToken is the type
// keyword token. Exit: curToken is the last token of the annotation (the
// closing '>' for list<T>).
func (p *Parser) parseTypeAnnotation() *ast.TypeAnnotation {
	tok := p.curToken
	switch tok.Type {
	case lexer.INT_TYPE:
		return &ast.TypeAnnotation{Token: tok, Name: "int"}
	case lexer.FLOAT_TYPE:
		return &ast.TypeAnnotation{Token: tok, Name: "float"}
	case lexer.BOOL_TYPE:
		return &ast.TypeAnnotation{Token: tok, Name: "bool"}
	case lexer.STRING_TYPE:
		return &ast.TypeAnnotation{Token: tok, Name: "string"}
	case lexer.CHAR_TYPE:
		return &ast.TypeAnnotation{Token: tok, Name: "char"}
	case lexer.VOID_TYPE:
		return &ast.TypeAnnotation{Token: tok, Name: "void"}
	case lexer.LIST_TYPE:
		if !p.expectPeek(lexer.LESS) {
			return &ast.TypeAnnotation{Token: tok, Name: "list"}
		}
		p.nextToken() // move to element type token
		elem := p.parseTypeAnnotation()
		if !p.expectPeek(lexer.GREATER) {
			return &ast.TypeAnnotation{Token: tok, Name: "list", ElemType: elem}
		}
		return &ast.TypeAnnotation{Token: tok, Name: "list", ElemType: elem}
	default:
		p.errorf(tok.Pos, "expected a type name, got %s instead", tok.Type)
		return &ast.TypeAnnotation{Token: tok, Name: "error"}
	}
}
