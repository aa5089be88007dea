package parser

import (
	"whitelang/internal/ast"
	"whitelang/internal/lexer"
)

func (p *Parser) parseIfStatement() *ast.IfStatement {
	stmt := &ast.IfStatement{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		p.synchronize()
		return stmt
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RPAREN) {
		p.synchronize()
		return stmt
	}
	if !p.expectPeek(lexer.LBRACE) {
		p.synchronize()
		return stmt
	}
	stmt.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(lexer.ELSE) {
		p.nextToken()
		if !p.expectPeek(lexer.LBRACE) {
			p.synchronize()
			return stmt
		}
		stmt.Alternative = p.parseBlockStatement()
	}

	return stmt
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	stmt := &ast.WhileStatement{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		p.synchronize()
		return stmt
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RPAREN) {
		p.synchronize()
		return stmt
	}
	if !p.expectPeek(lexer.LBRACE) {
		p.synchronize()
		return stmt
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

func (p *Parser) parseForInStatement() *ast.ForInStatement {
	stmt := &ast.ForInStatement{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		p.synchronize()
		return stmt
	}
	if !p.expectPeek(lexer.IDENT) {
		p.synchronize()
		return stmt
	}
	stmt.Variable = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(lexer.IN) {
		p.synchronize()
		return stmt
	}
	p.nextToken()
	stmt.Iterable = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RPAREN) {
		p.synchronize()
		return stmt
	}
	if !p.expectPeek(lexer.LBRACE) {
		p.synchronize()
		return stmt
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

func (p *Parser) parseBreakStatement() *ast.BreakStatement {
	stmt := &ast.BreakStatement{Token: p.curToken}
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
		return stmt
	}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseFunctionDeclStatement() *ast.FunctionDeclStatement {
	stmt := &ast.FunctionDeclStatement{Token: p.curToken}

	if !p.expectPeek(lexer.IDENT) {
		p.synchronize()
		return stmt
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(lexer.LPAREN) {
		p.synchronize()
		return stmt
	}
	stmt.Parameters = p.parseParameterList()

	if p.peekTokenIs(lexer.COLON) {
		p.nextToken() // consume ':'
		p.nextToken() // move to type token
		stmt.ReturnType = p.parseTypeAnnotation()
	}

	if !p.expectPeek(lexer.LBRACE) {
		p.synchronize()
		return stmt
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

// parseParameterList parses `(name: Type, name: Type, ...)`. Entry: curToken
// is '('. Exit: curToken is ')'.
func (p *Parser) parseParameterList() []*ast.Parameter {
	var params []*ast.Parameter

	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return params
	}

	p.nextToken()
	params = append(params, p.parseParameter())

	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseParameter())
	}

	if !p.expectPeek(lexer.RPAREN) {
		return params
	}
	return params
}

func (p *Parser) parseParameter() *ast.Parameter {
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(lexer.COLON) {
		return &ast.Parameter{Name: name}
	}
	p.nextToken()
	return &ast.Parameter{Name: name, TypeAnn: p.parseTypeAnnotation()}
}
