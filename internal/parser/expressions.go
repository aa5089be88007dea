package parser

import (
	"strconv"

	"whitelang/internal/ast"
	"whitelang/internal/lexer"
)

// parseExpression implements precedence-climbing parsing: a prefix parse
// function produces the left operand, then infix parse functions fold in
// operators that bind more tightly than precedence, one at a time.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.noPrefixParseFnError(p.curToken.Type)
		return &ast.SyntaxErrorExpression{
			Token:   p.curToken,
			Message: "unexpected token in expression",
		}
	}
	left := prefix()

	for !p.peekTokenIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifierOrCall() ast.Expression {
	ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.peekTokenIs(lexer.LPAREN) {
		return ident
	}
	p.nextToken() // consume identifier, curToken is now LPAREN
	return p.parseCallExpression(ident)
}

func (p *Parser) parseCallExpression(function *ast.Identifier) ast.Expression {
	call := &ast.CallExpression{Token: p.curToken, Function: function}
	call.Arguments = p.parseExpressionList(lexer.RPAREN)
	return call
}

// parseExpressionList parses a comma-separated expression list, ending at
// the closing token end. Entry: curToken is the opening delimiter.
func (p *Parser) parseExpressionList(end lexer.TokenType) []ast.Expression {
	var list []ast.Expression

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return list
	}
	return list
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.curToken
	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.errorf(tok.Pos, "could not parse %q as integer", tok.Literal)
		return &ast.SyntaxErrorExpression{Token: tok, Message: "invalid integer literal"}
	}
	return &ast.IntegerLiteral{Token: tok, Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.curToken
	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.errorf(tok.Pos, "could not parse %q as float", tok.Literal)
		return &ast.SyntaxErrorExpression{Token: tok, Message: "invalid float literal"}
	}
	return &ast.FloatLiteral{Token: tok, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(lexer.TRUE)}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Token: p.curToken}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return &ast.SyntaxErrorExpression{Token: tok, Message: "expected closing ')'"}
	}
	return &ast.GroupedExpression{Token: tok, Expression: exp}
}

func (p *Parser) parseListLiteral() ast.Expression {
	tok := p.curToken
	elements := p.parseExpressionList(lexer.RBRACKET)
	return &ast.ListLiteral{Token: tok, Elements: elements}
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	right := p.parseExpression(PREFIX)
	return &ast.UnaryExpression{Token: tok, Operator: tok.Literal, Right: right}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	precedence := p.curPrecedence()
	operator := tok.Literal
	p.nextToken()
	right := p.parseExpression(precedence)
	return &ast.BinaryExpression{Token: tok, Left: left, Operator: operator, Right: right}
}
