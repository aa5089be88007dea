// Package parser implements WhiteLang's recursive-descent parser with
// precedence climbing for expressions, using a prefix/infix
// parse-function-map idiom simplified to the scale of this grammar (no
// speculative backtracking, no block-context stack — the grammar has no
// constructs that need them).
package parser

import (
	"fmt"

	"whitelang/internal/ast"
	"whitelang/internal/lexer"
)

// Precedence levels for binary operators, lowest to highest.
const (
	_ int = iota
	LOWEST
	LOGICAL     // && ||
	EQUALITY    // == !=
	COMPARISON  // < > <= >=
	ADDITIVE    // + -
	FACTOR      // * /
	PREFIX      // -x, not x
	CALL        // f(args)
)

var precedences = map[lexer.TokenType]int{
	lexer.LOGICAL_AND:   LOGICAL,
	lexer.LOGICAL_OR:    LOGICAL,
	lexer.EQUAL_EQUAL:   EQUALITY,
	lexer.BANG_EQUAL:    EQUALITY,
	lexer.LESS:          COMPARISON,
	lexer.GREATER:       COMPARISON,
	lexer.LESS_EQUAL:    COMPARISON,
	lexer.GREATER_EQUAL: COMPARISON,
	lexer.PLUS:          ADDITIVE,
	lexer.MINUS:         ADDITIVE,
	lexer.STAR:          FACTOR,
	lexer.SLASH:         FACTOR,
	lexer.LPAREN:        CALL,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser turns a token stream into an AST, recovering from syntax errors by
// synchronizing at the next statement boundary.
type Parser struct {
	l      *lexer.Lexer
	errors []*ParserError

	curToken  lexer.Token
	peekToken lexer.Token

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser over the given Lexer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:    p.parseIdentifierOrCall,
		lexer.INT:      p.parseIntegerLiteral,
		lexer.FLOAT:    p.parseFloatLiteral,
		lexer.STRING:   p.parseStringLiteral,
		lexer.TRUE:     p.parseBooleanLiteral,
		lexer.FALSE:    p.parseBooleanLiteral,
		lexer.NULL:     p.parseNullLiteral,
		lexer.LPAREN:   p.parseGroupedExpression,
		lexer.LBRACKET: p.parseListLiteral,
		lexer.MINUS:    p.parseUnaryExpression,
		lexer.NOT:      p.parseUnaryExpression,
	}

	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:          p.parseBinaryExpression,
		lexer.MINUS:         p.parseBinaryExpression,
		lexer.STAR:          p.parseBinaryExpression,
		lexer.SLASH:         p.parseBinaryExpression,
		lexer.EQUAL_EQUAL:   p.parseBinaryExpression,
		lexer.BANG_EQUAL:    p.parseBinaryExpression,
		lexer.LESS:          p.parseBinaryExpression,
		lexer.GREATER:       p.parseBinaryExpression,
		lexer.LESS_EQUAL:    p.parseBinaryExpression,
		lexer.GREATER_EQUAL: p.parseBinaryExpression,
		lexer.LOGICAL_AND:   p.parseBinaryExpression,
		lexer.LOGICAL_OR:    p.parseBinaryExpression,
	}

	// Prime curToken/peekToken.
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns the syntax errors accumulated while parsing.
func (p *Parser) Errors() []*ParserError {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// expectPeek advances past the peek token if it matches t, else records an
// error and leaves the cursor in place.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t lexer.TokenType) {
	msg := fmt.Sprintf("expected next token to be %s, got %s instead", t, p.peekToken.Type)
	p.errors = append(p.errors, &ParserError{Pos: p.peekToken.Pos, Message: msg})
}

func (p *Parser) errorf(pos lexer.Position, format string, args ...any) {
	p.errors = append(p.errors, &ParserError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) noPrefixParseFnError(t lexer.TokenType) {
	p.errorf(p.curToken.Pos, "no prefix parse function for %s found", t)
}

// synchronize advances until the current token is a ';' or the next token
// is a likely statement start (or '}'), so the caller's usual advance lands
// on the next statement and one syntax error does not cascade into
// spurious follow-on errors.
func (p *Parser) synchronize() {
	for !p.curTokenIs(lexer.EOF) {
		if p.curTokenIs(lexer.SEMICOLON) {
			return
		}
		switch p.peekToken.Type {
		case lexer.LET, lexer.VAR, lexer.IF, lexer.WHILE, lexer.FOR,
			lexer.FUNCTION, lexer.RETURN, lexer.BREAK, lexer.PRINT, lexer.RBRACE:
			return
		}
		p.nextToken()
	}
}

// ParseProgram parses the entire token stream. When no statement-starting
// token appears at all, and a single expression followed by EOF was parsed
// instead, the result is the REPL-style single-expression form.
func ParseProgram(l *lexer.Lexer) *ast.Program {
	start := *l
	p := New(l)
	program := &ast.Program{}

	if !p.looksLikeStatement() {
		expr := p.parseExpression(LOWEST)
		p.nextToken()
		if expr != nil && p.curTokenIs(lexer.EOF) {
			program.TopExpression = expr
			for _, e := range p.errors {
				program.Errors = append(program.Errors, e.Diagnostic())
			}
			return program
		}
		// Fall through: not actually a clean single expression, reparse as
		// a statement list from scratch so errors are reported consistently.
		*l = start
		p = New(l)
	}

	for !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	for _, e := range p.errors {
		program.Errors = append(program.Errors, e.Diagnostic())
	}
	return program
}

// looksLikeStatement reports whether the current token can only begin a
// statement, never a bare top-level expression.
func (p *Parser) looksLikeStatement() bool {
	switch p.curToken.Type {
	case lexer.LET, lexer.VAR, lexer.IF, lexer.WHILE, lexer.FOR,
		lexer.FUNCTION, lexer.RETURN, lexer.BREAK, lexer.PRINT:
		return true
	case lexer.IDENT:
		// `name = value;` is an assignment statement; `name` alone or
		// `name(...)` alone is a candidate top-level expression.
		return p.peekToken.Type == lexer.EQUAL
	default:
		return false
	}
}
