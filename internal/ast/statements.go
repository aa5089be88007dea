package ast

import (
	"bytes"

	"whitelang/internal/lexer"
)

// VarDeclStatement declares a new binding with `let` or `var`; both
// keywords declare a reassignable variable. TypeAnn is nil when the declaration has no explicit type
// annotation, in which case the validator infers the type from Value.
type VarDeclStatement struct {
	Token   lexer.Token
	Keyword string // "let" or "var"
	Name    *Identifier
	TypeAnn *TypeAnnotation
	Value   Expression
}

func (vs *VarDeclStatement) statementNode()       {}
func (vs *VarDeclStatement) TokenLiteral() string { return vs.Token.Literal }
func (vs *VarDeclStatement) Pos() lexer.Position  { return vs.Token.Pos }
func (vs *VarDeclStatement) String() string {
	var out bytes.Buffer
	out.WriteString(vs.Keyword + " " + vs.Name.String())
	if vs.TypeAnn != nil {
		out.WriteString(": " + vs.TypeAnn.String())
	}
	out.WriteString(" = ")
	if vs.Value != nil {
		out.WriteString(vs.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// AssignStatement assigns a new value to an already-declared variable.
// The name must resolve in the current scope or an enclosing one.
type AssignStatement struct {
	Token lexer.Token
	Name  *Identifier
	Value Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignStatement) Pos() lexer.Position  { return as.Token.Pos }
func (as *AssignStatement) String() string {
	return as.Name.String() + " = " + as.Value.String() + ";"
}

// BlockStatement is a brace-delimited statement sequence; it introduces a
// new lexical scope both in the symbol table and at runtime.
type BlockStatement struct {
	Token      lexer.Token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) Pos() lexer.Position  { return bs.Token.Pos }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range bs.Statements {
		out.WriteString("  " + s.String() + "\n")
	}
	out.WriteString("}")
	return out.String()
}

// PrintStatement writes its value's runtime representation to stdout
// followed by a newline.
type PrintStatement struct {
	Token lexer.Token
	Value Expression
}

func (ps *PrintStatement) statementNode()       {}
func (ps *PrintStatement) TokenLiteral() string { return ps.Token.Literal }
func (ps *PrintStatement) Pos() lexer.Position  { return ps.Token.Pos }
func (ps *PrintStatement) String() string {
	return "print(" + ps.Value.String() + ");"
}

// ExpressionStatement wraps an expression used for its side effects alone
// (a bare call that isn't itself a CallStatement target, for example).
type ExpressionStatement struct {
	Token      lexer.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) Pos() lexer.Position  { return es.Token.Pos }
func (es *ExpressionStatement) String() string {
	if es.Expression == nil {
		return ""
	}
	return es.Expression.String() + ";"
}

// SyntaxErrorStatement is a placeholder inserted by the parser when
// statement-level recovery could not produce a real node.
type SyntaxErrorStatement struct {
	Token   lexer.Token
	Message string
}

func (se *SyntaxErrorStatement) statementNode()       {}
func (se *SyntaxErrorStatement) TokenLiteral() string { return se.Token.Literal }
func (se *SyntaxErrorStatement) Pos() lexer.Position  { return se.Token.Pos }
func (se *SyntaxErrorStatement) String() string       { return "<error: " + se.Message + ">" }
