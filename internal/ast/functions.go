package ast

import (
	"bytes"
	"strings"

	"whitelang/internal/lexer"
)

// Parameter is one formal parameter in a function declaration's parameter
// list: a name and its required type annotation.
type Parameter struct {
	Name    *Identifier
	TypeAnn *TypeAnnotation
}

func (p *Parameter) String() string {
	return p.Name.String() + ": " + p.TypeAnn.String()
}

// FunctionDeclStatement declares a named function. ReturnType is nil for a
// function that returns Void: a function with no return-type annotation is
// checked against Void.
type FunctionDeclStatement struct {
	Token      lexer.Token
	Name       *Identifier
	Parameters []*Parameter
	ReturnType *TypeAnnotation
	Body       *BlockStatement
}

func (fd *FunctionDeclStatement) statementNode()       {}
func (fd *FunctionDeclStatement) TokenLiteral() string { return fd.Token.Literal }
func (fd *FunctionDeclStatement) Pos() lexer.Position  { return fd.Token.Pos }
func (fd *FunctionDeclStatement) String() string {
	params := make([]string, len(fd.Parameters))
	for i, p := range fd.Parameters {
		params[i] = p.String()
	}
	var out bytes.Buffer
	out.WriteString("fn " + fd.Name.String() + "(" + strings.Join(params, ", ") + ")")
	if fd.ReturnType != nil {
		out.WriteString(": " + fd.ReturnType.String())
	}
	out.WriteString(" " + fd.Body.String())
	return out.String()
}

// ReturnStatement exits the enclosing function, optionally yielding a
// value. Value is nil for a bare `return;` (the function's return type must
// then be Void).
type ReturnStatement struct {
	Token lexer.Token
	Value Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) Pos() lexer.Position  { return rs.Token.Pos }
func (rs *ReturnStatement) String() string {
	if rs.Value == nil {
		return "return;"
	}
	return "return " + rs.Value.String() + ";"
}

// CallStatement is a bare function call used as a statement, e.g. `f(1);`
// where f's return value (if any) is discarded.
type CallStatement struct {
	Token lexer.Token
	Call  *CallExpression
}

func (cs *CallStatement) statementNode()       {}
func (cs *CallStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *CallStatement) Pos() lexer.Position  { return cs.Token.Pos }
func (cs *CallStatement) String() string       { return cs.Call.String() + ";" }
