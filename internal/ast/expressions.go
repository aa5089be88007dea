package ast

import (
	"bytes"
	"strings"

	"whitelang/internal/lexer"
)

// BinaryExpression covers every infix operator production in the grammar:
// Logical, Equality, Comparison, Additive, and Factor all fold into this
// one node, distinguished by Operator.
type BinaryExpression struct {
	exprBase
	Token    lexer.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) Pos() lexer.Position  { return be.Token.Pos }
func (be *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(be.Left.String())
	out.WriteString(" " + be.Operator + " ")
	out.WriteString(be.Right.String())
	out.WriteString(")")
	return out.String()
}

// UnaryExpression covers prefix `-` and `not`.
type UnaryExpression struct {
	exprBase
	Token    lexer.Token
	Operator string
	Right    Expression
}

func (ue *UnaryExpression) expressionNode()      {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Literal }
func (ue *UnaryExpression) Pos() lexer.Position  { return ue.Token.Pos }
func (ue *UnaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ue.Operator)
	out.WriteString(ue.Right.String())
	out.WriteString(")")
	return out.String()
}

// GroupedExpression is a parenthesized expression, kept as its own node so
// String() can round-trip the source parentheses.
type GroupedExpression struct {
	exprBase
	Token      lexer.Token
	Expression Expression
}

func (ge *GroupedExpression) expressionNode()      {}
func (ge *GroupedExpression) TokenLiteral() string { return ge.Token.Literal }
func (ge *GroupedExpression) Pos() lexer.Position  { return ge.Token.Pos }
func (ge *GroupedExpression) String() string {
	return "(" + ge.Expression.String() + ")"
}

// ListLiteral is a `[e1, e2, ...]` list literal.
type ListLiteral struct {
	exprBase
	Token    lexer.Token
	Elements []Expression
}

func (ll *ListLiteral) expressionNode()      {}
func (ll *ListLiteral) TokenLiteral() string { return ll.Token.Literal }
func (ll *ListLiteral) Pos() lexer.Position  { return ll.Token.Pos }
func (ll *ListLiteral) String() string {
	elems := make([]string, len(ll.Elements))
	for i, e := range ll.Elements {
		elems[i] = e.String()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

// CallExpression is a function call used as a value, e.g. in `let x = f(1)`.
type CallExpression struct {
	exprBase
	Token     lexer.Token
	Function  *Identifier
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) Pos() lexer.Position  { return ce.Token.Pos }
func (ce *CallExpression) String() string {
	args := make([]string, len(ce.Arguments))
	for i, a := range ce.Arguments {
		args[i] = a.String()
	}
	var out bytes.Buffer
	out.WriteString(ce.Function.String())
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// SyntaxErrorExpression is a placeholder inserted by the parser in
// expression position when recovery could not produce a real node.
type SyntaxErrorExpression struct {
	exprBase
	Token   lexer.Token
	Message string
}

func (se *SyntaxErrorExpression) expressionNode()      {}
func (se *SyntaxErrorExpression) TokenLiteral() string { return se.Token.Literal }
func (se *SyntaxErrorExpression) Pos() lexer.Position  { return se.Token.Pos }
func (se *SyntaxErrorExpression) String() string       { return "<error: " + se.Message + ">" }
