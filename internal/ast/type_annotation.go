package ast

import "whitelang/internal/lexer"

// TypeAnnotation is a parsed type name as written in source: a primitive
// name ("int", "float", "bool", "string", "char", "void") or, recursively,
// "list<T>".
type TypeAnnotation struct {
	Token    lexer.Token
	Name     string
	ElemType *TypeAnnotation // non-nil only when Name == "list"
}

func (t *TypeAnnotation) TokenLiteral() string { return t.Token.Literal }
func (t *TypeAnnotation) Pos() lexer.Position  { return t.Token.Pos }

func (t *TypeAnnotation) String() string {
	if t.ElemType != nil {
		return "list<" + t.ElemType.String() + ">"
	}
	return t.Name
}
