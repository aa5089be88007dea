// Package runtime implements WhiteLang's runtime value representation and
// lexically scoped environment: a closed Value interface plus one
// concrete type per variant, trimmed to WhiteLang's smaller value sum:
// Integer, Float, Boolean, String, List, Null, Function.
package runtime

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"whitelang/internal/ast"
)

// Value is the interface implemented by every runtime value in the closed
// sum Integer | Float | Boolean | String | List | Null | Function.
type Value interface {
	// Type returns the value's runtime type name, e.g. "INTEGER".
	Type() string
	// String formats the value the way `print` renders it.
	String() string
	// Copy returns an independent value with the same contents. Values are
	// cloned on read from the environment; there is no aliasing between
	// variables.
	Copy() Value
}

// Integer is a signed 64-bit integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Type() string   { return "INTEGER" }
func (i *Integer) String() string { return strconv.FormatInt(i.Value, 10) }
func (i *Integer) Copy() Value    { return &Integer{Value: i.Value} }

// Float is an IEEE-754 double-precision value.
type Float struct {
	Value float64
}

func (f *Float) Type() string { return "FLOAT" }

// String formats the float using the host's shortest round-trip
// representation, with inf/nan spelled out textually.
func (f *Float) String() string {
	switch {
	case math.IsInf(f.Value, 1):
		return "inf"
	case math.IsInf(f.Value, -1):
		return "-inf"
	case math.IsNaN(f.Value):
		return "nan"
	default:
		return strconv.FormatFloat(f.Value, 'g', -1, 64)
	}
}
func (f *Float) Copy() Value { return &Float{Value: f.Value} }

// Boolean is a true/false value.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() string { return "BOOLEAN" }
func (b *Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Boolean) Copy() Value { return &Boolean{Value: b.Value} }

// String is a UTF-8 string value with value semantics.
type String struct {
	Value string
}

func (s *String) Type() string   { return "STRING" }
func (s *String) String() string { return s.Value }
func (s *String) Copy() Value    { return &String{Value: s.Value} }

// Null is the singleton null value.
type Null struct{}

func (n *Null) Type() string   { return "NULL" }
func (n *Null) String() string { return "null" }
func (n *Null) Copy() Value    { return NullValue }

// NullValue is the shared Null singleton.
var NullValue Value = &Null{}

// List is an ordered, homogeneously-typed sequence of values.
type List struct {
	Elements []Value
}

func (l *List) Type() string { return "LIST" }
func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Copy deep-copies the list and every element: mutating a copy never
// affects the original.
func (l *List) Copy() Value {
	elems := make([]Value, len(l.Elements))
	for i, e := range l.Elements {
		elems[i] = e.Copy()
	}
	return &List{Elements: elems}
}

// Function holds the declaration it was defined with: the parameter list,
// declared return type, and body. It is not a closure: WhiteLang functions
// do not capture their enclosing environment — the language surface has no
// nested function literals, only top-level-style `fn` declarations resolved
// by name at call time.
type Function struct {
	Name string
	Decl *ast.FunctionDeclStatement
}

func (f *Function) Type() string   { return "FUNCTION" }
func (f *Function) String() string { return fmt.Sprintf("<function %s>", f.Name) }
func (f *Function) Copy() Value    { return f }
