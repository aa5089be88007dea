// Package types implements WhiteLang's static type system: a closed sum of
// primitive, list, and internal marker types, with structural equality and
// assignability rules.
package types

import "fmt"

// Type is the interface implemented by every static type in the sum
// Char | String | Integer | Float | Boolean | Null | List(ElemType) | Void |
// Initialized | Error.
type Type interface {
	// String returns the type's source-like name, e.g. "Integer" or "List(Integer)".
	String() string
	// TypeKind returns a stable discriminant for the type, e.g. "INTEGER".
	TypeKind() string
	// Equals reports whether two types are structurally identical.
	Equals(other Type) bool
}

// basicType implements Type for the non-parametric members of the sum.
type basicType struct {
	name string
	kind string
}

func (b *basicType) String() string   { return b.name }
func (b *basicType) TypeKind() string { return b.kind }
func (b *basicType) Equals(other Type) bool {
	o, ok := other.(*basicType)
	return ok && o.kind == b.kind
}

// Singleton basic types. Comparisons elsewhere may rely on pointer identity,
// but Equals is always the correct way to compare types.
var (
	CHAR        Type = &basicType{name: "Char", kind: "CHAR"}
	STRING      Type = &basicType{name: "String", kind: "STRING"}
	INTEGER     Type = &basicType{name: "Integer", kind: "INTEGER"}
	FLOAT       Type = &basicType{name: "Float", kind: "FLOAT"}
	BOOLEAN     Type = &basicType{name: "Boolean", kind: "BOOLEAN"}
	NULL        Type = &basicType{name: "Null", kind: "NULL"}
	VOID        Type = &basicType{name: "Void", kind: "VOID"}
	INITIALIZED Type = &basicType{name: "Initialized", kind: "INITIALIZED"}
	ERROR       Type = &basicType{name: "Error", kind: "ERROR"}
)

// ListType represents List(ElemType). An empty list literal yields
// List(Initialized); it is not unified with a use site, so it is not
// assignable to a declared list type such as List(Integer).
type ListType struct {
	ElemType Type
}

// NewListType constructs a List(elem) type.
func NewListType(elem Type) *ListType {
	return &ListType{ElemType: elem}
}

func (l *ListType) String() string   { return fmt.Sprintf("List(%s)", l.ElemType.String()) }
func (l *ListType) TypeKind() string { return "LIST" }
func (l *ListType) Equals(other Type) bool {
	o, ok := other.(*ListType)
	if !ok {
		return false
	}
	return l.ElemType.Equals(o.ElemType)
}

// IsBasicType reports whether t is one of the non-parametric primitive types
// (Char, String, Integer, Float, Boolean) — excluding Null, Void, and the
// internal markers.
func IsBasicType(t Type) bool {
	switch t {
	case CHAR, STRING, INTEGER, FLOAT, BOOLEAN:
		return true
	default:
		return false
	}
}

// IsNumericType reports whether t is Integer or Float.
func IsNumericType(t Type) bool {
	return t == INTEGER || t == FLOAT
}

// IsListType reports whether t is a List(...) type.
func IsListType(t Type) bool {
	_, ok := t.(*ListType)
	return ok
}

// Assignable reports whether a value of type from may be assigned/bound
// where a value of type to is expected: T := U holds iff U = Null, or T = U.
// Void is never assignable from anything (including itself, since Void never
// appears as a destination type in well-formed programs).
func Assignable(to, from Type) bool {
	if to == VOID {
		return false
	}
	if from == NULL {
		return true
	}
	return to.Equals(from)
}

// CommonType returns the common element type for a list literal's elements,
// promoting Integer/Float mixes to Float, and reports whether the elements
// were mutually compatible.
func CommonType(elems []Type) (Type, bool) {
	if len(elems) == 0 {
		return INITIALIZED, true
	}
	result := elems[0]
	sawFloat := result == FLOAT
	sawInt := result == INTEGER
	for _, e := range elems[1:] {
		switch {
		case e.Equals(result):
			continue
		case sawInt && e == FLOAT:
			result = FLOAT
			sawFloat = true
		case sawFloat && e == INTEGER:
			// Float stays the common type.
			continue
		default:
			return ERROR, false
		}
	}
	return result, true
}
