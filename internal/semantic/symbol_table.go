// Package semantic implements WhiteLang's static validator: a scoped
// symbol table and a type-checking analyzer that walks the AST once
// before evaluation. The outer-chained SymbolTable follows a familiar
// scope-resolution idiom, simplified since WhiteLang has no overload
// sets or case-insensitive names.
package semantic

import "whitelang/internal/types"

// Symbol is a declared name's static information: its type and whether it
// is a function. Only function symbols are ReadOnly; variables declared
// with either `let` or `var` may be reassigned.
type Symbol struct {
	Name     string
	Type     types.Type
	ReadOnly bool
	IsFunc   bool
	FuncSig  *FunctionSignature
}

// FunctionSignature records a function's parameter and return types, used
// to check call-site argument count/types.
type FunctionSignature struct {
	ParamTypes []types.Type
	ReturnType types.Type
}

// SymbolTable is a single lexical scope, chained to its enclosing scope.
type SymbolTable struct {
	symbols map[string]*Symbol
	outer   *SymbolTable
}

// NewSymbolTable creates the global (outermost) scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

// NewEnclosedSymbolTable creates a scope nested inside outer.
func NewEnclosedSymbolTable(outer *SymbolTable) *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol), outer: outer}
}

// Define declares name in the current scope, overwriting any prior
// declaration of the same name in this scope.
func (st *SymbolTable) Define(name string, typ types.Type, readOnly bool) {
	st.symbols[name] = &Symbol{Name: name, Type: typ, ReadOnly: readOnly}
}

// DefineFunction declares a function symbol with its signature.
func (st *SymbolTable) DefineFunction(name string, sig *FunctionSignature) {
	st.symbols[name] = &Symbol{Name: name, Type: types.VOID, IsFunc: true, FuncSig: sig, ReadOnly: true}
}

// Resolve looks up name in this scope and, failing that, every enclosing
// scope. A name must resolve in the current scope or an enclosing one to
// be assignable.
func (st *SymbolTable) Resolve(name string) (*Symbol, bool) {
	if sym, ok := st.symbols[name]; ok {
		return sym, true
	}
	if st.outer != nil {
		return st.outer.Resolve(name)
	}
	return nil, false
}

// IsDeclaredInCurrentScope reports whether name was declared directly in
// this scope, ignoring enclosing scopes. The duplicate-name check only
// looks at the current scope — shadowing an outer binding is legal.
func (st *SymbolTable) IsDeclaredInCurrentScope(name string) bool {
	_, ok := st.symbols[name]
	return ok
}
