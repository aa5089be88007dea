package semantic

import (
	"fmt"

	"whitelang/internal/ast"
	"whitelang/internal/errors"
	"whitelang/internal/lexer"
	"whitelang/internal/types"
)

// Analyzer performs a single pass of static validation over a parsed
// program: name resolution, type inference, and the statement-level checks
// (break-outside-loop, return-type agreement, assignment to an undeclared
// name, and so on). It never evaluates anything — the result is a
// type-annotated, diagnostic-annotated AST consumed by the evaluator.
type Analyzer struct {
	symbols     *SymbolTable
	errors      []*errors.Diagnostic
	currentFunc *FunctionSignature
	loopDepth   int
}

// NewAnalyzer creates an Analyzer with an empty global scope.
func NewAnalyzer() *Analyzer {
	return &Analyzer{symbols: NewSymbolTable()}
}

// Errors returns the diagnostics collected during Analyze.
func (a *Analyzer) Errors() []*errors.Diagnostic {
	return a.errors
}

// reportExpr attaches a diagnostic to the expression that detected it and
// mirrors it on the analyzer's program-global list.
func (a *Analyzer) reportExpr(e ast.Expression, kind errors.ErrorKind, msg string) {
	d := errors.NewDiagnostic(kind, msg, e.Pos())
	e.AddError(d)
	a.errors = append(a.errors, d)
}

// reportAt records a diagnostic that has no single expression to attach to
// (a statement-level check, a missing-name error, and so on).
func (a *Analyzer) reportAt(pos lexer.Position, kind errors.ErrorKind, msg string) {
	a.errors = append(a.errors, errors.NewDiagnostic(kind, msg, pos))
}

// Analyze validates program in place, annotating every expression node
// with its inferred Type and recording diagnostics both on individual AST
// nodes and on the returned slice.
func (a *Analyzer) Analyze(program *ast.Program) []*errors.Diagnostic {
	if program.IsExpressionOnly() {
		a.analyzeExpression(program.TopExpression)
		program.Errors = append(program.Errors, a.errors...)
		return a.errors
	}

	a.hoistFunctions(program.Statements)
	for _, stmt := range program.Statements {
		a.analyzeStatement(stmt)
	}
	program.Errors = append(program.Errors, a.errors...)
	return a.errors
}

// hoistFunctions registers every function's signature, in the scope the
// declarations appear in, before any body is analyzed, so forward
// references and recursion resolve: functions may call themselves and
// functions declared later in the same scope.
func (a *Analyzer) hoistFunctions(stmts []ast.Statement) {
	for _, stmt := range stmts {
		fn, ok := stmt.(*ast.FunctionDeclStatement)
		if !ok || fn.Name == nil {
			continue
		}
		if a.symbols.IsDeclaredInCurrentScope(fn.Name.Value) {
			a.reportAt(fn.Name.Pos(), errors.DuplicateName, fmt.Sprintf("function %q is already declared in this scope", fn.Name.Value))
			continue
		}
		a.symbols.DefineFunction(fn.Name.Value, a.signatureOf(fn))
	}
}

func (a *Analyzer) signatureOf(fn *ast.FunctionDeclStatement) *FunctionSignature {
	sig := &FunctionSignature{ReturnType: types.VOID}
	if fn.ReturnType != nil {
		sig.ReturnType = a.resolveTypeAnnotation(fn.ReturnType)
	}
	for _, p := range fn.Parameters {
		sig.ParamTypes = append(sig.ParamTypes, a.resolveTypeAnnotation(p.TypeAnn))
	}
	return sig
}

func (a *Analyzer) resolveTypeAnnotation(t *ast.TypeAnnotation) types.Type {
	if t == nil {
		return types.VOID
	}
	switch t.Name {
	case "int":
		return types.INTEGER
	case "float":
		return types.FLOAT
	case "bool":
		return types.BOOLEAN
	case "string":
		return types.STRING
	case "char":
		return types.CHAR
	case "void":
		return types.VOID
	case "list":
		return types.NewListType(a.resolveTypeAnnotation(t.ElemType))
	default:
		return types.ERROR
	}
}

// ---------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------

func (a *Analyzer) analyzeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDeclStatement:
		a.analyzeVarDecl(s)
	case *ast.AssignStatement:
		a.analyzeAssign(s)
	case *ast.BlockStatement:
		a.pushScope()
		a.analyzeStatements(s.Statements)
		a.popScope()
	case *ast.PrintStatement:
		if s.Value != nil {
			a.analyzeExpression(s.Value)
		}
	case *ast.ExpressionStatement:
		if s.Expression != nil {
			a.analyzeExpression(s.Expression)
		}
	case *ast.CallStatement:
		a.analyzeExpression(s.Call)
	case *ast.IfStatement:
		a.analyzeIf(s)
	case *ast.WhileStatement:
		a.analyzeWhile(s)
	case *ast.ForInStatement:
		a.analyzeForIn(s)
	case *ast.BreakStatement:
		if a.loopDepth == 0 {
			a.reportAt(s.Pos(), errors.BadOperator, "'break' used outside of a loop")
		}
	case *ast.ReturnStatement:
		a.analyzeReturn(s)
	case *ast.FunctionDeclStatement:
		a.analyzeFunctionDecl(s)
	case *ast.SyntaxErrorStatement:
		// Already reported by the parser; nothing further to validate.
	default:
		a.reportAt(stmt.Pos(), errors.UnexpectedToken, fmt.Sprintf("unrecognized statement node %T", stmt))
	}
}

func (a *Analyzer) analyzeStatements(stmts []ast.Statement) {
	for _, s := range stmts {
		a.analyzeStatement(s)
	}
}

func (a *Analyzer) pushScope() { a.symbols = NewEnclosedSymbolTable(a.symbols) }
func (a *Analyzer) popScope()  { a.symbols = a.symbols.outer }

func (a *Analyzer) analyzeVarDecl(s *ast.VarDeclStatement) {
	var rhsType types.Type = types.ERROR
	if s.Value != nil {
		rhsType = a.analyzeExpression(s.Value)
	}

	declared := rhsType
	if s.TypeAnn != nil {
		declared = a.resolveTypeAnnotation(s.TypeAnn)
		if s.Value != nil && rhsType != types.ERROR && !types.Assignable(declared, rhsType) {
			a.reportAt(s.Value.Pos(), errors.MismatchedTypes,
				fmt.Sprintf("cannot assign %s to declared type %s", rhsType, declared))
		}
	}

	a.symbols.Define(s.Name.Value, declared, false)
}

func (a *Analyzer) analyzeAssign(s *ast.AssignStatement) {
	rhsType := a.analyzeExpression(s.Value)

	sym, ok := a.symbols.Resolve(s.Name.Value)
	if !ok {
		a.reportAt(s.Name.Pos(), errors.UnknownName, fmt.Sprintf("assignment to undeclared name %q", s.Name.Value))
		return
	}
	if sym.ReadOnly {
		a.reportAt(s.Name.Pos(), errors.SymbolDefinitionError, fmt.Sprintf("cannot assign to function %q", s.Name.Value))
		return
	}
	if rhsType != types.ERROR && !types.Assignable(sym.Type, rhsType) {
		a.reportAt(s.Value.Pos(), errors.MismatchedTypes,
			fmt.Sprintf("cannot assign %s to %q of type %s", rhsType, s.Name.Value, sym.Type))
	}
}

func (a *Analyzer) analyzeIf(s *ast.IfStatement) {
	if s.Condition != nil {
		condType := a.analyzeExpression(s.Condition)
		if condType != types.BOOLEAN && condType != types.ERROR {
			a.reportAt(s.Condition.Pos(), errors.BadType, fmt.Sprintf("if condition must be Boolean, got %s", condType))
		}
	}
	if s.Consequence != nil {
		a.pushScope()
		a.analyzeStatements(s.Consequence.Statements)
		a.popScope()
	}
	if s.Alternative != nil {
		a.pushScope()
		a.analyzeStatements(s.Alternative.Statements)
		a.popScope()
	}
}

func (a *Analyzer) analyzeWhile(s *ast.WhileStatement) {
	if s.Condition != nil {
		condType := a.analyzeExpression(s.Condition)
		if condType != types.BOOLEAN && condType != types.ERROR {
			a.reportAt(s.Condition.Pos(), errors.BadType, fmt.Sprintf("while condition must be Boolean, got %s", condType))
		}
	}
	a.loopDepth++
	a.pushScope()
	if s.Body != nil {
		a.analyzeStatements(s.Body.Statements)
	}
	a.popScope()
	a.loopDepth--
}

func (a *Analyzer) analyzeForIn(s *ast.ForInStatement) {
	elemType := types.Type(types.ERROR)
	if s.Iterable != nil {
		iterType := a.analyzeExpression(s.Iterable)
		if lt, ok := iterType.(*types.ListType); ok {
			elemType = lt.ElemType
		} else if iterType != types.ERROR {
			a.reportAt(s.Iterable.Pos(), errors.BadType, fmt.Sprintf("for-in requires a List, got %s", iterType))
		}
	}

	a.loopDepth++
	a.pushScope()
	if s.Variable != nil {
		a.symbols.Define(s.Variable.Value, elemType, false)
	}
	if s.Body != nil {
		a.analyzeStatements(s.Body.Statements)
	}
	a.popScope()
	a.loopDepth--
}

func (a *Analyzer) analyzeReturn(s *ast.ReturnStatement) {
	exprType := types.VOID
	if s.Value != nil {
		exprType = a.analyzeExpression(s.Value)
	}

	if a.currentFunc == nil {
		a.reportAt(s.Pos(), errors.BadOperator, "'return' used outside of a function")
		return
	}
	bareVoidReturn := exprType == types.VOID && a.currentFunc.ReturnType == types.VOID
	if exprType != types.ERROR && !bareVoidReturn && !types.Assignable(a.currentFunc.ReturnType, exprType) {
		a.reportAt(s.Pos(), errors.BadReturnType,
			fmt.Sprintf("function declared to return %s but this 'return' yields %s", a.currentFunc.ReturnType, exprType))
	}
}

func (a *Analyzer) analyzeFunctionDecl(fn *ast.FunctionDeclStatement) {
	if fn.Name == nil {
		return
	}

	sig, alreadyHoisted := a.functionSignature(fn.Name.Value)
	if !alreadyHoisted {
		if a.symbols.IsDeclaredInCurrentScope(fn.Name.Value) {
			a.reportAt(fn.Name.Pos(), errors.DuplicateName, fmt.Sprintf("function %q is already declared in this scope", fn.Name.Value))
			return
		}
		sig = a.signatureOf(fn)
		a.symbols.DefineFunction(fn.Name.Value, sig)
	}

	outerFunc := a.currentFunc
	a.currentFunc = sig
	a.pushScope()
	for i, p := range fn.Parameters {
		pt := types.Type(types.ERROR)
		if i < len(sig.ParamTypes) {
			pt = sig.ParamTypes[i]
		}
		if p.Name != nil {
			a.symbols.Define(p.Name.Value, pt, false)
		}
	}
	if fn.Body != nil {
		a.analyzeStatements(fn.Body.Statements)
	}
	a.popScope()
	a.currentFunc = outerFunc
}

// functionSignature reports the signature already registered for name in
// the current scope (from hoisting), if any.
func (a *Analyzer) functionSignature(name string) (*FunctionSignature, bool) {
	sym, ok := a.symbols.symbols[name]
	if !ok || !sym.IsFunc {
		return nil, false
	}
	return sym.FuncSig, true
}

// ---------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------

func (a *Analyzer) analyzeExpression(expr ast.Expression) types.Type {
	if expr == nil {
		return types.ERROR
	}

	var result types.Type
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		result = types.INTEGER
	case *ast.FloatLiteral:
		result = types.FLOAT
	case *ast.StringLiteral:
		result = types.STRING
	case *ast.BooleanLiteral:
		result = types.BOOLEAN
	case *ast.NullLiteral:
		result = types.NULL
	case *ast.Identifier:
		result = a.analyzeIdentifier(e)
	case *ast.GroupedExpression:
		result = a.analyzeExpression(e.Expression)
	case *ast.ListLiteral:
		result = a.analyzeListLiteral(e)
	case *ast.UnaryExpression:
		result = a.analyzeUnary(e)
	case *ast.BinaryExpression:
		result = a.analyzeBinary(e)
	case *ast.CallExpression:
		result = a.analyzeCall(e)
	case *ast.SyntaxErrorExpression:
		result = types.ERROR
	default:
		a.reportAt(expr.Pos(), errors.UnexpectedToken, fmt.Sprintf("unrecognized expression node %T", expr))
		result = types.ERROR
	}

	expr.SetType(result)
	return result
}

func (a *Analyzer) analyzeIdentifier(e *ast.Identifier) types.Type {
	sym, ok := a.symbols.Resolve(e.Value)
	if !ok {
		a.reportExpr(e, errors.UnknownName, fmt.Sprintf("undefined name %q", e.Value))
		return types.ERROR
	}
	if sym.IsFunc {
		a.reportExpr(e, errors.BadType, fmt.Sprintf("%q is a function; it cannot be used as a value", e.Value))
		return types.ERROR
	}
	return sym.Type
}

func (a *Analyzer) analyzeListLiteral(e *ast.ListLiteral) types.Type {
	elemTypes := make([]types.Type, len(e.Elements))
	for i, el := range e.Elements {
		elemTypes[i] = a.analyzeExpression(el)
	}
	common, ok := types.CommonType(elemTypes)
	if !ok {
		a.reportExpr(e, errors.MismatchedTypes, "list elements have incompatible types")
		return types.NewListType(types.ERROR)
	}
	return types.NewListType(common)
}

func (a *Analyzer) analyzeUnary(e *ast.UnaryExpression) types.Type {
	rt := a.analyzeExpression(e.Right)
	switch e.Operator {
	case "not":
		if rt != types.BOOLEAN && rt != types.ERROR {
			a.reportExpr(e, errors.BadType, fmt.Sprintf("'not' requires a Boolean operand, got %s", rt))
			return types.ERROR
		}
		return types.BOOLEAN
	case "-":
		if !types.IsNumericType(rt) && rt != types.ERROR {
			a.reportExpr(e, errors.BadType, fmt.Sprintf("unary '-' requires a numeric operand, got %s", rt))
			return types.ERROR
		}
		return rt
	default:
		a.reportExpr(e, errors.BadOperator, fmt.Sprintf("unknown unary operator %q", e.Operator))
		return types.ERROR
	}
}

func (a *Analyzer) analyzeBinary(e *ast.BinaryExpression) types.Type {
	lt := a.analyzeExpression(e.Left)
	rt := a.analyzeExpression(e.Right)

	switch e.Operator {
	case "+", "-", "*", "/":
		return a.analyzeArithmetic(e, lt, rt)
	case "<", "<=", ">", ">=":
		return a.analyzeComparison(e, lt, rt)
	case "==", "!=":
		return a.analyzeEquality(e, lt, rt)
	case "&&", "||":
		return a.analyzeLogical(e, lt, rt)
	default:
		a.reportExpr(e, errors.BadOperator, fmt.Sprintf("unknown binary operator %q", e.Operator))
		return types.ERROR
	}
}

func (a *Analyzer) analyzeArithmetic(e *ast.BinaryExpression, lt, rt types.Type) types.Type {
	if !types.IsNumericType(lt) || !types.IsNumericType(rt) {
		if lt != types.ERROR && rt != types.ERROR {
			a.reportExpr(e, errors.BadType, fmt.Sprintf("operator %q requires numeric operands, got %s and %s", e.Operator, lt, rt))
		}
		return types.ERROR
	}
	if lt == types.FLOAT || rt == types.FLOAT {
		return types.FLOAT
	}
	return types.INTEGER
}

func (a *Analyzer) analyzeComparison(e *ast.BinaryExpression, lt, rt types.Type) types.Type {
	if !types.IsNumericType(lt) || !types.IsNumericType(rt) {
		if lt != types.ERROR && rt != types.ERROR {
			a.reportExpr(e, errors.BadType, fmt.Sprintf("operator %q requires numeric operands, got %s and %s", e.Operator, lt, rt))
		}
		return types.ERROR
	}
	return types.BOOLEAN
}

func (a *Analyzer) analyzeEquality(e *ast.BinaryExpression, lt, rt types.Type) types.Type {
	if lt == types.ERROR || rt == types.ERROR {
		return types.ERROR
	}
	ok := lt.Equals(rt) || lt == types.NULL || rt == types.NULL || (types.IsNumericType(lt) && types.IsNumericType(rt))
	if !ok {
		a.reportExpr(e, errors.IncompatibleTypes, fmt.Sprintf("cannot compare %s with %s for equality", lt, rt))
		return types.ERROR
	}
	return types.BOOLEAN
}

func (a *Analyzer) analyzeLogical(e *ast.BinaryExpression, lt, rt types.Type) types.Type {
	if lt != types.BOOLEAN || rt != types.BOOLEAN {
		if lt != types.ERROR && rt != types.ERROR {
			a.reportExpr(e, errors.BadType, fmt.Sprintf("operator %q requires Boolean operands, got %s and %s", e.Operator, lt, rt))
		}
		return types.ERROR
	}
	return types.BOOLEAN
}

func (a *Analyzer) analyzeCall(e *ast.CallExpression) types.Type {
	argTypes := make([]types.Type, len(e.Arguments))
	for i, arg := range e.Arguments {
		argTypes[i] = a.analyzeExpression(arg)
	}

	sym, ok := a.symbols.Resolve(e.Function.Value)
	if !ok || !sym.IsFunc {
		a.reportExpr(e, errors.UnknownName, fmt.Sprintf("call to undefined function %q", e.Function.Value))
		return types.ERROR
	}

	sig := sym.FuncSig
	if len(argTypes) != len(sig.ParamTypes) {
		a.reportExpr(e, errors.ArgMismatch,
			fmt.Sprintf("function %q expects %d argument(s), got %d", e.Function.Value, len(sig.ParamTypes), len(argTypes)))
		return sig.ReturnType
	}
	for i, at := range argTypes {
		if at == types.ERROR {
			continue
		}
		if !types.Assignable(sig.ParamTypes[i], at) {
			a.reportExpr(e, errors.IncompatibleTypes,
				fmt.Sprintf("argument %d to %q: cannot assign %s to parameter of type %s", i+1, e.Function.Value, at, sig.ParamTypes[i]))
		}
	}
	return sig.ReturnType
}
