// Package interp implements the tree-walking evaluator that executes a
// validated WhiteLang program: a single dispatching Interpreter built
// around an io.Writer for output and a chained Environment for scope,
// trimmed to WhiteLang's much smaller statement and expression set with
// a simple break/return pair of control-flow signals in place of a
// larger exit/continue/break trio.
package interp

import (
	"fmt"
	"io"

	"whitelang/internal/ast"
	"whitelang/internal/interp/runtime"
	"whitelang/internal/types"
)

// Interpreter walks a validated AST, evaluating expressions and executing
// statements against a lexically scoped Environment. Functions are not
// closures: a call always runs against a fresh scope nested directly under
// the global environment, never the caller's locals.
type Interpreter struct {
	global *runtime.Environment
	env    *runtime.Environment
	output io.Writer

	breaking    bool
	returning   bool
	returnValue runtime.Value
}

// New creates an Interpreter that writes `print` output to w.
func New(w io.Writer) *Interpreter {
	global := runtime.NewEnvironment()
	return &Interpreter{global: global, env: global, output: w}
}

// Execute runs a validated program to completion. A runtime failure (an
// undefined name, integer division by zero, evaluating an expression that
// failed validation, ...) aborts execution and is returned as an error;
// output already written is preserved.
func (i *Interpreter) Execute(program *ast.Program) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(*RuntimeError); ok {
				err = re
				return
			}
			panic(r)
		}
	}()

	if program.IsExpressionOnly() {
		val := i.evalExpression(program.TopExpression)
		fmt.Fprintln(i.output, val.String())
		return nil
	}

	i.execStatements(program.Statements)
	return nil
}

func (i *Interpreter) pushScope() { i.env = runtime.NewEnclosedEnvironment(i.env) }

func (i *Interpreter) popScope() {
	if outer := i.env.Outer(); outer != nil {
		i.env = outer
	}
}

func (i *Interpreter) execStatements(stmts []ast.Statement) {
	for _, s := range stmts {
		i.execStatement(s)
		if i.breaking || i.returning {
			return
		}
	}
}

func (i *Interpreter) execStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDeclStatement:
		i.env.Define(s.Name.Value, i.evalExpression(s.Value))
	case *ast.AssignStatement:
		val := i.evalExpression(s.Value)
		if !i.env.Set(s.Name.Value, val) {
			fatalf("assignment to undefined variable %q", s.Name.Value)
		}
	case *ast.BlockStatement:
		i.pushScope()
		i.execStatements(s.Statements)
		i.popScope()
	case *ast.PrintStatement:
		fmt.Fprintln(i.output, i.evalExpression(s.Value).String())
	case *ast.ExpressionStatement:
		if s.Expression != nil {
			i.evalExpression(s.Expression)
		}
	case *ast.CallStatement:
		i.evalExpression(s.Call)
	case *ast.IfStatement:
		i.execIf(s)
	case *ast.WhileStatement:
		i.execWhile(s)
	case *ast.ForInStatement:
		i.execForIn(s)
	case *ast.BreakStatement:
		i.breaking = true
	case *ast.ReturnStatement:
		if s.Value != nil {
			i.returnValue = i.evalExpression(s.Value)
		} else {
			i.returnValue = runtime.NullValue
		}
		i.returning = true
	case *ast.FunctionDeclStatement:
		i.env.Define(s.Name.Value, &runtime.Function{Name: s.Name.Value, Decl: s})
	case *ast.SyntaxErrorStatement:
		// A parser-recovery placeholder; nothing to execute.
	default:
		fatalf("cannot execute statement of type %T", stmt)
	}
}

func (i *Interpreter) execIf(s *ast.IfStatement) {
	cond := i.asBoolean(i.evalExpression(s.Condition), "if condition")
	i.pushScope()
	if cond {
		i.execStatements(s.Consequence.Statements)
	} else if s.Alternative != nil {
		i.execStatements(s.Alternative.Statements)
	}
	i.popScope()
}

func (i *Interpreter) execWhile(s *ast.WhileStatement) {
	i.pushScope()
	for i.asBoolean(i.evalExpression(s.Condition), "while condition") {
		i.execStatements(s.Body.Statements)
		if i.returning {
			break
		}
		if i.breaking {
			i.breaking = false
			break
		}
	}
	i.popScope()
}

func (i *Interpreter) execForIn(s *ast.ForInStatement) {
	list, ok := i.evalExpression(s.Iterable).(*runtime.List)
	if !ok {
		fatalf("for-in iterable did not evaluate to a list")
	}
	i.pushScope()
	for _, elem := range list.Elements {
		i.env.Define(s.Variable.Value, elem.Copy())
		i.execStatements(s.Body.Statements)
		if i.returning {
			break
		}
		if i.breaking {
			i.breaking = false
			break
		}
	}
	i.popScope()
}

func (i *Interpreter) asBoolean(v runtime.Value, context string) bool {
	b, ok := v.(*runtime.Boolean)
	if !ok {
		fatalf("%s did not evaluate to a boolean, got %s", context, v.Type())
	}
	return b.Value
}

// evalExpression evaluates a single expression node. An expression that
// failed validation (its cached type is the error type) is never actually
// evaluated — that would mean running on an AST shape the evaluator cannot
// trust — so it fails fast with a runtime error instead.
func (i *Interpreter) evalExpression(expr ast.Expression) runtime.Value {
	if expr.GetType() == types.ERROR {
		fatalf("cannot evaluate an expression that failed validation")
	}

	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return &runtime.Integer{Value: e.Value}
	case *ast.FloatLiteral:
		return &runtime.Float{Value: e.Value}
	case *ast.StringLiteral:
		return &runtime.String{Value: e.Value}
	case *ast.BooleanLiteral:
		return &runtime.Boolean{Value: e.Value}
	case *ast.NullLiteral:
		return runtime.NullValue
	case *ast.Identifier:
		val, ok := i.env.Get(e.Value)
		if !ok {
			fatalf("undefined variable %q", e.Value)
		}
		return val.Copy()
	case *ast.GroupedExpression:
		return i.evalExpression(e.Expression)
	case *ast.ListLiteral:
		elems := make([]runtime.Value, len(e.Elements))
		for idx, el := range e.Elements {
			elems[idx] = i.evalExpression(el)
		}
		return &runtime.List{Elements: elems}
	case *ast.UnaryExpression:
		return i.evalUnary(e)
	case *ast.BinaryExpression:
		return i.evalBinary(e)
	case *ast.CallExpression:
		return i.evalCall(e)
	case *ast.SyntaxErrorExpression:
		fatalf("cannot evaluate a syntax error expression")
		return nil
	default:
		fatalf("cannot evaluate expression of type %T", expr)
		return nil
	}
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpression) runtime.Value {
	right := i.evalExpression(e.Right)
	switch e.Operator {
	case "-":
		switch v := right.(type) {
		case *runtime.Integer:
			return &runtime.Integer{Value: -v.Value}
		case *runtime.Float:
			return &runtime.Float{Value: -v.Value}
		}
	case "not":
		if b, ok := right.(*runtime.Boolean); ok {
			return &runtime.Boolean{Value: !b.Value}
		}
	}
	fatalf("invalid operand of type %s for unary operator %q", right.Type(), e.Operator)
	return nil
}

func (i *Interpreter) evalBinary(e *ast.BinaryExpression) runtime.Value {
	switch e.Operator {
	case "&&":
		left := i.asBoolean(i.evalExpression(e.Left), "left operand of &&")
		if !left {
			return &runtime.Boolean{Value: false}
		}
		return &runtime.Boolean{Value: i.asBoolean(i.evalExpression(e.Right), "right operand of &&")}
	case "||":
		left := i.asBoolean(i.evalExpression(e.Left), "left operand of ||")
		if left {
			return &runtime.Boolean{Value: true}
		}
		return &runtime.Boolean{Value: i.asBoolean(i.evalExpression(e.Right), "right operand of ||")}
	}

	left := i.evalExpression(e.Left)
	right := i.evalExpression(e.Right)

	switch e.Operator {
	case "+", "-", "*", "/":
		return i.evalArithmetic(e.Operator, left, right)
	case "<", "<=", ">", ">=":
		return &runtime.Boolean{Value: i.evalComparison(e.Operator, left, right)}
	case "==", "!=":
		eq := valuesEqual(left, right)
		if e.Operator == "!=" {
			eq = !eq
		}
		return &runtime.Boolean{Value: eq}
	}
	fatalf("unknown binary operator %q", e.Operator)
	return nil
}

func (i *Interpreter) evalArithmetic(op string, left, right runtime.Value) runtime.Value {
	li, lInt := left.(*runtime.Integer)
	ri, rInt := right.(*runtime.Integer)
	if lInt && rInt {
		switch op {
		case "+":
			return &runtime.Integer{Value: li.Value + ri.Value}
		case "-":
			return &runtime.Integer{Value: li.Value - ri.Value}
		case "*":
			return &runtime.Integer{Value: li.Value * ri.Value}
		case "/":
			if ri.Value == 0 {
				fatalf("integer division by zero")
			}
			return &runtime.Integer{Value: li.Value / ri.Value}
		}
	}

	lf, rf := toFloat(left), toFloat(right)
	switch op {
	case "+":
		return &runtime.Float{Value: lf + rf}
	case "-":
		return &runtime.Float{Value: lf - rf}
	case "*":
		return &runtime.Float{Value: lf * rf}
	case "/":
		return &runtime.Float{Value: lf / rf}
	}
	fatalf("unknown arithmetic operator %q", op)
	return nil
}

func (i *Interpreter) evalComparison(op string, left, right runtime.Value) bool {
	lf, rf := toFloat(left), toFloat(right)
	switch op {
	case "<":
		return lf < rf
	case "<=":
		return lf <= rf
	case ">":
		return lf > rf
	case ">=":
		return lf >= rf
	}
	fatalf("unknown comparison operator %q", op)
	return false
}

func toFloat(v runtime.Value) float64 {
	switch n := v.(type) {
	case *runtime.Integer:
		return float64(n.Value)
	case *runtime.Float:
		return n.Value
	}
	fatalf("expected a numeric operand, got %s", v.Type())
	return 0
}

func isNumeric(v runtime.Value) bool {
	switch v.(type) {
	case *runtime.Integer, *runtime.Float:
		return true
	}
	return false
}

// valuesEqual implements `==`: null equals only null, any two numeric
// values compare by value regardless of int/float, and every other pair
// requires matching runtime types.
func valuesEqual(left, right runtime.Value) bool {
	_, lNull := left.(*runtime.Null)
	_, rNull := right.(*runtime.Null)
	if lNull || rNull {
		return lNull && rNull
	}
	if isNumeric(left) && isNumeric(right) {
		return toFloat(left) == toFloat(right)
	}
	switch l := left.(type) {
	case *runtime.Boolean:
		r, ok := right.(*runtime.Boolean)
		return ok && l.Value == r.Value
	case *runtime.String:
		r, ok := right.(*runtime.String)
		return ok && l.Value == r.Value
	case *runtime.List:
		r, ok := right.(*runtime.List)
		if !ok || len(l.Elements) != len(r.Elements) {
			return false
		}
		for idx := range l.Elements {
			if !valuesEqual(l.Elements[idx], r.Elements[idx]) {
				return false
			}
		}
		return true
	}
	return false
}

func (i *Interpreter) evalCall(e *ast.CallExpression) runtime.Value {
	callee, ok := i.env.Get(e.Function.Value)
	if !ok {
		fatalf("undefined function %q", e.Function.Value)
	}
	fn, ok := callee.(*runtime.Function)
	if !ok {
		fatalf("%q is not a function", e.Function.Value)
	}

	args := make([]runtime.Value, len(e.Arguments))
	for idx, a := range e.Arguments {
		args[idx] = i.evalExpression(a)
	}
	return i.callFunction(fn, args)
}

// callFunction runs fn's body in a fresh scope nested directly under the
// global environment — never the caller's locals, since WhiteLang functions
// do not close over their call site.
func (i *Interpreter) callFunction(fn *runtime.Function, args []runtime.Value) runtime.Value {
	callerEnv := i.env
	i.env = runtime.NewEnclosedEnvironment(i.global)
	for idx, param := range fn.Decl.Parameters {
		i.env.Define(param.Name.Value, args[idx])
	}

	i.execStatements(fn.Decl.Body.Statements)

	var result runtime.Value = runtime.NullValue
	if i.returning {
		result = i.returnValue
		i.returning = false
		i.returnValue = nil
	}
	i.env = callerEnv
	return result
}
