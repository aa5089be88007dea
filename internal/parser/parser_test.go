package parser

import (
	"testing"

	"whitelang/internal/ast"
	"whitelang/internal/lexer"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	program := ParseProgram(lexer.New(src))
	if len(program.Errors) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, program.Errors)
	}
	return program
}

func TestParseProgram_VarDecl(t *testing.T) {
	program := parseOK(t, "let x: int = 1 + 2;")
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	stmt, ok := program.Statements[0].(*ast.VarDeclStatement)
	if !ok {
		t.Fatalf("expected *ast.VarDeclStatement, got %T", program.Statements[0])
	}
	if stmt.Keyword != "let" || stmt.Name.Value != "x" {
		t.Fatalf("got keyword=%q name=%q", stmt.Keyword, stmt.Name.Value)
	}
	if stmt.TypeAnn == nil || stmt.TypeAnn.Name != "int" {
		t.Fatalf("expected type annotation int, got %v", stmt.TypeAnn)
	}
	bin, ok := stmt.Value.(*ast.BinaryExpression)
	if !ok || bin.Operator != "+" {
		t.Fatalf("expected a + binary expression, got %#v", stmt.Value)
	}
}

func TestParseProgram_Assignment(t *testing.T) {
	program := parseOK(t, "x = 5;")
	stmt, ok := program.Statements[0].(*ast.AssignStatement)
	if !ok {
		t.Fatalf("expected *ast.AssignStatement, got %T", program.Statements[0])
	}
	if stmt.Name.Value != "x" {
		t.Fatalf("got name %q", stmt.Name.Value)
	}
}

func TestParseProgram_IfElse(t *testing.T) {
	program := parseOK(t, `
		if (x < 10) {
			print(1);
		} else {
			print(2);
		}
	`)
	stmt, ok := program.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected *ast.IfStatement, got %T", program.Statements[0])
	}
	if stmt.Alternative == nil {
		t.Fatal("expected an else branch")
	}
	if len(stmt.Consequence.Statements) != 1 || len(stmt.Alternative.Statements) != 1 {
		t.Fatalf("expected one statement per branch")
	}
}

func TestParseProgram_WhileAndBreak(t *testing.T) {
	program := parseOK(t, `
		while (true) {
			break;
		}
	`)
	stmt, ok := program.Statements[0].(*ast.WhileStatement)
	if !ok {
		t.Fatalf("expected *ast.WhileStatement, got %T", program.Statements[0])
	}
	if _, ok := stmt.Body.Statements[0].(*ast.BreakStatement); !ok {
		t.Fatalf("expected break inside while body, got %T", stmt.Body.Statements[0])
	}
}

func TestParseProgram_ForIn(t *testing.T) {
	program := parseOK(t, `
		for (x in [1, 2, 3]) {
			print(x);
		}
	`)
	stmt, ok := program.Statements[0].(*ast.ForInStatement)
	if !ok {
		t.Fatalf("expected *ast.ForInStatement, got %T", program.Statements[0])
	}
	if stmt.Variable.Value != "x" {
		t.Fatalf("got loop variable %q", stmt.Variable.Value)
	}
	list, ok := stmt.Iterable.(*ast.ListLiteral)
	if !ok || len(list.Elements) != 3 {
		t.Fatalf("expected a 3-element list literal, got %#v", stmt.Iterable)
	}
}

func TestParseProgram_FunctionDecl(t *testing.T) {
	program := parseOK(t, `
		fn add(a: int, b: int): int {
			return a + b;
		}
	`)
	fn, ok := program.Statements[0].(*ast.FunctionDeclStatement)
	if !ok {
		t.Fatalf("expected *ast.FunctionDeclStatement, got %T", program.Statements[0])
	}
	if fn.Name.Value != "add" || len(fn.Parameters) != 2 {
		t.Fatalf("got name=%q params=%d", fn.Name.Value, len(fn.Parameters))
	}
	if fn.ReturnType == nil || fn.ReturnType.Name != "int" {
		t.Fatalf("expected return type int, got %v", fn.ReturnType)
	}
}

func TestParseProgram_CallInsidePrint(t *testing.T) {
	program := parseOK(t, `print(add(1, 2));`)
	stmt, ok := program.Statements[0].(*ast.PrintStatement)
	if !ok {
		t.Fatalf("expected *ast.PrintStatement, got %T", program.Statements[0])
	}
	call, ok := stmt.Value.(*ast.CallExpression)
	if !ok || call.Function.Value != "add" || len(call.Arguments) != 2 {
		t.Fatalf("expected call to add/2, got %#v", stmt.Value)
	}
}

func TestParseProgram_ListTypeAnnotation(t *testing.T) {
	program := parseOK(t, `let xs: list<int> = [1, 2];`)
	stmt := program.Statements[0].(*ast.VarDeclStatement)
	if stmt.TypeAnn.Name != "list" || stmt.TypeAnn.ElemType == nil || stmt.TypeAnn.ElemType.Name != "int" {
		t.Fatalf("expected list<int>, got %v", stmt.TypeAnn)
	}
}

func TestParseProgram_OperatorPrecedence(t *testing.T) {
	program := parseOK(t, `1 + 2 * 3;`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	bin := stmt.Expression.(*ast.BinaryExpression)
	if bin.Operator != "+" {
		t.Fatalf("expected outermost + , got %s", bin.Operator)
	}
	rhs, ok := bin.Right.(*ast.BinaryExpression)
	if !ok || rhs.Operator != "*" {
		t.Fatalf("expected right side to be a * expression, got %#v", bin.Right)
	}
}

func TestParseProgram_ExpressionOnly(t *testing.T) {
	program := parseOK(t, `1 + 2`)
	if !program.IsExpressionOnly() {
		t.Fatalf("expected expression-only program, got statements %v", program.Statements)
	}
	if _, ok := program.TopExpression.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected a binary expression, got %T", program.TopExpression)
	}
}

func TestParseProgram_SyntaxErrorRecovers(t *testing.T) {
	program := ParseProgram(lexer.New(`let = ; let y = 2;`))
	if len(program.Errors) == 0 {
		t.Fatal("expected at least one parse error")
	}
	// Recovery should still surface the second, well-formed declaration.
	found := false
	for _, stmt := range program.Statements {
		if v, ok := stmt.(*ast.VarDeclStatement); ok && v.Name != nil && v.Name.Value == "y" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected recovery to still parse `let y = 2;`, got %v", program.Statements)
	}
}
