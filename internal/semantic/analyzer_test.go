package semantic

import (
	"testing"

	"whitelang/internal/ast"
	"whitelang/internal/lexer"
	"whitelang/internal/parser"
	"whitelang/internal/types"
)

func analyze(t *testing.T, src string) (*ast.Program, *Analyzer) {
	t.Helper()
	program := parser.ParseProgram(lexer.New(src))
	if len(program.Errors) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, program.Errors)
	}
	a := NewAnalyzer()
	a.Analyze(program)
	return program, a
}

func TestAnalyze_VarDeclInfersType(t *testing.T) {
	program, a := analyze(t, "let x = 1 + 2;")
	if len(a.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", a.Errors())
	}
	stmt := program.Statements[0].(*ast.VarDeclStatement)
	if stmt.Value.GetType() != types.INTEGER {
		t.Fatalf("got %v, want Integer", stmt.Value.GetType())
	}
}

func TestAnalyze_MismatchedVarDeclType(t *testing.T) {
	_, a := analyze(t, `let x: string = 1;`)
	if len(a.Errors()) == 0 {
		t.Fatal("expected a MismatchedTypes error")
	}
}

func TestAnalyze_UnknownName(t *testing.T) {
	_, a := analyze(t, `print(y);`)
	errs := a.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %v", errs)
	}
}

func TestAnalyze_AssignToUndeclaredName(t *testing.T) {
	_, a := analyze(t, `x = 5;`)
	if len(a.Errors()) == 0 {
		t.Fatal("expected an UnknownName error for assignment to an undeclared name")
	}
}

func TestAnalyze_AssignToLetIsRejected(t *testing.T) {
	_, a := analyze(t, `let x: int = 1; x = 2;`)
	if len(a.Errors()) == 0 {
		t.Fatal("expected an error assigning to a 'let' binding")
	}
}

func TestAnalyze_RecursiveFunction(t *testing.T) {
	_, a := analyze(t, `
		fn fib(n: int): int {
			if (n == 0) { return 0; }
			if (n == 1) { return 1; }
			return fib(n-1) + fib(n-2);
		}
	`)
	if len(a.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", a.Errors())
	}
}

func TestAnalyze_BadReturnType(t *testing.T) {
	_, a := analyze(t, `
		fn f(): int {
			return true;
		}
	`)
	if len(a.Errors()) == 0 {
		t.Fatal("expected a BadReturnType error")
	}
}

func TestAnalyze_ArgCountMismatch(t *testing.T) {
	_, a := analyze(t, `
		fn add(a: int, b: int): int { return a + b; }
		print(add(1));
	`)
	if len(a.Errors()) == 0 {
		t.Fatal("expected an ArgMismatch error")
	}
}

func TestAnalyze_ArgTypeMismatch(t *testing.T) {
	_, a := analyze(t, `
		fn add(a: int, b: int): int { return a + b; }
		print(add(1, true));
	`)
	if len(a.Errors()) == 0 {
		t.Fatal("expected an IncompatibleTypes error")
	}
}

func TestAnalyze_BreakOutsideLoop(t *testing.T) {
	_, a := analyze(t, `break;`)
	if len(a.Errors()) == 0 {
		t.Fatal("expected an error for 'break' outside a loop")
	}
}

func TestAnalyze_ForInBindsElementType(t *testing.T) {
	program, a := analyze(t, `for (x in [1, 2, 3]) { print(x + 1); }`)
	if len(a.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", a.Errors())
	}
	stmt := program.Statements[0].(*ast.ForInStatement)
	inner := stmt.Body.Statements[0].(*ast.PrintStatement)
	if inner.Value.GetType() != types.INTEGER {
		t.Fatalf("expected loop variable arithmetic to type as Integer, got %v", inner.Value.GetType())
	}
}

func TestAnalyze_ListLiteralIntFloatPromotesCommonType(t *testing.T) {
	program, a := analyze(t, `let xs = [1, 2.5];`)
	if len(a.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", a.Errors())
	}
	stmt := program.Statements[0].(*ast.VarDeclStatement)
	lt, ok := stmt.Value.GetType().(*types.ListType)
	if !ok || lt.ElemType != types.FLOAT {
		t.Fatalf("expected List(Float), got %v", stmt.Value.GetType())
	}
}

func TestAnalyze_ListLiteralMismatchedElements(t *testing.T) {
	_, a := analyze(t, `let xs = [1, "two"];`)
	if len(a.Errors()) == 0 {
		t.Fatal("expected a MismatchedTypes error for heterogeneous list elements")
	}
}

func TestAnalyze_EqualityNullIsAlwaysComparable(t *testing.T) {
	_, a := analyze(t, `let x: int = 1; print(x == null);`)
	if len(a.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", a.Errors())
	}
}

func TestAnalyze_LogicalRequiresBooleanOperands(t *testing.T) {
	_, a := analyze(t, `print(1 && true);`)
	if len(a.Errors()) == 0 {
		t.Fatal("expected a BadType error for non-Boolean && operand")
	}
}

func TestAnalyze_IfConditionMustBeBoolean(t *testing.T) {
	_, a := analyze(t, `if (1) { print(1); }`)
	if len(a.Errors()) == 0 {
		t.Fatal("expected a BadType error for non-Boolean if condition")
	}
}

func TestAnalyze_StructSyntaxRejected(t *testing.T) {
	program := parser.ParseProgram(lexer.New(`struct Point { }`))
	if len(program.Errors) == 0 {
		t.Fatal("expected struct syntax to be rejected with a parse error")
	}
}

func TestAnalyze_ShadowingIsAllowed(t *testing.T) {
	_, a := analyze(t, `
		let x: int = 1;
		while (true) {
			let x: string = "inner";
			print(x);
			break;
		}
	`)
	if len(a.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", a.Errors())
	}
}
