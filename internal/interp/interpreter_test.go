package interp

import (
	"bytes"
	"strings"
	"testing"

	"whitelang/internal/lexer"
	"whitelang/internal/parser"
	"whitelang/internal/semantic"
)

// run lexes, parses, validates, and executes src, returning captured output.
// Tests that exercise a runtime failure path use it directly and inspect err.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	program := parser.ParseProgram(lexer.New(src))
	if len(program.Errors) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, program.Errors)
	}
	a := semantic.NewAnalyzer()
	if diags := a.Analyze(program); len(diags) > 0 {
		t.Fatalf("unexpected validation errors for %q: %v", src, diags)
	}

	var buf bytes.Buffer
	err := New(&buf).Execute(program)
	return buf.String(), err
}

// The §8 end-to-end scenario table, verbatim.
func TestExecute_EndToEndScenarios(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		output string
	}{
		{"arithmetic", `1 + 1`, "2\n"},
		{"assignment", `let x : int = 0; x = x + 1; print(x);`, "1\n"},
		{"ifElse", `if(false) { print(1); } else { print(2); }`, "2\n"},
		{"whileLoop", `let x:int=0; while(x<5){ print(x); x=x+1; }`, "0\n1\n2\n3\n4\n"},
		{"fibonacciRecursion", `fn fib(n:int):int { if(n==0){return 0;} if(n==1){return 1;} return fib(n-1)+fib(n-2); } print(fib(6));`, "8\n"},
		{"forInBreak", `for (x in [1,2,3]) { print(x); break; }`, "1\n"},
		{"triangularNumber", `fn sum(n:int):int { return n*(n+1)/2; } print(sum(10));`, "55\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.src)
			if err != nil {
				t.Fatalf("unexpected runtime error: %v", err)
			}
			if out != tc.output {
				t.Fatalf("got %q, want %q", out, tc.output)
			}
		})
	}
}

func TestExecute_EmptyProgramProducesEmptyOutput(t *testing.T) {
	out, err := run(t, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Fatalf("got %q, want empty output", out)
	}
}

func TestExecute_FloatDivByZeroIsIEEE(t *testing.T) {
	out, err := run(t, `print(1.0 / 0.0); print(-1.0 / 0.0); print(0.0 / 0.0);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "inf\n-inf\nnan\n" {
		t.Fatalf("got %q", out)
	}
}

func TestExecute_IntegerDivByZeroIsFatal(t *testing.T) {
	_, err := run(t, `print(1 / 0);`)
	if err == nil {
		t.Fatal("expected a runtime error for integer division by zero")
	}
	if !strings.Contains(err.Error(), "division by zero") {
		t.Fatalf("got %q, want a division-by-zero message", err.Error())
	}
}

func TestExecute_NullEquality(t *testing.T) {
	out, err := run(t, `print(null == null);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "true\n" {
		t.Fatalf("got %q, want true", out)
	}
}

func TestExecute_IntFloatEqualityByValue(t *testing.T) {
	out, err := run(t, `print(2 == 2.0);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "true\n" {
		t.Fatalf("got %q, want true", out)
	}
}

func TestExecute_ListPrintFormatting(t *testing.T) {
	out, err := run(t, `print([1, 2, 3]);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "[1, 2, 3]\n" {
		t.Fatalf("got %q", out)
	}
}

func TestExecute_LogicalShortCircuit(t *testing.T) {
	// The right side of && must not run when the left side is false: if it
	// did, this would divide by zero and fail instead of printing.
	out, err := run(t, `fn boom(): bool { return 1/0 == 1; } print(false && boom()); print(true || boom());`)
	if err != nil {
		t.Fatalf("unexpected error (short-circuit evaluation should have skipped boom()): %v", err)
	}
	if out != "false\ntrue\n" {
		t.Fatalf("got %q", out)
	}
}

func TestExecute_BreakDoesNotEscapeItsLoop(t *testing.T) {
	out, err := run(t, `
		let i: int = 0;
		while (i < 3) {
			for (x in [1, 2]) {
				if (x == 2) { break; }
				print(x);
			}
			i = i + 1;
		}
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n1\n1\n" {
		t.Fatalf("got %q", out)
	}
}

func TestExecute_ValuesHaveNoAliasing(t *testing.T) {
	out, err := run(t, `
		let a: list<int> = [1, 2];
		for (x in a) { print(x); }
		let b = a;
		for (x in b) { print(x); }
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n1\n2\n" {
		t.Fatalf("got %q", out)
	}
}

func TestExecute_FunctionWithoutReturnYieldsNull(t *testing.T) {
	out, err := run(t, `
		fn sideEffect(): void { print(1); }
		sideEffect();
		print(sideEffect());
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n1\nnull\n" {
		t.Fatalf("got %q", out)
	}
}

func TestExecute_ScopeBalancedAfterExecution(t *testing.T) {
	program := parser.ParseProgram(lexer.New(`
		let x: int = 1;
		while (x < 3) {
			let y: int = x;
			x = x + 1;
		}
	`))
	a := semantic.NewAnalyzer()
	if diags := a.Analyze(program); len(diags) > 0 {
		t.Fatalf("unexpected validation errors: %v", diags)
	}
	var buf bytes.Buffer
	interp := New(&buf)
	before := interp.env
	if err := interp.Execute(program); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if interp.env != before {
		t.Fatal("expected the environment to return to its starting scope after execution")
	}
}

func TestExecute_UndefinedVariableIsFatal(t *testing.T) {
	program := parser.ParseProgram(lexer.New(`print(zzz);`))
	// Skip validation so the evaluator sees the raw, unchecked AST and its
	// own undefined-name guard is exercised directly.
	var buf bytes.Buffer
	err := New(&buf).Execute(program)
	if err == nil {
		t.Fatal("expected a runtime error for an undefined variable")
	}
}
