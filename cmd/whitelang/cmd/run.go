package cmd

import (
	"fmt"
	"os"

	"whitelang/internal/errors"
	"whitelang/internal/interp"
	"whitelang/internal/lexer"
	"whitelang/internal/parser"
	"whitelang/internal/semantic"

	"github.com/spf13/cobra"
)

var (
	evalExpr  string
	dumpAST   bool
	trace     bool
	typeCheck bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a WhiteLang file or expression",
	Long: `Execute a WhiteLang program from a file or inline expression.

Examples:
  # Run a script file
  whitelang run script.wl

  # Evaluate an inline expression
  whitelang run -e "print(1 + 2);"

  # Run with AST dump (for debugging)
  whitelang run --dump-ast script.wl

  # Run with execution trace
  whitelang run --trace script.wl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace execution (for debugging)")
	runCmd.Flags().BoolVar(&typeCheck, "type-check", true, "perform semantic type checking before execution (default: true)")
}

func runScript(_ *cobra.Command, args []string) error {
	var input string
	var filename string

	switch {
	case evalExpr != "":
		input = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	l := lexer.New(input)
	program := parser.ParseProgram(l)

	if len(l.Errors()) > 0 || len(program.Errors) > 0 {
		diags := append([]*errors.Diagnostic{}, program.Errors...)
		for _, le := range l.Errors() {
			diags = append(diags, errors.NewDiagnostic(errors.UnexpectedToken, le.Message, le.Pos))
		}
		compilerErrors := errors.FromDiagnostics(diags, input, filename)
		fmt.Fprint(os.Stderr, errors.FormatErrors(compilerErrors, true))
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("parsing failed with %d error(s)", len(diags))
	}

	if typeCheck {
		analyzer := semantic.NewAnalyzer()
		diags := analyzer.Analyze(program)
		if len(diags) > 0 {
			compilerErrors := errors.FromDiagnostics(diags, input, filename)
			fmt.Fprint(os.Stderr, errors.FormatErrors(compilerErrors, true))
			fmt.Fprintln(os.Stderr)
			return fmt.Errorf("semantic analysis failed with %d error(s)", len(diags))
		}
	} else if verbose {
		fmt.Fprintln(os.Stderr, "Type checking disabled")
	}

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	if trace {
		fmt.Fprintf(os.Stderr, "[Trace mode enabled - executing %s]\n", filename)
	}

	interpreter := interp.New(os.Stdout)
	if err := interpreter.Execute(program); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %s\n", err)
		return fmt.Errorf("execution failed")
	}

	return nil
}
