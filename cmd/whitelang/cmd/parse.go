package cmd

import (
	"fmt"
	"io"
	"os"

	"whitelang/internal/ast"
	"whitelang/internal/lexer"
	"whitelang/internal/parser"

	"github.com/spf13/cobra"
)

var (
	parseExpression bool
	parseDumpAST    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse WhiteLang source code and display the AST",
	Long: `Parse WhiteLang source code and display the Abstract Syntax Tree (AST).

If no file is provided, reads from stdin.
Use -e to parse a single expression from the command line.
Use --dump-ast to show the full AST structure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse an expression from the command line")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(_ *cobra.Command, args []string) error {
	var input string

	switch {
	case parseExpression:
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input = args[0]
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	l := lexer.New(input)
	program := parser.ParseProgram(l)

	if len(program.Errors) > 0 {
		fmt.Fprintf(os.Stderr, "Parser errors:\n")
		for _, d := range program.Errors {
			fmt.Fprintf(os.Stderr, "  %s\n", d.Error())
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(program.Errors))
	}

	if parseDumpAST {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		dumpASTNode(program, 0)
	} else {
		fmt.Println(program.String())
	}

	return nil
}

func dumpASTNode(node any, indent int) {
	indentStr := ""
	for i := 0; i < indent; i++ {
		indentStr += "  "
	}

	switch n := node.(type) {
	case *ast.Program:
		if n.IsExpressionOnly() {
			fmt.Printf("%sProgram (single expression)\n", indentStr)
			dumpASTNode(n.TopExpression, indent+1)
			return
		}
		fmt.Printf("%sProgram (%d statements)\n", indentStr, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", indentStr)
		if n.Expression != nil {
			dumpASTNode(n.Expression, indent+1)
		}
	case *ast.BlockStatement:
		fmt.Printf("%sBlockStatement (%d statements)\n", indentStr, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.VarDeclStatement:
		fmt.Printf("%sVarDeclStatement (%s %s)\n", indentStr, n.Keyword, n.Name.Value)
		dumpASTNode(n.Value, indent+1)
	case *ast.AssignStatement:
		fmt.Printf("%sAssignStatement (%s)\n", indentStr, n.Name.Value)
		dumpASTNode(n.Value, indent+1)
	case *ast.PrintStatement:
		fmt.Printf("%sPrintStatement\n", indentStr)
		dumpASTNode(n.Value, indent+1)
	case *ast.IfStatement:
		fmt.Printf("%sIfStatement\n", indentStr)
		dumpASTNode(n.Condition, indent+1)
		dumpASTNode(n.Consequence, indent+1)
		if n.Alternative != nil {
			dumpASTNode(n.Alternative, indent+1)
		}
	case *ast.WhileStatement:
		fmt.Printf("%sWhileStatement\n", indentStr)
		dumpASTNode(n.Condition, indent+1)
		dumpASTNode(n.Body, indent+1)
	case *ast.ForInStatement:
		fmt.Printf("%sForInStatement (%s)\n", indentStr, n.Variable.Value)
		dumpASTNode(n.Iterable, indent+1)
		dumpASTNode(n.Body, indent+1)
	case *ast.BreakStatement:
		fmt.Printf("%sBreakStatement\n", indentStr)
	case *ast.ReturnStatement:
		fmt.Printf("%sReturnStatement\n", indentStr)
		if n.Value != nil {
			dumpASTNode(n.Value, indent+1)
		}
	case *ast.FunctionDeclStatement:
		fmt.Printf("%sFunctionDeclStatement (%s)\n", indentStr, n.Name.Value)
		dumpASTNode(n.Body, indent+1)
	case *ast.CallStatement:
		fmt.Printf("%sCallStatement\n", indentStr)
		dumpASTNode(n.Call, indent+1)
	case *ast.SyntaxErrorStatement:
		fmt.Printf("%sSyntaxErrorStatement: %s\n", indentStr, n.Message)
	case *ast.BinaryExpression:
		fmt.Printf("%sBinaryExpression (%s)\n", indentStr, n.Operator)
		fmt.Printf("%s  Left:\n", indentStr)
		dumpASTNode(n.Left, indent+2)
		fmt.Printf("%s  Right:\n", indentStr)
		dumpASTNode(n.Right, indent+2)
	case *ast.UnaryExpression:
		fmt.Printf("%sUnaryExpression (%s)\n", indentStr, n.Operator)
		dumpASTNode(n.Right, indent+1)
	case *ast.GroupedExpression:
		fmt.Printf("%sGroupedExpression\n", indentStr)
		dumpASTNode(n.Expression, indent+1)
	case *ast.ListLiteral:
		fmt.Printf("%sListLiteral (%d elements)\n", indentStr, len(n.Elements))
		for _, e := range n.Elements {
			dumpASTNode(e, indent+1)
		}
	case *ast.CallExpression:
		fmt.Printf("%sCallExpression (%s)\n", indentStr, n.Function.Value)
		for _, a := range n.Arguments {
			dumpASTNode(a, indent+1)
		}
	case *ast.IntegerLiteral:
		fmt.Printf("%sIntegerLiteral: %d\n", indentStr, n.Value)
	case *ast.FloatLiteral:
		fmt.Printf("%sFloatLiteral: %g\n", indentStr, n.Value)
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", indentStr, n.Value)
	case *ast.BooleanLiteral:
		fmt.Printf("%sBooleanLiteral: %v\n", indentStr, n.Value)
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", indentStr, n.Value)
	case *ast.NullLiteral:
		fmt.Printf("%sNullLiteral\n", indentStr)
	case *ast.SyntaxErrorExpression:
		fmt.Printf("%sSyntaxErrorExpression: %s\n", indentStr, n.Message)
	default:
		fmt.Printf("%s%T: %v\n", indentStr, node, node)
	}
}
