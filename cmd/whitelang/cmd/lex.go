package cmd

import (
	"fmt"
	"os"

	"whitelang/internal/lexer"

	"github.com/spf13/cobra"
)

var (
	showPos    bool
	showType   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a WhiteLang file or expression",
	Long: `Tokenize (lex) a WhiteLang program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
WhiteLang source code is tokenized.

Examples:
  # Tokenize a script file
  whitelang lex script.wl

  # Tokenize an inline expression
  whitelang lex -e "let x: int = 42;"

  # Show token types and positions
  whitelang lex --show-type --show-pos script.wl

  # Show only errors (illegal/unterminated tokens)
  whitelang lex --only-errors script.wl`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal/error tokens")
}

func isErrorToken(t lexer.TokenType) bool {
	return t == lexer.ILLEGAL || t == lexer.SYNTAX_ERROR
}

func lexScript(_ *cobra.Command, args []string) error {
	var input string
	var filename string

	if evalExpr != "" {
		input = evalExpr
		filename = "<eval>"
	} else if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	} else {
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	l := lexer.New(input)

	tokenCount := 0
	errorCount := 0

	for {
		tok := l.NextToken()

		if onlyErrors && !isErrorToken(tok.Type) {
			if tok.Type == lexer.EOF {
				break
			}
			continue
		}

		tokenCount++
		if isErrorToken(tok.Type) {
			errorCount++
		}

		printToken(tok)

		if tok.Type == lexer.EOF {
			break
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", tokenCount)
		if errorCount > 0 {
			fmt.Printf("Errors: %d\n", errorCount)
		}
	}

	if onlyErrors && errorCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errorCount)
	}

	return nil
}

func printToken(tok lexer.Token) {
	var output string

	if showType {
		output = fmt.Sprintf("[%-12s]", tok.Type)
	}

	switch {
	case tok.Type == lexer.EOF:
		output += " EOF"
	case isErrorToken(tok.Type):
		output += fmt.Sprintf(" ILLEGAL: %q", tok.Literal)
	case tok.Literal == "":
		output += fmt.Sprintf(" %s", tok.Type)
	default:
		output += fmt.Sprintf(" %q", tok.Literal)
	}

	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}

	fmt.Println(output)
}
