// Package cmd implements the whitelang command-line interface, following
// the teacher project's cmd/dwscript/cmd package (one cobra.Command per
// subcommand file, global flags wired in root.go's init).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "whitelang",
	Short: "WhiteLang interpreter and compiler",
	Long: `whitelang is a Go implementation of WhiteLang, a small statically
typed imperative scripting language.

WhiteLang has:
  - Static typing with int, float, bool, string, char, and homogeneous lists
  - Functions with explicit parameter and return types
  - if/else, while, and for-in control flow
  - A REPL-style single-expression evaluation mode

Run a script with "whitelang run", tokenize one with "whitelang lex", or
inspect its parse tree with "whitelang parse".`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
