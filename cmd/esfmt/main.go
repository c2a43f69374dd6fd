// Command esfmt lexes, parses, and re-prints a minimal JavaScript-family
// grammar. See internal/lexer, internal/parser, internal/notation, and
// internal/layout for the core pipeline this CLI drives.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags
// "-X main.version=vX.Y.Z"; it gates a fixture's min_tool_version check.
var version = "v0.0.0-dev"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "esfmt",
		Short:         "Lex, parse, and pretty-print a minimal JavaScript-family grammar",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(
		newTokensCmd(),
		newASTCmd(),
		newFmtCmd(),
		newCheckCmd(),
		newVersionCmd(),
	)
	return root
}

// formatError prints only the root cause of a github.com/pkg/errors chain
// (errors.Cause), so neither the wrapping context messages nor a stack
// trace reach the terminal.
func formatError(err error) string {
	return fmt.Sprintf("error: %+v", errors.Cause(err))
}

func readSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return data, nil
}
