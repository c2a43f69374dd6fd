package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/esfmt/internal/lexer"
	"github.com/aledsdavies/esfmt/internal/symbol"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}

			symbols := symbol.New()
			tokens, lexErr := lexer.New(source, symbols, lexer.WithComments(), lexer.WithWhitespace()).Lex()

			for i := 0; i < tokens.Len(); i++ {
				t := tokens.Get(i)
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s offset=%-6d %q\n", t.Kind, t.TextOffset, tokens.Text(i))
			}
			return lexErr
		},
	}
}
