package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/esfmt/internal/lexer"
	"github.com/aledsdavies/esfmt/internal/parser"
	"github.com/aledsdavies/esfmt/internal/symbol"
)

func newASTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the post-order AST for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}

			symbols := symbol.New()
			tokens, err := lexer.New(source, symbols).Lex()
			if err != nil {
				return err
			}

			tree, err := parser.Parse(tokens, symbols)
			if err != nil {
				return err
			}

			for i := 1; i < tree.Len(); i++ {
				n := tree.Get(i)
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s subtree_size=%d\n", n.Kind, n.SubtreeSize)
			}
			return nil
		},
	}
}
