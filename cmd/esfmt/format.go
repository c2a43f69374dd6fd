package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/esfmt/internal/layout"
	"github.com/aledsdavies/esfmt/internal/lexer"
	"github.com/aledsdavies/esfmt/internal/notation"
	"github.com/aledsdavies/esfmt/internal/parser"
	"github.com/aledsdavies/esfmt/internal/symbol"
)

func newFmtCmd() *cobra.Command {
	var width, indent int

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Pretty-print a file to stdout",
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

			doc := notation.Build(tree, symbols)
			printed := layout.Render(doc, layout.WithWidth(width), layout.WithIndentUnit(indent))
			fmt.Fprint(cmd.OutOrStdout(), printed)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "maximum line width")
	cmd.Flags().IntVar(&indent, "indent", 2, "columns per indentation level")
	return cmd
}
