package cmd

import (
	"fmt"

	"github.com/sigparse/sig/internal/ast"
	"github.com/sigparse/sig/internal/source"
	"github.com/sigparse/sig/pkg/parser"
	"github.com/spf13/cobra"
)

func typeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "type <expression>",
		Short: "Parse a single type expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf := source.NewBuffer("<arg>", []byte(args[0]), encoding)

			p, err := parser.New(buf)
			if err != nil {
				return err
			}

			t, err := p.ParseType()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ast.String(t))

			return nil
		},
	}
}
