package cmd

import (
	"fmt"

	"github.com/sigparse/sig/internal/ast"
	"github.com/sigparse/sig/internal/source"
	"github.com/sigparse/sig/pkg/parser"
	"github.com/spf13/cobra"
)

func methodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "method <signature>",
		Short: "Parse a single method signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf := source.NewBuffer("<arg>", []byte(args[0]), encoding)

			p, err := parser.New(buf)
			if err != nil {
				return err
			}

			mt, err := p.ParseMethodType()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ast.MethodTypeString(mt))

			return nil
		},
	}
}
