package cmd

import (
	"fmt"
	"os"

	"github.com/sigparse/sig/internal/ast"
	"github.com/sigparse/sig/internal/source"
	"github.com/sigparse/sig/pkg/parser"
	"github.com/spf13/cobra"
)

func sigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sig <file>",
		Short: "Parse a whole signature file and list its top-level declarations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			buf := source.NewBuffer(args[0], content, encoding)

			p, err := parser.New(buf)
			if err != nil {
				return err
			}

			decls, err := p.ParseSignature()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range decls {
				fmt.Fprintln(out, declSummary(d))
			}

			return nil
		},
	}
}

// declSummary renders a one-line "kind name" summary of a top-level
// declaration.
func declSummary(d ast.Decl) string {
	switch v := d.(type) {
	case *ast.Constant:
		return fmt.Sprintf("constant %s: %s", v.Name, ast.String(v.Type))
	case *ast.Global:
		return fmt.Sprintf("global %s: %s", v.Name, ast.String(v.Type))
	case *ast.Alias:
		return fmt.Sprintf("type %s", v.Name)
	case *ast.Interface:
		return fmt.Sprintf("interface %s", v.Name)
	case *ast.Module:
		return fmt.Sprintf("module %s", v.Name)
	case *ast.Class:
		return fmt.Sprintf("class %s", v.Name)
	default:
		return "declaration"
	}
}
