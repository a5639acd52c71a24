package cmd

import (
	"fmt"
	"os"

	"github.com/sigparse/sig/internal/source"
	"github.com/sigparse/sig/pkg/lexer"
	"github.com/spf13/cobra"
)

func tokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Dump the token stream of a file, one token per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			buf := source.NewBuffer(args[0], content, encoding)
			lex := lexer.New(buf)

			out := cmd.OutOrStdout()

			for {
				tok, err := lex.Next()
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%-18s %q\n", tok.Kind, tok.Text)

				if tok.IsEOF() {
					return nil
				}
			}
		},
	}
}
