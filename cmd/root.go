// Package cmd implements the sig command-line interface: a thin cobra
// front end over pkg/parser, one subcommand per parser entry point.
package cmd

import (
	"github.com/spf13/cobra"
)

var encoding string

// Root returns the sig command tree.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "sig",
		Short: "Parse structural type signatures",
		Long: "sig parses RBS-style structural type signatures: standalone " +
			"types, method signatures, and whole declaration files.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&encoding, "encoding", "utf-8", "declared source encoding")

	root.AddCommand(typeCmd(), methodCmd(), sigCmd(), tokenizeCmd())

	return root
}
