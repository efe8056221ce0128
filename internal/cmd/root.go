// Package cmd wires the manifold command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for manifold
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifold",
		Short: "Multi-project build-tree file reader",
		Long: `Manifold discovers and classifies the source files of a multi-project
build tree, producing a registry of file records keyed by stable identity.

Each record carries a content checksum; schema files reuse the previous
run's checksum and parsed metadata when their modification time is
unchanged, so repeated invocations skip redundant disk reads and parses.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewReadCommand())

	return cmd
}
