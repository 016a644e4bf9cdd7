// Package main provides the wfpath command: it builds a Wright-Fisher sample
// path from allele-count observations and reports it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set at link time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "wfpath",
		Short: "Wright-Fisher sample paths conditioned on allele-count data",
		Long: `wfpath stitches diffusion bridges between time-stamped allele-count
observations into one trajectory and scores every observation against it.

Commands:
  init      Build the initial sample path from an input file
  grid      Print the time grid for an interval
  version   Show version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "YAML configuration file (default ./wfpath.yaml if present)")

	root.AddCommand(newInitCommand())
	root.AddCommand(newGridCommand())
	root.AddCommand(newVersionCommand())

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wfpath %s (commit: %s)\n", version, commit)
		},
	}
}
