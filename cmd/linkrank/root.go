// Package main provides the entry point for the linkrank CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errUsage is returned when the command line does not name exactly one corpus.
var errUsage = errors.New("usage: linkrank <corpus-directory>")

// NewRootCmd creates the root command for linkrank.
// Invoked with a corpus directory, the root command ranks it.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linkrank <corpus-directory>",
		Short: "Estimate the PageRank of a directory of HTML pages",
		Long: `linkrank reads every .html file in a directory, builds the graph of links
between them, and estimates the PageRank of each page twice:

- Sampling: a random surfer takes N steps, following a link with
  probability equal to the damping factor and jumping to a random page
  otherwise. A page's rank is the share of steps spent on it.
- Iteration: the PageRank equation is applied repeatedly until no page
  changes by more than the tolerance.

Links to pages outside the directory are ignored.

Examples:
  # Rank a corpus with the defaults (damping 0.85, 10000 samples)
  linkrank corpus0

  # Reproducible sampling with more steps
  linkrank --samples 100000 --seed 42 corpus0

  # Markdown report written to a file
  linkrank --markdown -o report.md corpus0

Configuration file (.linkrank) example:
  damping: 0.85
  samples: 10000
  parser: html`,
		Version:       getVersion(),
		Args:          corpusArg,
		RunE:          runRankCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	addRankFlags(cmd)

	// Add subcommands
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// corpusArg accepts exactly one positional argument.
func corpusArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
