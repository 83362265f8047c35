package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shorthand",
		Short: "Chainable DOM collections for HTML documents",
		Long: `shorthand wraps groups of document nodes in a single chainable
handle, offering query, mutation, traversal and event-delegation
operations without a full UI framework.

The CLI runs CSS selectors against HTML files and serves a live
playground:

  shorthand query "ul.menu > li" page.html
  shorthand serve page.html`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		queryCmd(),
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}
