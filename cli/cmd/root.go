package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "firscan",
		Short:        "firscan",
		SilenceUsage: true,
		Long:         `CLI tool driving the Fir external scanner outside of a real tree-sitter host. See README.md.`,
	}

	debug bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "pretty-print scanner internals with repr")
	return rootCmd.Execute()
}
