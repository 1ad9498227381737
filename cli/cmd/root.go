package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "partialjson",
		Short:        "partialjson",
		SilenceUsage: true,
		Long:         `CLI tool for completing truncated JSON(5) prefixes into valid JSON documents. See README.md.`,
	}

	allow     []string
	directory string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringSliceVarP(&allow, "allow", "a", nil,
		"literal kinds the completion may synthesize (null, bool, number, string, infinity, -infinity, nan, all); overrides partialjson.yaml")
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".",
		"directory searched for partialjson.yaml")
	return rootCmd.Execute()
}
