package cmd

import (
	"errors"
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/promplate/partialjson/jsonparser"
)

var (
	scanCmd = &cobra.Command{
		Use:   "scan [file]",
		Short: "Run the structural scanner over a prefix and dump its state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				_ = cmd.Help()
				return errors.New("expected at most one argument <file>")
			}

			prefix, err := readInput(args)
			if err != nil {
				return err
			}

			s := jsonparser.NewScanner(prefix)
			s.Scan()
			fmt.Println(repr.String(s.Report(), repr.Indent("  ")))
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(scanCmd)
}
