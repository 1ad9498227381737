package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/promplate/partialjson"
)

var (
	validate bool

	completeCmd = &cobra.Command{
		Use:   "complete [file]",
		Short: "Complete a JSON(5) prefix read from a file or stdin and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				_ = cmd.Help()
				return errors.New("expected at most one argument <file>")
			}

			prefix, err := readInput(args)
			if err != nil {
				return err
			}

			settings, err := resolveSettings()
			if err != nil {
				return err
			}

			amended, err := partialjson.Complete(prefix, settings)
			if err != nil {
				return err
			}

			if validate && !jsoniter.Valid([]byte(amended)) {
				return fmt.Errorf("completion is not valid JSON: %s", amended)
			}

			fmt.Println(amended)
			return nil
		},
	}
)

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		buf, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(buf), nil
	}
	buf, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func init() {
	completeCmd.Flags().BoolVar(&validate, "validate", false,
		"re-check the completion through a JSON decoder and fail if it does not parse")
	rootCmd.AddCommand(completeCmd)
}
