package main

import (
	"os"

	"github.com/promplate/partialjson/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
