package main

import (
	"os"

	"github.com/KimSchm/gh-models-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
