package main

import (
	"os"

	"github.com/fir-lang/tree-sitter-fir/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
