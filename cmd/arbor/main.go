package main

import (
	"os"

	"github.com/jacentio/arbor/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
