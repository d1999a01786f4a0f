package main

import (
	"os"

	"github.com/wildstyl3r/rootfind/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
