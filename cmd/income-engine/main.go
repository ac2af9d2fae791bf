package main

import (
	"os"

	"github.com/retirekit/income-engine/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
