package main

import (
	"os"

	"github.com/roost-dev/roost/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
