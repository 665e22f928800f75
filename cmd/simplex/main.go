package main

import (
	"os"

	"github.com/solidkit/simplex/cmd/simplex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
