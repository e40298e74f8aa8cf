package main

import (
	"os"

	"github.com/sjamesr/goclock/cmd/goclock/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
