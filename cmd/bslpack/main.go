package main

import (
	"os"

	"bslpack/cmd/bslpack/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
