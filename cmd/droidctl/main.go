package main

import (
	"os"

	"droidctl/cmd/droidctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
