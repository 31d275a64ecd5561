package main

import (
	"os"

	"demopage/cmd/demopage/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
