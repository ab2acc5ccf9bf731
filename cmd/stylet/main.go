package main

import (
	"os"

	"stylet/cmd/stylet/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
