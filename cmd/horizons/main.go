package main

import (
	"os"

	"horizons/cmd/horizons/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
