package main

import (
	"os"

	"coldsign/cmd/coldsign/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
