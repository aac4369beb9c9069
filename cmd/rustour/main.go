package main

import (
	"os"

	"rustour/cmd/rustour/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
