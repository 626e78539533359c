package main

import (
	"os"

	"magmoment/cmd/magmoment/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
