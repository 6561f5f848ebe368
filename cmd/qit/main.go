package main

import (
	"os"

	"github.com/JaimeStill/qit/cmd/qit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
