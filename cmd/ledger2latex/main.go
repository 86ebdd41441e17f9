package main

import (
	"os"

	"github.com/ledger-tools/ledger2latex/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
