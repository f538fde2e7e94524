package main

import (
	"os"

	"github.com/propledger/backend/internal/interfaces/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRootCommand(cli.ConfigBackend, version).Execute(); err != nil {
		os.Exit(1)
	}
}
