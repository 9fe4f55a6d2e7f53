package main

import (
	"os"

	"github.com/monorkin/room-history-import/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
