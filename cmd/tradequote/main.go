package main

import (
	"os"

	"tradequote/cmd/tradequote/cmd"
	"tradequote/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
