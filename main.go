package main

import (
	"fmt"
	"os"

	"notifeed/internal/cli"
	"notifeed/internal/config"
)

func main() {
	// Paths are fixed relative to the binary; nothing is read from flags or env
	cfg, err := config.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve base directory: %v\n", err)
		os.Exit(1)
	}

	os.Exit(cli.Run(os.Args[1:], cfg, os.Stdout))
}
