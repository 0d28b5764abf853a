package cli

import (
	"fmt"
	"io"
	"os"

	"notifeed/internal/config"
)

// Run executes the command named by args[0]. No arguments means generate.
func Run(args []string, cfg *config.Config, out io.Writer) int {
	if len(args) == 0 {
		return runGenerate(cfg, out)
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "generate", "gen", "g":
		return runGenerate(cfg, out)
	case "list", "ls", "l":
		return runList(cmdArgs, cfg, out)
	case "preview", "p":
		return runPreview(cmdArgs, cfg)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `notifeed - Merge dated markdown notifications into one YAML feed

Usage: notifeed [command] [arguments]

Running notifeed without arguments reads the language directories next to
the binary (en/, ko/) and writes notifications.yaml beside them.

Commands:
  generate, g     Same as running without arguments
  list, ls, l     Print the entries of the generated feed
                  notifeed list               # all entries
                  notifeed list -lang ko      # only one language
  preview, p      Browse the generated feed interactively
                  notifeed preview -file other.yaml
  help            Show this help message`)
}
