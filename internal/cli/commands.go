package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"notifeed/internal/config"
	"notifeed/internal/feed"
	"notifeed/internal/logs"
	"notifeed/internal/markdown"
	"notifeed/internal/tui"
	"notifeed/internal/tui/theme"
)

// previewRunner starts the interactive browser; replaced in tests.
var previewRunner = tui.Run

func runGenerate(cfg *config.Config, out io.Writer) int {
	gen := feed.NewGenerator(cfg.LanguageDirs(), cfg.OutputPath(), logs.Logger)

	result, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if result.Written {
		fmt.Fprintln(out, theme.Ok.Render("✅ YAML file generated: "+result.OutputPath))
		fmt.Fprintf(out, "   %d entries included.\n", result.Count)
	}
	return 0
}

func runList(args []string, cfg *config.Config, out io.Writer) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	lang := fs.String("lang", "", "Only show entries for this language")
	file := fs.String("file", "", "Feed document to read (defaults to the generated output)")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	path := feedPath(cfg, *file)
	notifications, err := feed.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", path, err)
		return 1
	}

	count := 0
	for _, n := range notifications {
		if *lang != "" && n.Language != *lang {
			continue
		}
		fmt.Fprintf(out, "%s  %s  %s\n",
			theme.Date.Render(n.Date),
			theme.Language.Render(fmt.Sprintf("%-3s", n.Language)),
			markdown.Headline(n.Content))
		count++
	}

	if count == 0 {
		fmt.Fprintln(out, "No notifications found.")
		return 0
	}

	fmt.Fprintf(out, "\n%d notification(s)\n", count)
	return 0
}

func runPreview(args []string, cfg *config.Config) int {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	file := fs.String("file", "", "Feed document to browse (defaults to the generated output)")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	path := feedPath(cfg, *file)
	notifications, err := feed.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", path, err)
		return 1
	}

	if err := previewRunner(path, notifications); err != nil {
		fmt.Fprintf(os.Stderr, "Error running preview: %v\n", err)
		return 1
	}
	return 0
}

func feedPath(cfg *config.Config, override string) string {
	if override != "" {
		return override
	}
	return cfg.OutputPath()
}
