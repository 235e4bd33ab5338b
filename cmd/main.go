package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"feedaudit/internal/feed"
)

var logger *slog.Logger

func main() {
	cfg := loadConfig()
	logger = newLogger(cfg.LogLevel)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: feedaudit <feed.xml> [report | compare <refs.xlsx> | export <out.xlsx>]")
		os.Exit(2)
	}
	feedPath := os.Args[1]

	loadStart := time.Now()
	doc, err := loadFeed(feedPath)
	if err != nil {
		logger.Error("failed to load feed", "path", feedPath, "err", err)
		os.Exit(1)
	}
	logger.Info("feed loaded",
		"path", feedPath,
		"properties", len(doc.Properties),
		"agents", len(doc.Agents),
		"elapsed", time.Since(loadStart).Truncate(time.Millisecond))

	// If the user named an action on the command line, run it once and exit.
	if len(os.Args) > 2 {
		if err := runAction(doc, cfg, os.Args[2:]); err != nil {
			logger.Error("action failed", "err", err)
			os.Exit(1)
		}
		return
	}

	// Interactive loop: the document is parsed once and every action runs
	// against the same normalized record set. A failed action does not
	// invalidate it.
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("Enter action: report | compare <refs.xlsx> | export <out.xlsx> (blank to quit): ")
		input, _ := reader.ReadString('\n')
		line := strings.TrimSpace(input)
		if line == "" {
			break
		}
		if err := runAction(doc, cfg, strings.Fields(line)); err != nil {
			logger.Error("action failed", "err", err)
		}
	}
}

func runAction(doc *feed.Document, cfg config, args []string) error {
	switch args[0] {
	case "report":
		runReport(doc, term.IsTerminal(int(os.Stdin.Fd())))
		return nil
	case "compare":
		if len(args) < 2 {
			return fmt.Errorf("compare needs the reference workbook path")
		}
		return runCompare(doc, args[1])
	case "export":
		if len(args) < 2 {
			return fmt.Errorf("export needs the output workbook path")
		}
		return runExport(doc, args[1], cfg.TruncateLimit)
	default:
		return fmt.Errorf("unknown action %q", args[0])
	}
}

func loadFeed(path string) (*feed.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return feed.Parse(f)
}
