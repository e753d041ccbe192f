package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/havfo/reversi-board/internal/game"
	"github.com/havfo/reversi-board/internal/log"
	"github.com/havfo/reversi-board/internal/ui"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	logFile := flag.String("log-file", "", "File to append logs to; logs are discarded when empty")
	showHints := flag.Bool("hints", false, "Mark legal moves for the side to move")
	flag.Parse()

	closeLog, err := setupLogger(*logLevel, *logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(2)
	}
	defer closeLog()

	g := game.NewGame()
	view := ui.New(g, ui.Options{ShowHints: *showHints})

	if err := view.Run(); err != nil {
		log.Error("Session %s failed: %v", g.ID(), err)
		closeLog()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogger installs the default logger. The terminal belongs to the UI,
// so logs only go to a file.
func setupLogger(level, path string) (func(), error) {
	parsedLogLevel, err := log.ParseLogLevel(level)
	if err != nil {
		return nil, err
	}

	if path == "" {
		log.SetDefaultLogger(log.Discard())
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetDefaultLogger(log.New(f, "", log.DefaultLoggerFlag, parsedLogLevel))
	log.Info("Log level set to %s", parsedLogLevel)

	return func() { f.Close() }, nil
}
