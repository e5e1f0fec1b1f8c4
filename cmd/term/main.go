// cmd/term/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"iso-tower-defense/internal/app"
	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/defs"
)

func main() {
	logPath := flag.String("log", "", "write logs to this file (default: discard)")
	flag.Parse()

	if err := run(*logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logPath string) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: settings.LogLevel}))

	lib, err := defs.LoadOrDefault(settings.DefinitionsPath)
	if err != nil {
		return err
	}
	g, err := app.NewGame(settings, lib, logger)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(newModel(g), tea.WithAltScreen()).Run()
	return err
}
