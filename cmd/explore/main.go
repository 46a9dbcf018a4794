// explore is an interactive terminal lookup over a lexicon snapshot. Type
// Khmer script, a phonetic respelling or English; tab cycles search modes.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/jusunglee/khmerlex/internal/logger"
	"github.com/jusunglee/khmerlex/internal/snapshot"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("khmerlex-explore")
	var (
		dataDir = fs.StringLong("data-dir", "data", "Snapshot directory written by the build command")
		logFile = fs.StringLong("log-file", "", "Write logs here; the terminal belongs to the UI")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	var w io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	log := logger.NewWithWriter(w, "json", logger.ParseLevel(os.Getenv("LOG_LEVEL")))

	store := snapshot.NewStore(*dataDir, log)
	if err := store.LoadCore(context.Background()); err != nil {
		return err
	}

	if _, err := tea.NewProgram(newModel(store), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running explorer: %w", err)
	}
	return nil
}
