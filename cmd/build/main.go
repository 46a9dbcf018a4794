// build assembles the lexicon snapshot: it merges the curated entries with an
// optional dictionary wordlist, generates romanizations, splits the result
// into load tiers and writes the tier files. With --database-url it also
// pulls glosses added by enrichment and stores every entry.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jusunglee/khmerlex/internal/logger"
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

	fs := ff.NewFlagSet("khmerlex-build")
	var (
		outDir      = fs.StringLong("out", "data", "Snapshot directory for tier files")
		wordlistCSV = fs.StringLong("wordlist", "", "Khmer dictionary CSV to merge (optional)")
		databaseURL = fs.StringLong("database-url", "", "SQLite path or PostgreSQL URL to sync entries with (optional)")
		workers     = fs.Int64Long("workers", 8, "Concurrent romanization workers")
		fresh       = fs.BoolLong("fresh", "Ignore existing tier files and start from the seed vocabulary")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}
	if *outDir == "" {
		return errors.New("out is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.Init()
	sum, err := run(ctx, options{
		outDir:       *outDir,
		wordlistPath: *wordlistCSV,
		databaseURL:  *databaseURL,
		workers:      int(*workers),
		fresh:        *fresh,
	}, log)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "snapshot written",
		"dir", *outDir,
		"core", sum.Core,
		"extended", sum.Extended,
		"added", sum.Added,
		"updated", sum.Updated,
		"romanized", sum.Romanized,
		"glosses_pulled", sum.GlossesPulled,
		"stored", sum.Stored,
	)
	return nil
}
