// enrich asks an LLM for English glosses of stored entries that have none
// and writes them back. Run the build command afterwards to publish them.
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
	"github.com/jusunglee/khmerlex/internal/anthropic"
	"github.com/jusunglee/khmerlex/internal/db/open"
	"github.com/jusunglee/khmerlex/internal/gloss"
	"github.com/jusunglee/khmerlex/internal/google"
	"github.com/jusunglee/khmerlex/internal/llm"
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

	fs := ff.NewFlagSet("khmerlex-enrich")
	var (
		databaseURL     = fs.StringLong("database-url", "", "SQLite path or PostgreSQL URL of the lexicon store")
		llmProvider     = fs.StringEnumLong("llm-provider", "LLM provider for glossing", "anthropic", "google")
		llmModel        = fs.StringLong("llm-model", "", "LLM model name (provider default when empty)")
		anthropicAPIKey = fs.StringLong("anthropic-api-key", "", "Anthropic API key")
		googleAPIKey    = fs.StringLong("google-api-key", "", "Google API key")
		batchSize       = fs.Int64Long("batch-size", gloss.DefaultBatchSize, "Words per LLM request")
		concurrency     = fs.Int64Long("concurrency", gloss.DefaultConcurrency, "Concurrent LLM requests")
		maxEntries      = fs.Int64Long("max-entries", gloss.DefaultMaxEntries, "Most entries to gloss in one run")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *databaseURL == "" {
		return errors.New("database-url is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logger.Init()

	var llmClient llm.Client
	switch *llmProvider {
	case "anthropic":
		if *anthropicAPIKey == "" {
			return errors.New("anthropic-api-key is required when using anthropic provider")
		}
		llmClient = anthropic.NewClient(*anthropicAPIKey, anthropic.Model(*llmModel))
	case "google":
		if *googleAPIKey == "" {
			return errors.New("google-api-key is required when using google provider")
		}
		var err error
		llmClient, err = google.NewClient(ctx, *googleAPIKey, google.Model(*llmModel))
		if err != nil {
			return fmt.Errorf("creating Google client: %w", err)
		}
	}

	repo, err := open.Repository(ctx, *databaseURL)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer repo.Close()

	enricher := gloss.NewEnricher(repo, gloss.NewTranslator(llmClient), gloss.Config{
		BatchSize:   int(*batchSize),
		Concurrency: int(*concurrency),
		MaxEntries:  int(*maxEntries),
	}, log)

	stats, err := enricher.Run(ctx)
	if err != nil {
		return fmt.Errorf("enriching glosses: %w", err)
	}
	if stats.Requested > 0 && stats.Failed == stats.Requested {
		return errors.New("every gloss batch failed")
	}
	return nil
}
