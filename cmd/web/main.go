package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/khmerlex/internal/db/open"
	"github.com/jusunglee/khmerlex/internal/db/postgres"
	"github.com/jusunglee/khmerlex/internal/logger"
	"github.com/jusunglee/khmerlex/internal/metrics"
	"github.com/jusunglee/khmerlex/internal/snapshot"
	"github.com/jusunglee/khmerlex/internal/web"
	"github.com/jusunglee/khmerlex/internal/web/handlers"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("khmerlex-web")

	var (
		port           = fs.Int64Long("port", 3000, "HTTP server port")
		dataDir        = fs.StringLong("data-dir", "data", "Snapshot directory written by the build command")
		databaseURL    = fs.StringLong("database-url", "", "SQLite path or PostgreSQL URL of the lexicon store; enables /api/v1/stats (optional)")
		preload        = fs.BoolLong("preload-extended", "Load the extended tier at startup instead of on first search")
		allowedOrigins = fs.StringLong("allowed-origins", "", "Comma-separated list of allowed CORS origins")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.Init()
	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	store := snapshot.NewStore(*dataDir, log)
	if err := store.LoadCore(ctx); err != nil {
		return err
	}
	if *preload {
		// Keep serving the core tier when the extended file is missing.
		_ = store.EnsureExtended(ctx)
	}

	var counter handlers.Counter
	if *databaseURL != "" {
		repo, err := open.Repository(ctx, *databaseURL)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer repo.Close()
		counter = repo
		log.InfoContext(ctx, "connected to lexicon store")

		if pg, ok := repo.(*postgres.Repository); ok {
			go exportPoolStats(ctx, pg)
		}
	}

	var origins []string
	if *allowedOrigins != "" {
		for o := range strings.SplitSeq(*allowedOrigins, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	router := web.NewRouter(store, counter, log, origins)
	defer router.Close()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router.Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.InfoContext(ctx, "received signal, shutting down gracefully", "signal", sig)
		cancel(errors.New("signal received"))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.ErrorContext(ctx, "server shutdown error", "error", err)
		}
	}()

	log.InfoContext(ctx, "starting web server", "port", *port, "entries", store.Index().Len())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// exportPoolStats periodically copies pgxpool stats into Prometheus gauges.
func exportPoolStats(ctx context.Context, repo *postgres.Repository) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s := repo.PoolStats()
			metrics.DBPoolTotalConns.Set(float64(s.TotalConns()))
			metrics.DBPoolIdleConns.Set(float64(s.IdleConns()))
			metrics.DBPoolAcquiredConns.Set(float64(s.AcquiredConns()))
			metrics.DBPoolMaxConns.Set(float64(s.MaxConns()))
		case <-ctx.Done():
			return
		}
	}
}
