package gloss

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jusunglee/khmerlex/internal/db"
	"github.com/jusunglee/khmerlex/internal/lexicon"
	"github.com/jusunglee/khmerlex/internal/metrics"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Config tunes an enrichment run. Zero values take the defaults.
type Config struct {
	BatchSize   int
	Concurrency int
	MaxEntries  int
}

const (
	DefaultBatchSize   = 25
	DefaultConcurrency = 4
	DefaultMaxEntries  = 500
)

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.MaxEntries <= 0 {
		c.MaxEntries = DefaultMaxEntries
	}
	return c
}

// Stats summarises one run.
type Stats struct {
	Requested int
	Glossed   int
	Missing   int
	Failed    int
}

type Enricher struct {
	repo       db.Repository
	translator *Translator
	cfg        Config
	log        *slog.Logger
}

func NewEnricher(repo db.Repository, translator *Translator, cfg Config, log *slog.Logger) *Enricher {
	return &Enricher{repo: repo, translator: translator, cfg: cfg.withDefaults(), log: log}
}

// Run glosses up to MaxEntries of the most frequent unglossed entries. A batch
// whose translation fails is logged and counted, not returned; only storage
// errors and cancellation end the run early.
func (e *Enricher) Run(ctx context.Context) (Stats, error) {
	pending, err := e.repo.EntriesMissingGloss(ctx, int32(e.cfg.MaxEntries))
	if err != nil {
		return Stats{}, err
	}
	if len(pending) == 0 {
		e.log.InfoContext(ctx, "no entries missing a gloss")
		return Stats{}, nil
	}

	batches := lo.Chunk(pending, e.cfg.BatchSize)
	e.log.InfoContext(ctx, "starting gloss enrichment", "entries", len(pending), "batches", len(batches))

	var glossed, missing, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Concurrency)
	for i, batch := range batches {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, err := e.runBatch(gctx, batch)
			if err != nil {
				if errors.Is(err, errStore) || gctx.Err() != nil {
					return err
				}
				failed.Add(int64(len(batch)))
				metrics.GlossEntriesTotal.WithLabelValues("failed").Add(float64(len(batch)))
				e.log.WarnContext(gctx, "gloss batch failed", "batch", i, "size", len(batch), "error", err)
				return nil
			}
			glossed.Add(int64(n))
			missing.Add(int64(len(batch) - n))
			metrics.GlossEntriesTotal.WithLabelValues("glossed").Add(float64(n))
			metrics.GlossEntriesTotal.WithLabelValues("missing").Add(float64(len(batch) - n))
			return nil
		})
	}
	err = g.Wait()

	stats := Stats{
		Requested: len(pending),
		Glossed:   int(glossed.Load()),
		Missing:   int(missing.Load()),
		Failed:    int(failed.Load()),
	}
	e.log.InfoContext(ctx, "gloss enrichment finished",
		"requested", stats.Requested, "glossed", stats.Glossed, "missing", stats.Missing, "failed", stats.Failed)
	return stats, err
}

var errStore = errors.New("storing glosses")

func (e *Enricher) runBatch(ctx context.Context, batch []db.StoredEntry) (int, error) {
	words := lo.Map(batch, func(s db.StoredEntry, _ int) string { return s.Script })

	start := time.Now()
	glosses, err := e.translator.TranslateWords(ctx, words)
	metrics.GlossBatchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return 0, err
	}

	stored := 0
	err = e.repo.WithTx(ctx, func(tx db.Repository) error {
		stored = 0
		for _, g := range glosses {
			err := tx.SetGloss(ctx, db.SetGlossParams{
				Script: g.Khmer,
				Gloss:  g.English,
				POS:    lexicon.PartOfSpeech(g.POS),
			})
			if db.IsNoRows(err) {
				e.log.DebugContext(ctx, "entry vanished before its gloss was stored", "script", g.Khmer)
				continue
			}
			if err != nil {
				return err
			}
			stored++
		}
		return nil
	})
	if err != nil {
		return 0, errors.Join(errStore, err)
	}
	return stored, nil
}
