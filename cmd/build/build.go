package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/jusunglee/khmerlex/internal/db"
	"github.com/jusunglee/khmerlex/internal/db/open"
	"github.com/jusunglee/khmerlex/internal/lexicon"
	"github.com/jusunglee/khmerlex/internal/merge"
	"github.com/jusunglee/khmerlex/internal/metrics"
	"github.com/jusunglee/khmerlex/internal/snapshot"
	"github.com/jusunglee/khmerlex/internal/vocabulary"
	"github.com/jusunglee/khmerlex/internal/wordlist"
)

const lockFile = ".build.lock"

// syncPageSize is the page size used when reading entries back from the
// database.
const syncPageSize = 1000

type options struct {
	outDir       string
	wordlistPath string
	databaseURL  string
	workers      int
	fresh        bool
}

type summary struct {
	Core          int
	Extended      int
	Added         int
	Updated       int
	Romanized     int
	GlossesPulled int
	Stored        int64
}

func run(ctx context.Context, opts options, log *slog.Logger) (summary, error) {
	var sum summary

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return sum, fmt.Errorf("creating %s: %w", opts.outDir, err)
	}
	lock := flock.New(filepath.Join(opts.outDir, lockFile))
	locked, err := lock.TryLock()
	if err != nil {
		return sum, fmt.Errorf("locking %s: %w", opts.outDir, err)
	}
	if !locked {
		return sum, fmt.Errorf("another build is writing %s", opts.outDir)
	}
	defer lock.Unlock()

	entries, err := loadExisting(ctx, opts, log)
	if err != nil {
		return sum, err
	}

	var records []wordlist.Record
	if opts.wordlistPath != "" {
		var stats wordlist.Stats
		records, stats, err = wordlist.ParseFile(opts.wordlistPath)
		if err != nil {
			return sum, fmt.Errorf("parsing wordlist: %w", err)
		}
		log.InfoContext(ctx, "parsed wordlist", "rows", stats.Rows, "parsed", stats.Parsed, "skipped", stats.Skipped)
		metrics.MergeEntriesTotal.WithLabelValues("skipped").Add(float64(stats.Skipped))
	}

	merged := merge.Merge(entries, records)
	entries = merged.Entries
	sum.Added, sum.Updated = merged.Added, merged.Updated
	metrics.MergeEntriesTotal.WithLabelValues("added").Add(float64(merged.Added))
	metrics.MergeEntriesTotal.WithLabelValues("updated").Add(float64(merged.Updated))

	var repo db.Repository
	if opts.databaseURL != "" {
		repo, err = open.Repository(ctx, opts.databaseURL)
		if err != nil {
			return sum, fmt.Errorf("opening database: %w", err)
		}
		defer repo.Close()

		sum.GlossesPulled, err = pullGlosses(ctx, repo, entries)
		if err != nil {
			return sum, err
		}
	}

	sum.Romanized, err = merge.Generate(ctx, entries, opts.workers)
	if err != nil {
		return sum, err
	}
	metrics.WordsRomanized.Add(float64(sum.Romanized))

	core, extended := merge.Split(entries)
	sum.Core, sum.Extended = len(core), len(extended)

	if err := snapshot.WriteTier(filepath.Join(opts.outDir, snapshot.CoreFile), core); err != nil {
		return sum, fmt.Errorf("writing core tier: %w", err)
	}
	if err := snapshot.WriteTier(filepath.Join(opts.outDir, snapshot.ExtendedFile), extended); err != nil {
		return sum, fmt.Errorf("writing extended tier: %w", err)
	}
	if err := snapshot.WriteWordList(filepath.Join(opts.outDir, snapshot.WordListFile), entries); err != nil {
		return sum, fmt.Errorf("writing word list: %w", err)
	}

	if repo != nil {
		sum.Stored, err = store(ctx, repo, core, extended)
		if err != nil {
			return sum, err
		}
	}
	return sum, nil
}

// loadExisting returns the current tiers, core first, or the seed vocabulary
// when there is no core tier yet.
func loadExisting(ctx context.Context, opts options, log *slog.Logger) ([]lexicon.Entry, error) {
	if opts.fresh {
		return vocabulary.All(), nil
	}

	core, err := snapshot.ReadTier(filepath.Join(opts.outDir, snapshot.CoreFile))
	if errors.Is(err, fs.ErrNotExist) {
		log.InfoContext(ctx, "no existing tiers, starting from seed vocabulary")
		return vocabulary.All(), nil
	}
	if err != nil {
		return nil, err
	}

	extended, err := snapshot.ReadTier(filepath.Join(opts.outDir, snapshot.ExtendedFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return append(core, extended...), nil
}

// pullGlosses copies glosses, parts of speech and Khmer definitions stored in
// the database onto entries that lack them, so enrichment results survive a
// rebuild. It returns the number of glosses copied.
func pullGlosses(ctx context.Context, repo db.Repository, entries []lexicon.Entry) (int, error) {
	pos := make(map[string]int, len(entries))
	for i, e := range entries {
		pos[e.Script] = i
	}

	pulled := 0
	for offset := int32(0); ; offset += syncPageSize {
		page, err := repo.ListEntries(ctx, db.ListEntriesParams{Limit: syncPageSize, Offset: offset})
		if err != nil {
			return pulled, fmt.Errorf("reading stored entries: %w", err)
		}
		for _, stored := range page {
			i, ok := pos[stored.Script]
			if !ok {
				continue
			}
			e := &entries[i]
			if e.Gloss == "" && stored.Gloss != "" {
				e.Gloss = stored.Gloss
				pulled++
			}
			if e.POS == "" {
				e.POS = stored.POS
			}
			if e.DefinitionKM == "" {
				e.DefinitionKM = stored.DefinitionKM
			}
		}
		if len(page) < syncPageSize {
			return pulled, nil
		}
	}
}

func store(ctx context.Context, repo db.Repository, core, extended []lexicon.Entry) (int64, error) {
	stored := make([]db.StoredEntry, 0, len(core)+len(extended))
	for _, e := range core {
		stored = append(stored, db.StoredEntry{Entry: e, Tier: db.TierCore})
	}
	for _, e := range extended {
		stored = append(stored, db.StoredEntry{Entry: e, Tier: db.TierExtended})
	}

	var n int64
	err := repo.WithTx(ctx, func(tx db.Repository) error {
		var err error
		n, err = tx.UpsertEntries(ctx, stored)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("storing entries: %w", err)
	}
	return n, nil
}
