package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jusunglee/khmerlex/internal/lexicon"
	"github.com/jusunglee/khmerlex/internal/metrics"
)

// Store serves the live lexicon index. The core tier is loaded up front; the
// extended tier is loaded at most once, on first demand, and swapped in as a
// new index. Readers always see a complete index.
type Store struct {
	dir string
	log *slog.Logger

	idx atomic.Pointer[lexicon.Index]

	mu   sync.Mutex
	core []lexicon.Entry

	extendedOnce sync.Once
	extendedErr  error
}

// NewStore returns a Store over the tier files in dir with an empty index.
func NewStore(dir string, log *slog.Logger) *Store {
	s := &Store{dir: dir, log: log}
	s.idx.Store(lexicon.Build(nil))
	return s
}

// Index returns the current index. The returned value is never mutated.
func (s *Store) Index() *lexicon.Index {
	return s.idx.Load()
}

// LoadCore reads the core tier and swaps in an index over it. Call it before
// EnsureExtended.
func (s *Store) LoadCore(ctx context.Context) error {
	start := time.Now()
	core, err := ReadTier(filepath.Join(s.dir, CoreFile))
	if err != nil {
		return fmt.Errorf("load core tier: %w", err)
	}
	s.mu.Lock()
	s.core = core
	s.mu.Unlock()
	s.swap(ctx, lexicon.Build(core), "core", start)
	return nil
}

// EnsureExtended loads the extended tier the first time it is called and
// swaps in an index over core and extended entries. Core entries win when both
// tiers hold the same script form. Later calls return the first call's error.
func (s *Store) EnsureExtended(ctx context.Context) error {
	s.extendedOnce.Do(func() {
		start := time.Now()
		extended, err := ReadTier(filepath.Join(s.dir, ExtendedFile))
		if err != nil {
			s.extendedErr = fmt.Errorf("load extended tier: %w", err)
			s.log.WarnContext(ctx, "extended tier unavailable", "error", err)
			return
		}
		s.mu.Lock()
		core := s.core
		s.mu.Unlock()
		s.swap(ctx, lexicon.Build(combine(core, extended)), "extended", start)
	})
	return s.extendedErr
}

func (s *Store) swap(ctx context.Context, idx *lexicon.Index, tier string, start time.Time) {
	s.idx.Store(idx)
	elapsed := time.Since(start)
	metrics.IndexBuildDuration.WithLabelValues(tier).Observe(elapsed.Seconds())
	metrics.IndexEntries.Set(float64(idx.Len()))
	s.log.InfoContext(ctx, "lexicon index ready", "tier", tier, "entries", idx.Len(), "duration", elapsed)
}

// combine returns core followed by the extended entries core does not cover.
func combine(core, extended []lexicon.Entry) []lexicon.Entry {
	seen := make(map[string]struct{}, len(core))
	for _, e := range core {
		seen[e.Script] = struct{}{}
	}
	all := make([]lexicon.Entry, 0, len(core)+len(extended))
	all = append(all, core...)
	for _, e := range extended {
		if _, ok := seen[e.Script]; !ok {
			all = append(all, e)
		}
	}
	return all
}
