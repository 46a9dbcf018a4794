package db

import (
	"context"
	"time"

	"github.com/jusunglee/khmerlex/internal/lexicon"
)

// StoredEntry is a lexicon entry as persisted, with the tier it was assigned
// at build time.
type StoredEntry struct {
	lexicon.Entry
	Tier      string
	UpdatedAt time.Time
}

// ListEntriesParams pages through entries, most frequent first. An empty Tier
// lists every tier.
type ListEntriesParams struct {
	Tier   string
	Limit  int32
	Offset int32
}

// SetGlossParams records an English gloss. POS is only written when the entry
// has none.
type SetGlossParams struct {
	Script string
	Gloss  string
	POS    lexicon.PartOfSpeech
}

// Repository defines the interface for lexicon storage
type Repository interface {
	// Entries
	UpsertEntries(ctx context.Context, entries []StoredEntry) (int64, error)
	GetEntry(ctx context.Context, script string) (StoredEntry, error)
	ListEntries(ctx context.Context, arg ListEntriesParams) ([]StoredEntry, error)
	CountEntries(ctx context.Context, tier string) (int64, error)

	// Gloss enrichment
	EntriesMissingGloss(ctx context.Context, limit int32) ([]StoredEntry, error)
	SetGloss(ctx context.Context, arg SetGlossParams) error

	// Transaction support
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	// Lifecycle
	Close() error
}
