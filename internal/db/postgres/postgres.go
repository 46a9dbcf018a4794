package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/khmerlex/internal/db"
	"github.com/jusunglee/khmerlex/internal/lexicon"
)

//go:embed schema.sql
var schemaSQL string

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Repository implements db.Repository using PostgreSQL via pgx
type Repository struct {
	pool *pgxpool.Pool
	q    querier
}

// New creates a new PostgreSQL repository and applies the schema.
func New(ctx context.Context, databaseURL string, opts db.PoolOptions) (*Repository, error) {
	pool, err := db.NewPool(ctx, databaseURL, opts)
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Repository{pool: pool, q: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

// PoolStats returns a snapshot of pool usage.
func (r *Repository) PoolStats() *pgxpool.Stat {
	return r.pool.Stat()
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	// If fn() panics, the normal err-check rollback below won't run.
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback(ctx)
			panic(p)
		}
	}()

	err = fn(&Repository{pool: r.pool, q: tx})
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

const entryColumns = `script, gloss, pos, romanized, phonetic, frequency, definition_km, tier, updated_at`

const upsertEntrySQL = `
	INSERT INTO entries (script, gloss, pos, romanized, phonetic, frequency, definition_km, tier, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
	ON CONFLICT (script) DO UPDATE SET
		gloss = EXCLUDED.gloss,
		pos = EXCLUDED.pos,
		romanized = EXCLUDED.romanized,
		phonetic = EXCLUDED.phonetic,
		frequency = EXCLUDED.frequency,
		definition_km = EXCLUDED.definition_km,
		tier = EXCLUDED.tier,
		updated_at = EXCLUDED.updated_at
`

// UpsertEntries sends every upsert in a single batch round trip.
func (r *Repository) UpsertEntries(ctx context.Context, entries []db.StoredEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return 0, err
		}
		tier := e.Tier
		if tier == "" {
			tier = db.TierExtended
		}
		if err := db.CheckTier(tier); err != nil {
			return 0, err
		}
		batch.Queue(upsertEntrySQL,
			e.Script,
			textOrNil(e.Gloss),
			textOrNil(string(e.POS)),
			textOrNil(e.Romanized),
			textOrNil(e.Phonetic),
			intOrNil(e.Frequency),
			textOrNil(e.DefinitionKM),
			tier,
		)
	}

	results := r.q.SendBatch(ctx, batch)
	var n int64
	for range entries {
		tag, err := results.Exec()
		if err != nil {
			results.Close()
			return n, fmt.Errorf("upserting entries: %w", err)
		}
		n += tag.RowsAffected()
	}
	if err := results.Close(); err != nil {
		return n, fmt.Errorf("closing batch: %w", err)
	}
	return n, nil
}

func (r *Repository) GetEntry(ctx context.Context, script string) (db.StoredEntry, error) {
	row := r.q.QueryRow(ctx, `SELECT `+entryColumns+` FROM entries WHERE script = $1`, script)
	e, err := scanEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.StoredEntry{}, db.ErrNoRows
	}
	return e, err
}

func (r *Repository) ListEntries(ctx context.Context, arg db.ListEntriesParams) ([]db.StoredEntry, error) {
	if err := db.CheckTier(arg.Tier); err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, `
		SELECT `+entryColumns+`
		FROM entries
		WHERE ($1::text = '' OR tier = $1)
		ORDER BY COALESCE(frequency, 0) DESC, script
		LIMIT $2 OFFSET $3
	`, arg.Tier, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

func (r *Repository) CountEntries(ctx context.Context, tier string) (int64, error) {
	if err := db.CheckTier(tier); err != nil {
		return 0, err
	}
	var count int64
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM entries WHERE ($1::text = '' OR tier = $1)
	`, tier).Scan(&count)
	return count, err
}

func (r *Repository) EntriesMissingGloss(ctx context.Context, limit int32) ([]db.StoredEntry, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+entryColumns+`
		FROM entries
		WHERE gloss IS NULL
		ORDER BY COALESCE(frequency, 0) DESC, script
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

func (r *Repository) SetGloss(ctx context.Context, arg db.SetGlossParams) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE entries
		SET gloss = $1,
			pos = COALESCE(pos, $2),
			updated_at = now()
		WHERE script = $3
	`, textOrNil(arg.Gloss), textOrNil(string(arg.POS)), arg.Script)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNoRows
	}
	return nil
}

// Helper functions

func scanEntry(row pgx.Row) (db.StoredEntry, error) {
	var (
		e                                      db.StoredEntry
		gloss, pos, romanized, phonetic, defKM *string
		frequency                              *int32
		updatedAt                              time.Time
	)
	if err := row.Scan(&e.Script, &gloss, &pos, &romanized, &phonetic, &frequency, &defKM, &e.Tier, &updatedAt); err != nil {
		return db.StoredEntry{}, err
	}
	e.Gloss = deref(gloss)
	e.POS = lexicon.PartOfSpeech(deref(pos))
	e.Romanized = deref(romanized)
	e.Phonetic = deref(phonetic)
	if frequency != nil {
		e.Frequency = int(*frequency)
	}
	e.DefinitionKM = deref(defKM)
	e.UpdatedAt = updatedAt
	return e, nil
}

func collectEntries(rows pgx.Rows) ([]db.StoredEntry, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (db.StoredEntry, error) {
		return scanEntry(row)
	})
}

func textOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func intOrNil(n int) *int32 {
	if n == 0 {
		return nil
	}
	v := int32(n)
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
