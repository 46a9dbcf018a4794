package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jusunglee/khmerlex/internal/db"
	"github.com/jusunglee/khmerlex/internal/lexicon"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository implements db.Repository using SQLite
type Repository struct {
	db *sql.DB
	q  dbtx
}

// New creates a new SQLite repository
func New(ctx context.Context, dbPath string) (*Repository, error) {
	// Strip sqlite:// prefix if present
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")
	inMemory := dbPath == ":memory:"

	isNew := inMemory
	if _, err := os.Stat(dbPath); !inMemory && os.IsNotExist(err) {
		isNew = true
	}

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}
	if inMemory {
		// Every connection to :memory: is a separate database.
		sqliteDB.SetMaxOpenConns(1)
	}

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	repo := &Repository{db: sqliteDB, q: sqliteDB}

	if isNew {
		if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
			sqliteDB.Close()
			return nil, fmt.Errorf("initializing schema: %w", err)
		}
		slog.Info("created new SQLite database", "path", dbPath)
	}

	return repo, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&Repository{db: r.db, q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

const entryColumns = `script, gloss, pos, romanized, phonetic, frequency, definition_km, tier, updated_at`

const upsertEntrySQL = `
	INSERT INTO entries (script, gloss, pos, romanized, phonetic, frequency, definition_km, tier, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
	ON CONFLICT (script) DO UPDATE SET
		gloss = excluded.gloss,
		pos = excluded.pos,
		romanized = excluded.romanized,
		phonetic = excluded.phonetic,
		frequency = excluded.frequency,
		definition_km = excluded.definition_km,
		tier = excluded.tier,
		updated_at = excluded.updated_at
`

// UpsertEntries inserts or replaces entries by script form. Callers wanting
// all-or-nothing semantics wrap it in WithTx.
func (r *Repository) UpsertEntries(ctx context.Context, entries []db.StoredEntry) (int64, error) {
	var n int64
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return n, err
		}
		tier := e.Tier
		if tier == "" {
			tier = db.TierExtended
		}
		if err := db.CheckTier(tier); err != nil {
			return n, err
		}
		res, err := r.q.ExecContext(ctx, upsertEntrySQL,
			e.Script,
			nullIfEmpty(e.Gloss),
			nullIfEmpty(string(e.POS)),
			nullIfEmpty(e.Romanized),
			nullIfEmpty(e.Phonetic),
			nullIfZero(e.Frequency),
			nullIfEmpty(e.DefinitionKM),
			tier,
		)
		if err != nil {
			return n, fmt.Errorf("upserting %q: %w", e.Script, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return n, err
		}
		n += affected
	}
	return n, nil
}

func (r *Repository) GetEntry(ctx context.Context, script string) (db.StoredEntry, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE script = ?`, script)
	return scanEntry(row)
}

func (r *Repository) ListEntries(ctx context.Context, arg db.ListEntriesParams) ([]db.StoredEntry, error) {
	if err := db.CheckTier(arg.Tier); err != nil {
		return nil, err
	}
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+entryColumns+`
		FROM entries
		WHERE (? = '' OR tier = ?)
		ORDER BY COALESCE(frequency, 0) DESC, script
		LIMIT ? OFFSET ?
	`, arg.Tier, arg.Tier, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *Repository) CountEntries(ctx context.Context, tier string) (int64, error) {
	if err := db.CheckTier(tier); err != nil {
		return 0, err
	}
	var count int64
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM entries WHERE (? = '' OR tier = ?)
	`, tier, tier).Scan(&count)
	return count, err
}

func (r *Repository) EntriesMissingGloss(ctx context.Context, limit int32) ([]db.StoredEntry, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+entryColumns+`
		FROM entries
		WHERE gloss IS NULL
		ORDER BY COALESCE(frequency, 0) DESC, script
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *Repository) SetGloss(ctx context.Context, arg db.SetGlossParams) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE entries
		SET gloss = ?,
			pos = COALESCE(pos, ?),
			updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
		WHERE script = ?
	`, nullIfEmpty(arg.Gloss), nullIfEmpty(string(arg.POS)), arg.Script)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return db.ErrNoRows
	}
	return nil
}

// Helper functions

type scanner interface {
	Scan(dest ...any) error
}

func scanEntryFrom(s scanner) (db.StoredEntry, error) {
	var (
		e                                      db.StoredEntry
		gloss, pos, romanized, phonetic, defKM sql.NullString
		frequency                              sql.NullInt64
		updatedAtStr                           string
	)
	if err := s.Scan(&e.Script, &gloss, &pos, &romanized, &phonetic, &frequency, &defKM, &e.Tier, &updatedAtStr); err != nil {
		return db.StoredEntry{}, err
	}
	e.Gloss = gloss.String
	e.POS = lexicon.PartOfSpeech(pos.String)
	e.Romanized = romanized.String
	e.Phonetic = phonetic.String
	e.Frequency = int(frequency.Int64)
	e.DefinitionKM = defKM.String
	e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
	return e, nil
}

func scanEntry(row *sql.Row) (db.StoredEntry, error) {
	e, err := scanEntryFrom(row)
	if err == sql.ErrNoRows {
		return db.StoredEntry{}, db.ErrNoRows
	}
	return e, err
}

func scanEntries(rows *sql.Rows) ([]db.StoredEntry, error) {
	var entries []db.StoredEntry
	for rows.Next() {
		e, err := scanEntryFrom(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullIfZero(n int) any {
	if n == 0 {
		return nil
	}
	return n
}
