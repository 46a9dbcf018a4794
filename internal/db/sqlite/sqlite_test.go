package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jusunglee/khmerlex/internal/db"
	"github.com/jusunglee/khmerlex/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func seed(t *testing.T, repo *Repository) {
	t.Helper()
	n, err := repo.UpsertEntries(context.Background(), []db.StoredEntry{
		{Entry: lexicon.Entry{Script: "ទេ", Gloss: "no", POS: lexicon.POSPart, Romanized: "té", Phonetic: "TAY", Frequency: 100}, Tier: db.TierCore},
		{Entry: lexicon.Entry{Script: "នាទី", Gloss: "minute", POS: lexicon.POSNoun, Romanized: "nā-tī", Phonetic: "NAH-TEE", Frequency: 80}, Tier: db.TierCore},
		{Entry: lexicon.Entry{Script: "កក", Romanized: "kkâ", Frequency: 50, DefinitionKM: "ធ្វើឲ្យខាប់"}, Tier: db.TierExtended},
		{Entry: lexicon.Entry{Script: "ក"}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
}

func TestEntryCRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	seed(t, repo)

	got, err := repo.GetEntry(ctx, "ទេ")
	require.NoError(t, err)
	assert.Equal(t, "no", got.Gloss)
	assert.Equal(t, lexicon.POSPart, got.POS)
	assert.Equal(t, "TAY", got.Phonetic)
	assert.Equal(t, 100, got.Frequency)
	assert.Equal(t, db.TierCore, got.Tier)
	assert.False(t, got.UpdatedAt.IsZero())

	kk, err := repo.GetEntry(ctx, "កក")
	require.NoError(t, err)
	assert.Empty(t, kk.Gloss)
	assert.Equal(t, "ធ្វើឲ្យខាប់", kk.DefinitionKM)

	k, err := repo.GetEntry(ctx, "ក")
	require.NoError(t, err)
	assert.Equal(t, db.TierExtended, k.Tier, "tier defaults to extended")
	assert.Zero(t, k.Frequency)

	_, err = repo.GetEntry(ctx, "missing")
	assert.True(t, db.IsNoRows(err))
}

func TestUpsertReplaces(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	seed(t, repo)

	_, err := repo.UpsertEntries(ctx, []db.StoredEntry{
		{Entry: lexicon.Entry{Script: " ទេ ", Gloss: "not", Frequency: 99}, Tier: db.TierCore},
	})
	require.NoError(t, err)

	got, err := repo.GetEntry(ctx, "ទេ")
	require.NoError(t, err)
	assert.Equal(t, "not", got.Gloss)
	assert.Empty(t, got.Romanized)

	count, err := repo.CountEntries(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestUpsertRejectsInvalid(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.UpsertEntries(ctx, []db.StoredEntry{{Entry: lexicon.Entry{Script: " "}}})
	assert.ErrorIs(t, err, lexicon.ErrMissingScript)

	_, err = repo.UpsertEntries(ctx, []db.StoredEntry{{Entry: lexicon.Entry{Script: "ក"}, Tier: "hot"}})
	assert.ErrorIs(t, err, db.ErrUnknownTier)
}

func TestListAndCount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	seed(t, repo)

	core, err := repo.ListEntries(ctx, db.ListEntriesParams{Tier: db.TierCore, Limit: 10})
	require.NoError(t, err)
	require.Len(t, core, 2)
	assert.Equal(t, "ទេ", core[0].Script)
	assert.Equal(t, "នាទី", core[1].Script)

	all, err := repo.ListEntries(ctx, db.ListEntriesParams{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "កក", all[0].Script)
	assert.Equal(t, "ក", all[1].Script)

	n, err := repo.CountEntries(ctx, db.TierExtended)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = repo.ListEntries(ctx, db.ListEntriesParams{Tier: "bogus", Limit: 1})
	assert.ErrorIs(t, err, db.ErrUnknownTier)
	_, err = repo.CountEntries(ctx, "bogus")
	assert.ErrorIs(t, err, db.ErrUnknownTier)
}

func TestGlossEnrichment(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	seed(t, repo)

	missing, err := repo.EntriesMissingGloss(ctx, 10)
	require.NoError(t, err)
	require.Len(t, missing, 2)
	assert.Equal(t, "កក", missing[0].Script, "most frequent first")

	require.NoError(t, repo.SetGloss(ctx, db.SetGlossParams{Script: "កក", Gloss: "to thicken", POS: lexicon.POSVerb}))
	require.NoError(t, repo.SetGloss(ctx, db.SetGlossParams{Script: "ទេ", Gloss: "no", POS: lexicon.POSAdv}))

	kk, err := repo.GetEntry(ctx, "កក")
	require.NoError(t, err)
	assert.Equal(t, "to thicken", kk.Gloss)
	assert.Equal(t, lexicon.POSVerb, kk.POS)

	te, err := repo.GetEntry(ctx, "ទេ")
	require.NoError(t, err)
	assert.Equal(t, lexicon.POSPart, te.POS, "existing POS kept")

	missing, err = repo.EntriesMissingGloss(ctx, 10)
	require.NoError(t, err)
	require.Len(t, missing, 1)
	assert.Equal(t, "ក", missing[0].Script)

	err = repo.SetGloss(ctx, db.SetGlossParams{Script: "missing", Gloss: "x"})
	assert.True(t, db.IsNoRows(err))
}

func TestWithTx(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.WithTx(ctx, func(tx db.Repository) error {
		_, err := tx.UpsertEntries(ctx, []db.StoredEntry{{Entry: lexicon.Entry{Script: "ក"}}})
		return err
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = repo.WithTx(ctx, func(tx db.Repository) error {
		if _, err := tx.UpsertEntries(ctx, []db.StoredEntry{{Entry: lexicon.Entry{Script: "ខ"}}}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	count, err := repo.CountEntries(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "rolled back insert is not visible")

	assert.Panics(t, func() {
		_ = repo.WithTx(ctx, func(tx db.Repository) error {
			panic("boom")
		})
	})
	count, err = repo.CountEntries(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFileDatabaseKeepsSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lexicon.db")

	repo, err := New(ctx, "sqlite://"+path)
	require.NoError(t, err)
	_, err = repo.UpsertEntries(ctx, []db.StoredEntry{{Entry: lexicon.Entry{Script: "ក"}}})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	repo, err = New(ctx, path)
	require.NoError(t, err)
	defer repo.Close()
	n, err := repo.CountEntries(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
