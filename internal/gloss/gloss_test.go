package gloss

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/jusunglee/khmerlex/internal/db"
	"github.com/jusunglee/khmerlex/internal/db/sqlite"
	"github.com/jusunglee/khmerlex/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	mu      sync.Mutex
	calls   int
	respond func(prompt string) (string, error)
}

func (s *stubClient) Complete(_ context.Context, _, prompt string) (string, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.respond(prompt)
}

func promptWords(prompt string) []string {
	var words []string
	for line := range strings.SplitSeq(prompt, "\n") {
		if w, ok := strings.CutPrefix(line, "- "); ok {
			words = append(words, w)
		}
	}
	return words
}

func TestTranslateWords(t *testing.T) {
	client := &stubClient{respond: func(string) (string, error) {
		return "```json\n" + `[
			{"khmer": " ទឹក ", "english": " water ", "pos": "NOUN"},
			{"khmer": "ទឹក", "english": "liquid", "pos": "noun"},
			{"khmer": "ញ៉ាំ", "english": "to eat", "pos": "verbish"},
			{"khmer": "ក", "english": "", "pos": "noun"},
			{"khmer": "ខ្លួន", "english": "self", "pos": "pron"}
		]` + "\n```", nil
	}}
	tr := NewTranslator(client)

	got, err := tr.TranslateWords(context.Background(), []string{"ទឹក", "ញ៉ាំ", "ក"})
	require.NoError(t, err)
	assert.Equal(t, []Gloss{
		{Khmer: "ទឹក", English: "water", POS: "noun"},
		{Khmer: "ញ៉ាំ", English: "to eat"},
	}, got)
}

func TestTranslateWordsEmpty(t *testing.T) {
	client := &stubClient{respond: func(string) (string, error) { return "[]", nil }}
	got, err := NewTranslator(client).TranslateWords(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, client.calls)
}

func TestTranslateWordsBadResponse(t *testing.T) {
	client := &stubClient{respond: func(string) (string, error) { return "I cannot help with that.", nil }}
	_, err := NewTranslator(client).TranslateWords(context.Background(), []string{"ទឹក"})
	assert.ErrorContains(t, err, "failed to parse gloss response")

	boom := errors.New("boom")
	client = &stubClient{respond: func(string) (string, error) { return "", boom }}
	_, err = NewTranslator(client).TranslateWords(context.Background(), []string{"ទឹក"})
	assert.ErrorIs(t, err, boom)
}

var known = map[string]Gloss{
	"ទឹក":  {Khmer: "ទឹក", English: "water", POS: "noun"},
	"ញ៉ាំ": {Khmer: "ញ៉ាំ", English: "to eat", POS: "verb"},
}

func knownGlosses(prompt string) (string, error) {
	var out []Gloss
	for _, w := range promptWords(prompt) {
		if w == "ក" {
			return "", errors.New("rate limited")
		}
		if g, ok := known[w]; ok {
			out = append(out, g)
		}
	}
	b, err := json.Marshal(out)
	return string(b), err
}

func newRepo(t *testing.T) *sqlite.Repository {
	t.Helper()
	repo, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	_, err = repo.UpsertEntries(context.Background(), []db.StoredEntry{
		{Entry: lexicon.Entry{Script: "ទឹក", Frequency: 90}},
		{Entry: lexicon.Entry{Script: "ញ៉ាំ", Frequency: 80}},
		{Entry: lexicon.Entry{Script: "ក", Frequency: 70}},
		{Entry: lexicon.Entry{Script: "ខ", Frequency: 60}},
		{Entry: lexicon.Entry{Script: "ទេ", Gloss: "no", Frequency: 100}, Tier: db.TierCore},
	})
	require.NoError(t, err)
	return repo
}

func TestEnricherRun(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	client := &stubClient{respond: knownGlosses}
	e := NewEnricher(repo, NewTranslator(client), Config{BatchSize: 2, Concurrency: 2}, slog.New(slog.DiscardHandler))

	stats, err := e.Run(ctx)
	require.NoError(t, err, "a failed batch is not fatal")
	assert.Equal(t, Stats{Requested: 4, Glossed: 2, Missing: 0, Failed: 2}, stats)
	assert.Equal(t, 2, client.calls)

	water, err := repo.GetEntry(ctx, "ទឹក")
	require.NoError(t, err)
	assert.Equal(t, "water", water.Gloss)
	assert.Equal(t, lexicon.POSNoun, water.POS)

	remaining, err := repo.EntriesMissingGloss(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}

func TestEnricherCountsMissing(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	client := &stubClient{respond: func(string) (string, error) { return "[]", nil }}
	e := NewEnricher(repo, NewTranslator(client), Config{BatchSize: 10, MaxEntries: 3}, slog.New(slog.DiscardHandler))

	stats, err := e.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Requested: 3, Missing: 3}, stats)
}

func TestEnricherNothingToDo(t *testing.T) {
	ctx := context.Background()
	repo, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	defer repo.Close()

	client := &stubClient{respond: knownGlosses}
	stats, err := NewEnricher(repo, NewTranslator(client), Config{}, slog.New(slog.DiscardHandler)).Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats)
	assert.Zero(t, client.calls)
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{BatchSize: 5}.withDefaults()
	assert.Equal(t, Config{BatchSize: 5, Concurrency: DefaultConcurrency, MaxEntries: DefaultMaxEntries}, cfg)
}
