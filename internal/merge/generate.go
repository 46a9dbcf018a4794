package merge

import (
	"context"
	"fmt"

	"github.com/jusunglee/khmerlex/internal/lexicon"
	"github.com/jusunglee/khmerlex/internal/transliteration"
)

// Generate fills romanized and phonetic spellings that are missing or still
// hold Khmer pronunciation notation from the wordlist. The pronunciation
// respelling is romanized in preference to the script form when present.
// Entries are updated in place; the number changed is returned.
func Generate(ctx context.Context, entries []lexicon.Entry, workers int) (int, error) {
	var (
		targets []int
		words   []string
	)
	for i, e := range entries {
		if !needsRomanization(e) {
			continue
		}
		source := e.Script
		if transliteration.HasRomanizable(e.Romanized) {
			source = e.Romanized
		}
		targets = append(targets, i)
		words = append(words, source)
	}
	if len(targets) == 0 {
		return 0, nil
	}

	results, err := transliteration.RomanizeAll(ctx, words, workers)
	if err != nil {
		return 0, fmt.Errorf("romanize %d entries: %w", len(words), err)
	}
	for j, i := range targets {
		e := &entries[i]
		if e.Romanized == "" || transliteration.HasRomanizable(e.Romanized) {
			e.Romanized = results[j].Romanized
		}
		if e.Phonetic == "" || transliteration.HasRomanizable(e.Phonetic) {
			e.Phonetic = results[j].Phonetic
		}
	}
	return len(targets), nil
}

func needsRomanization(e lexicon.Entry) bool {
	return e.Romanized == "" || e.Phonetic == "" ||
		transliteration.HasRomanizable(e.Romanized) ||
		transliteration.HasRomanizable(e.Phonetic)
}
