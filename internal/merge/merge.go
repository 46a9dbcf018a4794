// Package merge combines the curated lexicon with the monolingual wordlist,
// fills in generated romanizations and splits the result into load tiers.
package merge

import (
	"strings"
	"unicode/utf8"

	"github.com/jusunglee/khmerlex/internal/lexicon"
	"github.com/jusunglee/khmerlex/internal/wordlist"
)

const (
	// DefaultFrequency is assigned to words that only come from the wordlist.
	DefaultFrequency = 50

	maxDefinitionRunes = 500
)

// Result is the merged lexicon. Entries keep the order of the existing
// lexicon followed by new script forms in record order.
type Result struct {
	Entries []lexicon.Entry
	Added   int
	Updated int
}

// Merge folds wordlist records into existing entries without overwriting
// anything already set. For a known script form it fills a missing
// romanization and part of speech and records the Khmer definition; unknown
// forms become new entries with no gloss. When existing holds the same script
// twice the first occurrence is kept.
func Merge(existing []lexicon.Entry, records []wordlist.Record) Result {
	res := Result{Entries: make([]lexicon.Entry, 0, len(existing)+len(records))}
	pos := make(map[string]int, len(existing)+len(records))

	for _, e := range existing {
		if _, dup := pos[e.Script]; dup || e.Script == "" {
			continue
		}
		pos[e.Script] = len(res.Entries)
		res.Entries = append(res.Entries, e)
	}

	for _, rec := range records {
		definition := truncateRunes(rec.DefinitionKM, maxDefinitionRunes)

		if i, ok := pos[rec.Script]; ok {
			e := &res.Entries[i]
			if e.Romanized == "" && rec.Pronunciation != "" {
				e.Romanized = rec.Pronunciation
				res.Updated++
			}
			if e.POS == "" && rec.POS != "" {
				e.POS = rec.POS
			}
			if definition != "" {
				e.DefinitionKM = definition
			}
			continue
		}

		pos[rec.Script] = len(res.Entries)
		res.Entries = append(res.Entries, lexicon.Entry{
			Script:       rec.Script,
			POS:          rec.POS,
			Romanized:    rec.Pronunciation,
			Phonetic:     strings.ToUpper(rec.Pronunciation),
			Frequency:    DefaultFrequency,
			DefinitionKM: definition,
		})
		res.Added++
	}
	return res
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
