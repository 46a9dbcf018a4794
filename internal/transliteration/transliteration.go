// Package transliteration romanizes Khmer words into ALA-LC Latin script and a
// simplified upper-case phonetic spelling.
//
// A word is classified character by character against fixed tables, segmented
// into syllable-like clusters, and each cluster is rendered according to the
// series (register) of its consonants. Everything here is a pure function of the
// input and the tables, so it is safe for concurrent use.
package transliteration

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
)

// Romanize converts word into its romanized and phonetic forms. It never fails:
// runs of characters outside the Khmer alphabet are copied verbatim to both
// outputs, and each Khmer run between them is NFC-normalized and romanized on
// its own. Khmer combining marks missing from the tables stay inside their run
// and are dropped by Segment.
func Romanize(word string) (romanized, phonetic string) {
	var rom, phon strings.Builder
	forEachRun(word, func(run string, khmer bool) {
		if !khmer {
			rom.WriteString(run)
			phon.WriteString(run)
			return
		}
		r, p := romanizeClusters(Segment(norm.NFC.String(run)))
		rom.WriteString(r)
		phon.WriteString(p)
	})
	return rom.String(), phon.String()
}

// forEachRun calls fn for each maximal run of Khmer-run / other runes.
func forEachRun(s string, fn func(run string, khmer bool)) {
	start := 0
	inRun := false
	for i, r := range s {
		k := inKhmerRun(r)
		if i == 0 {
			inRun = k
			continue
		}
		if k != inRun {
			fn(s[start:i], inRun)
			start = i
			inRun = k
		}
	}
	if start < len(s) {
		fn(s[start:], inRun)
	}
}

// ContainsKhmer reports whether text has at least one Khmer code point.
func ContainsKhmer(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Khmer, r) {
			return true
		}
	}
	return false
}

// HasRomanizable reports whether text has a code point Romanize would
// transform. Khmer outside the alphabet, such as independent vowels, passes
// through and does not count.
func HasRomanizable(text string) bool {
	for _, r := range text {
		if inAlphabet(r) {
			return true
		}
	}
	return false
}

// Result is the romanization of one word from a batch.
type Result struct {
	Word      string
	Romanized string
	Phonetic  string
}

// RomanizeAll romanizes words concurrently with at most limit goroutines and
// returns results in input order. limit <= 0 means no limit.
func RomanizeAll(ctx context.Context, words []string, limit int) ([]Result, error) {
	results := make([]Result, len(words))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, w := range words {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rom, phon := Romanize(w)
			results[i] = Result{Word: w, Romanized: rom, Phonetic: phon}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
