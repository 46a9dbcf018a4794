package lexicon

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// MaxResults caps every search channel.
	MaxResults = 10

	phoneticThreshold  = 0.4
	glossPartialWeight = 0.8
)

// Match is a search hit. Higher scores rank first.
type Match struct {
	Entry Entry
	Score float64
}

// Similarity is the Dice coefficient over character bigrams. The query's
// bigrams form a set; each bigram of the candidate found in that set counts
// once per occurrence. Identical strings score 1, strings shorter than two
// characters score 0.
func Similarity(query, candidate string) float64 {
	if query == candidate {
		return 1
	}
	q := []rune(query)
	c := []rune(candidate)
	if len(q) < 2 || len(c) < 2 {
		return 0
	}

	bigrams := make(map[[2]rune]struct{}, len(q)-1)
	for i := 0; i < len(q)-1; i++ {
		bigrams[[2]rune{q[i], q[i+1]}] = struct{}{}
	}
	matches := 0
	for i := 0; i < len(c)-1; i++ {
		if _, ok := bigrams[[2]rune{c[i], c[i+1]}]; ok {
			matches++
		}
	}
	return 2 * float64(matches) / float64(len(q)+len(c)-2)
}

// PhoneticMatches scores every entry with a phonetic spelling against query and
// returns those above the threshold, best first.
func (idx *Index) PhoneticMatches(query string) []Match {
	q := NormalizePhonetic(query)
	if q == "" {
		return nil
	}
	var matches []Match
	for _, e := range idx.entries {
		if e.Phonetic == "" {
			continue
		}
		if score := Similarity(q, NormalizePhonetic(e.Phonetic)); score > phoneticThreshold {
			matches = append(matches, Match{Entry: e, Score: score})
		}
	}
	return topMatches(matches)
}

// GlossMatches ranks entries by their English gloss. An exact (case-folded)
// match scores 1; containment in either direction scores the length ratio
// scaled by 0.8.
func (idx *Index) GlossMatches(query string) []Match {
	lower := cases.Lower(language.Und)
	q := lower.String(query)
	if q == "" {
		return nil
	}
	qLen := utf8.RuneCountInString(q)

	var matches []Match
	for _, e := range idx.entries {
		if !e.HasGloss() {
			continue
		}
		g := lower.String(e.Gloss)
		var score float64
		switch {
		case g == q:
			score = 1
		case strings.Contains(g, q) || strings.Contains(q, g):
			gLen := utf8.RuneCountInString(g)
			score = float64(min(qLen, gLen)) / float64(max(qLen, gLen)) * glossPartialWeight
		default:
			continue
		}
		matches = append(matches, Match{Entry: e, Score: score})
	}
	return topMatches(matches)
}

// SearchPhonetic returns up to MaxResults entries whose phonetic spelling is
// close to query.
func (idx *Index) SearchPhonetic(query string) []Entry {
	return entriesOf(idx.PhoneticMatches(query))
}

// SearchGloss returns up to MaxResults entries whose gloss equals or overlaps
// query.
func (idx *Index) SearchGloss(query string) []Entry {
	return entriesOf(idx.GlossMatches(query))
}

func topMatches(matches []Match) []Match {
	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}
	return matches
}

func entriesOf(matches []Match) []Entry {
	return lo.Map(matches, func(m Match, _ int) Entry { return m.Entry })
}
