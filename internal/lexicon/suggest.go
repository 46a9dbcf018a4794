package lexicon

import (
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const suggestThreshold = 0.8

// Suggest ranks entries by Jaro-Winkler similarity between query and their
// romanized form, ignoring case, diacritics and separators. At most limit
// matches are returned, never more than MaxResults.
func (idx *Index) Suggest(query string, limit int) []Match {
	if limit <= 0 {
		limit = MaxResults
	}
	q := foldRomanized(query)
	if q == "" {
		return nil
	}

	var matches []Match
	for _, e := range idx.entries {
		if e.Romanized == "" {
			continue
		}
		score := matchr.JaroWinkler(q, foldRomanized(e.Romanized), false)
		if score >= suggestThreshold {
			matches = append(matches, Match{Entry: e, Score: score})
		}
	}
	matches = topMatches(matches)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// foldRomanized lower-cases s, strips combining marks and drops separators.
func foldRomanized(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}
	return NormalizePhonetic(strings.ReplaceAll(folded, "'", ""))
}
