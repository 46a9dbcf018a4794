package lexicon

import (
	"strings"
	"unicode"
)

// Index is an immutable lookup structure over a snapshot of entries. Build a new
// one to reflect changes; never mutate an Index that is being read.
type Index struct {
	entries  []Entry
	byScript map[string]int
	phonetic map[string][]int
}

// Build indexes entries in the order given. When a script form repeats, the
// later entry replaces the earlier one but keeps its position. Phonetic buckets
// are filled from the surviving entries only, so a replaced entry's phonetic
// key is not indexed; buckets never point at data Lookup would not return.
func Build(entries []Entry) *Index {
	idx := &Index{
		entries:  make([]Entry, 0, len(entries)),
		byScript: make(map[string]int, len(entries)),
		phonetic: make(map[string][]int),
	}
	for _, e := range entries {
		if pos, ok := idx.byScript[e.Script]; ok {
			idx.entries[pos] = e
			continue
		}
		idx.byScript[e.Script] = len(idx.entries)
		idx.entries = append(idx.entries, e)
	}
	for i, e := range idx.entries {
		if e.Phonetic == "" {
			continue
		}
		key := NormalizePhonetic(e.Phonetic)
		idx.phonetic[key] = append(idx.phonetic[key], i)
	}
	return idx
}

// Lookup returns the entry for an exact script form.
func (idx *Index) Lookup(script string) (Entry, bool) {
	pos, ok := idx.byScript[script]
	if !ok {
		return Entry{}, false
	}
	return idx.entries[pos], true
}

// LookupPhonetic returns entries whose normalized phonetic spelling equals the
// normalized query, in index order.
func (idx *Index) LookupPhonetic(query string) []Entry {
	positions := idx.phonetic[NormalizePhonetic(query)]
	out := make([]Entry, 0, len(positions))
	for _, pos := range positions {
		out = append(out, idx.entries[pos])
	}
	return out
}

// Len returns the number of distinct script forms.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Entries returns a copy of the indexed entries in index order.
func (idx *Index) Entries() []Entry {
	out := make([]Entry, len(idx.entries))
	copy(out, idx.entries)
	return out
}

// NormalizePhonetic lower-cases s and drops hyphens and whitespace. Index keys
// and search queries go through the same function.
func NormalizePhonetic(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}
