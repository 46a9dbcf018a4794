package vocabulary

import (
	"strings"
	"testing"

	"github.com/jusunglee/khmerlex/internal/transliteration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularyIsWellFormed(t *testing.T) {
	all := All()
	require.Len(t, all, len(core)+len(extended))

	seen := make(map[string]bool, len(all))
	for _, e := range all {
		assert.NotEmpty(t, e.Script)
		assert.False(t, seen[e.Script], "duplicate script %q", e.Script)
		seen[e.Script] = true
		assert.True(t, e.HasGloss(), "%q has no gloss", e.Script)
		assert.True(t, e.POS.Valid(), "%q has POS %q", e.Script, e.POS)
		assert.True(t, e.Frequency >= 1 && e.Frequency <= 100, "%q frequency %d", e.Script, e.Frequency)
		assert.Empty(t, e.Romanized, "seed entries are romanized at build time")
	}
}

func TestCoreReturnsCopy(t *testing.T) {
	a := Core()
	a[0].Gloss = "changed"
	assert.NotEqual(t, "changed", Core()[0].Gloss)
}

// Words made only of letters and marks romanize to pure Latin, with one
// hyphen between each pair of clusters. Words holding pass-through Khmer
// (independent vowels, ៗ) keep those characters and are checked for
// determinism only.
func TestVocabularyRomanizes(t *testing.T) {
	for _, e := range All() {
		rom, phon := transliteration.Romanize(e.Script)
		again, _ := transliteration.Romanize(e.Script)
		assert.Equal(t, rom, again, e.Script)
		assert.NotEmpty(t, rom, e.Script)

		if transliteration.ContainsKhmer(rom) {
			continue
		}
		assert.False(t, transliteration.ContainsKhmer(phon), "%q phonetic %q", e.Script, phon)
		assert.Equal(t, phon, strings.ToUpper(phon), e.Script)
		clusters := transliteration.Segment(e.Script)
		assert.Equal(t, len(clusters)-1, strings.Count(rom, "-"), "%q romanized %q", e.Script, rom)
		assert.Equal(t, len(clusters)-1, strings.Count(phon, "-"), "%q phonetic %q", e.Script, phon)
	}
}

func TestVocabularyRomanizationSamples(t *testing.T) {
	want := map[string][2]string{
		"ទូរស័ព្ទ":   {"tū-rsptô", "TOO-RSPTO"},
		"ពណ៌":       {"pnâ", "PNA"},
		"សប្ដាហ៍":    {"sbdā-hâ", "SBDAH-HA"},
		"ទឹក":       {"tœ̆-kâ", "TEU-KA"},
		"នាទី":      {"nā-tī", "NAH-TEE"},
	}
	scripts := make(map[string]bool)
	for _, e := range All() {
		scripts[e.Script] = true
	}
	for script, forms := range want {
		require.True(t, scripts[script], "%q missing from the vocabulary", script)
		rom, phon := transliteration.Romanize(script)
		assert.Equal(t, forms[0], rom, script)
		assert.Equal(t, forms[1], phon, script)
	}
}
