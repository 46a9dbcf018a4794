package transliteration

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRomanize(t *testing.T) {
	tests := []struct {
		input        string
		wantRom      string
		wantPhonetic string
	}{
		{"ក", "kâ", "KA"},
		{"ទេ", "té", "TAY"},
		{"នាទី", "nā-tī", "NAH-TEE"},
		{"ស្ត", "stâ", "STA"},
		{"ស្តាប់", "stā-bâ", "STAH-BA"},
		{"ខ្ញុំ", "khñŏm", "KHNYOM"},
		{"ញ៉ាំ", "ñām", "NYAHM"},
		{"ប្រាំ", "brām", "BRAHM"},
		{"សួស្តី", "suă-stei", "SUA-STAY"},
		{"អរគុណ", "'rkŭ-nâ", "RKU-NA"},
		{"ទឹក", "tœ̆-kâ", "TEU-KA"},
		{"ការ", "kā-rô", "KAH-RO"},
		{"ទូរស័ព្ទ", "tū-rsptô", "TOO-RSPTO"},
		{"ពណ៌", "pnâ", "PNA"},
		{"សប្ដាហ៍", "sbdā-hâ", "SBDAH-HA"},
	}
	for _, tt := range tests {
		rom, phon := Romanize(tt.input)
		if rom != tt.wantRom || phon != tt.wantPhonetic {
			t.Errorf("Romanize(%q) = (%q, %q), want (%q, %q)", tt.input, rom, phon, tt.wantRom, tt.wantPhonetic)
		}
	}
}

func TestRomanizeBareConsonantsMerge(t *testing.T) {
	rom, phon := Romanize("មក")
	assert.Equal(t, "mkâ", rom)
	assert.Equal(t, "MKA", phon)
}

func TestRomanizeEmpty(t *testing.T) {
	rom, phon := Romanize("")
	assert.Empty(t, rom)
	assert.Empty(t, phon)
}

func TestRomanizePassesThroughLiterals(t *testing.T) {
	rom, phon := Romanize("ក 1!")
	assert.Equal(t, "kâ 1!", rom)
	assert.Equal(t, "KA 1!", phon)

	rom, phon = Romanize("ទេ ទេ")
	assert.Equal(t, "té té", rom)
	assert.Equal(t, "TAY TAY", phon)

	rom, phon = Romanize("hello")
	assert.Equal(t, "hello", rom)
	assert.Equal(t, "hello", phon)
}

func TestRomanizeDropsUnlistedMarks(t *testing.T) {
	tests := []struct {
		input   string
		wantRom string
	}{
		{"កុំព្យូទ័រ", "kŏm-pyū-trô"},
		{"ព្រះច័ន្ទ", "prôh-chntô"},
		{"ពណ៌", "pnâ"},
		{"សប្ដាហ៍", "sbdā-hâ"},
	}
	for _, tt := range tests {
		rom, phon := Romanize(tt.input)
		assert.Equal(t, tt.wantRom, rom, tt.input)
		assert.False(t, ContainsKhmer(rom), "%q leaked a Khmer mark: %q", tt.input, rom)
		assert.False(t, ContainsKhmer(phon), "%q leaked a Khmer mark: %q", tt.input, phon)
		assert.Equal(t, strings.Count(rom, "-"), len(Segment(tt.input))-1, tt.input)
	}

	// A mark on its own still yields no Latin output.
	rom, phon := Romanize("៍")
	assert.Empty(t, rom)
	assert.Empty(t, phon)
}

func TestRomanizeKeepsOtherLiteralsVerbatim(t *testing.T) {
	decomposed := "e\u0301"
	rom, phon := Romanize("ទេ " + decomposed)
	assert.Equal(t, "té "+decomposed, rom)
	assert.Equal(t, "TAY "+decomposed, phon)

	rom, _ = Romanize("ក។")
	assert.Equal(t, "kâ។", rom, "khan is punctuation, not a mark")
}

func TestRegisterSignOverridesSeries(t *testing.T) {
	// ā reads the same in both series.
	rom, _ := Romanize("ម៉ា")
	assert.Equal(t, "mā", rom)

	rom, _ = Romanize("ម៉ុ")
	assert.Equal(t, "mŏ", rom, "muusikatoan selects the series-1 form")

	rom, _ = Romanize("ស៊ុ")
	assert.Equal(t, "sŭ", rom, "triisap selects the series-2 form")
}

func TestSubscriptDoesNotSetSeries(t *testing.T) {
	// ស (series 1) with subscript ន (series 2): the base consonant wins.
	series, explicit := Segment("ស្នុ")[0].Resolve()
	assert.Equal(t, Series1, series)
	assert.True(t, explicit)
}

func TestSegment(t *testing.T) {
	clusters := Segment("សួស្តី")
	require.Len(t, clusters, 2)

	assert.Len(t, clusters[0], 2)
	assert.Equal(t, KindConsonant, clusters[0][0].Kind)
	assert.Equal(t, KindVowel, clusters[0][1].Kind)

	second := clusters[1]
	require.Len(t, second, 4)
	assert.Equal(t, KindConsonant, second[0].Kind)
	assert.Equal(t, KindSign, second[1].Kind)
	assert.Equal(t, ClassSubscriptMarker, second[1].Char.Class)
	assert.Equal(t, KindSubscript, second[2].Kind)
	assert.Equal(t, 'ត', second[2].Char.Rune)
	assert.Equal(t, KindVowel, second[3].Kind)
}

func TestSegmentSkipsOtherCharacters(t *testing.T) {
	clusters := Segment("ក, ខ")
	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0], 2)
}

func TestSegmentTrailingMarker(t *testing.T) {
	clusters := Segment("ក្")
	require.Len(t, clusters, 1)
	require.Len(t, clusters[0], 2)
	assert.Equal(t, KindSign, clusters[0][1].Kind)

	rom, phon := Romanize("ក្")
	assert.Equal(t, "kâ", rom)
	assert.Equal(t, "KA", phon)
}

func TestSegmentLeadingVowel(t *testing.T) {
	clusters := Segment("ាក")
	require.Len(t, clusters, 2)
	rom, phon := Romanize("ាក")
	assert.Equal(t, "ā-kâ", rom)
	assert.Equal(t, "AH-KA", phon)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want Class
		ok   bool
	}{
		{'ក', ClassConsonant, true},
		{'ា', ClassVowel, true},
		{'ំ', ClassSign, true},
		{'៉', ClassSign, true},
		{'្', ClassSubscriptMarker, true},
		{' ', ClassOther, false},
		{'a', ClassOther, false},
		{'១', ClassOther, false},
	}
	for _, tt := range tests {
		c, ok := Classify(tt.r)
		if c.Class != tt.want || ok != tt.ok {
			t.Errorf("Classify(%q) = (%v, %v), want (%v, %v)", tt.r, c.Class, ok, tt.want, tt.ok)
		}
	}

	c, _ := Classify('គ')
	assert.Equal(t, Series2, c.Consonant.Series)
	assert.Equal(t, "k", c.Consonant.Initial)
}

func TestKhmerDetection(t *testing.T) {
	assert.True(t, ContainsKhmer("abc ក"))
	assert.False(t, ContainsKhmer("abc"))

	assert.True(t, HasRomanizable("kâ-ក"))
	assert.False(t, HasRomanizable("ឥ-lœ̆v"), "independent vowels pass through")
	assert.False(t, HasRomanizable("té ៗ"))
}

func TestRomanizeAll(t *testing.T) {
	words := []string{"ក", "ទេ", "នាទី", "ខ្ញុំ", "hello"}
	results, err := RomanizeAll(context.Background(), words, 2)
	require.NoError(t, err)
	require.Len(t, results, len(words))

	for i, w := range words {
		rom, phon := Romanize(w)
		assert.Equal(t, w, results[i].Word)
		assert.Equal(t, rom, results[i].Romanized)
		assert.Equal(t, phon, results[i].Phonetic)
	}
}

func TestRomanizeAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RomanizeAll(ctx, []string{"ក"}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
