package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jusunglee/khmerlex/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `id,t_main,t_subword,t_pron,t_pos,t_exp
1,ក,,[ក],ន.,ព្យញ្ជនៈទី ១
2,កក,,[កក-កុញ],កិ.,"ធ្វើឲ្យ, ខាប់"
3,,កកើរ,[កក-កើ],គុ.,
4,,,[ខ],ន.,
5,  ទេ  ,,,unknown,
`

func TestParse(t *testing.T) {
	records, stats, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, Stats{Rows: 5, Parsed: 4, Skipped: 1}, stats)
	require.Len(t, records, 4)

	assert.Equal(t, Record{Script: "ក", Pronunciation: "ក", POS: lexicon.POSNoun, DefinitionKM: "ព្យញ្ជនៈទី ១"}, records[0])
	assert.Equal(t, "កក-កុញ", records[1].Pronunciation)
	assert.Equal(t, lexicon.POSVerb, records[1].POS)
	assert.Equal(t, "ធ្វើឲ្យ, ខាប់", records[1].DefinitionKM)

	assert.Equal(t, "កកើរ", records[2].Script, "falls back to the subword column")
	assert.Equal(t, lexicon.POSAdj, records[2].POS)

	assert.Equal(t, "ទេ", records[3].Script)
	assert.Empty(t, records[3].Pronunciation)
	assert.Empty(t, records[3].POS)
}

func TestParseReorderedColumns(t *testing.T) {
	in := "\ufefft_pos,t_pron,t_main\nន.,[ទឹក],ទឹក\n"
	records, stats, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Parsed)
	require.Len(t, records, 1)
	assert.Equal(t, "ទឹក", records[0].Script)
	assert.Equal(t, "ទឹក", records[0].Pronunciation)
}

func TestParseEmpty(t *testing.T) {
	records, stats, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Zero(t, stats)
}

func TestParseMissingScriptColumn(t *testing.T) {
	_, _, err := Parse(strings.NewReader("a,b\n1,2\n"))
	assert.ErrorIs(t, err, ErrNoScriptColumn)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	records, stats, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 4)
	assert.Equal(t, 1, stats.Skipped)

	_, _, err = ParseFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestExtractPronunciation(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"[ក]", "ក"},
		{" [កក-កុញ] ", "កក-កុញ"},
		{"កក", "កក"},
		{"[]", ""},
		{"", ""},
		{"[ក", "[ក"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractPronunciation(tt.in), "ExtractPronunciation(%q)", tt.in)
	}
}
