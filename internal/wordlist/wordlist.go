// Package wordlist parses the monolingual Khmer dictionary CSV (the 44k-entry
// RAC dictionary export) into records ready to be merged into the lexicon.
// Pure functions: readers in, records out.
package wordlist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jusunglee/khmerlex/internal/lexicon"
	"github.com/samber/lo"
)

// Column names in the source CSV header.
const (
	ColMain          = "t_main"
	ColSubword       = "t_subword"
	ColPronunciation = "t_pron"
	ColPOS           = "t_pos"
	ColDefinition    = "t_exp"
)

// ErrNoScriptColumn is returned when the header has neither a main nor a
// subword column.
var ErrNoScriptColumn = errors.New("wordlist: header has no t_main or t_subword column")

// Record is one usable row of the dictionary.
type Record struct {
	Script        string
	Pronunciation string
	POS           lexicon.PartOfSpeech
	DefinitionKM  string
}

// Stats counts rows seen while parsing. Skipped rows had no script form.
type Stats struct {
	Rows    int
	Parsed  int
	Skipped int
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]Record, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()

	records, stats, err := Parse(f)
	if err != nil {
		return nil, stats, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, stats, nil
}

// Parse reads a header row followed by data rows. Columns are located by
// name, so extra or reordered columns are fine. Rows without a script form
// are counted in Stats.Skipped rather than failing the parse.
func Parse(r io.Reader) ([]Record, Stats, error) {
	var stats Stats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, stats, nil
		}
		return nil, stats, fmt.Errorf("read header: %w", err)
	}
	cols := columns(header)
	if cols.main < 0 && cols.subword < 0 {
		return nil, stats, ErrNoScriptColumn
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read row %d: %w", stats.Rows+1, err)
		}
		stats.Rows++

		script := strings.TrimSpace(field(row, cols.main))
		if script == "" {
			script = strings.TrimSpace(field(row, cols.subword))
		}
		if script == "" {
			stats.Skipped++
			continue
		}

		pos, _ := lexicon.NormalizePOS(field(row, cols.pos))
		records = append(records, Record{
			Script:        script,
			Pronunciation: ExtractPronunciation(field(row, cols.pron)),
			POS:           pos,
			DefinitionKM:  strings.TrimSpace(field(row, cols.definition)),
		})
		stats.Parsed++
	}
	return records, stats, nil
}

// ExtractPronunciation strips the surrounding brackets from a pronunciation
// cell such as "[កក-កុញ]".
func ExtractPronunciation(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") && len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	return s
}

type columnIndex struct {
	main, subword, pron, pos, definition int
}

func columns(header []string) columnIndex {
	header = lo.Map(header, func(h string, _ int) string {
		return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	})
	return columnIndex{
		main:       lo.IndexOf(header, ColMain),
		subword:    lo.IndexOf(header, ColSubword),
		pron:       lo.IndexOf(header, ColPronunciation),
		pos:        lo.IndexOf(header, ColPOS),
		definition: lo.IndexOf(header, ColDefinition),
	}
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
