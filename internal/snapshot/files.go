// Package snapshot reads and writes lexicon tier files and serves the live
// index built from them.
package snapshot

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"unicode/utf8"

	"github.com/jusunglee/khmerlex/internal/lexicon"
)

// File names inside a snapshot directory.
const (
	CoreFile     = "dictionary_core.json"
	ExtendedFile = "dictionary_extended.json"
	WordListFile = "wordlist.json"
)

// WriteTier writes entries as a compact JSON array. Absent optional fields are
// omitted and Khmer definitions are not written.
func WriteTier(path string, entries []lexicon.Entry) error {
	if entries == nil {
		entries = []lexicon.Entry{}
	}
	return writeJSON(path, entries)
}

// ReadTier reads a tier written by WriteTier. Entries without a script form
// are dropped.
func ReadTier(path string) ([]lexicon.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tier: %w", err)
	}
	var entries []lexicon.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode tier %s: %w", path, err)
	}
	valid := entries[:0]
	for _, e := range entries {
		if e.Validate() == nil {
			valid = append(valid, e)
		}
	}
	return valid, nil
}

// WriteWordList writes every script form as a JSON array, longest first (by
// character count), for greedy longest-match segmentation.
func WriteWordList(path string, entries []lexicon.Entry) error {
	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.Script
	}
	slices.SortStableFunc(words, func(a, b string) int {
		return cmp.Compare(utf8.RuneCountInString(b), utf8.RuneCountInString(a))
	})
	return writeJSON(path, words)
}

// writeJSON writes v to a temporary file next to path and renames it into
// place so readers never see a partial file.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if _, err := tmp.Write(bytes.TrimRight(buf.Bytes(), "\n")); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}
