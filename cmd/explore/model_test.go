package main

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jusunglee/khmerlex/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var coreEntries = []lexicon.Entry{
	{Script: "ទេ", Gloss: "no", POS: lexicon.POSPart, Romanized: "té", Phonetic: "TAY", Frequency: 100},
	{Script: "ទឹក", Gloss: "water", POS: lexicon.POSNoun, Romanized: "tœ̆-kâ", Phonetic: "TEU-KA", Frequency: 95},
}

type fakeSource struct {
	idx      *lexicon.Index
	extended []lexicon.Entry
	err      error
}

func (f *fakeSource) Index() *lexicon.Index { return f.idx }

func (f *fakeSource) EnsureExtended(context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.idx = lexicon.Build(append(f.idx.Entries(), f.extended...))
	return nil
}

func newSource() *fakeSource {
	return &fakeSource{
		idx: lexicon.Build(coreEntries),
		extended: []lexicon.Entry{
			{Script: "នាទី", Gloss: "minute", Romanized: "nā-tī", Phonetic: "NAH-TEE", Frequency: 80},
			{Script: "ទឹកដោះគោ", Gloss: "milk", Romanized: "tœ̆k-daôh-kô", Phonetic: "TEUK-DAOH-KO", Frequency: 60},
		},
	}
}

func typeText(t *testing.T, m model, s string) model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(model)
}

func TestSearchModes(t *testing.T) {
	idx := lexicon.Build(coreEntries)

	assert.Nil(t, search(idx, "", modeAll))

	hits := search(idx, "ទេ", modeAll)
	require.NotEmpty(t, hits)
	assert.Equal(t, "exact", hits[0].channel)
	assert.Equal(t, "ទេ", hits[0].entry.Script)

	hits = search(idx, "TAY", modeGloss)
	assert.Empty(t, hits)

	hits = search(idx, "TAY", modePhonetic)
	require.Len(t, hits, 1)
	assert.Equal(t, "phonetic", hits[0].channel)

	hits = search(idx, "water", modeAll)
	require.Len(t, hits, 1, "each script listed once")
	assert.Equal(t, "ទឹក", hits[0].entry.Script)

	hits = search(idx, "te", modeSuggest)
	require.NotEmpty(t, hits)
	assert.Equal(t, "suggest", hits[0].channel)
	assert.Equal(t, "ទេ", hits[0].entry.Script)
}

func TestModelTyping(t *testing.T) {
	src := newSource()
	m := newModel(src)
	assert.Contains(t, m.status, "2 core entries")
	assert.NotNil(t, m.Init())

	next, _ := m.Update(extendedLoadedMsg{err: src.EnsureExtended(context.Background())})
	m = next.(model)
	assert.Equal(t, "4 entries", m.status)

	m = typeText(t, m, "milk")
	require.Len(t, m.hits, 1)
	assert.Equal(t, "ទឹកដោះគោ", m.hits[0].entry.Script)
	assert.Empty(t, m.romanized)
	assert.Contains(t, m.View(), "ទឹកដោះគោ")
	assert.Contains(t, m.View(), "milk")
}

func TestModelRomanizesKhmerInput(t *testing.T) {
	m := typeText(t, newModel(newSource()), "ទេ")
	assert.Equal(t, "té", m.romanized)
	assert.Equal(t, "TAY", m.phonetic)
	assert.Contains(t, m.View(), "té  TAY")
}

func TestModelModeCycling(t *testing.T) {
	m := newModel(newSource())
	m = typeText(t, m, "water")
	require.NotEmpty(t, m.hits)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)
	assert.Equal(t, modePhonetic, m.mode)
	assert.Empty(t, m.hits)
	assert.Contains(t, m.View(), "no matches")
	assert.Contains(t, m.View(), "[phonetic]")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)
	assert.Equal(t, modeGloss, m.mode)
	require.Len(t, m.hits, 1)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(model).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(model).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, modeSuggest, next.(model).mode, "shift+tab wraps around")
}

func TestModelExtendedUnavailable(t *testing.T) {
	src := newSource()
	src.err = errors.New("missing file")
	next, _ := newModel(src).Update(extendedLoadedMsg{err: src.EnsureExtended(context.Background())})
	assert.Contains(t, next.(model).status, "extended tier unavailable")
}

func TestModelQuit(t *testing.T) {
	_, cmd := newModel(newSource()).Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
