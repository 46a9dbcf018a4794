package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/khmerlex/internal/lexicon"
	"github.com/jusunglee/khmerlex/internal/transliteration"
	"golang.org/x/text/unicode/norm"
)

type lexiconSource interface {
	Index() *lexicon.Index
	EnsureExtended(ctx context.Context) error
}

type mode int

const (
	modeAll mode = iota
	modePhonetic
	modeGloss
	modeSuggest
	modeCount
)

var modeNames = []string{"all", "phonetic", "gloss", "suggest"}

func (m mode) String() string { return modeNames[m] }

// maxHits caps the combined list in modeAll.
const maxHits = 15

type hit struct {
	channel string
	entry   lexicon.Entry
	score   float64
}

type extendedLoadedMsg struct{ err error }

type model struct {
	lex       lexiconSource
	input     textinput.Model
	mode      mode
	hits      []hit
	romanized string
	phonetic  string
	status    string
	width     int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	activeModeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	scriptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	glossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

func newModel(lex lexiconSource) model {
	ti := textinput.New()
	ti.Placeholder = "ទឹក, TEU-KA or water"
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40

	return model{
		lex:    lex,
		input:  ti,
		status: fmt.Sprintf("%d core entries, loading extended tier...", lex.Index().Len()),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, loadExtended(m.lex))
}

func loadExtended(lex lexiconSource) tea.Cmd {
	return func() tea.Msg {
		return extendedLoadedMsg{err: lex.EnsureExtended(context.Background())}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.mode = (m.mode + 1) % modeCount
			m.refresh()
			return m, nil
		case tea.KeyShiftTab:
			m.mode = (m.mode + modeCount - 1) % modeCount
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case extendedLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("%d entries (extended tier unavailable)", m.lex.Index().Len())
		} else {
			m.status = fmt.Sprintf("%d entries", m.lex.Index().Len())
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

func (m *model) refresh() {
	q := strings.TrimSpace(m.input.Value())
	m.hits = search(m.lex.Index(), q, m.mode)
	m.romanized, m.phonetic = "", ""
	if transliteration.ContainsKhmer(q) {
		m.romanized, m.phonetic = transliteration.Romanize(q)
	}
}

// search runs q through the channels selected by md. In modeAll an exact
// script match comes first and later channels skip entries already listed.
func search(idx *lexicon.Index, q string, md mode) []hit {
	if q == "" {
		return nil
	}

	collect := func(channel string, matches []lexicon.Match) []hit {
		out := make([]hit, 0, len(matches))
		for _, mt := range matches {
			out = append(out, hit{channel: channel, entry: mt.Entry, score: mt.Score})
		}
		return out
	}

	switch md {
	case modePhonetic:
		return collect("phonetic", idx.PhoneticMatches(q))
	case modeGloss:
		return collect("gloss", idx.GlossMatches(q))
	case modeSuggest:
		return collect("suggest", idx.Suggest(q, 0))
	}

	var all []hit
	if e, ok := idx.Lookup(norm.NFC.String(q)); ok {
		all = append(all, hit{channel: "exact", entry: e, score: 1})
	}
	all = append(all, collect("phonetic", idx.PhoneticMatches(q))...)
	all = append(all, collect("gloss", idx.GlossMatches(q))...)
	all = append(all, collect("suggest", idx.Suggest(q, 0))...)

	seen := make(map[string]bool, len(all))
	out := all[:0]
	for _, h := range all {
		if seen[h.entry.Script] {
			continue
		}
		seen[h.entry.Script] = true
		out = append(out, h)
		if len(out) == maxHits {
			break
		}
	}
	return out
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("khmerlex explorer"))
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n\n")

	for i := range modeCount {
		name := " " + i.String() + " "
		if i == m.mode {
			s.WriteString(activeModeStyle.Render("[" + i.String() + "]"))
		} else {
			s.WriteString(modeStyle.Render(name))
		}
	}
	s.WriteString("\n\n")

	if m.romanized != "" {
		s.WriteString(boxStyle.Render(fmt.Sprintf("%s  %s", m.romanized, m.phonetic)))
		s.WriteString("\n\n")
	}

	switch {
	case strings.TrimSpace(m.input.Value()) == "":
	case len(m.hits) == 0:
		s.WriteString(subtleStyle.Render("no matches"))
		s.WriteString("\n")
	default:
		for _, h := range m.hits {
			s.WriteString(renderHit(h))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(subtleStyle.Render(m.status + " • tab: mode • esc: quit"))
	return s.String()
}

func renderHit(h hit) string {
	e := h.entry
	parts := []string{scriptStyle.Render(e.Script)}
	if e.Romanized != "" {
		parts = append(parts, e.Romanized)
	}
	if e.Phonetic != "" {
		parts = append(parts, subtleStyle.Render(e.Phonetic))
	}
	if e.Gloss != "" {
		gloss := e.Gloss
		if e.POS != "" {
			gloss += " (" + string(e.POS) + ")"
		}
		parts = append(parts, glossStyle.Render(gloss))
	}
	parts = append(parts, subtleStyle.Render(fmt.Sprintf("%s %.2f", h.channel, h.score)))
	return strings.Join(parts, "  ")
}
