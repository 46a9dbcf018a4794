package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jusunglee/khmerlex/internal/lexicon"
	"github.com/jusunglee/khmerlex/internal/metrics"
	"github.com/jusunglee/khmerlex/internal/transliteration"
	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

// Lexicon is the live index the handlers read from. *snapshot.Store
// implements it.
type Lexicon interface {
	Index() *lexicon.Index
	EnsureExtended(ctx context.Context) error
}

// maxRomanizeWords caps repeated word parameters on one romanize request.
const maxRomanizeWords = 50

type LexiconHandler struct {
	lex Lexicon
	log *slog.Logger
}

func NewLexiconHandler(lex Lexicon, log *slog.Logger) *LexiconHandler {
	return &LexiconHandler{lex: lex, log: log}
}

type romanizeResponse struct {
	Word      string `json:"word"`
	Romanized string `json:"romanized"`
	Phonetic  string `json:"phonetic"`
}

type matchResponse struct {
	lexicon.Entry
	Score float64 `json:"score"`
}

type searchResponse struct {
	Query   string          `json:"query"`
	Channel string          `json:"channel"`
	Data    []matchResponse `json:"data"`
}

// Romanize handles GET /api/v1/romanize?word=...; word may repeat.
func (h *LexiconHandler) Romanize(w http.ResponseWriter, r *http.Request) {
	words := lo.Filter(r.URL.Query()["word"], func(s string, _ int) bool {
		return strings.TrimSpace(s) != ""
	})
	if len(words) == 0 {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}
	if len(words) > maxRomanizeWords {
		writeError(w, http.StatusBadRequest, "too many words")
		return
	}

	results, err := transliteration.RomanizeAll(r.Context(), words, 4)
	if err != nil {
		h.log.WarnContext(r.Context(), "romanize aborted", "error", err)
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
		return
	}
	metrics.WordsRomanized.Add(float64(len(results)))

	data := lo.Map(results, func(res transliteration.Result, _ int) romanizeResponse {
		return romanizeResponse{Word: res.Word, Romanized: res.Romanized, Phonetic: res.Phonetic}
	})
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// Entry handles GET /api/v1/entries/{script}. The extended tier is loaded
// only when the core tier has no such entry.
func (h *LexiconHandler) Entry(w http.ResponseWriter, r *http.Request) {
	script := norm.NFC.String(strings.TrimSpace(r.PathValue("script")))
	if script == "" {
		writeError(w, http.StatusBadRequest, "script is required")
		return
	}

	entry, ok := h.lex.Index().Lookup(script)
	if !ok {
		h.ensureExtended(r.Context())
		entry, ok = h.lex.Index().Lookup(script)
	}
	if !ok {
		metrics.SearchesTotal.WithLabelValues("exact", "miss").Inc()
		writeError(w, http.StatusNotFound, "entry not found")
		return
	}

	metrics.SearchesTotal.WithLabelValues("exact", "hit").Inc()
	writeJSON(w, http.StatusOK, entry)
}

// Search handles GET /api/v1/search/{channel}?q=...&limit=... for the
// phonetic, gloss and suggest channels.
func (h *LexiconHandler) Search(w http.ResponseWriter, r *http.Request) {
	channel := r.PathValue("channel")
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	limit := parseLimit(r.URL.Query().Get("limit"))

	var search func(idx *lexicon.Index) []lexicon.Match
	switch channel {
	case "phonetic":
		search = func(idx *lexicon.Index) []lexicon.Match { return idx.PhoneticMatches(q) }
	case "gloss":
		search = func(idx *lexicon.Index) []lexicon.Match { return idx.GlossMatches(q) }
	case "suggest":
		search = func(idx *lexicon.Index) []lexicon.Match { return idx.Suggest(q, limit) }
	default:
		writeError(w, http.StatusNotFound, "unknown search channel")
		return
	}
	if q == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}

	h.ensureExtended(r.Context())
	matches := search(h.lex.Index())
	if len(matches) > limit {
		matches = matches[:limit]
	}

	outcome := "hit"
	if len(matches) == 0 {
		outcome = "miss"
	}
	metrics.SearchesTotal.WithLabelValues(channel, outcome).Inc()

	writeJSON(w, http.StatusOK, searchResponse{
		Query:   q,
		Channel: channel,
		Data: lo.Map(matches, func(m lexicon.Match, _ int) matchResponse {
			return matchResponse{Entry: m.Entry, Score: m.Score}
		}),
	})
}

// ensureExtended widens the index to the extended tier. Failure leaves the
// core index in place.
func (h *LexiconHandler) ensureExtended(ctx context.Context) {
	if err := h.lex.EnsureExtended(ctx); err != nil {
		h.log.DebugContext(ctx, "serving core tier only", "error", err)
	}
}
