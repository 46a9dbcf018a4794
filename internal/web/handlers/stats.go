package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jusunglee/khmerlex/internal/db"
)

// Counter reports stored entry counts. db.Repository implements it.
type Counter interface {
	CountEntries(ctx context.Context, tier string) (int64, error)
}

type StatsHandler struct {
	lex     Lexicon
	counter Counter
	log     *slog.Logger
}

func NewStatsHandler(lex Lexicon, counter Counter, log *slog.Logger) *StatsHandler {
	return &StatsHandler{lex: lex, counter: counter, log: log}
}

type statsResponse struct {
	Indexed  int   `json:"indexed"`
	Core     int64 `json:"core"`
	Extended int64 `json:"extended"`
}

// Get handles GET /api/v1/stats: the live index size and stored tier counts.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp := statsResponse{Indexed: h.lex.Index().Len()}

	var err error
	if resp.Core, err = h.counter.CountEntries(r.Context(), db.TierCore); err == nil {
		resp.Extended, err = h.counter.CountEntries(r.Context(), db.TierExtended)
	}
	if err != nil {
		h.log.ErrorContext(r.Context(), "counting entries", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
