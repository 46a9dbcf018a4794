package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jusunglee/khmerlex/internal/lexicon"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// parseLimit reads a result cap in [1, lexicon.MaxResults], defaulting to the
// maximum.
func parseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > lexicon.MaxResults {
		return lexicon.MaxResults
	}
	return limit
}
