// Package health reports whether the lexicon index is ready to serve.
package health

import (
	"encoding/json"
	"net/http"

	"github.com/jusunglee/khmerlex/internal/lexicon"
)

// Source exposes the live index.
type Source interface {
	Index() *lexicon.Index
}

type status struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
}

// Handler answers GET /health. An empty index reports 503 so load balancers
// hold traffic until the core tier is loaded.
func Handler(src Source) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := src.Index().Len()
		code, s := http.StatusOK, "ok"
		if n == 0 {
			code, s = http.StatusServiceUnavailable, "loading"
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(status{Status: s, Entries: n})
	})
}
