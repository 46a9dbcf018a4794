package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jusunglee/khmerlex/internal/health"
	"github.com/jusunglee/khmerlex/internal/web/handlers"
	"github.com/jusunglee/khmerlex/internal/web/middleware"
)

type Router struct {
	lex     handlers.Lexicon
	counter handlers.Counter
	log     *slog.Logger
	origins []string
	limiter *middleware.IPRateLimiter
}

// NewRouter serves lex. counter may be nil, in which case /api/v1/stats is
// not registered. An empty origins list allows any CORS origin.
func NewRouter(lex handlers.Lexicon, counter handlers.Counter, log *slog.Logger, origins []string) *Router {
	return &Router{
		lex:     lex,
		counter: counter,
		log:     log,
		origins: origins,
		limiter: middleware.NewRateLimiter(120, time.Minute),
	}
}

// Close stops the rate limiter's cleanup.
func (r *Router) Close() {
	r.limiter.Stop()
}

func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	lexiconHandler := handlers.NewLexiconHandler(r.lex, r.log)

	api := func(h http.HandlerFunc, cache string) http.Handler {
		return middleware.Chain(h,
			middleware.RequestID(),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(r.limiter),
			middleware.CacheControl(cache),
		)
	}

	// Romanization is a pure function of the word.
	mux.Handle("GET /api/v1/romanize", api(lexiconHandler.Romanize, "public, max-age=86400"))
	mux.Handle("GET /api/v1/entries/{script}", api(lexiconHandler.Entry, "public, s-maxage=60, max-age=0"))
	mux.Handle("GET /api/v1/search/{channel}", api(lexiconHandler.Search, "public, s-maxage=60, max-age=0"))

	if r.counter != nil {
		statsHandler := handlers.NewStatsHandler(r.lex, r.counter, r.log)
		mux.Handle("GET /api/v1/stats", api(statsHandler.Get, "no-store"))
	}

	mux.Handle("GET /health", middleware.Chain(
		health.Handler(r.lex),
		middleware.CacheControl("no-store"),
	))

	return middleware.CORS(r.origins)(mux)
}
