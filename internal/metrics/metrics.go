package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP API metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "khmerlex_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "khmerlex_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "khmerlex_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})
)

// Lexicon metrics.
var (
	WordsRomanized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "khmerlex_words_romanized_total",
		Help: "Words romanized through the API or batch generation",
	})

	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "khmerlex_searches_total",
		Help: "Lexicon searches by channel and outcome",
	}, []string{"channel", "outcome"})

	IndexBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "khmerlex_index_build_duration_seconds",
		Help:    "Time to load a tier and build the lexicon index",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"tier"})

	IndexEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "khmerlex_index_entries",
		Help: "Number of distinct script forms in the live index",
	})
)

// Build and enrichment metrics.
var (
	MergeEntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "khmerlex_merge_entries_total",
		Help: "Entries processed by the wordlist merge by result",
	}, []string{"result"})

	GlossBatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "khmerlex_gloss_batch_duration_seconds",
		Help:    "LLM gloss translation call duration in seconds",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
	})

	GlossEntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "khmerlex_gloss_entries_total",
		Help: "Entries seen by gloss enrichment by result",
	}, []string{"result"})
)

// Database pool metrics (gauges updated periodically).
var (
	DBPoolTotalConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "khmerlex_db_pool_total_conns",
		Help: "Total number of connections in the pool",
	})

	DBPoolIdleConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "khmerlex_db_pool_idle_conns",
		Help: "Number of idle connections in the pool",
	})

	DBPoolAcquiredConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "khmerlex_db_pool_acquired_conns",
		Help: "Number of acquired connections in the pool",
	})

	DBPoolMaxConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "khmerlex_db_pool_max_conns",
		Help: "Max connections configured for the pool",
	})
)
