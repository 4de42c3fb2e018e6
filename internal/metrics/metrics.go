// Package metrics exposes Prometheus instruments for ensemble runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CasesTotal counts evaluated cases by outcome status.
	CasesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dcsim_cases_total",
		Help: "Number of evaluated cases, partitioned by outcome status.",
	}, []string{"status"})

	// ProfileCacheHits counts solar profile lookups served from cache.
	ProfileCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dcsim_profile_cache_hits_total",
		Help: "Solar resource profile lookups served from the cache.",
	})

	// ProfileCacheMisses counts solar profile lookups that hit the provider.
	ProfileCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dcsim_profile_cache_misses_total",
		Help: "Solar resource profile lookups that required a provider fetch.",
	})

	// RunDuration observes wall-clock duration of complete ensemble runs.
	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dcsim_run_duration_seconds",
		Help:    "Wall-clock duration of complete ensemble runs.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	})
)
