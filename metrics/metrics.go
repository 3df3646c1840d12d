package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tourgate_cache_hits_total",
		Help: "Cache hits by key family.",
	}, []string{"family"})

	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tourgate_cache_misses_total",
		Help: "Cache misses by key family.",
	}, []string{"family"})

	upstreamCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tourgate_upstream_requests_total",
		Help: "Upstream REST calls by service and outcome.",
	}, []string{"service", "outcome"})
)

// keyFamily collapses "tour:42" and "tours:category:city" into "tour" and
// "tours" so the label set stays bounded.
func keyFamily(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}

func CacheHit(key string)  { cacheHits.WithLabelValues(keyFamily(key)).Inc() }
func CacheMiss(key string) { cacheMisses.WithLabelValues(keyFamily(key)).Inc() }

// UpstreamCall records one upstream request outcome ("ok", "timeout",
// "unreachable", "not_found", "error").
func UpstreamCall(service, outcome string) {
	upstreamCalls.WithLabelValues(service, outcome).Inc()
}
