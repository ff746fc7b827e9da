package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendations HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "brew_recommend_latency_seconds",
		Help:    "Latency of brew recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "brew_recommend_requests_total",
		Help: "Total number of brew recommendation requests",
	})

	// How often a method group classified as a template vs an aggregate
	RecommendClassifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "brew_recommend_classifications_total",
		Help: "Recommendation classifications by type",
	}, []string{"type"})

	// Cache hits/misses on the recommendation cache
	RecommendCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "brew_recommend_cache_lookups_total",
		Help: "Recommendation cache lookups by outcome",
	}, []string{"outcome"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		RecommendClassifications,
		RecommendCacheLookups,
	)
}
