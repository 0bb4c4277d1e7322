package metrics

import "github.com/prometheus/client_golang/prometheus"

// Workbench Prometheus metrics.
var (
	TemplateGenerationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "weaviq",
			Name:      "template_generations_total",
			Help:      "Total number of generated query templates",
		},
		[]string{"shape", "schema"}, // schema: "aware" / "static"
	)

	QueryExecutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "weaviq",
			Name:      "query_executions_total",
			Help:      "Total number of GraphQL queries proxied to Weaviate",
		},
		[]string{"status"},
	)

	WeaviateRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "weaviq",
			Name:      "weaviate_requests_total",
			Help:      "Total number of requests to the Weaviate instance",
		},
		[]string{"endpoint", "status"},
	)

	WeaviateRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "weaviq",
			Name:      "weaviate_request_duration_seconds",
			Help:      "Weaviate request duration in seconds",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	SchemaCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "weaviq",
			Name:      "schema_cache_total",
			Help:      "Schema cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	EmbeddingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "weaviq",
			Name:      "embedding_requests_total",
			Help:      "Total number of concept embedding requests",
		},
		[]string{"model", "status"},
	)
)

var registered bool

// RegisterMetrics registers the workbench metrics. Must be called once from main.
func RegisterMetrics() {
	if registered {
		return
	}
	prometheus.MustRegister(
		TemplateGenerationsTotal,
		QueryExecutionsTotal,
		WeaviateRequestsTotal,
		WeaviateRequestDuration,
		SchemaCacheTotal,
		EmbeddingRequestsTotal,
	)
	registered = true
}
