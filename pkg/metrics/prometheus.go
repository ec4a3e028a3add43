package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	QueriesProcessed        prometheus.Counter
	RecommendationsReturned prometheus.Counter
	ModelFallbacks          prometheus.Counter
	QueryTime               prometheus.Histogram
	ErrorsCount             *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		QueriesProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_processed_total",
			Help:      "The total number of recommendation queries processed",
		}),
		RecommendationsReturned: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_returned_total",
			Help:      "The total number of ranked matches returned to callers",
		}),
		ModelFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_fallbacks_total",
			Help:      "The total number of external model calls replaced by local fallback text",
		}),
		QueryTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_processing_time_seconds",
			Help:      "Time taken to interpret, filter, score and format a query",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
