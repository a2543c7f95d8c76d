// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CollectionWrites counts whole-document writes by collection and result.
	CollectionWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cylaba",
		Name:      "collection_writes_total",
		Help:      "Whole-document collection writes.",
	}, []string{"collection", "result"})

	// FailOpenReads counts reads that failed and were served as an empty
	// collection.
	FailOpenReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cylaba",
		Name:      "collection_failopen_reads_total",
		Help:      "Collection reads that failed and returned an empty collection.",
	}, []string{"collection"})

	// HTTPRequests counts handled requests by method, route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cylaba",
		Name:      "http_requests_total",
		Help:      "HTTP requests handled.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by method and route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cylaba",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
