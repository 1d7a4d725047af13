package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DegradedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "product_composite_degraded_total",
		Help: "Downstream reads that fell back to a default value instead of failing the aggregate.",
	}, []string{"service"})

	DownstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "product_composite_downstream_request_duration_seconds",
		Help:    "Latency of reads issued to downstream services.",
		Buckets: prometheus.DefBuckets,
	}, []string{"service", "outcome"})

	EventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "events_consumed_total",
		Help: "Events taken from a topic, by outcome.",
	}, []string{"topic", "outcome"})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "events_published_total",
		Help: "Events written to a topic, by outcome.",
	}, []string{"topic", "outcome"})
)
