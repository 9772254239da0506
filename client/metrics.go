package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "polly_client",
			Name:      "requests_total",
			Help:      "Polly-API calls by operation and outcome (ok or error kind).",
		},
		[]string{"operation", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "polly_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of Polly-API calls, validation included.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)
