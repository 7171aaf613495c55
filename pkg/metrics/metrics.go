package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Chamadas ao Graph API por endpoint e resultado (ok, credential, upstream, transport)
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meta_upstream_requests_total",
			Help: "Total number of Meta Graph API calls by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meta_upstream_request_duration_seconds",
			Help:    "Duration of Meta Graph API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	UpstreamRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meta_upstream_retries_total",
			Help: "Total number of retried Meta Graph API calls",
		},
		[]string{"endpoint"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "meta_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Resultado por conta em cada agregação (ok, failed, empty, credential)
	AggregationAccounts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insights_aggregation_accounts_total",
			Help: "Accounts processed by the ad set aggregation, by outcome",
		},
		[]string{"outcome"},
	)

	AggregationRecords = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "insights_aggregation_records",
			Help:    "Number of ad set records returned per aggregation run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	CredentialHealthy = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "meta_credential_healthy",
			Help: "1 when the last Meta credential check succeeded",
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method and status code",
		},
		[]string{"method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)
