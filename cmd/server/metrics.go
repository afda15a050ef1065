package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the text service.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	TokensPerCall   prometheus.Histogram
	DictionarySize  prometheus.Gauge
}

// NewMetrics creates and registers all collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kotext_requests_total",
				Help: "Total requests by endpoint and status.",
			},
			[]string{"endpoint", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kotext_request_duration_seconds",
				Help:    "Request latency in seconds.",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"endpoint"},
		),
		TokensPerCall: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "kotext_tokens_per_call",
				Help:    "Tokens produced per tokenize call.",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
			},
		),
		DictionarySize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "kotext_dictionary_words",
				Help: "Distinct words currently in the dictionary.",
			},
		),
	}

	prometheus.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.TokensPerCall,
		m.DictionarySize,
	)
	return m
}

// MetricsHandler returns the Prometheus scrape handler.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
