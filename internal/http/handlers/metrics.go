package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	predictionsSavedTotal *prometheus.CounterVec
	resultFetchesTotal    *prometheus.CounterVec
	fetchDuration         prometheus.Histogram
)

func InitPrometheusMetrics() {
	predictionsSavedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "f1predictor",
			Name:      "predictions_saved_total",
			Help:      "Total number of prediction upserts, per round.",
		},
		[]string{"round"},
	)
	resultFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "f1predictor",
			Name:      "result_fetches_total",
			Help:      "Total number of result-fetch attempts, per round and outcome.",
		},
		[]string{"round", "outcome"},
	)
	fetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "f1predictor",
			Name:      "result_fetch_duration_seconds",
			Help:      "Histogram of end-to-end OpenF1 fetch-and-normalize durations.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
	)
	prometheus.MustRegister(predictionsSavedTotal, resultFetchesTotal, fetchDuration)
}
