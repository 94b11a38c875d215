package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchesTotal  *prometheus.CounterVec
	fetchLatency  prometheus.Histogram
	barsServed    *prometheus.CounterVec
	daysEvaluated *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "openingcandle_upstream_fetches_total",
				Help: "Total number of upstream bar fetches by result",
			},
			[]string{"result"},
		),
		fetchLatency: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "openingcandle_upstream_fetch_duration_seconds",
				Help:    "Duration of upstream bar fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		barsServed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "openingcandle_bars_served_total",
				Help: "Total number of bars served per timeframe",
			},
			[]string{"timeframe"},
		),
		daysEvaluated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "openingcandle_winrate_days_total",
				Help: "Win-rate evaluation days by outcome",
			},
			[]string{"result"},
		),
	}
}

// RecordFetch records an upstream fetch outcome (ok, empty, error).
func (r *Recorder) RecordFetch(result string) {
	r.fetchesTotal.WithLabelValues(result).Inc()
}

// RecordFetchLatency records upstream fetch latency in seconds.
func (r *Recorder) RecordFetchLatency(seconds float64) {
	r.fetchLatency.Observe(seconds)
}

// RecordBarsServed records bars served for a timeframe.
func (r *Recorder) RecordBarsServed(timeframe string, count int) {
	r.barsServed.WithLabelValues(timeframe).Add(float64(count))
}

// RecordDayEvaluated records one win-rate day outcome (ok, insufficient, fetch_error).
func (r *Recorder) RecordDayEvaluated(result string) {
	r.daysEvaluated.WithLabelValues(result).Inc()
}
