// Package metrics holds the Prometheus instruments of the HTTP conversion service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels.
const (
	OutcomeSuccess     = "success"
	OutcomeInvalidUnit = "invalid_unit"
	OutcomeBadRequest  = "bad_request"
	OutcomeOutOfRange  = "out_of_range"
)

// Metrics holds the counters and histograms for conversions.
type Metrics struct {
	Conversions        *prometheus.CounterVec // labels: category, outcome
	ConversionDuration prometheus.Histogram
}

// New creates the instruments and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "unitconv",
			Name:      "conversions_total",
			Help:      "Conversion requests by category and outcome.",
		}, []string{"category", "outcome"}),
		ConversionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "unitconv",
			Name:      "conversion_duration_seconds",
			Help:      "Time spent handling a conversion request.",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}

	reg.MustRegister(m.Conversions, m.ConversionDuration)
	return m
}
