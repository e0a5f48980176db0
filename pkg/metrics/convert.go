package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// The converter family turns one generic Opts into a concrete client_golang
// metric. All six share the same contract: name and help always seed the
// engine options; histogram kinds additionally consult the buckets, falling
// back to the engine default when absent; vector kinds require labels to be
// present and fail with ErrNoLabels otherwise; scalar kinds ignore label data
// entirely. Any further validation (name syntax, bucket ordering, duplicate
// label names) belongs to the engine and surfaces through it unchanged.

// NewCounter builds a scalar counter from the options.
func NewCounter(o Opts) (prometheus.Counter, error) {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: o.name,
		Help: o.help,
	}), nil
}

// NewGauge builds a scalar gauge from the options.
func NewGauge(o Opts) (prometheus.Gauge, error) {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Name: o.name,
		Help: o.help,
	}), nil
}

// NewHistogram builds a scalar histogram from the options. When no buckets
// were declared the engine's DefBuckets apply.
func NewHistogram(o Opts) (prometheus.Histogram, error) {
	opts := prometheus.HistogramOpts{
		Name: o.name,
		Help: o.help,
	}
	if o.buckets != nil {
		opts.Buckets = o.buckets
	}
	return prometheus.NewHistogram(opts), nil
}

// NewCounterVec builds a labeled counter vector from the options.
func NewCounterVec(o Opts) (*prometheus.CounterVec, error) {
	if o.labels == nil {
		return nil, ErrNoLabels
	}
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: o.name,
		Help: o.help,
	}, o.labels), nil
}

// NewGaugeVec builds a labeled gauge vector from the options.
func NewGaugeVec(o Opts) (*prometheus.GaugeVec, error) {
	if o.labels == nil {
		return nil, ErrNoLabels
	}
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: o.name,
		Help: o.help,
	}, o.labels), nil
}

// NewHistogramVec builds a labeled histogram vector from the options.
func NewHistogramVec(o Opts) (*prometheus.HistogramVec, error) {
	if o.labels == nil {
		return nil, ErrNoLabels
	}
	opts := prometheus.HistogramOpts{
		Name: o.name,
		Help: o.help,
	}
	if o.buckets != nil {
		opts.Buckets = o.buckets
	}
	return prometheus.NewHistogramVec(opts, o.labels), nil
}
