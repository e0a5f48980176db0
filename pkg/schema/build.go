package schema

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/songzhibin97/metricset/pkg/metrics"
)

// Builder converts the schema into a metrics builder carrying one declaration
// per entry, in document order.
func (s *Schema) Builder() (*metrics.Builder, error) {
	b := metrics.NewBuilder()
	for _, d := range s.Metrics {
		kind, err := metrics.ParseKind(d.Kind)
		if err != nil {
			return nil, err
		}
		opts := metrics.NewOpts(d.Name, d.Help)
		if d.Labels != nil {
			opts = opts.WithLabels(d.Labels...)
		}
		if d.Buckets != nil {
			opts = opts.WithBuckets(d.Buckets...)
		}
		b.Add(metrics.Field{Name: d.Field, Kind: kind, Opts: opts})
	}
	return b, nil
}

// Register builds every declared metric and registers it against reg in one
// all-or-nothing batch, returning the assembled composite.
func (s *Schema) Register(reg prometheus.Registerer) (*metrics.Composite, error) {
	b, err := s.Builder()
	if err != nil {
		return nil, err
	}
	return b.Register(reg)
}
