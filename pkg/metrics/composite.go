package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/songzhibin97/metricset/pkg/log"
)

// Field is one ordered declaration inside a composite: the field name the
// container will expose the metric under, the target kind, and the generic
// construction options.
type Field struct {
	Name string
	Kind Kind
	Opts Opts
}

// Builder collects metric declarations in order. The zero-cost chainable
// methods only record declarations; nothing is constructed or validated until
// Register runs.
type Builder struct {
	fields []Field
	logger log.Logger
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{logger: log.NewNop()}
}

// WithLogger attaches a logger used by Register to report per-field progress.
// Registration is silent by default.
func (b *Builder) WithLogger(logger log.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Counter declares a scalar counter field.
func (b *Builder) Counter(field string, opts Opts) *Builder {
	return b.Add(Field{Name: field, Kind: KindCounter, Opts: opts})
}

// Gauge declares a scalar gauge field.
func (b *Builder) Gauge(field string, opts Opts) *Builder {
	return b.Add(Field{Name: field, Kind: KindGauge, Opts: opts})
}

// Histogram declares a scalar histogram field.
func (b *Builder) Histogram(field string, opts Opts) *Builder {
	return b.Add(Field{Name: field, Kind: KindHistogram, Opts: opts})
}

// CounterVec declares a labeled counter vector field.
func (b *Builder) CounterVec(field string, opts Opts) *Builder {
	return b.Add(Field{Name: field, Kind: KindCounterVec, Opts: opts})
}

// GaugeVec declares a labeled gauge vector field.
func (b *Builder) GaugeVec(field string, opts Opts) *Builder {
	return b.Add(Field{Name: field, Kind: KindGaugeVec, Opts: opts})
}

// HistogramVec declares a labeled histogram vector field.
func (b *Builder) HistogramVec(field string, opts Opts) *Builder {
	return b.Add(Field{Name: field, Kind: KindHistogramVec, Opts: opts})
}

// Add declares a field directly. Declaration front ends that already carry
// ordered (field, kind, options) triples feed the builder through here.
func (b *Builder) Add(f Field) *Builder {
	b.fields = append(b.fields, f)
	return b
}

// Fields returns the declarations recorded so far, in order.
func (b *Builder) Fields() []Field {
	out := make([]Field, len(b.fields))
	copy(out, b.fields)
	return out
}

// Register constructs and registers every declared metric against reg, in
// declaration order, and returns the assembled container. The operation is
// all-or-nothing: the first construction or registration failure aborts the
// whole call and the error is returned to the caller. Metrics already
// registered earlier in the same call stay registered; a failure here means a
// declaration defect or a registry conflict, both fatal to startup, and no
// rollback is attempted.
//
// Engine and registry errors are returned unchanged so callers can still
// match them (for example with errors.As against
// prometheus.AlreadyRegisteredError). The one error raised by this package
// itself is ErrNoLabels for a vector declaration without labels, plus
// ValidationError for duplicate field names within one builder.
func (b *Builder) Register(reg prometheus.Registerer) (*Composite, error) {
	c := &Composite{
		order:   make([]string, 0, len(b.fields)),
		entries: make(map[string]entry, len(b.fields)),
	}

	for _, f := range b.fields {
		if _, dup := c.entries[f.Name]; dup {
			err := &ValidationError{Field: f.Name, Kind: f.Kind, Err: ErrDuplicateField}
			b.logger.Error("composite registration aborted",
				log.String("field", f.Name),
				log.Err(err),
			)
			return nil, err
		}

		collector, err := build(f)
		if err != nil {
			b.logger.Error("metric construction failed",
				log.String("field", f.Name),
				log.String("metric", f.Opts.Name()),
				log.String("kind", f.Kind.String()),
				log.Err(err),
			)
			return nil, err
		}

		if err := reg.Register(collector); err != nil {
			b.logger.Error("metric registration failed",
				log.String("field", f.Name),
				log.String("metric", f.Opts.Name()),
				log.String("kind", f.Kind.String()),
				log.Err(err),
			)
			return nil, err
		}

		c.entries[f.Name] = entry{kind: f.Kind, collector: collector}
		c.order = append(c.order, f.Name)
		b.logger.Debug("registered metric",
			log.String("field", f.Name),
			log.String("metric", f.Opts.Name()),
			log.String("kind", f.Kind.String()),
		)
	}

	return c, nil
}

// build dispatches one declaration to its typed converter.
func build(f Field) (prometheus.Collector, error) {
	switch f.Kind {
	case KindCounter:
		return NewCounter(f.Opts)
	case KindGauge:
		return NewGauge(f.Opts)
	case KindHistogram:
		return NewHistogram(f.Opts)
	case KindCounterVec:
		return NewCounterVec(f.Opts)
	case KindGaugeVec:
		return NewGaugeVec(f.Opts)
	case KindHistogramVec:
		return NewHistogramVec(f.Opts)
	default:
		return nil, &ValidationError{Field: f.Name, Kind: f.Kind, Err: ErrUnknownKind}
	}
}

// entry pairs a constructed collector with its declared kind so accessors can
// type-check field lookups.
type entry struct {
	kind      Kind
	collector prometheus.Collector
}

// Composite is the container assembled by Register: one constructed metric
// per declared field. Its structure is fixed after construction; the
// contained metrics stay independently mutable through their accessors. The
// stored handles are the same instances registered with the registry, so
// application-side recording and registry-side collection share state.
type Composite struct {
	order   []string
	entries map[string]entry
}

// Len returns the number of declared fields.
func (c *Composite) Len() int {
	return len(c.order)
}

// Fields returns the declared field names in declaration order.
func (c *Composite) Fields() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Counter returns the scalar counter declared under field. It panics when the
// field is unknown or was declared with a different kind; accessing a field
// that was never declared is a programming error, same as calling an
// undefined method.
func (c *Composite) Counter(field string) prometheus.Counter {
	return c.lookup(field, KindCounter).(prometheus.Counter)
}

// Gauge returns the scalar gauge declared under field.
func (c *Composite) Gauge(field string) prometheus.Gauge {
	return c.lookup(field, KindGauge).(prometheus.Gauge)
}

// Histogram returns the scalar histogram declared under field.
func (c *Composite) Histogram(field string) prometheus.Histogram {
	return c.lookup(field, KindHistogram).(prometheus.Histogram)
}

// CounterVec returns the counter vector declared under field.
func (c *Composite) CounterVec(field string) *prometheus.CounterVec {
	return c.lookup(field, KindCounterVec).(*prometheus.CounterVec)
}

// GaugeVec returns the gauge vector declared under field.
func (c *Composite) GaugeVec(field string) *prometheus.GaugeVec {
	return c.lookup(field, KindGaugeVec).(*prometheus.GaugeVec)
}

// HistogramVec returns the histogram vector declared under field.
func (c *Composite) HistogramVec(field string) *prometheus.HistogramVec {
	return c.lookup(field, KindHistogramVec).(*prometheus.HistogramVec)
}

func (c *Composite) lookup(field string, kind Kind) prometheus.Collector {
	e, ok := c.entries[field]
	if !ok {
		panic(fmt.Sprintf("metrics: composite has no field %q", field))
	}
	if e.kind != kind {
		panic(fmt.Sprintf("metrics: field %q is declared as %s, accessed as %s", field, e.kind, kind))
	}
	return e.collector
}
