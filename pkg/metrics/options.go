package metrics

// Opts is a generic description of a single metric's construction parameters,
// usable for both scalar and vector kinds. Name and help text are required;
// label dimensions and histogram buckets are independent optional extensions.
// The zero distinction matters: a nil slice means "absent", a non-nil empty
// slice means "present but empty" and is handed to the engine unchanged.
type Opts struct {
	name    string
	help    string
	labels  []string
	buckets []float64
}

// NewOpts creates options with the given registration name and help text.
// Labels and buckets start absent.
func NewOpts(name, help string) Opts {
	return Opts{name: name, help: help}
}

// WithLabels returns a copy of the options with the label dimensions set, in
// declaration order. The order fixes the order in which label values must be
// supplied when recording. No emptiness check happens here; vector converters
// enforce label presence at construction time.
func (o Opts) WithLabels(labels ...string) Opts {
	o.labels = append([]string{}, labels...)
	return o
}

// WithBuckets returns a copy of the options with the histogram bucket
// boundaries set. Ordering and validity are left to the engine, which rejects
// malformed bucket sequences at construction time.
func (o Opts) WithBuckets(buckets ...float64) Opts {
	o.buckets = append([]float64{}, buckets...)
	return o
}

// Name returns the metric's registration name.
func (o Opts) Name() string { return o.name }

// Help returns the metric's help text.
func (o Opts) Help() string { return o.help }

// Labels returns the declared label dimensions, or nil when absent.
func (o Opts) Labels() []string { return o.labels }

// Buckets returns the declared bucket boundaries, or nil when absent.
func (o Opts) Buckets() []float64 { return o.buckets }
