package metrics

import "fmt"

// Kind identifies the concrete metric type a declaration targets.
type Kind int

const (
	// KindCounter is a scalar, monotonically increasing counter
	KindCounter Kind = iota
	// KindGauge is a scalar value that can go up and down
	KindGauge
	// KindHistogram is a scalar distribution with bucketed counts
	KindHistogram
	// KindCounterVec is a counter partitioned by label dimensions
	KindCounterVec
	// KindGaugeVec is a gauge partitioned by label dimensions
	KindGaugeVec
	// KindHistogramVec is a histogram partitioned by label dimensions
	KindHistogramVec
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindCounter:
		return "counter"
	case KindGauge:
		return "gauge"
	case KindHistogram:
		return "histogram"
	case KindCounterVec:
		return "counter_vec"
	case KindGaugeVec:
		return "gauge_vec"
	case KindHistogramVec:
		return "histogram_vec"
	default:
		return "unknown"
	}
}

// IsVec reports whether the kind is parameterized by label dimensions.
func (k Kind) IsVec() bool {
	return k == KindCounterVec || k == KindGaugeVec || k == KindHistogramVec
}

// ParseKind converts a kind name as used in declaration files back into a
// Kind. It accepts exactly the values produced by String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "counter":
		return KindCounter, nil
	case "gauge":
		return KindGauge, nil
	case "histogram":
		return KindHistogram, nil
	case "counter_vec":
		return KindCounterVec, nil
	case "gauge_vec":
		return KindGaugeVec, nil
	case "histogram_vec":
		return KindHistogramVec, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}
