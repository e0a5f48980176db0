package metrics

import (
	"errors"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindCounter, "counter"},
		{KindGauge, "gauge"},
		{KindHistogram, "histogram"},
		{KindCounterVec, "counter_vec"},
		{KindGaugeVec, "gauge_vec"},
		{KindHistogramVec, "histogram_vec"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String(): expected %s, got %s", tt.kind, tt.want, got)
		}
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	kinds := []Kind{
		KindCounter, KindGauge, KindHistogram,
		KindCounterVec, KindGaugeVec, KindHistogramVec,
	}
	for _, k := range kinds {
		parsed, err := ParseKind(k.String())
		if err != nil {
			t.Errorf("ParseKind(%s): unexpected error %v", k, err)
			continue
		}
		if parsed != k {
			t.Errorf("ParseKind(%s): expected %d, got %d", k, k, parsed)
		}
	}
}

func TestParseKindUnknown(t *testing.T) {
	_, err := ParseKind("summary")
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind, got %v", err)
	}
}

func TestKindIsVec(t *testing.T) {
	if KindCounter.IsVec() || KindGauge.IsVec() || KindHistogram.IsVec() {
		t.Error("Scalar kinds must not report IsVec")
	}
	if !KindCounterVec.IsVec() || !KindGaugeVec.IsVec() || !KindHistogramVec.IsVec() {
		t.Error("Vector kinds must report IsVec")
	}
}
