package metrics

import (
	"testing"
)

func TestNewOpts(t *testing.T) {
	o := NewOpts("example_total", "Example help")

	if got := o.Name(); got != "example_total" {
		t.Errorf("Expected name example_total, got %s", got)
	}
	if got := o.Help(); got != "Example help" {
		t.Errorf("Expected help 'Example help', got %s", got)
	}
	if o.Labels() != nil {
		t.Errorf("Expected labels absent, got %v", o.Labels())
	}
	if o.Buckets() != nil {
		t.Errorf("Expected buckets absent, got %v", o.Buckets())
	}
}

func TestOptsWithLabels(t *testing.T) {
	base := NewOpts("example_total", "help")
	labeled := base.WithLabels("method", "status")

	if got := labeled.Labels(); len(got) != 2 || got[0] != "method" || got[1] != "status" {
		t.Errorf("Expected labels [method status], got %v", got)
	}

	// The original value is unaffected.
	if base.Labels() != nil {
		t.Errorf("Expected base labels to stay absent, got %v", base.Labels())
	}
}

func TestOptsWithLabelsEmptyIsPresent(t *testing.T) {
	o := NewOpts("example_total", "help").WithLabels()

	// Present-but-empty is distinct from absent: the caller gets no error
	// here, only a possible failure from the engine later.
	if o.Labels() == nil {
		t.Error("Expected empty label list to be present, got absent")
	}
	if len(o.Labels()) != 0 {
		t.Errorf("Expected zero labels, got %v", o.Labels())
	}
}

func TestOptsWithBuckets(t *testing.T) {
	o := NewOpts("example_seconds", "help").WithBuckets(0.1, 0.5, 1)

	got := o.Buckets()
	want := []float64{0.1, 0.5, 1}
	if len(got) != len(want) {
		t.Fatalf("Expected %d buckets, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Bucket %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestOptsLabelsAndBucketsIndependent(t *testing.T) {
	o := NewOpts("example_seconds", "help").
		WithLabels("route").
		WithBuckets(0.1, 0.5)

	if len(o.Labels()) != 1 {
		t.Errorf("Expected 1 label, got %v", o.Labels())
	}
	if len(o.Buckets()) != 2 {
		t.Errorf("Expected 2 buckets, got %v", o.Buckets())
	}
}

func TestOptsCopiesArguments(t *testing.T) {
	labels := []string{"a", "b"}
	o := NewOpts("example_total", "help").WithLabels(labels...)

	labels[0] = "mutated"
	if got := o.Labels()[0]; got != "a" {
		t.Errorf("Expected options to copy labels, got %s", got)
	}

	buckets := []float64{0.1, 0.5}
	o = o.WithBuckets(buckets...)
	buckets[0] = 99
	if got := o.Buckets()[0]; got != 0.1 {
		t.Errorf("Expected options to copy buckets, got %v", got)
	}
}
