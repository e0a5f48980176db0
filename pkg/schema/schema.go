// Package schema loads composite metric declarations from YAML. It is the
// data front end to pkg/metrics: a document listing (field, name, help, kind,
// labels, buckets) entries produces the same ordered declarations a hand
// written builder chain would.
//
// Example document:
//
//	name: app_metrics
//	metrics:
//	  - field: requests
//	    name: http_requests_total
//	    help: Total HTTP requests
//	    kind: counter_vec
//	    labels: [method, status]
//	  - field: latency
//	    name: http_request_duration_seconds
//	    help: Request latency in seconds
//	    kind: histogram
//	    buckets: [0.01, 0.1, 0.5, 1, 5]
package schema

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Decl is one metric declaration. Kind uses the names produced by
// metrics.Kind.String. Labels and buckets are independent optional fields;
// whether a combination is meaningful for the declared kind is decided by the
// metric converters, not here: a scalar declaration carrying labels parses
// fine and the labels are ignored at construction time.
type Decl struct {
	Field   string    `yaml:"field" validate:"required"`
	Name    string    `yaml:"name" validate:"required"`
	Help    string    `yaml:"help" validate:"required"`
	Kind    string    `yaml:"kind" validate:"required,oneof=counter gauge histogram counter_vec gauge_vec histogram_vec"`
	Labels  []string  `yaml:"labels,omitempty"`
	Buckets []float64 `yaml:"buckets,omitempty"`
}

// Schema is a named, ordered set of metric declarations.
type Schema struct {
	Name    string `yaml:"name" validate:"required"`
	Metrics []Decl `yaml:"metrics" validate:"required,min=1,dive"`
}

var validate = validator.New()

// Parse decodes and validates a schema document. Validation covers document
// shape only (required fields, known kinds); metric-level rules stay with the
// engine and the converters.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("schema: parse: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("schema: validate: %w", err)
	}
	return &s, nil
}

// Load reads and parses a schema document from path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return Parse(data)
}
