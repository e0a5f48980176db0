// Package gen emits Go source for a typed metric container from a schema:
// one struct field per declaration, a Register constructor running the
// all-or-nothing batch, and one accessor per field. The emitted code builds
// on pkg/metrics, so its registration semantics are exactly those of a hand
// written builder chain.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/songzhibin97/metricset/pkg/metrics"
	"github.com/songzhibin97/metricset/pkg/schema"
)

// Options controls the shape of the generated file.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// Type is the container type name. When empty it is derived from the
	// schema name.
	Type string
	// Source names the schema document in the generated header comment.
	Source string
}

type templateField struct {
	Field      string // declared field name, as in the schema
	Ident      string // unexported struct field identifier
	Accessor   string // exported accessor method name
	GoType     string // client_golang type of the constructed metric
	Method     string // Builder/Composite method for the kind
	Kind       string // kind name, for doc comments
	MetricName string // registration name, for doc comments
	OptsExpr   string // metrics.NewOpts(...) expression with builder calls
}

type templateData struct {
	Package string
	Type    string
	Source  string
	Fields  []templateField
}

// Generate renders the container source for s. The output is gofmt-formatted.
func Generate(s *schema.Schema, opts Options) ([]byte, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("gen: package name required")
	}
	typeName := opts.Type
	if typeName == "" {
		typeName = Export(s.Name)
	}

	data := templateData{
		Package: opts.Package,
		Type:    typeName,
		Source:  opts.Source,
	}

	seen := make(map[string]bool, len(s.Metrics))
	for _, d := range s.Metrics {
		kind, err := metrics.ParseKind(d.Kind)
		if err != nil {
			return nil, err
		}
		if seen[d.Field] {
			return nil, fmt.Errorf("gen: %w: %q", metrics.ErrDuplicateField, d.Field)
		}
		seen[d.Field] = true

		data.Fields = append(data.Fields, templateField{
			Field:      d.Field,
			Ident:      Unexport(d.Field),
			Accessor:   Export(d.Field),
			GoType:     goType(kind),
			Method:     method(kind),
			Kind:       kind.String(),
			MetricName: d.Name,
			OptsExpr:   optsExpr(d),
		})
	}

	var buf bytes.Buffer
	if err := containerTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("gen: render: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format: %w", err)
	}
	return src, nil
}

func goType(k metrics.Kind) string {
	switch k {
	case metrics.KindCounter:
		return "prometheus.Counter"
	case metrics.KindGauge:
		return "prometheus.Gauge"
	case metrics.KindHistogram:
		return "prometheus.Histogram"
	case metrics.KindCounterVec:
		return "*prometheus.CounterVec"
	case metrics.KindGaugeVec:
		return "*prometheus.GaugeVec"
	default:
		return "*prometheus.HistogramVec"
	}
}

func method(k metrics.Kind) string {
	switch k {
	case metrics.KindCounter:
		return "Counter"
	case metrics.KindGauge:
		return "Gauge"
	case metrics.KindHistogram:
		return "Histogram"
	case metrics.KindCounterVec:
		return "CounterVec"
	case metrics.KindGaugeVec:
		return "GaugeVec"
	default:
		return "HistogramVec"
	}
}

func optsExpr(d schema.Decl) string {
	var b strings.Builder
	fmt.Fprintf(&b, "metrics.NewOpts(%s, %s)", strconv.Quote(d.Name), strconv.Quote(d.Help))
	if d.Labels != nil {
		quoted := make([]string, len(d.Labels))
		for i, l := range d.Labels {
			quoted[i] = strconv.Quote(l)
		}
		fmt.Fprintf(&b, ".WithLabels(%s)", strings.Join(quoted, ", "))
	}
	if d.Buckets != nil {
		formatted := make([]string, len(d.Buckets))
		for i, v := range d.Buckets {
			formatted[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		fmt.Fprintf(&b, ".WithBuckets(%s)", strings.Join(formatted, ", "))
	}
	return b.String()
}

// Export converts a snake_case schema identifier into an exported Go
// identifier: "request_total" becomes "RequestTotal".
func Export(name string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' }) {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// Unexport converts a snake_case schema identifier into an unexported Go
// identifier: "request_total" becomes "requestTotal".
func Unexport(name string) string {
	exported := Export(name)
	if exported == "" {
		return exported
	}
	return strings.ToLower(exported[:1]) + exported[1:]
}

var containerTemplate = template.Must(template.New("container").Parse(`// Code generated by metricset-gen{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/songzhibin97/metricset/pkg/metrics"
)

// {{.Type}} holds one constructed metric per declared field.
type {{.Type}} struct {
{{- range .Fields}}
	{{.Ident}} {{.GoType}}
{{- end}}
}

// Register{{.Type}} constructs and registers every declared metric against
// reg as one all-or-nothing batch.
func Register{{.Type}}(reg prometheus.Registerer) (*{{.Type}}, error) {
	c, err := metrics.NewBuilder().
{{- range .Fields}}
		{{.Method}}("{{.Field}}", {{.OptsExpr}}).
{{- end}}
		Register(reg)
	if err != nil {
		return nil, err
	}
	return &{{.Type}}{
{{- range .Fields}}
		{{.Ident}}: c.{{.Method}}("{{.Field}}"),
{{- end}}
	}, nil
}
{{range .Fields}}
// {{.Accessor}} returns the {{.Kind}} registered as {{.MetricName}}.
func (m *{{$.Type}}) {{.Accessor}}() {{.GoType}} {
	return m.{{.Ident}}
}
{{end}}`))
