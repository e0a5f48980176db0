// Package metrics composes multiple Prometheus metrics into one container.
//
// Declaring several related metrics (a request counter here, a latency
// histogram there) leads to the same construct-register-store boilerplate for
// every metric. This package collapses that into a single declaration block: a
// generic options value describes any counter, gauge or histogram, scalar or
// vector; a builder collects the declarations in order; one Register call
// constructs every metric, registers it against a caller-supplied registry,
// and returns a container with one typed accessor per declared field.
//
// # Basic Usage
//
//	reg := prometheus.NewRegistry()
//
//	m, err := metrics.NewBuilder().
//		Counter("requests", metrics.NewOpts("http_requests_total", "Total HTTP requests")).
//		HistogramVec("latency", metrics.NewOpts("http_request_duration_seconds", "Request latency").
//			WithLabels("method", "route").
//			WithBuckets(0.01, 0.1, 0.5, 1, 5)).
//		Register(reg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	m.Counter("requests").Inc()
//	m.HistogramVec("latency").WithLabelValues("GET", "/api/users").Observe(0.123)
//
// # Options
//
// An Opts value carries a name and help text plus two independent optional
// extensions: label dimensions (for vector kinds) and bucket boundaries (for
// histogram kinds). The options shape itself is deliberately permissive; each
// converter applies only what its target kind understands. Scalar kinds
// silently ignore label data, histogram kinds fall back to the engine's
// default buckets when none are supplied, and vector kinds fail construction
// when labels are absent.
//
// # Registration
//
// Register walks the declarations in order and is all-or-nothing: the first
// construction or registration failure aborts the whole call and no container
// is returned. Metrics registered earlier in the same call are not
// unregistered on failure; a failed Register signals either a declaration
// defect or a registry conflict, both fatal to startup, so partial state in
// the registry is left as-is for the caller to inspect.
//
// # Concurrency
//
// The package adds no locking of its own. Register is meant to run once
// during startup. The handles stored in the container are the same
// client_golang instances handed to the registry, so recording through an
// accessor and scraping through the registry observe identical state, with
// client_golang's own concurrency guarantees.
package metrics
