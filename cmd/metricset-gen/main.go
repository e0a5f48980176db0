package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/songzhibin97/metricset/internal/gen"
	"github.com/songzhibin97/metricset/pkg/schema"
)

var (
	schemaFile = flag.String("schema", "metrics.yaml", "Metric schema file path")
	outFile    = flag.String("out", "", "Output file path (default: stdout)")
	pkgName    = flag.String("package", "metrics", "Package name for the generated file")
	typeName   = flag.String("type", "", "Container type name (default: derived from the schema name)")
	version    = flag.Bool("version", false, "Show version information")
)

const Version = "v0.1.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("metricset-gen %s\n", Version)
		os.Exit(0)
	}

	s, err := schema.Load(*schemaFile)
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}

	src, err := gen.Generate(s, gen.Options{
		Package: *pkgName,
		Type:    *typeName,
		Source:  *schemaFile,
	})
	if err != nil {
		log.Fatalf("Failed to generate container: %v", err)
	}

	if *outFile == "" {
		if _, err := os.Stdout.Write(src); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		return
	}

	if err := os.WriteFile(*outFile, src, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *outFile, err)
	}
}
