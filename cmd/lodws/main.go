// Lodws is the Linked Data Web Service: a small HTTP API in front of
// DBpedia, Geonames, the Library of Congress, Ordnance Survey and several
// cultural heritage vocabularies, instrumented with Prometheus metrics.
//
// Usage:
//
//	# Start server with default configuration
//	lodws run
//
//	# Start with custom configuration file
//	lodws run --config /path/to/config.yaml
//
//	# Show version information
//	lodws version
//
//	# Show the route labels recorded for request paths
//	lodws routes /api/v1/dbpedia/lookup/42
package main

import (
	"os"

	"linkeddata-hq/lodws/pkg/cli"
)

func main() {
	os.Exit(cli.ExitCode(Execute()))
}
