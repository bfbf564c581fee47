package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "lodws",
	Short: "Linked Data Web Service",
	Long: `lodws serves lookups against linked data sources (DBpedia, Geonames,
Library of Congress, Ordnance Survey, Nomisma, FISH, Getty, ADS,
NFDI4Objects, PeriodO) over a JSON HTTP API.

Every request is measured and the metrics are exposed in the Prometheus
text format on the configured metrics path.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns its error after printing it.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (defaults and LOD_* environment variables when empty)")
}
