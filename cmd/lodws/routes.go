package main

import (
	"bufio"
	"fmt"
	"strings"

	"linkeddata-hq/lodws/pkg/cli"
	"linkeddata-hq/lodws/pkg/telemetry/metrics"

	"github.com/spf13/cobra"
)

var routesOutput string

var routesCmd = &cobra.Command{
	Use:   "routes [path...]",
	Short: "Show the route label recorded for request paths",
	Long: `Show the route label that the request metrics record for each path.

Numeric segments become :id, UUIDs become :uuid and long slug-like
segments become :slug. Paths are read from standard input, one per line,
when none are given as arguments.

Examples:
  lodws routes /api/v1/dbpedia/lookup/42
  cat access.log.paths | lodws routes --output json`,
	RunE: runRoutes,
}

func init() {
	rootCmd.AddCommand(routesCmd)

	routesCmd.Flags().StringVarP(&routesOutput, "output", "o", "text", "output format (text, json)")
}

func runRoutes(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(routesOutput)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				paths = append(paths, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return cli.NewCommandError("routes", fmt.Errorf("failed to read paths: %w", err))
		}
	}

	table := cli.Table{Headers: []string{"path", "route"}}
	if format == cli.FormatText {
		table.Headers = []string{"PATH", "ROUTE"}
	}
	for _, p := range paths {
		table.Rows = append(table.Rows, []string{p, metrics.NormalizeRoute(p)})
	}

	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), table)
}
