package main

import (
	"fmt"
	"io"
	"log/slog"

	"linkeddata-hq/lodws/pkg/cli"
	"linkeddata-hq/lodws/pkg/config"
	"linkeddata-hq/lodws/pkg/server"
	"linkeddata-hq/lodws/pkg/telemetry/logging"

	"github.com/spf13/cobra"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Linked Data Web Service",
	Long: `Start the Linked Data Web Service with the specified configuration.

The server listens on the configured address, serves the API under the
configured base path and exposes request metrics on the metrics path.

Examples:
  # Start with defaults (127.0.0.1:3000, API under /api)
  lodws run

  # Start with custom config
  lodws run --config /etc/lodws/config.yaml

  # Override listen address
  lodws run --listen 0.0.0.0:8080

  # Validate config without starting server
  lodws run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

// loadRunConfig loads the file and environment configuration and applies
// the command line overrides on top.
func loadRunConfig() (*config.Config, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, cli.NewConfigError(cfgFile, err.Error())
	}

	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}

	if err := config.Validate(cfg); err != nil {
		return nil, cli.NewConfigError(cfgFile, err.Error())
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}
	config.SetConfig(cfg)

	logger, err := logging.New(logging.FromConfig(cfg.Telemetry.Logging, nil))
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}
	slog.SetDefault(logger.Slog())

	out := cmd.OutOrStdout()
	if runFlags.dryRun {
		fmt.Fprintln(out, "✓ Configuration valid")
		return nil
	}

	opts := []server.Option{server.WithVersion(Version)}
	if cfgFile != "" {
		opts = append(opts, server.WithConfigPath(cfgFile))
	}

	srv, err := server.NewServer(cfg, logger, opts...)
	if err != nil {
		return cli.NewCommandError("run", err)
	}

	printBanner(out, cfg)

	if err := srv.Start(cmd.Context()); err != nil {
		return cli.NewCommandError("run", err)
	}

	fmt.Fprintln(out, "✓ Server stopped")
	return nil
}

func printBanner(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "lodws v%s\n", Version)
	if cfgFile != "" {
		fmt.Fprintf(w, "Loading configuration from: %s\n", cfgFile)
	}
	fmt.Fprintf(w, "✓ API: http://%s%s/v1\n", cfg.Server.ListenAddress, cfg.Server.APIBasePath)
	fmt.Fprintf(w, "✓ Health endpoint: http://%s/health\n", cfg.Server.ListenAddress)
	if cfg.Telemetry.Metrics.Enabled {
		fmt.Fprintf(w, "✓ Metrics endpoint: http://%s%s\n", cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}
	fmt.Fprintln(w, "\nPress Ctrl+C to stop")
}
