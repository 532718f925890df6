// unidex ingests the public university directory into an embedded DuckDB
// store and answers reporting queries over it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/edudata/unidex/internal/config"
	srvErrors "github.com/edudata/unidex/pkg/errors"
)

var (
	configFile string
	cfg        *config.Configuration
)

var rootCmd = &cobra.Command{
	Use:           "unidex",
	Short:         "University directory ingestion agent",
	Long:          "unidex fetches university records from the public Hipolabs catalog, one request per country, and stores them idempotently in a local DuckDB database.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return setupLogger(cfg.LogLevel, cfg.LogFormat)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to YAML config file")
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
}

func setupLogger(level, format string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	if format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zapCfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Store failures abort the whole run, unlike per-country fetch
		// failures, so they get their own exit code.
		if srvErrors.IsStoreUnavailableError(err) {
			fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
