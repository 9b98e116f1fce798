// Command eres runs the ERES 666 verification pipeline: it prints the
// sustainability report, serves the numeric core over gRPC and inspects the
// optional run ledger.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielpatrickdp/eres666/internal/config"
	"github.com/danielpatrickdp/eres666/internal/ledger"
	"github.com/danielpatrickdp/eres666/internal/logging"
)

// #region root
var (
	configPath string
	logLevel   string
	ledgerPath string
)

var rootCmd = &cobra.Command{
	Use:           "eres",
	Short:         "ERES 666 cybernetic formula verifier",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config (default: built-in scenario)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&ledgerPath, "ledger", "", "override SQLite ledger path; empty keeps the config value")

	rootCmd.AddCommand(reportCmd, serveCmd, callCmd, inspectCmd, replayCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion root

// #region setup
// loadConfig reads the config file and applies flag overrides on top of it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if ledgerPath != "" {
		cfg.Ledger.Path = ledgerPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// openLedger returns nil when no ledger path is configured.
func openLedger(cfg *config.Config, logger *zap.Logger) (*ledger.Store, error) {
	if cfg.Ledger.Path == "" {
		return nil, nil
	}
	store, err := ledger.NewStore(cfg.Ledger.Path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	logger.Debug("ledger opened", zap.String("path", cfg.Ledger.Path))
	return store, nil
}

// #endregion setup
