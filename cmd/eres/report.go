package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielpatrickdp/eres666/internal/check"
	"github.com/danielpatrickdp/eres666/internal/ledger"
	"github.com/danielpatrickdp/eres666/internal/pipeline"
	"github.com/danielpatrickdp/eres666/internal/report"
)

// #region report-cmd
var (
	reportJSON    bool
	reportMapping bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the configured scenario and print the verification report",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "output the result as JSON")
	reportCmd.Flags().BoolVar(&reportMapping, "mapping", true, "include the conceptual mapping and trinity tables")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := openLedger(cfg, logger)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	s := cfg.Scenario.ToScenario()
	res, runErr := pipeline.Run(s)

	var chk *check.Result
	if runErr == nil {
		c := check.NewHarness(check.DefaultConfig()).Run(res)
		chk = &c
	}
	if store != nil {
		recordRun(store, logger, "report", s, res, chk, runErr)
	}
	if runErr != nil {
		return fmt.Errorf("run scenario: %w", runErr)
	}

	out := cmd.OutOrStdout()
	if reportJSON {
		err = report.WriteJSON(out, res, chk)
	} else {
		err = report.Write(out, s, res, report.Options{Mapping: reportMapping, Check: chk})
	}
	if err != nil {
		return err
	}
	if !chk.Passed {
		return errors.New(chk.Reason)
	}
	return nil
}

// #endregion report-cmd

// #region record
// recordRun writes one row to the ledger. Ledger failures are logged, never fatal.
func recordRun(store *ledger.Store, logger *zap.Logger, trigger string, s pipeline.Scenario, res pipeline.Result, chk *check.Result, runErr error) {
	var resPtr *pipeline.Result
	if runErr == nil {
		resPtr = &res
	}
	run, err := ledger.NewRun(trigger, s, resPtr, chk, runErr)
	if err == nil {
		run, err = store.Record(run)
	}
	if err != nil {
		logger.Warn("ledger record failed", zap.Error(err))
		return
	}
	logger.Info("run recorded",
		zap.String("run_id", run.RunID),
		zap.String("trigger", trigger),
		zap.String("decision", run.Decision),
	)
}

// #endregion record
