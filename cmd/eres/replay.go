package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielpatrickdp/eres666/internal/check"
	"github.com/danielpatrickdp/eres666/internal/pipeline"
	"github.com/danielpatrickdp/eres666/internal/replay"
)

// #region replay-cmd
var replayFixture string

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a golden fixture through the pipeline",
	RunE:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayFixture, "fixture", "", "path to fixture JSON (required)")
	replayCmd.MarkFlagRequired("fixture")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	fixture, err := replay.LoadFixture(replayFixture)
	if err != nil {
		return err
	}

	store, err := openLedger(cfg, logger)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	out := cmd.OutOrStdout()
	if fixture.Description != "" {
		fmt.Fprintf(out, "Fixture: %s\n", fixture.Description)
	}

	harness := check.NewHarness(check.DefaultConfig())
	results := replay.Replay(fixture)
	for _, r := range results {
		mark := "PASS"
		if !r.Passed {
			mark = "FAIL"
		}
		fmt.Fprintf(out, "  [%s] %-28s %s\n", mark, r.Name, r.Reason)

		if store == nil {
			continue
		}
		if r.Result != nil {
			chk := harness.Run(*r.Result)
			recordRun(store, logger, "replay", r.Scenario, *r.Result, &chk, nil)
		} else if r.Err != nil {
			recordRun(store, logger, "replay", r.Scenario, pipeline.Result{}, nil, r.Err)
		}
	}

	s := replay.Summarize(results)
	fmt.Fprintf(out, "\n%d cases: %d passed, %d failed\n", s.Total, s.Passed, s.Failed)
	logger.Info("replay complete", zap.Int("total", s.Total), zap.Int("failed", s.Failed))
	if s.Failed > 0 {
		return fmt.Errorf("%d of %d cases failed", s.Failed, s.Total)
	}
	return nil
}

// #endregion replay-cmd
