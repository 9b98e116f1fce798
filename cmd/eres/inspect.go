package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/eres666/internal/ledger"
)

// #region inspect-cmd
var (
	inspectLast int
	inspectRun  string
	inspectJSON bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List recorded runs or show one run in detail",
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().IntVar(&inspectLast, "last", 20, "show N most recent runs")
	inspectCmd.Flags().StringVar(&inspectRun, "run", "", "show single run detail")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output as JSON instead of table")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := openLedger(cfg, logger)
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("inspect requires a ledger: set --ledger, ledger.path or ERES_LEDGER")
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if inspectRun != "" {
		return runDetailMode(out, store, inspectRun, inspectJSON)
	}
	return runListMode(out, store, inspectLast, inspectJSON)
}

// #endregion inspect-cmd

// #region list-mode
type listRow struct {
	RunID       string  `json:"run_id"`
	Trigger     string  `json:"trigger"`
	Decision    string  `json:"decision"`
	Quality     float64 `json:"quality"`
	CipherScore float64 `json:"cipher_score"`
	Reason      string  `json:"reason,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func toListRow(r ledger.Run) listRow {
	return listRow{
		RunID:       r.RunID,
		Trigger:     r.TriggerType,
		Decision:    r.Decision,
		Quality:     r.Quality,
		CipherScore: r.CipherScore,
		Reason:      r.Reason,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

func runListMode(w io.Writer, store *ledger.Store, last int, jsonOut bool) error {
	runs, err := store.List(last)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "no runs found")
		return nil
	}

	rows := make([]listRow, len(runs))
	for i, r := range runs {
		rows[i] = toListRow(r)
	}
	if jsonOut {
		return printJSON(w, rows)
	}
	printListTable(w, rows)
	return nil
}

func printListTable(w io.Writer, rows []listRow) {
	fmt.Fprintf(w, "%-8s  %-7s  %-8s  %7s  %10s  %s\n",
		"Run", "Trigger", "Decision", "Quality", "Cipher", "Time")
	fmt.Fprintf(w, "%-8s+-%-7s+-%-8s+-%7s+-%10s+-%s\n",
		"--------", "-------", "--------", "-------", "----------", "--------------------")
	for _, r := range rows {
		fmt.Fprintf(w, "%-8s  %-7s  %-8s  %7.2f  %10.3g  %s\n",
			shortID(r.RunID), r.Trigger, r.Decision, r.Quality, r.CipherScore, r.CreatedAt)
	}
}

// #endregion list-mode

// #region detail-mode
type detailOutput struct {
	listRow
	Scenario json.RawMessage `json:"scenario"`
	Result   json.RawMessage `json:"result,omitempty"`
}

func runDetailMode(w io.Writer, store *ledger.Store, runID string, jsonOut bool) error {
	r, err := store.Get(runID)
	if err != nil {
		return err
	}
	out := detailOutput{listRow: toListRow(r), Scenario: json.RawMessage(r.ScenarioJSON)}
	if r.ResultJSON != "" {
		out.Result = json.RawMessage(r.ResultJSON)
	}
	if jsonOut {
		return printJSON(w, out)
	}

	fmt.Fprintf(w, "Run:      %s\n", out.RunID)
	fmt.Fprintf(w, "Trigger:  %s\n", out.Trigger)
	fmt.Fprintf(w, "Created:  %s\n", out.CreatedAt)
	fmt.Fprintf(w, "Decision: %s\n", out.Decision)
	if out.Reason != "" {
		fmt.Fprintf(w, "Reason:   %s\n", out.Reason)
	}
	fmt.Fprintf(w, "Quality:  %.2f\n", out.Quality)
	fmt.Fprintf(w, "Cipher:   %.3g\n", out.CipherScore)
	fmt.Fprintf(w, "Scenario: %s\n", r.ScenarioJSON)
	return nil
}

// #endregion detail-mode

// #region output
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
