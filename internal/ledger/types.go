package ledger

import "time"

// #region run
// Run is a single row in the runs table: one pipeline invocation, its inputs
// and the outcome shown to the user.
type Run struct {
	RunID        string
	TriggerType  string // "report" | "rpc" | "replay"
	ScenarioJSON string
	ResultJSON   string // empty when the run failed
	CipherScore  float64
	Quality      float64
	Decision     string // "pass" | "fail" | "error"
	Reason       string
	CreatedAt    time.Time
}

// #endregion run
