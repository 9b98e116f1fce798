package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/danielpatrickdp/eres666/internal/check"
	"github.com/danielpatrickdp/eres666/internal/pipeline"
)

// #region new-run
// NewRun builds a ledger row from one pipeline invocation. res and chk are
// nil when the pipeline failed with runErr.
func NewRun(trigger string, s pipeline.Scenario, res *pipeline.Result, chk *check.Result, runErr error) (Run, error) {
	scenarioJSON, err := json.Marshal(s)
	if err != nil {
		return Run{}, fmt.Errorf("marshal scenario: %w", err)
	}
	run := Run{
		TriggerType:  trigger,
		ScenarioJSON: string(scenarioJSON),
	}

	if runErr != nil {
		run.Decision = "error"
		run.Reason = runErr.Error()
		return run, nil
	}

	resultJSON, err := json.Marshal(res)
	if err != nil {
		return Run{}, fmt.Errorf("marshal result: %w", err)
	}
	run.ResultJSON = string(resultJSON)
	run.CipherScore = res.Cipher.TraceMagnitude
	run.Quality = res.Quality
	run.Decision = "pass"
	if chk != nil {
		run.Reason = chk.Reason
		if !chk.Passed {
			run.Decision = "fail"
		}
	}
	return run, nil
}

// #endregion new-run
