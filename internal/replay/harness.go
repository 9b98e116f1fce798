// Package replay runs golden scenario fixtures through the pipeline and
// compares the outputs with recorded expectations.
package replay

import (
	"fmt"

	"github.com/danielpatrickdp/eres666/internal/fault"
	"github.com/danielpatrickdp/eres666/internal/pipeline"
)

// #region types
// CaseResult captures the outcome of replaying one fixture case.
type CaseResult struct {
	Name       string
	Passed     bool
	Reason     string
	Scenario   pipeline.Scenario
	Result     *pipeline.Result // nil if the pipeline failed
	Err        error
	Mismatches []string
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// #endregion types

// #region replay
// Replay runs every case in order. Cases are independent of each other.
func Replay(f *Fixture) []CaseResult {
	results := make([]CaseResult, 0, len(f.Cases))
	for i := range f.Cases {
		results = append(results, replayCase(&f.Cases[i]))
	}
	return results
}

func replayCase(fc *FixtureCase) CaseResult {
	cr := CaseResult{Name: fc.Name}

	s, err := fc.ToScenario()
	if err != nil {
		cr.Err = err
		cr.Reason = err.Error()
		return cr
	}
	cr.Scenario = s

	res, err := pipeline.Run(s)
	if fc.ExpectError != "" {
		cr.Err = err
		switch kind := fault.KindOf(err); {
		case err == nil:
			cr.Reason = fmt.Sprintf("expected %s, got success", fc.ExpectError)
		case string(kind) != fc.ExpectError:
			cr.Reason = fmt.Sprintf("expected %s, got %v", fc.ExpectError, err)
		default:
			cr.Passed = true
			cr.Reason = fmt.Sprintf("failed as expected: %v", err)
		}
		return cr
	}
	if err != nil {
		cr.Err = err
		cr.Reason = fmt.Sprintf("unexpected error: %v", err)
		return cr
	}
	cr.Result = &res

	cr.Mismatches = compare(fc.Expect, res, fc.Tolerance.withDefaults())
	cr.Passed = len(cr.Mismatches) == 0
	if cr.Passed {
		cr.Reason = "matched"
	} else {
		cr.Reason = fmt.Sprintf("%d mismatches: %s", len(cr.Mismatches), cr.Mismatches[0])
	}
	return cr
}

func compare(e FixtureExpect, res pipeline.Result, tol Tolerance) []string {
	checks := []struct {
		name string
		want *float64
		got  float64
	}{
		{"m_atomic", e.MAtomic, res.Readings[0].Value},
		{"e_harmonic", e.EHarmonic, res.Readings[1].Value},
		{"r_chromatic", e.RChromatic, res.Readings[2].Value},
		{"c_cybernetics", e.Cybernetics, res.Formulas.Cybernetics},
		{"r_resonance", e.Resonance, res.Formulas.Resonance},
		{"real_score", e.Real, res.Formulas.Real},
		{"cipher_mod_216", e.CipherMod216, res.Cipher.Mod216},
		{"quality", e.Quality, res.Quality},
	}
	var out []string
	for _, c := range checks {
		if c.want == nil {
			continue
		}
		if !tol.Allows(c.got, *c.want) {
			out = append(out, fmt.Sprintf("%s = %.6g, want %.6g (rel %g, abs %g)", c.name, c.got, *c.want, tol.Rel, tol.Abs))
		}
	}
	return out
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []CaseResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// #endregion replay
