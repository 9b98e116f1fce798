// Package check cross-validates a finished pipeline result against the
// numeric contracts of the core.
package check

import (
	"fmt"
	"math"

	"github.com/danielpatrickdp/eres666/internal/cipher"
	"github.com/danielpatrickdp/eres666/internal/pipeline"
)

// #region harness
// Harness runs the cross-validation checks.
type Harness struct {
	config Config
}

// NewHarness creates a harness with the given configuration.
func NewHarness(config Config) *Harness {
	return &Harness{config: config}
}

// Run checks a result. Every metric is reported; Passed is false if any
// blocking check failed.
func (h *Harness) Run(res pipeline.Result) Result {
	var metrics []Metric
	var failReasons []string

	add := func(name string, value float64, pass, blocking bool, reason string) {
		metrics = append(metrics, Metric{Name: name, Value: value, Pass: pass})
		if !pass && blocking {
			failReasons = append(failReasons, reason)
		}
	}

	// 1. Cipher residue range
	mod := res.Cipher.Mod216
	add("cipher_mod_216", mod, mod >= 0 && mod < cipher.Modulus, true,
		fmt.Sprintf("cipher mod 216 %.6g outside [0,216)", mod))

	// 2. Quality bounds
	q := res.Quality
	add("quality", q, q >= h.config.MinQuality && q <= h.config.MaxQuality, true,
		fmt.Sprintf("quality %.4f outside [%.1f,%.1f]", q, h.config.MinQuality, h.config.MaxQuality))

	// 3. Finite formula outputs
	outs := []struct {
		name string
		v    float64
	}{
		{"c_cybernetics", res.Formulas.Cybernetics},
		{"r_resonance", res.Formulas.Resonance},
		{"real_score", res.Formulas.Real},
	}
	for _, o := range outs {
		finite := !math.IsNaN(o.v) && !math.IsInf(o.v, 0)
		add(o.name+"_finite", o.v, finite, true, fmt.Sprintf("%s is not finite", o.name))
	}

	// 4. REAL sign follows its factors
	in := res.Inputs
	if in.Energy >= 0 && in.Matter >= 0 && in.Chromatic >= 0 {
		add("real_non_negative", res.Formulas.Real, res.Formulas.Real >= 0, true,
			fmt.Sprintf("REAL %.4g negative with non-negative factors", res.Formulas.Real))
	}

	// 5. Signature stability
	sigOK := res.Signature == res.Cipher.Signature()
	add("signature_stable", boolValue(sigOK), sigOK, true, "signature does not match cipher score")

	// 6. Trace magnitude: informational only
	tm := res.Cipher.TraceMagnitude
	add("trace_magnitude", tm, tm <= h.config.MaxTraceMagnitude, false, "")

	reason := "all checks passed"
	if len(failReasons) == 1 {
		reason = fmt.Sprintf("check failed: %s", failReasons[0])
	} else if len(failReasons) > 1 {
		reason = fmt.Sprintf("check failed: %d checks: %s", len(failReasons), failReasons[0])
	}

	return Result{
		Passed:  len(failReasons) == 0,
		Metrics: metrics,
		Reason:  reason,
	}
}

// #endregion harness

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
