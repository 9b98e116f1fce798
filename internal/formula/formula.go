// Package formula evaluates the three chained ERES formulas:
//
//	C    = R × P / M
//	R    = M × E + C/1000
//	REAL = (E · M · R) / (T · S)
package formula

import (
	"fmt"
	"math"

	"github.com/danielpatrickdp/eres666/internal/fault"
	"github.com/danielpatrickdp/eres666/internal/measure"
)

// #region stages
// Cybernetics is stage 1: (Resources × Purpose) / Merit.
func Cybernetics(in Inputs) (float64, error) {
	if in.Merit == 0 {
		return 0, fault.DivideByZero("formula.cybernetics", "M_merit")
	}
	return (in.Resources * in.Purpose) / in.Merit, nil
}

// Resonance is stage 2: (Matter × Energy) + c/1000, where c is the stage 1 result.
func Resonance(in Inputs, c float64) float64 {
	return (in.Matter * in.Energy) + c/InterventionScale
}

// Real is stage 3: (Energy × Matter × Chromatic) / (Time × Space).
func Real(in Inputs) (float64, error) {
	if in.Time == 0 {
		return 0, fault.DivideByZero("formula.real", "T_time")
	}
	if in.Space == 0 {
		return 0, fault.DivideByZero("formula.real", "S_space")
	}
	if math.IsNaN(in.Time) || in.Time < 0 {
		return 0, fault.OutOfRange("formula.real", "T_time", in.Time, 0, math.Inf(1))
	}
	if math.IsNaN(in.Space) || in.Space < 0 {
		return 0, fault.OutOfRange("formula.real", "S_space", in.Space, 0, math.Inf(1))
	}
	return (in.Energy * in.Matter * in.Chromatic) / (in.Time * in.Space), nil
}

// #endregion stages

// #region evaluate
// Evaluate runs stage 1, 2 and 3 in order and returns on the first failure.
// A stage whose result overflows or is NaN fails with fault.InvalidRange.
func Evaluate(in Inputs) (Outputs, error) {
	c, err := Cybernetics(in)
	if err != nil {
		return Outputs{}, err
	}
	if err := finite("formula.cybernetics", "C_cybernetics", c); err != nil {
		return Outputs{}, err
	}

	out := Outputs{
		Cybernetics:  c,
		Intervention: c / InterventionScale,
		Resonance:    Resonance(in, c),
	}
	if err := finite("formula.resonance", "R_resonance", out.Resonance); err != nil {
		return Outputs{}, err
	}

	score, err := Real(in)
	if err != nil {
		return Outputs{}, err
	}
	if err := finite("formula.real", "REAL", score); err != nil {
		return Outputs{}, err
	}
	out.Real = score

	return out, nil
}

func finite(op, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fault.NotFinite(op, field, v)
	}
	return nil
}

// #endregion evaluate

// #region bind
// Bind copies the simulated Matter, Energy and Chromatic readings into base.
func Bind(base Inputs, readings [3]measure.Reading) (Inputs, error) {
	for _, k := range []measure.Kind{measure.KindAtomic, measure.KindHarmonic, measure.KindChromatic} {
		r, ok := measure.Find(readings, k)
		if !ok {
			return Inputs{}, fmt.Errorf("bind: missing %s reading", k)
		}
		switch k {
		case measure.KindAtomic:
			base.Matter = r.Value
		case measure.KindHarmonic:
			base.Energy = r.Value
		case measure.KindChromatic:
			base.Chromatic = r.Value
		}
	}
	return base, nil
}

// #endregion bind
