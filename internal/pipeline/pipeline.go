// Package pipeline is the entry surface of the numeric core. Presentation
// code calls these functions and never reaches into matrices or constants.
package pipeline

import (
	"fmt"

	"github.com/danielpatrickdp/eres666/internal/cipher"
	"github.com/danielpatrickdp/eres666/internal/formula"
	"github.com/danielpatrickdp/eres666/internal/measure"
	"github.com/danielpatrickdp/eres666/internal/quality"
)

// #region entry-points
// SimulateMeasurements returns the Atomic, Harmonic and Chromatic readings.
func SimulateMeasurements(massKg, bioSignalStrength, hueDeg, value, chroma float64) ([3]measure.Reading, error) {
	return measure.Simulate(measure.Params{
		MassKg:            massKg,
		BioSignalStrength: bioSignalStrength,
		HueDeg:            hueDeg,
		Value:             value,
		Chroma:            chroma,
	})
}

// EvaluateFormulas runs the three formula stages in order.
func EvaluateFormulas(in formula.Inputs) (formula.Outputs, error) {
	return formula.Evaluate(in)
}

// ComputeCipher returns the fixed cipher verification score.
func ComputeCipher() cipher.Score {
	return cipher.Compute()
}

// AggregateQuality returns the overall integration rating.
func AggregateQuality() float64 {
	return quality.Aggregate()
}

// #endregion entry-points

// #region run
// Run chains simulators into formulas, then computes the cipher and the
// quality rating, neither of which depends on the scenario.
func Run(s Scenario) (Result, error) {
	readings, err := SimulateMeasurements(s.MassKg, s.BioSignalStrength, s.HueDeg, s.Value, s.Chroma)
	if err != nil {
		return Result{}, fmt.Errorf("simulate: %w", err)
	}

	in, err := formula.Bind(formula.Inputs{
		Resources: s.Resources,
		Purpose:   s.Purpose,
		Merit:     s.Merit,
		Time:      s.TimeSeconds,
		Space:     s.SpaceM2,
	}, readings)
	if err != nil {
		return Result{}, err
	}

	outs, err := EvaluateFormulas(in)
	if err != nil {
		return Result{}, fmt.Errorf("evaluate: %w", err)
	}

	score := ComputeCipher()

	return Result{
		Readings:   readings,
		Inputs:     in,
		Formulas:   outs,
		Cipher:     score,
		Signature:  score.Signature(),
		Quality:    AggregateQuality(),
		Categories: quality.Catalog(),
	}, nil
}

// #endregion run
