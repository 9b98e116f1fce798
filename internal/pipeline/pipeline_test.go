package pipeline

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/danielpatrickdp/eres666/internal/fault"
	"github.com/danielpatrickdp/eres666/internal/formula"
	"github.com/danielpatrickdp/eres666/internal/measure"
)

func TestSimulateMeasurementsEndToEnd(t *testing.T) {
	readings, err := SimulateMeasurements(70, 0.75, 0, 6, 6)
	if err != nil {
		t.Fatalf("SimulateMeasurements: %v", err)
	}
	want := [3]measure.Reading{
		{Kind: measure.KindAtomic, Value: 63.48},
		{Kind: measure.KindHarmonic, Value: 79.58},
		{Kind: measure.KindChromatic, Value: 0.36},
	}
	if diff := cmp.Diff(want, readings, cmpopts.EquateApprox(0, 0.005)); diff != "" {
		t.Fatalf("readings mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluateFormulasCybernetics(t *testing.T) {
	out, err := EvaluateFormulas(formula.Inputs{
		Resources: 50000, Purpose: 0.85, Merit: 150, Time: 1, Space: 1,
	})
	if err != nil {
		t.Fatalf("EvaluateFormulas: %v", err)
	}
	if math.Abs(out.Cybernetics-283.33) > 0.005 {
		t.Fatalf("C = %f, want ~283.33", out.Cybernetics)
	}
}

func TestEvaluateFormulasMeritZero(t *testing.T) {
	_, err := EvaluateFormulas(formula.Inputs{Resources: 1, Purpose: 1, Merit: 0, Time: 1, Space: 1})
	if !errors.Is(err, fault.ErrDivisionByZero) {
		t.Fatalf("expected DivisionByZero, got %v", err)
	}
}

func TestComputeCipherIdempotent(t *testing.T) {
	a, b := ComputeCipher(), ComputeCipher()
	if a != b {
		t.Fatalf("expected identical scores, got %+v and %+v", a, b)
	}
	if a.Mod216 < 0 || a.Mod216 >= 216 {
		t.Fatalf("mod 216 = %g outside [0,216)", a.Mod216)
	}
}

func TestAggregateQuality(t *testing.T) {
	got := AggregateQuality()
	if got < 0 || got > 10 || math.Abs(got-8.2) > 1e-9 {
		t.Fatalf("AggregateQuality = %f, want 8.2", got)
	}
}

func TestRunDefaultScenario(t *testing.T) {
	res, err := Run(DefaultScenario())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := formula.Outputs{
		Cybernetics:  283.3333,
		Intervention: 0.2833,
		Resonance:    5052.098,
		Real:         7.2086e-9,
	}
	opt := cmpopts.EquateApprox(1e-4, 1e-4)
	if diff := cmp.Diff(want, res.Formulas, opt); diff != "" {
		t.Fatalf("formulas mismatch (-want +got):\n%s", diff)
	}
	if res.Formulas.Real < 1e-9 || res.Formulas.Real > 1e-8 {
		t.Fatalf("REAL = %g, expected order 1e-9", res.Formulas.Real)
	}
	if res.Inputs.Matter != res.Readings[0].Value || res.Inputs.Energy != res.Readings[1].Value {
		t.Fatal("formula inputs must be bound from readings")
	}
	if res.Signature != res.Cipher.Signature() {
		t.Fatal("signature must match cipher score")
	}
	if len(res.Categories) != 5 || res.Quality != AggregateQuality() {
		t.Fatalf("unexpected quality section: %f, %d categories", res.Quality, len(res.Categories))
	}
}

func TestRunWrapsFaults(t *testing.T) {
	s := DefaultScenario()
	s.BioSignalStrength = 1.2
	if _, err := Run(s); !errors.Is(err, fault.ErrInvalidRange) {
		t.Fatalf("expected InvalidRange, got %v", err)
	}

	s = DefaultScenario()
	s.SpaceM2 = 0
	if _, err := Run(s); !errors.Is(err, fault.ErrDivisionByZero) {
		t.Fatalf("expected DivisionByZero, got %v", err)
	}
}
