// Package measure simulates the Atomic, Harmonic and Chromatic readings
// that feed the formula evaluator. All functions are pure.
package measure

import (
	"math"

	"github.com/danielpatrickdp/eres666/internal/fault"
)

// #region atomic
// Atomic returns massKg scaled by the hexagonal packing coefficient.
func Atomic(massKg float64) float64 {
	return massKg * HexagonalPacking
}

// #endregion atomic

// #region harmonic
// Harmonic returns |b6| * strength * 1000. Strength must lie in [0,1];
// values outside are rejected rather than clamped.
func Harmonic(strength float64) (float64, error) {
	if math.IsNaN(strength) || strength < 0 || strength > 1 {
		return 0, fault.OutOfRange("measure.harmonic", "bio_signal_strength", strength, 0, 1)
	}
	return math.Abs(SixthHarmonicCoefficient) * strength * EnergyScale, nil
}

// #endregion harmonic

// #region chromatic
// Chromatic returns (value/10)*(chroma/10).
//
// hueDeg is accepted for signature compatibility and does not take part in
// the result: Chromatic(0, 6, 6) == Chromatic(180, 6, 6).
func Chromatic(hueDeg, value, chroma float64) (float64, error) {
	if math.IsNaN(value) || value < 0 || value > MaxMunsellValue {
		return 0, fault.OutOfRange("measure.chromatic", "value", value, 0, MaxMunsellValue)
	}
	if math.IsNaN(chroma) || chroma < 0 || math.IsInf(chroma, 1) {
		return 0, fault.OutOfRange("measure.chromatic", "chroma", chroma, 0, math.Inf(1))
	}
	return (value / MunsellScale) * (chroma / MunsellScale), nil
}

// #endregion chromatic

// #region simulate
// Simulate runs the three simulators in Atomic, Harmonic, Chromatic order.
func Simulate(p Params) ([3]Reading, error) {
	var out [3]Reading

	out[0] = Reading{Kind: KindAtomic, Value: Atomic(p.MassKg)}

	e, err := Harmonic(p.BioSignalStrength)
	if err != nil {
		return [3]Reading{}, err
	}
	out[1] = Reading{Kind: KindHarmonic, Value: e}

	r, err := Chromatic(p.HueDeg, p.Value, p.Chroma)
	if err != nil {
		return [3]Reading{}, err
	}
	out[2] = Reading{Kind: KindChromatic, Value: r}

	return out, nil
}

// Find returns the reading of the given kind.
func Find(readings [3]Reading, k Kind) (Reading, bool) {
	for _, r := range readings {
		if r.Kind == k {
			return r, true
		}
	}
	return Reading{}, false
}

// #endregion simulate
