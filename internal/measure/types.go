package measure

import "math"

// #region kind
// Kind names which of the three simulated layers produced a reading.
type Kind string

const (
	KindAtomic    Kind = "atomic"
	KindHarmonic  Kind = "harmonic"
	KindChromatic Kind = "chromatic"
)

func (k Kind) String() string { return string(k) }

// #endregion kind

// #region reading
// Reading is a single simulated measurement. Values are copied, never mutated.
type Reading struct {
	Kind  Kind    `json:"kind"`
	Value float64 `json:"value"`
}

// #endregion reading

// #region params
// Params bundles the scalar inputs of all three simulators.
type Params struct {
	MassKg            float64 `json:"mass_kg"`
	BioSignalStrength float64 `json:"bio_signal_strength"`
	HueDeg            float64 `json:"hue_deg"`
	Value             float64 `json:"value"`
	Chroma            float64 `json:"chroma"`
}

// #endregion params

// #region constants
var (
	// HexagonalPacking is π/(2√3), the close-packing efficiency of circles (~0.9069).
	HexagonalPacking = math.Pi / (2 * math.Sqrt(3))

	// SixthHarmonicCoefficient is the k=6 sawtooth Fourier coefficient, -1/(3π).
	SixthHarmonicCoefficient = -1 / (3 * math.Pi)
)

const (
	// EnergyScale converts harmonic amplitude into energy units.
	EnergyScale = 1000.0

	// MunsellScale normalises Munsell value and chroma steps.
	MunsellScale = 10.0

	// MaxMunsellValue is the top of the Munsell value axis (pure white).
	MaxMunsellValue = 10.0
)

// #endregion constants
