package pipeline

import (
	"github.com/danielpatrickdp/eres666/internal/cipher"
	"github.com/danielpatrickdp/eres666/internal/formula"
	"github.com/danielpatrickdp/eres666/internal/measure"
	"github.com/danielpatrickdp/eres666/internal/quality"
)

// #region scenario
// Scenario is every caller-supplied scalar for one full run. TimeSeconds and
// SpaceM2 must already be in seconds and square metres.
type Scenario struct {
	MassKg            float64 `json:"mass_kg"`
	BioSignalStrength float64 `json:"bio_signal_strength"`
	HueDeg            float64 `json:"hue_deg"`
	Value             float64 `json:"value"`
	Chroma            float64 `json:"chroma"`
	Resources         float64 `json:"resources"`
	Purpose           float64 `json:"purpose"`
	Merit             float64 `json:"merit"`
	TimeSeconds       float64 `json:"time_seconds"`
	SpaceM2           float64 `json:"space_m2"`
}

// SecondsPerYear is the 365-day year used to express lifetimes in seconds.
const SecondsPerYear = 365 * 24 * 3600

// DefaultScenario is the personal sustainability test case: a 70 kg adult
// at bio-strength 0.75, a 5R 6/6 red signature, $50k resources, 80 years in 100 m².
func DefaultScenario() Scenario {
	return Scenario{
		MassKg:            70,
		BioSignalStrength: 0.75,
		HueDeg:            0,
		Value:             6,
		Chroma:            6,
		Resources:         50000,
		Purpose:           0.85,
		Merit:             150,
		TimeSeconds:       80 * SecondsPerYear,
		SpaceM2:           100,
	}
}

// #endregion scenario

// #region result
// Result is everything the presentation layer renders for one run.
type Result struct {
	Readings   [3]measure.Reading `json:"readings"`
	Inputs     formula.Inputs     `json:"inputs"`
	Formulas   formula.Outputs    `json:"formulas"`
	Cipher     cipher.Score       `json:"cipher"`
	Signature  string             `json:"signature"`
	Quality    float64            `json:"quality"`
	Categories []quality.Category `json:"categories"`
}

// #endregion result
