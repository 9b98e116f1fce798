package replay

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/danielpatrickdp/eres666/internal/pipeline"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string        `json:"description"`
	Cases       []FixtureCase `json:"cases"`
}

// FixtureCase is one scenario with its expected outputs. Scenario keys that
// are absent keep their pipeline.DefaultScenario values.
type FixtureCase struct {
	Name        string          `json:"name"`
	Scenario    json.RawMessage `json:"scenario,omitempty"`
	Expect      FixtureExpect   `json:"expect"`
	Tolerance   Tolerance       `json:"tolerance,omitempty"`
	ExpectError string          `json:"expect_error,omitempty"` // fault kind, e.g. "division_by_zero"
}

// FixtureExpect lists optional expected values; nil fields are not checked.
type FixtureExpect struct {
	MAtomic      *float64 `json:"m_atomic,omitempty"`
	EHarmonic    *float64 `json:"e_harmonic,omitempty"`
	RChromatic   *float64 `json:"r_chromatic,omitempty"`
	Cybernetics  *float64 `json:"c_cybernetics,omitempty"`
	Resonance    *float64 `json:"r_resonance,omitempty"`
	Real         *float64 `json:"real_score,omitempty"`
	CipherMod216 *float64 `json:"cipher_mod_216,omitempty"`
	Quality      *float64 `json:"quality,omitempty"`
}

// Tolerance bounds |got - want| by Abs + Rel·|want|, so a tiny value such as
// REAL is compared on its own scale. Zero fields take the defaults.
type Tolerance struct {
	Rel float64 `json:"rel,omitempty"`
	Abs float64 `json:"abs,omitempty"`
}

const (
	DefaultRelTolerance = 1e-3
	DefaultAbsTolerance = 1e-12
)

func (t Tolerance) withDefaults() Tolerance {
	if t.Rel == 0 {
		t.Rel = DefaultRelTolerance
	}
	if t.Abs == 0 {
		t.Abs = DefaultAbsTolerance
	}
	return t
}

// Allows reports whether got is within tolerance of want.
func (t Tolerance) Allows(got, want float64) bool {
	return math.Abs(got-want) <= t.Abs+t.Rel*math.Abs(want)
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToScenario overlays the case's scenario keys on DefaultScenario.
func (fc *FixtureCase) ToScenario() (pipeline.Scenario, error) {
	s := pipeline.DefaultScenario()
	if len(fc.Scenario) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(fc.Scenario, &s); err != nil {
		return pipeline.Scenario{}, fmt.Errorf("case %s: parse scenario: %w", fc.Name, err)
	}
	return s, nil
}

// #endregion fixture-loader
