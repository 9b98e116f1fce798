package quality

// #region category
// Category is one row of the integration quality assessment.
type Category struct {
	Name     string   `json:"name" yaml:"name"`
	Score    float64  `json:"score" yaml:"score"` // 0-10
	Evidence []string `json:"evidence" yaml:"evidence"`
}

// #endregion category

// #region bounds
const (
	MinScore = 0.0
	MaxScore = 10.0
)

// #endregion bounds

// #region catalog
var catalog = []Category{
	{
		Name:  "Mathematical Consistency",
		Score: 9.0,
		Evidence: []string{
			"666 provides quantifiable M, E, R values",
			"These feed directly into ERES formulas",
			"Dimensional analysis coherent",
			"No mathematical contradictions",
		},
	},
	{
		Name:  "Conceptual Coherence",
		Score: 9.5,
		Evidence: []string{
			"Trinity structures align (666 = Atomic-Harmonic-Chromatic)",
			"Trinity structures align (ERES = C-MECR-REAL)",
			"Both use resonance as central concept",
			"Both ground in physical measurement",
		},
	},
	{
		Name:  "Measurement Practicality",
		Score: 7.0,
		Evidence: []string{
			"Kirlian photography is established technology",
			"Fourier analysis is standard signal processing",
			"Munsell color is standardized system",
			"BUT: Calibration protocols need development",
		},
	},
	{
		Name:  "Empirical Testability",
		Score: 7.5,
		Evidence: []string{
			"666 provides concrete measurement methodology",
			"ERES provides theoretical predictions",
			"Integration creates testable hypotheses",
			"BUT: Needs validation studies",
		},
	},
	{
		Name:  "Operational Integration",
		Score: 8.0,
		Evidence: []string{
			"666 serves as BEST (Bio-Electric Signature Time)",
			"BEST feeds into REAL formula as specified",
			"Real-time measurement possible",
			"Feedback loop achievable",
		},
	},
}

// #endregion catalog
