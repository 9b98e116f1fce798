package check

// #region check-config
// Config holds thresholds for cross-validating a pipeline result.
type Config struct {
	MaxTraceMagnitude float64 // informational: analytic trace of the layer product is zero
	MinQuality        float64
	MaxQuality        float64
}

// DefaultConfig returns the bounds the core guarantees.
func DefaultConfig() Config {
	return Config{
		MaxTraceMagnitude: 1e-9,
		MinQuality:        0,
		MaxQuality:        10,
	}
}

// #endregion check-config

// #region metric
// Metric captures a single validation check result.
type Metric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Pass  bool    `json:"pass"`
}

// #endregion metric

// #region result
// Result is the output of cross-validation.
type Result struct {
	Passed  bool     `json:"passed"`
	Metrics []Metric `json:"metrics"`
	Reason  string   `json:"reason"`
}

// #endregion result
