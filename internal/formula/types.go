package formula

// #region inputs
// Inputs is the scalar bag consumed by the three formulas. Matter, Energy and
// Chromatic normally come from the measurement simulators; the rest are
// caller-supplied. Time is in seconds and Space in square metres; no unit
// conversion happens here.
type Inputs struct {
	Resources float64 `json:"R_resources"`
	Purpose   float64 `json:"P_purpose"`
	Merit     float64 `json:"M_merit"` // divisor, must be non-zero
	Matter    float64 `json:"M_matter"`
	Energy    float64 `json:"E_energy"`
	Time      float64 `json:"T_time"`  // divisor, must be > 0
	Space     float64 `json:"S_space"` // divisor, must be > 0
	Chromatic float64 `json:"R_chromatic"`
}

// #endregion inputs

// #region outputs
// Outputs holds the stage results in evaluation order.
type Outputs struct {
	Cybernetics  float64 `json:"C_cybernetics"`
	Intervention float64 `json:"C_intervention"` // Cybernetics / InterventionScale
	Resonance    float64 `json:"R_resonance"`
	Real         float64 `json:"REAL_score"`
}

// #endregion outputs

// InterventionScale normalises the cybernetics score before it enters stage 2.
const InterventionScale = 1000.0
