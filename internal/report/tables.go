package report

// #region mapping
// layerMapping pairs each 666 layer with the ERES formula it measures for.
type layerMapping struct {
	Component     string
	Formula       string
	Role          string
	Function      string
	PhysicalBasis string
	Measurement   string
}

var mappings = []layerMapping{
	{
		Component:     "666 Atomic 6",
		Formula:       "C = R × P / M",
		Role:          "Foundation/Allocation",
		Function:      "Determines WHO gets WHAT (resource allocation logic)",
		PhysicalBasis: "Carbon-12 hexagonal symmetry = material substrate",
		Measurement:   "Kirlian discharge patterns show hexagonal structure",
	},
	{
		Component:     "666 Harmonic 6",
		Formula:       "M × E + C = R",
		Role:          "Transformation/Vibration",
		Function:      "HOW equilibrium achieved (transformation logic)",
		PhysicalBasis: "Fourier 6th harmonic = energy transformation",
		Measurement:   "Bio-electric field frequency spectrum",
	},
	{
		Component:     "666 Chromatic 6",
		Formula:       "REAL = (E·M·R)/(T·S)",
		Role:          "Manifestation/Verification",
		Function:      "WHAT is actually real in spacetime (empirical verification)",
		PhysicalBasis: "Munsell color = visible manifestation",
		Measurement:   "Color signatures reveal resonance states",
	},
}

// #endregion mapping

// #region trinity
var trinityHeader = [5]string{"Layer", "666 Component", "ERES Formula", "Function", "Measurement"}

var trinityRows = [][5]string{
	{"FOUNDATION", "Atomic 6 (C-12)", "C = R×P/M", "Allocation", "Hexagonal pattern"},
	{"TRANSFORM", "Harmonic 6 (k=6)", "M×E+C=R", "Equilibrium", "Frequency 47 Hz"},
	{"VERIFY", "Chromatic 6 (5R 6/6)", "REAL=(E·M·R)/(T·S)", "Reality Test", "Color (6,0,6)"},
}

// #endregion trinity

// #region control-loop
var controlLoop = []string{
	"SENSE via 666 (M, E, R measured)",
	"CALCULATE via ERES F1 (C computed)",
	"ACT via ERES F2 (R achieved)",
	"VERIFY via ERES F3 (REAL scored)",
	"FEEDBACK to 666 (remeasure)",
	"ITERATE continuously",
}

// #endregion control-loop
