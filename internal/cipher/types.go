package cipher

// #region matrix
// N is the dimension of every cipher layer.
const N = 6

// Matrix is a dense 6×6 complex matrix. Real layers carry zero imaginary parts.
type Matrix [N][N]complex128

// #endregion matrix

// #region layers
// Layers holds the three fixed cipher layers. They are built once by
// NewLayers and never mutated.
type Layers struct {
	Atomic    Matrix // identity
	Harmonic  Matrix // normalised 6-point DFT
	Chromatic Matrix // block-diagonal 60° rotation
}

// #endregion layers

// #region score
// Modulus is 6³, the number of tensor elements of three 6-fold layers.
const Modulus = 216.0

// Score is the verification signature of the layer product.
type Score struct {
	TraceMagnitude float64 `json:"trace_magnitude"`
	Mod216         float64 `json:"mod_216"`
}

// #endregion score
