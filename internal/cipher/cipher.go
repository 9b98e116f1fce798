// Package cipher computes the 666 cipher: |trace(F · Rrot · I)| and its
// residue modulo 216, where F is the normalised 6-point DFT matrix, Rrot a
// block-diagonal 60° rotation and I the identity.
package cipher

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
	"math/cmplx"
)

// #region layers
// Identity returns the 6×6 identity matrix.
func Identity() Matrix {
	var m Matrix
	for i := 0; i < N; i++ {
		m[i][i] = 1
	}
	return m
}

// DFT returns F[m][n] = ω^(m·n)/√6 with ω = e^(2πi/6).
func DFT() Matrix {
	var f Matrix
	norm := complex(1/math.Sqrt(N), 0)
	for m := 0; m < N; m++ {
		omega := cmplx.Exp(complex(0, 2*math.Pi*float64(m)/N))
		for n := 0; n < N; n++ {
			f[m][n] = cmplx.Pow(omega, complex(float64(n), 0)) * norm
		}
	}
	return f
}

// Rotation returns three 2×2 rotation blocks by 60° on the diagonal.
func Rotation() Matrix {
	var r Matrix
	theta := math.Pi / 3
	c, s := complex(math.Cos(theta), 0), complex(math.Sin(theta), 0)
	for b := 0; b < N/2; b++ {
		i := 2 * b
		r[i][i], r[i][i+1] = c, -s
		r[i+1][i], r[i+1][i+1] = s, c
	}
	return r
}

// NewLayers builds all three layers.
func NewLayers() Layers {
	return Layers{
		Atomic:    Identity(),
		Harmonic:  DFT(),
		Chromatic: Rotation(),
	}
}

// #endregion layers

// #region algebra
// Mul returns the matrix product a·b.
func Mul(a, b Matrix) Matrix {
	var p Matrix
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			var sum complex128
			for k := 0; k < N; k++ {
				sum += a[i][k] * b[k][j]
			}
			p[i][j] = sum
		}
	}
	return p
}

// Trace returns the sum of the diagonal entries.
func Trace(m Matrix) complex128 {
	var t complex128
	for i := 0; i < N; i++ {
		t += m[i][i]
	}
	return t
}

// #endregion algebra

// #region verify
// Verify multiplies harmonic · chromatic · atomic left to right and reduces
// the trace of the product. The identity factor is multiplied, not skipped.
func Verify(harmonic, chromatic, atomic Matrix) Score {
	product := Mul(Mul(harmonic, chromatic), atomic)
	mag := cmplx.Abs(Trace(product))
	return Score{
		TraceMagnitude: mag,
		Mod216:         mod(mag, Modulus),
	}
}

// Compute builds the fixed layers and verifies them.
func Compute() Score {
	l := NewLayers()
	return Verify(l.Harmonic, l.Chromatic, l.Atomic)
}

// mod is a floored floating modulo, always in [0, m).
func mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		r = 0
	}
	return r
}

// #endregion verify

// #region signature
// Signature returns a hex SHA-256 over the IEEE-754 bits of both score fields.
func (s Score) Signature() string {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf[:8], math.Float64bits(s.TraceMagnitude))
	binary.BigEndian.PutUint64(buf[8:], math.Float64bits(s.Mod216))
	h := sha256.Sum256(buf)
	return hex.EncodeToString(h[:])
}

// #endregion signature
