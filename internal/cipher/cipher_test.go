package cipher

import (
	"math"
	"math/cmplx"
	"testing"
)

const tol = 1e-12

func TestIdentity(t *testing.T) {
	id := Identity()
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if id[i][j] != want {
				t.Fatalf("I[%d][%d] = %v, want %v", i, j, id[i][j], want)
			}
		}
	}
}

func TestDFTIsUnitary(t *testing.T) {
	f := DFT()
	// F · F^H must be the identity.
	var fh Matrix
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			fh[i][j] = cmplx.Conj(f[j][i])
		}
	}
	p := Mul(f, fh)
	id := Identity()
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			if cmplx.Abs(p[i][j]-id[i][j]) > tol {
				t.Fatalf("F·F^H[%d][%d] = %v", i, j, p[i][j])
			}
		}
	}
	if cmplx.Abs(f[0][0]-complex(1/math.Sqrt(6), 0)) > tol {
		t.Fatalf("F[0][0] = %v, want 1/√6", f[0][0])
	}
}

func TestRotationBlocks(t *testing.T) {
	r := Rotation()
	s := math.Sqrt(3) / 2
	for b := 0; b < 3; b++ {
		i := 2 * b
		if math.Abs(real(r[i][i])-0.5) > tol || math.Abs(real(r[i+1][i+1])-0.5) > tol {
			t.Fatalf("block %d cos = %v", b, r[i][i])
		}
		if math.Abs(real(r[i][i+1])+s) > tol || math.Abs(real(r[i+1][i])-s) > tol {
			t.Fatalf("block %d sin entries = %v, %v", b, r[i][i+1], r[i+1][i])
		}
	}
	// Off-block entries are zero.
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			if i/2 != j/2 && r[i][j] != 0 {
				t.Fatalf("R[%d][%d] = %v, want 0", i, j, r[i][j])
			}
			if imag(r[i][j]) != 0 {
				t.Fatalf("R[%d][%d] has imaginary part", i, j)
			}
		}
	}
}

func TestMulByIdentityIsInert(t *testing.T) {
	f := DFT()
	if Mul(f, Identity()) != f {
		t.Fatal("F·I must equal F")
	}
}

func TestComputeIdempotent(t *testing.T) {
	a := Compute()
	b := Compute()
	if a != b {
		t.Fatalf("expected bit-identical scores, got %+v and %+v", a, b)
	}
	if a.Signature() != b.Signature() {
		t.Fatal("expected stable signature")
	}
	if len(a.Signature()) != 64 {
		t.Fatalf("expected hex sha256, got %q", a.Signature())
	}
}

func TestComputeTraceVanishes(t *testing.T) {
	// trace(F·Rrot) = cos60 · trace(F), and the 6-point Gauss sum is zero.
	s := Compute()
	if s.TraceMagnitude < 0 || s.TraceMagnitude > 1e-9 {
		t.Fatalf("expected trace magnitude ~0, got %g", s.TraceMagnitude)
	}
	if s.Mod216 < 0 || s.Mod216 >= Modulus {
		t.Fatalf("mod 216 out of range: %g", s.Mod216)
	}
}

func TestVerifyUsesLayerOrder(t *testing.T) {
	l := NewLayers()
	got := Verify(l.Harmonic, l.Chromatic, l.Atomic)
	want := cmplx.Abs(Trace(Mul(Mul(l.Harmonic, l.Chromatic), l.Atomic)))
	if got.TraceMagnitude != want {
		t.Fatalf("trace magnitude %g, want %g", got.TraceMagnitude, want)
	}
}

func TestVerifyReducesModulo216(t *testing.T) {
	// Scaling the identity layer by 100 gives trace(100·I·I·I) = 600.
	var big Matrix
	for i := 0; i < N; i++ {
		big[i][i] = 100
	}
	s := Verify(big, Identity(), Identity())
	if math.Abs(s.TraceMagnitude-600) > tol {
		t.Fatalf("trace magnitude %g, want 600", s.TraceMagnitude)
	}
	if math.Abs(s.Mod216-168) > tol {
		t.Fatalf("mod 216 = %g, want 168", s.Mod216)
	}
}

func TestModRange(t *testing.T) {
	for _, x := range []float64{0, 215.999, 216, 432.5, -1, -216, 1e9} {
		r := mod(x, Modulus)
		if r < 0 || r >= Modulus {
			t.Errorf("mod(%g) = %g outside [0,216)", x, r)
		}
	}
	if mod(-1, Modulus) != 215 {
		t.Fatalf("mod(-1) = %g, want 215", mod(-1, Modulus))
	}
}
