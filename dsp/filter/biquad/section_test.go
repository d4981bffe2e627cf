package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	s := NewSection(c)
	if s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}
	if st := s.State(); st != [2]float64{0, 0} {
		t.Fatalf("initial state not zero: %v", st)
	}
}

func TestProcessSample_Passthrough(t *testing.T) {
	s := NewSection(Passthrough())
	for i, x := range []float64{1, 0, -1, 0.5, 0.25} {
		if y := s.ProcessSample(x); !almostEqual(y, x, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestProcessSample_DFIIT(t *testing.T) {
	// Hand-traced DF-II-T with B0=0.25, B1=0.5, B2=0.25, A1=-0.2, A2=0.04:
	//
	// n=0: y=0.25, d0=0.55, d1=0.24
	// n=1: y=0.55, d0=0.35, d1=-0.022
	// n=2: y=0.35, d0=0.048, d1=-0.014
	s := NewSection(Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04})

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		if got := s.ProcessSample(x); !almostEqual(got, w, 1e-12) {
			t.Fatalf("n=%d: got %.15f, want %.15f", i, got, w)
		}
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.3, B2: 0.1, A1: -0.6, A2: 0.2}
	input := []float64{1, -0.5, 0.25, 0.8, -1, 0.1, 0, 0.4, -0.3}

	ref := NewSection(c)
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	s := NewSection(c)
	buf := append([]float64(nil), input...)
	s.ProcessBlock(buf)

	for i := range buf {
		if !almostEqual(buf[i], want[i], eps) {
			t.Fatalf("index %d: block=%v sample=%v", i, buf[i], want[i])
		}
	}
	if s.State() != ref.State() {
		t.Fatalf("state mismatch: block=%v sample=%v", s.State(), ref.State())
	}
}

func TestState_SaveRestore(t *testing.T) {
	s := NewSection(Coefficients{B0: 0.5, B1: 0.1, B2: 0.2, A1: -0.3, A2: 0.05})
	s.ProcessSample(1)
	s.ProcessSample(-0.5)

	saved := s.State()
	a := s.ProcessSample(0.3)

	s.SetState(saved)
	if b := s.ProcessSample(0.3); a != b {
		t.Fatalf("restored state produced %v, want %v", b, a)
	}

	s.Reset()
	if s.State() != [2]float64{} {
		t.Fatalf("Reset left state %v", s.State())
	}
}

func TestCoefficientsScale(t *testing.T) {
	c := Coefficients{B0: 1, B1: -2, B2: 0.5, A1: 0.1, A2: 0.2}
	got := c.Scale(2)
	want := Coefficients{B0: 2, B1: -4, B2: 1, A1: 0.1, A2: 0.2}
	if got != want {
		t.Fatalf("Scale(2) = %v, want %v", got, want)
	}
}

func TestCoefficientsFirstOrder(t *testing.T) {
	if !(Coefficients{B0: 0.5, B1: 0.5, A1: -0.1}).FirstOrder() {
		t.Fatal("expected first-order section")
	}
	if (Coefficients{B0: 1, B2: 0.1}).FirstOrder() {
		t.Fatal("B2 != 0 is second order")
	}
}
