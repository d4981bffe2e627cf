package ideal

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-dyneq/internal/testutil"
)

func TestLogFrequencies(t *testing.T) {
	freqs := make([]float64, 31)
	LogFrequencies(freqs, 20, 20000)

	if freqs[0] != 20 || freqs[30] != 20000 {
		t.Fatalf("endpoints = %v, %v", freqs[0], freqs[30])
	}
	testutil.RequireNearlyEqual(t, "decade midpoint", freqs[10], 200, 1e-9)
	testutil.RequireNonDecreasing(t, freqs, 0)

	one := []float64{0}
	LogFrequencies(one, 50, 100)
	if one[0] != 50 {
		t.Fatalf("single point = %v, want 50", one[0])
	}
	LogFrequencies(nil, 1, 2)
}

func TestAngularAndUnitCirclePoints(t *testing.T) {
	freqs := []float64{0, 12000, 24000}
	w := make([]float64, 3)
	AngularFrequencies(w, freqs, 48000)
	testutil.RequireSliceNearlyEqual(t, w, []float64{0, math.Pi / 2, math.Pi}, 1e-15)

	z := make([]complex128, 3)
	UnitCirclePoints(z, freqs, 48000)
	for i := range z {
		if d := cmplx.Abs(z[i] - cmplx.Exp(complex(0, w[i]))); d > 1e-15 {
			t.Fatalf("point %d: %v, want e^{j%v}", i, z[i], w[i])
		}
		testutil.RequireNearlyEqual(t, "|z|", cmplx.Abs(z[i]), 1, 1e-15)
	}
}

func TestPointBuildersPanicOnMismatch(t *testing.T) {
	for name, fn := range map[string]func(){
		"angular": func() { AngularFrequencies(make([]float64, 2), make([]float64, 3), 48000) },
		"circle":  func() { UnitCirclePoints(make([]complex128, 1), make([]float64, 3), 48000) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			fn()
		})
	}
}
