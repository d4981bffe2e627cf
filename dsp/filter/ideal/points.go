package ideal

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// AngularFrequencies writes 2*pi*freqs[i]/sampleRate to dst. Panics if
// lengths differ.
func AngularFrequencies(dst, freqs []float64, sampleRate float64) {
	if len(dst) != len(freqs) {
		panic("ideal: AngularFrequencies length mismatch")
	}

	vecmath.ScaleBlock(dst, freqs, 2*math.Pi/sampleRate)
}

// UnitCirclePoints writes e^{j*2*pi*freqs[i]/sampleRate} to dst. Panics if
// lengths differ.
func UnitCirclePoints(dst []complex128, freqs []float64, sampleRate float64) {
	if len(dst) != len(freqs) {
		panic("ideal: UnitCirclePoints length mismatch")
	}

	k := 2 * math.Pi / sampleRate
	for i, hz := range freqs {
		dst[i] = cmplx.Exp(complex(0, k*hz))
	}
}

// LogFrequencies fills dst with len(dst) logarithmically spaced frequencies
// from lo to hi inclusive. A single point gets lo.
func LogFrequencies(dst []float64, lo, hi float64) {
	n := len(dst)
	switch n {
	case 0:
		return
	case 1:
		dst[0] = lo
		return
	}

	ratio := math.Log(hi / lo)
	for i := range dst {
		dst[i] = lo * math.Exp(ratio*float64(i)/float64(n-1))
	}
	dst[n-1] = hi
}
