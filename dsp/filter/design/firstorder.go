package design

import (
	"math"

	"github.com/cwbudde/algo-dyneq/dsp/filter/biquad"
)

// butterworthQ returns the Q of the index-th conjugate pole pair of a
// Butterworth prototype of the given order. Index 0 has the highest Q.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))
	s := math.Sin(theta)
	if s == 0 {
		return defaultQ
	}
	return 1 / (2 * s)
}

func bilinearK(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return 0, false
	}
	return math.Tan(math.Pi * freq / sampleRate), true
}

func firstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return biquad.Passthrough()
	}
	norm := 1 / (1 + k)
	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

func firstOrderHP(freq, sampleRate float64) biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return biquad.Passthrough()
	}
	norm := 1 / (1 + k)
	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}

// firstOrderLowShelf has DC gain 10^(gainDB/20), unity gain at Nyquist and
// the geometric mean of the two at freq.
func firstOrderLowShelf(freq, gainDB, sampleRate float64) biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return biquad.Passthrough()
	}
	sg := math.Pow(10, gainDB/40)

	b0 := 1 + k*sg
	b1 := k*sg - 1
	a0 := 1 + k/sg
	a1 := k/sg - 1

	return normalizeBiquad(b0, b1, 0, a0, a1, 0)
}

// firstOrderHighShelf has unity DC gain and 10^(gainDB/20) at Nyquist.
func firstOrderHighShelf(freq, gainDB, sampleRate float64) biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return biquad.Passthrough()
	}
	sg := math.Pow(10, gainDB/40)

	b0 := sg + k
	b1 := k - sg
	a0 := 1/sg + k
	a1 := k - 1/sg

	return normalizeBiquad(b0, b1, 0, a0, a1, 0)
}
