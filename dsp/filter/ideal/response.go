package ideal

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dyneq/dsp/core"
)

const (
	// FloorDB is returned by DB when the cascade magnitude is not positive.
	FloorDB = -480.0

	minMagnitude = 1e-12
)

// ResizeResponse sizes the complex response buffer for n query points and
// resets it to unity.
func (f *Filter) ResizeResponse(n int) {
	f.response = core.EnsureLen(f.response, n)
	core.Fill(f.response, complex(1, 0))
}

// ResizeMagnitude sizes the decibel buffer for n query frequencies.
func (f *Filter) ResizeMagnitude(n int) {
	f.decibels = core.EnsureLen(f.decibels, n)
	f.scratch = core.EnsureLen(f.scratch, n)
}

// Response returns the cached complex response.
func (f *Filter) Response() []complex128 { return f.response }

// Decibels returns the cached magnitude response in dB.
func (f *Filter) Decibels() []float64 { return f.decibels }

// UpdateResponse recomputes the cascade and the complex response at each
// z-plane point when a parameter changed, and reports whether it did. For
// unit-circle points this is the frequency response. Panics if len(points)
// differs from the response buffer.
func (f *Filter) UpdateResponse(points []complex128) bool {
	if len(points) != len(f.response) {
		panic("ideal: UpdateResponse length mismatch")
	}

	if !f.dirty.Claim() {
		return false
	}

	f.recompute()

	core.Fill(f.response, complex(1, 0))
	for s := range f.active {
		c := &f.sections[s]
		for i, z := range points {
			f.response[i] *= c.ResponseAt(z)
		}
	}

	return true
}

// UpdateMagnitude recomputes the cascade and the dB magnitude at each
// angular frequency w (radians per sample) when a parameter changed, and
// reports whether it did. Magnitudes are floored at 1e-12 (-240 dB).
// Panics if len(w) differs from the magnitude buffer.
func (f *Filter) UpdateMagnitude(w []float64) bool {
	if len(w) != len(f.decibels) {
		panic("ideal: UpdateMagnitude length mismatch")
	}

	if !f.dirty.Claim() {
		return false
	}

	f.recompute()

	gains := f.decibels
	core.Fill(gains, 1)
	for s := range f.active {
		c := &f.sections[s]
		for i, wi := range w {
			f.scratch[i] = c.MagnitudeAt(wi)
		}
		vecmath.MulBlockInPlace(gains, f.scratch)
	}

	for i, g := range gains {
		f.decibels[i] = 20 * mathLog10(math.Max(g, minMagnitude))
	}

	return true
}

// DB returns the cascade magnitude at freqHz in dB for the sample rate of
// the last recompute, or FloorDB when the magnitude is not positive.
func (f *Filter) DB(freqHz float64) float64 {
	w := 2 * math.Pi * freqHz / f.designRate

	g := 1.0
	for s := range f.active {
		g *= f.sections[s].MagnitudeAt(w)
	}

	if g > 0 {
		return 20 * mathLog10(g)
	}

	return FloorDB
}

// AddDecibels adds the cached dB magnitude into dst element-wise, so several
// bands can be summed into one curve. Panics if lengths differ.
func (f *Filter) AddDecibels(dst []float64) {
	if len(dst) != len(f.decibels) {
		panic("ideal: AddDecibels length mismatch")
	}

	vecmath.AddBlockInPlace(dst, f.decibels)
}
