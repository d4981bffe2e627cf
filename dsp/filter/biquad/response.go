package biquad

import (
	"math"
	"math/cmplx"
)

// ResponseAt evaluates the transfer function H(z) at the complex point z.
// For z on the unit circle, z = e^{jw}, this is the frequency response at
// angular frequency w (radians per sample).
func (c *Coefficients) ResponseAt(z complex128) complex128 {
	zi := 1 / z

	num := (complex(c.B2, 0)*zi+complex(c.B1, 0))*zi + complex(c.B0, 0)
	den := (complex(c.A2, 0)*zi+complex(c.A1, 0))*zi + 1

	return num / den
}

// Response computes the complex frequency response H(e^jw) of a biquad
// at the given frequency (Hz) and sample rate (Hz).
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	return c.ResponseAt(cmplx.Exp(complex(0, w)))
}

// MagnitudeSquaredAt returns |H(e^jw)|^2 at angular frequency w (radians per
// sample) using a closed-form expression. Rounding can push a true zero
// slightly negative; the result is clamped at 0.
func (c *Coefficients) MagnitudeSquaredAt(w float64) float64 {
	cw := 2 * math.Cos(w)
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw

	return math.Max(num/den, 0)
}

// MagnitudeAt returns |H(e^jw)| at angular frequency w (radians per sample).
func (c *Coefficients) MagnitudeAt(w float64) float64 {
	return math.Sqrt(c.MagnitudeSquaredAt(w))
}

// MagnitudeSquared returns |H(f)|^2 at freqHz for the given sample rate.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	return c.MagnitudeSquaredAt(2 * math.Pi * freqHz / sampleRate)
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Response computes the complex frequency response of the full cascade
// as the product of individual section responses.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}

	return h
}

// MagnitudeDB returns the cascaded magnitude response in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	h := c.Response(freqHz, sampleRate)
	return 20 * math.Log10(cmplx.Abs(h))
}

// ImpulseResponse computes n samples of the impulse response h[n]
// by feeding an impulse through the section. The filter state is
// saved and restored so this method does not modify the section.
func (s *Section) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := s.State()
	s.Reset()

	ir := make([]float64, n)
	ir[0] = s.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = s.ProcessSample(0)
	}

	s.SetState(saved)

	return ir
}

// ImpulseResponse computes n samples of the cascade impulse response.
// The chain state is saved and restored.
func (c *Chain) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := c.State()
	c.Reset()

	ir := make([]float64, n)
	ir[0] = c.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = c.ProcessSample(0)
	}

	c.SetState(saved)

	return ir
}
