package design

import (
	"math"

	"github.com/cwbudde/algo-dyneq/dsp/filter/biquad"
)

const (
	// MinQ is the smallest quality factor a formula will use.
	MinQ = 0.025

	minFreq       = 1e-3
	maxFreqFactor = 0.499
)

// Params are the inputs to a design formula.
type Params struct {
	Freq       float64 // Hz
	SampleRate float64 // Hz
	GainDB     float64
	Q          float64
	Order      int
}

// sanitize clamps p into the domain every formula accepts. ok is false
// when the sample rate is unusable.
func (p Params) sanitize() (Params, bool) {
	if !(p.SampleRate > 0) || math.IsInf(p.SampleRate, 0) {
		return p, false
	}

	hi := maxFreqFactor * p.SampleRate
	switch {
	case math.IsNaN(p.Freq) || p.Freq < minFreq:
		p.Freq = minFreq
	case p.Freq > hi:
		p.Freq = hi
	}

	if math.IsNaN(p.Q) {
		p.Q = defaultQ
	}
	p.Q = math.Max(p.Q, MinQ)

	if math.IsNaN(p.GainDB) || math.IsInf(p.GainDB, 0) {
		p.GainDB = 0
	}

	if p.Order < 1 {
		p.Order = 1
	}

	return p, true
}

// Formula fills dst with the cascade for p and returns the number of
// sections written. It never writes beyond len(dst).
type Formula func(dst []biquad.Coefficients, p Params) int

// Table maps each FilterType to its Formula.
type Table [numFilterTypes]Formula

// DefaultTable returns a table populated with the RBJ cookbook formulas.
func DefaultTable() *Table {
	t := &Table{}
	t.Register(Peak, designPeak)
	t.Register(LowShelf, designLowShelf)
	t.Register(HighShelf, designHighShelf)
	t.Register(TiltShelf, designTiltShelf)
	t.Register(LowPass, designLowPass)
	t.Register(HighPass, designHighPass)
	t.Register(BandPass, designBandPass)
	t.Register(Notch, designNotch)
	return t
}

// Register installs f for typ. Unknown types are ignored.
func (t *Table) Register(typ FilterType, f Formula) {
	if !typ.Valid() {
		return
	}
	t[typ] = f
}

// Design fills dst using the formula registered for typ and returns the
// section count, clamped to len(dst). A type without a formula yields a
// single passthrough section.
func (t *Table) Design(dst []biquad.Coefficients, typ FilterType, p Params) int {
	if len(dst) == 0 {
		return 0
	}

	var f Formula
	if typ.Valid() {
		f = t[typ]
	}
	if f == nil {
		dst[0] = biquad.Passthrough()
		return 1
	}

	n := f(dst, p)
	return max(0, min(n, len(dst)))
}

// SectionCount returns the number of sections the default formulas use for
// the given order: one for order 1, otherwise ceil(order/2).
func SectionCount(order int) int {
	if order < 1 {
		return 1
	}
	return (order + 1) / 2
}

func passthrough(dst []biquad.Coefficients) int {
	if len(dst) == 0 {
		return 0
	}
	dst[0] = biquad.Passthrough()
	return 1
}

// sectionQ returns the Q of second-order section i of an order-N
// Butterworth-aligned cascade. Order 2 uses q directly; higher orders scale
// the highest-Q section by q/0.7071.
func sectionQ(order, i int, q float64) float64 {
	if order == 2 {
		return q
	}
	bq := butterworthQ(order, i)
	if i == 0 {
		bq *= q / defaultQ
	}
	return bq
}

// cascade writes the Butterworth-aligned decomposition of p.Order. second
// designs section i with the given Q and gain share; first designs the
// trailing first-order section with its gain share. Gain is split in
// proportion to section order.
func cascade(
	dst []biquad.Coefficients,
	p Params,
	second func(q, gainDB float64) biquad.Coefficients,
	first func(gainDB float64) biquad.Coefficients,
) int {
	order := p.Order
	if order == 1 {
		if len(dst) == 0 {
			return 0
		}
		dst[0] = first(p.GainDB)
		return 1
	}

	per := p.GainDB / float64(order)
	pairs := order / 2
	n := 0
	for i := 0; i < pairs && n < len(dst); i++ {
		dst[n] = second(sectionQ(order, i, p.Q), 2*per)
		n++
	}
	if order%2 == 1 && n < len(dst) {
		dst[n] = first(per)
		n++
	}
	return n
}

// identical writes ceil(order/2) copies of one second-order design, with
// the gain split evenly between them.
func identical(dst []biquad.Coefficients, p Params, design func(gainDB float64) biquad.Coefficients) int {
	n := min(SectionCount(p.Order), len(dst))
	if n == 0 {
		return 0
	}
	c := design(p.GainDB / float64(n))
	for i := range n {
		dst[i] = c
	}
	return n
}

func designPeak(dst []biquad.Coefficients, p Params) int {
	p, ok := p.sanitize()
	if !ok {
		return passthrough(dst)
	}
	return identical(dst, p, func(g float64) biquad.Coefficients {
		return PeakBiquad(p.Freq, g, p.Q, p.SampleRate)
	})
}

func designBandPass(dst []biquad.Coefficients, p Params) int {
	p, ok := p.sanitize()
	if !ok {
		return passthrough(dst)
	}
	return identical(dst, p, func(float64) biquad.Coefficients {
		return BandpassBiquad(p.Freq, p.Q, p.SampleRate)
	})
}

func designNotch(dst []biquad.Coefficients, p Params) int {
	p, ok := p.sanitize()
	if !ok {
		return passthrough(dst)
	}
	return identical(dst, p, func(float64) biquad.Coefficients {
		return NotchBiquad(p.Freq, p.Q, p.SampleRate)
	})
}

func designLowPass(dst []biquad.Coefficients, p Params) int {
	p, ok := p.sanitize()
	if !ok {
		return passthrough(dst)
	}
	return cascade(dst, p,
		func(q, _ float64) biquad.Coefficients { return LowpassBiquad(p.Freq, q, p.SampleRate) },
		func(float64) biquad.Coefficients { return firstOrderLP(p.Freq, p.SampleRate) },
	)
}

func designHighPass(dst []biquad.Coefficients, p Params) int {
	p, ok := p.sanitize()
	if !ok {
		return passthrough(dst)
	}
	return cascade(dst, p,
		func(q, _ float64) biquad.Coefficients { return HighpassBiquad(p.Freq, q, p.SampleRate) },
		func(float64) biquad.Coefficients { return firstOrderHP(p.Freq, p.SampleRate) },
	)
}

func designLowShelf(dst []biquad.Coefficients, p Params) int {
	p, ok := p.sanitize()
	if !ok {
		return passthrough(dst)
	}
	return cascade(dst, p,
		func(q, g float64) biquad.Coefficients { return LowShelfBiquad(p.Freq, g, q, p.SampleRate) },
		func(g float64) biquad.Coefficients { return firstOrderLowShelf(p.Freq, g, p.SampleRate) },
	)
}

func designHighShelf(dst []biquad.Coefficients, p Params) int {
	p, ok := p.sanitize()
	if !ok {
		return passthrough(dst)
	}
	return cascade(dst, p,
		func(q, g float64) biquad.Coefficients { return HighShelfBiquad(p.Freq, g, q, p.SampleRate) },
		func(g float64) biquad.Coefficients { return firstOrderHighShelf(p.Freq, g, p.SampleRate) },
	)
}

// designTiltShelf is a high shelf whose numerator is scaled so the response
// pivots around 0 dB: -GainDB/2 at DC and +GainDB/2 at Nyquist.
func designTiltShelf(dst []biquad.Coefficients, p Params) int {
	p, ok := p.sanitize()
	if !ok {
		return passthrough(dst)
	}
	return cascade(dst, p,
		func(q, g float64) biquad.Coefficients {
			return HighShelfBiquad(p.Freq, g, q, p.SampleRate).Scale(math.Pow(10, -g/40))
		},
		func(g float64) biquad.Coefficients {
			return firstOrderHighShelf(p.Freq, g, p.SampleRate).Scale(math.Pow(10, -g/40))
		},
	)
}
