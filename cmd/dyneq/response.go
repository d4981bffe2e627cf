package main

import (
	"fmt"
	"math"
	"math/cmplx"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dyneq/dsp/filter/ideal"
)

// ResponseCmd sums the magnitude responses of several bands.
type ResponseCmd struct {
	Bands      []string `name:"band" short:"b" help:"Band as type:freq[:gain[:q[:order]]]; repeatable." default:"peak:1000:6:1:2"`
	SampleRate float64  `help:"Sample rate in Hz." default:"48000"`
	Points     int      `help:"Number of log-spaced query frequencies." default:"31"`
	Low        float64  `help:"Lowest query frequency in Hz." default:"20"`
	High       float64  `help:"Highest query frequency in Hz." default:"20000"`
}

// curve is the combined response of a band set at the query frequencies.
type curve struct {
	freqs    []float64
	decibels []float64
	mag      []float64
	phase    []float64
}

func (c *ResponseCmd) Run(rc *runContext) error {
	bands, err := parseBands(c.Bands)
	if err != nil {
		return err
	}
	if c.Points < 1 {
		return fmt.Errorf("points must be >= 1: %d", c.Points)
	}
	if !(c.Low > 0) || c.High < c.Low || c.High >= c.SampleRate/2 {
		return fmt.Errorf("query range [%g, %g] Hz must lie in (0, %g)", c.Low, c.High, c.SampleRate/2)
	}

	cv, err := evaluateBands(bands, c.SampleRate, c.Points, c.Low, c.High)
	if err != nil {
		return err
	}
	rc.log.Debug("response evaluated", "bands", len(bands), "points", c.Points)

	printTitle(rc.out, "Summed response")
	for _, b := range bands {
		printKeyValue(rc.out, "Band", b)
	}

	tw := tabwriter.NewWriter(rc.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq [Hz]\tLevel [dB]\t|H|\tPhase [deg]\n")
	fmt.Fprintf(tw, "---------\t----------\t---\t-----------\n")
	for i, hz := range cv.freqs {
		fmt.Fprintf(tw, "%.1f\t%.3f\t%.5f\t%.2f\n", hz, cv.decibels[i], cv.mag[i], cv.phase[i])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// evaluateBands computes the summed dB curve through AddDecibels and the
// product of the complex responses of every band.
func evaluateBands(bands []band, sampleRate float64, n int, lo, hi float64) (curve, error) {
	cv := curve{
		freqs:    make([]float64, n),
		decibels: make([]float64, n),
		mag:      make([]float64, n),
		phase:    make([]float64, n),
	}
	ideal.LogFrequencies(cv.freqs, lo, hi)

	w := make([]float64, n)
	ideal.AngularFrequencies(w, cv.freqs, sampleRate)
	points := make([]complex128, n)
	ideal.UnitCirclePoints(points, cv.freqs, sampleRate)

	product := make([]complex128, n)
	for i := range product {
		product[i] = 1
	}

	for _, b := range bands {
		f, err := newBandFilter(b, sampleRate)
		if err != nil {
			return curve{}, err
		}
		f.Prepare(sampleRate, n)

		f.UpdateMagnitude(w)
		f.AddDecibels(cv.decibels)

		f.Invalidate()
		f.UpdateResponse(points)
		for i, h := range f.Response() {
			product[i] *= h
		}
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, h := range product {
		re[i], im[i] = real(h), imag(h)
		cv.phase[i] = cmplx.Phase(h) * 180 / math.Pi
	}
	vecmath.Magnitude(cv.mag, re, im)

	return cv, nil
}
