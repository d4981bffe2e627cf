package main

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-dyneq/dsp/filter/biquad"
)

// VerifyCmd cross-checks the analytic cascade response with the spectrum
// of the cascade impulse response.
type VerifyCmd struct {
	Bands      []string `name:"band" short:"b" help:"Band as type:freq[:gain[:q[:order]]]; repeatable." default:"lowpass:1000:0:0.707:4"`
	SampleRate float64  `help:"Sample rate in Hz." default:"48000"`
	FFTSize    int      `name:"fft-size" help:"Impulse response length and FFT size (power of two)." default:"8192"`
	Tolerance  float64  `help:"Maximum allowed deviation in dB." default:"0.001"`
	Floor      float64  `help:"Bins below this analytic level in dB are skipped." default:"-120"`
}

// verifyResult is the worst deviation found for one band.
type verifyResult struct {
	band     band
	maxDevDB float64
	atHz     float64
	bins     int
}

func (c *VerifyCmd) Run(rc *runContext) error {
	bands, err := parseBands(c.Bands)
	if err != nil {
		return err
	}
	if c.FFTSize < 2 || c.FFTSize&(c.FFTSize-1) != 0 {
		return fmt.Errorf("fft-size must be a power of two: %d", c.FFTSize)
	}

	plan, err := algofft.NewPlan64(c.FFTSize)
	if err != nil {
		return fmt.Errorf("create FFT plan: %w", err)
	}

	printTitle(rc.out, "FFT cross-check")

	var failed int
	for _, b := range bands {
		res, err := verifyBand(plan, b, c.SampleRate, c.FFTSize, c.Floor)
		if err != nil {
			return err
		}

		rc.log.Debug("band verified", "band", b, "bins", res.bins, "max_dev_db", res.maxDevDB, "at_hz", res.atHz)

		status := passStyle.Render("PASS")
		if res.maxDevDB > c.Tolerance {
			status = failStyle.Render("FAIL")
			failed++
		}
		fmt.Fprintf(rc.out, "%s %-32s max deviation %.3g dB at %.1f Hz (%d bins)\n",
			status, b, res.maxDevDB, res.atHz, res.bins)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d bands exceed %.3g dB", failed, len(bands), c.Tolerance)
	}
	return nil
}

func verifyBand(plan *algofft.Plan[complex128], b band, sampleRate float64, n int, floorDB float64) (verifyResult, error) {
	f, err := newBandFilter(b, sampleRate)
	if err != nil {
		return verifyResult{}, err
	}
	f.Pull()

	ir := biquad.NewChain(f.Sections()).ImpulseResponse(n)
	in := make([]complex128, n)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return verifyResult{}, fmt.Errorf("forward FFT for %s: %w", b, err)
	}

	res := verifyResult{band: b}
	for k := 1; k < n/2; k++ {
		hz := float64(k) * sampleRate / float64(n)
		want := f.DB(hz)
		if want < floorDB {
			continue
		}
		got := 20 * math.Log10(cmplx.Abs(out[k]))
		if dev := math.Abs(got - want); dev > res.maxDevDB {
			res.maxDevDB = dev
			res.atHz = hz
		}
		res.bins++
	}
	return res, nil
}
