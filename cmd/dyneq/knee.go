package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-dyneq/dsp/dynamics"
)

// KneeCmd prints the transfer curve of a KneeComputer.
type KneeCmd struct {
	Threshold float64 `help:"Threshold in dB." default:"-18"`
	Ratio     float64 `help:"Compression ratio." default:"4"`
	Knee      float64 `help:"Knee half-width in dB." default:"6"`
	Curve     float64 `help:"Curve shape in [-1, 1]: -1 up, 0 linear, 1 down." default:"0"`
	From      float64 `help:"First input level in dB." default:"-60"`
	To        float64 `help:"Last input level in dB." default:"6"`
	Step      float64 `help:"Input level step in dB." default:"3"`
}

func (c *KneeCmd) Run(rc *runContext) error {
	if c.Step <= 0 {
		return fmt.Errorf("step must be > 0: %g", c.Step)
	}
	if c.To < c.From {
		return fmt.Errorf("range is empty: from %g to %g", c.From, c.To)
	}

	k := dynamics.NewKneeComputer()
	k.SetThreshold(c.Threshold)
	k.SetRatio(c.Ratio)
	k.SetKneeWidth(c.Knee)
	k.SetCurve(c.Curve)
	k.Pull()

	rc.log.Debug("knee rebuilt",
		"threshold", k.Threshold(), "ratio", k.Ratio(), "knee", k.KneeWidth(), "curve", k.Curve(),
		"mid", k.MidPoly(), "high", k.HighPoly())

	printTitle(rc.out, "Knee curve")
	printKeyValue(rc.out, "Knee region", fmt.Sprintf("[%.2f, %.2f] dB", k.LowThreshold(), k.HighThreshold()))

	n := int((c.To-c.From)/c.Step+1e-9) + 1
	in := make([]float64, n)
	for i := range in {
		in[i] = c.From + float64(i)*c.Step
	}
	out := make([]float64, n)
	gain := make([]float64, n)
	k.EvalBlock(out, in)
	k.ProcessBlock(gain, in)

	tw := tabwriter.NewWriter(rc.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Input [dB]\tOutput [dB]\tGain [dB]\n")
	fmt.Fprintf(tw, "----------\t-----------\t---------\n")
	for i := range in {
		fmt.Fprintf(tw, "%.2f\t%.3f\t%.3f\n", in[i], out[i], gain[i])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
