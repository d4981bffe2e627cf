package dynamics_test

import (
	"fmt"

	"github.com/cwbudde/algo-dyneq/dsp/dynamics"
)

func ExampleKneeComputer() {
	k := dynamics.NewKneeComputer()
	k.SetThreshold(-18)
	k.SetRatio(4)
	k.SetKneeWidth(6)

	fmt.Println("rebuilt:", k.Pull())
	fmt.Println("rebuilt again:", k.Pull())
	fmt.Printf("knee: [%.0f, %.0f] dB\n", k.LowThreshold(), k.HighThreshold())

	for _, x := range []float64{-30, -18, 0} {
		fmt.Printf("in %6.1f dB -> out %7.3f dB (gain %6.3f dB)\n", x, k.Eval(x), k.Process(x))
	}

	// Output:
	// rebuilt: true
	// rebuilt again: false
	// knee: [-24, -12] dB
	// in  -30.0 dB -> out -30.000 dB (gain  0.000 dB)
	// in  -18.0 dB -> out -19.125 dB (gain -1.125 dB)
	// in    0.0 dB -> out -13.500 dB (gain -13.500 dB)
}

func ExampleCurveKind_Poly() {
	for _, kind := range []dynamics.CurveKind{dynamics.CurveLinear, dynamics.CurveDown, dynamics.CurveUp} {
		p := kind.Poly(-20, 4, 4)
		fmt.Printf("%-6s at -16 dB: %.2f (slope %.2f)\n", kind, p.Eval(-16), p.Slope(-16))
	}

	// Output:
	// linear at -16 dB: -19.00 (slope 0.25)
	// down   at -16 dB: -19.00 (slope 0.25)
	// up     at -16 dB: -19.00 (slope 0.25)
}
