package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-dyneq/dsp/filter/biquad"
	"github.com/cwbudde/algo-dyneq/dsp/filter/design"
)

func ExampleTable_Design() {
	table := design.DefaultTable()

	var buf [8]biquad.Coefficients
	n := table.Design(buf[:], design.LowPass, design.Params{
		Freq:       1000,
		SampleRate: 48000,
		Q:          0.7071067811865476,
		Order:      4,
	})
	chain := biquad.NewChain(buf[:n])

	fmt.Printf("sections=%d\n", n)
	fmt.Printf("100 Hz:   %.2f dB\n", chain.MagnitudeDB(100, 48000))
	fmt.Printf("1000 Hz:  %.2f dB\n", chain.MagnitudeDB(1000, 48000))
	// Output:
	// sections=2
	// 100 Hz:   -0.00 dB
	// 1000 Hz:  -3.01 dB
}

func ExampleParseFilterType() {
	typ, err := design.ParseFilterType("HighShelf")
	fmt.Println(typ, err)
	// Output:
	// highshelf <nil>
}
