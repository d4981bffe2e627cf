package ideal_test

import (
	"fmt"

	"github.com/cwbudde/algo-dyneq/dsp/filter/design"
	"github.com/cwbudde/algo-dyneq/dsp/filter/ideal"
)

func ExampleFilter() {
	f, err := ideal.NewFilter()
	if err != nil {
		panic(err)
	}
	f.SetFilterType(design.LowPass)
	f.SetFrequency(1000)

	fmt.Println("recomputed:", f.Pull())
	fmt.Println("recomputed again:", f.Pull())
	fmt.Println("sections:", f.ActiveSections())
	fmt.Printf("50 Hz:   %.2f dB\n", f.DB(50))
	fmt.Printf("1000 Hz: %.2f dB\n", f.DB(1000))
	// Output:
	// recomputed: true
	// recomputed again: false
	// sections: 1
	// 50 Hz:   -0.00 dB
	// 1000 Hz: -3.01 dB
}

func ExampleFilter_AddDecibels() {
	freqs := []float64{50, 1000, 15000}
	w := make([]float64, len(freqs))
	ideal.AngularFrequencies(w, freqs, 48000)

	total := make([]float64, len(freqs))
	for _, band := range []struct {
		typ  design.FilterType
		freq float64
		gain float64
	}{
		{design.LowShelf, 100, 6},
		{design.HighShelf, 8000, -6},
	} {
		f, _ := ideal.NewFilter()
		f.SetFilterType(band.typ)
		f.SetFrequency(band.freq)
		f.SetGain(band.gain)
		f.ResizeMagnitude(len(w))
		f.UpdateMagnitude(w)
		f.AddDecibels(total)
	}

	fmt.Printf("%.1f %.1f %.1f\n", total[0], total[1], total[2])
}
