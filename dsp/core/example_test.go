package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-dyneq/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithBlockSize(256),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d\n", cfg.SampleRate, cfg.BlockSize)

	// Output:
	// sampleRate=44100 blockSize=256
}

func ExampleLinearToDB() {
	fmt.Printf("%.2f\n", core.LinearToDB(0.5, -480))
	fmt.Printf("%.2f\n", core.LinearToDB(0, -480))

	// Output:
	// -6.02
	// -480.00
}
