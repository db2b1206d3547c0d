package pipeline_test

import (
	"fmt"

	"github.com/ayh2bxa/autolume-dsp/dsp/pipeline"
)

func Example() {
	p := pipeline.New(pipeline.WithConsumer(pipeline.ConsumerFunc(func(block []float64) {
		// The renderer sees the 16 kHz analysis stream here and may
		// rewrite it in place.
		fmt.Printf("low-rate block: %d samples\n", len(block))
	})))

	if err := p.Initialize(44100, 512); err != nil {
		panic(err)
	}

	left := make([]float64, 512)
	right := make([]float64, 512)

	if err := p.Process([][]float64{left, right}); err != nil {
		panic(err)
	}

	fmt.Printf("output block: %d samples\n", len(left))

	// Output:
	// low-rate block: 185 samples
	// output block: 512 samples
}
