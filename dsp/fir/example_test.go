package fir_test

import (
	"fmt"

	"github.com/ayh2bxa/autolume-dsp/dsp/fir"
)

func ExampleFilter_ProcessSample() {
	// A 4-point moving average is a (crude) FIR low-pass.
	f := fir.New([]float64{0.25, 0.25, 0.25, 0.25})

	for range 4 {
		fmt.Printf("%.2f ", f.ProcessSample(1))
	}
	fmt.Println()

	// Output:
	// 0.25 0.50 0.75 1.00
}

func ExampleDesignLowPass() {
	coeffs, err := fir.DesignLowPass(64, 7200, 44100, 8)
	if err != nil {
		panic(err)
	}

	f := fir.New(coeffs)
	fmt.Printf("taps=%d dc=%.3f delay=%.1f samples\n", f.Len(), f.DCGain(), f.GroupDelay())

	// Output:
	// taps=64 dc=1.000 delay=31.5 samples
}
