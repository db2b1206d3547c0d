package fir

import (
	"math"
	"testing"
)

func BenchmarkProcessSample64Taps(b *testing.B) {
	coeffs, err := DesignLowPass(64, 7200, 44100, 8)
	if err != nil {
		b.Fatalf("DesignLowPass() error = %v", err)
	}

	f := New(coeffs)

	x := 1.0
	for b.Loop() {
		x = f.ProcessSample(x)
	}

	_ = x
}

func BenchmarkProcessBlock512(b *testing.B) {
	coeffs, err := DesignLowPass(64, 7200, 44100, 8)
	if err != nil {
		b.Fatalf("DesignLowPass() error = %v", err)
	}

	f := New(coeffs)

	buf := make([]float64, 512)
	for i := range buf {
		buf[i] = math.Sin(2 * math.Pi * 1000 * float64(i) / 44100)
	}

	for b.Loop() {
		f.ProcessBlock(buf)
	}
}
