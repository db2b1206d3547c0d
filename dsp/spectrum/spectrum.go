// Package spectrum provides magnitude-spectrum analysis helpers used to
// verify filter stopband and aliasing behavior. It is measurement support,
// not part of the real-time path.
package spectrum

import (
	"errors"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptyInput indicates an empty analysis signal.
var ErrEmptyInput = errors.New("spectrum: empty input")

// Analysis holds single-sided magnitude bins of a real signal.
type Analysis struct {
	// Mags holds bins [0..FFTSize/2], Hann-windowed.
	Mags []float64
	// SampleRate of the analyzed signal in Hz.
	SampleRate float64
	// FFTSize is the transform length (next power of two >= len(input)).
	FFTSize int
}

// Analyze computes the single-sided magnitude spectrum of x with a Hann
// window, zero-padded to the next power of two.
func Analyze(x []float64, sampleRate float64) (*Analysis, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	n := nextPowerOf2(len(x))

	in := make([]complex128, n)

	if len(x) == 1 {
		in[0] = complex(x[0], 0)
	} else {
		for i, v := range x {
			w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(len(x)-1))
			in[i] = complex(v*w, 0)
		}
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	bins := n/2 + 1

	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mags := make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	return &Analysis{Mags: mags, SampleRate: sampleRate, FFTSize: n}, nil
}

// BinFreq returns the center frequency of bin i in Hz.
func (a *Analysis) BinFreq(i int) float64 {
	return float64(i) * a.SampleRate / float64(a.FFTSize)
}

// PeakDB returns the largest bin magnitude within [loHz, hiHz] in dB.
// Values are relative to the analysis scale, not absolute dBFS; compare
// two analyses of equal length to measure attenuation.
func (a *Analysis) PeakDB(loHz, hiHz float64) float64 {
	peak := 0.0

	for i, m := range a.Mags {
		f := a.BinFreq(i)
		if f < loHz || f > hiHz {
			continue
		}

		if m > peak {
			peak = m
		}
	}

	if peak == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(peak)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
