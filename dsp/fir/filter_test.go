package fir

import (
	"errors"
	"math"
	"testing"
)

func TestImpulseResponseMatchesCoefficients(t *testing.T) {
	coeffs := []float64{0.5, 0.25, -0.125, 0.0625}
	f := New(coeffs)

	for k, want := range coeffs {
		x := 0.0
		if k == 0 {
			x = 1
		}

		if got := f.ProcessSample(x); got != want {
			t.Fatalf("h[%d] = %v, want %v", k, got, want)
		}
	}
}

func TestProcessBlockToMatchesPerSample(t *testing.T) {
	coeffs, err := DesignLowPass(64, 7200, 44100, 8)
	if err != nil {
		t.Fatalf("DesignLowPass() error = %v", err)
	}

	a := New(coeffs)
	b := New(coeffs)

	in := make([]float64, 257)
	for i := range in {
		in[i] = math.Sin(2 * math.Pi * 1000 * float64(i) / 44100)
	}

	blockOut := make([]float64, len(in))
	b.ProcessBlockTo(blockOut, in)

	for i, x := range in {
		want := a.ProcessSample(x)
		if blockOut[i] != want {
			t.Fatalf("sample %d: block = %v, per-sample = %v", i, blockOut[i], want)
		}
	}
}

func TestResetClearsHistory(t *testing.T) {
	coeffs, err := DesignLowPass(64, 7200, 44100, 8)
	if err != nil {
		t.Fatalf("DesignLowPass() error = %v", err)
	}

	f := New(coeffs)
	for i := range 100 {
		f.ProcessSample(math.Sin(float64(i)))
	}

	f.Reset()

	fresh := New(coeffs)
	for i := range 64 {
		got := f.ProcessSample(0.5)
		want := fresh.ProcessSample(0.5)
		if got != want {
			t.Fatalf("sample %d after reset: got %v, want %v", i, got, want)
		}
	}
}

func TestDesignLowPassDCGain(t *testing.T) {
	coeffs, err := DesignLowPass(64, 7200, 44100, 8)
	if err != nil {
		t.Fatalf("DesignLowPass() error = %v", err)
	}

	f := New(coeffs)
	if dc := f.DCGain(); math.Abs(dc-1) > 1e-12 {
		t.Fatalf("DCGain() = %v, want 1", dc)
	}
}

func TestDesignLowPassResponse(t *testing.T) {
	f, err := NewLowPass(64, 7200, 44100, 8)
	if err != nil {
		t.Fatalf("NewLowPass() error = %v", err)
	}

	tests := []struct {
		name   string
		freqHz float64
		check  func(db float64) bool
	}{
		{"passband 1 kHz flat", 1000, func(db float64) bool { return math.Abs(db) < 0.1 }},
		{"passband 5 kHz flat", 5000, func(db float64) bool { return math.Abs(db) < 0.5 }},
		{"stopband 10 kHz", 10000, func(db float64) bool { return db < -60 }},
		{"stopband 12 kHz", 12000, func(db float64) bool { return db < -70 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db := f.MagnitudeDB(tc.freqHz, 44100)
			if !tc.check(db) {
				t.Fatalf("|H(%v Hz)| = %.2f dB out of bounds", tc.freqHz, db)
			}
		})
	}
}

func TestDesignLowPassValidation(t *testing.T) {
	tests := []struct {
		name       string
		taps       int
		cutoff     float64
		sampleRate float64
		beta       float64
	}{
		{"one tap", 1, 7200, 44100, 8},
		{"zero cutoff", 64, 0, 44100, 8},
		{"cutoff at nyquist", 64, 22050, 44100, 8},
		{"cutoff above nyquist", 64, 30000, 44100, 8},
		{"zero rate", 64, 7200, 0, 8},
		{"negative beta", 64, 7200, 44100, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DesignLowPass(tc.taps, tc.cutoff, tc.sampleRate, tc.beta)
			if !errors.Is(err, ErrInvalidDesign) {
				t.Fatalf("error = %v, want ErrInvalidDesign", err)
			}
		})
	}
}

func TestGroupDelay(t *testing.T) {
	f := New(make([]float64, 64))
	if gd := f.GroupDelay(); gd != 31.5 {
		t.Fatalf("GroupDelay() = %v, want 31.5", gd)
	}
}
