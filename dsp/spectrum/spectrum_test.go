package spectrum

import (
	"errors"
	"math"
	"testing"
)

func sine(freq, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}

	return out
}

func TestAnalyzeEmpty(t *testing.T) {
	if _, err := Analyze(nil, 44100); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
}

func TestAnalyzePeakLocation(t *testing.T) {
	a, err := Analyze(sine(1000, 16000, 4096), 16000)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if a.FFTSize != 4096 {
		t.Fatalf("FFTSize = %d, want 4096", a.FFTSize)
	}

	// The tone must dominate everything outside its own neighborhood.
	tone := a.PeakDB(900, 1100)
	rest := a.PeakDB(2000, 8000)

	if tone-rest < 40 {
		t.Fatalf("tone %.1f dB vs rest %.1f dB: separation too small", tone, rest)
	}
}

func TestBinFreq(t *testing.T) {
	a, err := Analyze(make([]float64, 1024), 16000)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if got := a.BinFreq(512); got != 8000 {
		t.Fatalf("BinFreq(512) = %v, want 8000", got)
	}
}

func TestPeakDBSilence(t *testing.T) {
	a, err := Analyze(make([]float64, 256), 16000)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if got := a.PeakDB(0, 8000); !math.IsInf(got, -1) {
		t.Fatalf("PeakDB(silence) = %v, want -Inf", got)
	}
}
