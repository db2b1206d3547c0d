package fir

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDesign indicates low-pass design parameters outside their
// valid ranges.
var ErrInvalidDesign = errors.New("fir: invalid design parameters")

// DesignLowPass designs a linear-phase low-pass filter with the given
// number of taps, cutoff frequency in Hz at the given sample rate, and
// Kaiser window beta. The coefficients are normalized to unity DC gain.
//
// The design runs once at configuration time; the returned slice feeds
// [New] directly.
func DesignLowPass(taps int, cutoffHz, sampleRate, beta float64) ([]float64, error) {
	if taps <= 1 {
		return nil, fmt.Errorf("%w: taps must be > 1, got %d", ErrInvalidDesign, taps)
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %.6g", ErrInvalidDesign, sampleRate)
	}

	fc := cutoffHz / sampleRate
	if fc <= 0 || fc >= 0.5 {
		return nil, fmt.Errorf("%w: normalized cutoff %.6f outside (0, 0.5)", ErrInvalidDesign, fc)
	}

	if beta < 0 {
		return nil, fmt.Errorf("%w: kaiser beta %.6g", ErrInvalidDesign, beta)
	}

	coeffs := make([]float64, taps)

	center := 0.5 * float64(taps-1)
	for n := range taps {
		t := float64(n) - center
		coeffs[n] = 2 * fc * sinc(2*fc*t) * kaiserWindow(n, taps, beta)
	}

	var sum float64
	for _, v := range coeffs {
		sum += v
	}

	if sum == 0 {
		return nil, fmt.Errorf("%w: designed zero-sum filter", ErrInvalidDesign)
	}

	for i := range coeffs {
		coeffs[i] /= sum
	}

	return coeffs, nil
}

// NewLowPass designs a low-pass filter via [DesignLowPass] and wraps it in
// a ready-to-run [Filter].
func NewLowPass(taps int, cutoffHz, sampleRate, beta float64) (*Filter, error) {
	coeffs, err := DesignLowPass(taps, cutoffHz, sampleRate, beta)
	if err != nil {
		return nil, err
	}

	return New(coeffs), nil
}

func sinc(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1
	}

	pix := math.Pi * x

	return math.Sin(pix) / pix
}

func kaiserWindow(i, n int, beta float64) float64 {
	if n <= 1 || beta == 0 {
		return 1
	}

	t := 2*float64(i)/float64(n-1) - 1
	a := math.Sqrt(math.Max(0, 1-t*t))

	return i0(beta*a) / i0(beta)
}

// i0 is the zeroth-order modified Bessel function of the first kind,
// evaluated by power series.
func i0(x float64) float64 {
	sum := 1.0
	term := 1.0

	x2 := (x * x) / 4
	for k := 1; k < 64; k++ {
		term *= x2 / float64(k*k)

		sum += term
		if term < 1e-16*sum {
			break
		}
	}

	return sum
}
