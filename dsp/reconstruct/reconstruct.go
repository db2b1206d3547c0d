package reconstruct

import (
	"errors"
	"fmt"

	"github.com/ayh2bxa/autolume-dsp/dsp/core"
	"github.com/ayh2bxa/autolume-dsp/dsp/fir"
)

// ErrInvalidRate indicates a non-positive or non-finite sample rate.
var ErrInvalidRate = errors.New("reconstruct: invalid sample rate")

const (
	// DefaultLowRate is the rate of the incoming analysis stream.
	DefaultLowRate = 16000.0

	imagingTaps        = 64
	imagingCutoffScale = 0.9
	imagingKaiserBeta  = 8.0
)

type config struct {
	lowRate float64
	imaging bool
}

// Option configures an Upsampler.
type Option func(*config)

// WithLowRate overrides the incoming stream's sample rate.
func WithLowRate(rate float64) Option {
	return func(cfg *config) {
		if rate > 0 {
			cfg.lowRate = rate
		}
	}
}

// WithImagingFilter enables the post-interpolation low-pass that removes
// spectral images above the low-rate Nyquist. It adds one filter's group
// delay at the output rate.
func WithImagingFilter() Option {
	return func(cfg *config) {
		cfg.imaging = true
	}
}

// Upsampler reconstructs a host-rate stream from a low-rate block by
// linear interpolation. Not safe for concurrent use.
type Upsampler struct {
	lowRate    float64
	sourceRate float64

	imaging bool
	post    *fir.Filter
}

// New creates an Upsampler for the given output (host) rate.
func New(sourceRate float64, opts ...Option) (*Upsampler, error) {
	cfg := config{lowRate: DefaultLowRate}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	u := &Upsampler{
		lowRate: cfg.lowRate,
		imaging: cfg.imaging,
	}

	if err := u.Initialize(sourceRate); err != nil {
		return nil, err
	}

	return u, nil
}

// Initialize binds the upsampler to a new output rate, redesigning the
// imaging filter when enabled and resetting all state. Call only while
// the stream is quiescent.
func (u *Upsampler) Initialize(sourceRate float64) error {
	if !core.ValidRate(sourceRate) {
		return ErrInvalidRate
	}

	u.sourceRate = sourceRate
	u.post = nil

	if u.imaging {
		cutoff := imagingCutoffScale * u.lowRate / 2

		f, err := fir.NewLowPass(imagingTaps, cutoff, sourceRate, imagingKaiserBeta)
		if err != nil {
			return fmt.Errorf("reconstruct: imaging filter design: %w", err)
		}

		u.post = f
	}

	u.Reset()

	return nil
}

// Reset clears the imaging filter history, if any.
func (u *Upsampler) Reset() {
	if u.post != nil {
		u.post.Reset()
	}
}

// Process reconstructs len(out) host-rate samples from the low-rate block
// in, returning the number written (always len(out)). The final output
// samples hold the last low-rate value rather than reading past the end
// of in. An empty in yields silence.
func (u *Upsampler) Process(in, out []float64) int {
	m := len(in)
	h := len(out)

	if h == 0 {
		return 0
	}

	if m == 0 {
		for i := range out {
			out[i] = 0
		}

		return h
	}

	step := float64(m) / float64(h)

	for i := range out {
		pos := float64(i) * step

		idx := int(pos)
		if idx >= m {
			idx = m - 1
		}

		if idx+1 < m {
			frac := pos - float64(idx)
			out[i] = in[idx] + frac*(in[idx+1]-in[idx])
		} else {
			out[i] = in[m-1]
		}
	}

	if u.post != nil {
		u.post.ProcessBlock(out)
	}

	return h
}

// LowRate returns the configured input rate.
func (u *Upsampler) LowRate() float64 {
	return u.lowRate
}

// SourceRate returns the configured output rate.
func (u *Upsampler) SourceRate() float64 {
	return u.sourceRate
}

// ImagingFilter returns the post-interpolation filter, or nil when
// disabled.
func (u *Upsampler) ImagingFilter() *fir.Filter {
	return u.post
}

var _ core.Processor = (*Upsampler)(nil)
