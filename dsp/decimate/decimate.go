package decimate

import (
	"errors"
	"math"

	"github.com/ayh2bxa/autolume-dsp/dsp/core"
	"github.com/ayh2bxa/autolume-dsp/dsp/fir"
)

var (
	// ErrInvalidRate indicates a non-positive or non-finite sample rate.
	ErrInvalidRate = errors.New("decimate: invalid sample rate")
	// ErrInvalidRatio indicates the target rate is not below the source rate.
	ErrInvalidRatio = errors.New("decimate: target rate must be below source rate")
)

const (
	// DefaultTargetRate is the analysis rate expected by the downstream
	// renderer.
	DefaultTargetRate = 16000.0

	// OutputPadding is the fixed safety margin callers add on top of
	// ExpectedOutputSize when sizing output buffers, absorbing accumulator
	// rounding.
	OutputPadding = 64
)

type config struct {
	targetRate float64
}

// Option configures a Decimator.
type Option func(*config)

// WithTargetRate overrides the output sample rate.
func WithTargetRate(rate float64) Option {
	return func(cfg *config) {
		if rate > 0 {
			cfg.targetRate = rate
		}
	}
}

// Decimator converts a stream from a source rate to a lower target rate.
// It is not safe for concurrent use; Initialize and Reset must only be
// called while no Process call is in flight.
type Decimator struct {
	filter *fir.Filter

	sourceRate float64
	targetRate float64
	ratio      float64

	timeAcc float64
	prev    float64
	curr    float64

	lastOut int
}

// New creates a Decimator for the given source rate. The target rate
// defaults to [DefaultTargetRate].
func New(sourceRate float64, opts ...Option) (*Decimator, error) {
	cfg := config{targetRate: DefaultTargetRate}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	d := &Decimator{
		filter:     fir.New(antiAliasTaps[:]),
		targetRate: cfg.targetRate,
	}

	if err := d.Initialize(sourceRate); err != nil {
		return nil, err
	}

	return d, nil
}

// Initialize re-derives the rate ratio for a new source rate and fully
// resets filter and interpolation state. Call again whenever the host
// sample rate changes, with the stream quiescent.
func (d *Decimator) Initialize(sourceRate float64) error {
	if !core.ValidRate(sourceRate) {
		return ErrInvalidRate
	}

	if d.targetRate >= sourceRate {
		return ErrInvalidRatio
	}

	d.sourceRate = sourceRate
	d.ratio = d.targetRate / sourceRate
	d.Reset()

	return nil
}

// Reset zero-fills the anti-alias delay line and clears the fractional
// accumulator and interpolation history.
func (d *Decimator) Reset() {
	d.filter.Reset()
	d.timeAcc = 0
	d.prev = 0
	d.curr = 0
	d.lastOut = 0
}

// Process filters and decimates in into out, returning the number of
// output samples written. out must hold at least
// ExpectedOutputSize(len(in)) samples; running out of capacity is a
// programming-contract violation and panics rather than truncating
// silently.
func (d *Decimator) Process(in, out []float64) int {
	n := 0

	for _, x := range in {
		d.curr = d.filter.ProcessSample(x)

		d.timeAcc += d.ratio

		// ratio < 1 means at most one emission per input sample in
		// practice, but the loop keeps the accumulator honest for
		// arbitrary ratios and drift.
		for d.timeAcc >= 1 {
			frac := core.Clamp(1-(d.timeAcc-1)/d.ratio, 0, 1)

			if n >= len(out) {
				panic("decimate: output buffer capacity exceeded")
			}

			out[n] = d.prev + frac*(d.curr-d.prev)
			n++

			d.timeAcc--
		}

		d.prev = d.curr
	}

	d.lastOut = n

	return n
}

// ExpectedOutputSize returns ceil(inputSamples * ratio), the upper bound
// used for output buffer sizing (callers add [OutputPadding]).
func (d *Decimator) ExpectedOutputSize(inputSamples int) int {
	if inputSamples <= 0 {
		return 0
	}

	return int(math.Ceil(float64(inputSamples) * d.ratio))
}

// LastOutputCount returns the number of samples written by the most
// recent Process call.
func (d *Decimator) LastOutputCount() int {
	return d.lastOut
}

// SourceRate returns the configured source sample rate.
func (d *Decimator) SourceRate() float64 {
	return d.sourceRate
}

// TargetRate returns the configured target sample rate.
func (d *Decimator) TargetRate() float64 {
	return d.targetRate
}

// Ratio returns targetRate/sourceRate.
func (d *Decimator) Ratio() float64 {
	return d.ratio
}

// Filter exposes the anti-alias filter for inspection (response plots,
// tooling). Mutating it mid-stream is not supported.
func (d *Decimator) Filter() *fir.Filter {
	return d.filter
}

var _ core.Processor = (*Decimator)(nil)
