package pipeline

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"

	"github.com/ayh2bxa/autolume-dsp/dsp/buffer"
	"github.com/ayh2bxa/autolume-dsp/dsp/core"
	"github.com/ayh2bxa/autolume-dsp/dsp/decimate"
	"github.com/ayh2bxa/autolume-dsp/dsp/reconstruct"
)

var (
	// ErrNotInitialized indicates Process was called before Initialize.
	ErrNotInitialized = errors.New("pipeline: not initialized")
	// ErrInvalidBlockSize indicates a non-positive maximum block size.
	ErrInvalidBlockSize = errors.New("pipeline: invalid block size")
)

// Consumer receives each decimated block at the analysis rate and may
// transform it in place before reconstruction. Rendering happens
// synchronously on the audio callback thread, so implementations must not
// block; anything slow belongs behind the consumer's own buffering.
type Consumer interface {
	ProcessLowRate(block []float64)
}

// ConsumerFunc adapts a function to the Consumer interface.
type ConsumerFunc func(block []float64)

// ProcessLowRate calls f(block).
func (f ConsumerFunc) ProcessLowRate(block []float64) { f(block) }

type config struct {
	targetRate float64
	imaging    bool
	consumer   Consumer
}

// Option configures a Pipeline.
type Option func(*config)

// WithTargetRate overrides the analysis rate (default 16 kHz).
func WithTargetRate(rate float64) Option {
	return func(cfg *config) {
		if rate > 0 {
			cfg.targetRate = rate
		}
	}
}

// WithConsumer installs the downstream renderer boundary.
func WithConsumer(c Consumer) Option {
	return func(cfg *config) {
		cfg.consumer = c
	}
}

// WithoutImagingFilter disables the post-reconstruction low-pass. Images
// above the analysis Nyquist then pass through to the output.
func WithoutImagingFilter() Option {
	return func(cfg *config) {
		cfg.imaging = false
	}
}

// Pipeline drives the full downmix/decimate/reconstruct/upmix chain for
// one audio stream. All methods must be called from a single goroutine;
// Initialize and Reset require the stream to be quiescent.
type Pipeline struct {
	cfg config

	dec *decimate.Decimator
	rec *reconstruct.Upsampler

	mono *buffer.Stream
	low  *buffer.Stream

	sampleRate float64
	maxBlock   int
	ready      bool
}

// New creates an unconfigured Pipeline. It must be initialized with the
// stream parameters before processing.
func New(opts ...Option) *Pipeline {
	cfg := config{
		targetRate: decimate.DefaultTargetRate,
		imaging:    true,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Pipeline{
		cfg:  cfg,
		mono: &buffer.Stream{},
		low:  &buffer.Stream{},
	}
}

// Initialize binds the pipeline to the host stream configuration. It must
// be called once before Process and again whenever the sample rate or the
// maximum block size changes; it re-derives the rate ratio, resets all
// filter and interpolation state, and sizes the scratch buffers.
func (p *Pipeline) Initialize(sampleRate float64, maxBlockSize int) error {
	if !core.ValidRate(sampleRate) {
		return decimate.ErrInvalidRate
	}

	if maxBlockSize <= 0 {
		return ErrInvalidBlockSize
	}

	if p.dec == nil {
		dec, err := decimate.New(sampleRate, decimate.WithTargetRate(p.cfg.targetRate))
		if err != nil {
			return err
		}

		p.dec = dec
	} else if err := p.dec.Initialize(sampleRate); err != nil {
		return err
	}

	if p.rec == nil {
		recOpts := []reconstruct.Option{reconstruct.WithLowRate(p.cfg.targetRate)}
		if p.cfg.imaging {
			recOpts = append(recOpts, reconstruct.WithImagingFilter())
		}

		rec, err := reconstruct.New(sampleRate, recOpts...)
		if err != nil {
			return err
		}

		p.rec = rec
	} else if err := p.rec.Initialize(sampleRate); err != nil {
		return err
	}

	p.grow(maxBlockSize)

	p.sampleRate = sampleRate
	p.maxBlock = maxBlockSize
	p.ready = true

	return nil
}

// Reset clears filter and interpolation state without changing the stream
// configuration.
func (p *Pipeline) Reset() {
	if !p.ready {
		return
	}

	p.dec.Reset()
	p.rec.Reset()
}

// grow sizes the scratch buffers for blocks up to n samples. Grow-only:
// buffers never shrink mid-stream.
func (p *Pipeline) grow(n int) {
	p.mono.Grow(n)
	p.low.Grow(p.dec.ExpectedOutputSize(n) + decimate.OutputPadding)
}

// Process runs one host callback's worth of audio through the chain, in
// place. channels holds one equal-length slice per channel; the first one
// (plus the second, when present) forms the mono downmix, and every
// channel receives the reconstructed stream on return.
func (p *Pipeline) Process(channels [][]float64) error {
	if !p.ready {
		return ErrNotInitialized
	}

	if len(channels) == 0 {
		return nil
	}

	numSamples := len(channels[0])
	if numSamples == 0 {
		return nil
	}

	// Hosts occasionally exceed the negotiated maximum; reconcile by
	// growing, never shrinking.
	if numSamples > p.maxBlock {
		p.grow(numSamples)
		p.maxBlock = numSamples
	}

	mono := p.mono.Slice(numSamples)

	left := channels[0]
	if len(channels) > 1 {
		vecmath.AddBlock(mono, left, channels[1])
		vecmath.ScaleBlockInPlace(mono, 0.5)
	} else {
		// Pure mono passthrough: no attenuation error.
		copy(mono, left)
	}

	low := p.low.Slice(p.dec.ExpectedOutputSize(numSamples) + decimate.OutputPadding)

	numLow := p.dec.Process(mono, low)
	if numLow == 0 {
		for _, ch := range channels {
			for i := range ch {
				ch[i] = 0
			}
		}

		return nil
	}

	if p.cfg.consumer != nil {
		p.cfg.consumer.ProcessLowRate(low[:numLow])
	}

	p.rec.Process(low[:numLow], channels[0])

	for _, ch := range channels[1:] {
		copy(ch, channels[0])
	}

	return nil
}

// Ready reports whether Initialize has completed.
func (p *Pipeline) Ready() bool {
	return p.ready
}

// SampleRate returns the configured host rate, 0 before Initialize.
func (p *Pipeline) SampleRate() float64 {
	return p.sampleRate
}

// TargetRate returns the analysis rate.
func (p *Pipeline) TargetRate() float64 {
	return p.cfg.targetRate
}

// MaxBlockSize returns the largest block seen or configured so far.
func (p *Pipeline) MaxBlockSize() int {
	return p.maxBlock
}

// LastLowRateCount returns the decimated sample count of the most recent
// block.
func (p *Pipeline) LastLowRateCount() int {
	if p.dec == nil {
		return 0
	}

	return p.dec.LastOutputCount()
}

// Decimator exposes the downsampling stage for inspection.
func (p *Pipeline) Decimator() *decimate.Decimator {
	return p.dec
}

// Upsampler exposes the reconstruction stage for inspection.
func (p *Pipeline) Upsampler() *reconstruct.Upsampler {
	return p.rec
}
