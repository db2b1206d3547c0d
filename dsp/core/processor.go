package core

// Processor is the per-stage contract shared by every rate-conversion stage.
//
// Initialize binds the stage to a source sample rate and fully resets its
// state; it must only be called while the audio stream is quiescent.
// Process consumes in, writes into out and returns the number of samples
// written. Implementations must not allocate.
type Processor interface {
	Initialize(sampleRate float64) error
	Reset()
	Process(in, out []float64) int
}
