// Package decimate converts a high-rate audio stream to a fixed lower
// analysis rate (16 kHz by default) in real time.
//
// A [Decimator] runs every input sample through a fixed 64-tap FIR
// anti-alias filter, then emits output samples by accumulating the rate
// ratio and linearly interpolating between consecutive filtered samples.
// The hot path performs no allocation; callers provide the output buffer,
// sized via [Decimator.ExpectedOutputSize] plus [OutputPadding].
package decimate
