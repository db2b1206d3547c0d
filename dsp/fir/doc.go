// Package fir provides a direct-form FIR filter runtime and a Kaiser
// windowed-sinc low-pass design.
//
// A [Filter] applies a set of pre-computed coefficients to an input stream
// using a circular-buffer delay line. Processing is O(taps) per sample with
// no allocation, which makes it suitable for real-time audio callbacks.
// Coefficient design happens at configuration time via [DesignLowPass],
// never in the processing path.
package fir
