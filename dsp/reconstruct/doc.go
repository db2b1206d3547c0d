// Package reconstruct brings a low-rate stream back up to the host rate
// for playback. Linear interpolation across the block's rate ratio fills
// in the missing samples; an optional FIR post-filter removes the imaging
// artifacts that naive interpolation leaves above the low-rate Nyquist.
package reconstruct
