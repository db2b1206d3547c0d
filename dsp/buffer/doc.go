// Package buffer provides grow-only scratch buffers for real-time block
// processing. A Stream never shrinks and never reallocates unless asked to
// grow, so slices handed out by it are stable for the duration of a stream
// and the per-block hot path stays allocation-free.
package buffer
