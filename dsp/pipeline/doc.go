// Package pipeline orchestrates the per-callback rate-conversion chain:
// downmix to mono, decimate to the analysis rate, hand the low-rate block
// to an optional consumer, reconstruct at the host rate, and duplicate the
// result to every output channel.
//
// A Pipeline has two lifecycle states. Before Initialize it is
// uninitialized and Process returns ErrNotInitialized; after Initialize it
// is ready. Sample-rate or block-size changes go through Initialize again
// while the host guarantees no callback is in flight. The per-block path
// performs no allocation, takes no locks and never blocks.
package pipeline
