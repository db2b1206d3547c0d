package buffer

// Stream is a reusable float64 scratch buffer with grow-only semantics.
// The zero value is ready to use.
type Stream struct {
	data []float64
}

// NewStream returns a Stream with capacity for at least n samples.
func NewStream(n int) *Stream {
	if n < 0 {
		n = 0
	}

	return &Stream{data: make([]float64, n)}
}

// Grow ensures capacity for at least n samples. Existing contents are not
// preserved; Stream is scratch memory, not storage.
func (s *Stream) Grow(n int) {
	if n <= cap(s.data) {
		return
	}

	s.data = make([]float64, n)
}

// Slice returns a zero-based view of the first n samples, growing if
// needed. Contents are whatever the previous block left behind; callers
// overwrite before reading.
func (s *Stream) Slice(n int) []float64 {
	s.Grow(n)

	return s.data[:n:n]
}

// Cap returns the current capacity in samples.
func (s *Stream) Cap() int {
	return cap(s.data)
}

// Zero clears the full backing array.
func (s *Stream) Zero() {
	for i := range s.data {
		s.data[i] = 0
	}
}
