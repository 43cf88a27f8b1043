package buffer

import "github.com/cwbudde/algo-pingpong/dsp/core"

// Block wraps a fixed-length slice together with the count of valid
// leading elements.
type Block[T any] struct {
	samples []T
	valid   int
}

// New returns a zero-filled Block of the given length with no valid elements.
func New[T any](length int) *Block[T] {
	if length < 0 {
		length = 0
	}
	return &Block[T]{samples: make([]T, length)}
}

// Samples returns the underlying slice, including elements past Valid.
func (b *Block[T]) Samples() []T {
	return b.samples
}

// Data returns the valid leading elements.
func (b *Block[T]) Data() []T {
	return b.samples[:b.valid]
}

// Len returns the block length.
func (b *Block[T]) Len() int {
	return len(b.samples)
}

// Valid returns the number of valid leading elements.
func (b *Block[T]) Valid() int {
	return b.valid
}

// SetValid records n valid leading elements, clamped to [0, Len()].
func (b *Block[T]) SetValid(n int) {
	b.valid = core.Clamp(n, 0, len(b.samples))
}

// Zero sets all elements to the zero value and marks none valid.
func (b *Block[T]) Zero() {
	var zero T
	for i := range b.samples {
		b.samples[i] = zero
	}
	b.valid = 0
}
