package buffer

import "sync"

// Pool provides sync.Pool-based reuse of blocks of one length to reduce GC
// pressure in streaming loops. A Pool is safe for concurrent use.
type Pool[T any] struct {
	length int
	pool   sync.Pool
}

// NewPool returns a Pool handing out blocks of the given length.
func NewPool[T any](length int) *Pool[T] {
	if length < 0 {
		length = 0
	}
	p := &Pool[T]{length: length}
	p.pool.New = func() any {
		return New[T](length)
	}
	return p
}

// Len returns the length of blocks handed out by the pool.
func (p *Pool[T]) Len() int {
	return p.length
}

// Get returns a zeroed block. Callers must return it via Put when done.
func (p *Pool[T]) Get() *Block[T] {
	b := p.pool.Get().(*Block[T])
	b.Zero()
	return b
}

// Put returns a block to the pool for reuse. Blocks of a different length
// are dropped. The caller must not use the block after calling Put.
func (p *Pool[T]) Put(b *Block[T]) {
	if b == nil || b.Len() != p.length {
		return
	}
	p.pool.Put(b)
}
