package pingpong

import (
	"fmt"

	"github.com/cwbudde/algo-pingpong/dsp/core"
)

// Buffer is a double buffer with two slots of fixed capacity.
//
// Writes go to the active slot. The other slot is the reserve; it holds a
// complete batch when IsReserveFull reports true.
type Buffer[T any] struct {
	slots  [2][]T
	active int
	pos    int
	ready  bool
}

// New returns a Buffer whose slots each hold size elements.
func New[T any](size int) (*Buffer[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("pingpong size must be > 0: %d", size)
	}

	storage := make([]T, 2*size)

	return &Buffer[T]{
		slots: [2][]T{
			storage[:size:size],
			storage[size:],
		},
	}, nil
}

// Cap returns the capacity of one slot.
func (b *Buffer[T]) Cap() int {
	return len(b.slots[0])
}

// IsEmpty reports whether nothing has been written to the active slot
// since the last swap or flush.
func (b *Buffer[T]) IsEmpty() bool {
	return b.pos == 0
}

// IsHalfFull reports whether the active slot holds at least Cap()/2 elements.
func (b *Buffer[T]) IsHalfFull() bool {
	return b.pos >= b.Cap()/2
}

// IsReserveFull reports whether the reserve slot holds a batch ready for Read.
func (b *Buffer[T]) IsReserveFull() bool {
	return b.ready
}

// Position returns the number of elements written to the active slot.
func (b *Buffer[T]) Position() int {
	return b.pos
}

// Clear zeroes both slots and returns the buffer to its initial state.
func (b *Buffer[T]) Clear() {
	core.Zero(b.slots[0])
	core.Zero(b.slots[1])
	b.active = 0
	b.pos = 0
	b.ready = false
}

// Push appends a single element. See Append.
func (b *Buffer[T]) Push(v T) (bool, error) {
	return b.Append([]T{v})
}

// Append writes data to the active slot and reports whether the slots were
// swapped.
//
// Data that fits in the active slot is committed first. If that fills the
// slot, the slots swap and the rest of data is written to the new active
// slot. At most one swap happens per call.
//
// When the active slot fills while the reserve is still unread, Append
// returns ErrReserveFull without swapping; data beyond the active slot is
// dropped. When data is longer than twice the capacity, Append swaps, keeps
// the first slot's worth as the new reserve and returns ErrOverflow. Nothing
// is rolled back in either case.
func (b *Buffer[T]) Append(data []T) (bool, error) {
	size := b.Cap()

	n := core.CopyInto(b.slots[b.active][b.pos:], data)
	b.pos += n

	if b.pos < size {
		return false, nil
	}

	if b.ready {
		return false, ErrReserveFull
	}

	b.ready = true
	b.active ^= 1
	b.pos = 0

	rest := data[n:]
	if len(rest) > size {
		return true, ErrOverflow
	}

	b.pos = copy(b.slots[b.active], rest)

	return true, nil
}

// MustPush is like Push but panics on error.
func (b *Buffer[T]) MustPush(v T) bool {
	return b.MustAppend([]T{v})
}

// MustAppend is like Append but panics on error.
func (b *Buffer[T]) MustAppend(data []T) bool {
	swapped, err := b.Append(data)
	if err != nil {
		panic(err)
	}

	return swapped
}

// Read returns a copy of the reserve slot and marks it consumed.
// It returns false and leaves the buffer untouched when no batch is ready.
func (b *Buffer[T]) Read() ([]T, bool) {
	if !b.ready {
		return nil, false
	}

	out := make([]T, b.Cap())
	b.ReadInto(out)

	return out, true
}

// ReadInto copies the reserve slot into dst and marks it consumed.
// dst must hold at least Cap() elements; ReadInto panics otherwise, even
// when no batch is ready. It returns false without copying when no batch is
// ready.
func (b *Buffer[T]) ReadInto(dst []T) bool {
	if len(dst) < b.Cap() {
		panic(fmt.Sprintf("pingpong: ReadInto destination too short: %d < %d", len(dst), b.Cap()))
	}

	if !b.ready {
		return false
	}

	copy(dst, b.slots[b.active^1])
	b.ready = false

	return true
}

// Flush returns the elements written to the active slot, padded with zero
// values to Cap(), together with their count, and rewinds the active slot.
// The reserve slot is not affected.
func (b *Buffer[T]) Flush() ([]T, int) {
	out := make([]T, b.Cap())
	return out, b.FlushInto(out)
}

// FlushInto copies the elements written to the active slot into dst and
// rewinds the active slot. It returns the number of elements written to
// the active slot. Positions of dst past that count, up to Cap(), are set to
// the zero value. dst must hold at least Cap() elements; FlushInto panics
// otherwise.
func (b *Buffer[T]) FlushInto(dst []T) int {
	size := b.Cap()
	if len(dst) < size {
		panic(fmt.Sprintf("pingpong: FlushInto destination too short: %d < %d", len(dst), size))
	}

	count := copy(dst, b.slots[b.active][:b.pos])
	core.Zero(dst[count:size])
	b.pos = 0

	return count
}

// String implements fmt.Stringer.
func (b *Buffer[T]) String() string {
	reserve := "empty"
	if b.ready {
		reserve = "full"
	}

	return fmt.Sprintf("pingpong.Buffer{cap=%d pos=%d active=%d reserve=%s}", b.Cap(), b.pos, b.active, reserve)
}
