package pingpong

import "errors"

var (
	// ErrOverflow is returned by Append when a single call carries more than
	// twice the slot capacity. The swap and the first slot's worth of data
	// are already committed when it is returned.
	ErrOverflow = errors.New("pingpong: input exceeds combined slot capacity")

	// ErrReserveFull is returned by Append when the active slot filled up
	// but the reserve slot has not been read yet. The active slot stays
	// full and the surplus input is dropped.
	ErrReserveFull = errors.New("pingpong: reserve slot holds an unread batch")
)
