package core

// Zero sets all values in buf to the zero value of T.
func Zero[T any](buf []T) {
	var zero T
	for i := range buf {
		buf[i] = zero
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
// It copies min(len(dst), len(src)) elements.
func CopyInto[T any](dst, src []T) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}
