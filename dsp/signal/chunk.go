package signal

import "fmt"

// Writer accepts samples in arbitrary-length chunks.
type Writer interface {
	Write(samples []float64) error
}

// WriteChunks writes data to w in chunks of at most size samples and stops
// at the first error.
func WriteChunks(w Writer, data []float64, size int) error {
	if size <= 0 {
		return fmt.Errorf("chunk size must be > 0: %d", size)
	}

	for off := 0; off < len(data); off += size {
		end := min(off+size, len(data))
		if err := w.Write(data[off:end]); err != nil {
			return fmt.Errorf("chunk at sample %d: %w", off, err)
		}
	}

	return nil
}
