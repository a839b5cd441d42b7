package block

import (
	"fmt"
	"io"
)

// WriteTo returns a procedure that writes each string to w. Pass it to
// TryEach so that the first write error stops the iteration:
//
//	err := lines.TryEach(block.WriteTo(w))
func WriteTo(w io.StringWriter) func(string) error {
	return func(s string) error {
		if _, err := w.WriteString(s); err != nil {
			return fmt.Errorf("block: write %q: %w", s, err)
		}
		return nil
	}
}

// AppendTo returns a procedure that appends each value to *dst.
func AppendTo[T any](dst *[]T) func(T) {
	return func(v T) { *dst = append(*dst, v) }
}

// Counting returns a procedure that increments *n once per call.
func Counting[T any](n *int) func(T) {
	return func(T) { *n++ }
}
