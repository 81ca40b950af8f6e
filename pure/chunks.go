package pure

import (
	"fmt"
	"iter"
	"slices"
)

// Chunks yields successive n-sized chunks of s. The last chunk may be
// shorter. Chunks share memory with s but have their capacity clipped, so
// appending to a chunk never overwrites s.
func Chunks[T any](s []T, n int) iter.Seq[[]T] {
	if n < 1 {
		panic(fmt.Sprintf("chunks: size must be positive, got %d", n))
	}
	return slices.Chunk(s, n)
}
