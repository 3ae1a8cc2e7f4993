package cards

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var ErrInvalidBatchSize = errors.New("batch size must be positive")

// Batch splits items into consecutive chunks of size, the last one possibly
// shorter. The sequence can be ranged over more than once.
func Batch[T any](items []T, size int) (iter.Seq[[]T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBatchSize, size)
	}
	return slices.Chunk(items, size), nil
}
