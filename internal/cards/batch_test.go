package cards

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func collect[T any](t *testing.T, items []T, size int) [][]T {
	t.Helper()
	seq, err := Batch(items, size)
	if err != nil {
		t.Fatalf("Batch(%d items, %d) failed: %v", len(items), size, err)
	}
	var out [][]T
	for b := range seq {
		out = append(out, b)
	}
	return out
}

func TestBatchSeventyFive(t *testing.T) {
	items := make([]string, 75)
	for i := range items {
		items[i] = fmt.Sprintf("card %d", i)
	}
	got := collect(t, items, 70)
	if len(got) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(got))
	}
	if len(got[0]) != 70 || len(got[1]) != 5 {
		t.Errorf("expected sizes 70 and 5, got %d and %d", len(got[0]), len(got[1]))
	}
}

func TestBatchCoverage(t *testing.T) {
	for n := 0; n <= 12; n++ {
		for size := 1; size <= 5; size++ {
			items := make([]int, n)
			for i := range items {
				items[i] = i
			}
			batches := collect(t, items, size)

			if (len(batches) == 0) != (n == 0) {
				t.Fatalf("n=%d size=%d: got %d batches", n, size, len(batches))
			}
			for i, b := range batches {
				if i < len(batches)-1 && len(b) != size {
					t.Errorf("n=%d size=%d: batch %d has %d items", n, size, i, len(b))
				}
				if len(b) < 1 || len(b) > size {
					t.Errorf("n=%d size=%d: batch %d has %d items", n, size, i, len(b))
				}
			}
			if diff := cmp.Diff(items, slices.Concat(batches...), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("n=%d size=%d: concatenation mismatch (-want +got):\n%s", n, size, diff)
			}
		}
	}
}

func TestBatchRestartable(t *testing.T) {
	seq, err := Batch([]string{"a", "b", "c"}, 2)
	if err != nil {
		t.Fatal(err)
	}
	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if a, b := count(), count(); a != 2 || b != 2 {
		t.Errorf("expected 2 batches on each pass, got %d and %d", a, b)
	}
}

func TestBatchInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := Batch([]string{"a"}, size); !errors.Is(err, ErrInvalidBatchSize) {
			t.Errorf("size %d: expected ErrInvalidBatchSize, got %v", size, err)
		}
	}
}
