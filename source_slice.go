package gopaging

import (
	"cmp"
	"context"
	"fmt"
	"slices"
)

// Compare orders two items the way cmp.Compare does.
type Compare[T any] func(a, b T) int

// By builds a Compare from a key selector.
//
//	gopaging.By(func(c Car) string { return c.Name })
func By[T any, K cmp.Ordered](key func(T) K) Compare[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// SliceSource is an in-memory Source. It is mostly useful in tests and for
// collections that are cheap to hold but still need ordering on demand.
type SliceSource[T any] struct {
	items []T
}

func NewSliceSource[T any](items []T) *SliceSource[T] {
	return &SliceSource[T]{
		items: items,
	}
}

// Count - implements Source.
func (s *SliceSource[T]) Count(_ context.Context) (int, error) {
	if s == nil {
		return 0, nil
	}

	return len(s.items), nil
}

// Slice - implements Source. The returned slice is a copy.
func (s *SliceSource[T]) Slice(_ context.Context, skip, take int) ([]T, error) {
	if s == nil {
		return nil, nil
	}

	start, end := NewWindow(skip, take).Bounds(len(s.items))

	return slices.Clone(s.items[start:end]), nil
}

// OrderedSlice - implements OrderedSource. The sort is stable and works on a
// copy, so the source keeps its natural order.
func (s *SliceSource[T]) OrderedSlice(_ context.Context, skip, take int, key Compare[T], dir Direction) ([]T, error) {
	if s == nil {
		return nil, nil
	}

	if key == nil {
		return nil, fmt.Errorf("nil compare function")
	}

	compare := key
	if !dir.IsAscending() {
		compare = func(a, b T) int { return key(b, a) }
	}

	sorted := slices.Clone(s.items)
	slices.SortStableFunc(sorted, compare)

	start, end := NewWindow(skip, take).Bounds(len(sorted))

	return slices.Clone(sorted[start:end]), nil
}

var _ OrderedSource[any, Compare[any]] = (*SliceSource[any])(nil)
