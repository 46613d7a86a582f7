package gopaging

import "context"

// Source is a deferred collection that can count itself and return a slice of
// itself without being evaluated as a whole. Implementations are expected to
// push both operations down to the underlying storage and to have no side
// effects.
type Source[T any] interface {
	// Count returns the total number of items in the collection.
	Count(ctx context.Context) (int, error)
	// Slice returns at most take items in the natural order of the source,
	// starting after skip items.
	Slice(ctx context.Context, skip, take int) ([]T, error)
}

// OrderedSource is a Source that can also order itself by a key before
// slicing. The type of the key depends on the storage: a column name for SQL
// backed sources, a comparison function for in-memory ones.
type OrderedSource[T any, K any] interface {
	Source[T]
	// OrderedSlice orders the collection by key in the given direction and
	// returns at most take items starting after skip items.
	OrderedSlice(ctx context.Context, skip, take int, key K, dir Direction) ([]T, error)
}
