package gopaging

import (
	"context"
	"fmt"
)

// NewQueryPage pages a deferred source ordered by key. The source is asked
// exactly once for its count and exactly once for the ordered slice, so it is
// never evaluated beyond the requested page. A nil source yields an empty
// page and is not ordered.
//
// If the source changes between the two calls, the items and the metadata
// may disagree. The page keeps at most itemsPerPage items.
func NewQueryPage[T any, K any](
	ctx context.Context,
	src OrderedSource[T, K],
	key K,
	dir Direction,
	page, itemsPerPage, maxWindowSize int,
) (*Page[T], error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("cannot page source: invalid ordering direction '%s'", dir)
	}

	if src == nil {
		return newEmptyPage[T](page, itemsPerPage, maxWindowSize)
	}

	return newSourcePage(ctx, src, page, itemsPerPage, maxWindowSize, func(w Window) ([]T, error) {
		return src.OrderedSlice(ctx, w.GetSkip(), w.GetTake(), key, dir)
	})
}

// NewSourcePage pages a deferred source in its natural order. Like
// NewQueryPage it calls Count once and Slice once.
func NewSourcePage[T any](ctx context.Context, src Source[T], page, itemsPerPage, maxWindowSize int) (*Page[T], error) {
	if src == nil {
		return newEmptyPage[T](page, itemsPerPage, maxWindowSize)
	}

	return newSourcePage(ctx, src, page, itemsPerPage, maxWindowSize, func(w Window) ([]T, error) {
		return src.Slice(ctx, w.GetSkip(), w.GetTake())
	})
}

func newEmptyPage[T any](page, itemsPerPage, maxWindowSize int) (*Page[T], error) {
	meta, err := NewMetadata(page, itemsPerPage, maxWindowSize, 0)
	if err != nil {
		return nil, err
	}

	return newPage(meta, []T(nil)), nil
}

func newSourcePage[T any](
	ctx context.Context,
	src Source[T],
	page, itemsPerPage, maxWindowSize int,
	slice func(Window) ([]T, error),
) (*Page[T], error) {
	// Reject bad parameters before the source is touched.
	if _, err := NewMetadata(page, itemsPerPage, maxWindowSize, 0); err != nil {
		return nil, err
	}

	total, err := src.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot count source: %w", err)
	}

	meta, err := NewMetadata(page, itemsPerPage, maxWindowSize, total)
	if err != nil {
		return nil, err
	}

	// Nothing to fetch.
	if meta.GetTotalItemCount() == 0 {
		return newPage(meta, []T(nil)), nil
	}

	items, err := slice(meta.Window())
	if err != nil {
		return nil, fmt.Errorf("cannot slice source: %w", err)
	}

	if len(items) > meta.GetTake() {
		items = items[:meta.GetTake()]
	}

	return newPage(meta, items), nil
}
