package gopaging

import "slices"

// NewStaticPage wraps a subset that was already sliced elsewhere. The metadata
// is computed from the given parameters and subset is stored as is: it is not
// trimmed to itemsPerPage.
func NewStaticPage[T any](subset []T, page, itemsPerPage, maxWindowSize, totalItemCount int) (*Page[T], error) {
	meta, err := NewMetadata(page, itemsPerPage, maxWindowSize, totalItemCount)
	if err != nil {
		return nil, err
	}

	return newPage(meta, slices.Clone(subset)), nil
}

// WrapPage wraps a subset together with metadata computed elsewhere, typically
// on the other side of a serialization boundary. The metadata is rebuilt from
// its paging inputs, so the result is identical to the original page's.
func WrapPage[T any](subset []T, meta Metadata) (*Page[T], error) {
	return NewStaticPage(subset, meta.currentPage, meta.take, meta.maxWindowSize, meta.totalItemCount)
}
