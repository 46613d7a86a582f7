package gopaging

import "slices"

// NewMaterializedPage slices an in-memory, already ordered collection. The
// page owns a copy of its items; items itself is never retained. A nil
// collection yields an empty page.
func NewMaterializedPage[T any](items []T, page, itemsPerPage, maxWindowSize int) (*Page[T], error) {
	meta, err := NewMetadata(page, itemsPerPage, maxWindowSize, len(items))
	if err != nil {
		return nil, err
	}

	start, end := meta.Window().Bounds(len(items))

	return newPage(meta, slices.Clone(items[start:end])), nil
}
