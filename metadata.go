package gopaging

import (
	"slices"

	"github.com/samber/lo"
)

// Metadata describes one page of a collection: which page it is, where it
// starts in the collection and which neighbouring page numbers should be
// offered for navigation.
//
// Metadata is immutable. Use NewMetadata to build it; the zero value is not a
// valid description of any page.
type Metadata struct {
	currentPage    int
	take           int
	maxWindowSize  int
	totalItemCount int
	totalPages     int
	skip           int
	pages          []int
	hasPrevious    bool
	previousPage   int
	hasNext        bool
	nextPage       int
	fromItem       int
	toItem         int
}

// NewMetadata computes the metadata for the requested page.
//
// The requested page is clamped into [1, totalPages] (1 when there are no
// pages), so any integer is accepted. itemsPerPage and maxWindowSize must be
// at least 1, otherwise a *ConfigurationError is returned. A negative
// totalItemCount is treated as an empty collection.
func NewMetadata(page, itemsPerPage, maxWindowSize, totalItemCount int) (Metadata, error) {
	if itemsPerPage < 1 {
		return Metadata{}, newConfigurationError("itemsPerPage", itemsPerPage)
	}
	if maxWindowSize < 1 {
		return Metadata{}, newConfigurationError("maxWindowSize", maxWindowSize)
	}

	m := Metadata{
		take:           itemsPerPage,
		maxWindowSize:  maxWindowSize,
		totalItemCount: max(totalItemCount, 0),
	}

	m.totalPages = totalPages(m.totalItemCount, m.take)
	m.currentPage = clampPage(page, m.totalPages)
	m.skip = lo.Clamp(m.currentPage-1, 0, max(m.totalPages-1, 0)) * m.take

	m.hasPrevious = m.currentPage > 1
	m.previousPage = max(m.currentPage-1, 1)
	m.hasNext = m.currentPage < m.totalPages
	m.nextPage = min(m.currentPage+1, max(m.totalPages, 1))

	m.pages = pageWindow(m.currentPage, m.totalPages, m.maxWindowSize)

	m.fromItem = lo.Ternary(m.totalItemCount > 0, m.skip+1, 0)
	m.toItem = lo.Clamp(m.fromItem+m.take-1, 0, m.totalItemCount)

	return m, nil
}

func totalPages(totalItemCount, take int) int {
	if totalItemCount <= 0 {
		return 0
	}

	// Avoids the overflow of (total + take - 1) / take near math.MaxInt.
	return totalItemCount/take + lo.Ternary(totalItemCount%take > 0, 1, 0)
}

func clampPage(page, totalPages int) int {
	switch {
	case page < 1:
		return 1
	case totalPages > 0 && page > totalPages:
		return totalPages
	case totalPages == 0:
		return 1
	default:
		return page
	}
}

// pageWindow returns the contiguous run of page numbers centered on current.
// For an even window the center rounds toward the lower page. start is
// computed first and only re-derived when end overflows totalPages.
func pageWindow(current, totalPages, maxWindowSize int) []int {
	if maxWindowSize >= totalPages {
		return lo.RangeFrom(1, totalPages)
	}

	start := max(current-maxWindowSize/2, 1)
	end := start + maxWindowSize - 1
	if end > totalPages {
		end = totalPages
		start = end - maxWindowSize + 1
	}

	return lo.RangeFrom(start, end-start+1)
}

// GetCurrentPage returns the 1-based page number after clamping.
func (m Metadata) GetCurrentPage() int {
	return m.currentPage
}

// GetTotalPages returns the number of pages, 0 for an empty collection.
func (m Metadata) GetTotalPages() int {
	return m.totalPages
}

// GetTotalItemCount returns the size of the whole collection.
func (m Metadata) GetTotalItemCount() int {
	return m.totalItemCount
}

// GetSkip returns the zero-based offset of the first item on the page.
func (m Metadata) GetSkip() int {
	return m.skip
}

// GetTake returns the number of items per page.
func (m Metadata) GetTake() int {
	return m.take
}

// GetMaxWindowSize returns the upper bound on len(GetPages()).
func (m Metadata) GetMaxWindowSize() int {
	return m.maxWindowSize
}

// GetPages returns a copy of the page numbers offered for navigation.
func (m Metadata) GetPages() []int {
	return slices.Clone(m.pages)
}

func (m Metadata) HasPrevious() bool {
	return m.hasPrevious
}

func (m Metadata) GetPreviousPage() int {
	return m.previousPage
}

func (m Metadata) HasNext() bool {
	return m.hasNext
}

func (m Metadata) GetNextPage() int {
	return m.nextPage
}

// HasMultiplePages returns true if there is more than one page to navigate.
func (m Metadata) HasMultiplePages() bool {
	return m.totalPages > 1
}

// GetFromItem returns the 1-based number of the first item on the page
// (e.g. _11_ - 20 of 45), or 0 for an empty collection.
func (m Metadata) GetFromItem() int {
	return m.fromItem
}

// GetToItem returns the 1-based number of the last item on the page
// (e.g. 11 - _20_ of 45), or 0 for an empty collection.
func (m Metadata) GetToItem() int {
	return m.toItem
}

// Window returns the skip/take pair that selects this page from its source.
func (m Metadata) Window() Window {
	return NewWindow(m.skip, m.take)
}
