package gopaging

import "fmt"

// RawPager is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPager `json:",inline"`
//	}
type RawPager struct {
	// Page - 1-based number of the requested page. Out of range values are
	// clamped when the page is built.
	Page int `json:"page"`
	// ItemsPerPage - maximum number of records to return in the response.
	ItemsPerPage int `json:"itemsPerPage"`
	// Sort - optional orderings in the "column asc|desc" format.
	Sort []string `json:"sort,omitempty"`
}

// Decode converts RawPager into *Pager, normalizing ItemsPerPage and resolving
// Sort aliases through columnMapping.
func (p RawPager) Decode(columnMapping ColumnMapping) (*Pager, error) {
	sort, err := ParseSort(p.Sort, columnMapping)
	if err != nil {
		return nil, fmt.Errorf("cannot decode pager: %w", err)
	}

	return NewPager().
		WithPage(p.Page).
		WithItemsPerPage(NormalizeItemsPerPage(p.ItemsPerPage)).
		WithSort(sort...), nil
}

// Pager carries the paging parameters of a request. A nil *Pager stands for
// page 1 with DefaultItemsPerPage and DefaultMaxWindowSize.
//
// Pager does not validate anything: invalid sizes are reported when a page is
// built from it.
type Pager struct {
	page          int
	itemsPerPage  int
	maxWindowSize int
	sort          Orderings
}

func NewPager() *Pager {
	return &Pager{
		page:          1,
		itemsPerPage:  DefaultItemsPerPage,
		maxWindowSize: DefaultMaxWindowSize,
	}
}

// WithPage sets the requested page.
func (p *Pager) WithPage(page int) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.page = page

	return p
}

// WithItemsPerPage sets the page size as is.
func (p *Pager) WithItemsPerPage(itemsPerPage int) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.itemsPerPage = itemsPerPage

	return p
}

// WithMaxWindowSize sets how many page numbers are offered for navigation.
func (p *Pager) WithMaxWindowSize(maxWindowSize int) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.maxWindowSize = maxWindowSize

	return p
}

// WithSubstitutedSort resets previous orderings and applies the provided ones.
func (p *Pager) WithSubstitutedSort(orderBy ...OrderBy) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.sort = nil

	return p.WithSort(orderBy...)
}

// WithSort appends sort orderings without overwriting existing ones. A column
// that is already present is moved to its new position.
func (p *Pager) WithSort(orderBy ...OrderBy) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.sort = p.sort.With(orderBy...)

	return p
}

// GetPage returns the requested page as it is stored in Pager.
func (p *Pager) GetPage() int {
	if p == nil {
		return 1
	}

	return p.page
}

func (p *Pager) GetItemsPerPage() int {
	if p == nil {
		return DefaultItemsPerPage
	}

	return p.itemsPerPage
}

func (p *Pager) GetMaxWindowSize() int {
	if p == nil {
		return DefaultMaxWindowSize
	}

	return p.maxWindowSize
}

// GetSort returns orderings that will be applied to sources that support them.
func (p *Pager) GetSort() Orderings {
	if p == nil {
		return nil
	}

	return p.sort
}
