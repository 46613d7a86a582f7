package gopaging

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// Page is one page of a collection: the items on it plus the Metadata that
// places it within the collection. A Page is built once by one of
// NewMaterializedPage, NewQueryPage, NewSourcePage or NewStaticPage and is
// read-only afterwards, so it may be shared between goroutines.
//
// A nil *Page behaves as an empty page without metadata.
type Page[T any] struct {
	meta  Metadata
	items []T
}

func newPage[T any](meta Metadata, items []T) *Page[T] {
	return &Page[T]{
		meta:  meta,
		items: items,
	}
}

// Metadata returns the non-enumerable view of the page.
func (p *Page[T]) Metadata() Metadata {
	if p == nil {
		return Metadata{}
	}

	return p.meta
}

// Len returns the number of items on this page.
func (p *Page[T]) Len() int {
	if p == nil {
		return 0
	}

	return len(p.items)
}

// At returns the item at the zero-based index i. It panics if i is out of
// range, like indexing a slice.
func (p *Page[T]) At(i int) T {
	if i < 0 || i >= p.Len() {
		panic(fmt.Errorf("page index %d out of range [0:%d]", i, p.Len()))
	}

	return p.items[i]
}

// Items returns a copy of the items on this page.
func (p *Page[T]) Items() []T {
	if p == nil {
		return nil
	}

	return slices.Clone(p.items)
}

// All iterates over index/item pairs in page order.
func (p *Page[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if p == nil {
			return
		}

		for i, item := range p.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Values iterates over the items in page order.
func (p *Page[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range p.All() {
			if !yield(item) {
				return
			}
		}
	}
}

// RawPage is the wire form of a Page. Decode it on the receiving side to get
// a Page back without re-slicing anything.
type RawPage[T any] struct {
	Items    []T         `json:"items"`
	Metadata RawMetadata `json:"metadata"`
}

// Decode rebuilds the page through WrapPage.
func (r RawPage[T]) Decode() (*Page[T], error) {
	meta, err := r.Metadata.Decode()
	if err != nil {
		return nil, fmt.Errorf("cannot decode page: %w", err)
	}

	return WrapPage(r.Items, meta)
}

// Raw returns the wire form of the page. Items is never nil so that it
// encodes as an empty JSON array.
func (p *Page[T]) Raw() RawPage[T] {
	items := p.Items()
	if items == nil {
		items = []T{}
	}

	return RawPage[T]{
		Items:    items,
		Metadata: p.Metadata().Raw(),
	}
}

// MarshalJSON - implements json.Marshaler.
func (p *Page[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Raw())
}

// UnmarshalJSON - implements json.Unmarshaler.
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	var raw RawPage[T]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	decoded, err := raw.Decode()
	if err != nil {
		return err
	}

	*p = *decoded

	return nil
}

var (
	_ json.Marshaler   = (*Page[any])(nil)
	_ json.Unmarshaler = (*Page[any])(nil)
)
