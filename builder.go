package gopaging

import (
	"context"

	"gorm.io/gorm"
)

// Paginate pages an in-memory, already ordered collection.
//
//	page, err := gopaging.Paginate(cars, gopaging.NewPager().WithPage(2))
func Paginate[T any](items []T, p *Pager) (*Page[T], error) {
	return NewMaterializedPage(items, p.GetPage(), p.GetItemsPerPage(), p.GetMaxWindowSize())
}

// ToPage pages an in-memory collection with the default sizes.
func ToPage[T any](items []T, page int) (*Page[T], error) {
	return Paginate(items, NewPager().WithPage(page))
}

// PaginateSource pages a deferred source in its natural order.
func PaginateSource[T any](ctx context.Context, src Source[T], p *Pager) (*Page[T], error) {
	return NewSourcePage(ctx, src, p.GetPage(), p.GetItemsPerPage(), p.GetMaxWindowSize())
}

// PaginateOrdered pages a deferred source ordered by key.
//
//	page, err := gopaging.PaginateOrdered[Car](ctx, src, gopaging.By(func(c Car) int { return c.Price }), false, pager)
func PaginateOrdered[T any, K any](
	ctx context.Context,
	src OrderedSource[T, K],
	key K,
	ascending bool,
	p *Pager,
) (*Page[T], error) {
	return NewQueryPage(ctx, src, key, DirectionOf(ascending), p.GetPage(), p.GetItemsPerPage(), p.GetMaxWindowSize())
}

// PaginateGorm pages a gorm query in the order given by the pager's sort.
func PaginateGorm[T any](ctx context.Context, db *gorm.DB, p *Pager) (*Page[T], error) {
	return PaginateSource[T](ctx, NewGormSource[T](db).WithSort(p.GetSort()...), p)
}
