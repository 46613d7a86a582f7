package gopaging

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// GormSource is a Source over a gorm query. Count and the slices are pushed
// down to the database as "SELECT count(*)" and "ORDER BY ... LIMIT ...
// OFFSET ..." respectively, so only one page is ever loaded.
//
// The query passed to NewGormSource may carry Table, Where, Joins and the
// like. Each call runs on its own session, so the count and the slice never
// share statement state.
type GormSource[T any] struct {
	db   *gorm.DB
	sort Orderings
}

func NewGormSource[T any](db *gorm.DB) *GormSource[T] {
	return &GormSource[T]{
		db: db,
	}
}

// WithSort appends orderings that define the natural order of the source.
// Slice applies them as is; OrderedSlice applies them after its key, as
// tie-breakers.
func (s *GormSource[T]) WithSort(orderBy ...OrderBy) *GormSource[T] {
	if s == nil {
		s = new(GormSource[T])
	}

	s.sort = s.sort.With(orderBy...)

	return s
}

// GetSort returns orderings that will be applied to the dataset.
func (s *GormSource[T]) GetSort() Orderings {
	if s == nil {
		return nil
	}

	return s.sort
}

// Count - implements Source.
func (s *GormSource[T]) Count(ctx context.Context) (int, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}

	var count int64
	err := s.session(ctx).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// Slice - implements Source.
func (s *GormSource[T]) Slice(ctx context.Context, skip, take int) ([]T, error) {
	return s.find(ctx, NewWindow(skip, take), s.GetSort())
}

// OrderedSlice - implements OrderedSource. The key is a column name; it is
// subject to the same restrictions as any other ordering column.
func (s *GormSource[T]) OrderedSlice(ctx context.Context, skip, take int, column string, dir Direction) ([]T, error) {
	orderings := Orderings{{Column: column, Direction: dir}}.With(s.GetSort().without(column)...)

	return s.find(ctx, NewWindow(skip, take), orderings)
}

func (s *GormSource[T]) find(ctx context.Context, w Window, orderings Orderings) ([]T, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}

	err := orderings.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot order source: %w", err)
	}

	var items []T
	err = w.Apply(orderings.Apply(s.session(ctx))).Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (s *GormSource[T]) session(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(new(T))
}

var _ OrderedSource[any, string] = (*GormSource[any])(nil)
