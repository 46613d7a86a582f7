package gopaging

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Queryer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// RowScanner reads one item from the current row.
type RowScanner[T any] func(rows *sql.Rows) (T, error)

// SQLSource is a Source over a plain SELECT statement, for code that does not
// use gorm. The statement must not carry its own ORDER BY, LIMIT or OFFSET:
// they are appended by the source.
//
// Count wraps the statement:
//
//	SELECT count(*) FROM (<query>) AS paged_count
//
// and slicing appends the ordering and the window:
//
//	<query> ORDER BY <column> <direction> LIMIT <take> OFFSET <skip>
type SQLSource[T any] struct {
	db    Queryer
	scan  RowScanner[T]
	query string
	args  []any
	sort  Orderings
}

func NewSQLSource[T any](db Queryer, scan RowScanner[T], query string, args ...any) *SQLSource[T] {
	return &SQLSource[T]{
		db:    db,
		scan:  scan,
		query: strings.TrimSpace(query),
		args:  args,
	}
}

// WithSort appends orderings that define the natural order of the source.
func (s *SQLSource[T]) WithSort(orderBy ...OrderBy) *SQLSource[T] {
	if s == nil {
		s = new(SQLSource[T])
	}

	s.sort = s.sort.With(orderBy...)

	return s
}

// Count - implements Source.
func (s *SQLSource[T]) Count(ctx context.Context) (int, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}

	var count int
	query := fmt.Sprintf("SELECT count(*) FROM (%s) AS paged_count", s.query)
	err := s.db.QueryRowContext(ctx, query, s.args...).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Slice - implements Source.
func (s *SQLSource[T]) Slice(ctx context.Context, skip, take int) ([]T, error) {
	if s == nil {
		return nil, nil
	}

	return s.find(ctx, NewWindow(skip, take), s.sort)
}

// OrderedSlice - implements OrderedSource. The key is a column name.
func (s *SQLSource[T]) OrderedSlice(ctx context.Context, skip, take int, column string, dir Direction) ([]T, error) {
	if s == nil {
		return nil, nil
	}

	orderings := Orderings{{Column: column, Direction: dir}}.With(s.sort.without(column)...)

	return s.find(ctx, NewWindow(skip, take), orderings)
}

// ToSQL returns the statement that selects w in the given order.
func (s *SQLSource[T]) ToSQL(w Window, orderings Orderings) string {
	parts := []string{s.query}
	if len(orderings) > 0 {
		parts = append(parts, "ORDER BY", orderings.ToSQL())
	}
	parts = append(parts, w.ToSQL())

	return strings.Join(parts, " ")
}

func (s *SQLSource[T]) find(ctx context.Context, w Window, orderings Orderings) ([]T, error) {
	if s.db == nil {
		return nil, nil
	}

	if s.scan == nil {
		return nil, fmt.Errorf("nil row scanner")
	}

	err := orderings.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot order source: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, s.ToSQL(w, orderings), s.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, err := s.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("cannot scan row: %w", err)
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

var (
	_ OrderedSource[any, string] = (*SQLSource[any])(nil)
	_ Queryer                    = (*sql.DB)(nil)
	_ Queryer                    = (*sql.Tx)(nil)
)
