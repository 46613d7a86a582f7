package gopaging

import (
	"fmt"

	"gorm.io/gorm"
)

// Window is the skip/take pair that selects a page from its source. It is
// what gets pushed down to storage as OFFSET/LIMIT.
type Window struct {
	skip int
	take int
}

func NewWindow(skip, take int) Window {
	return Window{
		skip: max(skip, 0),
		take: max(take, 0),
	}
}

// GetSkip returns the number of items to skip.
func (w Window) GetSkip() int {
	return w.skip
}

// GetTake returns the maximum number of items to return.
func (w Window) GetTake() int {
	return w.take
}

// IsEmpty returns true if the window cannot select any item.
func (w Window) IsEmpty() bool {
	return w.take == 0
}

// Apply applies the window to a gorm query. A zero offset is omitted by gorm.
func (w Window) Apply(db *gorm.DB) *gorm.DB {
	return db.Offset(w.skip).Limit(w.take)
}

// ToSQL returns the window as a "LIMIT <take> OFFSET <skip>" clause. The
// OFFSET part is omitted when skip is 0.
//
// Usage:
//
//	query := fmt.Sprintf("SELECT * FROM table ORDER BY id %s", w.ToSQL())
func (w Window) ToSQL() string {
	if w.skip == 0 {
		return fmt.Sprintf("LIMIT %d", w.take)
	}

	return fmt.Sprintf("LIMIT %d OFFSET %d", w.take, w.skip)
}

// Bounds returns the [start, end) indices of the window inside a sequence of
// length n.
func (w Window) Bounds(n int) (int, int) {
	start := min(w.skip, n)
	end := min(start+w.take, n)

	return start, end
}
