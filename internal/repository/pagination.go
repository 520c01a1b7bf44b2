package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// DefaultLimit is the page size used when a caller gives none.
	DefaultLimit = 20
	// MaxLimit caps the page size.
	MaxLimit = 100
)

// Order is the key order of a paginated listing.
type Order int

const (
	Ascending Order = iota
	Descending
)

// Page requests one slice of a keyset-paginated listing. Cursor is the key of
// the first row to return; nil starts from the beginning.
type Page struct {
	Limit  int
	Cursor *int64
}

// Paged is one page of rows. NextCursor is nil on the last page.
type Paged[T any] struct {
	Items      []T
	NextCursor *int64
}

// paginate fetches limit+1 rows ordered by column starting at the cursor. When
// the extra row exists it is dropped and its key becomes the next cursor, so
// the next page starts exactly where this one ended.
func paginate[T any](q *gorm.DB, column string, page Page, order Order, key func(T) int64) (Paged[T], error) {
	limit := page.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	desc := order == Descending
	if page.Cursor != nil {
		if desc {
			q = q.Where(clause.Lte{Column: clause.Column{Name: column}, Value: *page.Cursor})
		} else {
			q = q.Where(clause.Gte{Column: clause.Column{Name: column}, Value: *page.Cursor})
		}
	}

	var rows []T
	err := q.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Limit(limit + 1).
		Find(&rows).Error
	if err != nil {
		return Paged[T]{}, err
	}

	result := Paged[T]{Items: rows}
	if len(rows) > limit {
		next := key(rows[limit])
		result.Items = rows[:limit]
		result.NextCursor = &next
	}
	if result.Items == nil {
		result.Items = []T{}
	}
	return result, nil
}

// Aggregate is an average score and the number of rows it covers. Avg is nil
// when there are no rows.
type Aggregate struct {
	Avg   *float64 `json:"avg"`
	Count int64    `json:"count"`
}
