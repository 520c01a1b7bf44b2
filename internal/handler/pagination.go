package handler

import (
	"vglist/backend/internal/repository"

	"k8s.io/utils/ptr"
)

// PageQuery binds the limit and cursor query parameters of list procedures.
type PageQuery struct {
	Limit  *int   `form:"limit" binding:"omitempty,min=1,max=100"`
	Cursor *int64 `form:"cursor" binding:"omitempty,min=1"`
}

func (q PageQuery) page() repository.Page {
	return repository.Page{Limit: ptr.Deref(q.Limit, 0), Cursor: q.Cursor}
}

// PaginatedResponse is one page of a list procedure. Count, when present, is
// the total number of matching rows.
type PaginatedResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor *int64 `json:"next_cursor"`
	Count      *int64 `json:"count,omitempty"`
}

// newPaginatedResponse converts a repository page with conv.
func newPaginatedResponse[M, T any](p repository.Paged[M], conv func(M) T) PaginatedResponse[T] {
	items := make([]T, 0, len(p.Items))
	for _, m := range p.Items {
		items = append(items, conv(m))
	}
	return PaginatedResponse[T]{Items: items, NextCursor: p.NextCursor}
}

func emptyPage[T any]() PaginatedResponse[T] {
	var zero int64
	return PaginatedResponse[T]{Items: []T{}, Count: &zero}
}
