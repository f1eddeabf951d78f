package repositories

import (
	"errors"
	"strings"

	"digiboard/api/internal/constants"
)

// ErrNotFound is returned when a requested record id does not exist.
var ErrNotFound = errors.New("record not found")

// ListQuery carries the shared list-endpoint parameters: search term,
// requested sort and offset pagination.
type ListQuery struct {
	Search        string
	SortBy        string
	SortDirection string
	Page          int
	PerPage       int
}

// Normalized clamps pagination to sane bounds. Zero values fall back to the
// given default page size; PerPage is capped to keep a single response
// bounded.
func (q ListQuery) Normalized(defaultPerPage int) ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = defaultPerPage
	}
	if q.PerPage > constants.MaxPerPage {
		q.PerPage = constants.MaxPerPage
	}
	return q
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// SortDir maps the request value onto a SQL keyword, defaulting to ASC for
// anything that is not exactly "desc".
func SortDir(dir string) string {
	if strings.EqualFold(dir, constants.SortDesc) {
		return "DESC"
	}
	return "ASC"
}

// LastPage computes the page count for a paginator envelope.
func LastPage(total int64, perPage int) int {
	if total == 0 {
		return 1
	}
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		pages = 1
	}
	return pages
}
