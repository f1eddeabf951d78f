package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"digiboard/api/internal/db/repositories"
)

// listQuery pulls the shared list parameters off the request. Invalid
// numbers read as zero and are normalized by the repository.
func listQuery(r *http.Request) repositories.ListQuery {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	return repositories.ListQuery{
		Search:        r.URL.Query().Get("search"),
		SortBy:        r.URL.Query().Get("sort_by"),
		SortDirection: r.URL.Query().Get("sort_direction"),
		Page:          page,
		PerPage:       perPage,
	}
}

// queryUint reads an optional numeric filter; absent or malformed values
// read as zero, meaning "not present".
func queryUint(r *http.Request, key string) uint {
	val := r.URL.Query().Get(key)
	if val == "" {
		return 0
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

// idParam reads the {id} route parameter.
func idParam(r *http.Request) (uint, bool) {
	n, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
