package httpapi

import (
	"net/http"
	"strconv"

	"melodex/internal/store"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// parsePagination reads page and limit query parameters. Absent, non-numeric
// or non-positive values fall back to the defaults. No upper bound is placed
// on limit.
func parsePagination(r *http.Request) (page, limit int) {
	page = defaultPage
	limit = defaultLimit

	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	return page, limit
}

func pageWindow(page, limit int) store.Page {
	return store.Page{Limit: limit, Offset: (page - 1) * limit}
}

// listMetadata derives pagination metadata. An empty collection reports zero
// total pages.
func listMetadata(total int64, page, limit int) *metadata {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &metadata{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PerPage:     limit,
	}
}
