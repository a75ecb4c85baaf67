// Package views derives what a dashboard table or stat card shows from a
// store snapshot plus the transient UI state (search term, status filter,
// page). Everything here is pure: no store access, no side effects.
package views

import (
	"strings"

	"github.com/shashiranjanraj/backoffice/pkg/paginate"
)

// FilterAll is the sentinel status value that disables status filtering.
// Matching is case-insensitive, so the products table's "All" and the
// customers table's "all" both qualify; an absent filter counts as all.
const FilterAll = "all"

// ListQuery carries the transient UI state of one table.
type ListQuery struct {
	Search  string
	Status  string
	Page    int
	PerPage int
}

func (q ListQuery) normalized() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = 1
	}
	return q
}

// Page is one window of a filtered collection plus its pagination metadata.
type Page[T any] struct {
	Items      []T                 `json:"items"`
	Pagination paginate.Pagination `json:"pagination"`
}

// matchesAny reports whether term is a case-insensitive substring of any of
// the fields. An empty term matches everything.
func matchesAny(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// passesAll reports whether the status filter is the all-sentinel.
func passesAll(status string) bool {
	return status == "" || strings.EqualFold(status, FilterAll)
}
