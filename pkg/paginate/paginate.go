// Package paginate computes pagination metadata and the truncated page-label
// sequence rendered by the dashboard's pager control.
package paginate

import "strconv"

// Ellipsis is the gap marker emitted by Labels between non-consecutive pages.
const Ellipsis = "..."

// delta is how many pages are shown on each side of the current page.
const delta = 2

// Pagination describes one page of a filtered collection. It is returned next
// to the items in every list response.
type Pagination struct {
	Page       int      `json:"page"`
	PerPage    int      `json:"perPage"`
	TotalItems int      `json:"totalItems"`
	TotalPages int      `json:"totalPages"`
	Labels     []string `json:"labels,omitempty"`
}

// New builds the metadata for page `page` of a collection with totalItems
// entries. TotalPages is ceil(totalItems/perPage); an empty collection has
// zero pages and no labels.
func New(totalItems, page, perPage int) Pagination {
	if perPage < 1 {
		perPage = 1
	}
	if page < 1 {
		page = 1
	}

	totalPages := (totalItems + perPage - 1) / perPage

	p := Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
	if totalPages > 0 {
		p.Labels = Labels(totalPages, page)
	}
	return p
}

// Labels produces the compact page-indicator sequence for a pager control:
// page 1, the last page, every page within ±2 of the current page, and an
// ellipsis wherever a gap remains. When the gap collapses (current-2 ≤ 2 on
// the leading side, symmetric on the trailing side) no ellipsis is inserted.
//
//	Labels(10, 5) → [1 ... 3 4 5 6 7 ... 10]
//	Labels(4, 2)  → [1 2 3 4]
func Labels(totalPages, currentPage int) []string {
	var middle []string
	for i := max(2, currentPage-delta); i <= min(totalPages-1, currentPage+delta); i++ {
		middle = append(middle, strconv.Itoa(i))
	}

	labels := []string{"1"}
	if currentPage-delta > 2 {
		labels = append(labels, Ellipsis)
	}

	labels = append(labels, middle...)

	if currentPage+delta < totalPages-1 {
		labels = append(labels, Ellipsis, strconv.Itoa(totalPages))
	} else if totalPages > 1 {
		labels = append(labels, strconv.Itoa(totalPages))
	}

	return labels
}
