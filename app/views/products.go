package views

import (
	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/pkg/collection"
	"github.com/shashiranjanraj/backoffice/pkg/paginate"
)

// Products filters the product collection by search term (name, brand,
// category) and stock status, then slices out the requested page.
// Both predicates must pass; the stock comparison is exact unless the
// filter is the all-sentinel.
func Products(all []models.Product, q ListQuery) Page[models.Product] {
	q = q.normalized()

	filtered := collection.Filter(all, func(p models.Product) bool {
		matchesSearch := matchesAny(q.Search, p.Name, p.Brand, p.Category)
		matchesStock := passesAll(q.Status) || string(p.Stock) == q.Status
		return matchesSearch && matchesStock
	})

	return Page[models.Product]{
		Items:      collection.Paginate(filtered, q.Page, q.PerPage),
		Pagination: paginate.New(len(filtered), q.Page, q.PerPage),
	}
}
