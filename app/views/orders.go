package views

import (
	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/pkg/collection"
	"github.com/shashiranjanraj/backoffice/pkg/paginate"
)

// Orders filters the order collection by search term (order id, customer
// name, or any line item's product name) and fulfilment status, then slices
// out the requested page.
func Orders(all []models.Order, q ListQuery) Page[models.Order] {
	q = q.normalized()

	filtered := collection.Filter(all, func(o models.Order) bool {
		matchesSearch := matchesAny(q.Search, o.ID, o.CustomerName) ||
			collection.Contains(o.Items, func(it models.OrderItem) bool {
				return matchesAny(q.Search, it.ProductName)
			})
		matchesStatus := passesAll(q.Status) || string(o.Status) == q.Status
		return matchesSearch && matchesStatus
	})

	return Page[models.Order]{
		Items:      collection.Paginate(filtered, q.Page, q.PerPage),
		Pagination: paginate.New(len(filtered), q.Page, q.PerPage),
	}
}
