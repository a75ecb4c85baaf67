package views

import (
	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/pkg/collection"
	"github.com/shashiranjanraj/backoffice/pkg/paginate"
)

// Customers filters the customer collection by search term (name, email,
// location) and account status, then slices out the requested page.
func Customers(all []models.Customer, q ListQuery) Page[models.Customer] {
	q = q.normalized()

	filtered := collection.Filter(all, func(c models.Customer) bool {
		matchesSearch := matchesAny(q.Search, c.Name, c.Email, c.Location)
		matchesStatus := passesAll(q.Status) || string(c.Status) == q.Status
		return matchesSearch && matchesStatus
	})

	return Page[models.Customer]{
		Items:      collection.Paginate(filtered, q.Page, q.PerPage),
		Pagination: paginate.New(len(filtered), q.Page, q.PerPage),
	}
}
