package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/backoffice/app/forms"
	"github.com/shashiranjanraj/backoffice/app/stores"
	"github.com/shashiranjanraj/backoffice/app/views"
	"github.com/shashiranjanraj/backoffice/config"
	"github.com/shashiranjanraj/backoffice/pkg/cache"
	"github.com/shashiranjanraj/backoffice/pkg/logger"
	"github.com/shashiranjanraj/backoffice/pkg/response"
)

const customerStatsKey = "stats:customers"

type CustomerController struct {
	store *stores.CustomerStore
}

func NewCustomerController(store *stores.CustomerStore) *CustomerController {
	return &CustomerController{store: store}
}

// Index handles GET /api/customers?search=&status=&page=&per_page=.
func (c *CustomerController) Index(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r, "status", config.CustomersPerPage())
	page := views.Customers(c.store.Customers(), q)
	response.Paginated(w, page.Items, page.Pagination)
}

// Show handles GET /api/customers/{id}.
func (c *CustomerController) Show(w http.ResponseWriter, r *http.Request) {
	customer, ok := c.store.Customer(chi.URLParam(r, "id"))
	if !ok {
		response.NotFound(w)
		return
	}
	response.Success(w, customer)
}

// Orders handles GET /api/customers/{id}/orders. The order history panel
// shows every order of the customer without pagination.
func (c *CustomerController) Orders(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := c.store.Customer(id); !ok {
		response.NotFound(w)
		return
	}
	response.Success(w, c.store.OrdersFor(id))
}

// UpdateStatus handles PATCH /api/customers/{id}/status.
func (c *CustomerController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := c.store.Customer(id); !ok {
		response.NotFound(w)
		return
	}

	var form forms.CustomerStatusUpdate
	if !decode(w, r, &form) {
		return
	}

	status, errs := form.Parse()
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	c.store.SetStatus(id, status)
	cache.Del(customerStatsKey)
	logger.WithCtx(r.Context()).Info("customer status changed", "id", id, "status", status)

	updated, _ := c.store.Customer(id)
	response.Success(w, updated)
}

// Stats handles GET /api/customers/stats.
func (c *CustomerController) Stats(w http.ResponseWriter, r *http.Request) {
	var stats views.CustomerStats
	if cache.Get(customerStatsKey, &stats) {
		response.Success(w, stats)
		return
	}

	stats = views.CustomerStatsFrom(c.store.Customers(), c.store.Orders())
	cache.Set(customerStatsKey, stats, 30*time.Second)
	response.Success(w, stats)
}
