package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/backoffice/app/stores"
	"github.com/shashiranjanraj/backoffice/app/views"
	"github.com/shashiranjanraj/backoffice/config"
	"github.com/shashiranjanraj/backoffice/pkg/response"
)

// OrderController serves the read-only orders table. Orders live on the
// customer store; there is no order mutation surface.
type OrderController struct {
	store *stores.CustomerStore
}

func NewOrderController(store *stores.CustomerStore) *OrderController {
	return &OrderController{store: store}
}

// Index handles GET /api/orders?search=&status=&page=&per_page=.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r, "status", config.OrdersPerPage())
	page := views.Orders(c.store.Orders(), q)
	response.Paginated(w, page.Items, page.Pagination)
}

// Show handles GET /api/orders/{id}.
func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	order, ok := c.store.OrderByID(chi.URLParam(r, "id"))
	if !ok {
		response.NotFound(w)
		return
	}
	response.Success(w, order)
}
