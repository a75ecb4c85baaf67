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

const productStatsKey = "stats:products"

type ProductController struct {
	store *stores.ProductStore
}

func NewProductController(store *stores.ProductStore) *ProductController {
	return &ProductController{store: store}
}

// Index handles GET /api/products?search=&stock=&page=&per_page=.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r, "stock", config.ProductsPerPage())
	page := views.Products(c.store.All(), q)
	response.Paginated(w, page.Items, page.Pagination)
}

// Show handles GET /api/products/{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	product, ok := c.store.Get(chi.URLParam(r, "id"))
	if !ok {
		response.NotFound(w)
		return
	}
	response.Success(w, product)
}

// Store handles POST /api/products.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var form forms.ProductCreate
	if !decode(w, r, &form) {
		return
	}

	product, errs := form.Parse()
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	created := c.store.Add(product)
	cache.Del(productStatsKey)
	logger.WithCtx(r.Context()).Info("product created", "id", created.ID, "name", created.Name)
	response.Created(w, created)
}

// Update handles PATCH /api/products/{id}.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := c.store.Get(id); !ok {
		response.NotFound(w)
		return
	}

	var form forms.ProductUpdate
	if !decode(w, r, &form) {
		return
	}

	patch, errs := form.Parse()
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	c.store.Update(id, patch)
	cache.Del(productStatsKey)

	updated, _ := c.store.Get(id)
	response.Success(w, updated)
}

// Destroy handles DELETE /api/products/{id}.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := c.store.Get(id); !ok {
		response.NotFound(w)
		return
	}

	c.store.Remove(id)
	cache.Del(productStatsKey)
	logger.WithCtx(r.Context()).Info("product deleted", "id", id)
	response.NoContent(w)
}

// Stats handles GET /api/products/stats. The computed card values are cached
// briefly; mutations invalidate the key.
func (c *ProductController) Stats(w http.ResponseWriter, r *http.Request) {
	var stats views.ProductStats
	if cache.Get(productStatsKey, &stats) {
		response.Success(w, stats)
		return
	}

	stats = views.ProductStatsFrom(c.store.All())
	cache.Set(productStatsKey, stats, 30*time.Second)
	response.Success(w, stats)
}
