// Package routes wires the HTTP surface onto the named-route router.
package routes

import (
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/backoffice/app/controllers"
	"github.com/shashiranjanraj/backoffice/app/stores"
	"github.com/shashiranjanraj/backoffice/pkg/event"
	"github.com/shashiranjanraj/backoffice/pkg/metrics"
	"github.com/shashiranjanraj/backoffice/pkg/middleware"
	"github.com/shashiranjanraj/backoffice/pkg/router"
	"github.com/shashiranjanraj/backoffice/pkg/sse"
	"github.com/shashiranjanraj/backoffice/pkg/ws"
)

// Deps carries everything the routes need. Stores are constructed once in
// internal/server and injected here; controllers never reach for globals.
type Deps struct {
	Products  *stores.ProductStore
	Customers *stores.CustomerStore
	Bus       *event.Bus
	Schema    graphql.Schema
	Hub       *ws.Hub
}

// RegisterAPI mounts the full admin API.
//
// Reads are open; mutations sit behind the JWT auth middleware. Route names
// follow the resource.action convention so `backoffice routes` lists them.
func RegisterAPI(r *router.Router, d Deps) {
	authController := controllers.NewAuthController()
	productController := controllers.NewProductController(d.Products)
	customerController := controllers.NewCustomerController(d.Customers)
	orderController := controllers.NewOrderController(d.Customers)
	graphqlController := controllers.NewGraphQLController(d.Schema)

	api := r.Group("/api")
	api.Post("/login", "auth.login", authController.Login)

	// Products. Stats before {id} so the literal segment wins.
	api.Get("/products/stats", "products.stats", productController.Stats)
	api.Get("/products", "products.index", productController.Index)
	api.Get("/products/{id}", "products.show", productController.Show)

	// Customers and their order history.
	api.Get("/customers/stats", "customers.stats", customerController.Stats)
	api.Get("/customers", "customers.index", customerController.Index)
	api.Get("/customers/{id}", "customers.show", customerController.Show)
	api.Get("/customers/{id}/orders", "customers.orders", customerController.Orders)

	// Orders are read-only.
	api.Get("/orders", "orders.index", orderController.Index)
	api.Get("/orders/{id}", "orders.show", orderController.Show)

	api.Get("/graphql", "graphql.query", graphqlController.Query)
	api.Post("/graphql", "graphql.execute", graphqlController.Query)

	protected := api.Group("", middleware.Auth)
	protected.Post("/products", "products.store", productController.Store)
	protected.Patch("/products/{id}", "products.update", productController.Update)
	protected.Delete("/products/{id}", "products.destroy", productController.Destroy)
	protected.Patch("/customers/{id}/status", "customers.status", customerController.UpdateStatus)

	r.Get("/ws/changes", "ws.changes", func(w http.ResponseWriter, req *http.Request) {
		ws.Upgrade(w, req, d.Hub)
	})
	r.Get("/sse/changes", "sse.changes", func(w http.ResponseWriter, req *http.Request) {
		sse.ServeChanges(w, req, d.Bus)
	})

	r.Get("/metrics", "metrics", metrics.Handler())
}
