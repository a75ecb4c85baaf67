// Package server assembles the back office: configuration, fixture data,
// stores, the event bus, and the HTTP stack.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/backoffice/app/routes"
	"github.com/shashiranjanraj/backoffice/app/stores"
	"github.com/shashiranjanraj/backoffice/config"
	"github.com/shashiranjanraj/backoffice/database/fixtures"
	"github.com/shashiranjanraj/backoffice/pkg/cache"
	"github.com/shashiranjanraj/backoffice/pkg/event"
	gql "github.com/shashiranjanraj/backoffice/pkg/graphql"
	"github.com/shashiranjanraj/backoffice/pkg/logger"
	"github.com/shashiranjanraj/backoffice/pkg/metrics"
	"github.com/shashiranjanraj/backoffice/pkg/middleware"
	"github.com/shashiranjanraj/backoffice/pkg/reqid"
	"github.com/shashiranjanraj/backoffice/pkg/router"
	"github.com/shashiranjanraj/backoffice/pkg/ws"
)

// App holds the long-lived pieces of a running instance. Tests construct it
// with Build and drive the handler directly; Start adds the listen/serve
// lifecycle on top.
type App struct {
	Products  *stores.ProductStore
	Customers *stores.CustomerStore
	Bus       *event.Bus
	Hub       *ws.Hub
	Router    *router.Router
}

// Build loads fixtures and wires stores, bus, metrics, the change feed, and
// the route table. It does not bind a port.
func Build() (*App, error) {
	set, err := fixtures.Load()
	if err != nil {
		return nil, err
	}

	bus := event.NewBus()
	products := stores.NewProductStore(set.Products, bus)
	customers := stores.NewCustomerStore(set.Customers, set.Orders, bus)

	observeStores(bus, products, customers)

	schema, err := gql.NewSchema(products, customers)
	if err != nil {
		return nil, err
	}

	hub := ws.NewHub()
	go hub.Run()
	ws.Feed(hub, bus)

	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery           — catches panics before they kill the goroutine
	//  3. Request ID         — inject unique ID before anything logs
	//  4. Logger             — logs request_id from context
	//  5. CORS               — set CORS headers
	//  6. Rate limiter       — reject abusers early
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	routes.RegisterAPI(r, routes.Deps{
		Products:  products,
		Customers: customers,
		Bus:       bus,
		Schema:    schema,
		Hub:       hub,
	})

	return &App{
		Products:  products,
		Customers: customers,
		Bus:       bus,
		Hub:       hub,
		Router:    r,
	}, nil
}

// observeStores keeps the entity gauges current and counts every mutation.
func observeStores(bus *event.Bus, products *stores.ProductStore, customers *stores.CustomerStore) {
	metrics.StoreEntities.WithLabelValues("products").Set(float64(products.Len()))
	metrics.StoreEntities.WithLabelValues("customers").Set(float64(len(customers.Customers())))
	metrics.StoreEntities.WithLabelValues("orders").Set(float64(len(customers.Orders())))

	bus.Subscribe(event.Any, func(e event.Event) {
		metrics.StoreMutations.WithLabelValues(e.Name).Inc()
		metrics.StoreEntities.WithLabelValues("products").Set(float64(products.Len()))
	})
}

// Start runs the full server until SIGINT/SIGTERM, then drains in-flight
// requests before returning.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, stats responses will not be cached", "error", err)
	}

	app, err := Build()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           app.Router.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("back office listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
