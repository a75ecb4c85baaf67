package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestNamedRouteLookup(t *testing.T) {
	r := New()
	r.Get("/api/products/{id}", "products.show", ok)

	path, found := r.Path("products.show")
	if !found || path != "/api/products/{id}" {
		t.Fatalf("Path: got %q, %v", path, found)
	}

	url, err := r.URL("products.show", map[string]string{"id": "p1"})
	if err != nil || url != "/api/products/p1" {
		t.Fatalf("URL: got %q, %v", url, err)
	}

	if _, err := r.URL("products.show", nil); err == nil {
		t.Fatal("URL with missing params should error")
	}
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var sawMiddleware bool
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawMiddleware = true
			next.ServeHTTP(w, r)
		})
	}

	r := New()
	api := r.Group("/api", mw)
	api.Get("/orders", "orders.index", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !sawMiddleware {
		t.Fatal("group middleware did not run")
	}
}

func TestRoutesSortedByPathThenMethod(t *testing.T) {
	r := New()
	r.Post("/b", "b.post", ok)
	r.Get("/b", "b.get", ok)
	r.Get("/a", "a.get", ok)

	infos := r.Routes()
	if len(infos) != 3 {
		t.Fatalf("got %d routes", len(infos))
	}
	if infos[0].Path != "/a" || infos[1].Method != http.MethodGet || infos[2].Method != http.MethodPost {
		t.Fatalf("unexpected order: %+v", infos)
	}
}
