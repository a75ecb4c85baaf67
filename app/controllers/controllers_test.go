package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/app/routes"
	"github.com/shashiranjanraj/backoffice/app/stores"
	"github.com/shashiranjanraj/backoffice/pkg/auth"
	"github.com/shashiranjanraj/backoffice/pkg/event"
	gql "github.com/shashiranjanraj/backoffice/pkg/graphql"
	"github.com/shashiranjanraj/backoffice/pkg/router"
	"github.com/shashiranjanraj/backoffice/pkg/ws"
)

func seedProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Alpha Phone", Category: "Phones", Brand: "Acme", Price: 100, Stock: models.InStock},
		{ID: "p2", Name: "Beta Tablet", Category: "Tablets", Brand: "Acme", Price: 200, Stock: models.OutOfStock},
		{ID: "p3", Name: "Gamma Laptop", Category: "Laptops", Brand: "Zenit", Price: 300, Stock: models.InStock},
	}
}

func seedCustomers() []models.Customer {
	return []models.Customer{
		{ID: "c1", Name: "Dana Reeve", Email: "dana@example.com", Status: models.CustomerActive},
		{ID: "c2", Name: "Imani Cole", Email: "imani@example.com", Status: models.CustomerInactive},
	}
}

func seedOrders() []models.Order {
	return []models.Order{
		{ID: "ORD-1", CustomerID: "c1", CustomerName: "Dana Reeve", Status: models.OrderDelivered, Total: 150,
			Items: []models.OrderItem{{ProductName: "Alpha Phone", Quantity: 1, Price: 100}}},
		{ID: "ORD-2", CustomerID: "c2", CustomerName: "Imani Cole", Status: models.OrderProcessing, Total: 300,
			Items: []models.OrderItem{{ProductName: "Gamma Laptop", Quantity: 1, Price: 300}}},
	}
}

func newAPI(t *testing.T) (*router.Router, *stores.ProductStore, *stores.CustomerStore) {
	t.Helper()

	bus := event.NewBus()
	products := stores.NewProductStore(seedProducts(), bus)
	customers := stores.NewCustomerStore(seedCustomers(), seedOrders(), bus)

	schema, err := gql.NewSchema(products, customers)
	require.NoError(t, err)

	r := router.New()
	routes.RegisterAPI(r, routes.Deps{
		Products:  products,
		Customers: customers,
		Bus:       bus,
		Schema:    schema,
		Hub:       ws.NewHub(),
	})
	return r, products, customers
}

func do(t *testing.T, r *router.Router, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	return rec
}

func dataOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Data
}

func operatorToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken("admin@backoffice.local")
	require.NoError(t, err)
	return token
}

func TestProductsIndexReturnsPaginatedEnvelope(t *testing.T) {
	r, _, _ := newAPI(t)

	rec := do(t, r, http.MethodGet, "/api/products?per_page=2", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := dataOf(t, rec)
	items := data["items"].([]interface{})
	assert.Len(t, items, 2)

	pagination := data["pagination"].(map[string]interface{})
	assert.EqualValues(t, 3, pagination["totalItems"])
	assert.EqualValues(t, 2, pagination["totalPages"])
}

func TestProductsIndexFiltersCombine(t *testing.T) {
	r, _, _ := newAPI(t)

	rec := do(t, r, http.MethodGet, "/api/products?search=acme&stock=In+Stock", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	items := dataOf(t, rec)["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Alpha Phone", items[0].(map[string]interface{})["name"])
}

func TestProductShowUnknownIDIs404(t *testing.T) {
	r, _, _ := newAPI(t)
	rec := do(t, r, http.MethodGet, "/api/products/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductCreateRequiresAuth(t *testing.T) {
	r, _, _ := newAPI(t)

	rec := do(t, r, http.MethodPost, "/api/products", map[string]string{"name": "New Thing"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProductCreateParsesFormStrings(t *testing.T) {
	r, products, _ := newAPI(t)

	payload := map[string]string{
		"name":          "Orbit Charger",
		"category":      "Accessories",
		"brand":         "Orbit",
		"price":         "25.50",
		"stockQuantity": "4",
	}
	rec := do(t, r, http.MethodPost, "/api/products", payload, operatorToken(t))
	require.Equal(t, http.StatusCreated, rec.Code)

	data := dataOf(t, rec)
	assert.Equal(t, 25.50, data["price"])
	assert.Equal(t, "In Stock", data["stock"])
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, 4, products.Len())
}

func TestProductCreateRejectsBadNumbersBeforeStore(t *testing.T) {
	r, products, _ := newAPI(t)

	payload := map[string]string{
		"name":          "Broken",
		"category":      "x",
		"brand":         "y",
		"price":         "not-a-price",
		"stockQuantity": "1",
	}
	rec := do(t, r, http.MethodPost, "/api/products", payload, operatorToken(t))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "price")
	assert.Equal(t, 3, products.Len(), "store must be untouched on validation failure")
}

func TestProductUpdateMergesSentFields(t *testing.T) {
	r, products, _ := newAPI(t)

	rec := do(t, r, http.MethodPatch, "/api/products/p1", map[string]string{"price": "120"}, operatorToken(t))
	require.Equal(t, http.StatusOK, rec.Code)

	updated, ok := products.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 120.0, updated.Price)
	assert.Equal(t, "Alpha Phone", updated.Name)
}

func TestProductUpdateUnknownIDIs404(t *testing.T) {
	r, _, _ := newAPI(t)
	rec := do(t, r, http.MethodPatch, "/api/products/nope", map[string]string{"price": "10"}, operatorToken(t))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductDestroy(t *testing.T) {
	r, products, _ := newAPI(t)

	rec := do(t, r, http.MethodDelete, "/api/products/p2", nil, operatorToken(t))
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, ok := products.Get("p2")
	assert.False(t, ok)

	rec = do(t, r, http.MethodDelete, "/api/products/p2", nil, operatorToken(t))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductStats(t *testing.T) {
	r, _, _ := newAPI(t)

	rec := do(t, r, http.MethodGet, "/api/products/stats", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := dataOf(t, rec)
	assert.EqualValues(t, 3, data["totalProducts"])
	assert.EqualValues(t, 2, data["inStock"])
	assert.EqualValues(t, 1, data["outOfStock"])
}

func TestCustomerStatusUpdateFlow(t *testing.T) {
	r, _, customers := newAPI(t)

	rec := do(t, r, http.MethodPatch, "/api/customers/c2/status", map[string]string{"status": "active"}, operatorToken(t))
	require.Equal(t, http.StatusOK, rec.Code)

	c, ok := customers.Customer("c2")
	require.True(t, ok)
	assert.Equal(t, models.CustomerActive, c.Status)

	rec = do(t, r, http.MethodPatch, "/api/customers/c2/status", map[string]string{"status": "banned"}, operatorToken(t))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCustomerOrders(t *testing.T) {
	r, _, _ := newAPI(t)

	rec := do(t, r, http.MethodGet, "/api/customers/c1/orders", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "ORD-1", body.Data[0]["id"])
}

func TestOrdersIndexSearchesItems(t *testing.T) {
	r, _, _ := newAPI(t)

	rec := do(t, r, http.MethodGet, "/api/orders?search=laptop", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	items := dataOf(t, rec)["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "ORD-2", items[0].(map[string]interface{})["id"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _, _ := newAPI(t)

	rec := do(t, r, http.MethodPost, "/api/login",
		map[string]string{"email": "admin@backoffice.local", "password": "wrong-password"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, r, http.MethodPost, "/api/login", map[string]string{"email": "not-an-email"}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGraphQLProductsQuery(t *testing.T) {
	r, _, _ := newAPI(t)

	query := `{ products(search: "acme", perPage: 1) { items { name brand } pagination { totalItems totalPages } } }`
	rec := do(t, r, http.MethodPost, "/api/graphql", map[string]string{"query": query}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := dataOf(t, rec)
	page := data["products"].(map[string]interface{})
	items := page["items"].([]interface{})
	require.Len(t, items, 1)

	pagination := page["pagination"].(map[string]interface{})
	assert.EqualValues(t, 2, pagination["totalItems"])
	assert.EqualValues(t, 2, pagination["totalPages"])
}

func TestGraphQLStats(t *testing.T) {
	r, _, _ := newAPI(t)

	query := `{ customerStats { totalCustomers activeCustomers revenue } }`
	rec := do(t, r, http.MethodPost, "/api/graphql", map[string]string{"query": query}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	stats := dataOf(t, rec)["customerStats"].(map[string]interface{})
	assert.EqualValues(t, 2, stats["totalCustomers"])
	assert.EqualValues(t, 1, stats["activeCustomers"])
	assert.EqualValues(t, 450, stats["revenue"])
}
