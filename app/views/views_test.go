package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/app/views"
)

var testProducts = []models.Product{
	{ID: "p1", Name: "Alpha Phone", Brand: "Acme", Category: "Electronics", Price: 599, Stock: models.InStock},
	{ID: "p2", Name: "Beta Case", Brand: "Casely", Category: "Accessories", Price: 19.99, Stock: models.OutOfStock},
	{ID: "p3", Name: "Gamma Laptop", Brand: "Acme", Category: "Electronics", Price: 1299, Stock: models.InStock},
}

func productNames(ps []models.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestProductSearchIsCaseInsensitive(t *testing.T) {
	upper := views.Products(testProducts, views.ListQuery{Search: "ACME", PerPage: 10})
	lower := views.Products(testProducts, views.ListQuery{Search: "acme", PerPage: 10})

	assert.Equal(t, productNames(upper.Items), productNames(lower.Items))
	assert.Equal(t, []string{"Alpha Phone", "Gamma Laptop"}, productNames(upper.Items))
}

func TestProductSearchCoversNameBrandCategory(t *testing.T) {
	byCategory := views.Products(testProducts, views.ListQuery{Search: "accessor", PerPage: 10})
	assert.Equal(t, []string{"Beta Case"}, productNames(byCategory.Items))

	byName := views.Products(testProducts, views.ListQuery{Search: "alpha", PerPage: 10})
	assert.Equal(t, []string{"Alpha Phone"}, productNames(byName.Items))
}

func TestProductSearchAndStockFilterCombineWithAnd(t *testing.T) {
	// "alpha" only matches Alpha Phone; the stock filter then keeps it.
	got := views.Products(testProducts, views.ListQuery{Search: "alpha", Status: "In Stock", PerPage: 10})
	assert.Equal(t, []string{"Alpha Phone"}, productNames(got.Items))

	// "a" matches all three names; the stock filter drops Beta Case.
	got = views.Products(testProducts, views.ListQuery{Search: "a", Status: "In Stock", PerPage: 10})
	assert.Equal(t, []string{"Alpha Phone", "Gamma Laptop"}, productNames(got.Items))
}

func TestStatusSentinelPassesEverything(t *testing.T) {
	for _, sentinel := range []string{"", "all", "All"} {
		got := views.Products(testProducts, views.ListQuery{Status: sentinel, PerPage: 10})
		assert.Len(t, got.Items, 3, "sentinel %q", sentinel)
	}
}

func TestPaginationWindowNeverExceedsBounds(t *testing.T) {
	many := make([]models.Product, 23)
	for i := range many {
		many[i] = models.Product{ID: string(rune('a' + i)), Stock: models.InStock}
	}

	// 23 items, 7 per page → pages of 7, 7, 7, 2.
	for page, wantLen := range map[int]int{1: 7, 2: 7, 3: 7, 4: 2} {
		got := views.Products(many, views.ListQuery{Page: page, PerPage: 7})
		assert.Len(t, got.Items, wantLen, "page %d", page)
		assert.Equal(t, 4, got.Pagination.TotalPages)
	}

	// Exact multiple: last page is full.
	got := views.Products(many[:21], views.ListQuery{Page: 3, PerPage: 7})
	assert.Len(t, got.Items, 7)
	assert.Equal(t, 3, got.Pagination.TotalPages)

	// Past the end: empty window, metadata intact.
	got = views.Products(many, views.ListQuery{Page: 9, PerPage: 7})
	assert.Empty(t, got.Items)
	assert.Equal(t, 23, got.Pagination.TotalItems)
}

func TestEmptyResultHasZeroPages(t *testing.T) {
	got := views.Products(testProducts, views.ListQuery{Search: "no-such-product", PerPage: 7})
	assert.Empty(t, got.Items)
	assert.Equal(t, 0, got.Pagination.TotalPages)
}

func TestCustomerFilter(t *testing.T) {
	customers := []models.Customer{
		{ID: "c1", Name: "Maya Patel", Email: "maya@example.com", Location: "Mumbai, India", Status: models.CustomerActive},
		{ID: "c2", Name: "Jonas Weber", Email: "jonas@example.com", Location: "Berlin, Germany", Status: models.CustomerInactive},
		{ID: "c3", Name: "Ana Souza", Email: "ana@example.com", Location: "Lisbon, Portugal", Status: models.CustomerActive},
	}

	byLocation := views.Customers(customers, views.ListQuery{Search: "berlin", PerPage: 10})
	require.Len(t, byLocation.Items, 1)
	assert.Equal(t, "Jonas Weber", byLocation.Items[0].Name)

	active := views.Customers(customers, views.ListQuery{Status: "active", PerPage: 10})
	assert.Len(t, active.Items, 2)
}

func TestOrderSearchCoversItems(t *testing.T) {
	orders := []models.Order{
		{ID: "ORD-1001", CustomerName: "Maya Patel", Status: models.OrderDelivered,
			Items: []models.OrderItem{{ProductName: "Alpha Phone", Quantity: 1, Price: 599}}},
		{ID: "ORD-1002", CustomerName: "Jonas Weber", Status: models.OrderProcessing,
			Items: []models.OrderItem{{ProductName: "Beta Case", Quantity: 2, Price: 19.99}}},
	}

	byItem := views.Orders(orders, views.ListQuery{Search: "beta case", PerPage: 10})
	require.Len(t, byItem.Items, 1)
	assert.Equal(t, "ORD-1002", byItem.Items[0].ID)

	byID := views.Orders(orders, views.ListQuery{Search: "ord-1001", PerPage: 10})
	require.Len(t, byID.Items, 1)

	byStatus := views.Orders(orders, views.ListQuery{Status: "processing", PerPage: 10})
	require.Len(t, byStatus.Items, 1)
	assert.Equal(t, "ORD-1002", byStatus.Items[0].ID)
}

func TestProductStats(t *testing.T) {
	got := views.ProductStatsFrom(testProducts)

	assert.Equal(t, 3, got.TotalProducts)
	assert.Equal(t, 2, got.InStock)
	assert.Equal(t, 1, got.OutOfStock)
	assert.InDelta(t, 1917.99, got.InventoryValue, 0.001)
}

func TestCustomerStats(t *testing.T) {
	customers := []models.Customer{
		{ID: "c1", Status: models.CustomerActive},
		{ID: "c2", Status: models.CustomerInactive},
		{ID: "c3", Status: models.CustomerActive},
		{ID: "c4", Status: models.CustomerActive},
	}
	orders := []models.Order{
		{ID: "o1", Total: 100},
		{ID: "o2", Total: 50},
	}

	got := views.CustomerStatsFrom(customers, orders)

	assert.Equal(t, 4, got.TotalCustomers)
	assert.Equal(t, 3, got.ActiveCustomers)
	assert.InDelta(t, 75.0, got.ActivePercent, 0.001)
	assert.Equal(t, 2, got.TotalOrders)
	assert.InDelta(t, 150.0, got.Revenue, 0.001)
	assert.InDelta(t, 75.0, got.AvgOrderValue, 0.001)
}

func TestCustomerStatsEmptyCollections(t *testing.T) {
	got := views.CustomerStatsFrom(nil, nil)
	assert.Zero(t, got.ActivePercent)
	assert.Zero(t, got.AvgOrderValue)
}
