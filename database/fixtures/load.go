package fixtures

import (
	_ "embed"
	"encoding/json"
)

//go:embed products.json
var productsJSON []byte

//go:embed customers.json
var customersJSON []byte

//go:embed orders.json
var ordersJSON []byte

func init() {
	Register("products", loadProducts)
	Register("customers", loadCustomers)
	Register("orders", loadOrders)
}

func loadProducts(set *Set) error {
	return json.Unmarshal(productsJSON, &set.Products)
}

func loadCustomers(set *Set) error {
	return json.Unmarshal(customersJSON, &set.Customers)
}

func loadOrders(set *Set) error {
	return json.Unmarshal(ordersJSON, &set.Orders)
}
