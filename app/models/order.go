package models

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderItem is one line of an order.
type OrderItem struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order is a seeded, read-only record. CustomerName is a denormalized copy
// taken at order time; it is not kept in sync with the customer record.
// CustomerID should reference an existing customer, but dangling references
// are tolerated and simply produce an empty join.
type Order struct {
	ID              string      `json:"id"`
	CustomerID      string      `json:"customerId"`
	CustomerName    string      `json:"customerName"`
	OrderDate       string      `json:"orderDate"`
	Status          OrderStatus `json:"status"`
	Total           float64     `json:"total"`
	Items           []OrderItem `json:"items"`
	ShippingAddress string      `json:"shippingAddress"`
}
