package models

// CustomerStatus marks a customer account as active or inactive.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
)

// Customer is a seeded account in the back office. Only Status is mutable at
// runtime; customers are never created or destroyed while the process runs.
//
// TotalOrders and TotalSpent are seed-time aggregates. They are NOT recomputed
// from the order collection — live figures come from the stats views instead.
type Customer struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Avatar        string         `json:"avatar"`
	Status        CustomerStatus `json:"status"`
	Location      string         `json:"location"`
	JoinedDate    string         `json:"joinedDate"`
	TotalOrders   int            `json:"totalOrders"`
	TotalSpent    float64        `json:"totalSpent"`
	LastOrderDate string         `json:"lastOrderDate"`
}
