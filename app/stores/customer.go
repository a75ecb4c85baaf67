package stores

import (
	"sync"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/pkg/collection"
	"github.com/shashiranjanraj/backoffice/pkg/event"
)

// CustomerStore owns the customer collection and its read-only order
// collection. Customers are seeded once; only their status changes at
// runtime. Orders never change for the lifetime of the process.
type CustomerStore struct {
	mu        sync.RWMutex
	customers []models.Customer
	orders    []models.Order
	bus       *event.Bus
}

// NewCustomerStore seeds the store. Both slices are copied; the caller's
// slices are not retained.
func NewCustomerStore(customers []models.Customer, orders []models.Order, bus *event.Bus) *CustomerStore {
	if bus == nil {
		bus = event.NewBus()
	}
	s := &CustomerStore{
		customers: make([]models.Customer, len(customers)),
		orders:    make([]models.Order, len(orders)),
		bus:       bus,
	}
	copy(s.customers, customers)
	copy(s.orders, orders)
	return s
}

// Customers returns a snapshot copy in insertion order.
func (s *CustomerStore) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Orders returns a snapshot copy of the full order collection, fixed at load.
func (s *CustomerStore) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Customer returns the customer with the given id.
func (s *CustomerStore) Customer(id string) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return collection.First(s.customers, func(c models.Customer) bool { return c.ID == id })
}

// OrdersFor returns every order placed by the given customer, in seed order.
// A dangling or unknown customer id yields an empty slice.
func (s *CustomerStore) OrdersFor(customerID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return collection.Filter(s.orders, func(o models.Order) bool { return o.CustomerID == customerID })
}

// OrderByID returns the order with the given id.
func (s *CustomerStore) OrderByID(orderID string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return collection.First(s.orders, func(o models.Order) bool { return o.ID == orderID })
}

// SetStatus replaces the status of the matching customer and touches nothing
// else. Unknown ids are a silent no-op.
func (s *CustomerStore) SetStatus(customerID string, status models.CustomerStatus) {
	s.mu.Lock()

	changed := false
	var after models.Customer
	for i := range s.customers {
		if s.customers[i].ID == customerID {
			s.customers[i].Status = status
			after = s.customers[i]
			changed = true
			break
		}
	}

	s.mu.Unlock()

	if changed {
		s.bus.Publish(CustomerStatusChanged, after)
	}
}
