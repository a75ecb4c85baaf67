// Package stores holds the in-memory state of the back office.
//
// Each store owns its collection exclusively: nothing else mutates it, and
// readers only ever see snapshot copies. Stores are constructed once at
// startup (seeded from fixtures) and injected into whoever needs them —
// there is no package-level store state.
//
// Every mutation publishes an event on the injected bus before returning, so
// subscribers (the WebSocket change feed, metrics) observe a change the
// moment the mutating call completes.
package stores

import (
	"strconv"
	"sync"
	"time"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/pkg/event"
)

// Event names published by the stores.
const (
	ProductCreated        = "product.created"
	ProductUpdated        = "product.updated"
	ProductDeleted        = "product.deleted"
	CustomerStatusChanged = "customer.status_changed"
)

// createdAtLayout matches the date format the dashboard renders in the
// products table, e.g. "Aug 29, 2026".
const createdAtLayout = "Jan 02, 2006"

// ProductStore is the single owner of the product collection.
// The collection is newest-first: Add prepends.
type ProductStore struct {
	mu       sync.RWMutex
	products []models.Product
	lastID   int64
	bus      *event.Bus
	now      func() time.Time
}

// NewProductStore seeds a store with the given products (kept in seed order)
// and wires it to bus for change events.
func NewProductStore(seed []models.Product, bus *event.Bus) *ProductStore {
	if bus == nil {
		bus = event.NewBus()
	}
	s := &ProductStore{
		products: make([]models.Product, len(seed)),
		bus:      bus,
		now:      time.Now,
	}
	copy(s.products, seed)
	return s
}

// Add assigns a fresh id and today's date to p, prepends it to the
// collection, and returns the stored product. Whatever the caller put in
// ID/CreatedAt is overwritten. Add never fails; validation is the form
// layer's job.
func (s *ProductStore) Add(p models.Product) models.Product {
	s.mu.Lock()

	p.ID = s.nextID()
	p.CreatedAt = s.now().Format(createdAtLayout)
	s.products = append([]models.Product{p}, s.products...)

	s.mu.Unlock()

	s.bus.Publish(ProductCreated, p)
	return p
}

// nextID produces an in-session-unique id from the wall clock. Callers must
// hold s.mu. Nanosecond timestamps can collide under rapid successive adds,
// so the id is bumped past the previous one when needed.
func (s *ProductStore) nextID() string {
	id := s.now().UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// Remove deletes the product with the given id. Removing an unknown id is a
// silent no-op, not an error.
func (s *ProductStore) Remove(id string) {
	s.mu.Lock()

	removed := false
	var gone models.Product
	for i, p := range s.products {
		if p.ID == id {
			gone = p
			s.products = append(s.products[:i:i], s.products[i+1:]...)
			removed = true
			break
		}
	}

	s.mu.Unlock()

	if removed {
		s.bus.Publish(ProductDeleted, gone)
	}
}

// Update shallow-merges the set fields of patch into the matching product.
// Unknown ids are a silent no-op. Stock is never re-derived from
// StockQuantity here; the two fields may be set independently.
func (s *ProductStore) Update(id string, patch models.ProductPatch) {
	s.mu.Lock()

	updated := false
	var after models.Product
	for i := range s.products {
		if s.products[i].ID == id {
			patch.ApplyTo(&s.products[i])
			after = s.products[i]
			updated = true
			break
		}
	}

	s.mu.Unlock()

	if updated {
		s.bus.Publish(ProductUpdated, after)
	}
}

// Get returns the product with the given id.
func (s *ProductStore) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// All returns a snapshot copy of the collection in its current order
// (newest additions first, then seed order).
func (s *ProductStore) All() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len reports the collection size.
func (s *ProductStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
