// Package fixtures holds the static seed data of the back office and a
// registry of named loaders that decode it.
//
// The three JSON documents are embedded in the binary and loaded exactly
// once, at startup, into a Set. The Set is the initial contents of the
// stores; nothing is ever written back. Decoding is permissive — fields the
// documents omit stay zero, unknown fields are ignored — matching how the
// dashboard consumed them.
//
// Each fixture file registers itself:
//
//	func init() {
//	    Register("products", loadProducts)
//	}
package fixtures

import (
	"fmt"
	"sync"

	"github.com/shashiranjanraj/backoffice/app/models"
)

// Set is the decoded seed data for all three collections.
type Set struct {
	Products  []models.Product
	Customers []models.Customer
	Orders    []models.Order
}

// LoaderFunc decodes one fixture document into the set.
type LoaderFunc func(set *Set) error

type loaderEntry struct {
	name string
	fn   LoaderFunc
}

var (
	mu      sync.Mutex
	entries []loaderEntry
)

// Register adds a loader to the registry. Call this from init() in the
// fixture files.
func Register(name string, fn LoaderFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, loaderEntry{name: name, fn: fn})
}

// Load runs every registered loader in registration order and returns the
// assembled set. It stops on the first error.
func Load() (*Set, error) {
	mu.Lock()
	current := make([]loaderEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	set := &Set{}
	for _, e := range current {
		if err := e.fn(set); err != nil {
			return nil, fmt.Errorf("fixture %q: %w", e.name, err)
		}
	}
	return set, nil
}
