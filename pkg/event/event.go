// Package event provides a small publish/subscribe bus.
//
// Unlike a global dispatcher, a Bus is an explicit object: the application
// constructs one at startup and hands it to the stores (publishers) and to
// the change-feed/metrics listeners (subscribers). Subscribe returns an
// unsubscribe func so listeners can detach on teardown.
//
//	bus := event.NewBus()
//	off := bus.Subscribe("product.created", func(e event.Event) { ... })
//	defer off()
//	bus.Publish("product.created", product)
package event

import "sync"

// Event is a named payload delivered to subscribers.
type Event struct {
	Name    string
	Payload interface{}
}

// Handler receives a published event.
type Handler func(e Event)

// Any subscribes to every event regardless of name.
const Any = "*"

type subscriber struct {
	id int
	fn Handler
}

// Bus dispatches events synchronously to subscribers, in subscription order.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string][]subscriber
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string][]subscriber)}
}

// Subscribe registers a handler for the given event name (or Any for all
// events) and returns a func that removes the registration.
func (b *Bus) Subscribe(name string, fn Handler) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[name] = append(b.subs[name], subscriber{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.subs[name]
		for i, s := range subs {
			if s.id == id {
				b.subs[name] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers the event synchronously to all subscribers of its name,
// then to Any-subscribers. Handlers run on the caller's goroutine, so a store
// mutation is fully observed before the mutating call returns.
func (b *Bus) Publish(name string, payload interface{}) {
	e := Event{Name: name, Payload: payload}

	b.mu.RLock()
	fns := make([]Handler, 0, len(b.subs[name])+len(b.subs[Any]))
	for _, s := range b.subs[name] {
		fns = append(fns, s.fn)
	}
	for _, s := range b.subs[Any] {
		fns = append(fns, s.fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(e)
	}
}
