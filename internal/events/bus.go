package events

import "sync"

// Handler receives published events. Handlers run synchronously inside
// Publish and must not call back into the engine.
type Handler func(Event)

type subscription struct {
	id      uint64
	handler Handler
}

// Bus dispatches events to subscribers.
//
//   - Dispatch is synchronous, in the publisher's goroutine
//   - Handlers for a kind run in subscription order, before catch-all handlers
//   - Unsubscribing during dispatch takes effect for the next Publish
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	byKind map[Kind][]subscription
	all    []subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		byKind: make(map[Kind][]subscription),
	}
}

// Subscribe registers h for events of kind k.
// The returned function removes the subscription.
func (b *Bus) Subscribe(k Kind, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.byKind[k] = append(b.byKind[k], subscription{id: id, handler: h})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.byKind[k] = remove(b.byKind[k], id)
	}
}

// SubscribeAll registers h for every event kind.
func (b *Bus) SubscribeAll(h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.all = append(b.all, subscription{id: id, handler: h})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.all = remove(b.all, id)
	}
}

// Publish delivers ev to every matching handler.
func (b *Bus) Publish(ev Event) {
	if b == nil || ev == nil {
		return
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.byKind[ev.Kind()])+len(b.all))
	for _, s := range b.byKind[ev.Kind()] {
		handlers = append(handlers, s.handler)
	}
	for _, s := range b.all {
		handlers = append(handlers, s.handler)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ev)
	}
}

// HandlerCount returns the number of handlers that would receive kind k,
// catch-all handlers included.
func (b *Bus) HandlerCount(k Kind) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.byKind[k]) + len(b.all)
}

func remove(subs []subscription, id uint64) []subscription {
	out := subs[:0:0]
	for _, s := range subs {
		if s.id != id {
			out = append(out, s)
		}
	}
	return out
}
