package engine

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// SubscriptionID identifies a handler registered with Subscribe.
type SubscriptionID uint32

// Handler receives engine events.
type Handler func(Event)

// Bus dispatches events to handlers in subscription order.
type Bus struct {
	nextID   SubscriptionID
	order    []SubscriptionID
	handlers *intmap.Map[SubscriptionID, Handler]
}

func newBus() *Bus {
	return &Bus{
		handlers: intmap.New[SubscriptionID, Handler](8),
	}
}

// Subscribe registers h and returns its id.
func (b *Bus) Subscribe(h Handler) SubscriptionID {
	b.nextID++
	id := b.nextID
	b.handlers.Put(id, h)
	b.order = append(b.order, id)
	return id
}

// Unsubscribe removes a handler. It reports whether id was registered. A
// handler removed while an event is being published does not see the rest
// of that dispatch.
func (b *Bus) Unsubscribe(id SubscriptionID) bool {
	if _, ok := b.handlers.Get(id); !ok {
		return false
	}
	b.handlers.Del(id)
	// Clone so a Publish ranging over the old slice is not disturbed.
	b.order = slices.DeleteFunc(slices.Clone(b.order), func(s SubscriptionID) bool {
		return s == id
	})
	return true
}

// Publish delivers ev to every handler.
func (b *Bus) Publish(ev Event) {
	for _, id := range b.order {
		if h, ok := b.handlers.Get(id); ok {
			h(ev)
		}
	}
}

// Len returns the number of registered handlers.
func (b *Bus) Len() int {
	return len(b.order)
}
