package platform

import (
	"sync"
	"sync/atomic"
)

// Subscription represents an active event subscription.
type Subscription struct {
	cancel   func()
	canceled atomic.Bool
}

// NewSubscription returns a subscription that runs cancel once on Cancel.
func NewSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

// Cancel stops delivery. It is safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	if s.canceled.CompareAndSwap(false, true) && s.cancel != nil {
		s.cancel()
	}
}

// IsCanceled returns true if this subscription has been canceled.
func (s *Subscription) IsCanceled() bool {
	return s.canceled.Load()
}

type hubEntry struct {
	kind    EventKind
	handler EventHandler
	sub     *Subscription
}

// EventHub is a list of event handlers keyed by EventKind. NativeView
// implementations embed it to provide Subscribe.
type EventHub struct {
	mu      sync.Mutex
	entries []*hubEntry
}

// Subscribe registers handler for events of kind.
func (h *EventHub) Subscribe(kind EventKind, handler EventHandler) *Subscription {
	entry := &hubEntry{kind: kind, handler: handler}
	entry.sub = NewSubscription(func() { h.remove(entry) })
	h.mu.Lock()
	h.entries = append(h.entries, entry)
	h.mu.Unlock()
	return entry.sub
}

func (h *EventHub) remove(entry *hubEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, e := range h.entries {
		if e == entry {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return
		}
	}
}

// Emit delivers ev to every handler registered for kind, in subscription
// order. Handlers may subscribe or cancel during delivery.
func (h *EventHub) Emit(kind EventKind, ev Event) {
	h.mu.Lock()
	entries := make([]*hubEntry, 0, len(h.entries))
	for _, e := range h.entries {
		if e.kind == kind {
			entries = append(entries, e)
		}
	}
	h.mu.Unlock()

	for _, e := range entries {
		if !e.sub.IsCanceled() {
			e.handler(ev)
		}
	}
}

// Count returns the number of active subscriptions.
func (h *EventHub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// CountFor returns the number of active subscriptions for kind.
func (h *EventHub) CountFor(kind EventKind) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, e := range h.entries {
		if e.kind == kind {
			n++
		}
	}
	return n
}
