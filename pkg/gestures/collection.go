package gestures

// ChangeAction describes how a Collection changed.
type ChangeAction int

const (
	ChangeAdd ChangeAction = iota
	ChangeRemove
	ChangeReset
)

// Change is delivered to Collection listeners after every mutation.
type Change struct {
	Action ChangeAction
	// Item is the added or removed recognizer; nil for ChangeReset.
	Item Recognizer
	// Index is the position of Item; -1 for ChangeReset.
	Index int
}

// Collection is an ordered, observable list of recognizers.
//
// Collection is NOT thread-safe. Like the views that own it, it must only be
// used from the UI thread.
type Collection struct {
	items     []Recognizer
	listeners map[int]func(Change)
	order     []int
	nextID    int
}

// NewCollection returns a collection holding items in order.
func NewCollection(items ...Recognizer) *Collection {
	c := &Collection{}
	for _, r := range items {
		if r != nil {
			c.items = append(c.items, r)
		}
	}
	return c
}

// Len returns the number of recognizers.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns a snapshot of the recognizers in order.
func (c *Collection) Items() []Recognizer {
	if c == nil {
		return nil
	}
	out := make([]Recognizer, len(c.items))
	copy(out, c.items)
	return out
}

// Add appends r. Nil recognizers are ignored.
func (c *Collection) Add(r Recognizer) {
	if r == nil {
		return
	}
	c.items = append(c.items, r)
	c.notify(Change{Action: ChangeAdd, Item: r, Index: len(c.items) - 1})
}

// Insert places r at index, clamped to the valid range.
func (c *Collection) Insert(index int, r Recognizer) {
	if r == nil {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(c.items) {
		index = len(c.items)
	}
	c.items = append(c.items, nil)
	copy(c.items[index+1:], c.items[index:])
	c.items[index] = r
	c.notify(Change{Action: ChangeAdd, Item: r, Index: index})
}

// Remove deletes the first occurrence of r and reports whether it was present.
func (c *Collection) Remove(r Recognizer) bool {
	for i, item := range c.items {
		if item == r {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.notify(Change{Action: ChangeRemove, Item: r, Index: i})
			return true
		}
	}
	return false
}

// Clear removes every recognizer.
func (c *Collection) Clear() {
	c.items = nil
	c.notify(Change{Action: ChangeReset, Index: -1})
}

// AddListener registers fn to run after every mutation and returns a
// function that removes it. The returned function is safe to call twice.
func (c *Collection) AddListener(fn func(Change)) func() {
	if c.listeners == nil {
		c.listeners = make(map[int]func(Change))
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.order = append(c.order, id)
	return func() {
		if _, ok := c.listeners[id]; !ok {
			return
		}
		delete(c.listeners, id)
		for i, v := range c.order {
			if v == id {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (c *Collection) ListenerCount() int {
	if c == nil {
		return 0
	}
	return len(c.listeners)
}

func (c *Collection) notify(ch Change) {
	ids := make([]int, len(c.order))
	copy(ids, c.order)
	for _, id := range ids {
		if fn, ok := c.listeners[id]; ok {
			fn(ch)
		}
	}
}

// Of returns the recognizers of c that have concrete type T, in order.
func Of[T Recognizer](c *Collection) []T {
	return Filter[T](c, nil)
}

// Filter returns the recognizers of c that have concrete type T and satisfy
// keep, in order. A nil keep accepts everything.
func Filter[T Recognizer](c *Collection, keep func(T) bool) []T {
	if c == nil {
		return nil
	}
	var out []T
	for _, item := range c.items {
		r, ok := item.(T)
		if !ok {
			continue
		}
		if keep == nil || keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Has reports whether c holds at least one recognizer of kind k.
func (c *Collection) Has(k Kind) bool {
	if c == nil {
		return false
	}
	for _, item := range c.items {
		if item.Kind() == k {
			return true
		}
	}
	return false
}
