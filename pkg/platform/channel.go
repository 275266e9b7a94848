package platform

import (
	"errors"
	"sync"
)

// MethodHandler handles incoming method calls on a channel.
type MethodHandler func(method string, args any) (any, error)

// MethodChannel provides bidirectional method-call communication with native code.
type MethodChannel struct {
	name    string
	handler MethodHandler
}

// NewMethodChannel creates a new method channel with the given name.
func NewMethodChannel(name string) *MethodChannel {
	ch := &MethodChannel{name: name}
	registry.registerMethod(name, ch)
	return ch
}

// Name returns the channel name.
func (c *MethodChannel) Name() string {
	return c.name
}

// SetHandler sets the handler for incoming method calls from native code.
func (c *MethodChannel) SetHandler(handler MethodHandler) {
	c.handler = handler
}

// Invoke calls a method on the native side and returns the result.
// This blocks until the native side responds or an error occurs.
func (c *MethodChannel) Invoke(method string, args any) (any, error) {
	return invokeNative(c.name, method, args)
}

func (c *MethodChannel) handleCall(method string, args any) (any, error) {
	if c.handler == nil {
		return nil, ErrMethodNotFound
	}
	return c.handler(method, args)
}

// StreamHandler receives events from an EventChannel.
type StreamHandler struct {
	OnEvent func(data any)
	OnError func(err error)
	OnDone  func()
}

type streamListener struct {
	handler StreamHandler
	sub     *Subscription
}

// EventChannel provides stream-based event communication from native to Go.
type EventChannel struct {
	name      string
	listeners []*streamListener
	started   bool
	mu        sync.Mutex
}

// NewEventChannel creates a new event channel with the given name.
func NewEventChannel(name string) *EventChannel {
	ch := &EventChannel{name: name}
	registry.registerEvent(name, ch)
	return ch
}

// Name returns the channel name.
func (c *EventChannel) Name() string {
	return c.name
}

// Listen subscribes to events on this channel. The native stream is started
// with the first listener; a startup error is passed to handler.OnError but
// does not prevent the subscription from being created.
func (c *EventChannel) Listen(handler StreamHandler) *Subscription {
	l := &streamListener{handler: handler}
	l.sub = NewSubscription(func() { c.remove(l) })

	c.mu.Lock()
	c.listeners = append(c.listeners, l)
	start := !c.started
	c.started = true
	c.mu.Unlock()

	if start {
		if err := startEventStream(c.name); err != nil {
			c.mu.Lock()
			c.started = false
			c.mu.Unlock()
			if handler.OnError != nil {
				handler.OnError(err)
			}
		}
	}
	return l.sub
}

// ListenerCount returns the number of active listeners.
func (c *EventChannel) ListenerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listeners)
}

func (c *EventChannel) remove(l *streamListener) {
	c.mu.Lock()
	for i, s := range c.listeners {
		if s == l {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			break
		}
	}
	stop := len(c.listeners) == 0 && c.started
	if stop {
		c.started = false
	}
	c.mu.Unlock()

	// Errors are reported by stopEventStream.
	if stop {
		stopEventStream(c.name)
	}
}

// isClosed reports whether err means the stream was already shut down.
func isClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}

func (c *EventChannel) snapshot() []*streamListener {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*streamListener, len(c.listeners))
	copy(out, c.listeners)
	return out
}

func (c *EventChannel) dispatchEvent(data any) {
	for _, l := range c.snapshot() {
		if !l.sub.IsCanceled() && l.handler.OnEvent != nil {
			l.handler.OnEvent(data)
		}
	}
}

func (c *EventChannel) dispatchError(err error) {
	for _, l := range c.snapshot() {
		if !l.sub.IsCanceled() && l.handler.OnError != nil {
			l.handler.OnError(err)
		}
	}
}

func (c *EventChannel) dispatchDone() {
	c.mu.Lock()
	listeners := c.listeners
	c.listeners = nil
	c.started = false
	c.mu.Unlock()

	for _, l := range listeners {
		l.sub.canceled.Store(true)
		if l.handler.OnDone != nil {
			l.handler.OnDone()
		}
	}
}
