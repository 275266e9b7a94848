// Package dispatch routes native input to the gesture recognizers declared
// on a portable element.
//
// A [Dispatcher] is bound to one element and its native control and
// container. It derives the native subscriptions it needs from the kinds
// of recognizers present, re-deriving them whenever the recognizer
// collection changes or a binding is reassigned, and translates native
// taps, pointer and manipulation events, and drag and drop into recognizer
// callbacks.
//
// All methods must be called on the UI thread. Drop handlers are posted
// back to it and run after the native drop event returns.
package dispatch

import (
	"errors"
	"slices"

	"github.com/go-drift/handlers/pkg/config"
	"github.com/go-drift/handlers/pkg/core"
	"github.com/go-drift/handlers/pkg/gestures"
	"github.com/go-drift/handlers/pkg/platform"
)

var (
	// ErrNilHandler is returned by New when handler is nil.
	ErrNilHandler = errors.New("dispatch: nil view handler")

	// ErrNilVirtualView is returned by New when the handler has no element.
	ErrNilVirtualView = errors.New("dispatch: handler has no virtual view")

	// ErrNilPlatformView is returned by New when the handler has no native view.
	ErrNilPlatformView = errors.New("dispatch: handler has no platform view")
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithConfig replaces the built-in settings.
func WithConfig(cfg *config.Resolved) Option {
	return func(d *Dispatcher) {
		if cfg != nil {
			d.cfg = cfg
		}
	}
}

// WithPanSessionIDs sets the generator pan gestures are correlated with.
// Dispatchers share gestures.DefaultPanSessionIDs otherwise.
func WithPanSessionIDs(ids *gestures.PanSessionIDs) Option {
	return func(d *Dispatcher) {
		if ids != nil {
			d.panIDs = ids
		}
	}
}

// WithAsync sets how drop delivery is scheduled. The default posts it to
// the UI thread with platform.RunOnUI.
func WithAsync(run func(func())) Option {
	return func(d *Dispatcher) {
		if run != nil {
			d.async = run
		}
	}
}

// session tracks one manipulation, from first touch to release.
type session struct {
	panning      bool
	swiping      bool
	pinching     bool
	pinchStarted bool

	// pans holds the recognizers sent PanStarted in this session.
	pans []*gestures.PanRecognizer
}

// Dispatcher translates native input into gesture recognizer callbacks for
// one element.
type Dispatcher struct {
	handler core.ViewHandler
	cfg     *config.Resolved
	panIDs  *gestures.PanSessionIDs
	async   func(func())

	element   core.Element
	control   platform.NativeView
	container platform.NativeView

	observed  *gestures.Collection
	unobserve func()

	containerSubs []*platform.Subscription
	controlSubs   []*platform.Subscription

	// Native properties last set on the container.
	canDrag      bool
	allowDrop    bool
	manipulating bool
	tabStop      bool

	pointers []uint32
	session  session
	disposed bool
}

// New binds a dispatcher to handler's element. The container is the
// handler's container view, or its platform view when there is none.
func New(handler core.ViewHandler, opts ...Option) (*Dispatcher, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	element := handler.VirtualView()
	if element == nil {
		return nil, ErrNilVirtualView
	}
	control := handler.PlatformView()
	if control == nil {
		return nil, ErrNilPlatformView
	}

	d := &Dispatcher{
		handler: handler,
		cfg:     config.Default(),
		panIDs:  gestures.DefaultPanSessionIDs,
		async:   platform.RunOnUI,
	}
	for _, opt := range opts {
		opt(d)
	}

	container := handler.ContainerView()
	if container == nil {
		container = control
	}

	d.control = control
	d.container = container
	d.SetElement(element)
	return d, nil
}

// Element returns the bound element.
func (d *Dispatcher) Element() core.Element { return d.element }

// Control returns the native view tap bubbling is suppressed on.
func (d *Dispatcher) Control() platform.NativeView { return d.control }

// Container returns the native view input is subscribed on.
func (d *Dispatcher) Container() platform.NativeView { return d.container }

// SetElement rebinds the dispatcher to el and observes its recognizers.
func (d *Dispatcher) SetElement(el core.Element) {
	if d.disposed || el == d.element {
		return
	}
	d.detach()
	d.stopObserving()
	d.element = el
	if el != nil {
		if c := el.GestureRecognizers(); c != nil {
			d.observed = c
			d.unobserve = c.AddListener(func(gestures.Change) { d.updateRecognizers() })
		}
	}
	d.updateRecognizers()
}

// SetControl rebinds the native control.
func (d *Dispatcher) SetControl(v platform.NativeView) {
	if d.disposed || v == d.control {
		return
	}
	d.detach()
	d.control = v
	d.updateRecognizers()
}

// SetContainer rebinds the native container.
func (d *Dispatcher) SetContainer(v platform.NativeView) {
	if d.disposed || v == d.container {
		return
	}
	d.detach()
	d.container = v
	d.updateRecognizers()
}

// Refresh re-derives native subscriptions, e.g. after the element's
// children changed.
func (d *Dispatcher) Refresh() {
	d.updateRecognizers()
}

// Dispose removes every native subscription and the collection observer,
// then releases the bound views. It is safe to call more than once.
func (d *Dispatcher) Dispose() {
	if d.disposed {
		return
	}
	d.detach()
	d.stopObserving()
	d.disposed = true
	d.element = nil
	d.control = nil
	d.container = nil
	d.pointers = nil
	d.session = session{}
}

func (d *Dispatcher) stopObserving() {
	if d.unobserve != nil {
		d.unobserve()
	}
	d.unobserve = nil
	d.observed = nil
}

// detach cancels every subscription and resets the container properties the
// dispatcher turned on.
func (d *Dispatcher) detach() {
	d.cancelSubscriptions()
	if d.container != nil {
		if d.canDrag {
			d.container.SetCanDrag(false)
		}
		if d.allowDrop {
			d.container.SetAllowDrop(false)
		}
		if d.manipulating {
			d.container.SetManipulationMode(platform.ManipulationNone)
		}
		if d.tabStop {
			d.container.SetTabStop(false)
		}
	}
	d.canDrag, d.allowDrop, d.manipulating, d.tabStop = false, false, false, false
	d.pointers = d.pointers[:0]
	d.session = session{}
}

func (d *Dispatcher) cancelSubscriptions() {
	cancelAll(d.takeSubscriptions())
}

// takeSubscriptions hands over every held subscription without canceling.
func (d *Dispatcher) takeSubscriptions() []*platform.Subscription {
	subs := slices.Concat(d.containerSubs, d.controlSubs)
	d.containerSubs = nil
	d.controlSubs = nil
	return subs
}

func cancelAll(subs []*platform.Subscription) {
	for _, s := range subs {
		s.Cancel()
	}
}

// SubscriptionCount returns the number of native subscriptions held.
func (d *Dispatcher) SubscriptionCount() int {
	return len(d.containerSubs) + len(d.controlSubs)
}

func (d *Dispatcher) onContainer(kind platform.EventKind, h platform.EventHandler) {
	d.containerSubs = append(d.containerSubs, d.container.Subscribe(kind, h))
}

func (d *Dispatcher) onControl(kind platform.EventKind, h platform.EventHandler) {
	d.controlSubs = append(d.controlSubs, d.control.Subscribe(kind, h))
}

// handle adapts a typed event callback to a platform.EventHandler.
func handle[E platform.Event](fn func(E)) platform.EventHandler {
	return func(ev platform.Event) {
		if e, ok := ev.(E); ok {
			fn(e)
		}
	}
}
