package testing

import (
	"testing"

	"golang.org/x/mobile/event/key"

	"github.com/go-drift/handlers/pkg/dispatch"
	"github.com/go-drift/handlers/pkg/gestures"
	"github.com/go-drift/handlers/pkg/graphics"
	"github.com/go-drift/handlers/pkg/platform"
)

// GestureTester binds a FakeElement to a FakeView through a real
// dispatch.Dispatcher and simulates native gestures on it.
//
// Drop handlers run synchronously and pan ids come from a private
// generator starting at zero, so runs are deterministic.
type GestureTester struct {
	Element    *FakeElement
	View       *FakeView
	Handler    *FakeHandler
	Dispatcher *dispatch.Dispatcher
	PanIDs     *gestures.PanSessionIDs

	nextPointer uint32
}

// NewGestureTester binds el to a new FakeView. opts are applied after the
// tester's own options and may override them.
func NewGestureTester(el *FakeElement, opts ...dispatch.Option) (*GestureTester, error) {
	view := NewFakeView()
	handler := &FakeHandler{Element: el, Platform: view}
	el.SetHandler(handler)

	ids := &gestures.PanSessionIDs{}
	all := append([]dispatch.Option{
		dispatch.WithPanSessionIDs(ids),
		dispatch.WithAsync(func(fn func()) { fn() }),
	}, opts...)

	d, err := dispatch.New(handler, all...)
	if err != nil {
		return nil, err
	}
	return &GestureTester{
		Element:    el,
		View:       view,
		Handler:    handler,
		Dispatcher: d,
		PanIDs:     ids,
	}, nil
}

// NewGestureTesterWithT creates a tester that is disposed via t.Cleanup.
// This is the recommended constructor for tests.
func NewGestureTesterWithT(t testing.TB, el *FakeElement, opts ...dispatch.Option) *GestureTester {
	t.Helper()
	tester, err := NewGestureTester(el, opts...)
	if err != nil {
		t.Fatalf("NewGestureTester: %v", err)
	}
	t.Cleanup(tester.Dispatcher.Dispose)
	return tester
}

func (g *GestureTester) allocPointer() uint32 {
	g.nextPointer++
	return g.nextPointer
}

// Tap simulates a primary tap at pos in element coordinates.
func (g *GestureTester) Tap(pos graphics.Offset) *platform.TapEvent {
	return g.View.Tap(pos)
}

// DoubleTap simulates a double tap at pos.
func (g *GestureTester) DoubleTap(pos graphics.Offset) *platform.TapEvent {
	return g.View.DoubleTap(pos)
}

// RightTap simulates a secondary click at pos.
func (g *GestureTester) RightTap(pos graphics.Offset) *platform.TapEvent {
	return g.View.RightTap(pos)
}

// KeyDown simulates a key press while the element has focus.
func (g *GestureTester) KeyDown(code key.Code) *platform.KeyEvent {
	return g.View.KeyDown(code)
}

// Pan simulates one finger pressing at start, moving by each step, and
// lifting.
func (g *GestureTester) Pan(start graphics.Offset, steps ...graphics.Offset) {
	id := g.allocPointer()
	g.View.Press(id, start)
	g.View.ManipulationStarted(start)
	g.moveBy(start, steps)
	g.View.Release(id, start)
	g.View.ManipulationCompleted(start)
}

// Swipe simulates a single-finger fling by total.
func (g *GestureTester) Swipe(start, total graphics.Offset) {
	g.Pan(start, total)
}

// Pinch simulates two fingers around center reporting each scale step.
func (g *GestureTester) Pinch(center graphics.Offset, scales ...float64) {
	a, b := g.allocPointer(), g.allocPointer()
	g.View.Press(a, center)
	g.View.Press(b, center)
	g.View.ManipulationStarted(center)
	cumulative := 1.0
	for _, s := range scales {
		g.View.ManipulationDelta(center,
			platform.ManipulationDelta{Scale: s},
			platform.ManipulationDelta{Scale: cumulative})
		cumulative *= s
	}
	g.View.Release(a, center)
	g.View.Release(b, center)
	g.View.ManipulationCompleted(center)
}

func (g *GestureTester) moveBy(pos graphics.Offset, steps []graphics.Offset) {
	var cumulative graphics.Offset
	for _, step := range steps {
		g.View.ManipulationDelta(pos,
			platform.ManipulationDelta{Translation: step, Scale: 1},
			platform.ManipulationDelta{Translation: cumulative, Scale: 1})
		cumulative = cumulative.Add(step)
	}
}

// DragTo simulates dragging this element onto target and dropping it. It
// returns the drag start event so callers can inspect the exported data.
func (g *GestureTester) DragTo(target *GestureTester) *platform.DragStartingEvent {
	start := g.View.DragStarting()
	if start.Cancel {
		return start
	}
	target.View.DragEnter(start.Data)
	over := target.View.DragOver(start.Data)
	if over.AcceptedOperation == platform.OperationNone {
		target.View.DragLeave(start.Data)
		g.View.DropCompleted(platform.OperationNone)
		return start
	}
	target.View.Drop(start.Data)
	g.View.DropCompleted(over.AcceptedOperation)
	return start
}
