package testing

import (
	"github.com/go-drift/handlers/pkg/core"
	"github.com/go-drift/handlers/pkg/gestures"
	"github.com/go-drift/handlers/pkg/graphics"
	"github.com/go-drift/handlers/pkg/platform"
)

// FakeElement is a portable element for tests. It implements
// core.GestureController over Children, core.KeyboardTapTarget and
// gestures.TextReceiver.
type FakeElement struct {
	ElementKind core.ElementKind
	// Bounds is the element's rectangle in its parent's coordinates.
	Bounds graphics.Rect
	// Children are hit-tested by ChildElementsAt.
	Children []*FakeElement
	// KeyboardTap makes Enter and Space tap the element.
	KeyboardTap bool
	// Text receives dropped text.
	Text string

	recognizers *gestures.Collection
	handler     core.ViewHandler
}

// NewFakeElement returns a 100x100 element carrying recognizers.
func NewFakeElement(kind core.ElementKind, recognizers ...gestures.Recognizer) *FakeElement {
	return &FakeElement{
		ElementKind: kind,
		Bounds:      graphics.RectFromLTWH(0, 0, 100, 100),
		recognizers: gestures.NewCollection(recognizers...),
	}
}

func (e *FakeElement) GestureRecognizers() *gestures.Collection { return e.recognizers }
func (e *FakeElement) Kind() core.ElementKind                   { return e.ElementKind }
func (e *FakeElement) Size() graphics.Size                      { return e.Bounds.Size() }
func (e *FakeElement) Handler() core.ViewHandler                { return e.handler }
func (e *FakeElement) AcceptsKeyboardTap() bool                 { return e.KeyboardTap }
func (e *FakeElement) SetText(text string)                      { e.Text = text }

// SetHandler attaches the element to h.
func (e *FakeElement) SetHandler(h core.ViewHandler) {
	e.handler = h
}

// AddChild appends a child occupying bounds.
func (e *FakeElement) AddChild(child *FakeElement, bounds graphics.Rect) *FakeElement {
	child.Bounds = bounds
	e.Children = append(e.Children, child)
	return child
}

// ChildElementsAt returns the descendants containing p, innermost first.
func (e *FakeElement) ChildElementsAt(p graphics.Offset) []core.Element {
	var out []core.Element
	for _, child := range e.Children {
		if !child.Bounds.Contains(p) {
			continue
		}
		local := p.Sub(graphics.Offset{X: child.Bounds.Left, Y: child.Bounds.Top})
		out = append(out, child.ChildElementsAt(local)...)
		out = append(out, child)
	}
	return out
}

// GestureChildren returns every descendant.
func (e *FakeElement) GestureChildren() []core.Element {
	var out []core.Element
	for _, child := range e.Children {
		out = append(out, child)
		out = append(out, child.GestureChildren()...)
	}
	return out
}

// FakeHandler binds an element to fake native views.
type FakeHandler struct {
	Element   core.Element
	Platform  platform.NativeView
	Container platform.NativeView
}

func (h *FakeHandler) VirtualView() core.Element          { return h.Element }
func (h *FakeHandler) PlatformView() platform.NativeView  { return h.Platform }
func (h *FakeHandler) ContainerView() platform.NativeView { return h.Container }
