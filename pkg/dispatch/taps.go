package dispatch

import (
	"github.com/go-drift/handlers/pkg/core"
	"github.com/go-drift/handlers/pkg/gestures"
	"github.com/go-drift/handlers/pkg/graphics"
	"github.com/go-drift/handlers/pkg/platform"
)

// tapFilter returns the predicate selecting the tap recognizers an
// activation of kind fires.
func tapFilter(kind platform.TapKind) func(*gestures.TapRecognizer) bool {
	return func(r *gestures.TapRecognizer) bool {
		buttons, taps := r.AcceptedButtons(), r.TapsRequired()
		switch kind {
		case platform.TapSecondary:
			// Only single secondary clicks are reported.
			return buttons.Has(gestures.ButtonSecondary) && taps == 1
		case platform.TapDouble:
			return buttons.Has(gestures.ButtonPrimary) && (taps == 1 || taps == 2)
		default:
			return buttons.Has(gestures.ButtonPrimary) && taps == 1
		}
	}
}

func (d *Dispatcher) onTap(ev *platform.TapEvent) {
	d.dispatchTap(&ev.RoutedEvent, ev.Kind, true)
}

func (d *Dispatcher) onKeyDown(ev *platform.KeyEvent) {
	if !d.cfg.IsActivationKey(ev.Code) {
		return
	}
	d.dispatchTap(&ev.RoutedEvent, platform.TapPrimary, false)
}

// dispatchTap fires the tap recognizers of the children under the input
// first. The element's own recognizers fire only when no child's did.
func (d *Dispatcher) dispatchTap(ev *platform.RoutedEvent, kind platform.TapKind, hitTest bool) {
	el := d.element
	if el == nil {
		return
	}
	valid := tapFilter(kind)

	var pos gestures.PositionFunc
	if hitTest {
		local, ok := ev.PositionRelativeTo(d.control)
		if !ok {
			return
		}
		pos = positionOf(ev)

		if gc, ok := el.(core.GestureController); ok {
			fired := false
			for _, child := range gc.ChildElementsAt(local) {
				for _, r := range gestures.Filter(child.GestureRecognizers(), valid) {
					r.SendTapped(el, pos)
					ev.Handled = true
					fired = true
				}
			}
			if fired {
				return
			}
		}
	}

	for _, r := range gestures.Filter(el.GestureRecognizers(), valid) {
		r.SendTapped(el, pos)
		ev.Handled = true
	}
}

// positionOf returns a resolver for the position of ev relative to a view.
// The event is copied so the resolver stays valid after dispatch.
func positionOf(ev *platform.RoutedEvent) gestures.PositionFunc {
	snapshot := *ev
	return func(relativeTo gestures.View) (graphics.Offset, bool) {
		if relativeTo == nil {
			return snapshot.PositionRelativeTo(nil)
		}
		nv, ok := core.NativeViewOf(relativeTo)
		if !ok {
			return graphics.Offset{}, false
		}
		return snapshot.PositionRelativeTo(nv)
	}
}
