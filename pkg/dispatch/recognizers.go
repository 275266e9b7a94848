package dispatch

import (
	"github.com/go-drift/handlers/pkg/core"
	"github.com/go-drift/handlers/pkg/errors"
	"github.com/go-drift/handlers/pkg/gestures"
	"github.com/go-drift/handlers/pkg/platform"
)

const manipulationModes = platform.ManipulationTranslateX |
	platform.ManipulationTranslateY |
	platform.ManipulationScale

// updateRecognizers replaces the native subscriptions with the set the
// current recognizers need. Only the presence of each recognizer kind
// matters.
func (d *Dispatcher) updateRecognizers() {
	if d.disposed || d.container == nil || d.element == nil {
		return
	}
	recognizers := d.element.GestureRecognizers()
	if recognizers == nil {
		return
	}

	// The old set is released only after the new one is in place, so a
	// view's native stream does not stop and restart on every change.
	stale := d.takeSubscriptions()
	defer cancelAll(stale)

	if rs, ok := d.container.(platform.RefreshSource); ok {
		d.containerSubs = append(d.containerSubs, rs.OnRefresh(d.Refresh))
	}
	d.updateDragAndDrop(recognizers)
	d.updateTaps(recognizers)

	d.onContainer(platform.EventPointerEntered, handle(d.onPointerEntered))
	d.onContainer(platform.EventPointerExited, handle(d.onPointerExited))
	d.onContainer(platform.EventPointerMoved, handle(d.onPointerMoved))

	hasSwipe := recognizers.Has(gestures.KindSwipe)
	hasPinch := recognizers.Has(gestures.KindPinch)
	hasPan := recognizers.Has(gestures.KindPan)
	if !hasSwipe && !hasPinch && !hasPan {
		d.setManipulating(false)
		return
	}

	if d.unsupportedSurface() {
		for _, k := range []struct {
			present bool
			kind    gestures.Kind
		}{
			{hasPinch, gestures.KindPinch},
			{hasPan, gestures.KindPan},
			{hasSwipe, gestures.KindSwipe},
		} {
			if k.present {
				errors.Warnf("dispatch.updateRecognizers", errors.KindGesture,
					"%s is not supported on a %s", k.kind, d.element.Kind())
			}
		}
		d.setManipulating(false)
		return
	}

	d.setManipulating(true)
	d.onContainer(platform.EventManipulationDelta, handle(d.onManipulationDelta))
	d.onContainer(platform.EventManipulationStarted, handle(d.onManipulationStarted))
	d.onContainer(platform.EventManipulationCompleted, handle(d.onManipulationCompleted))
	d.onContainer(platform.EventPointerPressed, handle(d.onPointerPressed))
	d.onContainer(platform.EventPointerExited, handle(d.onPointerLost))
	d.onContainer(platform.EventPointerReleased, handle(d.onPointerReleased))
	d.onContainer(platform.EventPointerCanceled, handle(d.onPointerCanceled))
}

// unsupportedSurface reports whether the element scrolls its content and
// so consumes manipulations itself.
func (d *Dispatcher) unsupportedSurface() bool {
	if d.cfg.UnsupportedSurfaces[d.element.Kind()] {
		return true
	}
	sc, ok := d.container.(platform.ScrollContainer)
	return ok && sc.IsScrollContainer()
}

func (d *Dispatcher) setManipulating(on bool) {
	if on == d.manipulating {
		return
	}
	d.manipulating = on
	if on {
		d.container.SetManipulationMode(manipulationModes)
	} else {
		d.container.SetManipulationMode(platform.ManipulationNone)
	}
}

func (d *Dispatcher) updateDragAndDrop(recognizers *gestures.Collection) {
	canDrag := false
	if drags := gestures.Of[*gestures.DragRecognizer](recognizers); len(drags) > 0 {
		canDrag = drags[0].CanDrag
	}
	allowDrop := false
	if drops := gestures.Of[*gestures.DropRecognizer](recognizers); len(drops) > 0 {
		allowDrop = drops[0].AllowDrop
	}

	if canDrag != d.canDrag {
		d.canDrag = canDrag
		d.container.SetCanDrag(canDrag)
	}
	if allowDrop != d.allowDrop {
		d.allowDrop = allowDrop
		d.container.SetAllowDrop(allowDrop)
	}

	if canDrag {
		d.onContainer(platform.EventDragStarting, handle(d.onDragStarting))
		d.onContainer(platform.EventDropCompleted, handle(d.onDropCompleted))
	}
	if allowDrop {
		d.onContainer(platform.EventDragEnter, handle(d.onDragOver))
		d.onContainer(platform.EventDragOver, handle(d.onDragOver))
		d.onContainer(platform.EventDrop, handle(d.onDrop))
		d.onContainer(platform.EventDragLeave, handle(d.onDragLeave))
	}
}

func (d *Dispatcher) updateTaps(recognizers *gestures.Collection) {
	var children []core.Element
	if gc, ok := d.element.(core.GestureController); ok {
		children = gc.GestureChildren()
	}
	anyTap := func(keep func(*gestures.TapRecognizer) bool) bool {
		if len(gestures.Filter(recognizers, keep)) > 0 {
			return true
		}
		for _, child := range children {
			if len(gestures.Filter(child.GestureRecognizers(), keep)) > 0 {
				return true
			}
		}
		return false
	}
	single := func(r *gestures.TapRecognizer) bool { return r.TapsRequired() == 1 }
	singleOrDouble := func(r *gestures.TapRecognizer) bool {
		n := r.TapsRequired()
		return n == 1 || n == 2
	}

	suppress := d.control != nil && d.cfg.SuppressBubbling[d.element.Kind()]

	if anyTap(single) {
		d.onContainer(platform.EventTapped, handle(d.onTap))
		d.onContainer(platform.EventRightTapped, handle(d.onTap))
	} else if suppress {
		d.onControl(platform.EventTapped, markHandled)
	}

	if anyTap(singleOrDouble) {
		d.onContainer(platform.EventDoubleTapped, handle(d.onTap))
	} else if suppress {
		d.onControl(platform.EventDoubleTapped, markHandled)
	}

	keyboard := false
	if kt, ok := d.element.(core.KeyboardTapTarget); ok && kt.AcceptsKeyboardTap() {
		keyboard = recognizers.Has(gestures.KindTap)
	}
	if keyboard {
		if !d.tabStop {
			d.tabStop = true
			d.container.SetTabStop(true)
			d.container.SetHitTestVisible(true)
		}
		d.onContainer(platform.EventKeyDown, handle(d.onKeyDown))
	} else if d.tabStop {
		d.tabStop = false
		d.container.SetTabStop(false)
	}
}

func markHandled(ev platform.Event) {
	ev.Routed().Handled = true
}
