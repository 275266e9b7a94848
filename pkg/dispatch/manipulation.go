package dispatch

import (
	"slices"

	"github.com/go-drift/handlers/pkg/gestures"
	"github.com/go-drift/handlers/pkg/graphics"
	"github.com/go-drift/handlers/pkg/platform"
)

func (d *Dispatcher) onPointerPressed(ev *platform.PointerEvent) {
	if !slices.Contains(d.pointers, ev.PointerID) {
		d.pointers = append(d.pointers, ev.PointerID)
	}
}

func (d *Dispatcher) onPointerReleased(ev *platform.PointerEvent) {
	d.releasePointer(ev.PointerID)
	d.complete(true)
}

func (d *Dispatcher) onPointerCanceled(ev *platform.PointerEvent) {
	d.releasePointer(ev.PointerID)
	d.complete(false)
}

// onPointerLost handles a pointer leaving the container mid-manipulation.
func (d *Dispatcher) onPointerLost(ev *platform.PointerEvent) {
	d.releasePointer(ev.PointerID)
	d.complete(false)
}

func (d *Dispatcher) releasePointer(id uint32) {
	if i := slices.Index(d.pointers, id); i >= 0 {
		d.pointers = slices.Delete(d.pointers, i, i+1)
	}
}

func (d *Dispatcher) onManipulationStarted(*platform.ManipulationEvent) {
	if d.element == nil {
		return
	}
	d.session = session{}
}

func (d *Dispatcher) onManipulationDelta(ev *platform.ManipulationEvent) {
	if d.element == nil {
		return
	}
	total := ev.Delta.Translation.Add(ev.Cumulative.Translation)
	d.handleSwipe(total)
	d.handlePinch(ev)
	d.handlePan(total)
}

func (d *Dispatcher) onManipulationCompleted(*platform.ManipulationEvent) {
	d.complete(true)
}

func (d *Dispatcher) complete(success bool) {
	if d.element == nil {
		return
	}
	d.swipeComplete(success)
	d.pinchComplete(success)
	d.panComplete(success)
}

func (d *Dispatcher) handleSwipe(total graphics.Offset) {
	if len(d.pointers) != 1 {
		return
	}
	swipes := gestures.Of[*gestures.SwipeRecognizer](d.element.GestureRecognizers())
	if len(swipes) == 0 {
		return
	}
	d.session.swiping = true
	for _, r := range swipes {
		r.SendSwipe(d.element, total.X, total.Y)
	}
}

func (d *Dispatcher) handlePinch(ev *platform.ManipulationEvent) {
	if len(d.pointers) < 2 {
		return
	}
	pinches := gestures.Of[*gestures.PinchRecognizer](d.element.GestureRecognizers())
	if len(pinches) == 0 {
		return
	}
	local, ok := ev.PositionRelativeTo(d.container)
	if !ok {
		return
	}
	d.session.pinching = true

	origin := normalize(local, d.element.Size())
	for _, r := range pinches {
		if !d.session.pinchStarted {
			r.SendPinchStarted(d.element, origin)
		} else {
			r.SendPinch(d.element, ev.Delta.Scale, origin)
		}
	}
	d.session.pinchStarted = true
}

// normalize maps p into unit coordinates of size.
func normalize(p graphics.Offset, size graphics.Size) graphics.Offset {
	var out graphics.Offset
	if size.Width > 0 {
		out.X = p.X / size.Width
	}
	if size.Height > 0 {
		out.Y = p.Y / size.Height
	}
	return out
}

func (d *Dispatcher) handlePan(total graphics.Offset) {
	recognizers := d.element.GestureRecognizers()
	if !recognizers.Has(gestures.KindPan) {
		return
	}
	d.session.panning = true

	// A recognizer starts the first time the pointer count matches it and
	// is ended with the session even if the count changes afterwards.
	id := d.panIDs.Current()
	n := len(d.pointers)
	matching := gestures.Filter(recognizers, func(r *gestures.PanRecognizer) bool {
		return r.RequiredTouchPoints() == n
	})
	for _, r := range matching {
		if slices.Contains(d.session.pans, r) {
			r.SendPan(d.element, total.X, total.Y, id)
			continue
		}
		d.session.pans = append(d.session.pans, r)
		r.SendPanStarted(d.element, id)
	}
}

func (d *Dispatcher) swipeComplete(success bool) {
	if !d.session.swiping {
		return
	}
	if success {
		for _, r := range gestures.Of[*gestures.SwipeRecognizer](d.element.GestureRecognizers()) {
			r.DetectSwipe(d.element, r.Direction)
		}
	}
	d.session.swiping = false
}

func (d *Dispatcher) pinchComplete(success bool) {
	if !d.session.pinching {
		return
	}
	for _, r := range gestures.Of[*gestures.PinchRecognizer](d.element.GestureRecognizers()) {
		if success {
			r.SendPinchEnded(d.element)
		} else {
			r.SendPinchCanceled(d.element)
		}
	}
	d.session.pinching = false
	d.session.pinchStarted = false
}

func (d *Dispatcher) panComplete(success bool) {
	if !d.session.panning {
		return
	}
	id := d.panIDs.Current()
	for _, r := range d.session.pans {
		if success {
			r.SendPanCompleted(d.element, id)
		} else {
			r.SendPanCanceled(d.element, id)
		}
	}
	d.panIDs.Increment()
	d.session.panning = false
	d.session.pans = nil
}
