package dispatch

import (
	"github.com/go-drift/handlers/pkg/gestures"
	"github.com/go-drift/handlers/pkg/platform"
)

func (d *Dispatcher) onPointerEntered(ev *platform.PointerEvent) {
	d.sendPointer(ev, (*gestures.PointerRecognizer).SendPointerEntered)
}

func (d *Dispatcher) onPointerExited(ev *platform.PointerEvent) {
	d.sendPointer(ev, (*gestures.PointerRecognizer).SendPointerExited)
}

func (d *Dispatcher) onPointerMoved(ev *platform.PointerEvent) {
	d.sendPointer(ev, (*gestures.PointerRecognizer).SendPointerMoved)
}

func (d *Dispatcher) sendPointer(ev *platform.PointerEvent, send func(*gestures.PointerRecognizer, gestures.View, gestures.PositionFunc)) {
	el := d.element
	if el == nil {
		return
	}
	pos := positionOf(&ev.RoutedEvent)
	for _, r := range gestures.Of[*gestures.PointerRecognizer](el.GestureRecognizers()) {
		send(r, el, pos)
	}
}
