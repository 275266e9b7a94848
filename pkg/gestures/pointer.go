package gestures

import "github.com/go-drift/handlers/pkg/graphics"

// PointerRecognizer reports hover movement. No press is required.
type PointerRecognizer struct {
	PointerEntered func(*PointerEventArgs)
	PointerExited  func(*PointerEventArgs)
	PointerMoved   func(*PointerEventArgs)
}

func (*PointerRecognizer) Kind() Kind { return KindPointer }
func (*PointerRecognizer) recognizer() {}

func (r *PointerRecognizer) SendPointerEntered(view View, pos PositionFunc) {
	send(r.PointerEntered, view, pos)
}

func (r *PointerRecognizer) SendPointerExited(view View, pos PositionFunc) {
	send(r.PointerExited, view, pos)
}

func (r *PointerRecognizer) SendPointerMoved(view View, pos PositionFunc) {
	send(r.PointerMoved, view, pos)
}

func send(fn func(*PointerEventArgs), view View, pos PositionFunc) {
	if fn != nil {
		fn(&PointerEventArgs{Sender: view, position: pos})
	}
}

// PointerEventArgs describes a hover event.
type PointerEventArgs struct {
	Sender   View
	position PositionFunc
}

// GetPosition returns the pointer position relative to view, or window
// coordinates when view is nil.
func (a *PointerEventArgs) GetPosition(view View) (graphics.Offset, bool) {
	return resolve(a.position, view)
}
