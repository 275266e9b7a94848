// Package gestures defines the declarative gesture recognizers a view
// carries and the event arguments they raise.
//
// Recognizers are configuration objects owned by the view model. They hold
// no pointer state of their own; a platform dispatcher observes a view's
// [Collection], translates native input, and calls the Send methods.
//
// The set of recognizer kinds is closed: every [Recognizer] is one of
// [*TapRecognizer], [*PanRecognizer], [*PinchRecognizer],
// [*SwipeRecognizer], [*PointerRecognizer], [*DragRecognizer] or
// [*DropRecognizer]. Switch on the concrete type or on [Recognizer.Kind].
package gestures

import "github.com/go-drift/handlers/pkg/graphics"

// Kind identifies a recognizer variant.
type Kind int

const (
	KindTap Kind = iota
	KindPan
	KindPinch
	KindSwipe
	KindPointer
	KindDrag
	KindDrop
)

func (k Kind) String() string {
	switch k {
	case KindTap:
		return "TapGestureRecognizer"
	case KindPan:
		return "PanGestureRecognizer"
	case KindPinch:
		return "PinchGestureRecognizer"
	case KindSwipe:
		return "SwipeGestureRecognizer"
	case KindPointer:
		return "PointerGestureRecognizer"
	case KindDrag:
		return "DragGestureRecognizer"
	case KindDrop:
		return "DropGestureRecognizer"
	default:
		return "UnknownGestureRecognizer"
	}
}

// Recognizer is a declared gesture recognizer.
type Recognizer interface {
	// Kind reports which variant this recognizer is.
	Kind() Kind
	recognizer()
}

// View is the portable element a recognizer is attached to. It is passed
// back to callbacks as the sender.
type View interface {
	GestureRecognizers() *Collection
}

// PositionFunc resolves the position of the triggering input relative to
// another view. A nil view means window coordinates. It reports false when
// no position is available, e.g. for keyboard activation.
type PositionFunc func(relativeTo View) (graphics.Offset, bool)

// ButtonsMask selects the pointer buttons a tap recognizer accepts.
type ButtonsMask int

const (
	ButtonPrimary ButtonsMask = 1 << iota
	ButtonSecondary
)

// Has reports whether every button in b is set in m.
func (m ButtonsMask) Has(b ButtonsMask) bool {
	return m&b == b
}

// GestureStatus is the phase reported by continuous gestures.
type GestureStatus int

const (
	StatusStarted GestureStatus = iota
	StatusRunning
	StatusCompleted
	StatusCanceled
)

func (s GestureStatus) String() string {
	switch s {
	case StatusStarted:
		return "Started"
	case StatusRunning:
		return "Running"
	case StatusCompleted:
		return "Completed"
	case StatusCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

func resolve(pos PositionFunc, relativeTo View) (graphics.Offset, bool) {
	if pos == nil {
		return graphics.Offset{}, false
	}
	return pos(relativeTo)
}
