package platform

import (
	"net/url"

	"github.com/go-drift/handlers/pkg/graphics"
)

// NativeView is a native UI node that raises input events. Handlers attach
// to it through Subscribe and must cancel every subscription before
// releasing the view.
type NativeView interface {
	// Subscribe registers handler for events of kind.
	Subscribe(kind EventKind, handler EventHandler) *Subscription

	// TransformToRoot maps view-local coordinates to window coordinates.
	TransformToRoot() graphics.Transform

	// SetCanDrag enables the view as a drag source.
	SetCanDrag(enabled bool)

	// SetAllowDrop enables the view as a drop target.
	SetAllowDrop(enabled bool)

	// SetManipulationMode selects which manipulations the view reports.
	SetManipulationMode(mode ManipulationMode)

	// SetTabStop makes the view keyboard focusable.
	SetTabStop(enabled bool)

	// SetHitTestVisible makes the view receive pointer input.
	SetHitTestVisible(enabled bool)
}

// ImageSourceView is implemented by native image views that can export
// their source when dragged.
type ImageSourceView interface {
	ImageURI() (*url.URL, bool)
}

// ScrollContainer is implemented by native views that scroll their content
// and consume manipulation input themselves.
type ScrollContainer interface {
	IsScrollContainer() bool
}

// RefreshSource is implemented by native views whose children can change
// without the portable element noticing. fn is called on the UI thread when
// the native side asks for input routing to be re-derived.
type RefreshSource interface {
	OnRefresh(fn func()) *Subscription
}

// ManipulationMode is a set of manipulations a view reports.
type ManipulationMode int

const (
	ManipulationNone       ManipulationMode = 0
	ManipulationTranslateX ManipulationMode = 1 << iota
	ManipulationTranslateY
	ManipulationScale
	// ManipulationSystem leaves manipulation handling to the platform.
	ManipulationSystem
)

// EventKind identifies a native input event.
type EventKind int

const (
	EventTapped EventKind = iota
	EventDoubleTapped
	EventRightTapped
	EventKeyDown
	EventPointerPressed
	EventPointerReleased
	EventPointerCanceled
	EventPointerExited
	EventPointerEntered
	EventPointerMoved
	EventManipulationStarted
	EventManipulationDelta
	EventManipulationCompleted
	EventDragStarting
	EventDropCompleted
	EventDragEnter
	EventDragOver
	EventDragLeave
	EventDrop

	eventKindCount
)

var eventKindNames = [...]string{
	EventTapped:                "tapped",
	EventDoubleTapped:          "doubleTapped",
	EventRightTapped:           "rightTapped",
	EventKeyDown:               "keyDown",
	EventPointerPressed:        "pointerPressed",
	EventPointerReleased:       "pointerReleased",
	EventPointerCanceled:       "pointerCanceled",
	EventPointerExited:         "pointerExited",
	EventPointerEntered:        "pointerEntered",
	EventPointerMoved:          "pointerMoved",
	EventManipulationStarted:   "manipulationStarted",
	EventManipulationDelta:     "manipulationDelta",
	EventManipulationCompleted: "manipulationCompleted",
	EventDragStarting:          "dragStarting",
	EventDropCompleted:         "dropCompleted",
	EventDragEnter:             "dragEnter",
	EventDragOver:              "dragOver",
	EventDragLeave:             "dragLeave",
	EventDrop:                  "drop",
}

func (k EventKind) String() string {
	if k >= 0 && k < eventKindCount {
		return eventKindNames[k]
	}
	return "unknown"
}

// ParseEventKind returns the kind with the given wire name.
func ParseEventKind(name string) (EventKind, bool) {
	for k, n := range eventKindNames {
		if n == name {
			return EventKind(k), true
		}
	}
	return 0, false
}
