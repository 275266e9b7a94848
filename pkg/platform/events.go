package platform

import (
	"golang.org/x/mobile/event/key"

	"github.com/go-drift/handlers/pkg/graphics"
)

// Event is a native input event. Every event embeds RoutedEvent.
type Event interface {
	Routed() *RoutedEvent
}

// EventHandler receives native input events.
type EventHandler func(ev Event)

// RoutedEvent holds the fields shared by all native input events.
type RoutedEvent struct {
	// Source is the view that raised the event. It may be nil for
	// events that carry no position.
	Source NativeView
	// Position is the input position in Source's coordinate space.
	Position graphics.Offset
	// Handled stops the platform from routing the event further.
	Handled bool
	// ID correlates the event with a native result callback. Zero means
	// the native side does not wait for a result.
	ID int64
}

func (e *RoutedEvent) Routed() *RoutedEvent { return e }

// PositionRelativeTo returns the event position in target's coordinate
// space, or window coordinates when target is nil.
func (e *RoutedEvent) PositionRelativeTo(target NativeView) (graphics.Offset, bool) {
	if e.Source == nil {
		return graphics.Offset{}, false
	}
	root := e.Source.TransformToRoot().Apply(e.Position)
	if target == nil {
		return root, true
	}
	inv, ok := target.TransformToRoot().Invert()
	if !ok {
		return graphics.Offset{}, false
	}
	return inv.Apply(root), true
}

// TransformBetween returns the transform from from's coordinate space to
// to's coordinate space.
func TransformBetween(from, to NativeView) (graphics.Transform, bool) {
	inv, ok := to.TransformToRoot().Invert()
	if !ok {
		return graphics.IdentityTransform(), false
	}
	return from.TransformToRoot().Then(inv), true
}

// TapKind distinguishes the activation events that share TapEvent.
type TapKind int

const (
	TapPrimary TapKind = iota
	TapDouble
	TapSecondary
)

// TapEvent is raised for EventTapped, EventDoubleTapped and EventRightTapped.
type TapEvent struct {
	RoutedEvent
	Kind TapKind
}

// KeyEvent is raised for EventKeyDown.
type KeyEvent struct {
	RoutedEvent
	Code key.Code
}

// PointerEvent is raised for the pointer press, release, cancel, enter,
// exit and move events.
type PointerEvent struct {
	RoutedEvent
	PointerID uint32
}

// ManipulationDelta is a translation plus a scale factor.
type ManipulationDelta struct {
	Translation graphics.Offset
	// Scale is 1 when unchanged.
	Scale float64
}

// ManipulationEvent is raised for the manipulation started, delta and
// completed events.
type ManipulationEvent struct {
	RoutedEvent
	// Delta is the change since the previous event.
	Delta ManipulationDelta
	// Cumulative is the change since the manipulation started, excluding Delta.
	Cumulative ManipulationDelta
}

// DragStartingEvent is raised on a drag source when a drag begins.
type DragStartingEvent struct {
	RoutedEvent
	Data              *DataPackage
	Cancel            bool
	AllowedOperations DataPackageOperation
}

// DragEvent is raised on a drop target for enter, over, leave and drop.
type DragEvent struct {
	RoutedEvent
	Data              *DataPackage
	AcceptedOperation DataPackageOperation
}

// DropCompletedEvent is raised on a drag source after the drop.
type DropCompletedEvent struct {
	RoutedEvent
	Result DataPackageOperation
}
