package testing

import (
	"net/url"
	"sync"

	"golang.org/x/mobile/event/key"

	"github.com/go-drift/handlers/pkg/graphics"
	"github.com/go-drift/handlers/pkg/platform"
)

// FakeView is an in-memory platform.NativeView. Emit helpers raise native
// events synchronously on the caller's goroutine.
type FakeView struct {
	platform.EventHub

	mu               sync.Mutex
	transform        graphics.Transform
	canDrag          bool
	allowDrop        bool
	tabStop          bool
	hitTestVisible   bool
	manipulationMode platform.ManipulationMode
	propertyCalls    int
	scrolls          bool
	image            *url.URL
}

// NewFakeView returns a view at the window origin.
func NewFakeView() *FakeView {
	return &FakeView{transform: graphics.IdentityTransform()}
}

// SubscriptionCount returns the number of live subscriptions.
func (v *FakeView) SubscriptionCount() int {
	return v.Count()
}

func (v *FakeView) TransformToRoot() graphics.Transform {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.transform
}

// SetTransform sets the view-to-window transform.
func (v *FakeView) SetTransform(t graphics.Transform) {
	v.mu.Lock()
	v.transform = t
	v.mu.Unlock()
}

func (v *FakeView) SetCanDrag(enabled bool) {
	v.mu.Lock()
	v.canDrag = enabled
	v.propertyCalls++
	v.mu.Unlock()
}

func (v *FakeView) SetAllowDrop(enabled bool) {
	v.mu.Lock()
	v.allowDrop = enabled
	v.propertyCalls++
	v.mu.Unlock()
}

func (v *FakeView) SetManipulationMode(mode platform.ManipulationMode) {
	v.mu.Lock()
	v.manipulationMode = mode
	v.propertyCalls++
	v.mu.Unlock()
}

func (v *FakeView) SetTabStop(enabled bool) {
	v.mu.Lock()
	v.tabStop = enabled
	v.propertyCalls++
	v.mu.Unlock()
}

func (v *FakeView) SetHitTestVisible(enabled bool) {
	v.mu.Lock()
	v.hitTestVisible = enabled
	v.propertyCalls++
	v.mu.Unlock()
}

// CanDrag returns the last value passed to SetCanDrag.
func (v *FakeView) CanDrag() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.canDrag
}

// AllowDrop returns the last value passed to SetAllowDrop.
func (v *FakeView) AllowDrop() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.allowDrop
}

// TabStop returns the last value passed to SetTabStop.
func (v *FakeView) TabStop() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tabStop
}

// HitTestVisible returns the last value passed to SetHitTestVisible.
func (v *FakeView) HitTestVisible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.hitTestVisible
}

// ManipulationMode returns the last value passed to SetManipulationMode.
func (v *FakeView) ManipulationMode() platform.ManipulationMode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.manipulationMode
}

// PropertyCalls returns the number of property setter calls.
func (v *FakeView) PropertyCalls() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.propertyCalls
}

// SetScrollContainer makes the view report itself as a scroll container.
func (v *FakeView) SetScrollContainer(scrolls bool) {
	v.mu.Lock()
	v.scrolls = scrolls
	v.mu.Unlock()
}

func (v *FakeView) IsScrollContainer() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scrolls
}

// SetImageURI makes the view an image showing u.
func (v *FakeView) SetImageURI(u *url.URL) {
	v.mu.Lock()
	v.image = u
	v.mu.Unlock()
}

func (v *FakeView) ImageURI() (*url.URL, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.image, v.image != nil
}

func (v *FakeView) routed(pos graphics.Offset) platform.RoutedEvent {
	return platform.RoutedEvent{Source: v, Position: pos}
}

// Tap raises a primary tap at pos in view coordinates.
func (v *FakeView) Tap(pos graphics.Offset) *platform.TapEvent {
	ev := &platform.TapEvent{RoutedEvent: v.routed(pos), Kind: platform.TapPrimary}
	v.Emit(platform.EventTapped, ev)
	return ev
}

// DoubleTap raises a double tap at pos.
func (v *FakeView) DoubleTap(pos graphics.Offset) *platform.TapEvent {
	ev := &platform.TapEvent{RoutedEvent: v.routed(pos), Kind: platform.TapDouble}
	v.Emit(platform.EventDoubleTapped, ev)
	return ev
}

// RightTap raises a secondary tap at pos.
func (v *FakeView) RightTap(pos graphics.Offset) *platform.TapEvent {
	ev := &platform.TapEvent{RoutedEvent: v.routed(pos), Kind: platform.TapSecondary}
	v.Emit(platform.EventRightTapped, ev)
	return ev
}

// KeyDown raises a key press. Key events carry no position.
func (v *FakeView) KeyDown(code key.Code) *platform.KeyEvent {
	ev := &platform.KeyEvent{RoutedEvent: platform.RoutedEvent{Source: v}, Code: code}
	v.Emit(platform.EventKeyDown, ev)
	return ev
}

func (v *FakeView) pointer(kind platform.EventKind, id uint32, pos graphics.Offset) {
	v.Emit(kind, &platform.PointerEvent{RoutedEvent: v.routed(pos), PointerID: id})
}

// Press raises a pointer press.
func (v *FakeView) Press(id uint32, pos graphics.Offset) {
	v.pointer(platform.EventPointerPressed, id, pos)
}

// Release raises a pointer release.
func (v *FakeView) Release(id uint32, pos graphics.Offset) {
	v.pointer(platform.EventPointerReleased, id, pos)
}

// CancelPointer raises a pointer cancel.
func (v *FakeView) CancelPointer(id uint32) {
	v.pointer(platform.EventPointerCanceled, id, graphics.Offset{})
}

// Enter raises a pointer enter at pos.
func (v *FakeView) Enter(id uint32, pos graphics.Offset) {
	v.pointer(platform.EventPointerEntered, id, pos)
}

// Exit raises a pointer exit at pos.
func (v *FakeView) Exit(id uint32, pos graphics.Offset) {
	v.pointer(platform.EventPointerExited, id, pos)
}

// Move raises a pointer move at pos.
func (v *FakeView) Move(id uint32, pos graphics.Offset) {
	v.pointer(platform.EventPointerMoved, id, pos)
}

// ManipulationStarted raises the start of a manipulation.
func (v *FakeView) ManipulationStarted(pos graphics.Offset) {
	v.Emit(platform.EventManipulationStarted, &platform.ManipulationEvent{
		RoutedEvent: v.routed(pos),
		Delta:       platform.ManipulationDelta{Scale: 1},
		Cumulative:  platform.ManipulationDelta{Scale: 1},
	})
}

// ManipulationDelta raises a manipulation step at pos.
func (v *FakeView) ManipulationDelta(pos graphics.Offset, delta, cumulative platform.ManipulationDelta) {
	v.Emit(platform.EventManipulationDelta, &platform.ManipulationEvent{
		RoutedEvent: v.routed(pos),
		Delta:       delta,
		Cumulative:  cumulative,
	})
}

// ManipulationCompleted raises the end of a manipulation.
func (v *FakeView) ManipulationCompleted(pos graphics.Offset) {
	v.Emit(platform.EventManipulationCompleted, &platform.ManipulationEvent{
		RoutedEvent: v.routed(pos),
		Delta:       platform.ManipulationDelta{Scale: 1},
		Cumulative:  platform.ManipulationDelta{Scale: 1},
	})
}

// DragStarting raises the start of a drag from this view.
func (v *FakeView) DragStarting() *platform.DragStartingEvent {
	ev := &platform.DragStartingEvent{
		RoutedEvent:       v.routed(graphics.Offset{}),
		Data:              platform.NewDataPackage(),
		AllowedOperations: platform.OperationCopy,
	}
	v.Emit(platform.EventDragStarting, ev)
	return ev
}

func (v *FakeView) drag(kind platform.EventKind, data *platform.DataPackage) *platform.DragEvent {
	if data == nil {
		data = platform.NewDataPackage()
	}
	ev := &platform.DragEvent{
		RoutedEvent:       v.routed(graphics.Offset{}),
		Data:              data,
		AcceptedOperation: platform.OperationCopy,
	}
	v.Emit(kind, ev)
	return ev
}

// DragEnter raises a drag entering this view carrying data.
func (v *FakeView) DragEnter(data *platform.DataPackage) *platform.DragEvent {
	return v.drag(platform.EventDragEnter, data)
}

// DragOver raises a drag moving over this view.
func (v *FakeView) DragOver(data *platform.DataPackage) *platform.DragEvent {
	return v.drag(platform.EventDragOver, data)
}

// DragLeave raises a drag leaving this view.
func (v *FakeView) DragLeave(data *platform.DataPackage) *platform.DragEvent {
	return v.drag(platform.EventDragLeave, data)
}

// Drop raises a drop on this view.
func (v *FakeView) Drop(data *platform.DataPackage) *platform.DragEvent {
	return v.drag(platform.EventDrop, data)
}

// DropCompleted raises the end of a drag started from this view.
func (v *FakeView) DropCompleted(result platform.DataPackageOperation) {
	v.Emit(platform.EventDropCompleted, &platform.DropCompletedEvent{
		RoutedEvent: v.routed(graphics.Offset{}),
		Result:      result,
	})
}
