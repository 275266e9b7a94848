package platform

import (
	"fmt"
	"net/url"
	"sync"

	"golang.org/x/image/math/f64"
	"golang.org/x/mobile/event/key"

	"github.com/go-drift/handlers/pkg/errors"
	"github.com/go-drift/handlers/pkg/graphics"
)

const gestureChannelName = "drift/gestures"

// gestureChannel carries property updates and event results to native views,
// and "refresh" requests back from them.
var gestureChannel = NewMethodChannel(gestureChannelName)

func init() {
	gestureChannel.SetHandler(handleGestureCall)
}

var channelViews = struct {
	mu   sync.RWMutex
	byID map[int64]*ChannelView
}{byID: make(map[int64]*ChannelView)}

func lookupChannelView(id int64) *ChannelView {
	channelViews.mu.RLock()
	defer channelViews.mu.RUnlock()
	return channelViews.byID[id]
}

// handleGestureCall serves method calls native makes on "drift/gestures".
// "refresh" takes {"viewId": n} and runs the view's OnRefresh callbacks.
func handleGestureCall(method string, args any) (result any, err error) {
	defer errors.RecoverWithCallback("platform.handleGestureCall", func(r any) {
		result, err = nil, fmt.Errorf("platform: %s call panicked: %v", method, r)
	})

	switch method {
	case "refresh":
		m := parseMap(args)
		id, ok := toInt64(m["viewId"])
		if !ok {
			return nil, &errors.ParseError{Channel: gestureChannelName, DataType: "viewId", Got: m["viewId"]}
		}
		v := lookupChannelView(id)
		if v == nil {
			return nil, fmt.Errorf("%w: %d", ErrViewNotFound, id)
		}
		RunOnUI(v.refresh)
		return nil, nil
	default:
		return nil, ErrMethodNotFound
	}
}

// ChannelView is a NativeView whose widget lives on the native side.
//
// Native input arrives on the event channel "drift/gestures/<id>" as maps
// with a "type" key naming the EventKind (e.g. "pointerPressed"). The
// stream is started when the first handler subscribes and stopped when the
// last one cancels. Events that carry a non-zero "id" get an "eventResult"
// call back with the Handled flag and any drag outcome.
type ChannelView struct {
	hub    EventHub
	id     int64
	events *EventChannel

	mu        sync.Mutex
	listen    *Subscription
	refreshes []*refreshEntry
	transform graphics.Transform
	image     *url.URL
	scrolls   bool
	disposed  bool
}

// NewChannelView creates a view bound to native view id.
func NewChannelView(id int64) *ChannelView {
	v := &ChannelView{
		id:        id,
		events:    NewEventChannel(fmt.Sprintf("drift/gestures/%d", id)),
		transform: graphics.IdentityTransform(),
	}
	channelViews.mu.Lock()
	channelViews.byID[id] = v
	channelViews.mu.Unlock()
	return v
}

type refreshEntry struct {
	fn  func()
	sub *Subscription
}

// OnRefresh implements RefreshSource.
func (v *ChannelView) OnRefresh(fn func()) *Subscription {
	entry := &refreshEntry{fn: fn}
	entry.sub = NewSubscription(func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		for i, e := range v.refreshes {
			if e == entry {
				v.refreshes = append(v.refreshes[:i], v.refreshes[i+1:]...)
				return
			}
		}
	})
	v.mu.Lock()
	v.refreshes = append(v.refreshes, entry)
	v.mu.Unlock()
	return entry.sub
}

func (v *ChannelView) refresh() {
	v.mu.Lock()
	entries := make([]*refreshEntry, len(v.refreshes))
	copy(entries, v.refreshes)
	v.mu.Unlock()

	for _, e := range entries {
		if !e.sub.IsCanceled() {
			e.fn()
		}
	}
}

// ViewID returns the native view id.
func (v *ChannelView) ViewID() int64 {
	return v.id
}

// Subscribe registers handler for events of kind.
func (v *ChannelView) Subscribe(kind EventKind, handler EventHandler) *Subscription {
	inner := v.hub.Subscribe(kind, handler)

	v.mu.Lock()
	if v.listen == nil && !v.disposed {
		v.listen = v.events.Listen(StreamHandler{
			OnEvent: v.handleEvent,
			OnError: v.handleStreamError,
		})
	}
	v.mu.Unlock()

	return NewSubscription(func() {
		inner.Cancel()
		if v.hub.Count() > 0 {
			return
		}
		v.mu.Lock()
		listen := v.listen
		v.listen = nil
		v.mu.Unlock()
		listen.Cancel()
	})
}

// SubscriptionCount returns the number of active handler subscriptions.
func (v *ChannelView) SubscriptionCount() int {
	return v.hub.Count()
}

// TransformToRoot returns the last transform set by SetTransform or by a
// native "transform" event.
func (v *ChannelView) TransformToRoot() graphics.Transform {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.transform
}

// SetTransform records the view-to-window transform.
func (v *ChannelView) SetTransform(t graphics.Transform) {
	v.mu.Lock()
	v.transform = t
	v.mu.Unlock()
}

// SetImageURI marks the view as an image showing u.
func (v *ChannelView) SetImageURI(u *url.URL) {
	v.mu.Lock()
	v.image = u
	v.mu.Unlock()
}

// ImageURI implements ImageSourceView.
func (v *ChannelView) ImageURI() (*url.URL, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.image, v.image != nil
}

// SetScrollContainer marks the view as a native scroll container.
func (v *ChannelView) SetScrollContainer(scrolls bool) {
	v.mu.Lock()
	v.scrolls = scrolls
	v.mu.Unlock()
}

// IsScrollContainer implements ScrollContainer.
func (v *ChannelView) IsScrollContainer() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scrolls
}

func (v *ChannelView) SetCanDrag(enabled bool)     { v.setProperty("setCanDrag", enabled) }
func (v *ChannelView) SetAllowDrop(enabled bool)   { v.setProperty("setAllowDrop", enabled) }
func (v *ChannelView) SetTabStop(enabled bool)     { v.setProperty("setTabStop", enabled) }
func (v *ChannelView) SetHitTestVisible(value bool) { v.setProperty("setHitTestVisible", value) }

func (v *ChannelView) SetManipulationMode(mode ManipulationMode) {
	v.setProperty("setManipulationMode", int(mode))
}

// Dispose stops the native event stream. Handlers should cancel their
// subscriptions first.
func (v *ChannelView) Dispose() {
	v.mu.Lock()
	listen := v.listen
	v.listen = nil
	v.refreshes = nil
	v.disposed = true
	v.mu.Unlock()
	listen.Cancel()
	registry.unregisterEvent(v.events.Name(), v.events)

	channelViews.mu.Lock()
	if channelViews.byID[v.id] == v {
		delete(channelViews.byID, v.id)
	}
	channelViews.mu.Unlock()
}

func (v *ChannelView) setProperty(method string, value any) {
	v.mu.Lock()
	disposed := v.disposed
	v.mu.Unlock()
	if disposed {
		return
	}
	_, err := gestureChannel.Invoke(method, map[string]any{
		"viewId": v.id,
		"value":  value,
	})
	if err != nil {
		errors.Report(&errors.HandlerError{
			Op:      "platform.ChannelView." + method,
			Kind:    errors.KindPlatform,
			Channel: gestureChannel.Name(),
			ViewID:  v.id,
			Err:     err,
		})
	}
}

func (v *ChannelView) handleStreamError(err error) {
	errors.Report(&errors.HandlerError{
		Op:      "platform.ChannelView.stream",
		Kind:    errors.KindPlatform,
		Channel: v.events.Name(),
		ViewID:  v.id,
		Err:     err,
	})
}

func (v *ChannelView) handleEvent(data any) {
	m := parseMap(data)
	if m == nil {
		v.reportParse("map", data)
		return
	}
	typ := parseString(m["type"])
	if typ == "transform" {
		v.applyTransform(m)
		return
	}
	kind, ok := ParseEventKind(typ)
	if !ok {
		errors.Report(&errors.HandlerError{
			Op:      "platform.ChannelView.handleEvent",
			Kind:    errors.KindParsing,
			Channel: v.events.Name(),
			ViewID:  v.id,
			Err:     fmt.Errorf("%w: %q", ErrUnknownEvent, typ),
		})
		return
	}
	ev := v.decode(kind, m)
	RunOnUI(func() {
		defer errors.Recover("platform.ChannelView.handleEvent")
		v.hub.Emit(kind, ev)
		v.reportResult(kind, ev)
		if kind == EventDropCompleted {
			id, _ := toInt64(m["dragId"])
			endDragSession(id)
		}
	})
}

func (v *ChannelView) applyTransform(m map[string]any) {
	raw, ok := m["m"].([]any)
	if !ok || len(raw) != 6 {
		v.reportParse("transform", m["m"])
		return
	}
	var aff f64.Aff3
	for i, x := range raw {
		f, ok := toFloat64(x)
		if !ok {
			v.reportParse("transform", m["m"])
			return
		}
		aff[i] = f
	}
	v.SetTransform(graphics.TransformFromAff3(aff))
}

func (v *ChannelView) reportParse(dataType string, got any) {
	errors.Report(&errors.HandlerError{
		Op:      "platform.ChannelView.handleEvent",
		Kind:    errors.KindParsing,
		Channel: v.events.Name(),
		ViewID:  v.id,
		Err:     &errors.ParseError{Channel: v.events.Name(), DataType: dataType, Got: got},
	})
}

func (v *ChannelView) decode(kind EventKind, m map[string]any) Event {
	id, _ := toInt64(m["id"])
	routed := RoutedEvent{
		Source:   v,
		Position: graphics.Offset{X: floatField(m, "x", 0), Y: floatField(m, "y", 0)},
		ID:       id,
	}

	switch kind {
	case EventTapped:
		return &TapEvent{RoutedEvent: routed, Kind: TapPrimary}
	case EventDoubleTapped:
		return &TapEvent{RoutedEvent: routed, Kind: TapDouble}
	case EventRightTapped:
		return &TapEvent{RoutedEvent: routed, Kind: TapSecondary}
	case EventKeyDown:
		code, _ := toUint32(m["keyCode"])
		return &KeyEvent{RoutedEvent: routed, Code: key.Code(code)}
	case EventPointerPressed, EventPointerReleased, EventPointerCanceled,
		EventPointerExited, EventPointerEntered, EventPointerMoved:
		pid, _ := toUint32(m["pointerId"])
		return &PointerEvent{RoutedEvent: routed, PointerID: pid}
	case EventManipulationStarted, EventManipulationDelta, EventManipulationCompleted:
		return &ManipulationEvent{
			RoutedEvent: routed,
			Delta: ManipulationDelta{
				Translation: graphics.Offset{X: floatField(m, "dx", 0), Y: floatField(m, "dy", 0)},
				Scale:       floatField(m, "scale", 1),
			},
			Cumulative: ManipulationDelta{
				Translation: graphics.Offset{X: floatField(m, "cx", 0), Y: floatField(m, "cy", 0)},
				Scale:       floatField(m, "cscale", 1),
			},
		}
	case EventDragStarting:
		dragID, _ := toInt64(m["dragId"])
		return &DragStartingEvent{RoutedEvent: routed, Data: dragPackage(dragID), AllowedOperations: OperationCopy}
	case EventDropCompleted:
		return &DropCompletedEvent{RoutedEvent: routed, Result: parseOperation(m["result"])}
	default:
		dragID, _ := toInt64(m["dragId"])
		op := OperationCopy
		if raw, ok := m["operation"]; ok {
			op = parseOperation(raw)
		}
		return &DragEvent{RoutedEvent: routed, Data: dragPackage(dragID), AcceptedOperation: op}
	}
}

func (v *ChannelView) reportResult(kind EventKind, ev Event) {
	r := ev.Routed()
	if r.ID == 0 {
		return
	}
	result := map[string]any{
		"viewId":  v.id,
		"eventId": r.ID,
		"type":    kind.String(),
		"handled": r.Handled,
	}
	switch e := ev.(type) {
	case *DragStartingEvent:
		result["cancel"] = e.Cancel
		result["allowedOperations"] = e.AllowedOperations.String()
		result["data"] = e.Data.encode()
	case *DragEvent:
		result["acceptedOperation"] = e.AcceptedOperation.String()
	}
	if _, err := gestureChannel.Invoke("eventResult", result); err != nil {
		errors.Report(&errors.HandlerError{
			Op:      "platform.ChannelView.reportResult",
			Kind:    errors.KindPlatform,
			Channel: gestureChannel.Name(),
			ViewID:  v.id,
			Err:     err,
		})
	}
}
