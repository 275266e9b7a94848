package dispatch_test

import (
	"testing"

	"github.com/go-drift/handlers/pkg/core"
	"github.com/go-drift/handlers/pkg/gestures"
	"github.com/go-drift/handlers/pkg/graphics"
	"github.com/go-drift/handlers/pkg/platform"
	drifttest "github.com/go-drift/handlers/pkg/testing"
)

type panRecord struct {
	status gestures.GestureStatus
	x, y   float64
	id     int64
}

func panRecorder(touchPoints int) (*gestures.PanRecognizer, *[]panRecord) {
	var got []panRecord
	return &gestures.PanRecognizer{
		TouchPoints: touchPoints,
		PanUpdated: func(a *gestures.PanUpdatedEventArgs) {
			got = append(got, panRecord{a.Status, a.TotalX, a.TotalY, a.GestureID})
		},
	}, &got
}

func statuses[T any](records []T, status func(T) gestures.GestureStatus) []gestures.GestureStatus {
	out := make([]gestures.GestureStatus, len(records))
	for i, r := range records {
		out[i] = status(r)
	}
	return out
}

func equalStatuses(a, b []gestures.GestureStatus) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPan_Lifecycle(t *testing.T) {
	pan, got := panRecorder(0)
	tester := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindView, pan))
	before := tester.PanIDs.Current()

	tester.Pan(graphics.Offset{X: 10, Y: 10}, graphics.Offset{X: 5, Y: 0}, graphics.Offset{X: 5, Y: 2})

	want := []gestures.GestureStatus{gestures.StatusStarted, gestures.StatusRunning, gestures.StatusCompleted}
	if s := statuses(*got, func(r panRecord) gestures.GestureStatus { return r.status }); !equalStatuses(s, want) {
		t.Fatalf("statuses = %v, want %v", s, want)
	}
	for _, r := range *got {
		if r.id != before {
			t.Errorf("%v carried id %d, want %d", r.status, r.id, before)
		}
	}
	if running := (*got)[1]; running.x != 10 || running.y != 2 {
		t.Errorf("running total = (%v, %v), want (10, 2)", running.x, running.y)
	}
	if after := tester.PanIDs.Current(); after != before+1 {
		t.Errorf("pan id advanced to %d, want %d", after, before+1)
	}
}

func TestPan_TouchPoints(t *testing.T) {
	one, ones := panRecorder(1)
	two, twos := panRecorder(2)
	tester := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindView, one, two))
	v := tester.View
	origin := graphics.Offset{X: 50, Y: 50}
	step := platform.ManipulationDelta{Translation: graphics.Offset{X: 3}, Scale: 1}

	v.Press(1, origin)
	v.Press(2, origin)
	v.ManipulationStarted(origin)
	v.ManipulationDelta(origin, step, platform.ManipulationDelta{Scale: 1})
	v.ManipulationDelta(origin, step, platform.ManipulationDelta{Translation: graphics.Offset{X: 3}, Scale: 1})
	// Lifting one finger completes the gesture for the touch count it ran with.
	v.Release(1, origin)
	v.Release(2, origin)
	v.ManipulationCompleted(origin)

	if len(*ones) != 0 {
		t.Errorf("one-finger pan received %d updates", len(*ones))
	}
	want := []gestures.GestureStatus{gestures.StatusStarted, gestures.StatusRunning, gestures.StatusCompleted}
	if s := statuses(*twos, func(r panRecord) gestures.GestureStatus { return r.status }); !equalStatuses(s, want) {
		t.Errorf("two-finger statuses = %v, want %v", s, want)
	}
	if tester.PanIDs.Current() != 1 {
		t.Errorf("pan id = %d, want 1", tester.PanIDs.Current())
	}
}

func TestPan_SecondFingerMidGesture(t *testing.T) {
	one, ones := panRecorder(1)
	two, twos := panRecorder(2)
	tester := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindView, one, two))
	v := tester.View
	origin := graphics.Offset{X: 50, Y: 50}
	step := platform.ManipulationDelta{Translation: graphics.Offset{X: 3}, Scale: 1}

	v.Press(1, origin)
	v.ManipulationStarted(origin)
	v.ManipulationDelta(origin, step, platform.ManipulationDelta{Scale: 1})
	v.Press(2, origin)
	v.ManipulationDelta(origin, step, platform.ManipulationDelta{Translation: graphics.Offset{X: 3}, Scale: 1})
	v.Release(2, origin)
	v.Release(1, origin)
	v.ManipulationCompleted(origin)

	want := []gestures.GestureStatus{gestures.StatusStarted, gestures.StatusCompleted}
	status := func(r panRecord) gestures.GestureStatus { return r.status }
	if s := statuses(*ones, status); !equalStatuses(s, want) {
		t.Errorf("one-finger statuses = %v, want %v", s, want)
	}
	if s := statuses(*twos, status); !equalStatuses(s, want) {
		t.Errorf("two-finger statuses = %v, want %v", s, want)
	}
	for _, r := range append(*ones, *twos...) {
		if r.id != 0 {
			t.Errorf("%v carried id %d, want 0", r.status, r.id)
		}
	}
	if tester.PanIDs.Current() != 1 {
		t.Errorf("pan id = %d, want 1", tester.PanIDs.Current())
	}
}

func TestPan_Canceled(t *testing.T) {
	tests := []struct {
		name string
		end  func(v *drifttest.FakeView)
	}{
		{"pointer canceled", func(v *drifttest.FakeView) { v.CancelPointer(1) }},
		{"pointer exited", func(v *drifttest.FakeView) { v.Exit(1, graphics.Offset{X: 200}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pan, got := panRecorder(0)
			tester := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindView, pan))
			v := tester.View

			v.Press(1, graphics.Offset{})
			v.ManipulationStarted(graphics.Offset{})
			v.ManipulationDelta(graphics.Offset{}, platform.ManipulationDelta{Translation: graphics.Offset{X: 4}, Scale: 1}, platform.ManipulationDelta{Scale: 1})
			tt.end(v)
			// The platform still reports completion; the session is already over.
			v.ManipulationCompleted(graphics.Offset{})

			want := []gestures.GestureStatus{gestures.StatusStarted, gestures.StatusCanceled}
			if s := statuses(*got, func(r panRecord) gestures.GestureStatus { return r.status }); !equalStatuses(s, want) {
				t.Errorf("statuses = %v, want %v", s, want)
			}
			if tester.PanIDs.Current() != 1 {
				t.Errorf("pan id = %d, want 1", tester.PanIDs.Current())
			}
		})
	}
}

func TestPan_ReleaseWithoutMovement(t *testing.T) {
	pan, got := panRecorder(0)
	tester := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindView, pan))

	tester.Pan(graphics.Offset{})

	if len(*got) != 0 {
		t.Errorf("pan without movement raised %v", *got)
	}
	if tester.PanIDs.Current() != 0 {
		t.Error("pan id advanced without a pan")
	}
}

type pinchRecord struct {
	status gestures.GestureStatus
	scale  float64
	origin graphics.Offset
}

func pinchRecorder() (*gestures.PinchRecognizer, *[]pinchRecord) {
	var got []pinchRecord
	return &gestures.PinchRecognizer{
		PinchUpdated: func(a *gestures.PinchUpdatedEventArgs) {
			got = append(got, pinchRecord{a.Status, a.Scale, a.ScaleOrigin})
		},
	}, &got
}

func TestPinch_Lifecycle(t *testing.T) {
	pinch, got := pinchRecorder()
	tester := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindView, pinch))

	tester.Pinch(graphics.Offset{X: 25, Y: 50}, 1.5, 2)

	want := []gestures.GestureStatus{gestures.StatusStarted, gestures.StatusRunning, gestures.StatusCompleted}
	if s := statuses(*got, func(r pinchRecord) gestures.GestureStatus { return r.status }); !equalStatuses(s, want) {
		t.Fatalf("statuses = %v, want %v", s, want)
	}
	if (*got)[0].scale != 1 {
		t.Errorf("started scale = %v, want 1", (*got)[0].scale)
	}
	if (*got)[1].scale != 2 {
		t.Errorf("running scale = %v, want 2", (*got)[1].scale)
	}
	origin := graphics.Offset{X: 0.25, Y: 0.5}
	for _, r := range *got {
		if r.origin != origin {
			t.Errorf("%v origin = %v, want %v", r.status, r.origin, origin)
		}
	}
}

func TestPinch_SinglePointerIgnored(t *testing.T) {
	pinch, got := pinchRecorder()
	tester := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindView, pinch))
	v := tester.View

	v.Press(1, graphics.Offset{X: 10, Y: 10})
	v.ManipulationStarted(graphics.Offset{X: 10, Y: 10})
	v.ManipulationDelta(graphics.Offset{X: 10, Y: 10}, platform.ManipulationDelta{Scale: 2}, platform.ManipulationDelta{Scale: 1})
	v.Release(1, graphics.Offset{X: 10, Y: 10})
	v.ManipulationCompleted(graphics.Offset{X: 10, Y: 10})

	if len(*got) != 0 {
		t.Errorf("single pointer pinch raised %v", *got)
	}
}

func TestPinch_ZeroSizeElement(t *testing.T) {
	pinch, got := pinchRecorder()
	el := drifttest.NewFakeElement(core.KindView, pinch)
	el.Bounds = graphics.Rect{}
	tester := drifttest.NewGestureTesterWithT(t, el)

	tester.Pinch(graphics.Offset{X: 10, Y: 10}, 2)

	if len(*got) == 0 {
		t.Fatal("pinch not raised")
	}
	if o := (*got)[0].origin; o != (graphics.Offset{}) {
		t.Errorf("origin = %v, want zero", o)
	}
}

func TestSwipe(t *testing.T) {
	tests := []struct {
		name      string
		direction gestures.SwipeDirection
		threshold float64
		total     graphics.Offset
		want      []gestures.SwipeDirection
	}{
		{"left", gestures.SwipeLeft | gestures.SwipeRight, 0, graphics.Offset{X: -150}, []gestures.SwipeDirection{gestures.SwipeLeft}},
		{"right", gestures.SwipeLeft | gestures.SwipeRight, 0, graphics.Offset{X: 150}, []gestures.SwipeDirection{gestures.SwipeRight}},
		{"down", gestures.SwipeDown, 0, graphics.Offset{Y: 120}, []gestures.SwipeDirection{gestures.SwipeDown}},
		{"below threshold", gestures.SwipeRight, 0, graphics.Offset{X: 80}, nil},
		{"custom threshold", gestures.SwipeRight, 50, graphics.Offset{X: 80}, []gestures.SwipeDirection{gestures.SwipeRight}},
		{"wrong direction", gestures.SwipeUp, 0, graphics.Offset{X: 150}, nil},
		{"left wins over up", gestures.SwipeLeft | gestures.SwipeUp, 0, graphics.Offset{X: -150, Y: -150}, []gestures.SwipeDirection{gestures.SwipeLeft}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []gestures.SwipeDirection
			swipe := &gestures.SwipeRecognizer{
				Direction: tt.direction,
				Threshold: tt.threshold,
				Swiped:    func(a *gestures.SwipedEventArgs) { got = append(got, a.Direction) },
			}
			tester := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindView, swipe))

			tester.Swipe(graphics.Offset{X: 200, Y: 200}, tt.total)

			if len(got) != len(tt.want) {
				t.Fatalf("swipes = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("swipe %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSwipe_TwoPointersIgnored(t *testing.T) {
	swiped := 0
	swipe := &gestures.SwipeRecognizer{
		Direction: gestures.SwipeRight,
		Swiped:    func(*gestures.SwipedEventArgs) { swiped++ },
	}
	tester := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindView, swipe))
	v := tester.View

	v.Press(1, graphics.Offset{})
	v.Press(2, graphics.Offset{})
	v.ManipulationStarted(graphics.Offset{})
	v.ManipulationDelta(graphics.Offset{}, platform.ManipulationDelta{Translation: graphics.Offset{X: 300}, Scale: 1}, platform.ManipulationDelta{Scale: 1})
	v.Release(1, graphics.Offset{})
	v.Release(2, graphics.Offset{})
	v.ManipulationCompleted(graphics.Offset{})

	if swiped != 0 {
		t.Errorf("two-finger swipe raised %d swipes", swiped)
	}
}

func TestSwipe_CanceledNotDetected(t *testing.T) {
	swiped := 0
	swipe := &gestures.SwipeRecognizer{
		Direction: gestures.SwipeRight,
		Swiped:    func(*gestures.SwipedEventArgs) { swiped++ },
	}
	tester := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindView, swipe))
	v := tester.View

	v.Press(1, graphics.Offset{})
	v.ManipulationStarted(graphics.Offset{})
	v.ManipulationDelta(graphics.Offset{}, platform.ManipulationDelta{Translation: graphics.Offset{X: 300}, Scale: 1}, platform.ManipulationDelta{Scale: 1})
	v.CancelPointer(1)

	if swiped != 0 {
		t.Errorf("canceled swipe raised %d swipes", swiped)
	}
}

func TestManipulation_CombinedRecognizers(t *testing.T) {
	pan, pans := panRecorder(0)
	swiped := 0
	swipe := &gestures.SwipeRecognizer{
		Direction: gestures.SwipeRight,
		Swiped:    func(*gestures.SwipedEventArgs) { swiped++ },
	}
	tester := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindView, pan, swipe))

	tester.Pan(graphics.Offset{}, graphics.Offset{X: 60}, graphics.Offset{X: 60})

	if swiped != 1 {
		t.Errorf("swipes = %d, want 1", swiped)
	}
	if len(*pans) != 3 {
		t.Errorf("pan updates = %d, want 3", len(*pans))
	}
}

func TestPointerRecognizer(t *testing.T) {
	type event struct {
		name string
		pos  graphics.Offset
	}
	var got []event
	record := func(name string) func(*gestures.PointerEventArgs) {
		return func(a *gestures.PointerEventArgs) {
			pos, _ := a.GetPosition(nil)
			got = append(got, event{name, pos})
		}
	}
	el := drifttest.NewFakeElement(core.KindView, &gestures.PointerRecognizer{
		PointerEntered: record("entered"),
		PointerExited:  record("exited"),
		PointerMoved:   record("moved"),
	})
	tester := drifttest.NewGestureTesterWithT(t, el)
	tester.View.SetTransform(graphics.TranslationTransform(100, 0))

	tester.View.Enter(1, graphics.Offset{X: 1})
	tester.View.Move(1, graphics.Offset{X: 2})
	tester.View.Exit(1, graphics.Offset{X: 3})

	want := []event{
		{"entered", graphics.Offset{X: 101}},
		{"moved", graphics.Offset{X: 102}},
		{"exited", graphics.Offset{X: 103}},
	}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}
