// Package testing provides test doubles for gesture dispatch.
//
// # Quick Start
//
// Build an element, bind it with a tester, and drive native input:
//
//	func TestTap(t *testing.T) {
//	    var taps int
//	    el := drifttest.NewFakeElement(core.KindView, &gestures.TapRecognizer{
//	        Tapped: func(*gestures.TappedEventArgs) { taps++ },
//	    })
//	    tester := drifttest.NewGestureTesterWithT(t, el)
//
//	    tester.Tap(graphics.Offset{X: 10, Y: 10})
//
//	    if taps != 1 {
//	        t.Errorf("taps = %d, want 1", taps)
//	    }
//	}
//
// # Fakes
//
// [FakeView] is an in-memory native view. It records the properties the
// dispatcher sets and counts live subscriptions, so leaks show up as a
// non-zero [FakeView.SubscriptionCount] after Dispose. [FakeElement] is a
// portable element with optional children, and [RecordingHandler] captures
// reported warnings and errors.
package testing
