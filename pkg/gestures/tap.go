package gestures

import "github.com/go-drift/handlers/pkg/graphics"

// TapRecognizer recognizes single and multiple taps.
type TapRecognizer struct {
	// NumberOfTapsRequired is 1 for single taps and 2 for double taps.
	// Zero means 1.
	NumberOfTapsRequired int
	// Buttons selects the accepted pointer buttons. Zero means ButtonPrimary.
	Buttons ButtonsMask
	// Parameter is passed through to Tapped.
	Parameter any
	// Tapped is called when the tap is recognized.
	Tapped func(*TappedEventArgs)
}

func (*TapRecognizer) Kind() Kind { return KindTap }
func (*TapRecognizer) recognizer() {}

// TapsRequired returns the effective number of taps.
func (r *TapRecognizer) TapsRequired() int {
	if r.NumberOfTapsRequired <= 0 {
		return 1
	}
	return r.NumberOfTapsRequired
}

// AcceptedButtons returns the effective button mask.
func (r *TapRecognizer) AcceptedButtons() ButtonsMask {
	if r.Buttons == 0 {
		return ButtonPrimary
	}
	return r.Buttons
}

// SendTapped raises Tapped with view as the sender.
func (r *TapRecognizer) SendTapped(view View, pos PositionFunc) {
	if r.Tapped == nil {
		return
	}
	r.Tapped(&TappedEventArgs{
		Sender:    view,
		Parameter: r.Parameter,
		Buttons:   r.AcceptedButtons(),
		position:  pos,
	})
}

// TappedEventArgs describes a recognized tap.
type TappedEventArgs struct {
	Sender    View
	Parameter any
	Buttons   ButtonsMask
	position  PositionFunc
}

// GetPosition returns the tap position relative to view, or window
// coordinates when view is nil. The position is computed on demand.
func (a *TappedEventArgs) GetPosition(view View) (graphics.Offset, bool) {
	return resolve(a.position, view)
}
