package gestures

import "github.com/go-drift/handlers/pkg/graphics"

// PinchRecognizer recognizes two-finger scaling.
type PinchRecognizer struct {
	// PinchUpdated is called for every phase of the pinch.
	PinchUpdated func(*PinchUpdatedEventArgs)

	origin graphics.Offset
}

func (*PinchRecognizer) Kind() Kind { return KindPinch }
func (*PinchRecognizer) recognizer() {}

// SendPinchStarted reports the start of a pinch around origin. Origin is
// normalized to the view size, so (0.5, 0.5) is the center.
func (r *PinchRecognizer) SendPinchStarted(view View, origin graphics.Offset) {
	r.origin = origin
	r.send(&PinchUpdatedEventArgs{Sender: view, Status: StatusStarted, Scale: 1, ScaleOrigin: origin})
}

// SendPinch reports an incremental scale factor around origin.
func (r *PinchRecognizer) SendPinch(view View, scale float64, origin graphics.Offset) {
	r.origin = origin
	r.send(&PinchUpdatedEventArgs{Sender: view, Status: StatusRunning, Scale: scale, ScaleOrigin: origin})
}

// SendPinchEnded reports that the pinch completed.
func (r *PinchRecognizer) SendPinchEnded(view View) {
	r.send(&PinchUpdatedEventArgs{Sender: view, Status: StatusCompleted, Scale: 1, ScaleOrigin: r.origin})
}

// SendPinchCanceled reports that the pinch was canceled.
func (r *PinchRecognizer) SendPinchCanceled(view View) {
	r.send(&PinchUpdatedEventArgs{Sender: view, Status: StatusCanceled, Scale: 1, ScaleOrigin: r.origin})
}

func (r *PinchRecognizer) send(args *PinchUpdatedEventArgs) {
	if r.PinchUpdated != nil {
		r.PinchUpdated(args)
	}
}

// PinchUpdatedEventArgs describes one phase of a pinch.
type PinchUpdatedEventArgs struct {
	Sender View
	Status GestureStatus
	// Scale is the change since the previous update; 1 means unchanged.
	Scale       float64
	ScaleOrigin graphics.Offset
}
