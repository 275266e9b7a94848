package gestures

import "sync/atomic"

// PanRecognizer recognizes translation with a fixed number of touch points.
type PanRecognizer struct {
	// TouchPoints is the number of pointers the pan requires. Zero means 1.
	TouchPoints int
	// PanUpdated is called for every phase of the pan.
	PanUpdated func(*PanUpdatedEventArgs)
}

func (*PanRecognizer) Kind() Kind { return KindPan }
func (*PanRecognizer) recognizer() {}

// RequiredTouchPoints returns the effective touch point count.
func (r *PanRecognizer) RequiredTouchPoints() int {
	if r.TouchPoints <= 0 {
		return 1
	}
	return r.TouchPoints
}

// SendPanStarted reports the start of pan session id.
func (r *PanRecognizer) SendPanStarted(view View, id int64) {
	r.send(&PanUpdatedEventArgs{Sender: view, Status: StatusStarted, GestureID: id})
}

// SendPan reports the cumulative translation of pan session id.
func (r *PanRecognizer) SendPan(view View, totalX, totalY float64, id int64) {
	r.send(&PanUpdatedEventArgs{Sender: view, Status: StatusRunning, GestureID: id, TotalX: totalX, TotalY: totalY})
}

// SendPanCompleted reports that pan session id ended normally.
func (r *PanRecognizer) SendPanCompleted(view View, id int64) {
	r.send(&PanUpdatedEventArgs{Sender: view, Status: StatusCompleted, GestureID: id})
}

// SendPanCanceled reports that pan session id was canceled.
func (r *PanRecognizer) SendPanCanceled(view View, id int64) {
	r.send(&PanUpdatedEventArgs{Sender: view, Status: StatusCanceled, GestureID: id})
}

func (r *PanRecognizer) send(args *PanUpdatedEventArgs) {
	if r.PanUpdated != nil {
		r.PanUpdated(args)
	}
}

// PanUpdatedEventArgs describes one phase of a pan.
type PanUpdatedEventArgs struct {
	Sender    View
	Status    GestureStatus
	GestureID int64
	TotalX    float64
	TotalY    float64
}

// PanSessionIDs hands out pan correlation ids. Every event of one pan
// carries the same id; the id advances when the pan completes or cancels.
type PanSessionIDs struct {
	current atomic.Int64
}

// DefaultPanSessionIDs is shared by every dispatcher that does not inject its
// own generator, so ids are unique across surfaces.
var DefaultPanSessionIDs = &PanSessionIDs{}

// Current returns the id of the pan in progress.
func (p *PanSessionIDs) Current() int64 {
	return p.current.Load()
}

// Increment advances to the next id and returns it.
func (p *PanSessionIDs) Increment() int64 {
	return p.current.Add(1)
}
