package gestures

// SwipeDirection is a set of swipe directions.
type SwipeDirection int

const (
	SwipeRight SwipeDirection = 1 << iota
	SwipeLeft
	SwipeUp
	SwipeDown
)

// DefaultSwipeThreshold is the distance, in logical pixels, a swipe must
// travel when SwipeRecognizer.Threshold is zero.
const DefaultSwipeThreshold = 100

func (d SwipeDirection) String() string {
	switch d {
	case SwipeRight:
		return "Right"
	case SwipeLeft:
		return "Left"
	case SwipeUp:
		return "Up"
	case SwipeDown:
		return "Down"
	default:
		return "Mixed"
	}
}

// SwipeRecognizer recognizes a single-finger fling in one of Direction.
type SwipeRecognizer struct {
	Direction SwipeDirection
	Threshold float64
	Parameter any
	Swiped    func(*SwipedEventArgs)

	totalX float64
	totalY float64
}

func (*SwipeRecognizer) Kind() Kind { return KindSwipe }
func (*SwipeRecognizer) recognizer() {}

func (r *SwipeRecognizer) threshold() float64 {
	if r.Threshold <= 0 {
		return DefaultSwipeThreshold
	}
	return r.Threshold
}

// SendSwipe records the cumulative translation of the current swipe.
func (r *SwipeRecognizer) SendSwipe(view View, totalX, totalY float64) {
	r.totalX = totalX
	r.totalY = totalY
}

// DetectSwipe checks the recorded translation against direction and raises
// Swiped for the first matching direction. The recorded translation is
// cleared either way.
func (r *SwipeRecognizer) DetectSwipe(view View, direction SwipeDirection) bool {
	defer func() { r.totalX, r.totalY = 0, 0 }()

	t := r.threshold()
	var detected SwipeDirection
	switch {
	case direction&SwipeLeft != 0 && r.totalX < -t:
		detected = SwipeLeft
	case direction&SwipeRight != 0 && r.totalX > t:
		detected = SwipeRight
	case direction&SwipeUp != 0 && r.totalY < -t:
		detected = SwipeUp
	case direction&SwipeDown != 0 && r.totalY > t:
		detected = SwipeDown
	default:
		return false
	}
	if r.Swiped != nil {
		r.Swiped(&SwipedEventArgs{Sender: view, Parameter: r.Parameter, Direction: detected})
	}
	return true
}

// SwipedEventArgs describes a recognized swipe.
type SwipedEventArgs struct {
	Sender    View
	Parameter any
	Direction SwipeDirection
}
