package gestures

// DataPackageOperation is the effect a drop has on the dragged data.
type DataPackageOperation int

const (
	OperationNone DataPackageOperation = iota
	OperationCopy
)

// DataPackage carries the data of a drag operation.
type DataPackage struct {
	Text string
	// Image is the source URI of a dragged image, if any.
	Image      string
	Properties map[string]any
}

// NewDataPackage returns an empty package ready for use.
func NewDataPackage() *DataPackage {
	return &DataPackage{Properties: make(map[string]any)}
}

// TextReceiver is implemented by views that accept dropped text when the
// drop is not handled by the app.
type TextReceiver interface {
	SetText(text string)
}

// ImageReceiver is implemented by views that accept dropped images when the
// drop is not handled by the app.
type ImageReceiver interface {
	SetImageSource(uri string)
}

// DragRecognizer makes a view a drag source.
type DragRecognizer struct {
	CanDrag       bool
	DragStarting  func(*DragStartingEventArgs)
	DropCompleted func(*DropCompletedEventArgs)
}

func (*DragRecognizer) Kind() Kind { return KindDrag }
func (*DragRecognizer) recognizer() {}

// SendDragStarting raises DragStarting and returns the arguments so the
// caller can read back the data, Handled and Cancel.
func (r *DragRecognizer) SendDragStarting(view View) *DragStartingEventArgs {
	args := &DragStartingEventArgs{Sender: view, Data: NewDataPackage()}
	if r.DragStarting != nil {
		r.DragStarting(args)
	}
	return args
}

// SendDropCompleted raises DropCompleted.
func (r *DragRecognizer) SendDropCompleted(args *DropCompletedEventArgs) {
	if r.DropCompleted != nil {
		r.DropCompleted(args)
	}
}

// DragStartingEventArgs lets a drag source fill the data package or cancel.
type DragStartingEventArgs struct {
	Sender View
	Data   *DataPackage
	// Handled suppresses the default export of Data to the platform.
	Handled bool
	Cancel  bool
}

// DropCompletedEventArgs reports the outcome of a drag to its source.
type DropCompletedEventArgs struct {
	DropResult DataPackageOperation
}

// DropRecognizer makes a view a drop target.
type DropRecognizer struct {
	AllowDrop bool
	DragOver  func(*DragEventArgs)
	DragLeave func(*DragEventArgs)
	// Drop is posted to the UI thread after the native drop event returns.
	Drop func(*DropEventArgs) error
}

func (*DropRecognizer) Kind() Kind { return KindDrop }
func (*DropRecognizer) recognizer() {}

func (r *DropRecognizer) SendDragOver(args *DragEventArgs) {
	if r.DragOver != nil {
		r.DragOver(args)
	}
}

func (r *DropRecognizer) SendDragLeave(args *DragEventArgs) {
	if r.DragLeave != nil {
		r.DragLeave(args)
	}
}

// SendDrop raises Drop. When the drop is left unhandled, text and image
// data are applied to view if it can receive them.
func (r *DropRecognizer) SendDrop(view View, args *DropEventArgs) error {
	if r.Drop != nil {
		if err := r.Drop(args); err != nil {
			return err
		}
	}
	if args.Handled || args.Data == nil {
		return nil
	}
	if args.Data.Image != "" {
		if recv, ok := view.(ImageReceiver); ok {
			recv.SetImageSource(args.Data.Image)
			return nil
		}
	}
	if args.Data.Text != "" {
		if recv, ok := view.(TextReceiver); ok {
			recv.SetText(args.Data.Text)
		}
	}
	return nil
}

// DragEventArgs is passed to drop targets while a drag hovers over them.
type DragEventArgs struct {
	Data *DataPackage
	// AcceptedOperation defaults to OperationCopy. Set OperationNone to refuse.
	AcceptedOperation DataPackageOperation
}

// NewDragEventArgs returns arguments that accept a copy by default.
func NewDragEventArgs(data *DataPackage) *DragEventArgs {
	return &DragEventArgs{Data: data, AcceptedOperation: OperationCopy}
}

// DropEventArgs is passed to drop targets when data is dropped.
type DropEventArgs struct {
	Data    *DataPackage
	Handled bool
}
