package dispatch

import (
	"net/url"
	"strings"

	"github.com/go-drift/handlers/pkg/errors"
	"github.com/go-drift/handlers/pkg/gestures"
	"github.com/go-drift/handlers/pkg/platform"
)

// packageKey is the native data property carrying the portable package
// from the drag source to the drop target.
const packageKey = "drift.gestures.package"

func (d *Dispatcher) onDragStarting(ev *platform.DragStartingEvent) {
	el := d.element
	if el == nil {
		return
	}
	if ev.Data == nil {
		ev.Data = platform.NewDataPackage()
	}
	if ev.Data.Properties == nil {
		ev.Data.Properties = make(map[string]any)
	}
	for _, r := range gestures.Of[*gestures.DragRecognizer](el.GestureRecognizers()) {
		if !r.CanDrag {
			ev.Cancel = true
			continue
		}

		args := r.SendDragStarting(el)
		ev.Data.Properties[packageKey] = args.Data
		if !args.Handled {
			d.exportData(args.Data, ev.Data)
		}
		ev.Cancel = args.Cancel
		ev.AllowedOperations = platform.OperationCopy
	}
}

// exportData publishes pkg in the native formats drop targets outside the
// app understand: the image of an image view, a link when the text is an
// absolute URI, or plain text.
func (d *Dispatcher) exportData(pkg *gestures.DataPackage, native *platform.DataPackage) {
	if img, ok := d.control.(platform.ImageSourceView); ok {
		if uri, ok := img.ImageURI(); ok {
			native.SetBitmap(uri)
			return
		}
	}

	text := pkg.Text
	if strings.TrimSpace(text) == "" {
		return
	}
	if u, err := url.Parse(text); err == nil && u.IsAbs() {
		if strings.HasPrefix(strings.ToLower(text), "http") {
			native.SetWebLink(u)
		} else {
			native.SetApplicationLink(u)
		}
		return
	}
	native.SetText(text)
}

// importData returns the portable package of a drag. Drags that did not
// start in this process get a package built from the native formats.
func importData(native *platform.DataPackage) *gestures.DataPackage {
	if native == nil {
		return gestures.NewDataPackage()
	}
	if pkg, ok := native.Properties[packageKey].(*gestures.DataPackage); ok {
		return pkg
	}
	pkg := gestures.NewDataPackage()
	if text, ok := native.Text(); ok {
		pkg.Text = text
	} else if u := native.WebLink(); u != nil {
		pkg.Text = u.String()
	} else if u := native.ApplicationLink(); u != nil {
		pkg.Text = u.String()
	}
	if u := native.Bitmap(); u != nil {
		pkg.Image = u.String()
	}
	return pkg
}

func toPortable(op platform.DataPackageOperation) gestures.DataPackageOperation {
	if op == platform.OperationNone {
		return gestures.OperationNone
	}
	return gestures.OperationCopy
}

func toNative(op gestures.DataPackageOperation) platform.DataPackageOperation {
	if op == gestures.OperationNone {
		return platform.OperationNone
	}
	return platform.OperationCopy
}

func (d *Dispatcher) onDragOver(ev *platform.DragEvent) {
	el := d.element
	if el == nil {
		return
	}
	args := gestures.NewDragEventArgs(importData(ev.Data))
	for _, r := range gestures.Of[*gestures.DropRecognizer](el.GestureRecognizers()) {
		if !r.AllowDrop {
			ev.AcceptedOperation = platform.OperationNone
			continue
		}
		r.SendDragOver(args)
		ev.AcceptedOperation = toNative(args.AcceptedOperation)
	}
}

func (d *Dispatcher) onDragLeave(ev *platform.DragEvent) {
	el := d.element
	if el == nil {
		return
	}
	args := gestures.NewDragEventArgs(importData(ev.Data))
	args.AcceptedOperation = toPortable(ev.AcceptedOperation)
	for _, r := range gestures.Of[*gestures.DropRecognizer](el.GestureRecognizers()) {
		if !r.AllowDrop {
			continue
		}
		before := args.AcceptedOperation
		r.SendDragLeave(args)
		// Leave the native operation alone unless the handler changed it.
		if args.AcceptedOperation != before {
			ev.AcceptedOperation = toNative(args.AcceptedOperation)
		}
	}
}

func (d *Dispatcher) onDrop(ev *platform.DragEvent) {
	el := d.element
	if el == nil {
		return
	}
	drops := gestures.Filter(el.GestureRecognizers(), func(r *gestures.DropRecognizer) bool {
		return r.AllowDrop
	})
	if len(drops) == 0 {
		return
	}
	args := &gestures.DropEventArgs{Data: importData(ev.Data)}
	// One task delivers to every recognizer in order; they share args.
	d.async(func() {
		for _, r := range drops {
			deliverDrop(r, el, args)
		}
	})
}

// deliverDrop runs one drop handler. Failures are logged as warnings and
// never reach the caller.
func deliverDrop(r *gestures.DropRecognizer, view gestures.View, args *gestures.DropEventArgs) {
	const op = "dispatch.deliverDrop"
	defer errors.RecoverAsWarning(op, errors.KindPanic, "drop handler panicked")

	if err := r.SendDrop(view, args); err != nil {
		errors.Warn(&errors.Warning{
			Op:      op,
			Kind:    errors.KindDrop,
			Message: "error sending drop event",
			Err:     err,
		})
	}
}

func (d *Dispatcher) onDropCompleted(ev *platform.DropCompletedEvent) {
	el := d.element
	if el == nil {
		return
	}
	args := &gestures.DropCompletedEventArgs{DropResult: toPortable(ev.Result)}
	for _, r := range gestures.Of[*gestures.DragRecognizer](el.GestureRecognizers()) {
		r.SendDropCompleted(args)
	}
}
