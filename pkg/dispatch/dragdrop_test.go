package dispatch_test

import (
	"errors"
	"net/url"
	"slices"
	"testing"

	"github.com/go-drift/handlers/pkg/core"
	"github.com/go-drift/handlers/pkg/dispatch"
	drifterrors "github.com/go-drift/handlers/pkg/errors"
	"github.com/go-drift/handlers/pkg/gestures"
	"github.com/go-drift/handlers/pkg/platform"
	drifttest "github.com/go-drift/handlers/pkg/testing"
)

func dragSource(t *testing.T, text string) *drifttest.GestureTester {
	t.Helper()
	return drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindLabel, &gestures.DragRecognizer{
		CanDrag:      true,
		DragStarting: func(a *gestures.DragStartingEventArgs) { a.Data.Text = text },
	}))
}

func TestDragStarting_Export(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		text2   string
		web     string
		app     string
		formats int
	}{
		{"plain text", "hello", "hello", "", "", 1},
		{"web link", "https://example.com/a", "", "https://example.com/a", "", 1},
		{"app link", "drift://items/4", "", "", "drift://items/4", 1},
		{"relative path", "items/4", "items/4", "", "", 1},
		{"blank", "  ", "", "", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := dragSource(t, tt.text).View.DragStarting()

			if ev.Cancel {
				t.Fatal("drag canceled")
			}
			if ev.AllowedOperations != platform.OperationCopy {
				t.Errorf("AllowedOperations = %v, want copy", ev.AllowedOperations)
			}
			if got, _ := ev.Data.Text(); got != tt.text2 {
				t.Errorf("Text() = %q, want %q", got, tt.text2)
			}
			if got := urlString(ev.Data.WebLink()); got != tt.web {
				t.Errorf("WebLink() = %q, want %q", got, tt.web)
			}
			if got := urlString(ev.Data.ApplicationLink()); got != tt.app {
				t.Errorf("ApplicationLink() = %q, want %q", got, tt.app)
			}
			if got := len(ev.Data.Formats()); got != tt.formats {
				t.Errorf("Formats() = %v, want %d entries", ev.Data.Formats(), tt.formats)
			}
		})
	}
}

func urlString(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}

func TestDragStarting_ImageView(t *testing.T) {
	tester := dragSource(t, "ignored")
	img, _ := url.Parse("file:///photos/cat.png")
	tester.View.SetImageURI(img)

	ev := tester.View.DragStarting()

	if got := urlString(ev.Data.Bitmap()); got != img.String() {
		t.Errorf("Bitmap() = %q, want %q", got, img)
	}
	if _, ok := ev.Data.Text(); ok {
		t.Error("image drag also exported text")
	}
}

func TestDragStarting_HandledSkipsExport(t *testing.T) {
	tester := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindLabel, &gestures.DragRecognizer{
		CanDrag: true,
		DragStarting: func(a *gestures.DragStartingEventArgs) {
			a.Data.Text = "hello"
			a.Handled = true
		},
	}))

	ev := tester.View.DragStarting()
	if n := len(ev.Data.Formats()); n != 0 {
		t.Errorf("handled drag exported %v", ev.Data.Formats())
	}
}

func TestDragStarting_Cancel(t *testing.T) {
	tests := []struct {
		name        string
		recognizers []gestures.Recognizer
	}{
		{"handler cancels", []gestures.Recognizer{&gestures.DragRecognizer{
			CanDrag:      true,
			DragStarting: func(a *gestures.DragStartingEventArgs) { a.Cancel = true },
		}}},
		{"later recognizer cannot drag", []gestures.Recognizer{
			&gestures.DragRecognizer{CanDrag: true},
			&gestures.DragRecognizer{CanDrag: false},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindView, tt.recognizers...))
			if ev := tester.View.DragStarting(); !ev.Cancel {
				t.Error("drag not canceled")
			}
		})
	}
}

func TestDragSource_FirstRecognizerDecides(t *testing.T) {
	el := drifttest.NewFakeElement(core.KindView,
		&gestures.DragRecognizer{CanDrag: false},
		&gestures.DragRecognizer{CanDrag: true},
	)
	tester := drifttest.NewGestureTesterWithT(t, el)

	if tester.View.CanDrag() {
		t.Error("CanDrag enabled although the first drag recognizer cannot drag")
	}
	if tester.View.CountFor(platform.EventDragStarting) != 0 {
		t.Error("DragStarting subscribed")
	}
}

func TestDragTo_DropAppliesText(t *testing.T) {
	source := dragSource(t, "hello")
	var result gestures.DataPackageOperation = -1
	source.Element.GestureRecognizers().Items()[0].(*gestures.DragRecognizer).DropCompleted = func(a *gestures.DropCompletedEventArgs) {
		result = a.DropResult
	}

	target := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindEntry, &gestures.DropRecognizer{AllowDrop: true}))
	if !target.View.AllowDrop() {
		t.Fatal("drop target not enabled")
	}

	source.DragTo(target)

	if target.Element.Text != "hello" {
		t.Errorf("target text = %q, want %q", target.Element.Text, "hello")
	}
	if result != gestures.OperationCopy {
		t.Errorf("DropResult = %v, want copy", result)
	}
}

func TestDragTo_PropertiesReachTarget(t *testing.T) {
	source := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindView, &gestures.DragRecognizer{
		CanDrag: true,
		DragStarting: func(a *gestures.DragStartingEventArgs) {
			a.Data.Properties["item"] = 7
		},
	}))

	var dropped *gestures.DataPackage
	var over []any
	target := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindView, &gestures.DropRecognizer{
		AllowDrop: true,
		DragOver:  func(a *gestures.DragEventArgs) { over = append(over, a.Data.Properties["item"]) },
		Drop: func(a *gestures.DropEventArgs) error {
			dropped = a.Data
			a.Handled = true
			return nil
		},
	}))

	source.DragTo(target)

	// DragEnter and DragOver are both reported as DragOver.
	if len(over) != 2 || over[0] != 7 || over[1] != 7 {
		t.Errorf("DragOver saw %v, want [7 7]", over)
	}
	if dropped == nil || dropped.Properties["item"] != 7 {
		t.Errorf("dropped package = %+v", dropped)
	}
}

func TestDragOver_Refused(t *testing.T) {
	source := dragSource(t, "hello")
	var result gestures.DataPackageOperation = -1
	source.Element.GestureRecognizers().Items()[0].(*gestures.DragRecognizer).DropCompleted = func(a *gestures.DropCompletedEventArgs) {
		result = a.DropResult
	}

	left := 0
	target := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindEntry, &gestures.DropRecognizer{
		AllowDrop: true,
		DragOver:  func(a *gestures.DragEventArgs) { a.AcceptedOperation = gestures.OperationNone },
		DragLeave: func(*gestures.DragEventArgs) { left++ },
	}))

	source.DragTo(target)

	if target.Element.Text != "" {
		t.Errorf("refused drop applied %q", target.Element.Text)
	}
	if left != 1 {
		t.Errorf("DragLeave called %d times, want 1", left)
	}
	if result != gestures.OperationNone {
		t.Errorf("DropResult = %v, want none", result)
	}
}

func TestDragOver_LaterRecognizerDisallows(t *testing.T) {
	target := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindView,
		&gestures.DropRecognizer{AllowDrop: true},
		&gestures.DropRecognizer{AllowDrop: false},
	))

	ev := target.View.DragOver(nil)
	if ev.AcceptedOperation != platform.OperationNone {
		t.Errorf("AcceptedOperation = %v, want none", ev.AcceptedOperation)
	}
}

func TestDragLeave_WritesBackOnlyChanges(t *testing.T) {
	tests := []struct {
		name  string
		leave func(*gestures.DragEventArgs)
		in    platform.DataPackageOperation
		want  platform.DataPackageOperation
	}{
		{"untouched copy", nil, platform.OperationCopy, platform.OperationCopy},
		{"refused", func(a *gestures.DragEventArgs) { a.AcceptedOperation = gestures.OperationNone }, platform.OperationCopy, platform.OperationNone},
		{"accepted", func(a *gestures.DragEventArgs) { a.AcceptedOperation = gestures.OperationCopy }, platform.OperationNone, platform.OperationCopy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindView, &gestures.DropRecognizer{
				AllowDrop: true,
				DragLeave: tt.leave,
			}))
			ev := &platform.DragEvent{
				RoutedEvent:       platform.RoutedEvent{Source: target.View},
				Data:              platform.NewDataPackage(),
				AcceptedOperation: tt.in,
			}
			target.View.Emit(platform.EventDragLeave, ev)
			if ev.AcceptedOperation != tt.want {
				t.Errorf("AcceptedOperation = %v, want %v", ev.AcceptedOperation, tt.want)
			}
		})
	}
}

func TestDrop_ExternalData(t *testing.T) {
	var got *gestures.DataPackage
	target := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindView, &gestures.DropRecognizer{
		AllowDrop: true,
		Drop: func(a *gestures.DropEventArgs) error {
			got = a.Data
			return nil
		},
	}))

	native := platform.NewDataPackage()
	link, _ := url.Parse("https://example.com")
	native.SetWebLink(link)
	img, _ := url.Parse("file:///a.png")
	native.SetBitmap(img)
	target.View.Drop(native)

	if got == nil {
		t.Fatal("Drop not called")
	}
	if got.Text != "https://example.com" || got.Image != "file:///a.png" {
		t.Errorf("imported package = %+v", got)
	}
}

func TestDrop_FailuresBecomeWarnings(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name string
		drop func(*gestures.DropEventArgs) error
		kind drifterrors.ErrorKind
	}{
		{"error", func(*gestures.DropEventArgs) error { return boom }, drifterrors.KindDrop},
		{"panic", func(*gestures.DropEventArgs) error { panic("drop exploded") }, drifterrors.KindPanic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := drifttest.InstallRecordingHandler(t)
			target := drifttest.NewGestureTesterWithT(t, drifttest.NewFakeElement(core.KindEntry, &gestures.DropRecognizer{
				AllowDrop: true,
				Drop:      tt.drop,
			}))

			target.View.Drop(nil)

			warnings := rec.Warnings()
			if len(warnings) != 1 {
				t.Fatalf("warnings = %d, want 1", len(warnings))
			}
			if warnings[0].Kind != tt.kind {
				t.Errorf("warning kind = %v, want %v", warnings[0].Kind, tt.kind)
			}
			if tt.kind == drifterrors.KindDrop && !errors.Is(warnings[0], boom) {
				t.Error("warning does not wrap the drop error")
			}
			var pe *drifterrors.PanicError
			if tt.kind == drifterrors.KindPanic && !errors.As(warnings[0], &pe) {
				t.Error("warning does not wrap a PanicError")
			}
			if len(rec.Errors()) != 0 || len(rec.Panics()) != 0 {
				t.Error("drop failure escalated beyond a warning")
			}
		})
	}
}

func TestDrop_RunsAsync(t *testing.T) {
	var queued []func()
	dropped := 0
	el := drifttest.NewFakeElement(core.KindView, &gestures.DropRecognizer{
		AllowDrop: true,
		Drop: func(*gestures.DropEventArgs) error {
			dropped++
			return nil
		},
	})
	target := drifttest.NewGestureTesterWithT(t, el, dispatch.WithAsync(func(fn func()) {
		queued = append(queued, fn)
	}))

	target.View.Drop(nil)
	if dropped != 0 {
		t.Fatal("drop ran on the input path")
	}
	if len(queued) != 1 {
		t.Fatalf("queued = %d, want 1", len(queued))
	}
	queued[0]()
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
}

func TestDrop_DefaultRunnerUsesUIThread(t *testing.T) {
	tests := []struct {
		name   string
		queued bool
	}{
		{"inline without dispatch", false},
		{"posted through dispatch", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(platform.ResetForTest)
			var queue []func()
			platform.RegisterDispatch(nil)
			if tt.queued {
				platform.RegisterDispatch(func(cb func()) { queue = append(queue, cb) })
			}

			var order []string
			drop := func(name string) *gestures.DropRecognizer {
				return &gestures.DropRecognizer{
					AllowDrop: true,
					Drop: func(*gestures.DropEventArgs) error {
						order = append(order, name)
						return nil
					},
				}
			}
			el := drifttest.NewFakeElement(core.KindEntry, drop("first"), drop("second"))
			view := drifttest.NewFakeView()
			d, err := dispatch.New(&drifttest.FakeHandler{Element: el, Platform: view})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			defer d.Dispose()

			native := platform.NewDataPackage()
			native.SetText("dropped")
			view.Drop(native)

			if tt.queued {
				if len(order) != 0 || el.Text != "" {
					t.Fatal("drop delivered before the UI thread ran it")
				}
				if len(queue) != 1 {
					t.Fatalf("queued tasks = %d, want 1", len(queue))
				}
				queue[0]()
			}
			if want := []string{"first", "second"}; !slices.Equal(order, want) {
				t.Errorf("delivery order = %v, want %v", order, want)
			}
			if el.Text != "dropped" {
				t.Errorf("element text = %q, want %q", el.Text, "dropped")
			}
		})
	}
}
