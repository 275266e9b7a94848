package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestHandlerErrorString(t *testing.T) {
	err := &HandlerError{
		Op:   "test.operation",
		Kind: KindPlatform,
		Err:  &ParseError{Channel: "test", DataType: "TestData", Got: "invalid"},
	}
	if got := err.Error(); got == "" {
		t.Error("expected non-empty error string")
	}
}

func TestHandlerErrorWithChannel(t *testing.T) {
	err := &HandlerError{
		Op:      "test.operation",
		Kind:    KindParsing,
		Channel: "drift/gestures/7",
		Err:     &ParseError{Channel: "drift/gestures/7", DataType: "PointerEvent", Got: nil},
	}
	want := "channel=drift/gestures/7"
	if got := err.Error(); !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestHandlerErrorUnwrap(t *testing.T) {
	sentinel := stderrors.New("boom")
	err := &HandlerError{Op: "op", Err: sentinel}
	if !stderrors.Is(err, sentinel) {
		t.Error("expected errors.Is to find the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindPlatform, "platform"},
		{KindParsing, "parsing"},
		{KindConfig, "config"},
		{KindGesture, "gesture"},
		{KindDrop, "drop"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestWarningString(t *testing.T) {
	w := &Warning{Op: "dispatch.update", Kind: KindGesture, Message: "pinch is not supported"}
	want := "dispatch.update [gesture]: pinch is not supported"
	if got := w.Error(); got != want {
		t.Errorf("Warning.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "dispatch.deliverDrop"
	if got, want := err.Error(), "panic in dispatch.deliverDrop: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *HandlerError
	handler := &testHandler{onError: func(err *HandlerError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&HandlerError{
		Op:   "test.op",
		Kind: KindConfig,
		Err:  &ParseError{Channel: "test", DataType: "Test", Got: nil},
	})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestWarnf(t *testing.T) {
	var captured *Warning
	handler := &testHandler{onWarning: func(w *Warning) { captured = w }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Warnf("dispatch.update", KindGesture, "%s is not supported", "Pan")

	if captured == nil {
		t.Fatal("expected warning to be captured")
	}
	if captured.Message != "Pan is not supported" {
		t.Errorf("Message = %q", captured.Message)
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	oldHandler := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback got %v, want 42", got)
	}
}

func TestRecoverAsWarning(t *testing.T) {
	var warned *Warning
	panicked := false
	handler := &testHandler{
		onWarning: func(w *Warning) { warned = w },
		onPanic:   func(*PanicError) { panicked = true },
	}
	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer RecoverAsWarning("test.warning", KindDrop, "callback failed")
		panic("drop failed")
	}()

	if panicked {
		t.Error("panic reported as a panic, want a warning")
	}
	if warned == nil {
		t.Fatal("expected a warning")
	}
	if warned.Kind != KindDrop || warned.Message != "callback failed" {
		t.Errorf("warning = %+v", warned)
	}
	var pe *PanicError
	if !stderrors.As(warned, &pe) || pe.Value != "drop failed" || pe.StackTrace == "" {
		t.Errorf("warning does not wrap the panic: %v", warned.Err)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandlerWarning(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleWarning(&Warning{Op: "dispatch.update", Kind: KindGesture, Message: "swipe is not supported"})
	want := "[drift warning] dispatch.update: swipe is not supported\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogHandlerVerboseError(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf, Verbose: true}
	h.HandleError(&HandlerError{
		Op:      "platform.HandleEvent",
		Kind:    KindPlatform,
		Channel: "drift/gestures/3",
		ViewID:  3,
		Err:     stderrors.New("unregistered"),
	})
	out := buf.String()
	for _, want := range []string{"[platform]", "channel=drift/gestures/3", "view=3", "unregistered"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q should contain %q", out, want)
		}
	}
}

type testHandler struct {
	onError   func(*HandlerError)
	onWarning func(*Warning)
	onPanic   func(*PanicError)
}

func (h *testHandler) HandleError(err *HandlerError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandleWarning(w *Warning) {
	if h.onWarning != nil {
		h.onWarning(w)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
