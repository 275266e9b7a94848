package testing

import (
	"strings"
	"sync"
	"testing"

	"github.com/go-drift/handlers/pkg/errors"
)

// RecordingHandler is an errors.ErrorHandler that keeps everything reported
// to it. It is safe for concurrent use.
type RecordingHandler struct {
	mu       sync.Mutex
	errs     []*errors.HandlerError
	warnings []*errors.Warning
	panics   []*errors.PanicError
}

// InstallRecordingHandler sets a RecordingHandler as the global handler
// until the test ends.
func InstallRecordingHandler(t testing.TB) *RecordingHandler {
	h := &RecordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func (h *RecordingHandler) HandleError(err *errors.HandlerError) {
	h.mu.Lock()
	h.errs = append(h.errs, err)
	h.mu.Unlock()
}

func (h *RecordingHandler) HandleWarning(w *errors.Warning) {
	h.mu.Lock()
	h.warnings = append(h.warnings, w)
	h.mu.Unlock()
}

func (h *RecordingHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	h.panics = append(h.panics, err)
	h.mu.Unlock()
}

// Errors returns the reported errors.
func (h *RecordingHandler) Errors() []*errors.HandlerError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.HandlerError(nil), h.errs...)
}

// Warnings returns the reported warnings.
func (h *RecordingHandler) Warnings() []*errors.Warning {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.Warning(nil), h.warnings...)
}

// Panics returns the reported panics.
func (h *RecordingHandler) Panics() []*errors.PanicError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.PanicError(nil), h.panics...)
}

// WarningMessages returns the message of every warning, in order.
func (h *RecordingHandler) WarningMessages() []string {
	var out []string
	for _, w := range h.Warnings() {
		out = append(out, w.Message)
	}
	return out
}

// HasWarning reports whether any warning message contains substr.
func (h *RecordingHandler) HasWarning(substr string) bool {
	for _, msg := range h.WarningMessages() {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}
