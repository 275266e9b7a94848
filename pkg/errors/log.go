package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that writes one line per report.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out receives the log lines. Nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// HandleError logs a HandlerError.
func (h *LogHandler) HandleError(err *HandlerError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[drift error] %s [%s]", err.Op, err.Kind)
		if err.Channel != "" {
			fmt.Fprintf(w, " channel=%s", err.Channel)
		}
		if err.ViewID != 0 {
			fmt.Fprintf(w, " view=%d", err.ViewID)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[drift error] %s: %v\n", err.Op, err.Err)
	}
}

// HandleWarning logs a Warning.
func (h *LogHandler) HandleWarning(warn *Warning) {
	if warn == nil {
		return
	}
	w := h.out()
	if h.Verbose && warn.Err != nil {
		fmt.Fprintf(w, "[drift warning] %s [%s]: %s: %v\n", warn.Op, warn.Kind, warn.Message, warn.Err)
		return
	}
	fmt.Fprintf(w, "[drift warning] %s: %s\n", warn.Op, warn.Message)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[drift panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[drift panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
