package errors

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LogHandler is an ErrorHandler that writes prefixed lines to a writer,
// stderr by default.
type LogHandler struct {
	// Verbose adds the error kind, the file path, and stack traces.
	Verbose bool

	// Output overrides the destination. Nil means os.Stderr.
	Output io.Writer
}

func (h *LogHandler) writer() io.Writer {
	if h.Output != nil {
		return h.Output
	}
	return os.Stderr
}

// HandleError writes one line per error, plus the stack trace in verbose
// mode.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	var sb strings.Builder
	if h.Verbose {
		fmt.Fprintf(&sb, "[designsystem error] %s [%s]", err.Op, err.Kind)
		if err.Path != "" {
			fmt.Fprintf(&sb, " path=%s", err.Path)
		}
		fmt.Fprintf(&sb, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(&sb, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(&sb, "[designsystem error] %s: %v\n", err.Op, err.Err)
	}
	io.WriteString(h.writer(), sb.String())
}

// HandlePanic writes one line per recovered panic, plus the stack trace
// in verbose mode.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	var sb strings.Builder
	if err.Op != "" {
		fmt.Fprintf(&sb, "[designsystem panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(&sb, "[designsystem panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(&sb, "Stack trace:\n%s\n", err.StackTrace)
	}
	io.WriteString(h.writer(), sb.String())
}
