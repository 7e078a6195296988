package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestLogHandlerTerse(t *testing.T) {
	var buf strings.Builder
	h := &LogHandler{Output: &buf}

	h.HandleError(&Error{
		Op:   "theme.LoadTokens",
		Kind: KindTokens,
		Path: "tokens.yaml",
		Err:  errors.New("no such file"),
	})

	got := buf.String()
	want := "[designsystem error] theme.LoadTokens: no such file\n"
	if got != want {
		t.Errorf("terse output = %q, want %q", got, want)
	}
}

func TestLogHandlerVerbose(t *testing.T) {
	var buf strings.Builder
	h := &LogHandler{Verbose: true, Output: &buf}

	h.HandleError(&Error{
		Op:         "theme.LoadTokens",
		Kind:       KindTokens,
		Path:       "tokens.yaml",
		Err:        errors.New("no such file"),
		StackTrace: "main.main\n\tmain.go:10\n",
	})

	got := buf.String()
	if !strings.HasPrefix(got, "[designsystem error] theme.LoadTokens [tokens] path=tokens.yaml: no such file\n") {
		t.Errorf("verbose output missing prefixed line: %q", got)
	}
	if !strings.Contains(got, "Stack trace:\nmain.main\n") {
		t.Errorf("verbose output missing stack trace: %q", got)
	}
}

func TestLogHandlerPanic(t *testing.T) {
	var buf strings.Builder
	h := &LogHandler{Output: &buf}

	h.HandlePanic(&PanicError{Op: "layout.FlushLayout", Value: "boom"})

	got := buf.String()
	want := "[designsystem panic] layout.FlushLayout: boom\n"
	if got != want {
		t.Errorf("panic output = %q, want %q", got, want)
	}
}

func TestLogHandlerPanicWithoutOp(t *testing.T) {
	var buf strings.Builder
	h := &LogHandler{Output: &buf}

	h.HandlePanic(&PanicError{Value: 42})

	got := buf.String()
	want := "[designsystem panic] 42\n"
	if got != want {
		t.Errorf("panic output = %q, want %q", got, want)
	}
}

func TestLogHandlerNilErrors(t *testing.T) {
	var buf strings.Builder
	h := &LogHandler{Output: &buf}

	h.HandleError(nil)
	h.HandlePanic(nil)

	if buf.Len() != 0 {
		t.Errorf("nil errors should write nothing, got %q", buf.String())
	}
}
