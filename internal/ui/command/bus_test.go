package command

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	prev := writeClipboard
	writeClipboard = fn
	t.Cleanup(func() { writeClipboard = prev })
}

func TestExecuteRunsHandler(t *testing.T) {
	bus := New()
	cmd := bus.Execute(Request{ID: "x", Label: "x", Handler: func() tea.Msg { return "done" }})
	if cmd == nil {
		t.Fatalf("expected command")
	}
	if msg := cmd(); msg != "done" {
		t.Fatalf("unexpected msg %v", msg)
	}
}

func TestExecuteSkipsMissingHandler(t *testing.T) {
	if msg := New().Execute(Request{ID: "noop"})(); msg != nil {
		t.Fatalf("expected nil msg, got %v", msg)
	}
}

func TestCopyTextReportsResult(t *testing.T) {
	var copied string
	stubClipboard(t, func(s string) error {
		copied = s
		return nil
	})
	msg := New().Execute(CopyText("path", "System/Time"))()
	res, ok := msg.(ResultMsg)
	if !ok {
		t.Fatalf("expected ResultMsg, got %T", msg)
	}
	if copied != "System/Time" || res.Err != nil || res.Info == "" {
		t.Fatalf("unexpected result %#v (copied %q)", res, copied)
	}
}

func TestCopyTextWrapsClipboardError(t *testing.T) {
	cause := errors.New("no clipboard utility")
	stubClipboard(t, func(string) error { return cause })
	res := New().Execute(CopyText("path", "a"))().(ResultMsg)
	if !errors.Is(res.Err, cause) {
		t.Fatalf("expected wrapped clipboard error, got %v", res.Err)
	}
}
