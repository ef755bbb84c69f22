package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/debugmenu/internal/backend"
	"github.com/atomicstack/debugmenu/internal/canvas"
	"github.com/atomicstack/debugmenu/internal/engine"
	"github.com/atomicstack/debugmenu/internal/imgui"
	"github.com/atomicstack/debugmenu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// The test window is 40x12 at the origin: toolbar on row 1, search or
// breadcrumb on row 2, separator on row 3, body on rows 4-9, status on 10.
const (
	testWidth  = 40
	testHeight = 12
	bodyTop    = 4
)

var errTest = errors.New("test error")

func newTestHarness(t *testing.T, enabled bool, paths ...string) *Harness {
	t.Helper()
	e := engine.New(engine.Options{Enabled: enabled})
	for _, p := range paths {
		e.Register(p, nil)
	}
	m := NewModel(Options{
		Engine:     e,
		Canvas:     canvas.New(),
		Width:      testWidth,
		Height:     testHeight,
		Breadcrumb: true,
		Draggable:  true,
	})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 80, Height: 24})
	h.Frame()
	return h
}

func plainView(h *Harness) string {
	return ansi.Strip(h.View())
}

func currentName(h *Harness) string {
	return h.Model().Engine().Current().Name()
}

func TestNewModelDrawsRootDirectory(t *testing.T) {
	h := newTestHarness(t, true, "System/Time", "Profile/Heap")
	view := plainView(h)
	for _, want := range []string{"Debug", "Filter:", "System", "Profile"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestWindowFitsDesiredSize(t *testing.T) {
	h := newTestHarness(t, true, "System/Time")
	lines := strings.Split(ansi.Strip(h.Model().windowView), "\n")
	if len(lines) != testHeight {
		t.Fatalf("expected %d window lines, got %d", testHeight, len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != testWidth {
			t.Fatalf("line %d width %d, want %d: %q", i, w, testWidth, line)
		}
	}
}

func TestHiddenOverlayShowsBackgroundOnly(t *testing.T) {
	h := newTestHarness(t, false, "System/Time")
	if strings.Contains(plainView(h), "Filter:") {
		t.Fatalf("hidden overlay should not draw the window")
	}
	h.Key("f1")
	h.Frame()
	if !strings.Contains(plainView(h), "Filter:") {
		t.Fatalf("expected window after toggle:\n%s", plainView(h))
	}
}

func TestClickNavigatesOnNextFrame(t *testing.T) {
	h := newTestHarness(t, true, "System/Time", "Profile/Heap")
	h.Click(2, bodyTop)
	if currentName(h) != "Debug" {
		t.Fatalf("navigation must wait for a frame, got %q", currentName(h))
	}
	h.Frame()
	if currentName(h) != "Debug" {
		t.Fatalf("request should commit on the following tick, got %q", currentName(h))
	}
	h.Frame()
	if currentName(h) != "System" {
		t.Fatalf("expected System, got %q", currentName(h))
	}
	view := plainView(h)
	if !strings.Contains(view, "Time") || !strings.Contains(view, "Back") {
		t.Fatalf("expected System directory with toolbar:\n%s", view)
	}
}

func TestBreadcrumbButtonNavigatesToAncestor(t *testing.T) {
	h := newTestHarness(t, true, "System/Clock/Time")
	e := h.Model().Engine()
	e.Navigate(e.Directory("System/Clock"))
	h.Frame()
	h.Frame()
	if currentName(h) != "Clock" {
		t.Fatalf("expected Clock, got %q", currentName(h))
	}
	// Breadcrumb row: " Debug " > " System " > Clock
	h.Click(2, 2)
	h.Frame()
	h.Frame()
	if !e.Current().IsRoot() {
		t.Fatalf("expected root after breadcrumb click, got %q", currentName(h))
	}
}

func TestCloseButtonHidesOverlay(t *testing.T) {
	h := newTestHarness(t, true, "System/Time")
	h.Click(testWidth-3, 1)
	h.Frame()
	if h.Model().Engine().Enabled() {
		t.Fatalf("close button should hide the overlay")
	}
}

func TestPausedSceneDoesNotAdvance(t *testing.T) {
	h := newTestHarness(t, true)
	m := h.Model()
	m.settings.Paused = true
	start := m.scene.elapsed
	now := time.Now()
	h.Send(frameMsg{at: now})
	h.Send(frameMsg{at: now.Add(50 * time.Millisecond)})
	if m.scene.elapsed != start {
		t.Fatalf("paused scene advanced from %v to %v", start, m.scene.elapsed)
	}
	m.settings.Paused = false
	m.settings.TimeScale = 2
	h.Send(frameMsg{at: now.Add(100 * time.Millisecond)})
	if got := m.scene.elapsed - start; got < 0.099 || got > 0.101 {
		t.Fatalf("expected 0.1s of scaled time, got %v", got)
	}
}

func TestCanvasDrawsWhileHidden(t *testing.T) {
	h := newTestHarness(t, false)
	h.Model().canvas.Add(func(f *imgui.Frame, area imgui.Rect) {
		f.Text("HUD ok")
	})
	h.Frame()
	if !strings.Contains(plainView(h), "HUD ok") {
		t.Fatalf("expected canvas output:\n%s", plainView(h))
	}
}

func TestBackendEventsUpdateStores(t *testing.T) {
	h := newTestHarness(t, true)
	m := h.Model()
	h.Send(backendEventMsg{event: backend.Event{
		Kind: backend.KindRuntime,
		Data: backend.RuntimeSnapshot{HeapAlloc: 42},
	}})
	snap, ok := m.runtime.Latest()
	if !ok || snap.HeapAlloc != 42 {
		t.Fatalf("expected runtime snapshot, got %+v (%v)", snap, ok)
	}

	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindTerminal, Err: errTest}})
	if !strings.Contains(m.backendLastErr, "terminal sample") {
		t.Fatalf("expected sampler error, got %q", m.backendLastErr)
	}
	h.Send(backendEventMsg{event: backend.Event{
		Kind: backend.KindTerminal,
		Data: backend.TerminalSnapshot{Width: 80, Height: 24},
	}})
	if m.backendLastErr != "" {
		t.Fatalf("expected error to clear, got %q", m.backendLastErr)
	}
	if got := m.terminal.Snapshot(); got.Width != 80 {
		t.Fatalf("expected terminal snapshot, got %+v", got)
	}
}

func TestBackendDoneStopsWaiting(t *testing.T) {
	s := backend.NewSampler(time.Hour)
	m := NewModel(Options{Engine: engine.New(engine.Options{}), Sampler: s})
	h := NewHarness(m)
	h.Send(backendDoneMsg{})
	if m.backend != nil {
		t.Fatalf("expected sampler to be dropped")
	}
	s.Stop()
	s.Wait()
}

func TestResultMessagesReachStatusLine(t *testing.T) {
	h := newTestHarness(t, true)
	m := h.Model()
	h.Send(command.ResultMsg{ID: "path", Info: "Copied \"System\""})
	if m.currentInfo() == "" {
		t.Fatalf("expected info message")
	}
	h.Send(command.ResultMsg{ID: "path", Err: errTest})
	if m.errMsg == "" || m.currentInfo() != "" {
		t.Fatalf("expected error to replace info, got err=%q info=%q", m.errMsg, m.currentInfo())
	}
	h.Frame()
	if !strings.Contains(plainView(h), "Error:") {
		t.Fatalf("expected error in status line:\n%s", plainView(h))
	}
}

func TestNilStoresAreCreated(t *testing.T) {
	m := NewModel(Options{})
	if m.settings == nil || m.runtime == nil || m.terminal == nil {
		t.Fatalf("expected defaults for settings and stores")
	}
	if m.View() != "" {
		t.Fatalf("model without engine or screen should render nothing, got %q", m.View())
	}
}
