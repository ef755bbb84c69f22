package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/debugmenu/internal/canvas"
	"github.com/atomicstack/debugmenu/internal/engine"
	"github.com/atomicstack/debugmenu/internal/entry"
	"github.com/atomicstack/debugmenu/internal/imgui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestViewCompositesWindowOverScene(t *testing.T) {
	h := newTestHarness(t, true, "System/Time")
	lines := strings.Split(plainView(h), "\n")
	if len(lines) != 24 {
		t.Fatalf("expected full screen of lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "Debug") {
		t.Fatalf("expected window toolbar on row 1, got %q", lines[1])
	}
	if !strings.Contains(lines[23], "fps") {
		t.Fatalf("expected scene status on the last row, got %q", lines[23])
	}
}

func TestWindowShrinksToSmallScreen(t *testing.T) {
	h := newTestHarness(t, true, "System/Time")
	h.Send(tea.WindowSizeMsg{Width: 30, Height: 10})
	m := h.Model()
	if m.window.Size.X != 30 || m.window.Size.Y != 10 {
		t.Fatalf("expected window to fit screen, got %+v", m.window.Size)
	}
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.window.Size.X != testWidth || m.window.Size.Y != testHeight {
		t.Fatalf("expected desired size back, got %+v", m.window.Size)
	}
}

func TestFilterPromptShowsPlaceholderAndCaret(t *testing.T) {
	h := newTestHarness(t, true)
	m := h.Model()
	if got := ansi.Strip(m.filterPrompt()); got != "Filter: type to search" {
		t.Fatalf("unexpected empty prompt %q", got)
	}
	h.Type("abc")
	h.Key("left")
	if got := ansi.Strip(m.filterPrompt()); got != "Filter: abc" {
		t.Fatalf("unexpected prompt %q", got)
	}
	h.Key("ctrl+e")
	if got := ansi.Strip(m.filterPrompt()); got != "Filter: abc " {
		t.Fatalf("expected trailing caret cell, got %q", got)
	}
}

func TestBreadcrumbRowBelowRoot(t *testing.T) {
	h := newTestHarness(t, true, "System/Clock/Time")
	e := h.Model().Engine()
	e.Navigate(e.Directory("System/Clock"))
	h.Frame()
	row := strings.Split(ansi.Strip(h.Model().windowView), "\n")[2]
	if got := strings.Join(strings.Fields(strings.Trim(row, "│ ")), " "); got != "Debug > System > Clock" {
		t.Fatalf("unexpected breadcrumb row %q", row)
	}
}

func TestBreadcrumbHiddenWhenDisabled(t *testing.T) {
	e := engine.New(engine.Options{Enabled: true})
	e.Register("System/Clock/Time", nil)
	m := NewModel(Options{Engine: e, Width: testWidth, Height: testHeight})
	h := NewHarness(m)
	e.Navigate(e.Directory("System/Clock"))
	h.Frame()
	if strings.Contains(ansi.Strip(m.windowView), " > ") {
		t.Fatalf("breadcrumb should be hidden:\n%s", ansi.Strip(m.windowView))
	}
	if !m.layout.breadcrumb.Empty() {
		t.Fatalf("expected no breadcrumb region")
	}
}

func TestFooterShowsHelp(t *testing.T) {
	e := engine.New(engine.Options{Enabled: true})
	m := NewModel(Options{Engine: e, Canvas: canvas.New(), Width: 60, Height: testHeight, ShowFooter: true})
	view := ansi.Strip(m.windowView)
	if !strings.Contains(view, "tab next") {
		t.Fatalf("expected help footer:\n%s", view)
	}
}

func TestLongPanelBodyIsClipped(t *testing.T) {
	e := engine.New(engine.Options{Enabled: true})
	e.Register("Wide", func(f *imgui.Frame, _ *entry.Node) {
		f.Text(strings.Repeat("w", 200))
	})
	m := NewModel(Options{Engine: e, Width: testWidth, Height: testHeight})
	h := NewHarness(m)
	e.Navigate(e.Root().Children()[0])
	h.Frame()
	for i, line := range strings.Split(ansi.Strip(m.windowView), "\n") {
		if w := ansi.StringWidth(line); w != testWidth {
			t.Fatalf("line %d has width %d", i, w)
		}
	}
}
