// Package imgui is a small immediate-mode widget layer for terminal cells.
//
// Every pass the caller rebuilds the whole UI: widgets are plain method calls
// on a Frame that return their interaction result directly (Button returns
// true when clicked). A Frame lays widgets out top to bottom, one line per
// widget or one line per Row, and hit-tests the pending click against the
// rectangle each widget occupies in the same pass. Frames are clipped to a
// viewport on screen and may be scrolled in both directions.
package imgui

import (
	"strings"

	"github.com/atomicstack/debugmenu/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

// Input carries the interaction gathered since the previous pass.
type Input struct {
	// Click is the screen cell of a left button press, nil when none.
	Click *Vec2
	// Activate triggers the focused widget.
	Activate bool
	// Adjust nudges the focused slider by whole steps.
	Adjust int
}

// Pass is one immediate-mode drawing pass. Frames created from the same pass
// share focus and input so a click is consumed at most once.
type Pass struct {
	focus     *Focus
	input     Input
	styles    *theme.Styles
	consumed  bool
	activated bool
	regions   []Rect
}

// Begin starts a pass. A nil focus registry or style set falls back to fresh
// defaults.
func Begin(focus *Focus, input Input, styles *theme.Styles) *Pass {
	if focus == nil {
		focus = NewFocus()
	}
	if styles == nil {
		styles = theme.Default()
	}
	focus.begin()
	return &Pass{focus: focus, input: input, styles: styles}
}

// Frame creates a drawing surface shown inside viewport (screen cells) with
// its content shifted by scroll.
func (p *Pass) Frame(viewport Rect, scroll Vec2) *Frame {
	return &Frame{pass: p, viewport: viewport, scroll: scroll}
}

// Styles exposes the style set used by the pass.
func (p *Pass) Styles() *theme.Styles {
	return p.styles
}

// Consumed reports whether a widget claimed the click.
func (p *Pass) Consumed() bool {
	return p.consumed
}

// Regions returns the visible screen rectangles of every interactive widget
// drawn during the pass.
func (p *Pass) Regions() []Rect {
	return p.regions
}

// End finishes the pass and publishes focus registrations for the next one.
func (p *Pass) End() {
	p.focus.end()
}

func (p *Pass) activate() bool {
	if !p.input.Activate || p.activated {
		return false
	}
	p.activated = true
	return true
}

// Frame accumulates the lines drawn by widgets for one viewport.
type Frame struct {
	pass     *Pass
	viewport Rect
	scroll   Vec2
	lines    []string
	width    int
	row      []string
	rowWidth int
	inRow    bool
}

// Viewport returns the screen rectangle the frame is shown in.
func (f *Frame) Viewport() Rect {
	return f.viewport
}

// Styles exposes the style set of the owning pass.
func (f *Frame) Styles() *theme.Styles {
	return f.pass.styles
}

// Row lays out every widget drawn by fn on a single line, separated by one
// space. Nested rows join the enclosing row.
func (f *Frame) Row(fn func()) {
	if fn == nil {
		return
	}
	if f.inRow {
		fn()
		return
	}
	f.inRow = true
	fn()
	f.inRow = false
	f.flush()
}

// Size returns the content extent drawn so far.
func (f *Frame) Size() Vec2 {
	f.flush()
	return Vec2{X: f.width, Y: len(f.lines)}
}

// Lines returns the drawn lines without clipping or padding.
func (f *Frame) Lines() []string {
	f.flush()
	return f.lines
}

// Clamp limits scroll so the viewport never runs past the content.
func (f *Frame) Clamp(scroll Vec2) Vec2 {
	size := f.Size()
	maxX := max(size.X-f.viewport.W, 0)
	maxY := max(size.Y-f.viewport.H, 0)
	scroll.X = min(max(scroll.X, 0), maxX)
	scroll.Y = min(max(scroll.Y, 0), maxY)
	return scroll
}

// Render returns exactly viewport.H lines, each viewport.W cells wide,
// showing the content shifted by scroll.
func (f *Frame) Render(scroll Vec2) string {
	f.flush()
	if f.viewport.H <= 0 {
		return ""
	}
	out := make([]string, f.viewport.H)
	for y := range out {
		var line string
		if idx := scroll.Y + y; idx >= 0 && idx < len(f.lines) && f.viewport.W > 0 {
			line = ansi.Cut(f.lines[idx], scroll.X, scroll.X+f.viewport.W)
		}
		out[y] = pad(line, f.viewport.W)
	}
	return strings.Join(out, "\n")
}

// Block returns the drawn lines padded to a common width, unclipped.
func (f *Frame) Block() string {
	f.flush()
	out := make([]string, len(f.lines))
	for i, line := range f.lines {
		out[i] = pad(line, f.width)
	}
	return strings.Join(out, "\n")
}

func (f *Frame) flush() {
	if len(f.row) == 0 {
		return
	}
	line := strings.Join(f.row, " ")
	f.row = f.row[:0]
	f.rowWidth = 0
	f.addLine(line)
}

func (f *Frame) addLine(line string) {
	if w := ansi.StringWidth(line); w > f.width {
		f.width = w
	}
	f.lines = append(f.lines, line)
}

// place puts text at the next layout slot and returns its content rectangle.
func (f *Frame) place(text string) Rect {
	w := ansi.StringWidth(text)
	if f.inRow {
		x := f.rowWidth
		if len(f.row) > 0 {
			x++
		}
		f.row = append(f.row, text)
		f.rowWidth = x + w
		return Rect{X: x, Y: len(f.lines), W: w, H: 1}
	}
	f.flush()
	r := Rect{X: 0, Y: len(f.lines), W: w, H: 1}
	f.addLine(text)
	return r
}

// interactive records the on-screen part of r as a clickable region.
func (f *Frame) interactive(r Rect) {
	screen := Rect{
		X: r.X - f.scroll.X + f.viewport.X,
		Y: r.Y - f.scroll.Y + f.viewport.Y,
		W: r.W,
		H: r.H,
	}
	if clipped := screen.Intersect(f.viewport); !clipped.Empty() {
		f.pass.regions = append(f.pass.regions, clipped)
	}
}

// hit consumes the pending click when it lands inside r and returns the
// click position in content coordinates.
func (f *Frame) hit(r Rect) (Vec2, bool) {
	click := f.pass.input.Click
	if click == nil || f.pass.consumed {
		return Vec2{}, false
	}
	if !f.viewport.Contains(*click) {
		return Vec2{}, false
	}
	p := click.Sub(f.viewport.Min()).Add(f.scroll)
	if !r.Contains(p) {
		return Vec2{}, false
	}
	f.pass.consumed = true
	return p, true
}

func pad(line string, width int) string {
	if n := width - ansi.StringWidth(line); n > 0 {
		return line + strings.Repeat(" ", n)
	}
	return line
}
