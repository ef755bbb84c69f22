package imgui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/atomicstack/debugmenu/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

const sliderTrackWidth = 16

type options struct {
	highlight bool
	width     int
}

// Option tweaks how a single widget is drawn.
type Option func(*options)

// Highlight draws a button with the emphasis style.
func Highlight() Option {
	return func(o *options) { o.highlight = true }
}

// MinWidth pads a button label to at least n cells.
func MinWidth(n int) Option {
	return func(o *options) { o.width = n }
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Text draws pre-styled text as is.
func (f *Frame) Text(text string) {
	f.place(text)
}

// Label draws text with the label style.
func (f *Frame) Label(text string) {
	f.place(theme.Render(f.pass.styles.Label, text))
}

// Labelf formats and draws a label.
func (f *Frame) Labelf(format string, args ...any) {
	f.Label(fmt.Sprintf(format, args...))
}

// Muted draws de-emphasised text.
func (f *Frame) Muted(text string) {
	f.place(theme.Render(f.pass.styles.Muted, text))
}

// Space draws an empty line.
func (f *Frame) Space() {
	f.place("")
}

// Separator draws a horizontal rule across the viewport.
func (f *Frame) Separator() {
	f.place(theme.Render(f.pass.styles.Separator, strings.Repeat("─", max(f.viewport.W, 0))))
}

// Button draws a button and returns true when it was clicked or activated
// from the keyboard while focused.
func (f *Frame) Button(label string, opts ...Option) bool {
	o := applyOptions(opts)
	idx := f.pass.focus.register(KindButton)
	focused := f.pass.focus.index == idx

	text := " " + label + " "
	if n := o.width - ansi.StringWidth(text); n > 0 {
		text += strings.Repeat(" ", n)
	}
	style := f.pass.styles.Button
	switch {
	case focused:
		style = f.pass.styles.FocusedButton
	case o.highlight:
		style = f.pass.styles.HighlightButton
	}
	r := f.place(theme.Render(style, text))
	f.interactive(r)

	if _, ok := f.hit(r); ok {
		f.pass.focus.index = idx
		return true
	}
	return focused && f.pass.activate()
}

// Checkbox draws a toggle and flips value when clicked. It reports whether
// the value changed.
func (f *Frame) Checkbox(label string, value *bool) bool {
	if value == nil {
		return false
	}
	mark := " "
	if *value {
		mark = "x"
	}
	if f.Button(fmt.Sprintf("[%s] %s", mark, label)) {
		*value = !*value
		return true
	}
	return false
}

// SliderFloat draws a horizontal slider and reports whether value changed.
// Clicking the track jumps to that position; left/right on a focused slider
// moves by step.
func (f *Frame) SliderFloat(label string, value *float64, minVal, maxVal, step float64) bool {
	if value == nil {
		return false
	}
	next, changed := f.slider(label, *value, minVal, maxVal, step, strconv.FormatFloat(*value, 'f', 2, 64))
	if changed {
		*value = next
	}
	return changed
}

// SliderInt is SliderFloat for whole numbers with a step of one.
func (f *Frame) SliderInt(label string, value *int, minVal, maxVal int) bool {
	if value == nil {
		return false
	}
	next, changed := f.slider(label, float64(*value), float64(minVal), float64(maxVal), 1, strconv.Itoa(*value))
	if changed {
		*value = int(math.Round(next))
	}
	return changed
}

func (f *Frame) slider(label string, v, minVal, maxVal, step float64, shown string) (float64, bool) {
	idx := f.pass.focus.register(KindSlider)
	focused := f.pass.focus.index == idx
	if maxVal < minVal {
		minVal, maxVal = maxVal, minVal
	}
	span := maxVal - minVal

	knob := 0
	if span > 0 {
		ratio := (math.Max(minVal, math.Min(maxVal, v)) - minVal) / span
		knob = int(math.Round(ratio * float64(sliderTrackWidth-1)))
	}

	styles := f.pass.styles
	labelStyle := styles.Label
	if focused {
		labelStyle = styles.FocusedButton
	}
	head := theme.Render(labelStyle, label) + " "
	headWidth := ansi.StringWidth(head)
	track := theme.Render(styles.SliderFill, strings.Repeat("━", knob)+"●") +
		theme.Render(styles.SliderTrack, strings.Repeat("─", sliderTrackWidth-1-knob))
	r := f.place(head + track + " " + shown)

	trackRect := Rect{X: r.X + headWidth, Y: r.Y, W: sliderTrackWidth, H: 1}
	f.interactive(trackRect)

	next := v
	moved := false
	if p, ok := f.hit(trackRect); ok {
		f.pass.focus.index = idx
		next = minVal + float64(p.X-trackRect.X)/float64(sliderTrackWidth-1)*span
		moved = true
	} else if focused && f.pass.input.Adjust != 0 {
		next = v + float64(f.pass.input.Adjust)*step
		moved = true
	}
	if !moved {
		return v, false
	}
	if step > 0 {
		next = minVal + math.Round((next-minVal)/step)*step
	}
	next = math.Max(minVal, math.Min(maxVal, next))
	return next, next != v
}
