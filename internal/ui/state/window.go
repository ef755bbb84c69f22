package state

import "github.com/atomicstack/debugmenu/internal/imgui"

// DragMode says what a mouse drag started on the window does.
type DragMode int

const (
	DragNone DragMode = iota
	// DragMove moves the window.
	DragMove
	// DragScroll scrolls the window contents.
	DragScroll
)

func (m DragMode) String() string {
	switch m {
	case DragMove:
		return "move"
	case DragScroll:
		return "scroll"
	default:
		return "none"
	}
}

// DragState tracks one drag from press to release.
type DragState struct {
	Mode   DragMode
	Start  imgui.Vec2
	Origin imgui.Vec2
	Last   imgui.Vec2
}

// MinWindowSize is the smallest window the chrome can lay out.
var MinWindowSize = imgui.Vec2{X: 24, Y: 8}

// Window is the position and size of the menu window on screen, including
// its border.
type Window struct {
	Pos       imgui.Vec2
	Size      imgui.Vec2
	Desired   imgui.Vec2
	Draggable bool

	screen imgui.Vec2
	drag   DragState
}

// NewWindow returns a draggable window of the desired size at the origin.
func NewWindow(width, height int) *Window {
	size := imgui.Vec2{X: max(width, MinWindowSize.X), Y: max(height, MinWindowSize.Y)}
	return &Window{Size: size, Desired: size, Draggable: true}
}

// Rect returns the outer rectangle.
func (w *Window) Rect() imgui.Rect {
	return imgui.Rect{X: w.Pos.X, Y: w.Pos.Y, W: w.Size.X, H: w.Size.Y}
}

// Inner returns the rectangle inside the border.
func (w *Window) Inner() imgui.Rect {
	return imgui.Rect{X: w.Pos.X + 1, Y: w.Pos.Y + 1, W: max(w.Size.X-2, 0), H: max(w.Size.Y-2, 0)}
}

// TitleBar returns the region that moves the window when dragged: the top
// border and the toolbar row below it.
func (w *Window) TitleBar() imgui.Rect {
	return imgui.Rect{X: w.Pos.X, Y: w.Pos.Y, W: w.Size.X, H: 2}
}

// Constrain shrinks the window to fit screen and keeps it fully visible. A
// zero screen leaves the window untouched.
func (w *Window) Constrain(screen imgui.Vec2) {
	if screen.X <= 0 || screen.Y <= 0 {
		return
	}
	w.screen = screen
	w.Size.X = min(w.Desired.X, screen.X)
	w.Size.Y = min(w.Desired.Y, screen.Y)
	w.clampPos()
}

func (w *Window) clampPos() {
	if w.screen.X <= 0 || w.screen.Y <= 0 {
		return
	}
	w.Pos.X = min(max(w.Pos.X, 0), max(w.screen.X-w.Size.X, 0))
	w.Pos.Y = min(max(w.Pos.Y, 0), max(w.screen.Y-w.Size.Y, 0))
}

// Dragging returns the mode of the drag in progress.
func (w *Window) Dragging() DragMode {
	return w.drag.Mode
}

// Press starts a drag at p. Moves are ignored when the window is not
// draggable.
func (w *Window) Press(p imgui.Vec2, mode DragMode) {
	if !w.Draggable || mode == DragNone {
		w.drag = DragState{}
		return
	}
	w.drag = DragState{Mode: mode, Start: p, Origin: w.Pos, Last: p}
}

// Motion continues the drag to p. It returns the movement since the last
// motion event, which scroll drags apply to the content.
func (w *Window) Motion(p imgui.Vec2) imgui.Vec2 {
	if w.drag.Mode == DragNone {
		return imgui.Vec2{}
	}
	delta := p.Sub(w.drag.Last)
	w.drag.Last = p
	if w.drag.Mode == DragMove {
		w.Pos = w.drag.Origin.Add(p.Sub(w.drag.Start))
		w.clampPos()
	}
	return delta
}

// Release ends the drag and reports the mode it had.
func (w *Window) Release() DragMode {
	mode := w.drag.Mode
	w.drag = DragState{}
	return mode
}
