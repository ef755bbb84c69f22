package ui

import (
	"github.com/atomicstack/debugmenu/internal/imgui"
	"github.com/atomicstack/debugmenu/internal/logging/events"
	uistate "github.com/atomicstack/debugmenu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const wheelStep = 3

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	p := imgui.Vec2{X: mouse.X, Y: mouse.Y}

	if mouse.Action == tea.MouseActionPress && mouse.Button == tea.MouseButtonRight {
		m.setEnabled(!m.engine.Enabled(), "mouse")
		return nil
	}
	if !m.engine.Enabled() {
		if mouse.Action == tea.MouseActionPress && mouse.Button == tea.MouseButtonLeft {
			m.input.Click = &p
		}
		return nil
	}

	switch mouse.Action {
	case tea.MouseActionPress:
		switch mouse.Button {
		case tea.MouseButtonWheelUp:
			if m.window.Rect().Contains(p) {
				m.scrollContent(imgui.Vec2{Y: -wheelStep})
			}
		case tea.MouseButtonWheelDown:
			if m.window.Rect().Contains(p) {
				m.scrollContent(imgui.Vec2{Y: wheelStep})
			}
		case tea.MouseButtonLeft:
			m.input.Click = &p
			m.dragCrumb = m.layout.breadcrumb.Contains(p)
			m.window.Press(p, m.dragModeAt(p))
		}
	case tea.MouseActionMotion:
		mode := m.window.Dragging()
		if mode == uistate.DragNone {
			return nil
		}
		delta := m.window.Motion(p)
		if delta.IsZero() {
			return nil
		}
		if mode == uistate.DragScroll {
			m.dragScroll(delta)
		}
		events.Overlay.Drag(mode.String(), m.window.Pos.X, m.window.Pos.Y)
	case tea.MouseActionRelease:
		m.window.Release()
	}
	return nil
}

// dragModeAt decides what a press at p drags. Presses on a widget only
// click it.
func (m *Model) dragModeAt(p imgui.Vec2) uistate.DragMode {
	for _, r := range m.regions {
		if r.Contains(p) {
			return uistate.DragNone
		}
	}
	switch {
	case m.layout.titleBar.Contains(p):
		return uistate.DragMove
	case m.layout.breadcrumb.Contains(p), m.layout.body.Contains(p):
		return uistate.DragScroll
	}
	return uistate.DragNone
}

// dragScroll moves the content so it follows the pointer.
func (m *Model) dragScroll(delta imgui.Vec2) {
	if m.dragCrumb {
		crumb := m.engine.Nav().Breadcrumb()
		crumb.X = max(crumb.X-delta.X, 0)
		return
	}
	m.scrollContent(imgui.Vec2{X: -delta.X, Y: -delta.Y})
}
