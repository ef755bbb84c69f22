package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/debugmenu/internal/imgui"
	"github.com/atomicstack/debugmenu/internal/theme"
	"github.com/atomicstack/debugmenu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	closeButtonWidth = 3
	maxFrameGap      = 250 * time.Millisecond
)

type frameMsg struct {
	at time.Time
}

func tickFrame(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg{at: t}
	})
}

func (m *Model) frameInterval() time.Duration {
	fps := 30
	if m.settings != nil && m.settings.TargetFPS > 0 {
		fps = m.settings.TargetFPS
	}
	return time.Second / time.Duration(fps)
}

func (m *Model) nextFrame() tea.Cmd {
	if m.scheduleFrame == nil {
		return nil
	}
	return m.scheduleFrame(m.frameInterval())
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(frameMsg)
	if !ok {
		return nil
	}
	interval := m.frameInterval()
	dt := interval
	if !m.lastFrame.IsZero() && !frame.at.IsZero() {
		if gap := frame.at.Sub(m.lastFrame); gap > 0 && gap <= maxFrameGap {
			dt = gap
		}
	}
	if !frame.at.IsZero() {
		m.lastFrame = frame.at
	}
	if dt > 0 {
		fps := float64(time.Second) / float64(dt)
		if m.measuredFPS == 0 {
			m.measuredFPS = fps
		} else {
			m.measuredFPS = m.measuredFPS*0.9 + fps*0.1
		}
	}
	m.scene.advance(dt.Seconds()*m.settings.EffectiveScale(), m.width, m.sceneHeight())
	m.step()
	return m.nextFrame()
}

// step runs one frame: commit navigation, refresh the filter, then draw.
func (m *Model) step() {
	if m.engine.Enabled() {
		if m.engine.Tick() {
			m.focus.Reset()
		}
	}
	m.draw()
}

func (m *Model) draw() {
	input := m.input
	m.input = imgui.Input{}

	pass := imgui.Begin(m.focus, input, styles)
	if m.engine.Enabled() {
		m.windowView = m.drawWindow(pass)
	} else {
		m.windowView = ""
		m.layout = layout{}
	}
	pass.End()
	m.regions = pass.Regions()

	var click *imgui.Vec2
	if !pass.Consumed() {
		click = input.Click
	}
	m.background = m.drawBackground(imgui.Begin(nil, imgui.Input{Click: click}, styles))
}

func (m *Model) drawWindow(pass *imgui.Pass) string {
	e := m.engine
	inner := m.window.Inner()
	cur := e.Current()
	atRoot := cur.IsRoot()

	rows := make([]string, 0, inner.H)
	y := inner.Y
	nextRow := func(h int) imgui.Rect {
		r := imgui.Rect{X: inner.X, Y: y, W: inner.W, H: h}
		y += h
		return r
	}

	toolbar := nextRow(1)
	rows = append(rows, m.drawToolbar(pass, toolbar))
	m.layout = layout{titleBar: m.window.TitleBar()}

	if atRoot {
		rows = append(rows, m.drawSearch(pass, nextRow(1)))
	} else if m.showBreadcrumb {
		r := nextRow(1)
		m.layout.breadcrumb = r
		rows = append(rows, m.drawBreadcrumb(pass, r))
	}

	sep := pass.Frame(nextRow(1), imgui.Vec2{})
	sep.Separator()
	rows = append(rows, sep.Render(imgui.Vec2{}))

	reserved := 1
	if m.showFooter {
		reserved++
	}
	bodyH := max(inner.Y+inner.H-y-reserved, 1)
	body := nextRow(bodyH)
	m.layout.body = body
	rows = append(rows, m.drawBody(pass, body))

	rows = append(rows, m.drawStatus(pass, nextRow(1)))
	if m.showFooter {
		rows = append(rows, m.drawFooter(pass, nextRow(1)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if lines := strings.Split(content, "\n"); len(lines) > inner.H {
		content = strings.Join(lines[:inner.H], "\n")
	}
	return theme.Render(styles.Window, content)
}

func (m *Model) drawToolbar(pass *imgui.Pass, r imgui.Rect) string {
	e := m.engine
	cur := e.Current()

	left := pass.Frame(imgui.Rect{X: r.X, Y: r.Y, W: max(r.W-closeButtonWidth-1, 0), H: 1}, imgui.Vec2{})
	used := 0
	left.Row(func() {
		if !cur.IsRoot() {
			if left.Button("Back") {
				e.Back()
			}
			if left.Button("Home") {
				e.Home()
			}
			if left.Button("Copy") {
				if cmd := m.copyPath(); cmd != nil {
					m.pending = append(m.pending, cmd)
				}
			}
			used = 3 * (len(" Back ") + 1)
		}
		room := uint(max(left.Viewport().W-used, 1))
		left.Text(theme.Render(styles.Title, truncate.StringWithTail(cur.Name(), room, "…")))
	})

	closeRect := imgui.Rect{X: r.X + r.W - closeButtonWidth, Y: r.Y, W: closeButtonWidth, H: 1}
	closeFrame := pass.Frame(closeRect, imgui.Vec2{})
	if closeFrame.Button("x") {
		m.setEnabled(false, "close")
	}

	return left.Render(imgui.Vec2{}) + " " + closeFrame.Render(imgui.Vec2{})
}

func (m *Model) drawSearch(pass *imgui.Pass, r imgui.Rect) string {
	f := pass.Frame(r, imgui.Vec2{})
	index := m.engine.Filter()
	f.Row(func() {
		f.Text(m.filterPrompt())
		if index.Active() {
			f.Muted(fmt.Sprintf("(%d)", len(index.Results())))
		}
	})
	return f.Render(imgui.Vec2{})
}

func (m *Model) drawBreadcrumb(pass *imgui.Pass, r imgui.Rect) string {
	e := m.engine
	scroll := e.Nav().Breadcrumb()
	f := pass.Frame(r, *scroll)
	chain := e.Current().Breadcrumb()
	f.Row(func() {
		for _, n := range chain[:len(chain)-1] {
			if f.Button(n.Label().Text) {
				e.Navigate(n)
			}
			f.Muted(">")
		}
		f.Text(theme.Render(styles.BreadcrumbCurrent, chain[len(chain)-1].Label().Text))
	})
	*scroll = f.Clamp(imgui.Vec2{X: scroll.X})
	return f.Render(*scroll)
}

func (m *Model) drawBody(pass *imgui.Pass, r imgui.Rect) string {
	e := m.engine
	scroll := e.Nav().Content()
	f := pass.Frame(r, *scroll)
	e.Draw(f)
	*scroll = f.Clamp(*scroll)
	return f.Render(*scroll)
}

func (m *Model) drawStatus(pass *imgui.Pass, r imgui.Rect) string {
	f := pass.Frame(r, imgui.Vec2{})
	width := uint(max(r.W, 1))
	switch {
	case m.errMsg != "":
		f.Text(theme.Render(styles.Error, truncate.StringWithTail("Error: "+m.errMsg, width, "…")))
	case m.currentInfo() != "":
		f.Text(theme.Render(styles.Info, truncate.StringWithTail(m.currentInfo(), width, "…")))
	case m.backendLastErr != "":
		f.Text(theme.Render(styles.Error, truncate.StringWithTail("Sampler: "+m.backendLastErr, width, "…")))
	default:
		f.Muted(truncate.StringWithTail(m.hint(), width, "…"))
	}
	return f.Render(imgui.Vec2{})
}

func (m *Model) drawFooter(pass *imgui.Pass, r imgui.Rect) string {
	f := pass.Frame(r, imgui.Vec2{})
	m.help.Width = r.W
	f.Text(theme.Render(styles.Footer, m.help.ShortHelpView(m.keys.ShortHelp())))
	return f.Render(imgui.Vec2{})
}

func (m *Model) hint() string {
	if m.engine.Current().IsRoot() {
		return "type to filter · tab focus · F1 hide"
	}
	return "esc back · tab focus · F1 hide"
}

func (m *Model) copyPath() tea.Cmd {
	path := m.engine.Current().Path()
	if path == "" {
		return nil
	}
	return m.bus.Execute(command.CopyText("path", path))
}
