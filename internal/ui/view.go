package ui

import (
	"strings"
	"time"

	"github.com/atomicstack/debugmenu/internal/imgui"
	"github.com/atomicstack/debugmenu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

const infoDuration = 5 * time.Second

// layer adapts a rendered string to the tea.Model the compositor expects.
type layer string

func (l layer) Init() tea.Cmd                       { return nil }
func (l layer) Update(tea.Msg) (tea.Model, tea.Cmd) { return l, nil }
func (l layer) View() string                        { return string(l) }

// View composites the menu window over the background layer.
func (m *Model) View() string {
	if m.windowView == "" {
		return m.background
	}
	if m.background == "" {
		return m.windowView
	}
	pos := m.window.Pos
	return overlay.New(layer(m.windowView), layer(m.background), overlay.Left, overlay.Top, pos.X, pos.Y).View()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	sizeMsg, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = sizeMsg.Width
	m.height = sizeMsg.Height
	m.window.Constrain(imgui.Vec2{X: m.width, Y: m.height})
	events.Overlay.Resize(m.width, m.height)
	m.draw()
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoDuration)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

// blankLines returns h empty lines of width w.
func blankLines(w, h int) []string {
	lines := make([]string, max(h, 0))
	row := strings.Repeat(" ", max(w, 0))
	for i := range lines {
		lines[i] = row
	}
	return lines
}
