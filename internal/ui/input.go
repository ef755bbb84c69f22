package ui

import (
	"unicode"

	"github.com/atomicstack/debugmenu/internal/imgui"
	"github.com/atomicstack/debugmenu/internal/logging/events"
	"github.com/atomicstack/debugmenu/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Toggle):
		m.setEnabled(!m.engine.Enabled(), "key")
		return nil
	}
	if !m.engine.Enabled() {
		return nil
	}
	if m.focus.Kind() == imgui.KindSlider {
		switch {
		case key.Matches(keyMsg, m.keys.Decrease):
			m.input.Adjust--
			return nil
		case key.Matches(keyMsg, m.keys.Increase):
			m.input.Adjust++
			return nil
		}
	}
	if m.atRoot() && m.handleTextInput(keyMsg) {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Next):
		m.focus.Move(1)
	case key.Matches(keyMsg, m.keys.Prev):
		m.focus.Move(-1)
	case key.Matches(keyMsg, m.keys.Activate):
		m.handleActivate()
	case key.Matches(keyMsg, m.keys.Escape):
		m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Back):
		m.engine.Back()
	case key.Matches(keyMsg, m.keys.Home):
		m.engine.Home()
	case key.Matches(keyMsg, m.keys.PageUp):
		m.scrollContent(imgui.Vec2{Y: -max(m.layout.body.H, 1)})
	case key.Matches(keyMsg, m.keys.PageDown):
		m.scrollContent(imgui.Vec2{Y: max(m.layout.body.H, 1)})
	case key.Matches(keyMsg, m.keys.Copy):
		return m.copyPath()
	}
	return nil
}

func (m *Model) atRoot() bool {
	return m.engine.Current().IsRoot()
}

// handleActivate triggers the focused widget. With nothing focused at the
// root, enter opens the best filter match.
func (m *Model) handleActivate() {
	index := m.engine.Filter()
	if m.focus.Index() < 0 && m.atRoot() && index.Active() {
		if best := index.Best(); best >= 0 {
			m.engine.Navigate(index.Results()[best])
		}
		return
	}
	m.input.Activate = true
}

func (m *Model) handleEscapeKey() {
	if !m.atRoot() {
		m.engine.Back()
		return
	}
	if m.engine.Filter().Clear() {
		m.focus.Reset()
		events.Filter.Cleared()
		return
	}
	m.setEnabled(false, "escape")
}

func (m *Model) setEnabled(enabled bool, source string) {
	if m.engine.Enabled() == enabled {
		return
	}
	m.engine.SetEnabled(enabled)
	m.window.Release()
	m.focus.Reset()
	events.Overlay.Toggle(m.engine.Enabled(), source)
}

func (m *Model) scrollContent(delta imgui.Vec2) {
	scroll := m.engine.Nav().Content()
	*scroll = scroll.Add(delta)
	if scroll.Y < 0 {
		scroll.Y = 0
	}
	if scroll.X < 0 {
		scroll.X = 0
	}
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	index := m.engine.Filter()
	if index == nil {
		return false
	}
	switch msg.String() {
	case "ctrl+u":
		if !index.Clear() {
			return false
		}
		m.noteFilterEdit()
		events.Filter.Cleared()
		return true
	case "ctrl+w":
		if !index.DeleteWordBackward() {
			return false
		}
		m.noteFilterEdit()
		events.Filter.WordBackspace(index.Query())
		return true
	case "ctrl+a":
		if !index.MoveStart() {
			return false
		}
		events.Filter.Cursor(index.Cursor())
		return true
	case "ctrl+e":
		if !index.MoveEnd() {
			return false
		}
		events.Filter.Cursor(index.Cursor())
		return true
	case "alt+b":
		if !index.MoveWordBackward() {
			return false
		}
		events.Filter.Cursor(index.Cursor())
		return true
	case "alt+f":
		if !index.MoveWordForward() {
			return false
		}
		events.Filter.Cursor(index.Cursor())
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !index.DeleteBackward() {
			return false
		}
		m.noteFilterEdit()
		events.Filter.Backspace(index.Query())
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyLeft:
		if !index.MoveRuneBackward() {
			return false
		}
		events.Filter.Cursor(index.Cursor())
		return true
	case tea.KeyRight:
		if !index.MoveRuneForward() {
			return false
		}
		events.Filter.Cursor(index.Cursor())
		return true
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	index := m.engine.Filter()
	if !index.Insert(text) {
		return false
	}
	m.noteFilterEdit()
	events.Filter.Append(index.Query())
	return true
}

func (m *Model) noteFilterEdit() {
	m.focus.Reset()
	m.forceClearInfo()
	m.errMsg = ""
}

// filterPrompt renders the search row with the caret at the filter cursor.
func (m *Model) filterPrompt() string {
	prompt := theme.Render(styles.FilterPrompt, "Filter: ")
	index := m.engine.Filter()
	text := index.Query()
	if text == "" {
		placeholder := []rune("type to search")
		return prompt + m.renderFilterCursor(string(placeholder[0])) +
			theme.Render(styles.FilterPlaceholder, string(placeholder[1:]))
	}
	runes := []rune(text)
	pos := index.Cursor()
	before := theme.Render(styles.Filter, string(runes[:pos]))
	caret := " "
	var after string
	if pos < len(runes) {
		caret = string(runes[pos])
		after = theme.Render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caret) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)
	return m.filterCursor.View()
}
