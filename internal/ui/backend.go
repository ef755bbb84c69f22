package ui

import (
	"github.com/atomicstack/debugmenu/internal/backend"
	"github.com/atomicstack/debugmenu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(s *backend.Sampler) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-s.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	events.Backend.Stop("sampler")
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	res := m.dispatcher.Handle(evt)
	m.backendState[evt.Kind] = res.Err
	if res.Err != nil {
		m.backendLastErr = res.Err.Error()
		events.Backend.Error(evt.Kind.String(), res.Err)
		return
	}
	if warn, msg := m.hasBackendIssue(); warn {
		m.backendLastErr = msg
		return
	}
	m.backendLastErr = ""
}

func (m *Model) hasBackendIssue() (bool, string) {
	for _, kind := range []backend.Kind{backend.KindRuntime, backend.KindTerminal} {
		if err := m.backendState[kind]; err != nil {
			return true, err.Error()
		}
	}
	return false, ""
}
