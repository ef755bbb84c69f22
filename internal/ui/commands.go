package ui

import (
	"github.com/atomicstack/debugmenu/internal/logging"
	"github.com/atomicstack/debugmenu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.ResultMsg)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		logging.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" {
		m.setInfo(result.Info)
	}
	return nil
}
