package command

import (
	"fmt"

	"github.com/atomicstack/debugmenu/internal/logging/events"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler performs the work of a request off the update goroutine.
type Handler func() tea.Msg

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Handler
}

// ResultMsg reports the outcome of a request.
type ResultMsg struct {
	ID    string
	Label string
	Info  string
	Err   error
}

// Bus coordinates the execution of toolbar actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := req.Handler()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}

var writeClipboard = clipboard.WriteAll

// CopyText builds a request that places text on the system clipboard.
func CopyText(id, text string) Request {
	return Request{
		ID:    id,
		Label: "copy",
		Handler: func() tea.Msg {
			if err := writeClipboard(text); err != nil {
				return ResultMsg{ID: id, Label: "copy", Err: fmt.Errorf("copy %q: %w", text, err)}
			}
			return ResultMsg{ID: id, Label: "copy", Info: fmt.Sprintf("Copied %q", text)}
		},
	}
}
