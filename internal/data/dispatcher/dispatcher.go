package dispatcher

import (
	"fmt"

	"github.com/atomicstack/debugmenu/internal/backend"
	"github.com/atomicstack/debugmenu/internal/state"
)

type Result struct {
	RuntimeUpdated  bool
	TerminalUpdated bool
	Err             error
}

type Dispatcher struct {
	runtime  state.RuntimeStore
	terminal state.TerminalStore
}

func New(r state.RuntimeStore, t state.TerminalStore) *Dispatcher {
	return &Dispatcher{runtime: r, terminal: t}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		res.Err = fmt.Errorf("%s sample: %w", evt.Kind, evt.Err)
		if evt.Kind == backend.KindTerminal {
			d.terminal.SetLastError(res.Err)
		}
		return res
	}
	switch evt.Kind {
	case backend.KindRuntime:
		if snapshot, ok := evt.Data.(backend.RuntimeSnapshot); ok {
			d.runtime.SetLatest(snapshot)
			res.RuntimeUpdated = true
		}
	case backend.KindTerminal:
		if snapshot, ok := evt.Data.(backend.TerminalSnapshot); ok {
			d.terminal.SetSnapshot(snapshot)
			res.TerminalUpdated = true
		}
	}
	return res
}
