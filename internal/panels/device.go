package panels

import (
	"fmt"
	"runtime"

	"github.com/atomicstack/debugmenu/internal/engine"
	"github.com/atomicstack/debugmenu/internal/entry"
	"github.com/atomicstack/debugmenu/internal/format/table"
	"github.com/atomicstack/debugmenu/internal/imgui"
	"github.com/atomicstack/debugmenu/internal/state"
	"github.com/atomicstack/debugmenu/internal/theme"
)

// RegisterDevice adds the Device panel describing the terminal and host.
func RegisterDevice(r engine.Registrar, terminal state.TerminalStore) *entry.Node {
	return r.Register("Device", func(f *imgui.Frame, _ *entry.Node) {
		rows := [][]string{
			{"os", runtime.GOOS + "/" + runtime.GOARCH},
			{"cpus", fmt.Sprint(runtime.NumCPU())},
			{"go", runtime.Version()},
		}
		if terminal != nil {
			snap := terminal.Snapshot()
			rows = append(rows,
				[]string{"terminal", fmt.Sprint(snap.IsTerminal)},
				[]string{"screen width", fmt.Sprint(snap.Width)},
				[]string{"screen height", fmt.Sprint(snap.Height)},
			)
		}
		for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight}) {
			f.Label(line)
		}
		if terminal != nil {
			if err := terminal.LastError(); err != nil {
				f.Text(theme.Render(f.Styles().Error, err.Error()))
			}
		}
	})
}
