package panels

import (
	"fmt"
	"strings"

	"github.com/atomicstack/debugmenu/internal/engine"
	"github.com/atomicstack/debugmenu/internal/entry"
	"github.com/atomicstack/debugmenu/internal/format/table"
	"github.com/atomicstack/debugmenu/internal/imgui"
	"github.com/atomicstack/debugmenu/internal/state"
	"github.com/dustin/go-humanize"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// RegisterProfile adds the Profile panel showing Go runtime memory figures.
func RegisterProfile(r engine.Registrar, store state.RuntimeStore) *entry.Node {
	return r.Register("Profile", func(f *imgui.Frame, _ *entry.Node) {
		if store == nil {
			f.Muted("sampling disabled")
			return
		}
		snap, ok := store.Latest()
		if !ok {
			f.Muted("waiting for first sample")
			return
		}
		rows := [][]string{
			{"Heap Alloc", humanize.IBytes(snap.HeapAlloc)},
			{"Heap Sys", humanize.IBytes(snap.HeapSys)},
			{"Total Alloc", humanize.IBytes(snap.TotalAlloc)},
			{"Sys", humanize.IBytes(snap.Sys)},
			{"Goroutines", humanize.Comma(int64(snap.Goroutines))},
			{"GC Cycles", fmt.Sprint(snap.NumGC)},
			{"GC Pause", snap.PauseTotal.String()},
		}
		for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight}) {
			f.Label(line)
		}
		if history := store.HeapHistory(); len(history) > 1 {
			f.Space()
			f.Row(func() {
				f.Muted("heap")
				f.Text(sparkline(history))
			})
		}
	})
}

// sparkline scales samples between their minimum and maximum.
func sparkline(samples []uint64) string {
	if len(samples) == 0 {
		return ""
	}
	lo, hi := samples[0], samples[0]
	for _, s := range samples {
		lo = min(lo, s)
		hi = max(hi, s)
	}
	var b strings.Builder
	top := len(sparkBlocks) - 1
	for _, s := range samples {
		level := 0
		if hi > lo {
			level = int(float64(s-lo) / float64(hi-lo) * float64(top))
		}
		b.WriteRune(sparkBlocks[level])
	}
	return b.String()
}
