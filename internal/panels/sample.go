package panels

import (
	"time"

	"github.com/atomicstack/debugmenu/internal/canvas"
	"github.com/atomicstack/debugmenu/internal/engine"
	"github.com/atomicstack/debugmenu/internal/entry"
	"github.com/atomicstack/debugmenu/internal/imgui"
)

// SamplePath is the deep directory the sample leaf hangs from.
const SamplePath = "Sample/Test1/Test2/Test3/Test4/Test5"

// RegisterSample adds a leaf five directories deep that prints its own
// breadcrumb.
func RegisterSample(r engine.Registrar) *entry.Node {
	r.Directory(SamplePath)
	return r.Register(SamplePath+"/Test", func(f *imgui.Frame, n *entry.Node) {
		f.Label(n.Name())
		f.Muted(n.Path())
	})
}

// AddClock draws the UTC and local time in the top left corner of the
// background.
func AddClock(c *canvas.Canvas, now func() time.Time) canvas.Handle {
	if now == nil {
		now = time.Now
	}
	return c.Add(func(f *imgui.Frame, _ imgui.Rect) {
		t := now()
		f.Label(t.UTC().Format(time.RFC3339))
		f.Muted(t.Local().Format("2006-01-02 15:04:05 MST"))
	})
}
