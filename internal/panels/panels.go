// Package panels registers the example debug panels that ship with the
// binary. Each panel only depends on engine.Registrar and the stores it reads.
package panels

import (
	"time"

	"github.com/atomicstack/debugmenu/internal/canvas"
	"github.com/atomicstack/debugmenu/internal/engine"
	"github.com/atomicstack/debugmenu/internal/state"
)

// Deps are the services the sample panels read and edit.
type Deps struct {
	Settings *state.Settings
	Runtime  state.RuntimeStore
	Terminal state.TerminalStore
	Canvas   *canvas.Canvas
	Now      func() time.Time
}

// Register adds every sample panel to r and the clock to the canvas.
func Register(r engine.Registrar, deps Deps) {
	if r == nil {
		return
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	RegisterSystem(r, deps.Settings)
	RegisterDevice(r, deps.Terminal)
	RegisterProfile(r, deps.Runtime)
	RegisterSample(r)
	AddClock(deps.Canvas, deps.Now)
}
