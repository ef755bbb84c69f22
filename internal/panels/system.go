package panels

import (
	"github.com/atomicstack/debugmenu/internal/engine"
	"github.com/atomicstack/debugmenu/internal/entry"
	"github.com/atomicstack/debugmenu/internal/imgui"
	"github.com/atomicstack/debugmenu/internal/state"
)

const (
	minTimeScale  = 0.1
	timeScaleStep = 0.1
)

// RegisterSystem adds the System panel editing the scene settings.
func RegisterSystem(r engine.Registrar, settings *state.Settings) *entry.Node {
	if settings == nil {
		return nil
	}
	return r.Register("System", func(f *imgui.Frame, _ *entry.Node) {
		f.SliderFloat("Time Scale", &settings.TimeScale, minTimeScale, state.MaxTimeScale, timeScaleStep)
		fps := settings.TargetFPS
		if f.SliderInt("Target FPS", &fps, state.MinFPS, state.MaxFPS) {
			settings.SetTargetFPS(fps)
		}
		f.Checkbox("Paused", &settings.Paused)
		f.Separator()
		f.Labelf("effective scale: %.2f", settings.EffectiveScale())
	})
}
