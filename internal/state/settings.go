package state

const (
	MinTimeScale = 0.0
	MaxTimeScale = 4.0
	MinFPS       = 1
	MaxFPS       = 120
)

// Settings are the values the System panel edits and the scene reads.
type Settings struct {
	TimeScale float64
	TargetFPS int
	Paused    bool
}

// NewSettings returns settings running at normal speed and fps.
func NewSettings(fps int) *Settings {
	s := &Settings{TimeScale: 1}
	s.SetTargetFPS(fps)
	return s
}

// SetTargetFPS stores fps clamped to the supported range.
func (s *Settings) SetTargetFPS(fps int) {
	s.TargetFPS = min(max(fps, MinFPS), MaxFPS)
}

// EffectiveScale is the time scale applied to the scene, zero while paused.
func (s *Settings) EffectiveScale() float64 {
	if s == nil {
		return 1
	}
	if s.Paused {
		return 0
	}
	return min(max(s.TimeScale, MinTimeScale), MaxTimeScale)
}
