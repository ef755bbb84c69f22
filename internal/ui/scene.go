package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/atomicstack/debugmenu/internal/imgui"
	"github.com/atomicstack/debugmenu/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

const (
	sceneSpeed  = 12.0
	sceneBounce = 3.0
)

// scene is the animated backdrop behind the menu. It advances by scaled
// frame time so the System panel's time scale and pause are visible.
type scene struct {
	elapsed float64
	x       float64
	dir     float64
}

func newScene() *scene {
	return &scene{dir: 1}
}

func (s *scene) advance(dt float64, width, height int) {
	if s == nil || dt <= 0 {
		return
	}
	s.elapsed += dt
	limit := float64(width - 1)
	if limit <= 0 || height <= 0 {
		s.x = 0
		return
	}
	s.x += s.dir * sceneSpeed * dt
	for s.x < 0 || s.x > limit {
		if s.x > limit {
			s.x = 2*limit - s.x
			s.dir = -1
		}
		if s.x < 0 {
			s.x = -s.x
			s.dir = 1
		}
	}
}

// actor returns the cell of the bouncing marker above the ground row.
func (s *scene) actor(ground int) imgui.Vec2 {
	hop := int(math.Abs(math.Sin(s.elapsed*2)) * sceneBounce)
	return imgui.Vec2{X: int(math.Round(s.x)), Y: max(ground-1-hop, 0)}
}

// render returns height lines of width cells. The last line is left for the
// status text.
func (s *scene) render(width, height int) []string {
	lines := blankLines(width, height)
	if height < 2 || width <= 0 {
		return lines
	}
	ground := height - 2
	lines[ground] = theme.Render(styles.Scene, strings.Repeat("─", width))
	p := s.actor(ground)
	if p.X >= 0 && p.X < width && p.Y < ground {
		lines[p.Y] = strings.Repeat(" ", p.X) + theme.Render(styles.SceneActor, "●") + strings.Repeat(" ", width-p.X-1)
	}
	return lines
}

func (m *Model) sceneHeight() int {
	return m.height
}

func (m *Model) sceneStatus() string {
	state := fmt.Sprintf("t=%.1fs  x%.2f  %.0f/%d fps", m.scene.elapsed, m.settings.TimeScale, m.measuredFPS, m.settings.TargetFPS)
	if m.settings.Paused {
		state += "  PAUSED"
	}
	if !m.engine.Enabled() {
		state += "  (F1 or right click: menu)"
	}
	return state
}

// drawBackground renders the scene with the canvas callbacks on top of it.
func (m *Model) drawBackground(pass *imgui.Pass) string {
	defer pass.End()
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	lines := m.scene.render(m.width, m.height)
	lines[len(lines)-1] = fitLine(theme.Render(styles.SceneStatus, m.sceneStatus()), m.width)

	screen := imgui.Rect{W: m.width, H: m.height}
	hud := pass.Frame(screen, imgui.Vec2{})
	m.canvas.Draw(hud, screen)
	for i, line := range hud.Lines() {
		if i >= len(lines)-1 {
			break
		}
		lines[i] = fitLine(line, m.width)
	}
	return strings.Join(lines, "\n")
}

// fitLine cuts or pads line to exactly width cells.
func fitLine(line string, width int) string {
	line = ansi.Truncate(line, width, "")
	if n := width - ansi.StringWidth(line); n > 0 {
		line += strings.Repeat(" ", n)
	}
	return line
}
