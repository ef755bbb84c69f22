package app

import (
	"errors"
	"time"

	"github.com/atomicstack/debugmenu/internal/backend"
	"github.com/atomicstack/debugmenu/internal/canvas"
	"github.com/atomicstack/debugmenu/internal/engine"
	"github.com/atomicstack/debugmenu/internal/logging/events"
	"github.com/atomicstack/debugmenu/internal/panels"
	"github.com/atomicstack/debugmenu/internal/state"
	"github.com/atomicstack/debugmenu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// MinWidth and MinHeight are the smallest window the chrome can lay out.
	MinWidth  = 24
	MinHeight = 8
)

// Config describes user-provided application options.
type Config struct {
	Width        int
	Height       int
	Columns      int
	RootName     string
	FPS          int
	Breadcrumb   bool
	Drag         bool
	Hidden       bool
	ShowFooter   bool
	Samples      bool
	PollInterval time.Duration
}

// Session is a built but not yet running program: the host owning the
// engine, the model, and the sampler feeding it.
type Session struct {
	Host    *engine.Host
	Model   *ui.Model
	Sampler *backend.Sampler
}

// Build starts an engine on host, registers the sample panels and creates
// the UI model. The sampler only runs when samples are enabled.
func Build(cfg Config, host *engine.Host) *Session {
	if host == nil {
		host = &engine.Host{}
	}
	e := host.Start(engine.Options{
		RootName: cfg.RootName,
		Columns:  cfg.Columns,
		Enabled:  !cfg.Hidden,
	})
	settings := state.NewSettings(cfg.FPS)
	runtimeStore := state.NewRuntimeStore()
	terminalStore := state.NewTerminalStore()
	c := canvas.New()

	var sampler *backend.Sampler
	if cfg.Samples {
		sampler = backend.NewSampler(cfg.PollInterval)
		panels.Register(host, panels.Deps{
			Settings: settings,
			Runtime:  runtimeStore,
			Terminal: terminalStore,
			Canvas:   c,
		})
	}

	model := ui.NewModel(ui.Options{
		Engine:     e,
		Canvas:     c,
		Settings:   settings,
		Sampler:    sampler,
		Runtime:    runtimeStore,
		Terminal:   terminalStore,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Breadcrumb: cfg.Breadcrumb,
		Draggable:  cfg.Drag,
	})
	return &Session{Host: host, Model: model, Sampler: sampler}
}

// Close stops the sampler and the engine.
func (s *Session) Close() {
	if s == nil {
		return
	}
	s.Sampler.Stop()
	s.Host.Stop()
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (err error) {
	session := Build(cfg, &engine.Host{})
	defer func() {
		session.Close()
		events.App.Stop(err)
	}()
	program := tea.NewProgram(session.Model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
