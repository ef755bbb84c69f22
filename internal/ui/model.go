package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/debugmenu/internal/backend"
	"github.com/atomicstack/debugmenu/internal/canvas"
	"github.com/atomicstack/debugmenu/internal/data/dispatcher"
	"github.com/atomicstack/debugmenu/internal/engine"
	"github.com/atomicstack/debugmenu/internal/imgui"
	"github.com/atomicstack/debugmenu/internal/state"
	"github.com/atomicstack/debugmenu/internal/theme"
	"github.com/atomicstack/debugmenu/internal/ui/command"
	uistate "github.com/atomicstack/debugmenu/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options wires the model to the engine and the services around it. Nil
// stores and settings are replaced with fresh ones.
type Options struct {
	Engine     *engine.Engine
	Canvas     *canvas.Canvas
	Settings   *state.Settings
	Sampler    *backend.Sampler
	Runtime    state.RuntimeStore
	Terminal   state.TerminalStore
	Width      int
	Height     int
	ShowFooter bool
	Breadcrumb bool
	Draggable  bool
}

// layout records where the chrome of the last pass was drawn so input that
// arrives before the next pass can be routed.
type layout struct {
	titleBar   imgui.Rect
	breadcrumb imgui.Rect
	body       imgui.Rect
}

// Model implements the Bubble Tea model hosting the debug menu overlay.
type Model struct {
	engine   *engine.Engine
	canvas   *canvas.Canvas
	settings *state.Settings
	window   *uistate.Window
	focus    *imgui.Focus
	scene    *scene
	keys     KeyMap
	help     help.Model

	width          int
	height         int
	showFooter     bool
	showBreadcrumb bool

	input      imgui.Input
	regions    []imgui.Rect
	layout     layout
	windowView string
	background string
	pending    []tea.Cmd
	dragCrumb  bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	backend        *backend.Sampler
	backendState   map[backend.Kind]error
	backendLastErr string
	runtime        state.RuntimeStore
	terminal       state.TerminalStore
	dispatcher     *dispatcher.Dispatcher
	bus            *command.Bus

	filterCursor  cursor.Model
	scheduleFrame func(time.Duration) tea.Cmd
	lastFrame     time.Time
	measuredFPS   float64

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI around an engine.
func NewModel(opts Options) *Model {
	if opts.Settings == nil {
		opts.Settings = state.NewSettings(30)
	}
	if opts.Runtime == nil {
		opts.Runtime = state.NewRuntimeStore()
	}
	if opts.Terminal == nil {
		opts.Terminal = state.NewTerminalStore()
	}
	window := uistate.NewWindow(opts.Width, opts.Height)
	window.Draggable = opts.Draggable
	m := &Model{
		engine:         opts.Engine,
		canvas:         opts.Canvas,
		settings:       opts.Settings,
		window:         window,
		focus:          imgui.NewFocus(),
		scene:          newScene(),
		keys:           DefaultKeyMap(),
		help:           help.New(),
		showFooter:     opts.ShowFooter,
		showBreadcrumb: opts.Breadcrumb,
		backend:        opts.Sampler,
		backendState:   map[backend.Kind]error{},
		runtime:        opts.Runtime,
		terminal:       opts.Terminal,
		dispatcher:     dispatcher.New(opts.Runtime, opts.Terminal),
		bus:            command.New(),
		scheduleFrame:  tickFrame,
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetMode(cursor.CursorStatic)
	c.SetChar(" ")
	c.Focus()
	m.filterCursor = c
	m.registerHandlers()
	m.step()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if cmd := m.nextFrame(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
		reflect.TypeOf(command.ResultMsg{}): m.handleResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(m.pending) > 0 {
		cmds = append(cmds, m.pending...)
		m.pending = nil
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Engine exposes the engine driven by the model.
func (m *Model) Engine() *engine.Engine {
	return m.engine
}
