package engine

import (
	"sync"

	"github.com/atomicstack/debugmenu/internal/entry"
)

// Host hands out the engine created at startup. Before Start and after Stop
// it has no engine and registrations through it are dropped.
type Host struct {
	mu     sync.Mutex
	engine *Engine
}

var _ Registrar = (*Host)(nil)

// Start creates the engine, or returns the running one.
func (h *Host) Start(opts Options) *Engine {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.engine == nil {
		h.engine = New(opts)
	}
	return h.engine
}

// Engine returns the running engine or nil.
func (h *Host) Engine() *Engine {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.engine
}

// Stop closes and forgets the running engine.
func (h *Host) Stop() {
	if h == nil {
		return
	}
	h.mu.Lock()
	e := h.engine
	h.engine = nil
	h.mu.Unlock()
	e.Close()
}

// Register forwards to the running engine.
func (h *Host) Register(path string, render entry.RenderFunc) *entry.Node {
	return h.Engine().Register(path, render)
}

// Directory forwards to the running engine.
func (h *Host) Directory(path string) *entry.Node {
	return h.Engine().Directory(path)
}
