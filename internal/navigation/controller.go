// Package navigation tracks which node the menu shows and defers switching
// to another node until the next frame tick.
package navigation

import (
	"github.com/atomicstack/debugmenu/internal/entry"
	"github.com/atomicstack/debugmenu/internal/imgui"
)

// Controller holds the current node and at most one pending target. The
// current node only changes inside Tick so a body that requests navigation
// keeps drawing for the rest of its frame.
type Controller struct {
	current    *entry.Node
	pending    *entry.Node
	content    imgui.Vec2
	breadcrumb imgui.Vec2
}

// New starts at root with nothing pending.
func New(root *entry.Node) *Controller {
	return &Controller{current: root}
}

// Request replaces the pending target. The last request before a tick wins.
func (c *Controller) Request(target *entry.Node) {
	if c == nil || target == nil {
		return
	}
	c.pending = target
}

// Tick commits the pending target and resets both scroll offsets. It reports
// whether a commit happened; once drained further calls do nothing.
func (c *Controller) Tick() bool {
	if c == nil || c.pending == nil {
		return false
	}
	c.current = c.pending
	c.pending = nil
	c.content = imgui.Vec2{}
	c.breadcrumb = imgui.Vec2{}
	return true
}

// Current returns the node being shown.
func (c *Controller) Current() *entry.Node {
	if c == nil {
		return nil
	}
	return c.current
}

// Pending returns the target waiting for the next tick, or nil.
func (c *Controller) Pending() *entry.Node {
	if c == nil {
		return nil
	}
	return c.pending
}

// Content returns the scroll offset of the body view.
func (c *Controller) Content() *imgui.Vec2 {
	if c == nil {
		return &imgui.Vec2{}
	}
	return &c.content
}

// Breadcrumb returns the horizontal scroll offset of the breadcrumb strip.
func (c *Controller) Breadcrumb() *imgui.Vec2 {
	if c == nil {
		return &imgui.Vec2{}
	}
	return &c.breadcrumb
}
