// Package canvas keeps draw callbacks that run every frame on the layer
// behind the menu window, whether or not the menu is shown.
package canvas

import "github.com/atomicstack/debugmenu/internal/imgui"

// DrawFunc paints into f. area is the full screen rectangle.
type DrawFunc func(f *imgui.Frame, area imgui.Rect)

// Handle identifies a callback added to a Canvas.
type Handle int

type callback struct {
	handle Handle
	draw   DrawFunc
}

// Canvas is an ordered list of draw callbacks.
type Canvas struct {
	next      Handle
	callbacks []callback
}

// New returns an empty canvas.
func New() *Canvas {
	return &Canvas{}
}

// Add appends fn and returns the handle that removes it again.
func (c *Canvas) Add(fn DrawFunc) Handle {
	if c == nil || fn == nil {
		return 0
	}
	c.next++
	c.callbacks = append(c.callbacks, callback{handle: c.next, draw: fn})
	return c.next
}

// Remove detaches the callback added under h.
func (c *Canvas) Remove(h Handle) bool {
	if c == nil {
		return false
	}
	for i, cb := range c.callbacks {
		if cb.handle == h {
			c.callbacks = append(c.callbacks[:i], c.callbacks[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every callback.
func (c *Canvas) Clear() {
	if c == nil {
		return
	}
	c.callbacks = nil
}

// Len returns the number of callbacks.
func (c *Canvas) Len() int {
	if c == nil {
		return 0
	}
	return len(c.callbacks)
}

// Draw runs every callback in the order they were added.
func (c *Canvas) Draw(f *imgui.Frame, area imgui.Rect) {
	if c == nil || f == nil {
		return
	}
	for _, cb := range append([]callback(nil), c.callbacks...) {
		cb.draw(f, area)
	}
}
