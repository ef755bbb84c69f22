// Package engine ties the entry tree, the navigation controller and the
// filter index together behind one handle that panel providers register
// against and the frame renderer drives once per frame.
package engine

import (
	"github.com/atomicstack/debugmenu/internal/entry"
	"github.com/atomicstack/debugmenu/internal/filter"
	"github.com/atomicstack/debugmenu/internal/imgui"
	"github.com/atomicstack/debugmenu/internal/logging/events"
	"github.com/atomicstack/debugmenu/internal/navigation"
)

const (
	DefaultRootName = "Debug"
	DefaultColumns  = 2
)

// Options configures a new Engine.
type Options struct {
	RootName string
	Columns  int
	Enabled  bool
}

// Registrar is the part of the engine panel providers need.
type Registrar interface {
	Register(path string, render entry.RenderFunc) *entry.Node
	Directory(path string) *entry.Node
}

// Engine owns one tree. A nil or closed Engine ignores every call.
type Engine struct {
	tree    *entry.Tree
	nav     *navigation.Controller
	filter  *filter.Index
	columns int
	enabled bool
}

var _ Registrar = (*Engine)(nil)

// New builds an engine with an empty root directory.
func New(opts Options) *Engine {
	if opts.RootName == "" {
		opts.RootName = DefaultRootName
	}
	if opts.Columns <= 0 {
		opts.Columns = DefaultColumns
	}
	e := &Engine{
		filter:  filter.New(),
		columns: opts.Columns,
		enabled: opts.Enabled,
	}
	e.tree = entry.NewTree(opts.RootName, e.drawRoot, e.DrawDirectory)
	e.nav = navigation.New(e.tree.Root())
	return e
}

// Register adds a leaf panel at path, creating missing directories.
func (e *Engine) Register(path string, render entry.RenderFunc) *entry.Node {
	if e == nil || e.tree == nil {
		return nil
	}
	n := e.tree.RegisterLeaf(path, render)
	events.Registry.Leaf(n.Path())
	e.filter.Invalidate()
	return n
}

// Directory resolves path to a directory node, creating it when missing.
func (e *Engine) Directory(path string) *entry.Node {
	if e == nil || e.tree == nil {
		return nil
	}
	n := e.tree.ResolveDirectory(path)
	events.Registry.Directory(n.Path())
	return n
}

// Navigate asks for n to become current on the next Tick.
func (e *Engine) Navigate(n *entry.Node) {
	if e == nil || e.nav == nil || n == nil {
		return
	}
	events.Nav.Request(e.nav.Current().Path(), n.Path())
	e.nav.Request(n)
}

// Back navigates to the parent of the current node.
func (e *Engine) Back() {
	e.Navigate(e.Current().Parent())
}

// Home navigates to the root.
func (e *Engine) Home() {
	e.Navigate(e.Root())
}

// Tick commits pending navigation and then refreshes the filter matches. It
// reports whether the current node changed.
func (e *Engine) Tick() bool {
	if e == nil || e.nav == nil {
		return false
	}
	committed := e.nav.Tick()
	if committed {
		cur := e.nav.Current()
		events.Nav.Commit(cur.Path(), cur.Depth())
	}
	if e.filter.Recompute(e.tree.Root()) {
		events.Filter.Recompute(e.filter.Applied(), len(e.filter.Results()))
	}
	return committed
}

// Draw renders the body of the current node.
func (e *Engine) Draw(f *imgui.Frame) {
	e.Current().Render(f)
}

// DrawDirectory lays the children of n out as a grid of buttons. Clicking a
// button navigates to that child.
func (e *Engine) DrawDirectory(f *imgui.Frame, n *entry.Node) {
	e.drawButtons(f, n.Children(), -1)
}

func (e *Engine) drawRoot(f *imgui.Frame, n *entry.Node) {
	if e.Filter().Active() {
		e.drawButtons(f, e.filter.Results(), e.filter.Best())
		return
	}
	e.DrawDirectory(f, n)
}

func (e *Engine) drawButtons(f *imgui.Frame, nodes []*entry.Node, highlight int) {
	if e == nil || f == nil || len(nodes) == 0 {
		return
	}
	width := 0
	for _, child := range nodes {
		width = max(width, child.Button().Width)
	}
	for start := 0; start < len(nodes); start += e.columns {
		end := min(start+e.columns, len(nodes))
		f.Row(func() {
			for i := start; i < end; i++ {
				child := nodes[i]
				opts := []imgui.Option{imgui.MinWidth(width)}
				if i == highlight {
					opts = append(opts, imgui.Highlight())
				}
				if f.Button(child.Label().Text, opts...) {
					e.Navigate(child)
				}
			}
		})
	}
}

// Current returns the node being shown.
func (e *Engine) Current() *entry.Node {
	if e == nil {
		return nil
	}
	return e.nav.Current()
}

// Root returns the tree root.
func (e *Engine) Root() *entry.Node {
	if e == nil {
		return nil
	}
	return e.tree.Root()
}

// Tree exposes the underlying tree.
func (e *Engine) Tree() *entry.Tree {
	if e == nil {
		return nil
	}
	return e.tree
}

// Filter exposes the search index.
func (e *Engine) Filter() *filter.Index {
	if e == nil {
		return nil
	}
	return e.filter
}

// Nav exposes the navigation controller.
func (e *Engine) Nav() *navigation.Controller {
	if e == nil {
		return nil
	}
	return e.nav
}

// Columns returns the directory grid width.
func (e *Engine) Columns() int {
	if e == nil {
		return 0
	}
	return e.columns
}

// Enabled reports whether the overlay is shown and updated.
func (e *Engine) Enabled() bool {
	return e != nil && e.tree != nil && e.enabled
}

// SetEnabled shows or hides the overlay.
func (e *Engine) SetEnabled(enabled bool) {
	if e == nil || e.tree == nil {
		return
	}
	e.enabled = enabled
}

// Toggle flips Enabled and returns the new value.
func (e *Engine) Toggle() bool {
	e.SetEnabled(!e.Enabled())
	return e.Enabled()
}

// Close drops the tree. The engine behaves like a nil engine afterwards.
func (e *Engine) Close() {
	if e == nil || e.tree == nil {
		return
	}
	events.Registry.Close(e.tree.Len())
	e.tree = nil
	e.nav = nil
	e.filter = nil
	e.enabled = false
}
