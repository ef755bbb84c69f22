// Package entry holds the debug menu tree: named nodes that own their
// children, know their parent, and carry the body drawn while they are the
// current node.
package entry

import (
	"strings"

	"github.com/atomicstack/debugmenu/internal/imgui"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RenderFunc draws the body of n into f. It runs once per frame while n is
// the current node.
type RenderFunc func(f *imgui.Frame, n *Node)

// Presentation is a display string paired with its width in cells.
type Presentation struct {
	Text  string
	Width int
}

// Node is one entry of the tree: a directory or a leaf panel.
type Node struct {
	name     string
	parent   *Node
	children []*Node
	render   RenderFunc

	key    *string
	label  *Presentation
	button *Presentation
}

func newNode(name string, parent *Node, render RenderFunc) *Node {
	return &Node{name: name, parent: parent, render: render}
}

// Name returns the immutable node name.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}
	return n.name
}

// Parent returns the owning node, nil for the root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Children returns the child nodes in insertion order. The slice must not be
// modified.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.children
}

// Len returns the number of children.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool {
	return n != nil && n.parent == nil
}

// Add appends a new child. Sibling names are not required to be unique.
func (n *Node) Add(name string, render RenderFunc) *Node {
	if n == nil {
		return nil
	}
	child := newNode(name, n, render)
	n.children = append(n.children, child)
	return child
}

// Child returns the first child called name.
func (n *Node) Child(name string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	for _, child := range n.children {
		if child.name == name {
			return child, true
		}
	}
	return nil, false
}

// Depth returns the number of ancestors.
func (n *Node) Depth() int {
	depth := 0
	for p := n.Parent(); p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Breadcrumb returns the chain from the root down to n, inclusive.
func (n *Node) Breadcrumb() []*Node {
	if n == nil {
		return nil
	}
	chain := make([]*Node, n.Depth()+1)
	i := len(chain) - 1
	for cur := n; cur != nil; cur = cur.parent {
		chain[i] = cur
		i--
	}
	return chain
}

// Path returns the slash-joined names below the root, empty for the root.
func (n *Node) Path() string {
	chain := n.Breadcrumb()
	if len(chain) < 2 {
		return ""
	}
	names := make([]string, 0, len(chain)-1)
	for _, node := range chain[1:] {
		names = append(names, node.name)
	}
	return strings.Join(names, "/")
}

// CollectMatches walks the subtree in pre-order and appends every node whose
// Key contains query. query must already be lowercase. Children are visited
// whether or not their parent matched.
func (n *Node) CollectMatches(query string, out []*Node) []*Node {
	if n == nil {
		return out
	}
	if strings.Contains(n.Key(), query) {
		out = append(out, n)
	}
	for _, child := range n.children {
		out = child.CollectMatches(query, out)
	}
	return out
}

// Render draws the node body. Nodes without a body draw nothing.
func (n *Node) Render(f *imgui.Frame) {
	if n == nil || n.render == nil || f == nil {
		return
	}
	n.render(f, n)
}

// Key returns the lowercase name used for filtering.
func (n *Node) Key() string {
	if n == nil {
		return ""
	}
	if n.key == nil {
		key := Lower(n.name)
		n.key = &key
	}
	return *n.key
}

// Label returns the plain presentation of the name.
func (n *Node) Label() Presentation {
	if n == nil {
		return Presentation{}
	}
	if n.label == nil {
		n.label = &Presentation{Text: n.name, Width: ansi.StringWidth(n.name)}
	}
	return *n.label
}

// Button returns the presentation used on buttons, padded by one cell on
// each side.
func (n *Node) Button() Presentation {
	if n == nil {
		return Presentation{}
	}
	if n.button == nil {
		label := n.Label()
		n.button = &Presentation{Text: " " + label.Text + " ", Width: label.Width + 2}
	}
	return *n.button
}

// Lower folds s to lowercase the same way node keys are folded.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
