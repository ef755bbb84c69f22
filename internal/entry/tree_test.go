package entry

import (
	"testing"

	"github.com/atomicstack/debugmenu/internal/imgui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTree() *Tree {
	return NewTree("Root", nil, nil)
}

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name()
	}
	return out
}

func TestResolveDirectoryIsIdempotent(t *testing.T) {
	tree := newTestTree()
	first := tree.ResolveDirectory("a/b")
	second := tree.ResolveDirectory("a/b")

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, 1, tree.Root().Len())
	a, ok := tree.Root().Child("a")
	require.True(t, ok)
	assert.Equal(t, 1, a.Len())
}

func TestResolveDirectoryEmptyPathIsRoot(t *testing.T) {
	tree := newTestTree()
	assert.Same(t, tree.Root(), tree.ResolveDirectory(""))
	assert.Equal(t, 1, tree.Len())
}

func TestResolveDirectoryUsesDirectoryBody(t *testing.T) {
	drawn := 0
	tree := NewTree("Root", nil, func(*imgui.Frame, *Node) { drawn++ })
	dir := tree.ResolveDirectory("x")

	pass := imgui.Begin(nil, imgui.Input{}, nil)
	dir.Render(pass.Frame(imgui.Rect{W: 10, H: 1}, imgui.Vec2{}))
	pass.End()
	assert.Equal(t, 1, drawn)
}

func TestRegisterLeafKeepsDuplicates(t *testing.T) {
	tree := newTestTree()
	var hits []string
	f1 := func(*imgui.Frame, *Node) { hits = append(hits, "f1") }
	f2 := func(*imgui.Frame, *Node) { hits = append(hits, "f2") }

	x1 := tree.RegisterLeaf("a/x", f1)
	x2 := tree.RegisterLeaf("a/x", f2)

	require.NotNil(t, x1)
	require.NotNil(t, x2)
	assert.NotSame(t, x1, x2)
	a := tree.ResolveDirectory("a")
	assert.Equal(t, []string{"x", "x"}, names(a.Children()))

	found, ok := a.Child("x")
	require.True(t, ok)
	assert.Same(t, x1, found)

	pass := imgui.Begin(nil, imgui.Input{}, nil)
	frame := pass.Frame(imgui.Rect{W: 10, H: 1}, imgui.Vec2{})
	x1.Render(frame)
	x2.Render(frame)
	pass.End()
	assert.Equal(t, []string{"f1", "f2"}, hits)
}

func TestRegisterLeafWithoutDirectoryAttachesToRoot(t *testing.T) {
	tree := newTestTree()
	leaf := tree.RegisterLeaf("Sample", nil)
	assert.Same(t, tree.Root(), leaf.Parent())

	leaf = tree.RegisterLeaf("/Odd", nil)
	assert.Same(t, tree.Root(), leaf.Parent())

	leaf = tree.RegisterLeaf("a//b", nil)
	assert.Equal(t, []string{"Root", "a", "", "b"}, names(leaf.Breadcrumb()))
}

func TestTreeIsAcyclic(t *testing.T) {
	tree := newTestTree()
	for _, path := range []string{"a/b/c", "a/b", "x", "a/y/z", "a/b/c", "q/r/s/t"} {
		tree.ResolveDirectory(path)
		tree.RegisterLeaf(path+"/leaf", nil)
	}

	var walk func(n *Node)
	walk = func(n *Node) {
		seen := map[*Node]bool{}
		for p := n; p != nil; p = p.Parent() {
			require.False(t, seen[p], "node %q is its own ancestor", n.Name())
			seen[p] = true
		}
		for _, child := range n.Children() {
			require.Same(t, n, child.Parent())
			walk(child)
		}
	}
	walk(tree.Root())
}

func TestBreadcrumbOrder(t *testing.T) {
	tree := newTestTree()
	c := tree.ResolveDirectory("a/b/c")
	assert.Equal(t, []string{"Root", "a", "b", "c"}, names(c.Breadcrumb()))
	assert.Equal(t, []string{"Root"}, names(tree.Root().Breadcrumb()))
	assert.Equal(t, 3, c.Depth())
	assert.Equal(t, "a/b/c", c.Path())
	assert.Equal(t, "", tree.Root().Path())
}

func TestCollectMatchesFlattensPreOrder(t *testing.T) {
	tree := newTestTree()
	a := tree.RegisterLeaf("a", nil)
	tree.RegisterLeaf("b", nil)
	a.Add("a1", nil)

	got := tree.Root().CollectMatches("a", nil)
	assert.Equal(t, []string{"a", "a1"}, names(got))
}

func TestCollectMatchesUsesLowercaseKey(t *testing.T) {
	tree := newTestTree()
	tree.RegisterLeaf("System/TimeScale", nil)
	tree.RegisterLeaf("Device", nil)

	got := tree.Root().CollectMatches(Lower("TIME"), nil)
	assert.Equal(t, []string{"TimeScale"}, names(got))
	assert.Equal(t, "timescale", got[0].Key())
}

func TestPresentationsAreMemoized(t *testing.T) {
	n := newTestTree().RegisterLeaf("Profile", nil)
	assert.Equal(t, Presentation{Text: "Profile", Width: 7}, n.Label())
	assert.Equal(t, Presentation{Text: " Profile ", Width: 9}, n.Button())
	first := n.label
	n.Label()
	assert.Same(t, first, n.label)
}

func TestNilTreeAndNodeAreNoOps(t *testing.T) {
	var tree *Tree
	assert.Nil(t, tree.Root())
	assert.Nil(t, tree.ResolveDirectory("a/b"))
	assert.Nil(t, tree.RegisterLeaf("a/b", nil))
	assert.Zero(t, tree.Len())

	var n *Node
	assert.Nil(t, n.Add("x", nil))
	assert.Nil(t, n.Breadcrumb())
	assert.Nil(t, n.CollectMatches("x", nil))
	assert.Equal(t, "", n.Key())
	assert.False(t, n.IsRoot())
	n.Render(nil)
}
