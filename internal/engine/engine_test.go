package engine

import (
	"strings"
	"testing"

	"github.com/atomicstack/debugmenu/internal/entry"
	"github.com/atomicstack/debugmenu/internal/imgui"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draw(e *Engine, input imgui.Input) *imgui.Frame {
	pass := imgui.Begin(nil, input, nil)
	f := pass.Frame(imgui.Rect{W: 60, H: 10}, imgui.Vec2{})
	e.Draw(f)
	pass.End()
	return f
}

func plain(f *imgui.Frame) []string {
	lines := f.Lines()
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimRight(ansi.Strip(line), " ")
	}
	return out
}

func TestNewDefaults(t *testing.T) {
	e := New(Options{})
	assert.Equal(t, DefaultRootName, e.Root().Name())
	assert.Equal(t, DefaultColumns, e.Columns())
	assert.Same(t, e.Root(), e.Current())
	assert.False(t, e.Enabled())
}

func TestRegisterBuildsTree(t *testing.T) {
	e := New(Options{RootName: "Root"})
	leaf := e.Register("System/Time", nil)
	require.NotNil(t, leaf)
	assert.Equal(t, "System/Time", leaf.Path())
	assert.Same(t, leaf.Parent(), e.Directory("System"))
	assert.Equal(t, 3, e.Tree().Len())
}

func TestDirectoryGridUsesColumns(t *testing.T) {
	e := New(Options{Columns: 2})
	e.Register("A/x", nil)
	e.Register("Bee/y", nil)
	e.Register("C/z", nil)

	lines := plain(draw(e, imgui.Input{}))
	require.Len(t, lines, 2)
	assert.Equal(t, " A     Bee", lines[0])
	assert.Equal(t, " C", lines[1])
}

func TestClickingDirectoryButtonNavigatesOnTick(t *testing.T) {
	e := New(Options{Columns: 2})
	e.Register("A/x", nil)
	bee := e.Directory("Bee")

	draw(e, imgui.Input{Click: &imgui.Vec2{X: 7, Y: 0}})
	assert.Same(t, e.Root(), e.Current(), "navigation must wait for the tick")
	assert.Same(t, bee, e.Nav().Pending())

	require.True(t, e.Tick())
	assert.Same(t, bee, e.Current())
	assert.False(t, e.Tick())
}

func TestBodyKeepsDrawingAfterRequest(t *testing.T) {
	e := New(Options{})
	var drawn []string
	var target *entry.Node
	e.Register("Leaf", func(f *imgui.Frame, n *entry.Node) {
		e.Navigate(target)
		drawn = append(drawn, n.Name())
	})
	target = e.Directory("Other")
	e.Navigate(e.Root().Children()[0])
	e.Tick()

	draw(e, imgui.Input{})
	assert.Equal(t, "Leaf", e.Current().Name())
	assert.Equal(t, []string{"Leaf"}, drawn)
	e.Tick()
	assert.Same(t, target, e.Current())
}

func TestBackAndHome(t *testing.T) {
	e := New(Options{})
	c := e.Directory("a/b/c")
	e.Navigate(c)
	e.Tick()

	e.Back()
	e.Tick()
	assert.Equal(t, "b", e.Current().Name())

	e.Home()
	e.Tick()
	assert.Same(t, e.Root(), e.Current())

	e.Back()
	assert.False(t, e.Tick(), "root has no parent")
}

func TestRootShowsFilterResults(t *testing.T) {
	e := New(Options{Columns: 3})
	e.Register("System/Stats", nil)
	e.Register("Stats", nil)
	e.Register("Device", nil)

	e.Filter().Insert("stat")
	assert.Len(t, plain(draw(e, imgui.Input{})), 1, "results appear after the tick")

	e.Tick()
	lines := plain(draw(e, imgui.Input{}))
	require.Len(t, lines, 1)
	assert.Equal(t, " Stats   Stats", lines[0])

	e.Filter().Insert("zz")
	e.Tick()
	lines = plain(draw(e, imgui.Input{}))
	assert.Equal(t, []string{" System   Stats    Device"}, lines, "zero matches fall back to the directory")
}

func TestTickRecomputesAfterNavigation(t *testing.T) {
	e := New(Options{})
	e.Register("Alpha", nil)
	e.Filter().Insert("alp")
	e.Navigate(e.Directory("Beta"))
	require.True(t, e.Tick())
	assert.False(t, e.Filter().Dirty())
	assert.Len(t, e.Filter().Results(), 1)
}

func TestRegisterRefreshesLiveFilter(t *testing.T) {
	e := New(Options{})
	e.Filter().Insert("late")
	e.Tick()
	require.Empty(t, e.Filter().Results())

	e.Register("Late Panel", nil)
	e.Tick()
	assert.Len(t, e.Filter().Results(), 1)
}

func TestToggle(t *testing.T) {
	e := New(Options{Enabled: true})
	assert.True(t, e.Enabled())
	assert.False(t, e.Toggle())
	assert.True(t, e.Toggle())
	e.SetEnabled(false)
	assert.False(t, e.Enabled())
}

func TestNilAndClosedEngineAreNoOps(t *testing.T) {
	var nilEngine *Engine
	closed := New(Options{Enabled: true})
	closed.Register("a", nil)
	closed.Close()
	closed.Close()

	for name, e := range map[string]*Engine{"nil": nilEngine, "closed": closed} {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, e.Register("a/b", nil))
			assert.Nil(t, e.Directory("a"))
			assert.Nil(t, e.Current())
			assert.Nil(t, e.Root())
			e.Navigate(nil)
			e.Back()
			e.Home()
			assert.False(t, e.Tick())
			assert.False(t, e.Enabled())
			assert.False(t, e.Toggle())
			e.Draw(nil)
			draw(e, imgui.Input{})
		})
	}
}
