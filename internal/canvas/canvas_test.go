package canvas

import (
	"reflect"
	"testing"

	"github.com/atomicstack/debugmenu/internal/imgui"
)

func frame() *imgui.Frame {
	return imgui.Begin(nil, imgui.Input{}, nil).Frame(imgui.Rect{W: 20, H: 4}, imgui.Vec2{})
}

func TestDrawRunsCallbacksInOrder(t *testing.T) {
	c := New()
	var order []string
	c.Add(func(f *imgui.Frame, _ imgui.Rect) { order = append(order, "a"); f.Text("a") })
	c.Add(func(f *imgui.Frame, _ imgui.Rect) { order = append(order, "b"); f.Text("b") })

	f := frame()
	c.Draw(f, f.Viewport())
	if !reflect.DeepEqual(order, []string{"a", "b"}) {
		t.Fatalf("unexpected order %v", order)
	}
	if got := f.Lines(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("unexpected lines %q", got)
	}
}

func TestRemoveDetachesCallback(t *testing.T) {
	c := New()
	calls := 0
	h := c.Add(func(*imgui.Frame, imgui.Rect) { calls++ })
	keep := c.Add(func(*imgui.Frame, imgui.Rect) {})

	if !c.Remove(h) {
		t.Fatalf("expected remove to succeed")
	}
	if c.Remove(h) {
		t.Fatalf("second remove should report false")
	}
	c.Draw(frame(), imgui.Rect{})
	if calls != 0 {
		t.Fatalf("removed callback ran %d times", calls)
	}
	if c.Len() != 1 || !c.Remove(keep) {
		t.Fatalf("expected remaining callback to be removable")
	}
}

func TestCallbackMayRemoveItself(t *testing.T) {
	c := New()
	var h Handle
	calls := 0
	h = c.Add(func(*imgui.Frame, imgui.Rect) {
		calls++
		c.Remove(h)
	})
	c.Add(func(*imgui.Frame, imgui.Rect) { calls++ })
	c.Draw(frame(), imgui.Rect{})
	c.Draw(frame(), imgui.Rect{})
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestClearAndNil(t *testing.T) {
	c := New()
	c.Add(func(*imgui.Frame, imgui.Rect) {})
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty canvas")
	}
	if c.Add(nil) != 0 {
		t.Fatalf("nil callback should not be added")
	}

	var nilCanvas *Canvas
	if nilCanvas.Add(func(*imgui.Frame, imgui.Rect) {}) != 0 || nilCanvas.Remove(1) || nilCanvas.Len() != 0 {
		t.Fatalf("nil canvas should be inert")
	}
	nilCanvas.Clear()
	nilCanvas.Draw(frame(), imgui.Rect{})
}
