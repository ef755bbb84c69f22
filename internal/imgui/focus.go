package imgui

// Kind identifies what a focusable widget does with keyboard input.
type Kind int

const (
	KindNone Kind = iota
	KindButton
	KindSlider
)

// Focus is the keyboard focus registry. Widgets register in draw order every
// pass; navigation works against the previous pass's registrations because
// the current pass has not finished laying out when input arrives.
type Focus struct {
	index int
	items []Kind
	prev  []Kind
}

// NewFocus returns a registry with nothing focused.
func NewFocus() *Focus {
	return &Focus{index: -1}
}

// Index returns the focused position in draw order, or -1.
func (f *Focus) Index() int {
	if f == nil {
		return -1
	}
	return f.index
}

// Len returns the number of focusable widgets drawn in the last pass.
func (f *Focus) Len() int {
	if f == nil {
		return 0
	}
	return len(f.prev)
}

// Kind returns the kind of the focused widget from the last pass.
func (f *Focus) Kind() Kind {
	if f == nil || f.index < 0 || f.index >= len(f.prev) {
		return KindNone
	}
	return f.prev[f.index]
}

// Reset drops keyboard focus.
func (f *Focus) Reset() {
	if f == nil {
		return
	}
	f.index = -1
}

// Move cycles focus by delta, wrapping at both ends.
func (f *Focus) Move(delta int) bool {
	if f == nil || delta == 0 {
		return false
	}
	n := len(f.prev)
	if n == 0 {
		f.index = -1
		return false
	}
	old := f.index
	if f.index < 0 {
		if delta > 0 {
			f.index = 0
		} else {
			f.index = n - 1
		}
		return true
	}
	f.index = ((f.index+delta)%n + n) % n
	return f.index != old
}

func (f *Focus) begin() {
	f.items = f.items[:0]
}

func (f *Focus) register(kind Kind) int {
	f.items = append(f.items, kind)
	return len(f.items) - 1
}

func (f *Focus) end() {
	f.prev = append(f.prev[:0], f.items...)
	if f.index >= len(f.prev) {
		f.index = len(f.prev) - 1
	}
}
