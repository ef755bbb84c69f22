package events

import "github.com/atomicstack/debugmenu/internal/logging"

type OverlayTracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

type BackendTracer struct{}

var (
	Overlay = OverlayTracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
	Backend = BackendTracer{}
)

func (OverlayTracer) Toggle(enabled bool, source string) {
	logging.Trace("overlay.toggle", map[string]interface{}{"enabled": enabled, "source": source})
}

func (OverlayTracer) Drag(mode string, x, y int) {
	logging.Trace("overlay.drag", map[string]interface{}{"mode": mode, "x": x, "y": y})
}

func (OverlayTracer) Resize(width, height int) {
	logging.Trace("overlay.resize", map[string]interface{}{"width": width, "height": height})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) WordBackspace(filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Recompute(query string, matches int) {
	logging.Trace("filter.recompute", map[string]interface{}{"query": query, "matches": matches})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}

func (BackendTracer) Error(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("backend.error", map[string]interface{}{"kind": kind, "error": err.Error()})
}

func (BackendTracer) Stop(kind string) {
	logging.Trace("backend.stop", map[string]interface{}{"kind": kind})
}
