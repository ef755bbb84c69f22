package events

import "github.com/atomicstack/debugmenu/internal/logging"

type NavTracer struct{}

type RegistryTracer struct{}

var (
	Nav      = NavTracer{}
	Registry = RegistryTracer{}
)

func (NavTracer) Request(from, to string) {
	logging.Trace("nav.request", map[string]interface{}{"from": from, "to": to})
}

func (NavTracer) Commit(path string, depth int) {
	logging.Trace("nav.commit", map[string]interface{}{"path": path, "depth": depth})
}

func (RegistryTracer) Leaf(path string) {
	logging.Trace("registry.leaf", map[string]interface{}{"path": path})
}

func (RegistryTracer) Directory(path string) {
	logging.Trace("registry.directory", map[string]interface{}{"path": path})
}

func (RegistryTracer) Close(nodes int) {
	logging.Trace("registry.close", map[string]interface{}{"nodes": nodes})
}
