package state

import "github.com/atomicstack/debugmenu/internal/backend"

// HistorySize is the number of heap samples kept for the profile graph.
const HistorySize = 32

type RuntimeStore interface {
	Latest() (backend.RuntimeSnapshot, bool)
	SetLatest(backend.RuntimeSnapshot)
	HeapHistory() []uint64
}

type runtimeStore struct {
	latest  backend.RuntimeSnapshot
	ok      bool
	history []uint64
}

func NewRuntimeStore() RuntimeStore {
	return &runtimeStore{}
}

func (s *runtimeStore) Latest() (backend.RuntimeSnapshot, bool) {
	return s.latest, s.ok
}

func (s *runtimeStore) SetLatest(snapshot backend.RuntimeSnapshot) {
	s.latest = snapshot
	s.ok = true
	s.history = append(s.history, snapshot.HeapAlloc)
	if over := len(s.history) - HistorySize; over > 0 {
		s.history = append(s.history[:0], s.history[over:]...)
	}
}

func (s *runtimeStore) HeapHistory() []uint64 {
	return cloneSamples(s.history)
}

func cloneSamples(samples []uint64) []uint64 {
	if len(samples) == 0 {
		return nil
	}
	dup := make([]uint64, len(samples))
	copy(dup, samples)
	return dup
}
