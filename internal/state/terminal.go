package state

import "github.com/atomicstack/debugmenu/internal/backend"

type TerminalStore interface {
	Snapshot() backend.TerminalSnapshot
	SetSnapshot(backend.TerminalSnapshot)
	LastError() error
	SetLastError(error)
}

type terminalStore struct {
	snapshot backend.TerminalSnapshot
	err      error
}

func NewTerminalStore() TerminalStore {
	return &terminalStore{}
}

func (s *terminalStore) Snapshot() backend.TerminalSnapshot {
	return s.snapshot
}

func (s *terminalStore) SetSnapshot(snapshot backend.TerminalSnapshot) {
	s.snapshot = snapshot
	s.err = nil
}

func (s *terminalStore) LastError() error {
	return s.err
}

func (s *terminalStore) SetLastError(err error) {
	s.err = err
}
