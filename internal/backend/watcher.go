package backend

import (
	"context"
	"sync"
	"time"
)

// Kind represents the type of data emitted by the sampler.
type Kind int

const (
	KindRuntime Kind = iota
	KindTerminal
)

func (k Kind) String() string {
	switch k {
	case KindRuntime:
		return "runtime"
	case KindTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Event conveys updated data or an error from a poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

type fetchFunc func(context.Context) (interface{}, error)

// Sampler polls process and terminal state at a fixed interval and
// publishes events.
type Sampler struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewSampler creates a sampler that reads runtime memory statistics and the
// terminal size every interval.
func NewSampler(interval time.Duration) *Sampler {
	return newSampler(interval, map[Kind]fetchFunc{
		KindRuntime:  FetchRuntime,
		KindTerminal: FetchTerminal,
	})
}

func newSampler(interval time.Duration, sources map[Kind]fetchFunc) *Sampler {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Sampler{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	for kind, fetch := range sources {
		s.start(kind, fetch)
	}

	go func() {
		s.wg.Wait()
		close(s.events)
	}()

	return s
}

// Events returns a channel of sampler events. It is closed once every poller
// has exited.
func (s *Sampler) Events() <-chan Event {
	if s == nil {
		return nil
	}
	return s.events
}

// Stop cancels the sampler. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (s *Sampler) Stop() {
	if s == nil {
		return
	}
	s.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (s *Sampler) Wait() {
	if s == nil {
		return
	}
	s.wg.Wait()
}

func (s *Sampler) start(kind Kind, fetch fetchFunc) {
	throttle := newThrottle(250 * time.Millisecond)
	s.wg.Add(1)
	go s.poll(kind, func(ctx context.Context) (interface{}, error) {
		throttle.wait()
		return fetch(ctx)
	})
}

func (s *Sampler) poll(kind Kind, fetch fetchFunc) {
	defer s.wg.Done()

	emit := func() bool {
		data, err := fetch(s.ctx)
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-s.ctx.Done():
			return false
		case s.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
