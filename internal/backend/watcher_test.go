package backend

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSamplerEmitsAndStops(t *testing.T) {
	s := newSampler(10*time.Millisecond, map[Kind]fetchFunc{
		KindRuntime: func(context.Context) (interface{}, error) {
			return RuntimeSnapshot{Goroutines: 3}, nil
		},
		KindTerminal: func(context.Context) (interface{}, error) {
			return nil, errors.New("no tty")
		},
	})

	seen := map[Kind]Event{}
	deadline := time.After(2 * time.Second)
	for len(seen) < 2 {
		select {
		case evt := <-s.Events():
			seen[evt.Kind] = evt
		case <-deadline:
			t.Fatalf("timed out waiting for events, got %v", seen)
		}
	}
	if snap, ok := seen[KindRuntime].Data.(RuntimeSnapshot); !ok || snap.Goroutines != 3 {
		t.Fatalf("unexpected runtime event %#v", seen[KindRuntime])
	}
	if seen[KindTerminal].Err == nil {
		t.Fatalf("expected terminal error to be forwarded")
	}

	s.Stop()
	done := make(chan struct{})
	go func() {
		for range s.Events() {
		}
		close(done)
	}()
	s.Wait()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("events channel was not closed after Stop")
	}
}

func TestFetchRuntimeReadsMemStats(t *testing.T) {
	data, err := FetchRuntime(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap, ok := data.(RuntimeSnapshot)
	if !ok {
		t.Fatalf("expected RuntimeSnapshot, got %T", data)
	}
	if snap.Goroutines < 1 || snap.Sys == 0 {
		t.Fatalf("implausible snapshot %#v", snap)
	}
}

func TestFetchHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := FetchRuntime(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	if _, err := FetchTerminal(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestKindString(t *testing.T) {
	if KindRuntime.String() != "runtime" || KindTerminal.String() != "terminal" || Kind(9).String() != "unknown" {
		t.Fatalf("unexpected kind names")
	}
}

func TestNilSamplerIsInert(t *testing.T) {
	var s *Sampler
	s.Stop()
	s.Wait()
	if s.Events() != nil {
		t.Fatalf("expected nil channel")
	}
}
