package backend

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/term"
)

// RuntimeSnapshot is one reading of the Go runtime memory statistics.
type RuntimeSnapshot struct {
	Time       time.Time
	Goroutines int
	HeapAlloc  uint64
	HeapSys    uint64
	TotalAlloc uint64
	Sys        uint64
	NumGC      uint32
	PauseTotal time.Duration
}

// TerminalSnapshot describes the controlling terminal.
type TerminalSnapshot struct {
	IsTerminal bool
	Width      int
	Height     int
}

// FetchRuntime reads the current memory statistics.
func FetchRuntime(ctx context.Context) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return RuntimeSnapshot{
		Time:       time.Now(),
		Goroutines: runtime.NumGoroutine(),
		HeapAlloc:  ms.HeapAlloc,
		HeapSys:    ms.HeapSys,
		TotalAlloc: ms.TotalAlloc,
		Sys:        ms.Sys,
		NumGC:      ms.NumGC,
		PauseTotal: time.Duration(ms.PauseTotalNs),
	}, nil
}

// FetchTerminal reports the size of stdout when it is a terminal.
func FetchTerminal(ctx context.Context) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return TerminalSnapshot{}, nil
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return nil, fmt.Errorf("terminal size: %w", err)
	}
	return TerminalSnapshot{IsTerminal: true, Width: width, Height: height}, nil
}
