package backend

import (
	"testing"
	"time"
)

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(20 * time.Millisecond)
	start := time.Now()
	th.wait()
	th.wait()
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected second wait to block, elapsed %s", elapsed)
	}
}

func TestZeroThrottleNeverBlocks(t *testing.T) {
	var nilThrottle *throttle
	nilThrottle.wait()
	newThrottle(0).wait()
}
