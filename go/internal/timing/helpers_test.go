package timing

import (
	"testing"
	"time"
)

// waitFor polls cond until it holds; fake clock timers fire on their own goroutines.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

type fixedSource int

func (f fixedSource) Intn(n int) int {
	return int(f) % n
}
