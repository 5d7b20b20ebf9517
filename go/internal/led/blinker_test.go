package led

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

type recordingLED struct {
	mu     sync.Mutex
	writes []bool
}

func (r *recordingLED) Set(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, on)
}

func (r *recordingLED) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.writes)
}

func (r *recordingLED) last() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes[len(r.writes)-1]
}

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

func TestBlinkerTogglesOncePerPeriod(t *testing.T) {
	clock := clockwork.NewFakeClock()
	light := &recordingLED{}
	b := NewBlinker(clock, light)
	defer b.Stop()

	if err := b.Start(100 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if got := b.Period(); got != 100*time.Millisecond {
		t.Fatalf("period = %s, want 100ms", got)
	}

	for i := 1; i <= 4; i++ {
		clock.Advance(100 * time.Millisecond)
		waitFor(t, "toggle", func() bool { return light.count() == i })
		if want := i%2 == 1; light.last() != want {
			t.Fatalf("toggle %d left LED %v, want %v", i, light.last(), want)
		}
	}
}

func TestBlinkerRestartReplacesPeriod(t *testing.T) {
	clock := clockwork.NewFakeClock()
	light := &recordingLED{}
	b := NewBlinker(clock, light)
	defer b.Stop()

	if err := b.Start(100 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if err := b.Start(500 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if got := b.Period(); got != 500*time.Millisecond {
		t.Fatalf("period = %s, want 500ms", got)
	}

	clock.Advance(400 * time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	if got := light.count(); got != 0 {
		t.Fatalf("toggles before first slow period = %d, want 0", got)
	}

	clock.Advance(100 * time.Millisecond)
	waitFor(t, "slow toggle", func() bool { return light.count() == 1 })
}

func TestBlinkerStop(t *testing.T) {
	clock := clockwork.NewFakeClock()
	light := &recordingLED{}
	b := NewBlinker(clock, light)

	if err := b.Start(100 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	clock.Advance(100 * time.Millisecond)
	waitFor(t, "toggle", func() bool { return light.count() == 1 })

	b.Stop()
	b.Stop()
	if got := b.Period(); got != 0 {
		t.Errorf("period after Stop = %s, want 0", got)
	}

	clock.Advance(time.Second)
	time.Sleep(10 * time.Millisecond)
	if got := light.count(); got != 1 {
		t.Errorf("toggles after Stop = %d, want 1", got)
	}
}

func TestBlinkerRejectsInvalidPeriod(t *testing.T) {
	b := NewBlinker(clockwork.NewFakeClock(), &Latch{})
	if err := b.Start(0); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("err = %v, want ErrInvalidPeriod", err)
	}
	if b.Period() != 0 {
		t.Error("blinker running after rejected Start")
	}
}

func TestLatch(t *testing.T) {
	var l Latch
	l.Set(true)
	l.Set(true)
	l.Set(false)
	if l.On() {
		t.Error("latch on after Set(false)")
	}
	if got := l.Changes(); got != 2 {
		t.Errorf("changes = %d, want 2", got)
	}
}
