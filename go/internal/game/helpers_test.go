package game

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/reaction/go/internal/display"
	"github.com/mcdev12/reaction/go/internal/led"
	"github.com/mcdev12/reaction/go/internal/metrics"
)

// delayFor2000 makes every start delay 1000+2000 = 3000ms.
const delayFor2000 = 3 * time.Second

type fixedSource int

func (f fixedSource) Intn(n int) int {
	return int(f) % n
}

// screen records what a real display would currently show.
type screen struct {
	mu    sync.Mutex
	rows  map[int]string
	texts []string
}

func newScreen() *screen {
	return &screen{rows: make(map[int]string)}
}

func (s *screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = make(map[int]string)
}

func (s *screen) DisplayText(line int, text string, align display.Alignment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[line] = text
	s.texts = append(s.texts, text)
}

func (s *screen) frame() map[int]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]string, len(s.rows))
	for k, v := range s.rows {
		out[k] = v
	}
	return out
}

func (s *screen) history() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.texts...)
}

type rig struct {
	clock   *clockwork.FakeClock
	light   *led.Latch
	screen  *screen
	stats   *metrics.Stats
	session *Session
	machine *Machine
}

func newRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{
		clock:   clockwork.NewFakeClock(),
		light:   &led.Latch{},
		screen:  newScreen(),
		stats:   metrics.NewStats(),
		session: NewSession(),
	}
	m, err := NewMachine(r.session, r.clock, r.light, r.screen, fixedSource(2000), DefaultConfig(), WithMetrics(r.stats))
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	r.machine = m
	m.Start()
	t.Cleanup(m.Shutdown)
	return r
}

func (r *rig) waitPhase(t *testing.T, want Phase) {
	t.Helper()
	waitFor(t, "phase "+want.String(), func() bool { return r.machine.Phase() == want })
}

// playRound runs Pregame -> Start -> Active -> Result with the given reaction.
func (r *rig) playRound(t *testing.T, reaction time.Duration) {
	t.Helper()
	if got := r.machine.Phase(); got != PhasePregame {
		t.Fatalf("playRound from %s, want pregame", got)
	}
	r.machine.HandleEvent(EventPrimaryPress)
	r.clock.Advance(delayFor2000)
	r.waitPhase(t, PhaseActive)
	r.clock.Advance(reaction)
	r.machine.HandleEvent(EventPrimaryPress)
	if got := r.machine.Phase(); got != PhaseResult {
		t.Fatalf("phase after reaction = %s, want result", got)
	}
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
