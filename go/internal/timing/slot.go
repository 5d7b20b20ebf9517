package timing

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Slot holds at most one outstanding one-shot timer.
// Every Arm and Cancel bumps the generation, so a callback that was already
// in flight when its arming was replaced can detect that it is stale via Expire.
type Slot struct {
	name  string
	clock clockwork.Clock

	mu    sync.Mutex
	gen   uint64
	timer clockwork.Timer
	stop  chan struct{}
}

// NewSlot creates an empty slot driven by clock.
func NewSlot(name string, clock clockwork.Clock) *Slot {
	return &Slot{
		name:  name,
		clock: clock,
	}
}

// Arm replaces any outstanding timer with a new one that calls fn with the
// arming generation once d has elapsed. It returns that generation.
func (s *Slot) Arm(d time.Duration, fn func(gen uint64)) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
	s.gen++
	gen := s.gen

	timer := s.clock.NewTimer(d)
	stop := make(chan struct{})
	s.timer = timer
	s.stop = stop

	go func(t clockwork.Timer) {
		select {
		case <-t.Chan():
			fn(gen)
		case <-stop:
			stopAndDrainTimer(t)
		}
	}(timer)

	log.Trace().
		Str("slot", s.name).
		Uint64("gen", gen).
		Dur("duration", d).
		Msg("armed timer slot")

	return gen
}

// Cancel stops the outstanding timer, if any. Safe to call repeatedly.
func (s *Slot) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelLocked() {
		log.Trace().Str("slot", s.name).Uint64("gen", s.gen).Msg("cancelled timer slot")
	}
	s.gen++
}

// Expire reports whether gen is the live arming of the slot and, if so,
// retires it. Callbacks must check this inside their owner's critical
// section before acting.
func (s *Slot) Expire(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer == nil || gen != s.gen {
		return false
	}
	s.timer = nil
	s.stop = nil
	return true
}

// Armed reports whether a timer is outstanding.
func (s *Slot) Armed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Generation returns the current arming generation.
func (s *Slot) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

func (s *Slot) Name() string {
	return s.name
}

func (s *Slot) cancelLocked() bool {
	if s.timer == nil {
		return false
	}
	close(s.stop)
	s.timer = nil
	s.stop = nil
	return true
}

// stopAndDrainTimer stops a timer and drains its channel if it already fired.
func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
