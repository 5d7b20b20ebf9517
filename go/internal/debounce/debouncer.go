// Package debounce filters repeated button edges within a fixed window.
//
// A Debouncer guards a single source. The first edge after the window has
// elapsed is accepted and starts a new window; edges inside the window are
// dropped, never queued. The window is released by a one-shot timer, so two
// Debouncers never share state or timers.
package debounce

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/reaction/go/internal/timing"
	"github.com/rs/zerolog/log"
)

// DefaultWindow is the suppression window used when none is configured.
const DefaultWindow = 200 * time.Millisecond

type Debouncer struct {
	name   string
	clock  clockwork.Clock
	window time.Duration
	grace  time.Duration
	slot   *timing.Slot

	mu          sync.Mutex
	suppressing bool
	since       time.Time
	dropped     uint64
}

type Option func(*Debouncer)

// WithWatchdog lets an edge release a window whose timer has not fired
// within window+grace. A non-positive grace disables the check.
func WithWatchdog(grace time.Duration) Option {
	return func(d *Debouncer) {
		d.grace = grace
	}
}

// New returns a Debouncer for the named source. A non-positive window
// falls back to DefaultWindow.
func New(name string, clock clockwork.Clock, window time.Duration, opts ...Option) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	d := &Debouncer{
		name:   name,
		clock:  clock,
		window: window,
		slot:   timing.NewSlot("debounce_"+name, clock),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Accept handles one raw edge and reports whether it should be dispatched.
func (d *Debouncer) Accept() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.clock.Now()
	if d.suppressing {
		held := now.Sub(d.since)
		if d.grace <= 0 || held <= d.window+d.grace {
			d.dropped++
			log.Debug().
				Str("button", d.name).
				Dur("held", held).
				Msg("edge dropped while debouncing")
			return false
		}
		log.Warn().
			Str("button", d.name).
			Dur("held", held).
			Msg("debounce window never released, watchdog clearing it")
		d.slot.Cancel()
	}

	d.suppressing = true
	d.since = now
	d.slot.Arm(d.window, d.release)
	return true
}

func (d *Debouncer) release(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.slot.Expire(gen) {
		return
	}
	d.suppressing = false
}

// Suppressing reports whether edges are currently being dropped.
func (d *Debouncer) Suppressing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.suppressing
}

// Dropped returns how many edges have been dropped so far.
func (d *Debouncer) Dropped() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dropped
}

func (d *Debouncer) Name() string {
	return d.name
}

func (d *Debouncer) Window() time.Duration {
	return d.window
}

// Stop cancels the window timer. A window in progress stays closed until
// the watchdog, if any, clears it.
func (d *Debouncer) Stop() {
	d.slot.Cancel()
}
