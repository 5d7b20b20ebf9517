package timing

import (
	"math"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// ReactionTimer measures the elapsed time of a single reaction window.
type ReactionTimer struct {
	clock clockwork.Clock

	mu      sync.Mutex
	started time.Time
	running bool
}

func NewReactionTimer(clock clockwork.Clock) *ReactionTimer {
	return &ReactionTimer{clock: clock}
}

// Start begins a measurement, discarding any measurement in progress.
func (r *ReactionTimer) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = r.clock.Now()
	r.running = true
}

// Stop ends the measurement and returns the elapsed whole milliseconds.
// It returns 0 when no measurement is running.
func (r *ReactionTimer) Stop() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return 0
	}
	r.running = false
	return Millis(r.clock.Since(r.started))
}

func (r *ReactionTimer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = time.Time{}
	r.running = false
}

func (r *ReactionTimer) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Millis truncates d to whole milliseconds, saturating at math.MaxUint32.
func Millis(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	ms := d / time.Millisecond
	if ms > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(ms)
}
