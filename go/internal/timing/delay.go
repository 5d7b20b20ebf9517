package timing

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// ErrInvalidRange is returned when a delay range is empty or not positive.
var ErrInvalidRange = errors.New("invalid delay range")

// Source produces uniformly distributed integers in [0, n).
// *rand.Rand satisfies it; seeding is the caller's job.
type Source interface {
	Intn(n int) int
}

// RandomDelay schedules a single callback after a random delay drawn
// uniformly from [min, max) in whole milliseconds.
type RandomDelay struct {
	min  time.Duration
	max  time.Duration
	slot *Slot

	mu  sync.Mutex
	src Source
}

// NewRandomDelay constructs a RandomDelay over the given clock and source.
func NewRandomDelay(clock clockwork.Clock, src Source, minDelay, maxDelay time.Duration) (*RandomDelay, error) {
	minDelay = minDelay.Truncate(time.Millisecond)
	maxDelay = maxDelay.Truncate(time.Millisecond)
	if minDelay < time.Millisecond || maxDelay <= minDelay {
		return nil, fmt.Errorf("%w: [%s, %s)", ErrInvalidRange, minDelay, maxDelay)
	}
	if src == nil {
		return nil, errors.New("random delay: nil source")
	}
	return &RandomDelay{
		min:  minDelay,
		max:  maxDelay,
		slot: NewSlot("random_delay", clock),
		src:  src,
	}, nil
}

// Next draws a delay without scheduling anything.
func (r *RandomDelay) Next() time.Duration {
	span := int((r.max - r.min) / time.Millisecond)

	r.mu.Lock()
	n := r.src.Intn(span)
	r.mu.Unlock()

	return r.min + time.Duration(n)*time.Millisecond
}

// Schedule cancels any outstanding delay, draws a new one and arms fn to run
// after it. fn receives the arming generation for Expire.
func (r *RandomDelay) Schedule(fn func(gen uint64)) time.Duration {
	d := r.Next()
	gen := r.slot.Arm(d, fn)
	log.Debug().Dur("delay", d).Uint64("gen", gen).Msg("scheduled random delay")
	return d
}

func (r *RandomDelay) Cancel() {
	r.slot.Cancel()
}

// Expire reports whether gen belongs to the live delay and retires it.
func (r *RandomDelay) Expire(gen uint64) bool {
	return r.slot.Expire(gen)
}

// Pending reports whether a delay is outstanding.
func (r *RandomDelay) Pending() bool {
	return r.slot.Armed()
}

func (r *RandomDelay) Generation() uint64 {
	return r.slot.Generation()
}

// Range returns the configured [min, max) bounds.
func (r *RandomDelay) Range() (time.Duration, time.Duration) {
	return r.min, r.max
}
