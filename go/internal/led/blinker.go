package led

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// ErrInvalidPeriod is returned by Start for a non-positive period.
var ErrInvalidPeriod = errors.New("invalid blink period")

// Blinker toggles an LED once per period on a ticker.
type Blinker struct {
	clock clockwork.Clock
	led   LED

	mu     sync.Mutex
	period time.Duration
	stop   chan struct{}
	done   chan struct{}
}

func NewBlinker(clock clockwork.Clock, led LED) *Blinker {
	return &Blinker{
		clock: clock,
		led:   led,
	}
}

// Start begins blinking at period, replacing any blink in progress. The
// first toggle happens one period after Start.
func (b *Blinker) Start(period time.Duration) error {
	if period <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPeriod, period)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopLocked()

	ticker := b.clock.NewTicker(period)
	stop := make(chan struct{})
	done := make(chan struct{})
	b.period = period
	b.stop = stop
	b.done = done

	go b.run(ticker, stop, done)

	log.Debug().Dur("period", period).Msg("blinker started")
	return nil
}

// Stop halts blinking and returns once the blink goroutine has exited, so
// no toggle can land after Stop returns.
func (b *Blinker) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopLocked() {
		log.Debug().Msg("blinker stopped")
	}
}

// Period returns the active blink period, or 0 when stopped.
func (b *Blinker) Period() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.period
}

func (b *Blinker) stopLocked() bool {
	if b.stop == nil {
		return false
	}
	close(b.stop)
	<-b.done
	b.stop = nil
	b.done = nil
	b.period = 0
	return true
}

func (b *Blinker) run(ticker clockwork.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()

	lit := false
	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			lit = !lit
			b.led.Set(lit)
		}
	}
}
