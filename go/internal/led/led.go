package led

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// LED is a single boolean-driven digital output.
type LED interface {
	Set(on bool)
}

// Latch is an in-memory LED that remembers its last level.
type Latch struct {
	mu      sync.Mutex
	on      bool
	changes uint64
}

func (l *Latch) Set(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.on != on {
		l.changes++
	}
	l.on = on
}

func (l *Latch) On() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}

// Changes counts level changes since creation.
func (l *Latch) Changes() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.changes
}

// Logged wraps an LED and traces every write.
type Logged struct {
	name string
	next LED
}

func NewLogged(name string, next LED) *Logged {
	return &Logged{name: name, next: next}
}

func (l *Logged) Set(on bool) {
	log.Trace().Str("led", l.name).Bool("on", on).Msg("led set")
	l.next.Set(on)
}
