package metrics

import (
	"sync"
)

// Collector defines the interface for collecting game metrics
type Collector interface {
	RecordTransition(from, to, event string)
	RecordReaction(ms uint32)
	RecordCheat()
	RecordDroppedEdge(source string)
	RecordStaleTimer(slot string)
}

// NoOp is a no-op implementation for when metrics aren't needed
type NoOp struct{}

func (NoOp) RecordTransition(from, to, event string) {}
func (NoOp) RecordReaction(ms uint32)                {}
func (NoOp) RecordCheat()                            {}
func (NoOp) RecordDroppedEdge(source string)         {}
func (NoOp) RecordStaleTimer(slot string)            {}

// Summary is a point-in-time copy of Stats.
type Summary struct {
	Transitions  int            `json:"transitions"`
	Rounds       int            `json:"rounds"`
	Cheats       int            `json:"cheats"`
	BestMS       uint32         `json:"best_ms,omitempty"`
	MeanMS       uint32         `json:"mean_ms,omitempty"`
	DroppedEdges map[string]int `json:"dropped_edges,omitempty"`
	StaleTimers  map[string]int `json:"stale_timers,omitempty"`
}

// Stats keeps process-lifetime counters in memory.
type Stats struct {
	mu          sync.Mutex
	transitions int
	rounds      int
	cheats      int
	best        uint32
	total       uint64
	dropped     map[string]int
	stale       map[string]int
}

func NewStats() *Stats {
	return &Stats{
		dropped: make(map[string]int),
		stale:   make(map[string]int),
	}
}

func (s *Stats) RecordTransition(from, to, event string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transitions++
}

func (s *Stats) RecordReaction(ms uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rounds == 0 || ms < s.best {
		s.best = ms
	}
	s.rounds++
	s.total += uint64(ms)
}

func (s *Stats) RecordCheat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cheats++
}

func (s *Stats) RecordDroppedEdge(source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropped[source]++
}

func (s *Stats) RecordStaleTimer(slot string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stale[slot]++
}

func (s *Stats) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{
		Transitions:  s.transitions,
		Rounds:       s.rounds,
		Cheats:       s.cheats,
		DroppedEdges: make(map[string]int, len(s.dropped)),
		StaleTimers:  make(map[string]int, len(s.stale)),
	}
	if s.rounds > 0 {
		sum.BestMS = s.best
		sum.MeanMS = uint32(s.total / uint64(s.rounds))
	}
	for k, v := range s.dropped {
		sum.DroppedEdges[k] = v
	}
	for k, v := range s.stale {
		sum.StaleTimers[k] = v
	}
	return sum
}
