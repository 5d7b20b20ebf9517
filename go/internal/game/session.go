package game

import (
	"math"

	"github.com/google/uuid"
)

// NoFastest is the FastestMS sentinel meaning no completed run yet.
const NoFastest uint32 = math.MaxUint32

// Session is the single game session of the process. It is created once
// and reset in place; the Machine owns it and guards it with its mutex.
type Session struct {
	ID         string
	Round      string
	Phase      Phase
	ReactionMS uint32
	FastestMS  uint32
}

func NewSession() *Session {
	s := &Session{ID: uuid.New().String()[:8]}
	s.Reset()
	return s
}

// Reset returns the session to Pregame defaults.
func (s *Session) Reset() {
	s.Round = ""
	s.Phase = PhasePregame
	s.ReactionMS = 0
	s.FastestMS = NoFastest
}

// NewRound tags the session with a fresh round ID.
func (s *Session) NewRound() string {
	s.Round = uuid.New().String()[:8]
	return s.Round
}

// RecordReaction stores a completed run and lowers FastestMS if it beat it.
// It reports whether a new fastest time was set.
func (s *Session) RecordReaction(ms uint32) bool {
	if ms >= NoFastest {
		ms = NoFastest - 1
	}
	s.ReactionMS = ms
	if ms < s.FastestMS {
		s.FastestMS = ms
		return true
	}
	return false
}

// HasFastest reports whether at least one run completed since the last reset.
func (s *Session) HasFastest() bool {
	return s.FastestMS != NoFastest
}
