package game

import "time"

// Snapshot is a consistent copy of the machine's observable state.
type Snapshot struct {
	SessionID    string        `json:"session_id"`
	RoundID      string        `json:"round_id,omitempty"`
	Phase        Phase         `json:"phase"`
	ReactionMS   uint32        `json:"reaction_ms"`
	FastestMS    uint32        `json:"fastest_ms"`
	HasFastest   bool          `json:"has_fastest"`
	LEDOn        bool          `json:"led_on"`
	BlinkPeriod  time.Duration `json:"blink_period"`
	DelayPending bool          `json:"delay_pending"`
	Measuring    bool          `json:"measuring"`
}

// Fastest returns the fastest time and whether one exists.
func (s Snapshot) Fastest() (uint32, bool) {
	if !s.HasFastest {
		return 0, false
	}
	return s.FastestMS, true
}
