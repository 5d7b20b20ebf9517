package game

// Phase is the game's current state. Exactly one is active at a time.
type Phase uint8

const (
	PhasePregame Phase = iota
	PhaseStart
	PhaseActive
	PhaseResult
	PhaseCheating
)

var phaseNames = [...]string{
	PhasePregame:  "pregame",
	PhaseStart:    "start",
	PhaseActive:   "active",
	PhaseResult:   "result",
	PhaseCheating: "cheating",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Phases lists every phase in declaration order.
func Phases() []Phase {
	return []Phase{PhasePregame, PhaseStart, PhaseActive, PhaseResult, PhaseCheating}
}
