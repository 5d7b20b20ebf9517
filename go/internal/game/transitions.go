package game

// Action names the entry work a transition performs.
type Action uint8

const (
	// ActionIdle enters Pregame: prompt, normal blink, LED off.
	ActionIdle Action = iota
	// ActionReset clears the session and then runs ActionIdle.
	ActionReset
	// ActionArm enters Start: LED off, random delay scheduled, wait prompt.
	ActionArm
	// ActionGo enters Active: LED on, reaction timer running.
	ActionGo
	// ActionResult enters Result: elapsed recorded, times rendered.
	ActionResult
	// ActionCheat enters Cheating: warning, slow blink, LED off.
	ActionCheat
)

func (a Action) String() string {
	switch a {
	case ActionIdle:
		return "idle"
	case ActionReset:
		return "reset"
	case ActionArm:
		return "arm"
	case ActionGo:
		return "go"
	case ActionResult:
		return "result"
	case ActionCheat:
		return "cheat"
	default:
		return "unknown"
	}
}

// Step is one cell of the transition table.
type Step struct {
	Next   Phase
	Action Action
}

type key struct {
	phase Phase
	event Event
}

var reset = Step{Next: PhasePregame, Action: ActionReset}

var transitions = map[key]Step{
	{PhasePregame, EventPrimaryPress}:   {Next: PhaseStart, Action: ActionArm},
	{PhasePregame, EventSecondaryPress}: reset,

	{PhaseStart, EventPrimaryPress}:   {Next: PhaseCheating, Action: ActionCheat},
	{PhaseStart, EventSecondaryPress}: reset,
	{PhaseStart, EventDelayExpired}:   {Next: PhaseActive, Action: ActionGo},

	{PhaseActive, EventPrimaryPress}:   {Next: PhaseResult, Action: ActionResult},
	{PhaseActive, EventSecondaryPress}: reset,

	{PhaseResult, EventPrimaryPress}:   {Next: PhasePregame, Action: ActionIdle},
	{PhaseResult, EventSecondaryPress}: reset,

	{PhaseCheating, EventPrimaryPress}:   {Next: PhasePregame, Action: ActionIdle},
	{PhaseCheating, EventSecondaryPress}: reset,
}

// Lookup returns the transition for event in phase. ok is false for
// ignored cells, which are no-ops rather than errors.
func Lookup(phase Phase, event Event) (step Step, ok bool) {
	step, ok = transitions[key{phase, event}]
	return step, ok
}
