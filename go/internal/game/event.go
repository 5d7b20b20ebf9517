package game

// Event is an input to the state machine.
type Event uint8

const (
	EventPrimaryPress Event = iota
	EventSecondaryPress
	EventDelayExpired
)

func (e Event) String() string {
	switch e {
	case EventPrimaryPress:
		return "primary_press"
	case EventSecondaryPress:
		return "secondary_press"
	case EventDelayExpired:
		return "delay_expired"
	default:
		return "unknown"
	}
}

// Events lists every event in declaration order.
func Events() []Event {
	return []Event{EventPrimaryPress, EventSecondaryPress, EventDelayExpired}
}

// Button is a physical falling-edge input.
type Button uint8

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Event returns the press event an accepted edge on b produces.
func (b Button) Event() Event {
	if b == ButtonSecondary {
		return EventSecondaryPress
	}
	return EventPrimaryPress
}
