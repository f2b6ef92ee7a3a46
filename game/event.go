package game

import (
	"time"

	"gridsnake/game/types"
)

type EventKind int

const (
	EventSessionStarted EventKind = iota
	EventFoodEaten
	EventHazardSpawned
	EventHazardExpired
	EventSessionEnded
)

func (k EventKind) String() string {
	switch k {
	case EventSessionStarted:
		return "session_started"
	case EventFoodEaten:
		return "food_eaten"
	case EventHazardSpawned:
		return "hazard_spawned"
	case EventHazardExpired:
		return "hazard_expired"
	case EventSessionEnded:
		return "session_ended"
	}
	return "unknown"
}

// Event is something a tick or a control call did that the frontend may want
// to react to (sound, logging, dialogs). Score is the snake's score at the
// time of the event.
type Event struct {
	Kind     EventKind
	Session  string
	Score    int
	Level    int
	Reason   types.EndReason // EventSessionEnded only
	Duration time.Duration   // EventSessionEnded only
}
