package event

import (
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/food-drop/component"
)

// EventType represents the type of game event
type EventType int

const (
	// EventDropRequested signals the plane was dispatched by a click
	// Trigger: HandleClick on empty ground | Value: drops left after the request
	EventDropRequested EventType = iota

	// EventDropBlocked signals a click on an obstacle that consumed no drop
	// Trigger: HandleClick on an obstacle
	EventDropBlocked

	// EventDepositSpawned signals the plane released a food deposit
	// Trigger: plane reaching its drop point | Value: deposit amount
	EventDepositSpawned

	// EventDepositDepleted signals a deposit was removed from the arena
	// Trigger: deposit amount reaching zero
	EventDepositDepleted

	// EventAgentFed signals a full good agent left the arena
	// Trigger: good agent reaching capacity | Value: bonus awarded
	EventAgentFed

	// EventBoostApplied signals a clicked agent received a speed change
	// Trigger: HandleClick on an agent | Value: boost duration
	EventBoostApplied

	// EventGameOver signals the session ended, emitted once
	// Value: final score
	EventGameOver
)

var typeNames = [...]string{
	EventDropRequested:   "drop_requested",
	EventDropBlocked:     "drop_blocked",
	EventDepositSpawned:  "deposit_spawned",
	EventDepositDepleted: "deposit_depleted",
	EventAgentFed:        "agent_fed",
	EventBoostApplied:    "boost_applied",
	EventGameOver:        "game_over",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// GameEvent is a fixed-shape notification pushed by the simulation
// Entity is zero for events not tied to a single entity
type GameEvent struct {
	Type     EventType
	Entity   component.ID
	Kind     component.Kind
	Position r2.Point
	Value    float64
}
