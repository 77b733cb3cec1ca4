package game

import "time"

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeGameStart     EventType = "game_start"
	EventTypeRoundResolved EventType = "round_resolved"
	EventTypeGameEnd       EventType = "game_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// GameStartEvent is published when a new game begins
type GameStartEvent struct {
	GameID    string
	MaxRounds int
	timestamp time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.timestamp }

// NewGameStartEvent creates a new game start event
func NewGameStartEvent(gameID string, maxRounds int, at time.Time) GameStartEvent {
	return GameStartEvent{
		GameID:    gameID,
		MaxRounds: maxRounds,
		timestamp: at,
	}
}

// RoundResolvedEvent is published after every processed turn, including
// turns forfeited on invalid input
type RoundResolvedEvent struct {
	GameID    string
	Report    TurnReport
	timestamp time.Time
}

func (e RoundResolvedEvent) EventType() EventType { return EventTypeRoundResolved }
func (e RoundResolvedEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundResolvedEvent creates a new round resolved event
func NewRoundResolvedEvent(gameID string, report TurnReport, at time.Time) RoundResolvedEvent {
	return RoundResolvedEvent{
		GameID:    gameID,
		Report:    report,
		timestamp: at,
	}
}

// GameEndEvent is published once the final round has been played
type GameEndEvent struct {
	GameID     string
	FinalScore map[Side]int
	Winner     Winner
	timestamp  time.Time
}

func (e GameEndEvent) EventType() EventType { return EventTypeGameEnd }
func (e GameEndEvent) Timestamp() time.Time { return e.timestamp }

// NewGameEndEvent creates a new game end event. The score map is copied so
// subscribers cannot alias live state.
func NewGameEndEvent(gameID string, score map[Side]int, winner Winner, at time.Time) GameEndEvent {
	final := make(map[Side]int, len(score))
	for side, wins := range score {
		final[side] = wins
	}
	return GameEndEvent{
		GameID:     gameID,
		FinalScore: final,
		Winner:     winner,
		timestamp:  at,
	}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers synchronously
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
