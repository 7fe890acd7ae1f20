package game

import "log"

// EventType identifies something that happened during a step
type EventType string

const (
	EventLevelStarted     EventType = "LevelStarted"
	EventLevelCleared     EventType = "LevelCleared"
	EventEnemyDestroyed   EventType = "EnemyDestroyed"
	EventShipDestroyed    EventType = "ShipDestroyed"
	EventShipRespawned    EventType = "ShipRespawned"
	EventPowerUpCollected EventType = "PowerUpCollected"
	EventGameOver         EventType = "GameOver"
)

// Event carries the game counters at the moment it was dispatched
type Event struct {
	Type     EventType
	Level    int
	Lives    int
	Score    int
	Position Vector2D

	// Set for EventEnemyDestroyed
	EnemyKind EnemyKind

	// Set for EventPowerUpCollected
	PowerUp PowerUpVariant
}

// Listener receives dispatched events
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener
type ListenerFunc func(event Event)

// OnEvent calls f(event)
func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// Dispatcher delivers events synchronously to subscribers
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for one event type
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers listener for every event type
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.all = append(d.all, listener)
}

// Dispatch sends the event to its subscribers in registration order
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.all {
		listener.OnEvent(event)
	}
}

// LogEvents subscribes a listener that writes every event to logger
func LogEvents(d *Dispatcher, logger *log.Logger) {
	d.SubscribeAll(ListenerFunc(func(event Event) {
		switch event.Type {
		case EventEnemyDestroyed:
			logger.Printf("%s kind=%s level=%d score=%d", event.Type, event.EnemyKind, event.Level, event.Score)
		case EventPowerUpCollected:
			logger.Printf("%s variant=%s level=%d score=%d", event.Type, event.PowerUp, event.Level, event.Score)
		default:
			logger.Printf("%s level=%d lives=%d score=%d", event.Type, event.Level, event.Lives, event.Score)
		}
	}))
}
