// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Gameplay event types
const (
	StateChanged        Type = "state_changed"
	TileHit             Type = "tile_hit"
	TileDestroyed       Type = "tile_destroyed"
	LevelAdvanced       Type = "level_advanced"
	LifeLost            Type = "life_lost"
	GameOver            Type = "game_over"
	BallBounced         Type = "ball_bounced"
	BounceLimitExceeded Type = "bounce_limit_exceeded"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription is returned by Subscribe; Cancel removes the handler.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

// Unsubscribe removes the handler behind sub. A nil or already removed
// subscription is ignored.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil || sub.Cancel == nil {
		return
	}
	sub.Cancel()
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, r := range regs {
		if r.id == id {
			b.handlers[eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers synchronously
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, r := range regs {
		r.handler(event)
	}
}

// Specific event implementations

// StateEvent announces a game state transition
type StateEvent struct {
	BaseEvent
	From string
	To   string
}

// NewStateEvent creates a new state transition event
func NewStateEvent(source interface{}, from, to string) *StateEvent {
	return &StateEvent{
		BaseEvent: BaseEvent{EventType: StateChanged, Source: source},
		From:      from,
		To:        to,
	}
}

// TileEvent contains information about tile hits and destruction
type TileEvent struct {
	BaseEvent
	TileID uint64
	Row    int
	Col    int
	Health int
}

// NewTileEvent creates a new tile event
func NewTileEvent(eventType Type, source interface{}, tileID uint64, row, col, health int) *TileEvent {
	return &TileEvent{
		BaseEvent: BaseEvent{EventType: eventType, Source: source},
		TileID:    tileID,
		Row:       row,
		Col:       col,
		Health:    health,
	}
}

// ProgressEvent carries the counters after a level or life change
type ProgressEvent struct {
	BaseEvent
	Level int
	Lives int
	Score int
}

// NewProgressEvent creates a new level/life/game-over event
func NewProgressEvent(eventType Type, source interface{}, level, lives, score int) *ProgressEvent {
	return &ProgressEvent{
		BaseEvent: BaseEvent{EventType: eventType, Source: source},
		Level:     level,
		Lives:     lives,
		Score:     score,
	}
}

// BounceEvent describes one ball reflection
type BounceEvent struct {
	BaseEvent
	Obstacle string
	X, Y     float64
	NormalX  float64
	NormalY  float64
}

// NewBounceEvent creates a new bounce event
func NewBounceEvent(eventType Type, source interface{}, obstacle string, x, y, nx, ny float64) *BounceEvent {
	return &BounceEvent{
		BaseEvent: BaseEvent{EventType: eventType, Source: source},
		Obstacle:  obstacle,
		X:         x,
		Y:         y,
		NormalX:   nx,
		NormalY:   ny,
	}
}
