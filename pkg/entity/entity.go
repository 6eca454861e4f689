// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-breakout/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Entity is the base interface for all game objects
type Entity interface {
	GetID() ID
	GetPosition() physics.Vector2D
	Bounds() physics.Rect
	Render(r Renderer)
}

// BaseEntity contains common functionality for all entities
type BaseEntity struct {
	ID       ID
	Position physics.Vector2D
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// Render implements Entity; concrete types override it.
func (e *BaseEntity) Render(r Renderer) {}

// Render draws the ball
func (b *Ball) Render(r Renderer) {
	r.RenderBall(b)
}

// Render draws the paddle
func (p *Paddle) Render(r Renderer) {
	r.RenderPaddle(p)
}

// Render draws the tile. Destroyed tiles are skipped.
func (t *Tile) Render(r Renderer) {
	if t.Alive() {
		r.RenderTile(t)
	}
}
