// pkg/entity/ball.go
package entity

import (
	"math"

	"github.com/opd-ai/go-breakout/pkg/physics"
)

// Ball is the moving circle. Radius is fixed for the life of the game.
type Ball struct {
	BaseEntity
	Velocity physics.Vector2D
	Radius   float64
}

// NewBall creates a ball at rest
func NewBall(id ID, position physics.Vector2D, radius float64) *Ball {
	return &Ball{
		BaseEntity: BaseEntity{ID: id, Position: position},
		Radius:     radius,
	}
}

// Bounds returns the square enclosing the ball
func (b *Ball) Bounds() physics.Rect {
	d := b.Radius * 2
	return physics.Rect{Center: b.Position, Size: physics.Vector2D{X: d, Y: d}}
}

// Speed returns the magnitude of the ball's velocity
func (b *Ball) Speed() float64 {
	return b.Velocity.Length()
}

// Launch places the ball at position moving at speed along angle
// (radians, counter-clockwise from +X).
func (b *Ball) Launch(position physics.Vector2D, speed, angle float64) {
	b.Position = position
	b.Velocity = physics.FromAngle(angle, speed)
}

// LaunchAngle maps a uniform sample in [0,1) onto [45°, 135°).
func LaunchAngle(sample float64) float64 {
	return math.Pi/4 + sample*math.Pi/2
}
