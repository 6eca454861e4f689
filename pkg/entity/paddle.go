// pkg/entity/paddle.go
package entity

import (
	"math"

	"github.com/opd-ai/go-breakout/pkg/physics"
)

// Paddle is the player-controlled rectangle. Only Position.X changes.
type Paddle struct {
	BaseEntity
	Size  physics.Vector2D
	Speed float64
}

// NewPaddle creates a paddle centered at position
func NewPaddle(id ID, position, size physics.Vector2D, speed float64) *Paddle {
	return &Paddle{
		BaseEntity: BaseEntity{ID: id, Position: position},
		Size:       size,
		Speed:      speed,
	}
}

// Bounds returns the paddle rectangle
func (p *Paddle) Bounds() physics.Rect {
	return physics.Rect{Center: p.Position, Size: p.Size}
}

// ClampX keeps the paddle center within [-limit, limit]
func (p *Paddle) ClampX(limit float64) {
	p.Position.X = math.Max(-limit, math.Min(limit, p.Position.X))
}

// SpinAngle returns the extra rotation applied to a ball struck at
// hitX. The angle ramps linearly from zero at the center to maxAngle at
// either edge; hits right of center rotate clockwise.
func (p *Paddle) SpinAngle(hitX, maxAngle float64) float64 {
	half := p.Size.X / 2
	if half <= 0 {
		return 0
	}
	offset := (hitX - p.Position.X) / half
	offset = math.Max(-1, math.Min(1, offset))
	return -offset * maxAngle
}
