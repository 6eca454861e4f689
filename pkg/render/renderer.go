// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-breakout/pkg/entity"
	"github.com/opd-ai/go-breakout/pkg/logging"
)

// NullRenderer is an entity.Renderer that draws nothing and logs each
// call at debug level. It drives headless runs.
type NullRenderer struct {
	logger *logging.Logger
	ctx    context.Context

	// Frames counts completed frames
	Frames int
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(ctx context.Context, logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &NullRenderer{logger: logger, ctx: ctx}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(d.ctx, "Clear called", "frame", d.Frames)
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.Frames++
	d.logger.Debug(d.ctx, "Present called", "frame", d.Frames)
}

// RenderBall implements entity.Renderer.
func (d *NullRenderer) RenderBall(ball *entity.Ball) {
	if ball == nil {
		d.logger.Debug(d.ctx, "RenderBall called with nil ball")
		return
	}
	d.logger.Debug(d.ctx, "RenderBall called",
		"x", ball.Position.X,
		"y", ball.Position.Y,
		"vx", ball.Velocity.X,
		"vy", ball.Velocity.Y,
	)
}

// RenderPaddle implements entity.Renderer.
func (d *NullRenderer) RenderPaddle(paddle *entity.Paddle) {
	if paddle == nil {
		d.logger.Debug(d.ctx, "RenderPaddle called with nil paddle")
		return
	}
	d.logger.Debug(d.ctx, "RenderPaddle called", "x", paddle.Position.X)
}

// RenderTile implements entity.Renderer.
func (d *NullRenderer) RenderTile(tile *entity.Tile) {
	if tile == nil {
		d.logger.Debug(d.ctx, "RenderTile called with nil tile")
		return
	}
	d.logger.Debug(d.ctx, "RenderTile called",
		"row", tile.Row,
		"col", tile.Col,
		"health", tile.Health,
	)
}

// RenderHUD implements entity.Renderer.
func (d *NullRenderer) RenderHUD(hud entity.HUD) {
	d.logger.Debug(d.ctx, "RenderHUD called",
		"score", hud.Score,
		"lives", hud.Lives,
		"level", hud.Level,
		"status", hud.Status,
	)
}
