package render

import (
	"context"

	"github.com/opd-ai/go-breakout/pkg/engine"
)

// HeadlessFrameTime is the fixed step used for headless runs
const HeadlessFrameTime = 1.0 / 60.0

// Autopilot steers the paddle towards the ball and presses start
// whenever the game is not playing.
func Autopilot(g *engine.Game, prev engine.Input) engine.Input {
	in := engine.Input{
		DeltaTime: HeadlessFrameTime,
		PrevStart: prev.Start,
	}

	if g.State != engine.StatePlaying {
		// alternate so every other frame is a fresh press
		in.Start = !prev.Start
		return in
	}

	dead := g.Paddle.Size.X / 4
	switch dx := g.Ball.Position.X - g.Paddle.Position.X; {
	case dx < -dead:
		in.Left = true
	case dx > dead:
		in.Right = true
	}
	return in
}

// RunHeadless plays frames under the autopilot into r and returns the
// digest of the last snapshot. It stops early when ctx is done.
func RunHeadless(ctx context.Context, g *engine.Game, r *NullRenderer, frames int) uint64 {
	var (
		in   engine.Input
		snap = g.Snapshot(in)
	)

	for i := 0; i < frames; i++ {
		if ctx.Err() != nil {
			break
		}
		in = Autopilot(g, in)
		snap = g.Update(in)
		snap.Render(r)
	}
	return snap.Digest()
}
