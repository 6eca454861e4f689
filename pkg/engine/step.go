// pkg/engine/step.go
package engine

import (
	"math"
	"slices"

	"github.com/opd-ai/go-breakout/pkg/event"
	"github.com/opd-ai/go-breakout/pkg/physics"
)

// spinNormalY is how close to straight up a paddle normal must be for
// the hit to add spin. Side and corner hits do not.
const spinNormalY = 0.99

// minLaunchAngle is the shallowest angle above horizontal a ball may
// leave the paddle top at once spin is added.
const minLaunchAngle = 10 * math.Pi / 180

// queryEpsilon widens the tile broad phase past exact touching
const queryEpsilon = 1e-6

// BallStep records one frame of ball movement. Consumed + Travelled +
// Dropped always equals Travel.
type BallStep struct {
	// Travel is the distance the ball had to cover this frame
	Travel float64
	// Consumed is the distance covered up to each bounce
	Consumed float64
	// Travelled is the free movement after the last bounce
	Travelled float64
	// Dropped is the travel discarded when the bounce cap was reached
	Dropped float64
	Bounces int
}

type obstacle int

const (
	obstacleRightWall obstacle = iota
	obstacleLeftWall
	obstacleTopWall
	obstaclePaddle
	obstacleTile
)

func (o obstacle) String() string {
	switch o {
	case obstacleRightWall:
		return "right_wall"
	case obstacleLeftWall:
		return "left_wall"
	case obstacleTopWall:
		return "top_wall"
	case obstaclePaddle:
		return "paddle"
	case obstacleTile:
		return "tile"
	default:
		return "unknown"
	}
}

// contact is the nearest hit found along one sweep
type contact struct {
	hit  physics.RayHit
	kind obstacle
	// tile is the index into the grid when kind is obstacleTile
	tile  int
	found bool
}

// offer keeps hit if it is strictly closer than the current best, so the
// first obstacle tested wins a tie.
func (c *contact) offer(hit physics.RayHit, kind obstacle, tile int) {
	if c.found && hit.Distance >= c.hit.Distance {
		return
	}
	*c = contact{hit: hit, kind: kind, tile: tile, found: true}
}

// stepPaddle moves the paddle from the input keys. A move that would push
// the paddle into the ball is suppressed for the frame.
func (g *Game) stepPaddle(in Input, dt float64) {
	dx := in.Direction() * g.Paddle.Speed * dt
	if dx != 0 && g.paddleBlocked(dx) {
		g.logger.Debug(g.ctx, "paddle blocked by ball", "dx", dx)
		dx = 0
	}

	g.Paddle.Position.X += dx
	g.Paddle.ClampX(g.world.HalfSize().X)
}

// paddleBlocked sweeps the ball by -dx against the paddle where it stands,
// which stands in for sweeping the paddle by dx into the ball.
func (g *Game) paddleBlocked(dx float64) bool {
	p1 := g.Ball.Position
	p2 := p1.Sub(physics.Vector2D{X: dx})
	_, hit := physics.MovingCircleToRectangle(p1, p2, g.Ball.Radius, g.Paddle.Bounds())
	return hit
}

// stepBall moves the ball its full frame distance, bouncing off whatever
// it meets, up to the configured bounce cap.
func (g *Game) stepBall(dt float64) BallStep {
	remaining := g.Ball.Speed() * dt
	step := BallStep{Travel: remaining}
	if remaining <= 0 {
		return step
	}

	for {
		if step.Bounces >= g.Config.Rules.MaxBounces {
			step.Dropped = remaining
			g.logger.Warn(g.ctx, "bounce limit exceeded, dropping remaining travel",
				"bounces", step.Bounces,
				"dropped", remaining,
				"x", g.Ball.Position.X,
				"y", g.Ball.Position.Y,
			)
			g.EventBus.Publish(event.NewBounceEvent(event.BounceLimitExceeded, g, "",
				g.Ball.Position.X, g.Ball.Position.Y, 0, 0))
			return step
		}

		p1 := g.Ball.Position
		p2 := p1.Add(g.Ball.Velocity.Normalize().Scale(remaining))

		c := g.nearestContact(p1, p2)
		if !c.found || c.hit.Distance >= remaining {
			g.Ball.Position = p2
			step.Travelled = remaining
			return step
		}

		remaining -= c.hit.Distance
		step.Consumed += c.hit.Distance
		step.Bounces++
		g.resolveContact(c)
	}
}

// nearestContact tests the sweep p1→p2 against the walls, the paddle and
// every live tile, in that order.
func (g *Game) nearestContact(p1, p2 physics.Vector2D) contact {
	var best contact
	radius := g.Ball.Radius
	half := g.world.HalfSize()

	if hit, ok := physics.MovingCircleToVerticalLine(p1, p2, radius, half.X); ok {
		best.offer(hit, obstacleRightWall, -1)
	}
	if hit, ok := physics.MovingCircleToVerticalLine(p1, p2, radius, -half.X); ok {
		best.offer(hit, obstacleLeftWall, -1)
	}
	if hit, ok := physics.MovingCircleToHorizontalLine(p1, p2, radius, half.Y); ok {
		best.offer(hit, obstacleTopWall, -1)
	}
	if hit, ok := physics.MovingCircleToRectangle(p1, p2, radius, g.Paddle.Bounds()); ok {
		best.offer(hit, obstaclePaddle, -1)
	}

	for _, i := range g.tileCandidates(p1, p2) {
		tile := &g.Tiles.Tiles[i]
		if !tile.Alive() {
			continue
		}
		if hit, ok := physics.MovingCircleToRectangle(p1, p2, radius, tile.Bounds()); ok {
			best.offer(hit, obstacleTile, i)
		}
	}

	return best
}

// tileCandidates returns, in grid order, the tiles whose rectangles may
// overlap the swept bounds of the ball.
func (g *Game) tileCandidates(p1, p2 physics.Vector2D) []int {
	area := physics.SweptBounds(p1, p2, g.Ball.Radius)
	grow := g.Tiles.Layout.TileSize.Add(physics.One.Scale(2 * queryEpsilon))
	area.Size = area.Size.Add(grow)

	candidates := g.tileIndex.Query(area)
	slices.Sort(candidates)
	return candidates
}

// resolveContact moves the ball to the contact point, bounces it and
// applies whatever the obstacle does on impact.
func (g *Game) resolveContact(c contact) {
	g.Ball.Position = c.hit.Point
	g.Ball.Velocity = g.Ball.Velocity.Reflect(c.hit.Normal)

	switch c.kind {
	case obstaclePaddle:
		if c.hit.Normal.Y > spinNormalY {
			spin := g.Paddle.SpinAngle(c.hit.Point.X, g.maxSpin)
			g.Ball.Velocity = clampLaunch(g.Ball.Velocity.Rotate(spin), minLaunchAngle)
		}
	case obstacleTile:
		g.hitTile(c.tile)
	}

	g.EventBus.Publish(event.NewBounceEvent(event.BallBounced, g, c.kind.String(),
		c.hit.Point.X, c.hit.Point.Y, c.hit.Normal.X, c.hit.Normal.Y))
}

func (g *Game) hitTile(i int) {
	tile := &g.Tiles.Tiles[i]
	destroyed := tile.Hit()
	g.Score++

	g.EventBus.Publish(event.NewTileEvent(event.TileHit, g, uint64(tile.ID), tile.Row, tile.Col, tile.Health))
	if destroyed {
		g.logger.Debug(g.ctx, "tile destroyed", "row", tile.Row, "col", tile.Col, "score", g.Score)
		g.EventBus.Publish(event.NewTileEvent(event.TileDestroyed, g, uint64(tile.ID), tile.Row, tile.Col, 0))
	}
}

// clampLaunch lifts v to at least minAngle above horizontal, keeping its
// speed and horizontal direction.
func clampLaunch(v physics.Vector2D, minAngle float64) physics.Vector2D {
	speed := v.Length()
	if v.Y >= speed*math.Sin(minAngle) {
		return v
	}
	if v.X < 0 {
		return physics.FromAngle(math.Pi-minAngle, speed)
	}
	return physics.FromAngle(minAngle, speed)
}
