// pkg/engine/game.go
package engine

import (
	"context"
	"math"

	"github.com/opd-ai/go-breakout/pkg/config"
	"github.com/opd-ai/go-breakout/pkg/entity"
	"github.com/opd-ai/go-breakout/pkg/event"
	"github.com/opd-ai/go-breakout/pkg/logging"
	"github.com/opd-ai/go-breakout/pkg/physics"
)

// State is the top-level game mode
type State int

const (
	StatePaused State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Status lines shown while the simulation is stopped
const (
	StatusPaused   = "Press Spacebar to Play"
	StatusGameOver = "Game Over! Press Spacebar to Play Again"
)

// Fixed entity IDs. Tiles are numbered upward from firstTileID.
const (
	ballID      entity.ID = 1
	paddleID    entity.ID = 2
	firstTileID entity.ID = 3
)

// Game represents the core game state and logic. It is owned by a single
// host loop and is not safe for concurrent use.
type Game struct {
	Config   *config.GameConfig
	Ball     *entity.Ball
	Paddle   *entity.Paddle
	Tiles    *entity.TileGrid
	EventBus *event.Bus

	State State
	Score int
	Level int
	Lives int

	// Frame counts Update calls
	Frame uint64
	// LastStep records what the ball did during the most recent frame
	LastStep BallStep

	SessionID string

	world     physics.Rect
	tileIndex *physics.QuadTree[int]
	maxSpin   float64
	rng       RandomSource
	logger    *logging.Logger
	ctx       context.Context
}

// Option customises a Game at construction
type Option func(*Game)

// WithRandom replaces the launch-angle random source
func WithRandom(rng RandomSource) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger sets the logger used for diagnostics
func WithLogger(logger *logging.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithEventBus publishes gameplay events on an existing bus
func WithEventBus(bus *event.Bus) Option {
	return func(g *Game) { g.EventBus = bus }
}

// WithContext sets the context carried into log calls
func WithContext(ctx context.Context) Option {
	return func(g *Game) { g.ctx = ctx }
}

// NewGame creates a paused game at level 1 with full lives. A nil config
// selects the defaults. The config is expected to be valid.
func NewGame(cfg *config.GameConfig, opts ...Option) *Game {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	g := &Game{
		Config: cfg,
		world: physics.Rect{
			Size: physics.Vector2D{X: cfg.World.Width, Y: cfg.World.Height},
		},
		maxSpin: cfg.Ball.MaxSpinDegrees * math.Pi / 180,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		g.rng = NewRandomSource(cfg.Rules.Seed)
	}
	if g.logger == nil {
		g.logger = logging.NewNopLogger()
	}
	if g.EventBus == nil {
		g.EventBus = event.NewEventBus()
	}
	if g.ctx == nil {
		g.ctx = context.Background()
	}
	g.SessionID = logging.GetCorrelationID(g.ctx)
	if g.SessionID == "" {
		g.ctx = logging.WithCorrelationID(g.ctx, "")
		g.SessionID = logging.GetCorrelationID(g.ctx)
	}

	g.initEntities()
	g.resetProgress()

	g.logger.Info(g.ctx, "game created",
		"world_width", cfg.World.Width,
		"world_height", cfg.World.Height,
		"tiles", len(g.Tiles.Tiles),
		"seed", cfg.Rules.Seed,
	)

	return g
}

// initEntities builds the ball, paddle, tile grid and tile index once.
func (g *Game) initEntities() {
	cfg := g.Config

	g.Ball = entity.NewBall(ballID, physics.Vector2D{X: cfg.Ball.StartX, Y: cfg.Ball.StartY}, cfg.Ball.Radius)
	g.Paddle = entity.NewPaddle(
		paddleID,
		physics.Vector2D{X: 0, Y: cfg.Paddle.Y},
		physics.Vector2D{X: cfg.Paddle.Width, Y: cfg.Paddle.Height},
		cfg.Paddle.Speed,
	)

	layout := entity.GridLayout{
		Rows:     cfg.Tiles.Rows,
		Cols:     cfg.Tiles.Cols,
		TileSize: physics.Vector2D{X: cfg.Tiles.Width, Y: cfg.Tiles.Height},
		Gap:      cfg.Tiles.Gap,
		Top:      cfg.World.Height/2 - cfg.Tiles.TopMargin,
	}
	g.Tiles = entity.NewTileGrid(layout, 1, firstTileID)

	// Twice the world so every tile center is inside the root node
	g.tileIndex = g.Tiles.Index(physics.Rect{Size: g.world.Size.Scale(2)})
}

// resetProgress starts a fresh game: score 0, level 1, full lives.
func (g *Game) resetProgress() {
	g.Score = 0
	g.Level = 1
	g.Lives = g.Config.Rules.Lives
	g.Tiles.Refill(g.Level)
	g.resetBall()
	g.resetPaddle()
}

// BallSpeed returns the launch speed for the current level
func (g *Game) BallSpeed() float64 {
	return g.Config.Ball.BaseSpeed + g.Config.Ball.SpeedIncrement*float64(g.Level-1)
}

func (g *Game) resetBall() {
	start := physics.Vector2D{X: g.Config.Ball.StartX, Y: g.Config.Ball.StartY}
	g.Ball.Launch(start, g.BallSpeed(), entity.LaunchAngle(g.rng.Float64()))
}

func (g *Game) resetPaddle() {
	g.Paddle.Position = physics.Vector2D{X: 0, Y: g.Config.Paddle.Y}
}

// Update advances the game by one frame and returns what to draw.
func (g *Game) Update(in Input) *Snapshot {
	g.Frame++
	g.LastStep = BallStep{}
	started := in.StartPressed()

	switch g.State {
	case StatePaused:
		if started {
			g.setState(StatePlaying)
		}
		return g.Snapshot(in)
	case StateGameOver:
		if started {
			g.resetProgress()
			g.setState(StatePlaying)
		}
		return g.Snapshot(in)
	}

	if started {
		g.setState(StatePaused)
		return g.Snapshot(in)
	}

	dt := ClampDeltaTime(in.DeltaTime, g.Config.Rules.MaxFrameTime, g.Config.Rules.ClampedFrameTime)

	g.stepPaddle(in, dt)
	g.LastStep = g.stepBall(dt)
	g.checkLevelComplete()
	g.checkBallLost()

	return g.Snapshot(in)
}

// checkLevelComplete moves to the next level once every tile is gone.
func (g *Game) checkLevelComplete() {
	if !g.Tiles.Cleared() {
		return
	}

	g.Level++
	g.Tiles.Refill(g.Level)
	g.resetBall()
	g.resetPaddle()

	g.logger.Info(g.ctx, "level complete", "level", g.Level, "score", g.Score)
	g.EventBus.Publish(event.NewProgressEvent(event.LevelAdvanced, g, g.Level, g.Lives, g.Score))
	g.setState(StatePaused)
}

// checkBallLost costs a life when the ball has dropped below the world.
func (g *Game) checkBallLost() {
	if g.Ball.Position.Y >= -g.world.HalfSize().Y {
		return
	}

	g.Lives--
	g.EventBus.Publish(event.NewProgressEvent(event.LifeLost, g, g.Level, g.Lives, g.Score))

	if g.Lives > 0 {
		g.logger.Info(g.ctx, "life lost", "lives", g.Lives)
		g.resetBall()
		g.resetPaddle()
		g.setState(StatePaused)
		return
	}

	g.logger.Info(g.ctx, "game over", "score", g.Score, "level", g.Level)
	g.EventBus.Publish(event.NewProgressEvent(event.GameOver, g, g.Level, g.Lives, g.Score))
	g.setState(StateGameOver)
}

func (g *Game) setState(s State) {
	if g.State == s {
		return
	}
	from := g.State
	g.State = s

	g.logger.Debug(g.ctx, "state changed", "from", from.String(), "to", s.String())
	g.EventBus.Publish(event.NewStateEvent(g, from.String(), s.String()))
}

// Status returns the line to show for the current state
func (g *Game) Status() string {
	switch g.State {
	case StatePaused:
		return StatusPaused
	case StateGameOver:
		return StatusGameOver
	default:
		return ""
	}
}
