// pkg/render/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-breakout/pkg/engine"
	"github.com/opd-ai/go-breakout/pkg/event"
	"github.com/opd-ai/go-breakout/pkg/logging"
)

// GameScene represents the main game scene in Engo
type GameScene struct {
	game   *engine.Game
	logger *logging.Logger
	ctx    context.Context

	renderer *EngoRenderer
	system   *GameSystem

	subscriptions []*event.Subscription
}

// NewGameScene creates a new game scene
func NewGameScene(ctx context.Context, game *engine.Game, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &GameScene{game: game, logger: logger, ctx: ctx}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "BreakoutScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world := u.(*ecs.World)

	palette := DefaultPalette()
	common.SetBackground(palette.Background)
	SetupInputBindings()

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	snap := scene.game.Snapshot(engine.Input{})
	scene.renderer = NewEngoRenderer(renderSystem, snap.World, engo.GameWidth(), engo.GameHeight(), engo.SetTitle)
	scene.renderer.palette = palette

	scene.system = NewGameSystem(scene.game, scene.renderer, engoButtons{})
	world.AddSystem(scene.system)

	scene.subscribe()
	scene.logger.Info(scene.ctx, "engo scene ready", "width", engo.GameWidth(), "height", engo.GameHeight())
}

// subscribe logs level and game-over events while the scene is active
func (scene *GameScene) subscribe() {
	scene.subscriptions = append(scene.subscriptions,
		scene.game.EventBus.Subscribe(event.LevelAdvanced, scene.logProgress("level advanced")),
		scene.game.EventBus.Subscribe(event.GameOver, scene.logProgress("game over")),
	)
}

func (scene *GameScene) logProgress(msg string) event.Handler {
	return func(e event.Event) {
		p, ok := e.(*event.ProgressEvent)
		if !ok {
			return
		}
		scene.logger.Info(scene.ctx, msg, "level", p.Level, "lives", p.Lives, "score", p.Score)
	}
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	for _, sub := range scene.subscriptions {
		scene.game.EventBus.Unsubscribe(sub)
	}
	scene.subscriptions = nil
	scene.logger.Info(scene.ctx, "engo scene exited", "score", scene.game.Score)
}

// Run opens a window and blocks until it is closed or ctx is done
func Run(ctx context.Context, game *engine.Game, logger *logging.Logger, width, height int) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			engo.Exit()
		case <-done:
		}
	}()

	engo.Run(engo.RunOptions{
		Title:  WindowTitle,
		Width:  width,
		Height: height,
	}, NewGameScene(ctx, game, logger))
}
