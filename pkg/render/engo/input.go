// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-breakout/pkg/engine"
	"github.com/opd-ai/go-breakout/pkg/entity"
)

// Button names registered with engo.Input
const (
	ButtonLeft  = "left"
	ButtonRight = "right"
	ButtonStart = "start"
)

// Buttons reports whether a named button is held
type Buttons interface {
	Down(name string) bool
}

type engoButtons struct{}

func (engoButtons) Down(name string) bool {
	return engo.Input.Button(name).Down()
}

// SetupInputBindings registers the game's key bindings
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonLeft, engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(ButtonRight, engo.KeyD, engo.KeyArrowRight)
	engo.Input.RegisterButton(ButtonStart, engo.KeySpace)
}

// GameSystem advances the game once per engo frame and hands the
// snapshot to the renderer
type GameSystem struct {
	game     *engine.Game
	renderer entity.Renderer
	buttons  Buttons

	// framebuffer reports the drawable size in pixels
	framebuffer func() (int, int)

	prevStart bool
}

// NewGameSystem creates a system driving game with the given buttons
func NewGameSystem(game *engine.Game, renderer entity.Renderer, buttons Buttons) *GameSystem {
	return &GameSystem{
		game:     game,
		renderer: renderer,
		buttons:  buttons,
		framebuffer: func() (int, int) {
			return int(engo.CanvasWidth()), int(engo.CanvasHeight())
		},
	}
}

// Update satisfies the ecs.System interface
func (gs *GameSystem) Update(dt float32) {
	in := gs.input(dt)
	gs.game.Update(in).Render(gs.renderer)
}

// Remove satisfies the ecs.System interface
func (gs *GameSystem) Remove(basic ecs.BasicEntity) {}

func (gs *GameSystem) input(dt float32) engine.Input {
	w, h := gs.framebuffer()
	start := gs.buttons.Down(ButtonStart)
	in := engine.Input{
		DeltaTime:         float64(dt),
		Left:              gs.buttons.Down(ButtonLeft),
		Right:             gs.buttons.Down(ButtonRight),
		Start:             start,
		PrevStart:         gs.prevStart,
		FramebufferWidth:  w,
		FramebufferHeight: h,
	}
	gs.prevStart = start
	return in
}
