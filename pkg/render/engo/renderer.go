// pkg/render/engo/renderer.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-breakout/pkg/entity"
	"github.com/opd-ai/go-breakout/pkg/physics"
)

// SpriteAdder is the part of common.RenderSystem the renderer needs
type SpriteAdder interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
}

type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer implements entity.Renderer by keeping one ECS sprite per
// game entity. Sprites are created on first sight and hidden on Clear;
// drawing an entity shows it again.
type EngoRenderer struct {
	adder   SpriteAdder
	palette *Palette
	world   physics.Rect

	// view size in engo game units
	viewWidth  float32
	viewHeight float32

	sprites map[entity.ID]*sprite
	title   *titleBar

	// Frames counts completed frames
	Frames int
}

// NewEngoRenderer creates a renderer that maps world onto a view of the
// given size. setTitle receives the HUD text and may be nil.
func NewEngoRenderer(adder SpriteAdder, world physics.Rect, viewWidth, viewHeight float32, setTitle func(string)) *EngoRenderer {
	return &EngoRenderer{
		adder:      adder,
		palette:    DefaultPalette(),
		world:      world,
		viewWidth:  viewWidth,
		viewHeight: viewHeight,
		sprites:    make(map[entity.ID]*sprite),
		title:      &titleBar{set: setTitle},
	}
}

// getOrCreateSprite returns the sprite for id, registering a new one with
// the render system on first use
func (r *EngoRenderer) getOrCreateSprite(id entity.ID, drawable common.Drawable) *sprite {
	if s, exists := r.sprites[id]; exists {
		return s
	}

	s := &sprite{BasicEntity: ecs.NewBasic()}
	s.RenderComponent = common.RenderComponent{Drawable: drawable}
	r.sprites[id] = s
	r.adder.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	return s
}

// place positions s over rect. Engo puts the origin at the top left with
// Y growing downwards.
func (r *EngoRenderer) place(s *sprite, rect physics.Rect) {
	sx := float64(r.viewWidth) / r.world.Size.X
	sy := float64(r.viewHeight) / r.world.Size.Y

	lo, hi := rect.Min(), rect.Max()
	s.SpaceComponent.Position = engo.Point{
		X: float32((lo.X - r.world.Min().X) * sx),
		Y: float32((r.world.Max().Y - hi.Y) * sy),
	}
	s.SpaceComponent.Width = float32(rect.Size.X * sx)
	s.SpaceComponent.Height = float32(rect.Size.Y * sy)
	s.RenderComponent.Hidden = false
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	for _, s := range r.sprites {
		s.RenderComponent.Hidden = true
	}
}

// Present implements entity.Renderer. The render system draws on its
// own update.
func (r *EngoRenderer) Present() {
	r.Frames++
}

// RenderBall implements entity.Renderer
func (r *EngoRenderer) RenderBall(ball *entity.Ball) {
	s := r.getOrCreateSprite(ball.GetID(), r.palette.BallDrawable())
	s.RenderComponent.Color = r.palette.Ball
	r.place(s, ball.Bounds())
}

// RenderPaddle implements entity.Renderer
func (r *EngoRenderer) RenderPaddle(paddle *entity.Paddle) {
	s := r.getOrCreateSprite(paddle.GetID(), r.palette.BlockDrawable())
	s.RenderComponent.Color = r.palette.Paddle
	r.place(s, paddle.Bounds())
}

// RenderTile implements entity.Renderer
func (r *EngoRenderer) RenderTile(tile *entity.Tile) {
	if !tile.Alive() {
		return
	}
	s := r.getOrCreateSprite(tile.GetID(), r.palette.BlockDrawable())
	s.RenderComponent.Color = r.palette.TileColor(tile.Health)
	r.place(s, tile.Bounds())
}

// RenderHUD implements entity.Renderer by writing the HUD into the
// window title
func (r *EngoRenderer) RenderHUD(hud entity.HUD) {
	r.title.update(hud)
}
