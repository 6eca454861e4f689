// pkg/engine/snapshot.go
package engine

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/opd-ai/go-breakout/pkg/entity"
	"github.com/opd-ai/go-breakout/pkg/physics"
)

// Snapshot is a copy of everything a renderer needs for one frame. It
// shares no memory with the Game.
type Snapshot struct {
	Frame  uint64
	State  State
	Status string
	Score  int
	Level  int
	Lives  int

	Ball   entity.Ball
	Paddle entity.Paddle
	Tiles  []entity.Tile

	// World is the playfield rectangle, centered on the origin
	World physics.Rect

	FramebufferWidth  int
	FramebufferHeight int
}

// Snapshot captures the current game state. in supplies the framebuffer
// size to pass through.
func (g *Game) Snapshot(in Input) *Snapshot {
	tiles := make([]entity.Tile, len(g.Tiles.Tiles))
	copy(tiles, g.Tiles.Tiles)

	return &Snapshot{
		Frame:             g.Frame,
		State:             g.State,
		Status:            g.Status(),
		Score:             g.Score,
		Level:             g.Level,
		Lives:             g.Lives,
		Ball:              *g.Ball,
		Paddle:            *g.Paddle,
		Tiles:             tiles,
		World:             g.world,
		FramebufferWidth:  in.FramebufferWidth,
		FramebufferHeight: in.FramebufferHeight,
	}
}

// HUD returns the text overlay for the snapshot
func (s *Snapshot) HUD() entity.HUD {
	return entity.HUD{
		Score:  s.Score,
		Lives:  s.Lives,
		Level:  s.Level,
		Status: s.Status,
	}
}

// Render draws the snapshot on r: clear, tiles, paddle, ball, HUD, present.
func (s *Snapshot) Render(r entity.Renderer) {
	r.Clear()
	for i := range s.Tiles {
		s.Tiles[i].Render(r)
	}
	s.Paddle.Render(r)
	s.Ball.Render(r)
	r.RenderHUD(s.HUD())
	r.Present()
}

// Digest hashes the simulation state. Two runs with the same seed and the
// same inputs produce the same digest on every frame. Framebuffer size is
// not part of the digest.
func (s *Snapshot) Digest() uint64 {
	d := xxhash.New()
	var buf [8]byte

	putUint := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	putFloat := func(v float64) { putUint(math.Float64bits(v)) }
	putVec := func(v physics.Vector2D) {
		putFloat(v.X)
		putFloat(v.Y)
	}

	putUint(s.Frame)
	putUint(uint64(s.State))
	putUint(uint64(s.Score))
	putUint(uint64(s.Level))
	putUint(uint64(s.Lives))

	putVec(s.Ball.Position)
	putVec(s.Ball.Velocity)
	putVec(s.Paddle.Position)

	for i := range s.Tiles {
		putUint(uint64(s.Tiles[i].Health))
	}

	return d.Sum64()
}
