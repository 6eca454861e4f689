package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-breakout/pkg/entity"
	"github.com/opd-ai/go-breakout/pkg/physics"
)

var _ entity.Renderer = (*recordingRenderer)(nil)

type recordingRenderer struct {
	calls []string
	hud   entity.HUD
}

func (r *recordingRenderer) RenderBall(*entity.Ball)     { r.calls = append(r.calls, "ball") }
func (r *recordingRenderer) RenderPaddle(*entity.Paddle) { r.calls = append(r.calls, "paddle") }
func (r *recordingRenderer) RenderTile(*entity.Tile)     { r.calls = append(r.calls, "tile") }
func (r *recordingRenderer) RenderHUD(h entity.HUD) {
	r.hud = h
	r.calls = append(r.calls, "hud")
}
func (r *recordingRenderer) Clear()   { r.calls = append(r.calls, "clear") }
func (r *recordingRenderer) Present() { r.calls = append(r.calls, "present") }

func TestSnapshot_CopiesState(t *testing.T) {
	g := newTestGame(t, nil)
	snap := g.Update(Input{FramebufferWidth: 1024, FramebufferHeight: 768})

	assert.Equal(t, 1024, snap.FramebufferWidth)
	assert.Equal(t, 768, snap.FramebufferHeight)
	assert.Equal(t, physics.Vector2D{X: 800, Y: 600}, snap.World.Size)
	require.Len(t, snap.Tiles, 50)

	g.Tiles.Tiles[0].Health = 0
	g.Ball.Position.X = 123

	assert.Equal(t, 1, snap.Tiles[0].Health, "snapshot does not alias the grid")
	assert.Equal(t, 0.0, snap.Ball.Position.X)
}

func TestSnapshot_Status(t *testing.T) {
	tests := []struct {
		state  State
		status string
	}{
		{StatePaused, StatusPaused},
		{StatePlaying, ""},
		{StateGameOver, StatusGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			g := newTestGame(t, nil)
			g.State = tt.state
			assert.Equal(t, tt.status, g.Snapshot(Input{}).Status)
		})
	}
}

func TestSnapshot_Render(t *testing.T) {
	g := newTestGame(t, nil)
	g.Tiles.Tiles[3].Health = 0
	g.Score = 9

	r := &recordingRenderer{}
	g.Snapshot(Input{}).Render(r)

	require.Len(t, r.calls, 1+49+1+1+1+1)
	assert.Equal(t, "clear", r.calls[0])
	assert.Equal(t, "tile", r.calls[1])
	assert.Equal(t, []string{"paddle", "ball", "hud", "present"}, r.calls[50:])
	assert.Equal(t, entity.HUD{Score: 9, Lives: 3, Level: 1, Status: StatusPaused}, r.hud)
}

func TestSnapshot_Digest(t *testing.T) {
	g := newTestGame(t, nil)
	base := g.Snapshot(Input{}).Digest()

	assert.Equal(t, base, g.Snapshot(Input{FramebufferWidth: 640}).Digest(), "framebuffer size is ignored")

	g.Tiles.Tiles[10].Health = 0
	changed := g.Snapshot(Input{}).Digest()
	assert.NotEqual(t, base, changed)

	g.Paddle.Position.X = 1
	assert.NotEqual(t, changed, g.Snapshot(Input{}).Digest())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "paused", StatePaused.String())
	assert.Equal(t, "playing", StatePlaying.String())
	assert.Equal(t, "game_over", StateGameOver.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestInput(t *testing.T) {
	tests := []struct {
		name      string
		in        Input
		pressed   bool
		direction float64
	}{
		{"idle", Input{}, false, 0},
		{"start edge", Input{Start: true}, true, 0},
		{"start held", Input{Start: true, PrevStart: true}, false, 0},
		{"start released", Input{PrevStart: true}, false, 0},
		{"left", Input{Left: true}, false, -1},
		{"right", Input{Right: true}, false, 1},
		{"both", Input{Left: true, Right: true}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pressed, tt.in.StartPressed())
			assert.Equal(t, tt.direction, tt.in.Direction())
		})
	}
}

func TestClampDeltaTime(t *testing.T) {
	tests := []struct {
		name     string
		dt       float64
		expected float64
	}{
		{"normal frame", 1.0 / 60.0, 1.0 / 60.0},
		{"exactly max", 1, 1},
		{"debugger pause", 3.5, 1.0 / 6.0},
		{"negative", -0.1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampDeltaTime(tt.dt, 1, 1.0/6.0))
		})
	}
}

func TestNewRandomSource_Deterministic(t *testing.T) {
	a := NewRandomSource(99)
	b := NewRandomSource(99)
	for i := 0; i < 10; i++ {
		v := a.Float64()
		assert.Equal(t, v, b.Float64())
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
