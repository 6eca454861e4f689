// pkg/entity/entity_test.go
package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-breakout/pkg/physics"
)

var (
	_ Entity = (*Ball)(nil)
	_ Entity = (*Paddle)(nil)
	_ Entity = (*Tile)(nil)
)

type recordingRenderer struct {
	balls, paddles, tiles int
}

func (r *recordingRenderer) RenderBall(*Ball)     { r.balls++ }
func (r *recordingRenderer) RenderPaddle(*Paddle) { r.paddles++ }
func (r *recordingRenderer) RenderTile(*Tile)     { r.tiles++ }
func (r *recordingRenderer) RenderHUD(HUD)        {}
func (r *recordingRenderer) Clear()               {}
func (r *recordingRenderer) Present()             {}

func TestBaseEntity_Accessors(t *testing.T) {
	e := &BaseEntity{ID: 42, Position: physics.Vector2D{X: 1, Y: 2}}
	assert.Equal(t, ID(42), e.GetID())
	assert.Equal(t, physics.Vector2D{X: 1, Y: 2}, e.GetPosition())
}

func TestBall_LaunchAndBounds(t *testing.T) {
	b := NewBall(1, physics.Vector2D{}, 10)
	b.Launch(physics.Vector2D{X: 0, Y: -200}, 300, math.Pi/2)

	assert.InDelta(t, 0, b.Velocity.X, 1e-9)
	assert.InDelta(t, 300, b.Velocity.Y, 1e-9)
	assert.InDelta(t, 300, b.Speed(), 1e-9)
	assert.Equal(t, physics.Vector2D{X: 20, Y: 20}, b.Bounds().Size)
}

func TestLaunchAngle(t *testing.T) {
	tests := []struct {
		name     string
		sample   float64
		expected float64
	}{
		{"lowest", 0, math.Pi / 4},
		{"straight_up", 0.5, math.Pi / 2},
		{"near_highest", 0.999999, 3 * math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, LaunchAngle(tt.sample), 1e-5)
		})
	}
}

func TestPaddle_ClampX(t *testing.T) {
	p := NewPaddle(2, physics.Vector2D{X: 500, Y: -250}, physics.Vector2D{X: 100, Y: 20}, 500)
	p.ClampX(400)
	assert.Equal(t, 400.0, p.Position.X)

	p.Position.X = -999
	p.ClampX(400)
	assert.Equal(t, -400.0, p.Position.X)
	assert.Equal(t, -250.0, p.Position.Y)
}

func TestPaddle_SpinAngle(t *testing.T) {
	p := NewPaddle(2, physics.Vector2D{X: 10, Y: -250}, physics.Vector2D{X: 100, Y: 20}, 500)
	maxAngle := math.Pi / 6

	tests := []struct {
		name     string
		hitX     float64
		expected float64
	}{
		{"center", 10, 0},
		{"right_edge", 60, -maxAngle},
		{"left_edge", -40, maxAngle},
		{"halfway_right", 35, -maxAngle / 2},
		{"beyond_edge_clamped", 75, -maxAngle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, p.SpinAngle(tt.hitX, maxAngle), 1e-12)
		})
	}
}

func TestTile_Hit(t *testing.T) {
	tile := &Tile{Health: 2}
	assert.False(t, tile.Hit())
	assert.True(t, tile.Alive())
	assert.True(t, tile.Hit())
	assert.False(t, tile.Alive())
	assert.False(t, tile.Hit(), "destroyed tile stays at zero")
	assert.Equal(t, 0, tile.Health)
}

func testLayout() GridLayout {
	return GridLayout{
		Rows:     2,
		Cols:     3,
		TileSize: physics.Vector2D{X: 70, Y: 25},
		Gap:      5,
		Top:      250,
	}
}

func TestNewTileGrid_Positions(t *testing.T) {
	grid := NewTileGrid(testLayout(), 1, 100)
	require.Len(t, grid.Tiles, 6)

	assert.Equal(t, 220.0, grid.Layout.Width())
	assert.Equal(t, 55.0, grid.Layout.Height())

	first := grid.At(0, 0)
	assert.Equal(t, ID(100), first.ID)
	assert.Equal(t, physics.Vector2D{X: -75, Y: 237.5}, first.Position)

	last := grid.At(1, 2)
	assert.Equal(t, ID(105), last.ID)
	assert.Equal(t, physics.Vector2D{X: 75, Y: 207.5}, last.Position)
	assert.Equal(t, 1, last.Row)
	assert.Equal(t, 2, last.Col)
}

func TestTileGrid_Lifecycle(t *testing.T) {
	grid := NewTileGrid(testLayout(), 1, 1)
	assert.Equal(t, 6, grid.Remaining())
	assert.False(t, grid.Cleared())

	for i := range grid.Tiles {
		grid.Tiles[i].Hit()
	}
	assert.Equal(t, 0, grid.Remaining())
	assert.True(t, grid.Cleared())

	grid.Refill(3)
	assert.Equal(t, 6, grid.Remaining())
	for _, tile := range grid.Tiles {
		assert.Equal(t, 3, tile.Health)
	}
}

func TestTileGrid_Index(t *testing.T) {
	grid := NewTileGrid(testLayout(), 1, 1)
	idx := grid.Index(physics.Rect{Size: physics.Vector2D{X: 800, Y: 600}})

	found := idx.Query(physics.Rect{Center: physics.Vector2D{X: -75, Y: 237.5}, Size: physics.Vector2D{X: 10, Y: 10}})
	assert.Equal(t, []int{0}, found)
}

func TestRender_SkipsDestroyedTiles(t *testing.T) {
	r := &recordingRenderer{}
	grid := NewTileGrid(testLayout(), 1, 1)
	grid.Tiles[0].Health = 0

	var entities []Entity
	entities = append(entities, NewBall(1, physics.Vector2D{}, 10))
	entities = append(entities, NewPaddle(2, physics.Vector2D{}, physics.Vector2D{X: 100, Y: 20}, 500))
	for i := range grid.Tiles {
		entities = append(entities, &grid.Tiles[i])
	}
	for _, e := range entities {
		e.Render(r)
	}

	assert.Equal(t, 1, r.balls)
	assert.Equal(t, 1, r.paddles)
	assert.Equal(t, 5, r.tiles)
}
