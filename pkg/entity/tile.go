// pkg/entity/tile.go
package entity

import (
	"github.com/opd-ai/go-breakout/pkg/physics"
)

// Tile is one destructible block in the level grid
type Tile struct {
	BaseEntity
	Size   physics.Vector2D
	Health int
	Row    int
	Col    int
}

// Bounds returns the tile rectangle
func (t *Tile) Bounds() physics.Rect {
	return physics.Rect{Center: t.Position, Size: t.Size}
}

// Alive reports whether the tile still blocks the ball
func (t *Tile) Alive() bool {
	return t.Health > 0
}

// Hit removes one point of health and reports whether the tile was
// destroyed by it.
func (t *Tile) Hit() bool {
	if t.Health <= 0 {
		return false
	}
	t.Health--
	return t.Health == 0
}

// GridLayout describes where a tile grid sits in the world
type GridLayout struct {
	Rows     int
	Cols     int
	TileSize physics.Vector2D
	Gap      float64
	// Top is the world Y of the upper edge of the first row
	Top float64
}

// Width returns the horizontal extent of the grid including gaps
func (l GridLayout) Width() float64 {
	return float64(l.Cols)*l.TileSize.X + float64(l.Cols-1)*l.Gap
}

// Height returns the vertical extent of the grid including gaps
func (l GridLayout) Height() float64 {
	return float64(l.Rows)*l.TileSize.Y + float64(l.Rows-1)*l.Gap
}

// TileGrid is a fixed-size, row-major array of tiles centered on X = 0
type TileGrid struct {
	Layout GridLayout
	Tiles  []Tile
}

// NewTileGrid computes every tile position once. All tiles start with
// the given health. IDs are assigned from firstID upward.
func NewTileGrid(layout GridLayout, health int, firstID ID) *TileGrid {
	grid := &TileGrid{
		Layout: layout,
		Tiles:  make([]Tile, 0, layout.Rows*layout.Cols),
	}

	left := -layout.Width() / 2
	stepX := layout.TileSize.X + layout.Gap
	stepY := layout.TileSize.Y + layout.Gap
	id := firstID

	for row := 0; row < layout.Rows; row++ {
		for col := 0; col < layout.Cols; col++ {
			grid.Tiles = append(grid.Tiles, Tile{
				BaseEntity: BaseEntity{
					ID: id,
					Position: physics.Vector2D{
						X: left + float64(col)*stepX + layout.TileSize.X/2,
						Y: layout.Top - float64(row)*stepY - layout.TileSize.Y/2,
					},
				},
				Size:   layout.TileSize,
				Health: health,
				Row:    row,
				Col:    col,
			})
			id++
		}
	}

	return grid
}

// At returns the tile at row, col
func (g *TileGrid) At(row, col int) *Tile {
	return &g.Tiles[row*g.Layout.Cols+col]
}

// Remaining counts tiles that are still alive
func (g *TileGrid) Remaining() int {
	n := 0
	for i := range g.Tiles {
		if g.Tiles[i].Alive() {
			n++
		}
	}
	return n
}

// Cleared reports whether every tile has been destroyed
func (g *TileGrid) Cleared() bool {
	for i := range g.Tiles {
		if g.Tiles[i].Alive() {
			return false
		}
	}
	return true
}

// Refill resets every tile to health
func (g *TileGrid) Refill(health int) {
	for i := range g.Tiles {
		g.Tiles[i].Health = health
	}
}

// Index builds a spatial index over tile centers. The index stores tile
// positions in the slice, not pointers, so it stays valid across Refill.
func (g *TileGrid) Index(bounds physics.Rect) *physics.QuadTree[int] {
	qt := physics.NewQuadTree[int](bounds, 8)
	for i := range g.Tiles {
		qt.Insert(g.Tiles[i].Position, i)
	}
	return qt
}
