// pkg/render/engo/assets.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/engo/common"
)

// Palette holds the drawables and colours for each kind of sprite.
// Shapes are drawn by the render system directly, so no textures are
// loaded.
type Palette struct {
	Background color.Color
	Ball       color.Color
	Paddle     color.Color

	// Tiles is indexed by health-1; higher health repeats the last colour
	Tiles []color.Color
}

// DefaultPalette returns the standard colours
func DefaultPalette() *Palette {
	return &Palette{
		Background: color.RGBA{16, 16, 24, 255},
		Ball:       color.RGBA{255, 220, 0, 255},
		Paddle:     color.RGBA{230, 230, 230, 255},
		Tiles: []color.Color{
			color.RGBA{0, 200, 80, 255},
			color.RGBA{40, 120, 255, 255},
			color.RGBA{170, 60, 220, 255},
			color.RGBA{230, 40, 40, 255},
		},
	}
}

// TileColor returns the colour for a tile with the given health
func (p *Palette) TileColor(health int) color.Color {
	if len(p.Tiles) == 0 {
		return p.Paddle
	}
	i := health - 1
	if i < 0 {
		i = 0
	}
	if i >= len(p.Tiles) {
		i = len(p.Tiles) - 1
	}
	return p.Tiles[i]
}

// BallDrawable returns the shape used for the ball
func (p *Palette) BallDrawable() common.Drawable {
	return common.Circle{}
}

// BlockDrawable returns the shape used for the paddle and tiles
func (p *Palette) BlockDrawable() common.Drawable {
	return common.Rectangle{}
}
