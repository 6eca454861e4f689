package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-breakout/pkg/entity"
	"github.com/opd-ai/go-breakout/pkg/physics"
)

// hudRows is the number of screen rows above the playfield
const hudRows = 1

const (
	ballRune   = 'O'
	paddleRune = '='
	tileRune   = '#'
)

var (
	ballStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	paddleStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)

	// tileStyles is indexed by health-1 and repeats the last colour
	tileStyles = []tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorGreen),
		tcell.StyleDefault.Foreground(tcell.ColorBlue),
		tcell.StyleDefault.Foreground(tcell.ColorPurple),
		tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
)

// TerminalRenderer draws the world onto a tcell screen. The world is
// stretched to fill the screen below the HUD row, with +Y pointing up.
type TerminalRenderer struct {
	screen tcell.Screen
	world  physics.Rect
	width  int
	height int
}

// NewTerminalRenderer creates a renderer for world on screen
func NewTerminalRenderer(screen tcell.Screen, world physics.Rect) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, world: world}
	r.resize()
	return r
}

func (r *TerminalRenderer) resize() {
	w, h := r.screen.Size()
	r.width = w
	r.height = h - hudRows
	if r.height < 1 {
		r.height = 1
	}
}

// worldToScreen converts world coordinates to a screen cell
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	lo, hi := r.world.Min(), r.world.Max()
	fx := (pos.X - lo.X) / r.world.Size.X
	fy := (hi.Y - pos.Y) / r.world.Size.Y

	x := int(math.Floor(fx * float64(r.width)))
	y := int(math.Floor(fy * float64(r.height)))

	// the far edges belong to the last cell
	if x == r.width {
		x--
	}
	if y == r.height {
		y--
	}
	return x, y + hudRows
}

func (r *TerminalRenderer) inPlayfield(x, y int) bool {
	return x >= 0 && x < r.width && y >= hudRows && y < r.height+hudRows
}

func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	if r.inPlayfield(x, y) {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

// fillRect paints every cell covered by rect, at least one cell
func (r *TerminalRenderer) fillRect(rect physics.Rect, ch rune, style tcell.Style) {
	lo, hi := rect.Min(), rect.Max()
	x0, y0 := r.worldToScreen(physics.Vector2D{X: lo.X, Y: hi.Y})
	x1, y1 := r.worldToScreen(physics.Vector2D{X: hi.X, Y: lo.Y})

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.setCell(x, y, ch, style)
		}
	}
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	r.resize()
	r.screen.Clear()
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

// RenderBall implements entity.Renderer
func (r *TerminalRenderer) RenderBall(ball *entity.Ball) {
	x, y := r.worldToScreen(ball.Position)
	r.setCell(x, y, ballRune, ballStyle)
}

// RenderPaddle implements entity.Renderer
func (r *TerminalRenderer) RenderPaddle(paddle *entity.Paddle) {
	r.fillRect(paddle.Bounds(), paddleRune, paddleStyle)
}

// RenderTile implements entity.Renderer
func (r *TerminalRenderer) RenderTile(tile *entity.Tile) {
	if !tile.Alive() {
		return
	}
	i := tile.Health - 1
	if i >= len(tileStyles) {
		i = len(tileStyles) - 1
	}
	r.fillRect(tile.Bounds(), tileRune, tileStyles[i])
}

// RenderHUD implements entity.Renderer
func (r *TerminalRenderer) RenderHUD(hud entity.HUD) {
	line := fmt.Sprintf("Score: %d  Lives: %d  Level: %d", hud.Score, hud.Lives, hud.Level)
	x := r.drawText(0, 0, line, hudStyle)

	if hud.Status != "" {
		r.drawText(x+2, 0, hud.Status, statusStyle)
	}
}

// drawText writes s on row y from column x and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
