package entity

// HUD is the text overlay drawn on top of the playfield
type HUD struct {
	Score  int
	Lives  int
	Level  int
	Status string
}

// Renderer handles rendering game entities
type Renderer interface {
	RenderBall(ball *Ball)
	RenderPaddle(paddle *Paddle)
	RenderTile(tile *Tile)
	RenderHUD(hud HUD)
	Clear()
	Present()
}
