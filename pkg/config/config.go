// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig contains configuration for a Breakout game
type GameConfig struct {
	World  WorldConfig  `json:"world" yaml:"world"`
	Paddle PaddleConfig `json:"paddle" yaml:"paddle"`
	Ball   BallConfig   `json:"ball" yaml:"ball"`
	Tiles  TileConfig   `json:"tiles" yaml:"tiles"`
	Rules  GameRules    `json:"rules" yaml:"rules"`
}

// WorldConfig sizes the playfield. The world is centered on the origin.
type WorldConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// PaddleConfig contains paddle dimensions and movement
type PaddleConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Y      float64 `json:"y" yaml:"y"`
	Speed  float64 `json:"speed" yaml:"speed"`
}

// BallConfig contains ball size, start position and speeds
type BallConfig struct {
	Radius         float64 `json:"radius" yaml:"radius"`
	StartX         float64 `json:"startX" yaml:"startX"`
	StartY         float64 `json:"startY" yaml:"startY"`
	BaseSpeed      float64 `json:"baseSpeed" yaml:"baseSpeed"`
	SpeedIncrement float64 `json:"speedIncrement" yaml:"speedIncrement"`
	MaxSpinDegrees float64 `json:"maxSpinDegrees" yaml:"maxSpinDegrees"`
}

// TileConfig describes the tile grid
type TileConfig struct {
	Rows      int     `json:"rows" yaml:"rows"`
	Cols      int     `json:"cols" yaml:"cols"`
	Width     float64 `json:"width" yaml:"width"`
	Height    float64 `json:"height" yaml:"height"`
	Gap       float64 `json:"gap" yaml:"gap"`
	TopMargin float64 `json:"topMargin" yaml:"topMargin"`
}

// GameRules contains game rules configuration. Frame times are seconds.
type GameRules struct {
	Lives            int     `json:"lives" yaml:"lives"`
	MaxBounces       int     `json:"maxBounces" yaml:"maxBounces"`
	MaxFrameTime     float64 `json:"maxFrameTime" yaml:"maxFrameTime"`
	ClampedFrameTime float64 `json:"clampedFrameTime" yaml:"clampedFrameTime"`
	Seed             uint64  `json:"seed" yaml:"seed"`
}

// ErrUnknownFormat is returned for config files that are neither JSON nor YAML
var ErrUnknownFormat = errors.New("unknown config format")

type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatFor(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// LoadConfig loads a configuration from a JSON or YAML file, chosen by
// extension. Fields missing from the file keep their default values.
func LoadConfig(path string) (*GameConfig, error) {
	f, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	config := DefaultConfig()
	switch f {
	case formatYAML:
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves a configuration to a JSON or YAML file
func SaveConfig(config *GameConfig, path string) error {
	f, err := formatFor(path)
	if err != nil {
		return err
	}

	var data []byte
	switch f {
	case formatYAML:
		data, err = yaml.Marshal(config)
	default:
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:  100,
			Height: 20,
			Y:      -250,
			Speed:  500,
		},
		Ball: BallConfig{
			Radius:         10,
			StartX:         0,
			StartY:         -200,
			BaseSpeed:      300,
			SpeedIncrement: 50,
			MaxSpinDegrees: 30,
		},
		Tiles: TileConfig{
			Rows:      5,
			Cols:      10,
			Width:     70,
			Height:    25,
			Gap:       5,
			TopMargin: 50,
		},
		Rules: GameRules{
			Lives:            3,
			MaxBounces:       5,
			MaxFrameTime:     1,
			ClampedFrameTime: 1.0 / 6.0,
			Seed:             1,
		},
	}
}

// ValidationError reports one invalid configuration field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Message)
}

// Validate checks that every size, speed and count is usable, that the
// paddle and ball start inside the world, and that the tile grid fits
// between the top wall and the paddle.
func (c *GameConfig) Validate() error {
	positive := []struct {
		field string
		value float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.speed", c.Paddle.Speed},
		{"ball.radius", c.Ball.Radius},
		{"ball.baseSpeed", c.Ball.BaseSpeed},
		{"tiles.width", c.Tiles.Width},
		{"tiles.height", c.Tiles.Height},
		{"tiles.rows", float64(c.Tiles.Rows)},
		{"tiles.cols", float64(c.Tiles.Cols)},
		{"rules.lives", float64(c.Rules.Lives)},
		{"rules.maxBounces", float64(c.Rules.MaxBounces)},
		{"rules.maxFrameTime", c.Rules.MaxFrameTime},
		{"rules.clampedFrameTime", c.Rules.ClampedFrameTime},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return &ValidationError{Field: p.field, Message: "must be positive"}
		}
	}

	if c.Ball.SpeedIncrement < 0 {
		return &ValidationError{Field: "ball.speedIncrement", Message: "must not be negative"}
	}
	if c.Tiles.Gap < 0 {
		return &ValidationError{Field: "tiles.gap", Message: "must not be negative"}
	}

	gridWidth := float64(c.Tiles.Cols)*c.Tiles.Width + float64(c.Tiles.Cols-1)*c.Tiles.Gap
	if gridWidth > c.World.Width {
		return &ValidationError{
			Field:   "tiles.cols",
			Message: fmt.Sprintf("grid width %.1f exceeds world width %.1f", gridWidth, c.World.Width),
		}
	}

	halfHeight := c.World.Height / 2
	if c.Paddle.Y-c.Paddle.Height/2 < -halfHeight || c.Paddle.Y+c.Paddle.Height/2 > halfHeight {
		return &ValidationError{Field: "paddle.y", Message: "paddle lies outside the world"}
	}

	halfWidth := c.World.Width / 2
	if c.Ball.StartX-c.Ball.Radius < -halfWidth || c.Ball.StartX+c.Ball.Radius > halfWidth {
		return &ValidationError{Field: "ball.startX", Message: "ball start lies outside the world"}
	}
	if c.Ball.StartY-c.Ball.Radius < -halfHeight || c.Ball.StartY+c.Ball.Radius > halfHeight {
		return &ValidationError{Field: "ball.startY", Message: "ball start lies outside the world"}
	}

	gridHeight := float64(c.Tiles.Rows)*c.Tiles.Height + float64(c.Tiles.Rows-1)*c.Tiles.Gap
	gridBottom := halfHeight - c.Tiles.TopMargin - gridHeight
	reach := max(c.Paddle.Y+c.Paddle.Height/2, c.Ball.StartY+c.Ball.Radius)
	if gridBottom <= reach {
		return &ValidationError{
			Field:   "tiles.rows",
			Message: fmt.Sprintf("grid bottom %.1f does not clear the paddle and ball start at %.1f", gridBottom, reach),
		}
	}

	if c.Rules.ClampedFrameTime > c.Rules.MaxFrameTime {
		return &ValidationError{Field: "rules.clampedFrameTime", Message: "must not exceed rules.maxFrameTime"}
	}

	return nil
}
