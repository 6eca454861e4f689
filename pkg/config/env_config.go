// pkg/config/env_config.go
package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables read by ApplyEnvironmentOverrides
const (
	EnvWorldWidth     = "BREAKOUT_WORLD_WIDTH"
	EnvWorldHeight    = "BREAKOUT_WORLD_HEIGHT"
	EnvPaddleSpeed    = "BREAKOUT_PADDLE_SPEED"
	EnvBallSpeed      = "BREAKOUT_BALL_SPEED"
	EnvSpeedIncrement = "BREAKOUT_BALL_SPEED_INCREMENT"
	EnvTileRows       = "BREAKOUT_TILE_ROWS"
	EnvTileCols       = "BREAKOUT_TILE_COLS"
	EnvLives          = "BREAKOUT_LIVES"
	EnvMaxBounces     = "BREAKOUT_MAX_BOUNCES"
	EnvSeed           = "BREAKOUT_SEED"
)

// ApplyEnvironmentOverrides replaces config values with any BREAKOUT_*
// environment variables that are set and parse, then validates the result.
func ApplyEnvironmentOverrides(config *GameConfig) error {
	config.World.Width = getEnvAsFloatOrDefault(EnvWorldWidth, config.World.Width)
	config.World.Height = getEnvAsFloatOrDefault(EnvWorldHeight, config.World.Height)
	config.Paddle.Speed = getEnvAsFloatOrDefault(EnvPaddleSpeed, config.Paddle.Speed)
	config.Ball.BaseSpeed = getEnvAsFloatOrDefault(EnvBallSpeed, config.Ball.BaseSpeed)
	config.Ball.SpeedIncrement = getEnvAsFloatOrDefault(EnvSpeedIncrement, config.Ball.SpeedIncrement)
	config.Tiles.Rows = getEnvAsIntOrDefault(EnvTileRows, config.Tiles.Rows)
	config.Tiles.Cols = getEnvAsIntOrDefault(EnvTileCols, config.Tiles.Cols)
	config.Rules.Lives = getEnvAsIntOrDefault(EnvLives, config.Rules.Lives)
	config.Rules.MaxBounces = getEnvAsIntOrDefault(EnvMaxBounces, config.Rules.MaxBounces)
	config.Rules.Seed = getEnvAsUint64OrDefault(EnvSeed, config.Rules.Seed)

	return config.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnvOrDefault(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsUint64OrDefault(key string, defaultValue uint64) uint64 {
	if value, err := strconv.ParseUint(getEnvOrDefault(key, ""), 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnvOrDefault(key, ""), 64); err == nil {
		return value
	}
	return defaultValue
}
