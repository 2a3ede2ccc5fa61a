package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Size: 20,
		},
		Speed: SpeedConfig{
			Min:   1,
			Max:   10,
			Value: 5,
		},
		Obstacles: ObstaclesConfig{
			Enabled: false,
			Limit:   12,
		},
		Player: PlayerConfig{
			Name: DefaultPlayer,
		},
		TickRate: 60,
	}
}
