// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Configuration bounds.
const (
	MinGridSize      = 8
	MaxGridSize      = 60
	MaxObstacleLimit = 100
	DefaultPlayer    = "Player"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid      GridConfig      `yaml:"grid"`
	Speed     SpeedConfig     `yaml:"speed"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Player    PlayerConfig    `yaml:"player"`
	TickRate  int             `yaml:"tick_rate"` // Platform frames per second
}

// GridConfig defines the playing field.
type GridConfig struct {
	Size int `yaml:"size"`
}

// SpeedConfig defines the speed slider range and its position.
type SpeedConfig struct {
	Min   int `yaml:"min"`
	Max   int `yaml:"max"`
	Value int `yaml:"value"`
}

// ObstaclesConfig defines obstacle generation.
type ObstaclesConfig struct {
	Enabled bool `yaml:"enabled"`
	Limit   int  `yaml:"limit"` // Clamped to [0, 100]
}

// PlayerConfig defines the name recorded on the leaderboard.
type PlayerConfig struct {
	Name string `yaml:"name"`
}

// Sanitize replaces out-of-range values with safe ones. Invalid values are
// never rejected.
func (c SnakeConfig) Sanitize() SnakeConfig {
	def := DefaultSnakeConfig()

	if c.Grid.Size < MinGridSize || c.Grid.Size > MaxGridSize {
		c.Grid.Size = def.Grid.Size
	}

	if c.Speed.Max < c.Speed.Min {
		c.Speed.Min, c.Speed.Max = def.Speed.Min, def.Speed.Max
	}
	c.Speed.Value = core.Clamp(c.Speed.Value, c.Speed.Min, c.Speed.Max)

	c.Obstacles.Limit = core.Clamp(c.Obstacles.Limit, 0, MaxObstacleLimit)

	c.Player.Name = strings.TrimSpace(c.Player.Name)
	if c.Player.Name == "" {
		c.Player.Name = DefaultPlayer
	}

	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	return c
}

// ParseObstacleLimit converts user text to an obstacle limit. Only the
// leading integer is read, so "12abc" gives 12. Input without one, or a
// negative number, gives 0; values above 100 give 100.
func ParseObstacleLimit(raw string) int {
	s := strings.TrimSpace(raw)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for ; digits < len(s) && s[digits] >= '0' && s[digits] <= '9'; digits++ {
		// Saturate so long inputs cannot overflow.
		n = min(n*10+int(s[digits]-'0'), MaxObstacleLimit+1)
	}
	if digits == 0 || neg {
		return 0
	}
	return min(n, MaxObstacleLimit)
}
