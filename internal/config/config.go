// Package config provides YAML-based game configuration loading for the
// snake game: level definitions and gameplay tunables.
package config

import "time"

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Levels   []LevelConfig  `yaml:"levels"`
}

// GameplayConfig holds tunables that are not tied to a single level.
type GameplayConfig struct {
	Mode             string `yaml:"mode"`               // Mode reported with submitted scores
	TransitionHoldMS int    `yaml:"transition_hold_ms"` // Pause between levels
	SamplerAttempts  int    `yaml:"sampler_attempts"`   // Food placement retries
}

// LevelConfig is the YAML form of a single level.
type LevelConfig struct {
	ID              int            `yaml:"id"`
	Name            string         `yaml:"name"`
	Description     string         `yaml:"description"`
	BoardSize       int            `yaml:"board_size"`
	CellSize        int            `yaml:"cell_size"`
	TickMS          int            `yaml:"tick_ms"`
	SpeedMultiplier float64        `yaml:"speed_multiplier"`
	FoodScore       int            `yaml:"food_score"`
	Difficulty      int            `yaml:"difficulty"`
	MaxLevel        bool           `yaml:"max_level"`
	Features        FeaturesConfig `yaml:"features"`
	Theme           ThemeConfig    `yaml:"theme"`
	Obstacles       [][2]int       `yaml:"obstacles"` // [row, col] pairs
}

// FeaturesConfig toggles level features.
type FeaturesConfig struct {
	Wrap          bool `yaml:"wrap"`
	Obstacles     bool `yaml:"obstacles"`
	MultipleFoods bool `yaml:"multiple_foods"`
	SpeedBoost    bool `yaml:"speed_boost"`
}

// ThemeConfig holds hex colors used by the renderer.
type ThemeConfig struct {
	Background string `yaml:"background"`
	SnakeHead  string `yaml:"snake_head"`
	SnakeBody  string `yaml:"snake_body"`
	Food       string `yaml:"food"`
	Grid       string `yaml:"grid"`
	Border     string `yaml:"border"`
}

// TransitionHold returns the level transition pause as a duration.
// Non-positive values mean "use the engine default".
func (g GameplayConfig) TransitionHold() time.Duration {
	if g.TransitionHoldMS <= 0 {
		return 0
	}
	return time.Duration(g.TransitionHoldMS) * time.Millisecond
}

// Tick returns the level tick interval as a duration.
func (l LevelConfig) Tick() time.Duration {
	return time.Duration(l.TickMS) * time.Millisecond
}
