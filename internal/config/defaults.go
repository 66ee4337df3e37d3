package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the gameplay defaults without any levels.
// An empty level list makes the catalog fall back to its builtin levels.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Gameplay: GameplayConfig{
			Mode:             "classic",
			TransitionHoldMS: 3000,
			SamplerAttempts:  100,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
