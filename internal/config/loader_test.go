package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if len(cfg.Levels) != 5 {
		t.Fatalf("expected 5 levels, got %d", len(cfg.Levels))
	}
	if cfg.Gameplay.Mode != "classic" {
		t.Errorf("mode = %q, expected classic", cfg.Gameplay.Mode)
	}
	if cfg.Gameplay.TransitionHold() != 3*time.Second {
		t.Errorf("transition hold = %v, expected 3s", cfg.Gameplay.TransitionHold())
	}

	last := cfg.Levels[4]
	if !last.MaxLevel {
		t.Error("level 5 should be the max level")
	}
	if len(last.Obstacles) != 12 {
		t.Errorf("level 5 should have 12 obstacles, got %d", len(last.Obstacles))
	}
	if last.Tick() != 50*time.Millisecond {
		t.Errorf("level 5 tick = %v, expected 50ms", last.Tick())
	}
	if got := cfg.Levels[1].Obstacles[2]; got != [2]int{10, 11} {
		t.Errorf("level 2 obstacle 3 = %v, expected [10 11]", got)
	}
}

func TestParseKeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := Parse([]byte("levels:\n  - id: 1\n    board_size: 12\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Gameplay.SamplerAttempts != 100 {
		t.Errorf("sampler attempts = %d, expected default 100", cfg.Gameplay.SamplerAttempts)
	}
	if len(cfg.Levels) != 1 || cfg.Levels[0].BoardSize != 12 {
		t.Errorf("unexpected levels: %+v", cfg.Levels)
	}
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("levels: [this is: not valid")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("gameplay:\n  mode: speedrun\n  transition_hold_ms: 500\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake failed: %v", err)
	}
	if cfg.Gameplay.Mode != "speedrun" {
		t.Errorf("mode = %q, expected speedrun", cfg.Gameplay.Mode)
	}
	if cfg.Gameplay.TransitionHold() != 500*time.Millisecond {
		t.Errorf("hold = %v, expected 500ms", cfg.Gameplay.TransitionHold())
	}
}

func TestLoadSnakeMissingCustomPath(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestTransitionHoldNonPositive(t *testing.T) {
	if got := (GameplayConfig{TransitionHoldMS: -5}).TransitionHold(); got != 0 {
		t.Errorf("TransitionHold() = %v, expected 0", got)
	}
}
