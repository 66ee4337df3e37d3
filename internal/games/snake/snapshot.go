package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Status is the lifecycle state of a session.
type Status string

const (
	StatusIdle            Status = "idle"
	StatusRunning         Status = "running"
	StatusPaused          Status = "paused"
	StatusLevelTransition Status = "level_transition"
	StatusGameOver        Status = "game_over"
)

// Cause records why a session ended.
type Cause string

const (
	CauseNone     Cause = ""
	CauseBoundary Cause = "boundary"
	CauseSelf     Cause = "self"
	CauseObstacle Cause = "obstacle"
)

// State is a deep copy of the engine state.
type State struct {
	Tick       uint64
	Snake      []core.Position // Tail first, head last
	Food       *core.Position  // Nil only if no free cell could be sampled
	Direction  core.Direction  // Heading applied by the last tick
	Pending    core.Direction  // Heading the next tick will apply
	Status     Status
	Score      int
	LevelScore int
	Level      int
	Mode       string
	Cause      Cause
}

// Running reports whether the simulation is advancing.
func (s State) Running() bool {
	return s.Status == StatusRunning
}

// GameOver reports whether the session has ended.
func (s State) GameOver() bool {
	return s.Status == StatusGameOver
}

// Head returns the head segment, or the zero position for an empty snake.
func (s State) Head() core.Position {
	if len(s.Snake) == 0 {
		return core.Position{}
	}
	return s.Snake[len(s.Snake)-1]
}

// Frame is everything a renderer needs for one picture.
type Frame struct {
	Snake         []core.Position
	Food          *core.Position
	Obstacles     []core.Position // Only the obstacles that collide on this level
	BoardSize     int
	GameOver      bool
	FoodJustEaten bool
	Status        Status
	Score         int
	LevelScore    int
	Level         int
	LevelName     string
	Cause         Cause
}

// RenderFunc receives a frame once per scheduler frame.
type RenderFunc func(Frame)

// TickResult summarizes what a single tick did.
type TickResult struct {
	Moved    bool
	Ate      bool
	GameOver bool
	LevelUp  bool
	Cause    Cause
}

// ScoreEvent is submitted once when a session ends.
type ScoreEvent struct {
	Score int
	Level int
	Mode  string
}

// ScoreSink accepts final scores. Implementations must not block the caller.
type ScoreSink interface {
	SubmitScore(ScoreEvent)
}

// ScoreSinkFunc adapts a function to ScoreSink.
type ScoreSinkFunc func(ScoreEvent)

// SubmitScore calls f(ev).
func (f ScoreSinkFunc) SubmitScore(ev ScoreEvent) {
	f(ev)
}

func copyPositions(ps []core.Position) []core.Position {
	if ps == nil {
		return nil
	}
	return append([]core.Position(nil), ps...)
}

func copyPosition(p *core.Position) *core.Position {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
