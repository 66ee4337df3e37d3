package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/levels"
)

// Scheduler converts wall-clock frames into fixed simulation ticks.
//
// Each frame adds the elapsed time to an accumulator while the engine is
// running and runs one tick per full tick interval. Time never banks
// across pauses, transitions or game over. Rendering happens every frame
// regardless of how many ticks ran.
type Scheduler struct {
	engine *Engine
	render RenderFunc

	last  time.Time
	acc   time.Duration
	ticks uint64
}

// NewScheduler creates a scheduler for engine. render may be nil.
func NewScheduler(engine *Engine, render RenderFunc) *Scheduler {
	return &Scheduler{engine: engine, render: render}
}

// Frame processes one display frame at time now.
func (s *Scheduler) Frame(now time.Time) {
	var delta time.Duration
	if !s.last.IsZero() && now.After(s.last) {
		delta = now.Sub(s.last)
	}
	s.last = now

	// A transition that completes this frame starts with an empty
	// accumulator; the hold never counts as play time.
	wasRunning := s.engine.Status() == StatusRunning
	s.engine.Update(now)

	if wasRunning {
		s.acc += delta
		for s.engine.Status() == StatusRunning {
			interval := s.interval()
			if s.acc < interval {
				break
			}
			s.engine.Tick(now)
			s.ticks++
			s.acc -= interval
		}
	}
	if s.engine.Status() != StatusRunning {
		s.acc = 0
	}

	if s.render != nil {
		s.render(s.engine.Frame(now))
	}
}

func (s *Scheduler) interval() time.Duration {
	if d := s.engine.TickInterval(); d > 0 {
		return d
	}
	return levels.DefaultConfig.TickInterval
}

// Reset forgets the last frame time and any banked time.
func (s *Scheduler) Reset() {
	s.last = time.Time{}
	s.acc = 0
}

// Ticks returns how many simulation ticks have run.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Pending returns the banked time not yet consumed by a tick.
func (s *Scheduler) Pending() time.Duration {
	return s.acc
}
