package snake

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestScheduler(t *testing.T) (*Scheduler, *Engine, *[]Frame) {
	t.Helper()
	e := NewEngine(Options{Sampler: NewSampler(rand.New(rand.NewSource(3)), 0)})
	// Keep food out of the way so ticks only move.
	far := core.P(0, 0)
	e.food = &far
	var frames []Frame
	s := NewScheduler(e, func(f Frame) { frames = append(frames, f) })
	return s, e, &frames
}

func TestSchedulerFirstFrameDoesNotTick(t *testing.T) {
	s, e, frames := newTestScheduler(t)
	e.Start()

	s.Frame(epoch)
	if s.Ticks() != 0 {
		t.Errorf("Ticks = %d after first frame", s.Ticks())
	}
	if len(*frames) != 1 {
		t.Errorf("rendered %d frames, want 1", len(*frames))
	}
}

func TestSchedulerFixedStep(t *testing.T) {
	s, e, frames := newTestScheduler(t)
	e.Start()
	interval := e.TickInterval() // 150ms

	now := epoch
	s.Frame(now)
	for range 9 {
		now = now.Add(50 * time.Millisecond)
		s.Frame(now)
	}
	// 450ms elapsed.
	if s.Ticks() != 3 {
		t.Errorf("Ticks = %d, want 3", s.Ticks())
	}
	if got := e.State().Head(); got != core.P(10, 12) {
		t.Errorf("Head = %v, want (10,12)", got)
	}
	if len(*frames) != 10 {
		t.Errorf("rendered %d frames, want 10", len(*frames))
	}
	if s.Pending() >= interval {
		t.Errorf("Pending = %v, not below interval", s.Pending())
	}
}

func TestSchedulerCatchUp(t *testing.T) {
	s, e, frames := newTestScheduler(t)
	e.Start()

	s.Frame(epoch)
	s.Frame(epoch.Add(620 * time.Millisecond))
	if s.Ticks() != 4 {
		t.Errorf("Ticks = %d, want 4", s.Ticks())
	}
	if s.Pending() != 20*time.Millisecond {
		t.Errorf("Pending = %v, want 20ms", s.Pending())
	}
	if len(*frames) != 2 {
		t.Errorf("rendered %d frames, want one per call", len(*frames))
	}
}

func TestSchedulerNoBankingWhilePaused(t *testing.T) {
	s, e, _ := newTestScheduler(t)
	e.Start()

	s.Frame(epoch)
	s.Frame(epoch.Add(100 * time.Millisecond))
	e.Pause()
	s.Frame(epoch.Add(10 * time.Second))
	if s.Pending() != 0 {
		t.Errorf("Pending = %v while paused", s.Pending())
	}
	e.Resume()
	s.Frame(epoch.Add(10*time.Second + 100*time.Millisecond))
	if s.Ticks() != 0 {
		t.Errorf("Ticks = %d, paused time leaked into the accumulator", s.Ticks())
	}
}

func TestSchedulerBackwardsTime(t *testing.T) {
	s, e, _ := newTestScheduler(t)
	e.Start()

	s.Frame(epoch)
	s.Frame(epoch.Add(-time.Hour))
	if s.Ticks() != 0 || s.Pending() != 0 {
		t.Errorf("backwards clock ticked: %d, %v", s.Ticks(), s.Pending())
	}
}

func TestSchedulerStopsOnGameOver(t *testing.T) {
	s, e, frames := newTestScheduler(t)
	e.snake = []core.Position{core.P(10, 18)}
	e.Start()

	s.Frame(epoch)
	s.Frame(epoch.Add(10 * time.Second))
	if s.Ticks() != 2 {
		t.Errorf("Ticks = %d, want 2 (move then boundary)", s.Ticks())
	}
	if e.Status() != StatusGameOver {
		t.Fatalf("Status = %v", e.Status())
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %v after game over", s.Pending())
	}
	last := (*frames)[len(*frames)-1]
	if !last.GameOver || last.Cause != CauseBoundary {
		t.Errorf("last frame = %+v", last)
	}
}

func TestSchedulerCompletesTransition(t *testing.T) {
	s, e, _ := newTestScheduler(t)
	e.Start()
	for range 5 {
		feedAhead(e)
		e.Tick(epoch)
	}
	if e.Status() != StatusLevelTransition {
		t.Fatalf("Status = %v", e.Status())
	}

	s.Frame(epoch.Add(time.Second))
	if e.Status() != StatusLevelTransition {
		t.Fatal("transition ended early")
	}
	s.Frame(epoch.Add(DefaultTransitionHold))
	if e.Status() != StatusRunning || e.Level().ID != 2 {
		t.Errorf("Status/Level = %v/%d", e.Status(), e.Level().ID)
	}
	if s.Ticks() != 0 {
		t.Errorf("Ticks = %d, hold time must not bank", s.Ticks())
	}
}

func TestSchedulerReset(t *testing.T) {
	s, e, _ := newTestScheduler(t)
	e.Start()
	s.Frame(epoch)
	s.Frame(epoch.Add(100 * time.Millisecond))

	s.Reset()
	s.Frame(epoch.Add(time.Hour))
	if s.Ticks() != 0 || s.Pending() != 0 {
		t.Errorf("Reset kept state: %d, %v", s.Ticks(), s.Pending())
	}
}
