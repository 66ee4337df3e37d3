// Package snake implements the snake simulation: level state, the per-tick
// movement rules, food sampling and a fixed-timestep scheduler. It has no
// dependency on the terminal platform; renderers consume Frame values.
package snake

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/levels"
)

const (
	// DefaultMode is reported with every score when Options.Mode is empty.
	DefaultMode = "classic"
	// DefaultTransitionHold is how long a level-up banner stays up.
	DefaultTransitionHold = 3 * time.Second

	foodPopWindow = 200 * time.Millisecond
	firstLevel    = 1
)

// Options configures a new Engine. Zero values pick defaults.
type Options struct {
	Catalog        *levels.Catalog
	Sampler        *Sampler
	ScoreSink      ScoreSink
	Logger         *log.Logger
	Mode           string
	StartLevel     int
	TransitionHold time.Duration
}

// Engine owns the state of one snake session. It is not safe for
// concurrent use; the platform calls it from a single loop.
type Engine struct {
	catalog *levels.Catalog
	sampler *Sampler
	sink    ScoreSink
	logger  *log.Logger
	mode    string
	hold    time.Duration

	level      levels.Config
	snake      []core.Position
	food       *core.Position
	heading    core.Direction
	pending    core.Direction
	status     Status
	cause      Cause
	score      int
	levelScore int
	tick       uint64
	holdUntil  time.Time
	lastFed    time.Time
}

// NewEngine creates an engine in the Idle state on opts.StartLevel.
func NewEngine(opts Options) *Engine {
	if opts.Catalog == nil {
		opts.Catalog = levels.Builtin()
	}
	if opts.Sampler == nil {
		opts.Sampler = NewSampler(nil, DefaultSampleAttempts)
	}
	if opts.ScoreSink == nil {
		opts.ScoreSink = ScoreSinkFunc(func(ScoreEvent) {})
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Mode == "" {
		opts.Mode = DefaultMode
	}
	if opts.StartLevel <= 0 {
		opts.StartLevel = firstLevel
	}
	if opts.TransitionHold <= 0 {
		opts.TransitionHold = DefaultTransitionHold
	}

	e := &Engine{
		catalog: opts.Catalog,
		sampler: opts.Sampler,
		sink:    opts.ScoreSink,
		logger:  opts.Logger,
		mode:    opts.Mode,
		hold:    opts.TransitionHold,
		status:  StatusIdle,
	}
	e.loadLevel(e.catalog.Get(opts.StartLevel))
	return e
}

// loadLevel switches to cfg and resets everything that is per-level.
func (e *Engine) loadLevel(cfg levels.Config) {
	e.level = cfg
	e.snake = []core.Position{cfg.StartPosition()}
	e.heading = core.Right
	e.pending = core.Right
	e.levelScore = 0
	e.lastFed = time.Time{}
	e.food = e.initialFood()
}

func (e *Engine) initialFood() *core.Position {
	if p, ok := e.sampler.Sample(e.level.BoardSize, e.occupied()); ok {
		return &p
	}

	fallback := core.P(1, 1)
	if _, taken := e.occupied()[fallback]; taken || !fallback.InBounds(e.level.BoardSize) {
		e.logger.Warn("no free cell for food", "level", e.level.ID)
		return nil
	}
	e.logger.Warn("food sampling failed, using fallback cell", "level", e.level.ID, "cell", fallback)
	return &fallback
}

// occupied returns every cell food must avoid: the snake and all level
// obstacles, whether or not they collide.
func (e *Engine) occupied() map[core.Position]struct{} {
	cells := make(map[core.Position]struct{}, len(e.snake)+len(e.level.Obstacles))
	for _, p := range e.snake {
		cells[p] = struct{}{}
	}
	for _, p := range e.level.Obstacles {
		cells[p] = struct{}{}
	}
	return cells
}

// obstacles returns the obstacles that collide on the current level.
func (e *Engine) obstacles() []core.Position {
	if !e.level.Features.Obstacles {
		return nil
	}
	return e.level.Obstacles
}

// Start begins play from Idle.
func (e *Engine) Start() {
	if e.status != StatusIdle {
		return
	}
	e.status = StatusRunning
	e.logger.Debug("session started", "level", e.level.ID)
}

// Pause suspends a running session.
func (e *Engine) Pause() {
	if e.status == StatusRunning {
		e.status = StatusPaused
	}
}

// Resume continues a paused session.
func (e *Engine) Resume() {
	if e.status == StatusPaused {
		e.status = StatusRunning
	}
}

// TogglePause flips between Running and Paused. From Idle it starts play.
func (e *Engine) TogglePause() {
	switch e.status {
	case StatusIdle:
		e.Start()
	case StatusRunning:
		e.Pause()
	case StatusPaused:
		e.Resume()
	}
}

// SetOverlay pauses while a blocking overlay (help, leaderboard) is shown.
// Hiding the overlay does not resume.
func (e *Engine) SetOverlay(active bool) {
	if active {
		e.Pause()
	}
}

// Restart abandons the current run and returns to Idle on level 1.
// It never submits a score.
func (e *Engine) Restart() {
	switch e.status {
	case StatusGameOver, StatusPaused, StatusLevelTransition:
	default:
		return
	}
	e.score = 0
	e.cause = CauseNone
	e.holdUntil = time.Time{}
	e.loadLevel(e.catalog.Get(firstLevel))
	e.status = StatusIdle
}

// SelectLevel picks the level to play. Only allowed before the run starts.
func (e *Engine) SelectLevel(id int) {
	if e.status != StatusIdle {
		return
	}
	e.loadLevel(e.catalog.Get(id))
}

// SetDirection buffers a heading for the next tick. Invalid vectors and
// reversals of the current heading are rejected. A later accepted call
// overwrites an earlier one.
func (e *Engine) SetDirection(d core.Direction) bool {
	switch e.status {
	case StatusGameOver, StatusLevelTransition:
		return false
	}
	if !d.Valid() {
		return false
	}
	if IsReversal(e.heading, d) {
		e.logger.Debug("reversal rejected", "heading", e.heading, "requested", d)
		return false
	}
	e.pending = d
	return true
}

// HandleAction applies a keyboard action.
func (e *Engine) HandleAction(a core.Action) {
	if d, ok := a.Direction(); ok {
		e.SetDirection(d)
		return
	}
	switch a {
	case core.ActionStart:
		if e.status == StatusPaused {
			e.Resume()
			return
		}
		e.Start()
	case core.ActionPause:
		e.TogglePause()
	case core.ActionRestart:
		e.Restart()
	}
}

// Tick advances the simulation by one step. It does nothing unless the
// session is running.
func (e *Engine) Tick(now time.Time) TickResult {
	if e.status != StatusRunning || len(e.snake) == 0 {
		return TickResult{}
	}
	e.tick++
	e.heading = e.pending

	head := e.snake[len(e.snake)-1]
	next, hitWall := NextHead(head, e.heading, e.level.BoardSize, e.level.Features.Wrap)
	switch {
	case hitWall:
		return e.endGame(CauseBoundary)
	case SelfCollision(next, e.snake):
		return e.endGame(CauseSelf)
	case ObstacleCollision(next, e.obstacles()):
		return e.endGame(CauseObstacle)
	}

	ate := FoodCollision(next, e.food)
	e.snake = append(e.snake, next)
	if !ate {
		e.snake = e.snake[1:]
		return TickResult{Moved: true}
	}

	e.score += e.level.FoodScore
	e.levelScore += e.level.FoodScore
	e.lastFed = now
	e.respawnFood()

	res := TickResult{Moved: true, Ate: true}
	if e.levelScore/e.level.FoodScore >= e.level.FoodsToAdvance() && !e.level.MaxLevel {
		e.status = StatusLevelTransition
		e.holdUntil = now.Add(e.hold)
		res.LevelUp = true
		e.logger.Info("level complete", "level", e.level.ID, "score", e.score)
	}
	return res
}

// respawnFood samples a new food cell. On failure the old food stays put.
func (e *Engine) respawnFood() {
	p, ok := e.sampler.Sample(e.level.BoardSize, e.occupied())
	if !ok {
		e.logger.Warn("food sampling exhausted, keeping previous food",
			"level", e.level.ID, "attempts", e.sampler.MaxAttempts(), "length", len(e.snake))
		return
	}
	e.food = &p
}

func (e *Engine) endGame(cause Cause) TickResult {
	e.status = StatusGameOver
	e.cause = cause
	e.logger.Info("game over", "cause", cause, "score", e.score, "level", e.level.ID)
	e.sink.SubmitScore(ScoreEvent{Score: e.score, Level: e.level.ID, Mode: e.mode})
	return TickResult{GameOver: true, Cause: cause}
}

// Update completes a pending level transition once its hold has elapsed.
func (e *Engine) Update(now time.Time) {
	if e.status != StatusLevelTransition || now.Before(e.holdUntil) {
		return
	}
	from := e.level.ID
	e.loadLevel(e.catalog.Next(from))
	e.holdUntil = time.Time{}
	e.status = StatusRunning
	e.logger.Info("level started", "from", from, "level", e.level.ID, "name", e.level.Name)
}

// HoldRemaining is the time left on a level transition banner.
func (e *Engine) HoldRemaining(now time.Time) time.Duration {
	if e.status != StatusLevelTransition {
		return 0
	}
	return max(e.holdUntil.Sub(now), 0)
}

// State returns a deep copy of the current state.
func (e *Engine) State() State {
	return State{
		Tick:       e.tick,
		Snake:      copyPositions(e.snake),
		Food:       copyPosition(e.food),
		Direction:  e.heading,
		Pending:    e.pending,
		Status:     e.status,
		Score:      e.score,
		LevelScore: e.levelScore,
		Level:      e.level.ID,
		Mode:       e.mode,
		Cause:      e.cause,
	}
}

// Frame builds the render payload for time now.
func (e *Engine) Frame(now time.Time) Frame {
	return Frame{
		Snake:         copyPositions(e.snake),
		Food:          copyPosition(e.food),
		Obstacles:     copyPositions(e.obstacles()),
		BoardSize:     e.level.BoardSize,
		GameOver:      e.status == StatusGameOver,
		FoodJustEaten: !e.lastFed.IsZero() && now.Sub(e.lastFed) < foodPopWindow,
		Status:        e.status,
		Score:         e.score,
		LevelScore:    e.levelScore,
		Level:         e.level.ID,
		LevelName:     e.level.Name,
		Cause:         e.cause,
	}
}

// Level returns the current level configuration.
func (e *Engine) Level() levels.Config {
	return e.level
}

// Status returns the lifecycle state.
func (e *Engine) Status() Status {
	return e.status
}

// TickInterval returns the current level's tick interval.
func (e *Engine) TickInterval() time.Duration {
	return e.level.TickInterval
}

// Catalog returns the level catalog the engine loads from.
func (e *Engine) Catalog() *levels.Catalog {
	return e.catalog
}
