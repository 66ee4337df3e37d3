package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/levels"
	"github.com/vovakirdan/tui-snake/internal/scoring"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Deps are the long-lived collaborators shared by every game in a session.
type Deps struct {
	Catalog  *levels.Catalog
	Gameplay config.GameplayConfig
	Store    *storage.Store // May be nil when persistence is unavailable
	Logger   *log.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Catalog == nil {
		d.Catalog = levels.Builtin()
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	return d
}

// ScoreResultMsg carries the outcome of a background score submission.
type ScoreResultMsg scoring.Result

// waitForScore returns a command that delivers the next submission result.
func waitForScore(results <-chan scoring.Result) tea.Cmd {
	if results == nil {
		return nil
	}
	return func() tea.Msg {
		res, ok := <-results
		if !ok {
			return nil
		}
		return ScoreResultMsg(res)
	}
}

// GameModel runs one snake session: it feeds frame messages into the
// scheduler, keys into the engine, and draws the latest frame.
type GameModel struct {
	engine    *snake.Engine
	scheduler *snake.Scheduler
	latest    *snake.Frame // Written by the scheduler's render callback
	screen    *core.Screen
	palette   Palette
	paletteID int
	keyMapper *KeyMapper
	deps      Deps
	config    core.RuntimeConfig
	gen       int // Tags this game's frame messages

	now        time.Time
	best       int
	bestLevel  int
	notice     string
	showHelp   bool
	tooSmall   bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game on the given level. Scores go to sink.
func NewGameModel(deps Deps, cfg core.RuntimeConfig, level int, sink snake.ScoreSink) GameModel {
	deps = deps.withDefaults()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := snake.NewEngine(snake.Options{
		Catalog:        deps.Catalog,
		Sampler:        snake.NewSampler(rand.New(rand.NewSource(seed)), deps.Gameplay.SamplerAttempts),
		ScoreSink:      sink,
		Logger:         deps.Logger,
		Mode:           deps.Gameplay.Mode,
		StartLevel:     level,
		TransitionHold: deps.Gameplay.TransitionHold(),
	})

	now := time.Now()
	latest := engine.Frame(now)
	frame := &latest
	m := GameModel{
		engine:    engine,
		latest:    frame,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keyMapper: NewKeyMapper(),
		deps:      deps,
		config:    cfg,
		now:       now,
	}
	m.scheduler = snake.NewScheduler(engine, func(f snake.Frame) { *frame = f })
	m.refreshLevel()
	return m
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return frameCmd(m.config.FrameRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.checkSize()
		return m, nil

	case FrameMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleFrame(msg.At)

	case ScoreResultMsg:
		m.handleScore(scoring.Result(msg))
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?":
		m.showHelp = !m.showHelp
		m.engine.SetOverlay(m.showHelp)
		return m, nil
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		// Back pauses a running game; from anywhere else it leaves.
		if m.engine.Status() == snake.StatusRunning {
			m.engine.Pause()
			return m, nil
		}
		m.backToMenu = true
		return m, nil
	case core.ActionRestart:
		m.notice = ""
		m.scheduler.Reset()
	}

	// Blocking overlays keep the game paused until they close.
	if (m.tooSmall || m.showHelp) && (action == core.ActionStart || action == core.ActionPause) {
		return m, nil
	}
	m.engine.HandleAction(action)
	m.refreshLevel()
	*m.latest = m.engine.Frame(m.now)
	return m, nil
}

// handleFrame advances the simulation to now and schedules the next frame.
func (m GameModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	m.now = now
	m.scheduler.Frame(now)
	m.refreshLevel()
	return m, frameCmd(m.config.FrameRate, m.gen)
}

func (m *GameModel) handleScore(res scoring.Result) {
	switch {
	case res.Err != nil:
		m.notice = "Score could not be saved"
	case res.Event.Level != m.engine.Level().ID:
		return
	case res.Updated:
		m.notice = "New best score!"
		m.best = res.BestScore
	default:
		m.notice = fmt.Sprintf("Keep going! Best: %d", res.BestScore)
		m.best = res.BestScore
	}
}

// refreshLevel updates level-scoped display state after a level change.
func (m *GameModel) refreshLevel() {
	lvl := m.engine.Level()
	if m.palette == nil || m.paletteID != lvl.ID {
		m.palette = NewPalette(lvl.Theme)
		m.paletteID = lvl.ID
		m.checkSize()
	}
	if m.bestLevel != lvl.ID {
		m.bestLevel = lvl.ID
		m.best = 0
		if m.deps.Store != nil {
			best, err := m.deps.Store.PersonalBest(m.config.Player, lvl.ID)
			if err != nil {
				m.deps.Logger.Warn("could not load personal best", "level", lvl.ID, "err", err)
			}
			m.best = best
		}
	}
}

// checkSize pauses the game while the terminal cannot fit the board.
func (m *GameModel) checkSize() {
	w, h := RequiredSize(m.engine.Level().BoardSize)
	m.tooSmall = m.config.ScreenW < w || m.config.ScreenH < h
	m.engine.SetOverlay(m.tooSmall)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_L%d_%s.txt", m.engine.Level().ID, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m GameModel) hud() HUD {
	lvl := m.engine.Level()
	return HUD{
		Level:    lvl,
		Next:     m.engine.Catalog().Next(lvl.ID),
		Best:     m.best,
		Notice:   m.notice,
		Hold:     m.engine.HoldRemaining(m.now),
		ShowHelp: m.showHelp,
	}
}

func (m GameModel) draw() {
	DrawFrame(m.screen, *m.latest, m.hud())
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen, m.palette)
}

// Engine exposes the running engine.
func (m GameModel) Engine() *snake.Engine {
	return m.engine
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
