package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/scoring"
)

type view int

const (
	viewMenu view = iota
	viewGame
	viewScores
)

// SessionModel manages the full session flow: level menu -> game -> menu,
// with the scoreboard reachable from the menu. It is the top-level model
// for both local play and SSH sessions.
type SessionModel struct {
	deps     Deps
	config   core.RuntimeConfig
	sink     snake.ScoreSink
	results  <-chan scoring.Result
	menu     LevelMenuModel
	game     *GameModel
	scores   *ScoreboardModel
	view     view
	games    int // Games started so far, used as the frame generation
	quitting bool
}

// NewSessionModel creates a session. Finished runs go to sink and their
// results arrive on results; either may be nil. A positive
// cfg.StartLevel skips the menu.
func NewSessionModel(deps Deps, cfg core.RuntimeConfig, sink snake.ScoreSink, results <-chan scoring.Result) SessionModel {
	deps = deps.withDefaults()
	m := SessionModel{
		deps:    deps,
		config:  cfg,
		sink:    sink,
		results: results,
		menu:    NewLevelMenuModel(deps.Catalog, deps.Store, cfg),
	}
	if cfg.StartLevel > 0 {
		m.startGame(cfg.StartLevel)
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForScore(m.results)}
	if m.view == viewGame {
		cmds = append(cmds, m.game.Init())
	}
	return tea.Batch(cmds...)
}

func (m *SessionModel) startGame(level int) {
	m.games++
	game := NewGameModel(m.deps, m.config, level, m.sink)
	game.gen = m.games
	m.game = &game
	m.view = viewGame
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	case ScoreResultMsg:
		var cmd tea.Cmd
		if m.game != nil {
			var updated tea.Model
			updated, cmd = m.game.Update(msg)
			if g, ok := updated.(GameModel); ok {
				m.game = &g
			}
		}
		return m, tea.Batch(cmd, waitForScore(m.results))
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menu, ok := newMenu.(LevelMenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.menu.WantsScoreboard():
		sb := NewScoreboardModel(m.deps.Catalog, m.deps.Store, m.menu.levels[m.menu.cursor].ID, m.config.ScreenW, m.config.ScreenH)
		m.scores = &sb
		m.view = viewScores
		m.menu.openScoreboard = false
		return m, sb.Init()
	case m.menu.Selected() > 0:
		level := m.menu.Selected()
		m.menu.selected = 0
		m.startGame(level)
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if game, ok := newModel.(GameModel); ok {
		m.game = &game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = nil
		m.view = viewMenu
		m.menu = NewLevelMenuModel(m.deps.Catalog, m.deps.Store, m.config)
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = &sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.scores = nil
		m.view = viewMenu
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// Run starts a local session in the alternate screen and blocks until the
// player quits. Pending score writes are flushed before it returns.
func Run(deps Deps, cfg core.RuntimeConfig) error {
	deps = deps.withDefaults()
	sub, results := newSubmitter(deps, cfg.Player)
	defer sub.Close()

	p := tea.NewProgram(
		NewSessionModel(deps, cfg, sub, results),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// newSubmitter wires a background score submitter to the session store.
// Results are dropped if nobody is listening.
func newSubmitter(deps Deps, player string) (*scoring.Submitter, chan scoring.Result) {
	results := make(chan scoring.Result, 4)
	var rec scoring.Recorder
	if deps.Store != nil {
		rec = deps.Store
	}
	sub := scoring.New(rec, scoring.Options{
		Player: player,
		Logger: deps.Logger,
		OnResult: func(r scoring.Result) {
			select {
			case results <- r:
			default:
			}
		},
	})
	return sub, results
}
