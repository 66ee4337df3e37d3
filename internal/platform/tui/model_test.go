package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/scoring"
)

func newTestGame(t *testing.T, w, h int) GameModel {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: w, ScreenH: h, FrameRate: 60, Seed: 99}
	return NewGameModel(Deps{}, cfg, 1, nil)
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	g, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return g
}

func TestGameModelStartAndTick(t *testing.T) {
	m := newTestGame(t, 80, 30)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Engine().Status() != snake.StatusRunning {
		t.Fatalf("Status = %v, want running", m.Engine().Status())
	}

	t0 := time.Now()
	m = update(t, m, FrameMsg{At: t0})
	m = update(t, m, FrameMsg{At: t0.Add(160 * time.Millisecond)})
	if got := m.Engine().State().Tick; got != 1 {
		t.Errorf("Tick = %d, want 1", got)
	}
	if m.View() == "" {
		t.Error("empty view")
	}
}

func TestGameModelTooSmallBlocksStart(t *testing.T) {
	m := newTestGame(t, 30, 10)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Engine().Status() != snake.StatusIdle {
		t.Errorf("Status = %v, want idle on a small terminal", m.Engine().Status())
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Engine().Status() != snake.StatusRunning {
		t.Errorf("Status = %v after resize", m.Engine().Status())
	}
}

func TestGameModelOverlaysBlockPauseToggle(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}},
		{"p", runeKey('p')},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}},
	}

	for _, tt := range tests {
		t.Run("too small/"+tt.name, func(t *testing.T) {
			m := newTestGame(t, 30, 10)
			m = update(t, m, tt.key)
			if got := m.Engine().Status(); got != snake.StatusIdle {
				t.Errorf("Status = %v, want idle on a small terminal", got)
			}
		})

		t.Run("help/"+tt.name, func(t *testing.T) {
			m := newTestGame(t, 80, 30)
			m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			m = update(t, m, runeKey('?'))
			m = update(t, m, tt.key)
			if got := m.Engine().Status(); got != snake.StatusPaused {
				t.Errorf("Status = %v, want paused while help is open", got)
			}
			if !m.showHelp {
				t.Error("help closed unexpectedly")
			}
		})
	}
}

func TestGameModelResumesAfterHelpCloses(t *testing.T) {
	m := newTestGame(t, 80, 30)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, runeKey('?'))
	m = update(t, m, runeKey('?'))
	m = update(t, m, runeKey('p'))
	if got := m.Engine().Status(); got != snake.StatusRunning {
		t.Errorf("Status = %v, want running after help closed", got)
	}
}

func TestGameModelDropsStaleFrames(t *testing.T) {
	m := newTestGame(t, 80, 30)
	m.gen = 2
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	t0 := time.Now()
	next, cmd := m.Update(FrameMsg{At: t0, Gen: 1})
	if cmd != nil {
		t.Error("stale frame scheduled another frame")
	}
	m = next.(GameModel)
	m = update(t, m, FrameMsg{At: t0.Add(500 * time.Millisecond), Gen: 1})
	if got := m.Engine().State().Tick; got != 0 {
		t.Errorf("Tick = %d after stale frames, want 0", got)
	}

	next, cmd = m.Update(FrameMsg{At: t0, Gen: 2})
	if cmd == nil {
		t.Error("current frame did not schedule the next one")
	}
	m = next.(GameModel)
	m = update(t, m, FrameMsg{At: t0.Add(160 * time.Millisecond), Gen: 2})
	if got := m.Engine().State().Tick; got != 1 {
		t.Errorf("Tick = %d, want 1", got)
	}
}

func TestGameModelBackPausesThenLeaves(t *testing.T) {
	m := newTestGame(t, 80, 30)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Engine().Status() != snake.StatusPaused || m.BackToMenu() {
		t.Fatalf("first esc: status %v, back %v", m.Engine().Status(), m.BackToMenu())
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("second esc should leave the game")
	}
}

func TestGameModelHelpOverlayPauses(t *testing.T) {
	m := newTestGame(t, 80, 30)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, runeKey('?'))
	if m.Engine().Status() != snake.StatusPaused {
		t.Errorf("Status = %v, want paused under help", m.Engine().Status())
	}
	m = update(t, m, runeKey('?'))
	if m.Engine().Status() != snake.StatusPaused {
		t.Error("closing help resumed the game")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestGame(t, 80, 30)
	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestGameModelScoreNotice(t *testing.T) {
	m := newTestGame(t, 80, 30)
	res := scoring.Result{Event: snake.ScoreEvent{Score: 40, Level: 1}}
	res.Updated = true
	res.BestScore = 40

	m = update(t, m, ScoreResultMsg(res))
	if m.notice != "New best score!" || m.best != 40 {
		t.Errorf("notice/best = %q/%d", m.notice, m.best)
	}
}

func TestSessionStartLevelSkipsMenu(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 40, StartLevel: 3}
	s := NewSessionModel(Deps{}, cfg, nil, nil)
	if s.view != viewGame || s.game.Engine().Level().ID != 3 {
		t.Fatalf("view %v, level %d", s.view, s.game.Engine().Level().ID)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 40}
	var m tea.Model = NewSessionModel(Deps{}, cfg, nil, nil)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := m.(SessionModel)
	if s.view != viewGame || s.game.Engine().Level().ID != 2 {
		t.Fatalf("view %v after selecting level 2", s.view)
	}

	// Idle game: esc goes straight back.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(SessionModel).view != viewMenu {
		t.Errorf("view = %v, want menu", m.(SessionModel).view)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.(SessionModel).game.gen; got != 2 {
		t.Errorf("second game gen = %d, want 2", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.(SessionModel).view != viewScores {
		t.Errorf("view = %v, want scores", m.(SessionModel).view)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(SessionModel).view != viewMenu {
		t.Errorf("view = %v, want menu after scoreboard", m.(SessionModel).view)
	}
}
