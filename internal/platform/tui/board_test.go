package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/levels"
)

func TestRequiredSize(t *testing.T) {
	w, h := RequiredSize(20)
	if w != 42 || h != 24 {
		t.Errorf("RequiredSize(20) = %dx%d, want 42x24", w, h)
	}
}

func TestDrawFramePlacesCells(t *testing.T) {
	s := core.NewScreen(40, 20)
	food := core.P(0, 0)
	f := snake.Frame{
		BoardSize: 5,
		Snake:     []core.Position{core.P(2, 1), core.P(2, 2)},
		Food:      &food,
		Obstacles: []core.Position{core.P(4, 4)},
		Status:    snake.StatusRunning,
		Level:     1,
	}
	DrawFrame(s, f, HUD{Level: levels.DefaultConfig})

	// Board 5 needs 12x9; it is centered at (14,5) with cells from (15,7).
	checks := []struct {
		x, y  int
		r     rune
		color core.Color
	}{
		{14, 6, '┌', core.ColorBorder},
		{15, 7, '(', core.ColorFood},
		{16, 7, ')', core.ColorFood},
		{17, 9, '█', core.ColorSnakeBody},
		{19, 9, '█', core.ColorSnakeHead},
		{23, 11, '▓', core.ColorObstacle},
		{17, 7, '·', core.ColorGrid},
	}
	for _, c := range checks {
		got := s.GetCell(c.x, c.y)
		if got.Rune != c.r || got.Color != c.color {
			t.Errorf("cell (%d,%d) = %q/%d, want %q/%d", c.x, c.y, got.Rune, got.Color, c.r, c.color)
		}
	}
}

func TestDrawFrameTooSmall(t *testing.T) {
	s := core.NewScreen(20, 8)
	DrawFrame(s, snake.Frame{BoardSize: 20}, HUD{})
	if !strings.Contains(s.String(), "Terminal too small") {
		t.Errorf("expected size warning, got:\n%s", s.String())
	}
}

func TestDrawFrameOverlays(t *testing.T) {
	tests := []struct {
		status snake.Status
		hud    HUD
		want   string
	}{
		{snake.StatusIdle, HUD{Level: levels.DefaultConfig}, "ENTER to start"},
		{snake.StatusPaused, HUD{}, "PAUSED"},
		{snake.StatusLevelTransition, HUD{Next: levels.Config{Name: "Speed Runner"}}, "Next: Speed Runner"},
		{snake.StatusGameOver, HUD{Notice: "New best score!"}, "New best score!"},
		{snake.StatusRunning, HUD{ShowHelp: true}, "CONTROLS"},
	}
	for _, tt := range tests {
		s := core.NewScreen(80, 30)
		DrawFrame(s, snake.Frame{BoardSize: 20, Status: tt.status, Level: 1, Cause: snake.CauseSelf}, tt.hud)
		if !strings.Contains(s.String(), tt.want) {
			t.Errorf("%s: %q not drawn", tt.status, tt.want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 1)
	s.DrawText(0, 0, "snake", core.ColorHUD)
	out := RenderScreen(s, NewPalette(levels.DefaultConfig.Theme))
	if !strings.Contains(out, "snake") {
		t.Errorf("rendered output lost text: %q", out)
	}
}

func TestDrawOverlayClipsToBoard(t *testing.T) {
	s := core.NewScreen(20, 12)
	box := core.NewRect(0, 3, 20, 4)
	lines := []string{"xx", "xx", "xx", "xx", "xx", "xx"}
	drawOverlay(s, box, lines)

	for y := 0; y < s.Height(); y++ {
		inside := y > box.Y && y < box.Bottom()-1
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if !inside && (c.Rune == 'x' || c.Color == core.ColorOverlay) {
				t.Fatalf("overlay painted (%d,%d) outside the board", x, y)
			}
		}
	}
	if !strings.Contains(s.Row(4), "xx") {
		t.Errorf("row 4 = %q, want overlay text", s.Row(4))
	}
}
