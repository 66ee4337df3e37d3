package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/levels"
)

// Each board cell is two terminal columns wide so the board looks square.
const cellWidth = 2

// HUD carries the data around the board that is not part of a frame.
type HUD struct {
	Level    levels.Config
	Next     levels.Config
	Best     int
	Notice   string
	Hold     time.Duration
	ShowHelp bool
}

// RequiredSize returns the terminal size needed to draw a board:
// a status line, the bordered board and a help line.
func RequiredSize(boardSize int) (w, h int) {
	return boardSize*cellWidth + 2, boardSize + 4
}

// DrawFrame renders f onto s.
func DrawFrame(s *core.Screen, f snake.Frame, hud HUD) {
	s.Clear()

	w, h := RequiredSize(f.BoardSize)
	if s.Width() < w || s.Height() < h {
		mid := s.Height() / 2
		s.DrawTextCentered(mid-1, "Terminal too small", core.ColorHUD)
		s.DrawTextCentered(mid, fmt.Sprintf("need %dx%d, have %dx%d", w, h, s.Width(), s.Height()), core.ColorDim)
		s.DrawTextCentered(mid+1, "Q: Quit", core.ColorDim)
		return
	}

	ox := (s.Width() - w) / 2
	oy := (s.Height() - h) / 2

	drawStatus(s, ox, oy, w, f, hud)

	box := core.NewRect(ox, oy+1, w, f.BoardSize+2)
	s.DrawBox(box, core.ColorBorder)

	bx, by := ox+1, oy+2
	put := func(p core.Position, left, right rune, c core.Color) {
		if !p.InBounds(f.BoardSize) {
			return
		}
		x := bx + p.Col*cellWidth
		s.SetColored(x, by+p.Row, left, c)
		s.SetColored(x+1, by+p.Row, right, c)
	}

	for row := range f.BoardSize {
		for col := range f.BoardSize {
			put(core.P(row, col), '·', ' ', core.ColorGrid)
		}
	}
	for _, o := range f.Obstacles {
		put(o, '▓', '▓', core.ColorObstacle)
	}
	if f.Food != nil {
		put(*f.Food, '(', ')', core.ColorFood)
	}
	for i, seg := range f.Snake {
		if i == len(f.Snake)-1 {
			head := '█'
			if f.FoodJustEaten {
				head = '▓'
			}
			put(seg, head, head, core.ColorSnakeHead)
			continue
		}
		put(seg, '█', '█', core.ColorSnakeBody)
	}

	if lines := overlayLines(f, hud); len(lines) > 0 {
		drawOverlay(s, box, lines)
	}

	help := "arrows/wasd/hjkl: Turn  Space: Pause  ?: Help  Q: Quit"
	if len(help) > w {
		help = "?: Help  Q: Quit"
	}
	s.DrawText(ox+(w-len(help))/2, oy+h-1, help, core.ColorDim)
}

func drawStatus(s *core.Screen, ox, oy, w int, f snake.Frame, hud HUD) {
	left := fmt.Sprintf("L%d %s", f.Level, hud.Level.Name)
	right := fmt.Sprintf("Score %d  Best %d", f.Score, hud.Best)
	if fs := hud.Level.FoodScore; fs > 0 && !hud.Level.MaxLevel {
		right = fmt.Sprintf("Food %d/%d  %s", f.LevelScore/fs, hud.Level.FoodsToAdvance(), right)
	}
	s.DrawText(ox, oy, left, core.ColorHUD)
	s.DrawText(ox+w-len([]rune(right)), oy, right, core.ColorHUD)
}

func overlayLines(f snake.Frame, hud HUD) []string {
	if hud.ShowHelp {
		return []string{
			"CONTROLS",
			"",
			"Arrows / WASD / HJKL  turn",
			"Enter  start",
			"Space / P  pause",
			"R  restart",
			"Esc  level menu",
			"Q  quit",
			"",
			"? to close",
		}
	}

	switch f.Status {
	case snake.StatusIdle:
		lines := []string{fmt.Sprintf("LEVEL %d: %s", hud.Level.ID, hud.Level.Name)}
		if hud.Level.Description != "" {
			lines = append(lines, hud.Level.Description)
		}
		return append(lines, "", featureLine(hud.Level), "", "ENTER to start")
	case snake.StatusPaused:
		return []string{"PAUSED", "", "Space: Resume  R: Restart  Esc: Menu"}
	case snake.StatusLevelTransition:
		secs := int(math.Ceil(hud.Hold.Seconds()))
		return []string{
			fmt.Sprintf("LEVEL %d COMPLETE", f.Level),
			"",
			fmt.Sprintf("Next: %s in %d", hud.Next.Name, secs),
		}
	case snake.StatusGameOver:
		lines := []string{"GAME OVER", causeText(f.Cause), "", fmt.Sprintf("Score %d", f.Score)}
		if hud.Notice != "" {
			lines = append(lines, hud.Notice)
		}
		return append(lines, "", "R: Restart  Esc: Menu")
	}
	return nil
}

func featureLine(l levels.Config) string {
	line := fmt.Sprintf("%dx%d  %v/tick", l.BoardSize, l.BoardSize, l.TickInterval)
	if l.Features.Wrap {
		line += "  wrap"
	}
	if l.Features.Obstacles && len(l.Obstacles) > 0 {
		line += fmt.Sprintf("  %d obstacles", len(l.Obstacles))
	}
	return line
}

func causeText(c snake.Cause) string {
	switch c {
	case snake.CauseBoundary:
		return "You hit the wall"
	case snake.CauseSelf:
		return "You ran into yourself"
	case snake.CauseObstacle:
		return "You hit an obstacle"
	}
	return ""
}

// drawOverlay paints a centered text panel over the board. The panel is
// clipped to the inside of box.
func drawOverlay(s *core.Screen, box core.Rect, lines []string) {
	inner := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width = min(width+4, inner.W)

	top := box.Y + (box.H-len(lines))/2
	left := box.X + (box.W-width)/2
	panel := core.NewRect(left, top-1, width, len(lines)+2)
	for y := panel.Y; y < panel.Bottom(); y++ {
		for x := panel.X; x < panel.Right(); x++ {
			if inner.Contains(x, y) {
				s.SetColored(x, y, ' ', core.ColorOverlay)
			}
		}
	}
	for i, l := range lines {
		if !inner.Contains(left, top+i) {
			continue
		}
		r := []rune(l)
		if len(r) > width {
			r = r[:width]
		}
		s.DrawText(left+(width-len(r))/2, top+i, string(r), core.ColorOverlay)
	}
}
