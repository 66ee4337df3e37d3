package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/levels"
)

// Palette maps core.Color to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// obstacleColor is shared by every level; themes do not carry one.
const obstacleColor = "#9ca3af"

// NewPalette builds the styles for a level theme. Empty theme entries fall
// back to plain terminal colors.
func NewPalette(theme levels.Theme) Palette {
	fg := func(hex, fallback string) lipgloss.Style {
		if hex == "" {
			hex = fallback
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}

	return Palette{
		core.ColorDefault:   lipgloss.NewStyle(),
		core.ColorSnakeHead: fg(theme.SnakeHead, "10").Bold(true),
		core.ColorSnakeBody: fg(theme.SnakeBody, "2"),
		core.ColorFood:      fg(theme.Food, "9").Bold(true),
		core.ColorObstacle:  fg(obstacleColor, "245"),
		core.ColorGrid:      fg(theme.Grid, "236"),
		core.ColorBorder:    fg(theme.Border, "240"),
		core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		core.ColorOverlay: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true),
		core.ColorDim: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
