package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/levels"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// LevelMenuModel lets users pick the level a run starts on.
type LevelMenuModel struct {
	levels         []levels.Config
	best           map[int]int // Player's best per level
	top            map[int]int // Best of any player per level
	cursor         int
	width          int
	height         int
	keyMapper      *KeyMapper
	selected       int // Level id, 0 while choosing
	quitting       bool
	openScoreboard bool
}

// NewLevelMenuModel creates a level menu. store may be nil.
func NewLevelMenuModel(catalog *levels.Catalog, store *storage.Store, cfg core.RuntimeConfig) LevelMenuModel {
	m := LevelMenuModel{
		levels:    catalog.All(),
		best:      make(map[int]int),
		top:       make(map[int]int),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		for _, l := range m.levels {
			if best, err := store.PersonalBest(cfg.Player, l.ID); err == nil {
				m.best[l.ID] = best
			}
			if top, err := store.HighScore(l.ID); err == nil {
				m.top[l.ID] = top
			}
		}
	}
	return m
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.levels) > 0 {
			m.selected = m.levels[m.cursor].ID
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
	}
	return m, nil
}

// View renders the level list.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level:", m.width))
	b.WriteString("\n\n")

	for i, l := range m.levels {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color(l.Theme.SnakeHead))
		}
		line := fmt.Sprintf("%s%d. %-16s %2dx%-2d %4dms  best %-5d top %d",
			cursor, l.ID, l.Name, l.BoardSize, l.BoardSize, l.TickInterval.Milliseconds(), m.best[l.ID], m.top[l.ID])
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	if len(m.levels) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(m.levels[m.cursor].Description), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: Play  |  Tab: Scores  |  Q: Quit"), m.width))
	return b.String()
}

// Selected returns the chosen level id, or 0 while still choosing.
func (m LevelMenuModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m LevelMenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}
