package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagLevel  int
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game. Without --level a level menu is shown first.

Controls:
  Arrows/WASD/HJKL - Turn
  Enter            - Start
  Space/P          - Pause
  R                - Restart
  ?                - Help
  Esc              - Pause, then back to the level menu
  Q/Ctrl+C         - Quit

Clearing level N takes N*5 foods. Level 5 is endless.

Examples:
  snake play
  snake play --level 4
  snake play --seed 42 --config ./my-levels.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start on this level and skip the menu")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded on the leaderboard (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	gameCfg, catalog, err := loadGame(logger)
	if err != nil {
		return err
	}

	if flagLevel < 0 || flagLevel > catalog.MaxID() {
		return fmt.Errorf("level must be between 1 and %d (%s)", catalog.MaxID(), strings.Join(catalog.Names(), ", "))
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.FrameRate = flagFPS
	}
	cfg.Seed = flagSeed
	cfg.StartLevel = flagLevel
	cfg.Player = flagPlayer
	if cfg.Player == "" {
		cfg.Player = os.Getenv("USER")
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "player", cfg.Player, "level", flagLevel, "levels", catalog.Len())
	if err := tui.Run(tui.Deps{
		Catalog:  catalog,
		Gameplay: gameCfg.Gameplay,
		Store:    store,
		Logger:   logger,
	}, cfg); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
