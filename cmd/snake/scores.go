package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/levels"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLevel int
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
	flagScoresRun   string
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display recorded scores. Without --level a summary of every level is shown.

Examples:
  snake scores
  snake scores --level 3 --limit 20
  snake scores --level 2 --all
  snake scores --level 2 --clear
  snake scores --run 1f0c6a2e-...
  snake scores --tui`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLevel, "level", 0, "Level to show (0 = summary of all levels)")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every score on the level")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores on the level")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show the score recorded for a run id")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse all levels interactively")
}

func runScores(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	_, catalog, err := loadGame(logger)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(catalog, store, max(flagScoresLevel, 1), width, height)
		return err
	case flagScoresRun != "":
		return printRun(os.Stdout, store, flagScoresRun)
	case flagScoresClear:
		if flagScoresLevel <= 0 {
			return errors.New("--clear needs --level")
		}
		if err := store.ClearScores(flagScoresLevel); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for level %d.\n", flagScoresLevel)
		return nil
	case flagScoresLevel <= 0:
		return printSummary(os.Stdout, catalog, store)
	}
	return printLevelScores(os.Stdout, catalog.Get(flagScoresLevel), store, flagScoresLimit, flagScoresAll)
}

// printSummary lists best score, run count and last play for every level.
func printSummary(w io.Writer, catalog *levels.Catalog, store *storage.Store) error {
	stats, err := store.GetAllLevelStats()
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}

	fmt.Fprintln(w, "High Scores")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-2s  %-16s  %-6s  %-5s  %s\n", "ID", "Level", "Best", "Runs", "Last played")
	fmt.Fprintf(w, "  %-2s  %-16s  %-6s  %-5s  %s\n", "--", "-----", "----", "----", "-----------")
	for _, l := range catalog.All() {
		ls, ok := stats[l.ID]
		if !ok {
			fmt.Fprintf(w, "  %-2d  %-16s  %-6s  %-5d  %s\n", l.ID, l.Name, "-", 0, "never")
			continue
		}
		fmt.Fprintf(w, "  %-2d  %-16s  %-6d  %-5d  %s\n", l.ID, l.Name, ls.HighScore, ls.GamesCount, ls.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'snake scores --level <id>' for the full table.")
	return nil
}

// printLevelScores prints the leaderboard for one level.
func printLevelScores(w io.Writer, level levels.Config, store *storage.Store, limit int, all bool) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(level.ID)
	} else {
		scores, err = store.TopScores(level.ID, limit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - Level %d: %s\n", level.ID, level.Name)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'snake play --level %d' to set the first high score!\n", level.ID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-16s  %-10s  %-16s  %s\n", "Rank", "Player", "Score", "Date", "Run")
	fmt.Fprintf(w, "  %-4s  %-16s  %-10s  %-16s  %s\n", "----", "------", "-----", "----", "---")

	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-16s  %-10d  %-16s  %s\n",
			i+1, entry.Player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"), entry.RunID)
	}

	if stats, err := store.GetLevelStats(level.ID); err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Runs: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

// printRun prints the score recorded for one run id.
func printRun(w io.Writer, store *storage.Store, runID string) error {
	entry, err := store.ScoreByRun(runID)
	if err != nil {
		return fmt.Errorf("error retrieving run: %w", err)
	}
	if entry == nil {
		return fmt.Errorf("no score recorded for run %s", runID)
	}
	fmt.Fprintf(w, "Run %s\n", entry.RunID)
	fmt.Fprintf(w, "  Player: %s\n", entry.Player)
	fmt.Fprintf(w, "  Level:  %d\n", entry.Level)
	fmt.Fprintf(w, "  Mode:   %s\n", entry.Mode)
	fmt.Fprintf(w, "  Score:  %d\n", entry.Score)
	fmt.Fprintf(w, "  Date:   %s\n", entry.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
