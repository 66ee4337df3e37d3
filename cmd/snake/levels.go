package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagDumpYAML bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `Shows every level with its board size, speed and features.

Use --yaml to print the built-in level file, a starting point for --config.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagDumpYAML, "yaml", false, "Print the built-in levels YAML")
}

func runLevels(_ *cobra.Command, _ []string) error {
	if flagDumpYAML {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	_, catalog, err := loadGame(logger)
	if err != nil {
		return err
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-2s  %-16s  %-5s  %-6s  %-4s  %-9s  %s\n", "ID", "Name", "Board", "Tick", "Food", "To clear", "Features")
	fmt.Printf("  %-2s  %-16s  %-5s  %-6s  %-4s  %-9s  %s\n", "--", "----", "-----", "----", "----", "--------", "--------")

	for _, l := range catalog.All() {
		goal := fmt.Sprintf("%d foods", l.FoodsToAdvance())
		if l.MaxLevel {
			goal = "endless"
		}

		features := ""
		if l.Features.Wrap {
			features += "wrap "
		}
		if l.Features.Obstacles {
			features += fmt.Sprintf("obstacles(%d) ", len(l.Obstacles))
		}
		if features == "" {
			features = "-"
		}

		fmt.Printf("  %-2d  %-16s  %-5s  %-6s  %-4d  %-9s  %s\n",
			l.ID, l.Name, fmt.Sprintf("%dx%d", l.BoardSize, l.BoardSize), l.TickInterval, l.FoodScore, goal, features)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --level <id>' to start on a level.")
	return nil
}
