// Package levels holds the level catalog: board geometry, speed, obstacle
// layout and feature flags for each level of the snake game.
package levels

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Features toggles level mechanics. MultipleFoods and SpeedBoost are
// display flags; the engine only acts on Wrap and Obstacles.
type Features struct {
	Wrap          bool
	Obstacles     bool
	MultipleFoods bool
	SpeedBoost    bool
}

// Theme holds hex colors for the renderer.
type Theme struct {
	Background string
	SnakeHead  string
	SnakeBody  string
	Food       string
	Grid       string
	Border     string
}

// Config is an immutable level definition.
type Config struct {
	ID              int
	Name            string
	Description     string
	BoardSize       int // Board is BoardSize x BoardSize cells
	CellSize        int // Pixel size in the original renderer, kept for display
	TickInterval    time.Duration
	SpeedMultiplier float64
	FoodScore       int
	Difficulty      int
	MaxLevel        bool
	Features        Features
	Theme           Theme
	Obstacles       []core.Position
}

// MinBoardSize is the smallest board that fits the start position.
const MinBoardSize = 2

// FoodsToAdvance returns how many foods must be eaten on this level
// before advancing: level n needs n*5.
func (c Config) FoodsToAdvance() int {
	return c.ID * 5
}

// StartPosition is the single-segment spawn cell for the snake.
func (c Config) StartPosition() core.Position {
	return core.P(c.BoardSize/2, c.BoardSize/2-1)
}

// clone returns a copy that shares no slices with c.
func (c Config) clone() Config {
	c.Obstacles = append([]core.Position(nil), c.Obstacles...)
	return c
}

// DefaultConfig is the single fallback level. Unknown ids and missing
// fields resolve to these values.
var DefaultConfig = Config{
	ID:              1,
	Name:            "Classic",
	Description:     "Learn the basics",
	BoardSize:       20,
	CellSize:        20,
	TickInterval:    150 * time.Millisecond,
	SpeedMultiplier: 1.0,
	FoodScore:       10,
	Difficulty:      1,
	Theme: Theme{
		Background: "#0a1a0a",
		SnakeHead:  "#4ade80",
		SnakeBody:  "#22c55e",
		Food:       "#ff4444",
		Grid:       "#113311",
		Border:     "#4ade80",
	},
}

func pts(pairs ...[2]int) []core.Position {
	out := make([]core.Position, len(pairs))
	for i, p := range pairs {
		out[i] = core.P(p[0], p[1])
	}
	return out
}

// builtinLevels defines the five levels with increasing difficulty.
var builtinLevels = []Config{
	DefaultConfig,
	{
		ID:              2,
		Name:            "Speed Runner",
		Description:     "Faster and trickier",
		BoardSize:       22,
		CellSize:        18,
		TickInterval:    110 * time.Millisecond,
		SpeedMultiplier: 1.2,
		FoodScore:       15,
		Difficulty:      2,
		Features:        Features{Obstacles: true, SpeedBoost: true},
		Theme: Theme{
			Background: "#1a0a0a", SnakeHead: "#ffff00", SnakeBody: "#ff9800",
			Food: "#00ff00", Grid: "#332200", Border: "#ff9800",
		},
		Obstacles: pts([2]int{5, 5}, [2]int{5, 16}, [2]int{10, 11}, [2]int{15, 5}, [2]int{15, 16}),
	},
	{
		ID:              3,
		Name:            "Wrapping World",
		Description:     "Walls wrap around - stay focused!",
		BoardSize:       24,
		CellSize:        16,
		TickInterval:    90 * time.Millisecond,
		SpeedMultiplier: 1.4,
		FoodScore:       20,
		Difficulty:      3,
		Features:        Features{Wrap: true, Obstacles: true, MultipleFoods: true},
		Theme: Theme{
			Background: "#0a0a1a", SnakeHead: "#00ffff", SnakeBody: "#0099ff",
			Food: "#ff00ff", Grid: "#001a33", Border: "#00ffff",
		},
		Obstacles: pts([2]int{6, 8}, [2]int{6, 15}, [2]int{12, 5}, [2]int{12, 18}, [2]int{18, 8}, [2]int{18, 15}),
	},
	{
		ID:              4,
		Name:            "Chaos Mode",
		Description:     "Multiple foods, obstacles everywhere!",
		BoardSize:       26,
		CellSize:        15,
		TickInterval:    90 * time.Millisecond,
		SpeedMultiplier: 1.6,
		FoodScore:       25,
		Difficulty:      4,
		Features:        Features{Wrap: true, Obstacles: true, MultipleFoods: true, SpeedBoost: true},
		Theme: Theme{
			Background: "#2a0a0a", SnakeHead: "#ff1493", SnakeBody: "#ff69b4",
			Food: "#32ff7e", Grid: "#440044", Border: "#ff1493",
		},
		Obstacles: pts(
			[2]int{5, 5}, [2]int{5, 10}, [2]int{5, 20}, [2]int{12, 8},
			[2]int{12, 18}, [2]int{19, 5}, [2]int{19, 15}, [2]int{19, 23},
		),
	},
	{
		ID:              5,
		Name:            "Impossible",
		Description:     "Can you survive?",
		BoardSize:       28,
		CellSize:        14,
		TickInterval:    50 * time.Millisecond,
		SpeedMultiplier: 2.0,
		FoodScore:       50,
		Difficulty:      5,
		MaxLevel:        true,
		Features:        Features{Wrap: true, Obstacles: true, MultipleFoods: true, SpeedBoost: true},
		Theme: Theme{
			Background: "#1a0000", SnakeHead: "#ffff00", SnakeBody: "#ff0000",
			Food: "#00ff00", Grid: "#660000", Border: "#ff0000",
		},
		Obstacles: pts(
			[2]int{4, 4}, [2]int{4, 10}, [2]int{4, 20}, [2]int{4, 26},
			[2]int{11, 6}, [2]int{11, 15}, [2]int{11, 24},
			[2]int{18, 4}, [2]int{18, 12}, [2]int{18, 22},
			[2]int{26, 8}, [2]int{26, 18},
		),
	},
}
