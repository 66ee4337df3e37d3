package levels

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Catalog is a read-only set of levels keyed by id.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	levels   []Config // Sorted by ID
	byID     map[int]int
	warnings []string
}

// Builtin returns a catalog with the five predefined levels.
func Builtin() *Catalog {
	return NewCatalog(builtinLevels)
}

// NewCatalog builds a catalog from level definitions. Missing or
// non-positive numeric fields fall back to DefaultConfig, obstacles outside
// the board are dropped, and duplicate ids keep the first definition.
// An empty list yields the builtin levels.
func NewCatalog(cfgs []Config) *Catalog {
	if len(cfgs) == 0 {
		cfgs = builtinLevels
	}

	c := &Catalog{byID: make(map[int]int, len(cfgs))}
	seen := make(map[int]bool, len(cfgs))
	for _, raw := range cfgs {
		if raw.ID <= 0 {
			c.warnf("level with non-positive id %d skipped", raw.ID)
			continue
		}
		if seen[raw.ID] {
			c.warnf("duplicate level id %d skipped", raw.ID)
			continue
		}
		seen[raw.ID] = true
		c.levels = append(c.levels, c.normalize(raw))
	}

	if len(c.levels) == 0 {
		c.warnf("no usable levels, using default level")
		c.levels = []Config{DefaultConfig.clone()}
	}

	sort.Slice(c.levels, func(i, j int) bool {
		return c.levels[i].ID < c.levels[j].ID
	})
	for i, l := range c.levels {
		c.byID[l.ID] = i
	}
	return c
}

// FromConfig builds a catalog from the YAML configuration.
func FromConfig(cfg config.SnakeConfig) *Catalog {
	if len(cfg.Levels) == 0 {
		return Builtin()
	}

	defs := make([]Config, 0, len(cfg.Levels))
	for _, l := range cfg.Levels {
		obstacles := make([]core.Position, len(l.Obstacles))
		for i, o := range l.Obstacles {
			obstacles[i] = core.P(o[0], o[1])
		}
		defs = append(defs, Config{
			ID:              l.ID,
			Name:            l.Name,
			Description:     l.Description,
			BoardSize:       l.BoardSize,
			CellSize:        l.CellSize,
			TickInterval:    l.Tick(),
			SpeedMultiplier: l.SpeedMultiplier,
			FoodScore:       l.FoodScore,
			Difficulty:      l.Difficulty,
			MaxLevel:        l.MaxLevel,
			Features: Features{
				Wrap:          l.Features.Wrap,
				Obstacles:     l.Features.Obstacles,
				MultipleFoods: l.Features.MultipleFoods,
				SpeedBoost:    l.Features.SpeedBoost,
			},
			Theme: Theme{
				Background: l.Theme.Background,
				SnakeHead:  l.Theme.SnakeHead,
				SnakeBody:  l.Theme.SnakeBody,
				Food:       l.Theme.Food,
				Grid:       l.Theme.Grid,
				Border:     l.Theme.Border,
			},
			Obstacles: obstacles,
		})
	}
	return NewCatalog(defs)
}

// normalize fills missing fields from DefaultConfig.
func (c *Catalog) normalize(l Config) Config {
	l = l.clone()
	def := DefaultConfig

	switch {
	case l.BoardSize <= 0:
		c.warnf("level %d: board size %d invalid, using %d", l.ID, l.BoardSize, def.BoardSize)
		l.BoardSize = def.BoardSize
	case l.BoardSize < MinBoardSize:
		c.warnf("level %d: board size %d too small, using %d", l.ID, l.BoardSize, MinBoardSize)
		l.BoardSize = MinBoardSize
	}
	if l.CellSize <= 0 {
		l.CellSize = def.CellSize
	}
	if l.TickInterval <= 0 {
		c.warnf("level %d: tick interval %v invalid, using %v", l.ID, l.TickInterval, def.TickInterval)
		l.TickInterval = def.TickInterval
	}
	if l.FoodScore <= 0 {
		c.warnf("level %d: food score %d invalid, using %d", l.ID, l.FoodScore, def.FoodScore)
		l.FoodScore = def.FoodScore
	}
	if l.SpeedMultiplier <= 0 {
		l.SpeedMultiplier = def.SpeedMultiplier
	}
	if l.Name == "" {
		l.Name = fmt.Sprintf("Level %d", l.ID)
	}

	theme := def.Theme
	if l.Theme.Background != "" {
		theme.Background = l.Theme.Background
	}
	if l.Theme.SnakeHead != "" {
		theme.SnakeHead = l.Theme.SnakeHead
	}
	if l.Theme.SnakeBody != "" {
		theme.SnakeBody = l.Theme.SnakeBody
	}
	if l.Theme.Food != "" {
		theme.Food = l.Theme.Food
	}
	if l.Theme.Grid != "" {
		theme.Grid = l.Theme.Grid
	}
	if l.Theme.Border != "" {
		theme.Border = l.Theme.Border
	}
	l.Theme = theme

	kept := l.Obstacles[:0]
	for _, o := range l.Obstacles {
		if !o.InBounds(l.BoardSize) {
			c.warnf("level %d: obstacle %v outside %dx%d board dropped", l.ID, o, l.BoardSize, l.BoardSize)
			continue
		}
		kept = append(kept, o)
	}
	l.Obstacles = kept
	return l
}

func (c *Catalog) warnf(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// Warnings lists the corrections applied while building the catalog.
func (c *Catalog) Warnings() []string {
	return append([]string(nil), c.warnings...)
}

// Get returns the level with the given id. Unknown ids resolve to level 1,
// or to DefaultConfig if the catalog has no level 1.
func (c *Catalog) Get(id int) Config {
	if i, ok := c.byID[id]; ok {
		return c.levels[i].clone()
	}
	if i, ok := c.byID[1]; ok {
		return c.levels[i].clone()
	}
	return DefaultConfig.clone()
}

// Next returns the level that follows id. The max level returns itself.
func (c *Catalog) Next(id int) Config {
	current := c.Get(id)
	if current.MaxLevel {
		return current
	}
	return c.Get(min(id+1, c.MaxID()))
}

// All returns every level in ascending id order.
func (c *Catalog) All() []Config {
	out := make([]Config, len(c.levels))
	for i, l := range c.levels {
		out[i] = l.clone()
	}
	return out
}

// MaxID returns the highest level id.
func (c *Catalog) MaxID() int {
	return c.levels[len(c.levels)-1].ID
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// Names returns the level names in ascending id order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.levels))
	for i, l := range c.levels {
		names[i] = l.Name
	}
	return names
}
