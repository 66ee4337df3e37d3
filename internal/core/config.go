package core

// RuntimeConfig contains configuration passed from the CLI to the platform.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	FrameRate  int   // Render frames per second (default 60)
	Seed       int64 // RNG seed for food placement (0 = time based)
	StartLevel int   // Level the first run starts at (0 = level 1)
	Player     string
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in platform layer
	}
}
