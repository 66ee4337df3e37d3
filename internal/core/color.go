package core

// Color is a symbolic foreground color for a screen cell. The platform
// maps it to a concrete terminal color (a level theme may override it).
type Color uint8

// Colors for board elements.
const (
	ColorDefault Color = iota
	ColorSnakeHead
	ColorSnakeBody
	ColorFood
	ColorObstacle
	ColorGrid
	ColorBorder
	ColorHUD
	ColorOverlay
	ColorDim
)
