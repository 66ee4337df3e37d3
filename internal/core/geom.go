// Package core provides fundamental types shared by the snake engine and
// the terminal platform. It has no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "fmt"

// Position identifies a grid cell by row and column.
type Position struct {
	Row, Col int
}

// P is a shorthand constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the position moved by d.
func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// InBounds reports whether p lies on a size x size board.
func (p Position) InBounds(size int) bool {
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is a heading on the grid. Only the four unit vectors are valid.
type Direction struct {
	DRow, DCol int
}

// The four valid headings.
var (
	Up    = Direction{DRow: -1, DCol: 0}
	Down  = Direction{DRow: 1, DCol: 0}
	Left  = Direction{DRow: 0, DCol: -1}
	Right = Direction{DRow: 0, DCol: 1}
)

// Valid reports whether d is one of the four unit vectors.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// IsZero reports whether d is the zero vector.
func (d Direction) IsZero() bool {
	return d.DRow == 0 && d.DCol == 0
}

// Opposite returns the negated heading.
func (d Direction) Opposite() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("(%d,%d)", d.DRow, d.DCol)
	}
}

// Rect represents an axis-aligned area on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
