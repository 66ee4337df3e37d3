package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// NextHead moves head one step along dir.
//
// With wrap enabled the result wraps around the board and never collides.
// Without wrap, a step off the board returns the original head and true;
// the caller must treat that as a terminal boundary collision.
// A non-positive board size or zero direction is a caller bug and yields
// the head unchanged with no collision.
func NextHead(head core.Position, dir core.Direction, boardSize int, wrap bool) (core.Position, bool) {
	if boardSize <= 0 || dir.IsZero() {
		return head, false
	}

	next := head.Add(dir)
	if wrap {
		next.Row = ((next.Row % boardSize) + boardSize) % boardSize
		next.Col = ((next.Col % boardSize) + boardSize) % boardSize
		return next, false
	}

	if !next.InBounds(boardSize) {
		return head, true
	}
	return next, false
}

// SelfCollision reports whether head lands on the snake body. The last
// segment (the current head) is not checked since the candidate head has
// not been appended yet.
func SelfCollision(head core.Position, snake []core.Position) bool {
	if len(snake) == 0 {
		return false
	}
	for _, seg := range snake[:len(snake)-1] {
		if seg == head {
			return true
		}
	}
	return false
}

// ObstacleCollision reports whether head matches any obstacle.
func ObstacleCollision(head core.Position, obstacles []core.Position) bool {
	for _, o := range obstacles {
		if o == head {
			return true
		}
	}
	return false
}

// FoodCollision reports whether head is on the food. Nil food never collides.
func FoodCollision(head core.Position, food *core.Position) bool {
	return food != nil && *food == head
}

// IsReversal reports whether candidate is the exact opposite of current.
// Perpendicular and same-direction changes are always allowed.
func IsReversal(current, candidate core.Direction) bool {
	if current.IsZero() || candidate.IsZero() {
		return false
	}
	return candidate == current.Opposite()
}
