package core

import "testing"

func TestPositionAdd(t *testing.T) {
	tests := []struct {
		name     string
		p        Position
		d        Direction
		expected Position
	}{
		{"up", P(5, 5), Up, P(4, 5)},
		{"down", P(5, 5), Down, P(6, 5)},
		{"left", P(5, 5), Left, P(5, 4)},
		{"right", P(5, 5), Right, P(5, 6)},
		{"leaves board", P(0, 0), Up, P(-1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Add(tc.d); got != tc.expected {
				t.Errorf("Add() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPositionInBounds(t *testing.T) {
	tests := []struct {
		p        Position
		size     int
		expected bool
	}{
		{P(0, 0), 10, true},
		{P(9, 9), 10, true},
		{P(10, 0), 10, false},
		{P(0, -1), 10, false},
		{P(0, 0), 0, false},
	}

	for _, tc := range tests {
		if got := tc.p.InBounds(tc.size); got != tc.expected {
			t.Errorf("%v.InBounds(%d) = %v, expected %v", tc.p, tc.size, got, tc.expected)
		}
	}
}

func TestDirectionValid(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if !d.Valid() {
			t.Errorf("%v should be valid", d)
		}
	}

	for _, d := range []Direction{{}, {DRow: 1, DCol: 1}, {DRow: 2, DCol: 0}, {DRow: 0, DCol: -3}} {
		if d.Valid() {
			t.Errorf("%v should not be valid", d)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, got, want)
		}
	}
}

func TestActionDirection(t *testing.T) {
	if d, ok := ActionLeft.Direction(); !ok || d != Left {
		t.Errorf("ActionLeft.Direction() = %v, %v", d, ok)
	}
	if _, ok := ActionPause.Direction(); ok {
		t.Error("ActionPause should not map to a direction")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if !r.Contains(5, 10) || r.Contains(25, 25) {
		t.Error("Contains() should include the top-left corner and exclude the far edge")
	}
}
