package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestSamplerDeterministic(t *testing.T) {
	s1 := NewSampler(rand.New(rand.NewSource(7)), 0)
	s2 := NewSampler(rand.New(rand.NewSource(7)), 0)

	for i := 0; i < 50; i++ {
		p1, ok1 := s1.Sample(20, nil)
		p2, ok2 := s2.Sample(20, nil)
		if p1 != p2 || ok1 != ok2 {
			t.Fatalf("draw %d differs: %v/%v vs %v/%v", i, p1, ok1, p2, ok2)
		}
	}
}

func TestSamplerInBoundsAndFree(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(1)), 1000)
	excluded := map[core.Position]struct{}{}
	for col := range 10 {
		excluded[core.P(0, col)] = struct{}{}
		excluded[core.P(1, col)] = struct{}{}
	}

	for i := 0; i < 200; i++ {
		p, ok := s.Sample(10, excluded)
		if !ok {
			t.Fatal("sampling failed with plenty of free cells")
		}
		if !p.InBounds(10) {
			t.Fatalf("sample out of bounds: %v", p)
		}
		if _, taken := excluded[p]; taken {
			t.Fatalf("sample landed on excluded cell %v", p)
		}
	}
}

func TestSamplerExhaustion(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(1)), 10)
	full := map[core.Position]struct{}{}
	for row := range 3 {
		for col := range 3 {
			full[core.P(row, col)] = struct{}{}
		}
	}
	if _, ok := s.Sample(3, full); ok {
		t.Error("expected failure on a full board")
	}
}

func TestSamplerInvalidBoard(t *testing.T) {
	s := NewSampler(nil, 0)
	if s.MaxAttempts() != DefaultSampleAttempts {
		t.Errorf("MaxAttempts = %d, want %d", s.MaxAttempts(), DefaultSampleAttempts)
	}
	for _, size := range []int{0, -4} {
		if _, ok := s.Sample(size, nil); ok {
			t.Errorf("Sample(%d) should fail", size)
		}
	}
}
