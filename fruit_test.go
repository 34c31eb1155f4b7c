package main

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"
)

func TestFindSpawnPosition_AvoidsSnake(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	area := DefaultLayout.Interior()
	s := movedSnake(t, DefaultLayout.Window.Area(), Coordinates{X: 2, Y: 5}, Right, 20, 15)

	for i := 0; i < 500; i++ {
		p, ok := FindSpawnPosition(rng, area, s, maxSpawnAttempts)
		if !ok {
			t.Fatalf("iteration %d: no position found on a mostly empty board", i)
		}
		if !area.ContainsPoint(p, false) {
			t.Fatalf("iteration %d: %v outside the playable interior", i, p)
		}
		if s.CollidesWithPoint(p, true) {
			t.Fatalf("iteration %d: %v lies on the snake", i, p)
		}
	}
}

func TestFindSpawnPosition_CoversWholeInterior(t *testing.T) {
	// 两格的区域，随机足够多次后两个格子都应出现
	area := NewBox(2, 1, Coordinates{X: 1, Y: 2})
	s := NewSnake(8, Coordinates{X: 20, Y: 20})
	rng := rand.New(rand.NewSource(3))
	seen := map[Coordinates]bool{}
	for i := 0; i < 200; i++ {
		p, _ := FindSpawnPosition(rng, area, s, 10)
		seen[p] = true
	}
	if !seen[Coordinates{X: 1, Y: 2}] || !seen[Coordinates{X: 2, Y: 2}] {
		t.Errorf("expected both cells to be reachable, saw %v", seen)
	}
}

func TestFindSpawnPosition_FullBoard(t *testing.T) {
	area := NewBox(3, 1, Coordinates{X: 1, Y: 1})
	s := movedSnake(t, 8, Coordinates{X: 1, Y: 1}, Right, 2, 3)
	rng := rand.New(rand.NewSource(1))

	if p, ok := FindSpawnPosition(rng, area, s, 50); ok {
		t.Errorf("board is full but got %v", p)
	}
	if _, err := SpawnFruit(rng, area, s); !errors.Is(err, ErrBoardFull) {
		t.Errorf("want ErrBoardFull, got %v", err)
	}
}

func TestFindSpawnPosition_Deterministic(t *testing.T) {
	area := DefaultLayout.Interior()
	s := NewSnake(16, Coordinates{X: 10, Y: 5})
	a, _ := FindSpawnPosition(rand.New(rand.NewSource(42)), area, s, 10)
	b, _ := FindSpawnPosition(rand.New(rand.NewSource(42)), area, s, 10)
	if a != b {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestNewFruit_FixedSets(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	glyphs := map[rune]bool{}
	for _, g := range fruitGlyphs {
		glyphs[g] = true
	}
	for i := 0; i < 100; i++ {
		f := NewFruit(Coordinates{X: 4, Y: 4, Glyph: 'z'}, rng)
		if !glyphs[f.Symbol] {
			t.Errorf("unexpected symbol %q", f.Symbol)
		}
		if f.Color < 8 || f.Color > 15 {
			t.Errorf("unexpected color %d", f.Color)
		}
		if f.Position.Glyph != 0 {
			t.Error("fruit position should not carry a glyph annotation")
		}
	}
}

func TestFruit_Draw(t *testing.T) {
	fc := newFakeConsole(38, 14)
	f := Fruit{Position: Coordinates{X: 12, Y: 7}, Symbol: '★', Color: 11}
	f.Draw(fc)
	if got := fc.cell(12, 7); got != '★' {
		t.Errorf("want '★' at (12,7), got %q", got)
	}
}
