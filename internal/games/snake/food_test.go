package snake

import (
	"math/rand"
	"testing"
)

func TestRespawnValidity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f := NewFood(rng)
	s := newSnakeFrom([]Segment{{300, 300}, {280, 300}, {260, 300}, {240, 300}}, DirRight)

	for i := 0; i < 1000; i++ {
		if !f.Respawn(s.Occupies) {
			t.Fatal("Respawn should succeed on a nearly empty board")
		}
		p := f.Position()

		if !p.Aligned() {
			t.Fatalf("Food at %+v is not grid aligned", p)
		}
		if p.OnOuterEdge() {
			t.Fatalf("Food at %+v is on the outer edge", p)
		}
		if p.InPerimeter() {
			t.Fatalf("Food at %+v is in the perimeter band", p)
		}
		if s.Occupies(p) {
			t.Fatalf("Food at %+v is on the snake", p)
		}
	}
}

func TestRandomCellRange(t *testing.T) {
	f := NewFood(rand.New(rand.NewSource(99)))

	for i := 0; i < 2000; i++ {
		p := f.randomCell()
		if p.X < 2*CellSize || p.X > BoardWidth-CellSize || p.Y < 2*CellSize || p.Y > BoardHeight-CellSize {
			t.Fatalf("randomCell() = %+v out of expected range", p)
		}
		if !p.Aligned() {
			t.Fatalf("randomCell() = %+v not aligned", p)
		}
	}
}

func TestRespawnFallsBackToScan(t *testing.T) {
	// Random picks never land in the first interior column, so a board where
	// only (20, 20) is free can only be solved by the scan.
	only := Segment{X: CellSize, Y: CellSize}
	occupied := func(p Segment) bool { return p != only }

	f := NewFood(rand.New(rand.NewSource(1)))
	if !f.Respawn(occupied) {
		t.Fatal("Respawn should find the last free cell")
	}
	if f.Position() != only {
		t.Errorf("Food at %+v, expected %+v", f.Position(), only)
	}
}

func TestRespawnFullBoard(t *testing.T) {
	f := NewFood(rand.New(rand.NewSource(1)))
	f.pos = Segment{X: 100, Y: 100}

	if f.Respawn(func(Segment) bool { return true }) {
		t.Fatal("Respawn should fail when no cell is free")
	}
	if f.Position() != (Segment{X: 100, Y: 100}) {
		t.Errorf("Failed respawn should keep the old position, got %+v", f.Position())
	}
}

func TestFreeCellsCoverInterior(t *testing.T) {
	f := NewFood(rand.New(rand.NewSource(1)))
	free := f.freeCells(func(Segment) bool { return false })

	expected := (Columns - 2) * (Rows - 2)
	if len(free) != expected {
		t.Errorf("freeCells() returned %d cells, expected %d", len(free), expected)
	}
	for _, p := range free {
		if p.InPerimeter() {
			t.Fatalf("freeCells() returned perimeter cell %+v", p)
		}
	}
}
