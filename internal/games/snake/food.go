package snake

import "math/rand"

// maxRespawnAttempts bounds the random retries before Respawn falls back to
// scanning for empty cells.
const maxRespawnAttempts = 64

// Food is the single food cell on the board.
type Food struct {
	pos Segment
	rng *rand.Rand
}

// NewFood creates food that draws positions from rng. The position is not
// valid until Respawn is called.
func NewFood(rng *rand.Rand) *Food {
	return &Food{rng: rng}
}

// Position returns the food cell.
func (f *Food) Position() Segment {
	return f.pos
}

// Respawn moves the food to a random free cell. occupied reports cells that
// are taken by the snake. Random picks are retried a bounded number of times;
// after that every free interior cell is collected and one is chosen
// uniformly. Returns false, leaving the position unchanged, when the board
// has no free cell.
func (f *Food) Respawn(occupied func(Segment) bool) bool {
	for range maxRespawnAttempts {
		p := f.randomCell()
		if f.acceptable(p, occupied) {
			f.pos = p
			return true
		}
	}

	free := f.freeCells(occupied)
	if len(free) == 0 {
		return false
	}
	f.pos = free[f.rng.Intn(len(free))]
	return true
}

// randomCell picks a candidate offset by one cell plus the border thickness.
// The highest pick lands on the outer edge and is rejected by acceptable.
func (f *Food) randomCell() Segment {
	maxX := (BoardWidth - 2*CellSize) / CellSize
	maxY := (BoardHeight - 2*CellSize) / CellSize
	return Segment{
		X: (f.rng.Intn(maxX)+1)*CellSize + CellSize,
		Y: (f.rng.Intn(maxY)+1)*CellSize + CellSize,
	}
}

func (f *Food) acceptable(p Segment, occupied func(Segment) bool) bool {
	if p.OnOuterEdge() || p.InPerimeter() {
		return false
	}
	return !occupied(p)
}

// freeCells lists every interior cell not occupied by the snake.
func (f *Food) freeCells(occupied func(Segment) bool) []Segment {
	var free []Segment
	for y := Interior.Y; y < Interior.Bottom(); y += CellSize {
		for x := Interior.X; x < Interior.Right(); x += CellSize {
			p := Segment{X: x, Y: y}
			if !occupied(p) {
				free = append(free, p)
			}
		}
	}
	return free
}
