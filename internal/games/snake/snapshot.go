package snake

// Snapshot captures the inspectable game state for determinism testing and
// for shells that want a single read of everything they draw.
type Snapshot struct {
	Tick   uint64
	State  State
	Cause  Collision
	Score  int
	Length int
	Head   Segment
	Dir    Direction
	Food   Segment
	Body   []Segment
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.ticks,
		State:  g.state,
		Cause:  g.cause,
		Score:  g.score,
		Length: g.snake.Len(),
		Head:   g.snake.Head(),
		Dir:    g.snake.Direction(),
		Food:   g.food.Position(),
		Body:   g.snake.Body(),
	}
}
