// Package snake implements the Snake game core: a single snake on a fixed
// 600x600 pixel board of 20 pixel cells, one food item, and a two-state
// machine (running, game over). It knows nothing about terminals; shells
// feed it directions and ticks and read back the body and food for drawing.
package snake

import (
	"math/rand"
)

// State is the game's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// TickResult reports what a tick did. Collision is a normal outcome, not an
// error, so it is reported here.
type TickResult struct {
	State  State
	Redraw bool      // The shell should repaint
	Ate    bool      // Food was eaten this tick
	Ended  bool      // This tick moved the game into StateGameOver
	Cause  Collision // Why the game ended, if it has
}

// Game owns the snake, the food, and the state machine. A Game is not safe
// for concurrent use: shells must serialize ticks and direction changes.
type Game struct {
	seed   int64
	rng    *rand.Rand
	snake  *Snake
	food   *Food
	state  State
	cause  Collision
	score  int
	ticks  uint64
	noFood bool // Board is full, food could not be placed
}

// New creates a running game. The seed drives food placement.
func New(seed int64) *Game {
	rng := rand.New(rand.NewSource(seed))
	g := &Game{
		seed:  seed,
		rng:   rng,
		snake: NewSnake(),
		food:  NewFood(rng),
		state: StateRunning,
	}
	g.respawnFood()
	return g
}

// Seed returns the seed the game was created with.
func (g *Game) Seed() int64 {
	return g.seed
}

// OnDirection changes the snake's heading. It never moves the snake and
// never changes the game state.
func (g *Game) OnDirection(d Direction) {
	g.snake.SetDirection(d)
}

// Tick advances the game by one step: move, then eat, then respawn food if it
// was eaten. Once the game is over every tick is a no-op.
func (g *Game) Tick() TickResult {
	if g.state == StateGameOver {
		return TickResult{State: g.state, Cause: g.cause}
	}
	g.ticks++

	if c := g.snake.Move(); c != CollisionNone {
		g.state = StateGameOver
		g.cause = c
		return TickResult{State: g.state, Redraw: true, Ended: true, Cause: c}
	}

	ate := false
	if !g.noFood && g.snake.Eat(g.food.Position()) {
		ate = true
		g.score++
		g.respawnFood()
	}

	return TickResult{State: g.state, Redraw: true, Ate: ate}
}

func (g *Game) respawnFood() {
	g.noFood = !g.food.Respawn(g.snake.Occupies)
}

// SnakeBody returns the body coordinates, head first.
func (g *Game) SnakeBody() []Segment {
	return g.snake.Body()
}

// FoodPosition returns the food cell.
func (g *Game) FoodPosition() Segment {
	return g.food.Position()
}

// HasFood reports whether food is on the board. It is false only when the
// snake fills every free cell.
func (g *Game) HasFood() bool {
	return !g.noFood
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.state == StateGameOver
}

// Cause returns the collision that ended the game, or CollisionNone.
func (g *Game) Cause() Collision {
	return g.cause
}

// Score returns the number of food items eaten.
func (g *Game) Score() int {
	return g.score
}

// Length returns the snake's body length.
func (g *Game) Length() int {
	return g.snake.Len()
}

// Direction returns the snake's heading.
func (g *Game) Direction() Direction {
	return g.snake.Direction()
}

// Ticks returns how many ticks advanced the game while it was running.
func (g *Game) Ticks() uint64 {
	return g.ticks
}
