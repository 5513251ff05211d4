package snake

// Collision describes why a move was rejected.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionSelf           // New head landed on a body segment
	CollisionWall           // New head landed in the perimeter band
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionSelf:
		return "self"
	case CollisionWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Snake is an ordered body (head at index 0) plus the current heading.
type Snake struct {
	body      []Segment
	direction Direction
}

// NewSnake creates a single-segment snake at the board center heading right.
func NewSnake() *Snake {
	cx, cy := Board.Center()
	return &Snake{
		body:      []Segment{{X: cx, Y: cy}},
		direction: DirRight,
	}
}

// Head returns the head segment.
func (s *Snake) Head() Segment {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Segment {
	return append([]Segment(nil), s.body...)
}

// Occupies reports whether any body segment is at p.
func (s *Snake) Occupies(p Segment) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// SetDirection overwrites the heading. There is no reversal guard: turning
// straight back runs the head into the neck on the next move.
func (s *Snake) SetDirection(d Direction) {
	s.direction = d
}

// Move advances the snake one cell. On collision the body is left untouched
// and the cause is returned.
func (s *Snake) Move() Collision {
	head := s.body[0]
	dx, dy := s.direction.Offset()
	newHead := Segment{X: head.X + dx, Y: head.Y + dy}

	// The tail is still part of the body at this point, so chasing it is fatal.
	if s.Occupies(newHead) {
		return CollisionSelf
	}

	if newHead.InPerimeter() {
		return CollisionWall
	}

	// Wrap-around for a toroidal board. Unreachable with single-cell steps
	// because the perimeter check above rejects every coordinate that would
	// need wrapping.
	if newHead.X < 0 {
		newHead.X = BoardWidth - CellSize
	} else if newHead.X >= BoardWidth {
		newHead.X = 0
	}
	if newHead.Y < 0 {
		newHead.Y = BoardHeight - CellSize
	} else if newHead.Y >= BoardHeight {
		newHead.Y = 0
	}

	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead
	return CollisionNone
}

// Eat grows the snake when its head is on the food: a new head is prepended
// at the food cell and the tail is kept. The caller must respawn the food
// when Eat returns true.
func (s *Snake) Eat(food Segment) bool {
	if s.body[0] != food {
		return false
	}
	s.body = append([]Segment{food}, s.body...)
	return true
}
