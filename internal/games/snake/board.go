package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board geometry and timing. These are compile-time constants; the game
// takes no runtime configuration for them.
const (
	BoardWidth   = 600 // Board width in pixels
	BoardHeight  = 600 // Board height in pixels
	CellSize     = 20  // Edge length of one grid cell in pixels
	TickInterval = 100 * time.Millisecond
)

// Board is the full pixel area, including the lethal perimeter band.
var Board = core.NewRect(0, 0, BoardWidth, BoardHeight)

// Interior is the playable area inside the one-cell perimeter band.
var Interior = Board.Inset(CellSize)

// Columns and Rows are the board dimensions in cells.
const (
	Columns = BoardWidth / CellSize
	Rows    = BoardHeight / CellSize
)

// Segment is the top-left pixel coordinate of one grid cell.
// Snake body parts and the food both occupy exactly one Segment.
type Segment struct {
	X, Y int
}

// Aligned reports whether the segment sits exactly on the cell grid.
func (s Segment) Aligned() bool {
	return s.X%CellSize == 0 && s.Y%CellSize == 0
}

// Cell returns the segment's column and row on the grid.
func (s Segment) Cell() (col, row int) {
	return s.X / CellSize, s.Y / CellSize
}

// InPerimeter reports whether the segment lies in the lethal border band
// (or anywhere outside the playable interior).
func (s Segment) InPerimeter() bool {
	return !Interior.Contains(s.X, s.Y)
}

// OnOuterEdge reports whether the segment is on the outermost row or column
// of the board.
func (s Segment) OnOuterEdge() bool {
	return s.X == 0 || s.X == BoardWidth-CellSize || s.Y == 0 || s.Y == BoardHeight-CellSize
}

// Direction represents the snake's heading.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Offset returns the pixel delta of one step in this direction.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -CellSize
	case DirDown:
		return 0, CellSize
	case DirLeft:
		return -CellSize, 0
	case DirRight:
		return CellSize, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFor maps a directional action to a heading.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}
