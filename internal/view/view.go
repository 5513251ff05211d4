// Package view draws a snake game into a core.Screen. Both terminal shells
// present the same screen buffer, so the board looks the same everywhere.
package view

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Layout constants, in terminal cells.
const (
	CellWidth = 2 // Columns per board cell
	HUDHeight = 2 // Status line plus separator
	BoardCols = snake.Columns * CellWidth
	BoardRows = snake.Rows
	MinWidth  = BoardCols
	MinHeight = HUDHeight + BoardRows
)

// Source is the read-only view of a game that the renderer needs.
type Source interface {
	SnakeBody() []snake.Segment
	FoodPosition() snake.Segment
	HasFood() bool
	Over() bool
	Score() int
	Length() int
	Cause() snake.Collision
}

// Renderer draws games with a resolved theme.
type Renderer struct {
	palette config.Palette
	border  [2]rune
	floor   [2]rune
	head    [2]rune
	body    [2]rune
	food    [2]rune
	restart string
	quit    string
}

// New resolves a theme into a renderer.
func New(th config.Theme) (*Renderer, error) {
	p, err := th.Palette()
	if err != nil {
		return nil, err
	}
	return &Renderer{
		palette: p,
		border:  config.CellGlyph(th.Glyphs.Border),
		floor:   config.CellGlyph(th.Glyphs.Interior),
		head:    config.CellGlyph(th.Glyphs.Head),
		body:    config.CellGlyph(th.Glyphs.Body),
		food:    config.CellGlyph(th.Glyphs.Food),
		restart: firstKey(th.Keys.Restart),
		quit:    firstKey(th.Keys.Quit),
	}, nil
}

func firstKey(keys []string) string {
	if len(keys) == 0 {
		return "?"
	}
	return strings.ToUpper(keys[0])
}

// RequiredSize returns the smallest screen that fits the HUD and the whole
// board. Shells that draw a footer below the screen add its height.
func RequiredSize() (w, h int) {
	return MinWidth, MinHeight
}

// Fits reports whether a w×h screen can show the board.
func Fits(w, h int) bool {
	rw, rh := RequiredSize()
	return w >= rw && h >= rh
}

// Draw clears dst and paints the HUD, board, snake, food and, once the game
// is over, the game over overlay.
func (r *Renderer) Draw(dst *core.Screen, src Source) {
	dst.Clear()

	if !Fits(dst.Width(), dst.Height()) {
		rw, rh := RequiredSize()
		r.drawOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", rw, rh, dst.Width(), dst.Height()))
		return
	}

	offsetX := (dst.Width() - BoardCols) / 2

	r.drawHUD(dst, src)
	r.drawBoard(dst, offsetX)

	if src.HasFood() {
		r.drawCell(dst, offsetX, src.FoodPosition(), r.food, r.palette.Food)
	}

	body := src.SnakeBody()
	for i := len(body) - 1; i >= 1; i-- {
		r.drawCell(dst, offsetX, body[i], r.body, r.palette.Body)
	}
	if len(body) > 0 {
		r.drawCell(dst, offsetX, body[0], r.head, r.palette.Head)
	}

	if src.Over() {
		r.drawOverlay(dst, "Game Over",
			fmt.Sprintf("Score: %d  Length: %d", src.Score(), src.Length()),
			causeText(src.Cause()),
			fmt.Sprintf("Press %s to restart, %s to quit", r.restart, r.quit))
	}
}

func causeText(c snake.Collision) string {
	switch c {
	case snake.CollisionWall:
		return "You hit the wall"
	case snake.CollisionSelf:
		return "You ran into yourself"
	default:
		return ""
	}
}

// drawHUD draws the top status bar.
func (r *Renderer) drawHUD(dst *core.Screen, src Source) {
	hud := fmt.Sprintf(" SNAKE  Score: %d  Length: %d", src.Score(), src.Length())
	dst.DrawText(0, 0, hud, r.palette.HUD)
	dst.DrawHLine(0, 1, dst.Width(), '─', r.palette.HUD)
}

// drawBoard paints the border band and the empty interior.
func (r *Renderer) drawBoard(dst *core.Screen, offsetX int) {
	for row := 0; row < snake.Rows; row++ {
		for col := 0; col < snake.Columns; col++ {
			seg := snake.Segment{X: col * snake.CellSize, Y: row * snake.CellSize}
			if seg.InPerimeter() {
				r.drawCell(dst, offsetX, seg, r.border, r.palette.Border)
			} else {
				r.drawCell(dst, offsetX, seg, r.floor, r.palette.Interior)
			}
		}
	}
}

// drawCell maps a pixel segment to its two terminal columns.
func (r *Renderer) drawCell(dst *core.Screen, offsetX int, seg snake.Segment, glyph [2]rune, c core.Color) {
	col, row := seg.Cell()
	x := offsetX + col*CellWidth
	y := HUDHeight + row
	dst.SetColored(x, y, glyph[0], c)
	dst.SetColored(x+1, y, glyph[1], c)
}

// drawOverlay draws a centered box with one line of text per row.
func (r *Renderer) drawOverlay(dst *core.Screen, lines ...string) {
	var text []string
	maxLen := 0
	for _, l := range lines {
		if l == "" {
			continue
		}
		text = append(text, l)
		maxLen = max(maxLen, len([]rune(l)))
	}

	box := dst.Bounds().Centered(maxLen+4, len(text)+2)
	dst.DrawRect(box, ' ', r.palette.Overlay)
	dst.DrawBox(box, r.palette.Overlay)
	for i, l := range text {
		dst.DrawTextCentered(box.Y+1+i, l, r.palette.Overlay)
	}
}
