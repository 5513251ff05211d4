package view

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

type fakeSource struct {
	body  []snake.Segment
	food  snake.Segment
	over  bool
	cause snake.Collision
	score int
}

func (f fakeSource) SnakeBody() []snake.Segment  { return f.body }
func (f fakeSource) FoodPosition() snake.Segment { return f.food }
func (f fakeSource) HasFood() bool               { return true }
func (f fakeSource) Over() bool                  { return f.over }
func (f fakeSource) Score() int                  { return f.score }
func (f fakeSource) Length() int                 { return len(f.body) }
func (f fakeSource) Cause() snake.Collision      { return f.cause }

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(config.DefaultTheme())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return r
}

func TestDrawBoard(t *testing.T) {
	r := newRenderer(t)
	screen := core.NewScreen(80, 40)
	src := fakeSource{
		body: []snake.Segment{{X: 300, Y: 300}, {X: 280, Y: 300}},
		food: snake.Segment{X: 100, Y: 60},
	}

	r.Draw(screen, src)

	offsetX := (80 - BoardCols) / 2

	// Top-left border cell
	if c := screen.GetCell(offsetX, HUDHeight); c.Rune != '░' || c.Color != core.ColorGray {
		t.Errorf("Border cell = %+v, expected gray '░'", c)
	}

	// Head at cell (15, 15)
	headX := offsetX + 15*CellWidth
	if c := screen.GetCell(headX, HUDHeight+15); c.Rune != '█' || c.Color != core.ColorBrightGreen {
		t.Errorf("Head cell = %+v, expected bright green '█'", c)
	}
	if screen.Get(headX+1, HUDHeight+15) != '█' {
		t.Error("Head should span two columns")
	}

	// Neck at cell (14, 15)
	if c := screen.GetCell(headX-CellWidth, HUDHeight+15); c.Rune != '▓' || c.Color != core.ColorGreen {
		t.Errorf("Body cell = %+v, expected green '▓'", c)
	}

	// Food at cell (5, 3)
	if c := screen.GetCell(offsetX+5*CellWidth, HUDHeight+3); c.Rune != '●' || c.Color != core.ColorRed {
		t.Errorf("Food cell = %+v, expected red '●'", c)
	}

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD should show score, got %q", screen.Row(0))
	}
	if strings.Contains(screen.String(), "Game Over") {
		t.Error("Running game should not show the game over overlay")
	}
}

func TestDrawGameOverOverlay(t *testing.T) {
	r := newRenderer(t)
	screen := core.NewScreen(80, 40)
	src := fakeSource{
		body:  []snake.Segment{{X: 20, Y: 300}},
		food:  snake.Segment{X: 100, Y: 60},
		over:  true,
		cause: snake.CollisionWall,
		score: 3,
	}

	r.Draw(screen, src)
	content := screen.String()

	for _, want := range []string{"Game Over", "Score: 3", "You hit the wall", "Press R to restart"} {
		if !strings.Contains(content, want) {
			t.Errorf("Overlay should contain %q", want)
		}
	}
}

func TestDrawTooSmall(t *testing.T) {
	r := newRenderer(t)
	screen := core.NewScreen(40, 10)

	r.Draw(screen, snake.New(1))

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Small screen should show a resize message")
	}
}

func TestFits(t *testing.T) {
	w, h := RequiredSize()
	if w != 60 || h != 32 {
		t.Errorf("RequiredSize() = %dx%d, expected 60x32", w, h)
	}
	if !Fits(w, h) {
		t.Error("Required size should fit")
	}
	if Fits(w-1, h) || Fits(w, h-1) {
		t.Error("Smaller sizes should not fit")
	}
}

func TestNewRejectsBadTheme(t *testing.T) {
	th := config.DefaultTheme()
	th.Colors.Food = "nope"

	if _, err := New(th); err == nil {
		t.Error("New() should fail for an unknown color")
	}
}
