// Package console is a tcell shell for the snake game. It draws straight to
// the terminal without Bubble Tea and owns the game timer itself.
package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/view"
)

// footerRows is the key hint line below the board.
const footerRows = 1

// Shell runs one snake game on a tcell screen.
// Only the Run loop touches the game; terminal events arrive over a channel
// and are applied between ticks.
type Shell struct {
	screen   tcell.Screen
	buf      *core.Screen
	renderer *view.Renderer
	keys     map[string]core.Action
	footer   string
	game     *snake.Game
	ticking  bool
	logger   *log.Logger
}

// NewShell prepares a shell on an initialized screen.
func NewShell(screen tcell.Screen, cfg core.RuntimeConfig, th config.Theme, logger *log.Logger) (*Shell, error) {
	renderer, err := view.New(th)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	keys := make(map[string]core.Action)
	for action, names := range th.Keys.Bindings() {
		for _, name := range names {
			keys[name] = action
		}
	}

	w, h := screen.Size()
	s := &Shell{
		screen:   screen,
		buf:      core.NewScreen(w, max(h-footerRows, 0)),
		renderer: renderer,
		keys:     keys,
		footer:   footerText(th.Keys),
		game:     snake.New(cfg.Seed),
		ticking:  true,
		logger:   logger,
	}
	s.logger.Debug("game started", "seed", cfg.Seed)
	return s, nil
}

func footerText(k config.Keys) string {
	first := func(names []string) string {
		if len(names) == 0 {
			return "-"
		}
		return names[0]
	}
	return fmt.Sprintf(" %s/%s/%s/%s move  %s restart  %s quit",
		first(k.Up), first(k.Left), first(k.Down), first(k.Right),
		first(k.Restart), first(k.Quit))
}

// Game returns the running game.
func (s *Shell) Game() *snake.Game {
	return s.game
}

// Run drives the game until the player quits or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(snake.TickInterval)
	defer ticker.Stop()

	s.draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.resize()
			case *tcell.EventKey:
				quit, restarted := s.handleKey(e)
				if quit {
					return nil
				}
				if restarted {
					ticker.Reset(snake.TickInterval)
				}
			}
			s.draw()

		case <-ticker.C:
			if !s.step() {
				ticker.Stop()
			}
			s.draw()
		}
	}
}

// handleKey applies one key press. It reports whether the player quit and
// whether a new game was started.
func (s *Shell) handleKey(ev *tcell.EventKey) (quit, restarted bool) {
	action := s.keys[keyName(ev)]

	if d, ok := snake.DirectionFor(action); ok {
		s.game.OnDirection(d)
		return false, false
	}

	switch action {
	case core.ActionQuit:
		return true, false
	case core.ActionRestart:
		if s.game.Over() {
			s.game = snake.New(time.Now().UnixNano())
			s.ticking = true
			s.logger.Debug("game restarted", "seed", s.game.Seed())
			return false, true
		}
	}
	return false, false
}

// step runs one game tick and reports whether the timer should keep running.
// The game waits while the terminal is too small.
func (s *Shell) step() bool {
	if !s.ticking {
		return false
	}
	if !view.Fits(s.buf.Width(), s.buf.Height()) {
		return true
	}

	res := s.game.Tick()
	if res.Ate {
		s.logger.Debug("food eaten", "score", s.game.Score(), "length", s.game.Length())
	}
	if res.Ended {
		s.ticking = false
		snap := s.game.Snapshot()
		s.logger.Info("game over",
			"score", snap.Score,
			"length", snap.Length,
			"cause", snap.Cause,
			"ticks", snap.Tick,
			"seed", s.game.Seed(),
		)
		return false
	}
	return true
}

func (s *Shell) resize() {
	s.screen.Sync()
	w, h := s.screen.Size()
	s.buf.Resize(w, max(h-footerRows, 0))
}

// draw renders the game into the buffer and copies it to the terminal.
func (s *Shell) draw() {
	s.renderer.Draw(s.buf, s.game)

	s.screen.Clear()
	for y := range s.buf.Height() {
		for x := range s.buf.Width() {
			c := s.buf.GetCell(x, y)
			s.screen.SetContent(x, y, c.Rune, nil, styleFor(c.Color))
		}
	}
	for i, r := range []rune(s.footer) {
		s.screen.SetContent(i, s.buf.Height(), r, nil, tcell.StyleDefault.Dim(true))
	}
	s.screen.Show()
}

// styleFor maps a core color onto the terminal palette.
func styleFor(c core.Color) tcell.Style {
	code := c.ANSI()
	if code < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(code))
}

// Play opens the terminal, runs a game and restores the terminal on return.
func Play(ctx context.Context, cfg core.RuntimeConfig, th config.Theme, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	shell, err := NewShell(screen, cfg, th, logger)
	if err != nil {
		return err
	}
	return shell.Run(ctx)
}
