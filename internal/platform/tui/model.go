package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/view"
)

// Model is the Bubble Tea model running one snake game.
// Bubble Tea delivers ticks and key presses through Update one at a time,
// so the game is only ever touched from a single logical thread.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	renderer *view.Renderer
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model with a fresh game.
func NewModel(cfg core.RuntimeConfig, th config.Theme, logger *log.Logger) (Model, error) {
	renderer, err := view.New(th)
	if err != nil {
		return Model{}, err
	}

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:     snake.New(cfg.Seed),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: renderer,
		keys:     NewKeyMap(th.Keys),
		help:     help.New(),
		config:   cfg,
		logger:   logger,
	}
	m.layout()
	m.logger.Debug("game started", "seed", cfg.Seed)
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Directions only steer the snake; the
// tick is what moves it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if d, ok := snake.DirectionFor(action); ok {
		m.game.OnDirection(d)
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	case core.ActionRestart:
		if m.game.Over() {
			return m.restart()
		}
	}

	return m, nil
}

// restart replaces the finished game with a new one and restarts the timer.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game = snake.New(m.config.Seed)
	m.logger.Debug("game restarted", "seed", m.config.Seed)
	return m, tickCmd()
}

// handleResize processes window resize events. The board has a fixed size,
// so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.layout()
	return m, nil
}

// layout sizes the screen buffer to the terminal minus the help footer.
func (m *Model) layout() {
	m.help.Width = m.config.ScreenW
	footer := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-footer, 0))
}

// handleTick advances the game. While the window is too small the game
// waits; once the game is over no further tick is scheduled.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.Over() {
		return m, nil
	}
	if !view.Fits(m.screen.Width(), m.screen.Height()) {
		return m, tickCmd()
	}

	res := m.game.Tick()
	if res.Ate {
		m.logger.Debug("food eaten", "score", m.game.Score(), "length", m.game.Length())
	}
	if res.Ended {
		snap := m.game.Snapshot()
		m.logger.Info("game over",
			"score", snap.Score,
			"length", snap.Length,
			"cause", snap.Cause,
			"ticks", snap.Tick,
			"seed", m.game.Seed(),
		)
		return m, nil
	}

	return m, tickCmd()
}

// Game returns the running game.
func (m Model) Game() *snake.Game {
	return m.game
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen, m.game)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with a new game.
func Run(cfg core.RuntimeConfig, th config.Theme, logger *log.Logger) error {
	model, err := NewModel(cfg, th, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
