// Package tui provides the Bubble Tea shell for the snake game.
// It handles the terminal UI loop, input mapping, and the SSH server that
// serves one game per session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// TickMsg is sent to trigger a game tick.
type TickMsg time.Time

// tickCmd schedules the next game tick. The tick chain is the game timer:
// not scheduling a follow-up stops it.
func tickCmd() tea.Cmd {
	return tea.Tick(snake.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
