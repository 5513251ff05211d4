package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/console"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagShell string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD/HJKL - Steer
  R                - Restart (after game over)
  ?                - Show all keys
  Q/Ctrl+C         - Quit

The snake moves one cell every 100ms. Eating food grows it by one cell.
Hitting the border or your own body ends the game.

Shells:
  tui      - Bubble Tea renderer (default)
  console  - tcell renderer

Examples:
  snake play
  snake play --seed 42
  snake play --shell console
  snake play --theme ./my-theme.yaml --log-file snake.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagShell, "shell", "tui", "Renderer: tui or console")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagShell != "tui" && flagShell != "console" {
		fmt.Fprintf(os.Stderr, "Error: unknown shell %q (use tui or console)\n", flagShell)
		os.Exit(1)
	}

	th := loadTheme()

	// The game owns the terminal, so logs only go to --log-file.
	logger, closeLog := newLogger(nil, "snake")
	defer closeLog()

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	logger.Info("starting", "shell", flagShell, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	var err error
	switch flagShell {
	case "console":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err = console.Play(ctx, cfg, th, logger)
		stop()
	default:
		err = tui.Run(cfg, th, logger)
	}

	if err != nil {
		logger.Error("game failed", "error", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
