// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake theme              - Print the effective theme
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--theme <path>      - Use a custom theme file
//	--log-file <path>   - Write logs to a file
//	--debug             - Log every eaten food
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagSeed    int64
	flagTheme   string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic game: steer the snake to the food, grow,
and stay clear of the border and your own tail.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  theme    - Print the effective theme

Examples:
  snake play
  snake play --shell console --seed 42
  snake serve --ssh :2222
  snake theme > ~/.snake/theme.yaml`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Path to custom theme YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(themeCmd)
}

// loadTheme loads the theme selected by --theme or exits.
func loadTheme() config.Theme {
	th, err := config.Load(flagTheme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return th
}

// newLogger builds the logger for a command. Without --log-file, logs go to
// fallback; a nil fallback discards them.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func()) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		out = f
		closeFn = func() { f.Close() }
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}
