package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Print the effective theme",
	Long: `Print the theme YAML that play and serve would use.

Themes are looked up in this order:
  1. --theme <path>
  2. ~/.snake/theme.yaml
  3. ./configs/theme.yaml
  4. Built-in default

Examples:
  snake theme
  snake theme --theme ./my-theme.yaml
  snake theme > ~/.snake/theme.yaml`,
	Args: cobra.NoArgs,
	Run:  runTheme,
}

func runTheme(_ *cobra.Command, _ []string) {
	th := loadTheme()

	data, err := config.Marshal(th)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
