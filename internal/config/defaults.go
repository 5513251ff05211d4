package config

import (
	_ "embed"
)

//go:embed defaults/theme.yaml
var defaultThemeYAML []byte

// DefaultTheme returns the built-in theme: gray border, green snake, red food.
func DefaultTheme() Theme {
	return Theme{
		Glyphs: Glyphs{
			Border:   "░░",
			Interior: "  ",
			Head:     "██",
			Body:     "▓▓",
			Food:     "●●",
		},
		Colors: Colors{
			Border:   "gray",
			Interior: "default",
			Head:     "bright_green",
			Body:     "green",
			Food:     "red",
			HUD:      "bright_white",
			Overlay:  "bright_yellow",
		},
		Keys: Keys{
			Up:      []string{"up", "w", "k"},
			Down:    []string{"down", "s", "j"},
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Restart: []string{"r"},
			Help:    []string{"?"},
			Quit:    []string{"q", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default theme file.
func DefaultYAML() []byte {
	return defaultThemeYAML
}
