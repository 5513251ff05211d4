// Package config provides YAML-based theme and key binding configuration for
// the snake shells. Board geometry and speed are not configurable.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrUnknownColor is returned when a theme names a color that does not exist.
var ErrUnknownColor = errors.New("unknown color")

// Theme contains everything a shell needs to draw the board and bind keys.
type Theme struct {
	Glyphs Glyphs `yaml:"glyphs"`
	Colors Colors `yaml:"colors"`
	Keys   Keys   `yaml:"keys"`
}

// Glyphs defines what one board cell looks like. Each cell is two terminal
// columns wide; a single-rune glyph is doubled.
type Glyphs struct {
	Border   string `yaml:"border"`
	Interior string `yaml:"interior"`
	Head     string `yaml:"head"`
	Body     string `yaml:"body"`
	Food     string `yaml:"food"`
}

// Colors names the color of each board element. See core.ColorByName.
type Colors struct {
	Border   string `yaml:"border"`
	Interior string `yaml:"interior"`
	Head     string `yaml:"head"`
	Body     string `yaml:"body"`
	Food     string `yaml:"food"`
	HUD      string `yaml:"hud"`
	Overlay  string `yaml:"overlay"`
}

// Keys lists the key names bound to each action, in Bubble Tea notation
// ("up", "ctrl+c", "w").
type Keys struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Restart []string `yaml:"restart"`
	Help    []string `yaml:"help"`
	Quit    []string `yaml:"quit"`
}

// Bindings returns the key lists keyed by action.
func (k Keys) Bindings() map[core.Action][]string {
	return map[core.Action][]string{
		core.ActionUp:      k.Up,
		core.ActionDown:    k.Down,
		core.ActionLeft:    k.Left,
		core.ActionRight:   k.Right,
		core.ActionRestart: k.Restart,
		core.ActionHelp:    k.Help,
		core.ActionQuit:    k.Quit,
	}
}

// Palette is a Theme's colors resolved to core colors.
type Palette struct {
	Border   core.Color
	Interior core.Color
	Head     core.Color
	Body     core.Color
	Food     core.Color
	HUD      core.Color
	Overlay  core.Color
}

// Palette resolves the theme's color names.
func (t Theme) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"border", t.Colors.Border, &p.Border},
		{"interior", t.Colors.Interior, &p.Interior},
		{"head", t.Colors.Head, &p.Head},
		{"body", t.Colors.Body, &p.Body},
		{"food", t.Colors.Food, &p.Food},
		{"hud", t.Colors.HUD, &p.HUD},
		{"overlay", t.Colors.Overlay, &p.Overlay},
	}
	for _, f := range fields {
		c, ok := core.ColorByName(f.src)
		if !ok {
			return Palette{}, fmt.Errorf("config: colors.%s: %w %q", f.name, ErrUnknownColor, f.src)
		}
		*f.dst = c
	}
	return p, nil
}

// Validate checks that colors resolve, glyphs are one or two runes wide and
// that no key is bound to two actions.
func (t Theme) Validate() error {
	if _, err := t.Palette(); err != nil {
		return err
	}

	glyphs := map[string]string{
		"border":   t.Glyphs.Border,
		"interior": t.Glyphs.Interior,
		"head":     t.Glyphs.Head,
		"body":     t.Glyphs.Body,
		"food":     t.Glyphs.Food,
	}
	for name, g := range glyphs {
		if n := len([]rune(g)); n < 1 || n > 2 {
			return fmt.Errorf("config: glyphs.%s must be 1 or 2 characters, got %q", name, g)
		}
	}

	seen := make(map[string]core.Action)
	for action, keys := range t.Keys.Bindings() {
		if len(keys) == 0 {
			return fmt.Errorf("config: keys.%s has no bindings", action)
		}
		for _, k := range keys {
			if other, ok := seen[k]; ok && other != action {
				return fmt.Errorf("config: key %q bound to both %s and %s", k, other, action)
			}
			seen[k] = action
		}
	}
	return nil
}

// CellGlyph returns the two runes used to draw one board cell.
func CellGlyph(g string) [2]rune {
	r := []rune(g)
	switch len(r) {
	case 0:
		return [2]rune{' ', ' '}
	case 1:
		return [2]rune{r[0], r[0]}
	default:
		return [2]rune{r[0], r[1]}
	}
}
