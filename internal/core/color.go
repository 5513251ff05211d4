package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
)

var colorNames = map[Color]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright_red",
	ColorBrightGreen:   "bright_green",
	ColorBrightYellow:  "bright_yellow",
	ColorBrightBlue:    "bright_blue",
	ColorBrightMagenta: "bright_magenta",
	ColorBrightCyan:    "bright_cyan",
	ColorBrightWhite:   "bright_white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
	ColorBlack:         "black",
}

// String returns the lowercase name used in theme files.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ColorByName looks up a color by its theme-file name.
func ColorByName(name string) (Color, bool) {
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return ColorDefault, false
}

// ANSI returns the ANSI 256-color code for the color, or -1 for the
// terminal default.
func (c Color) ANSI() int {
	switch c {
	case ColorRed:
		return 1
	case ColorGreen:
		return 2
	case ColorYellow:
		return 3
	case ColorBlue:
		return 4
	case ColorMagenta:
		return 5
	case ColorCyan:
		return 6
	case ColorWhite:
		return 7
	case ColorBrightRed:
		return 9
	case ColorBrightGreen:
		return 10
	case ColorBrightYellow:
		return 11
	case ColorBrightBlue:
		return 12
	case ColorBrightMagenta:
		return 13
	case ColorBrightCyan:
		return 14
	case ColorBrightWhite:
		return 15
	case ColorOrange:
		return 208
	case ColorGray:
		return 245
	case ColorBlack:
		return 0
	default:
		return -1
	}
}
