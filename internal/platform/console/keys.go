package console

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// keyName converts a tcell key event to the key notation used in theme
// files ("up", "w", "ctrl+c").
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return "ctrl+" + strings.ToLower(string(r))
		}
		return string(r)
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	}

	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+int(k-tcell.KeyCtrlA)))
	}
	return ""
}
