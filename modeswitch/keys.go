package modeswitch

import tea "github.com/charmbracelet/bubbletea"

// KeyMap lists the key strings (as reported by tea.KeyMsg.String) that move
// the selection.
type KeyMap struct {
	Prev []string
	Next []string
	// Jump enables the digit keys 1–9 to select an item directly.
	Jump bool
}

// DefaultKeyMap returns the bindings used when no [WithKeyMap] option is given.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: []string{"left", "h", "shift+tab"},
		Next: []string{"right", "l", "tab"},
		Jump: true,
	}
}

func matches(msg tea.KeyMsg, keys []string) bool {
	s := msg.String()
	for _, k := range keys {
		if s == k {
			return true
		}
	}
	return false
}

// digit returns the zero-based position for keys "1".."9".
func digit(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}
