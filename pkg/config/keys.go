package config

import (
	"strings"

	"golang.org/x/mobile/event/key"
)

var keyNames = map[string]key.Code{
	"enter":       key.CodeReturnEnter,
	"return":      key.CodeReturnEnter,
	"keypadenter": key.CodeKeypadEnter,
	"space":       key.CodeSpacebar,
	"tab":         key.CodeTab,
	"escape":      key.CodeEscape,
	"backspace":   key.CodeDeleteBackspace,
}

// ParseKey maps a key name from gestures.yaml to its key code.
func ParseKey(name string) (key.Code, bool) {
	code, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// KeyName returns the gestures.yaml name of code, or the code's own
// string when it has no name.
func KeyName(code key.Code) string {
	best := ""
	for name, c := range keyNames {
		if c == code && (best == "" || name < best) {
			best = name
		}
	}
	if best == "" {
		return code.String()
	}
	return best
}
