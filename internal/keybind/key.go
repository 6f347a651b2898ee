package keybind

import (
	"fmt"
	"strings"
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModNone  Modifiers = 0
	ModCtrl  Modifiers = 1 << iota // ctrl+
	ModAlt                         // alt+
	ModShift                       // shift+
)

// Key is a key press: a key code and the modifiers held with it.
//
// Code is the key name as the terminal reports it: a single character
// ("q", "?", " ") or a named key ("enter", "esc", "tab", "left", "pgdown").
type Key struct {
	Code string
	Mods Modifiers
}

// String renders the key in the form accepted by ParseKey, e.g. "ctrl+d".
func (k Key) String() string {
	var b strings.Builder
	if k.Mods&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if k.Mods&ModAlt != 0 {
		b.WriteString("alt+")
	}
	if k.Mods&ModShift != 0 {
		b.WriteString("shift+")
	}
	b.WriteString(k.Code)
	return b.String()
}

// ParseKey parses "q", "ctrl+d", "alt+shift+tab" or "+".
// Modifier prefixes are case-insensitive; the code is kept as given.
func ParseKey(s string) (Key, error) {
	if s == "" {
		return Key{}, fmt.Errorf("empty key")
	}

	var k Key
	for {
		lower := strings.ToLower(s)
		switch {
		case strings.HasPrefix(lower, "ctrl+") && len(s) > len("ctrl+"):
			k.Mods |= ModCtrl
			s = s[len("ctrl+"):]
		case strings.HasPrefix(lower, "alt+") && len(s) > len("alt+"):
			k.Mods |= ModAlt
			s = s[len("alt+"):]
		case strings.HasPrefix(lower, "shift+") && len(s) > len("shift+"):
			k.Mods |= ModShift
			s = s[len("shift+"):]
		default:
			k.Code = normalizeCode(s)
			return k, nil
		}
	}
}

// MustParseKey is ParseKey for static tables.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

var codeAliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"space":    " ",
	"pageup":   "pgup",
	"pagedown": "pgdown",
	"del":      "delete",
}

// normalizeCode lowercases named keys and maps common aliases. Single
// characters keep their case so "G" and "g" stay distinct.
func normalizeCode(code string) string {
	if len([]rune(code)) == 1 {
		return code
	}
	lower := strings.ToLower(code)
	if alias, ok := codeAliases[lower]; ok {
		return alias
	}
	return lower
}
