package keybind

import (
	"fmt"
	"sort"
	"strings"

	"github.com/muurk/elysium/internal/action"
)

// Specificity is how narrowly a StateKey matches.
type Specificity int

const (
	// Exact matches one key in one mode.
	Exact Specificity = iota
	// KeyCode matches one key in every mode.
	KeyCode
	// State matches every otherwise unbound key in one mode.
	State
)

// StateKey identifies a binding. Only the fields relevant to Kind are set,
// so StateKey values are usable as map keys.
type StateKey struct {
	Kind Specificity
	Mode action.Mode
	Key  Key
}

// ExactKey binds k in mode m.
func ExactKey(m action.Mode, k Key) StateKey {
	return StateKey{Kind: Exact, Mode: m, Key: k}
}

// GlobalKey binds k in every mode.
func GlobalKey(k Key) StateKey {
	return StateKey{Kind: KeyCode, Key: k}
}

// ModeFallback binds every unbound key in mode m.
func ModeFallback(m action.Mode) StateKey {
	return StateKey{Kind: State, Mode: m}
}

// Bindings maps key presses to actions.
//
// A Bindings value is built once and is not modified afterwards; Lookup is
// pure and safe for concurrent use.
type Bindings struct {
	m map[StateKey]action.Action
}

// New builds a table from entries. Later entries replace earlier ones with
// the same StateKey.
func New(entries map[StateKey]action.Action) *Bindings {
	b := &Bindings{m: make(map[StateKey]action.Action, len(entries))}
	for k, a := range entries {
		b.m[k] = a
	}
	return b
}

// Lookup resolves a key press in mode m. Resolution order: exact (mode, key,
// modifiers), then mode-independent (key, modifiers), then the mode fallback.
// The second result is false when nothing matched.
func (b *Bindings) Lookup(m action.Mode, k Key) (action.Action, bool) {
	if a, ok := b.m[ExactKey(m, k)]; ok {
		return a, true
	}
	if a, ok := b.m[GlobalKey(k)]; ok {
		return a, true
	}
	if a, ok := b.m[ModeFallback(m)]; ok {
		return a, true
	}
	return action.Action{}, false
}

// Len returns the number of bindings.
func (b *Bindings) Len() int { return len(b.m) }

// With returns a copy of b with overrides applied on top.
func (b *Bindings) With(overrides map[StateKey]action.Action) *Bindings {
	out := New(b.m)
	for k, a := range overrides {
		out.m[k] = a
	}
	return out
}

// Entry groups the keys bound to one action, for help output.
type Entry struct {
	Action action.Action
	Keys   []Key
}

// Label joins the keys for display, e.g. "q/ctrl+c".
func (e Entry) Label() string {
	parts := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		parts[i] = displayKey(k)
	}
	return strings.Join(parts, "/")
}

var keySymbols = map[string]string{
	"up":    "↑",
	"down":  "↓",
	"left":  "←",
	"right": "→",
	" ":     "space",
}

func displayKey(k Key) string {
	if sym, ok := keySymbols[k.Code]; ok && k.Mods == ModNone {
		return sym
	}
	return k.String()
}

// Entries lists the bindings active in mode m, exact and global, grouped by
// action and sorted by action kind. Fallback bindings are omitted since they
// have no key to show.
func (b *Bindings) Entries(m action.Mode) []Entry {
	byAction := map[action.Action][]Key{}
	for sk, a := range b.m {
		switch {
		case sk.Kind == Exact && sk.Mode == m, sk.Kind == KeyCode:
			byAction[a] = append(byAction[a], sk.Key)
		}
	}

	entries := make([]Entry, 0, len(byAction))
	for a, keys := range byAction {
		sort.Slice(keys, func(i, j int) bool {
			if len(keys[i].String()) != len(keys[j].String()) {
				return len(keys[i].String()) < len(keys[j].String())
			}
			return keys[i].String() < keys[j].String()
		})
		entries = append(entries, Entry{Action: a, Keys: keys})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Action.Kind != entries[j].Action.Kind {
			return entries[i].Action.Kind < entries[j].Action.Kind
		}
		return entries[i].Action.String() < entries[j].Action.String()
	})
	return entries
}

// ParseOverrides converts configuration entries into StateKeys. The outer map
// is keyed by scope ("normal", "input" or "global"), the inner by key string,
// with action names as values (see action.Parse).
func ParseOverrides(cfg map[string]map[string]string) (map[StateKey]action.Action, error) {
	out := map[StateKey]action.Action{}
	for scope, keys := range cfg {
		for keyStr, name := range keys {
			k, err := ParseKey(keyStr)
			if err != nil {
				return nil, fmt.Errorf("keybindings.%s: %w", scope, err)
			}
			a, err := action.Parse(name)
			if err != nil {
				return nil, fmt.Errorf("keybindings.%s.%s: %w", scope, keyStr, err)
			}

			var sk StateKey
			if strings.EqualFold(scope, "global") {
				sk = GlobalKey(k)
			} else {
				m, err := action.ParseMode(scope)
				if err != nil {
					return nil, fmt.Errorf("keybindings: %w", err)
				}
				sk = ExactKey(m, k)
			}
			out[sk] = a
		}
	}
	return out, nil
}
