package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/multierr"

	"github.com/kobzarvs/sevenguis/internal/config"
	"github.com/kobzarvs/sevenguis/internal/textfield"
)

// Keymap resolves key events to field actions and app actions.
type Keymap struct {
	field map[string]textfield.Action
	app   map[string]string
}

// NewKeymap parses the configured bindings. Empty action names unbind a key.
func NewKeymap(cfg config.Keymap) (*Keymap, error) {
	km := &Keymap{
		field: make(map[string]textfield.Action, len(cfg.Field)),
		app:   make(map[string]string, len(cfg.App)),
	}
	var err error
	for key, name := range cfg.Field {
		if name == "" {
			continue
		}
		a, perr := textfield.ParseAction(name)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("keymap.field %q: %w", key, perr))
			continue
		}
		km.field[key] = a
	}
	for key, name := range cfg.App {
		if name == "" {
			continue
		}
		km.app[key] = name
	}
	return km, err
}

// FieldAction returns the field action bound to ev.
func (k *Keymap) FieldAction(ev *tcell.EventKey) (textfield.Action, bool) {
	if k == nil {
		return textfield.ActionNone, false
	}
	a, ok := k.field[KeyName(ev)]
	return a, ok
}

// AppAction returns the app action bound to ev.
func (k *Keymap) AppAction(ev *tcell.EventKey) (string, bool) {
	if k == nil {
		return "", false
	}
	a, ok := k.app[KeyName(ev)]
	return a, ok
}

// KeyName converts a key event to the string used in keymaps, such as "a",
// "space", "shift+left", "ctrl+a" or "cmd+v".
func KeyName(ev *tcell.EventKey) string {
	mods := ev.Modifiers()
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		name := string(r)
		if r == ' ' {
			name = "space"
		}
		switch {
		case mods&tcell.ModMeta != 0:
			return "cmd+" + strings.ToLower(name)
		case mods&tcell.ModCtrl != 0:
			return "ctrl+" + strings.ToLower(name)
		case mods&tcell.ModAlt != 0:
			return "alt+" + name
		}
		return name
	}

	// Tab, Enter, Backspace and Esc share codes with ctrl+i, ctrl+m, ctrl+h
	// and ctrl+[ so they are named before the ctrl table is consulted.
	switch ev.Key() {
	case tcell.KeyTab:
		if mods&tcell.ModShift != 0 {
			return "shift+tab"
		}
		return "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if mods&tcell.ModMeta != 0 {
			return "cmd+backspace"
		}
		return "backspace"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlSpace:
		return "ctrl+space"
	}
	if name := ctrlKeyName(ev.Key()); name != "" {
		return name
	}

	var base string
	switch ev.Key() {
	case tcell.KeyUp:
		base = "up"
	case tcell.KeyDown:
		base = "down"
	case tcell.KeyLeft:
		base = "left"
	case tcell.KeyRight:
		base = "right"
	case tcell.KeyPgUp:
		base = "pgup"
	case tcell.KeyPgDn:
		base = "pgdn"
	case tcell.KeyHome:
		base = "home"
	case tcell.KeyEnd:
		base = "end"
	case tcell.KeyDelete:
		base = "del"
	default:
		return ""
	}
	prefix := ""
	if mods&tcell.ModMeta != 0 {
		prefix += "cmd+"
	}
	if mods&tcell.ModCtrl != 0 {
		prefix += "ctrl+"
	}
	if mods&tcell.ModAlt != 0 {
		prefix += "alt+"
	}
	if mods&tcell.ModShift != 0 {
		prefix += "shift+"
	}
	return prefix + base
}

func ctrlKeyName(key tcell.Key) string {
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+int(key-tcell.KeyCtrlA)))
	}
	return ""
}
