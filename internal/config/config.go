package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

// Keymap binds key strings ("ctrl+a", "shift+left", "esc") to action names.
// Field actions go to the focused text input; app actions are handled by the
// host before any widget sees the key.
type Keymap struct {
	Field map[string]string `toml:"field"`
	App   map[string]string `toml:"app"`
}

type Theme struct {
	Theme               string `toml:"theme"`
	Foreground          string `toml:"foreground"`
	Background          string `toml:"background"`
	Surface             string `toml:"surface"`
	ButtonSurface       string `toml:"button-surface"`
	Border              string `toml:"border"`
	Highlight           string `toml:"highlight"`
	Primary             string `toml:"primary"`
	PrimaryForeground   string `toml:"primary-foreground"`
	Placeholder         string `toml:"placeholder"`
	Disabled            string `toml:"disabled"`
	Error               string `toml:"error"`
	SelectionForeground string `toml:"selection-foreground"`
	SelectionBackground string `toml:"selection-background"`
	Composition         string `toml:"composition"`
}

type Clipboard struct {
	// Backend is "system" or "memory".
	Backend string `toml:"backend"`
}

type Demo struct {
	Default string `toml:"default"`
	// EastAsianWidth measures ambiguous-width characters as two cells.
	EastAsianWidth bool `toml:"east-asian-width"`
}

type Config struct {
	Theme     Theme     `toml:"theme"`
	Keymap    Keymap    `toml:"keymap"`
	Clipboard Clipboard `toml:"clipboard"`
	Demo      Demo      `toml:"demo"`
}

// Field actions and app actions known to the host. Kept here so config
// validation does not depend on the widget packages; FieldActions must
// hold exactly textfield.ActionNames().
var (
	FieldActions = []string{
		"backspace", "delete", "left", "right", "select_left", "select_right",
		"home", "end", "select_home", "select_end", "select_all",
		"copy", "cut", "paste",
	}
	AppActions = []string{
		"quit", "focus_next", "focus_prev", "activate", "dismiss", "compose",
	}
	Demos = []string{"counter", "flight", "temperature"}
)

func Default() Config {
	return Config{
		Theme: Theme{
			Theme:               "",
			Foreground:          "#E5E7EB",
			Background:          "#111827",
			Surface:             "#1F2937",
			ButtonSurface:       "#374151",
			Border:              "#4B5563",
			Highlight:           "#3B82F6",
			Primary:             "#2563EB",
			PrimaryForeground:   "#FFFFFF",
			Placeholder:         "#6B7280",
			Disabled:            "",
			Error:               "#7F1D1D",
			SelectionForeground: "#FFFFFF",
			SelectionBackground: "#1D4ED8",
			Composition:         "#FBBF24",
		},
		Keymap: Keymap{
			Field: map[string]string{
				"backspace":   "backspace",
				"del":         "delete",
				"left":        "left",
				"right":       "right",
				"shift+left":  "select_left",
				"shift+right": "select_right",
				"home":        "home",
				"end":         "end",
				"ctrl+e":      "end",
				"shift+home":  "select_home",
				"shift+end":   "select_end",
				"ctrl+a":      "select_all",
				"cmd+a":       "select_all",
				"ctrl+c":      "copy",
				"cmd+c":       "copy",
				"ctrl+x":      "cut",
				"cmd+x":       "cut",
				"ctrl+v":      "paste",
				"cmd+v":       "paste",
			},
			App: map[string]string{
				"ctrl+q":     "quit",
				"cmd+q":      "quit",
				"tab":        "focus_next",
				"shift+tab":  "focus_prev",
				"enter":      "activate",
				"space":      "activate",
				"esc":        "dismiss",
				"ctrl+space": "compose",
			},
		},
		Clipboard: Clipboard{
			Backend: "system",
		},
		Demo: Demo{
			Default: "counter",
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if userCfg.Theme.Theme != "" {
		cfg.Theme.Theme = userCfg.Theme.Theme
	}
	if cfg.Theme.Theme != "" {
		theme, err := LoadTheme(cfg.Theme.Theme)
		if err != nil {
			return cfg, err
		}
		mergeTheme(&cfg.Theme, theme)
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)

	for k, v := range userCfg.Keymap.Field {
		cfg.Keymap.Field[k] = v
	}
	for k, v := range userCfg.Keymap.App {
		cfg.Keymap.App[k] = v
	}
	if userCfg.Clipboard.Backend != "" {
		cfg.Clipboard.Backend = userCfg.Clipboard.Backend
	}
	if userCfg.Demo.Default != "" {
		cfg.Demo.Default = userCfg.Demo.Default
	}
	if userCfg.Demo.EastAsianWidth {
		cfg.Demo.EastAsianWidth = true
	}

	return cfg, cfg.Validate()
}

// Validate reports every unknown action, backend and demo name at once.
// An empty action name unbinds a default key and is allowed.
func (c Config) Validate() error {
	var err error
	err = multierr.Append(err, validateBindings("keymap.field", c.Keymap.Field, FieldActions))
	err = multierr.Append(err, validateBindings("keymap.app", c.Keymap.App, AppActions))
	switch c.Clipboard.Backend {
	case "system", "memory":
	default:
		err = multierr.Append(err, fmt.Errorf("clipboard.backend: unknown backend %q", c.Clipboard.Backend))
	}
	if !contains(Demos, c.Demo.Default) {
		err = multierr.Append(err, fmt.Errorf("demo.default: unknown demo %q", c.Demo.Default))
	}
	return err
}

func validateBindings(section string, bindings map[string]string, known []string) error {
	keys := make([]string, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var err error
	for _, k := range keys {
		action := bindings[k]
		if action == "" || contains(known, action) {
			continue
		}
		err = multierr.Append(err, fmt.Errorf("%s: key %q bound to unknown action %q", section, k, action))
	}
	return err
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func mergeTheme(dst *Theme, src Theme) {
	if src.Foreground != "" {
		dst.Foreground = src.Foreground
	}
	if src.Background != "" {
		dst.Background = src.Background
	}
	if src.Surface != "" {
		dst.Surface = src.Surface
	}
	if src.ButtonSurface != "" {
		dst.ButtonSurface = src.ButtonSurface
	}
	if src.Border != "" {
		dst.Border = src.Border
	}
	if src.Highlight != "" {
		dst.Highlight = src.Highlight
	}
	if src.Primary != "" {
		dst.Primary = src.Primary
	}
	if src.PrimaryForeground != "" {
		dst.PrimaryForeground = src.PrimaryForeground
	}
	if src.Placeholder != "" {
		dst.Placeholder = src.Placeholder
	}
	if src.Disabled != "" {
		dst.Disabled = src.Disabled
	}
	if src.Error != "" {
		dst.Error = src.Error
	}
	if src.SelectionForeground != "" {
		dst.SelectionForeground = src.SelectionForeground
	}
	if src.SelectionBackground != "" {
		dst.SelectionBackground = src.SelectionBackground
	}
	if src.Composition != "" {
		dst.Composition = src.Composition
	}
}

func ThemePath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theme", name+".toml"), nil
}

// LoadTheme reads theme/<name>.toml. The file may list colors at the top
// level or under a [theme] table.
func LoadTheme(name string) (Theme, error) {
	path, err := ThemePath(name)
	if err != nil {
		return Theme{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var wrap struct {
		Theme *Theme `toml:"theme"`
	}
	if _, err := toml.Decode(string(data), &wrap); err == nil && wrap.Theme != nil {
		return *wrap.Theme, nil
	}
	var t Theme
	if _, err := toml.Decode(string(data), &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return t, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("SEVENGUIS_CONFIG_HOME"); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "sevenguis"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sevenguis"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
