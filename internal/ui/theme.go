package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/kobzarvs/sevenguis/internal/config"
)

// Theme holds the resolved colors every widget renders with. It is built
// once from config and passed to Render; widgets never look it up globally.
type Theme struct {
	Foreground          tcell.Color
	Ground              tcell.Color
	Surface             tcell.Color
	ButtonSurface       tcell.Color
	Border              tcell.Color
	Highlight           tcell.Color
	Primary             tcell.Color
	PrimaryHover        tcell.Color
	PrimaryForeground   tcell.Color
	Placeholder         tcell.Color
	Disabled            tcell.Color
	Error               tcell.Color
	SelectionForeground tcell.Color
	SelectionBackground tcell.Color
	Composition         tcell.Color
}

func NewTheme(cfg config.Theme) Theme {
	def := config.Default().Theme
	t := Theme{
		Foreground:          parseColor(cfg.Foreground, parseColor(def.Foreground, tcell.ColorWhite)),
		Ground:              parseColor(cfg.Background, parseColor(def.Background, tcell.ColorBlack)),
		Surface:             parseColor(cfg.Surface, parseColor(def.Surface, tcell.ColorBlack)),
		ButtonSurface:       parseColor(cfg.ButtonSurface, parseColor(def.ButtonSurface, tcell.ColorGray)),
		Border:              parseColor(cfg.Border, parseColor(def.Border, tcell.ColorGray)),
		Highlight:           parseColor(cfg.Highlight, parseColor(def.Highlight, tcell.ColorBlue)),
		Primary:             parseColor(cfg.Primary, parseColor(def.Primary, tcell.ColorBlue)),
		PrimaryForeground:   parseColor(cfg.PrimaryForeground, tcell.ColorWhite),
		Placeholder:         parseColor(cfg.Placeholder, parseColor(def.Placeholder, tcell.ColorGray)),
		Error:               parseColor(cfg.Error, parseColor(def.Error, tcell.ColorMaroon)),
		SelectionForeground: parseColor(cfg.SelectionForeground, tcell.ColorWhite),
		SelectionBackground: parseColor(cfg.SelectionBackground, parseColor(def.SelectionBackground, tcell.ColorNavy)),
		Composition:         parseColor(cfg.Composition, parseColor(def.Composition, tcell.ColorYellow)),
	}
	// Hover is the primary color at 87% over the ground and disabled text is
	// the foreground at 60%.
	t.PrimaryHover = blend(t.Primary, t.Ground, 0.13)
	t.Disabled = parseColor(cfg.Disabled, blend(t.Foreground, t.Ground, 0.4))
	return t
}

// Base is the style of empty window space.
func (t *Theme) Base() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Foreground).Background(t.Ground)
}

// parseColor accepts "#rrggbb" or a tcell color name and returns fallback
// for anything else.
func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

// blend mixes a toward b by t in Lab space. Colors without an RGB value
// (the terminal default) are returned unchanged.
func blend(a, b tcell.Color, t float64) tcell.Color {
	ca, ok := toColorful(a)
	if !ok {
		return a
	}
	cb, ok := toColorful(b)
	if !ok {
		return a
	}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

func toColorful(c tcell.Color) (colorful.Color, bool) {
	if c == tcell.ColorDefault {
		return colorful.Color{}, false
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}
