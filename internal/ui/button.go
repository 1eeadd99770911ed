package ui

import "github.com/gdamore/tcell/v2"

type ButtonVariant int

const (
	// Solid is the default: primary background, light text.
	Solid ButtonVariant = iota
	Outlined
	Ghost
)

// Button is a one-row push button. A disabled button renders dimmed and
// never emits CommandClick.
type Button struct {
	id        string
	label     string
	icon      rune
	variant   ButtonVariant
	disabled  bool
	fullWidth bool

	bounds  Rect
	focused bool
	hovered bool
	pressed bool
}

func NewButton(id, label string) *Button {
	return &Button{id: id, label: label}
}

func (b *Button) WithVariant(v ButtonVariant) *Button {
	b.variant = v
	return b
}

// WithIcon adds a glyph drawn at the right edge, as dropdown triggers do.
func (b *Button) WithIcon(r rune) *Button {
	b.icon = r
	return b
}

func (b *Button) WithFullWidth(full bool) *Button {
	b.fullWidth = full
	return b
}

func (b *Button) ID() string            { return b.id }
func (b *Button) Label() string         { return b.label }
func (b *Button) SetLabel(label string) { b.label = label }
func (b *Button) Bounds() Rect          { return b.bounds }
func (b *Button) FullWidth() bool       { return b.fullWidth }
func (b *Button) Disabled() bool        { return b.disabled }

func (b *Button) SetBounds(r Rect) {
	b.bounds = r
}

// SetDisabled is called from the owner's derive step.
func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
	if disabled {
		b.pressed = false
	}
}

// PreferredWidth is the label plus padding and icon.
func (b *Button) PreferredWidth() int {
	w := TextWidth(b.label) + 4
	if b.icon != 0 {
		w += 2
	}
	return w
}

func (b *Button) Focus()        { b.focused = true }
func (b *Button) Blur()         { b.focused = false; b.pressed = false }
func (b *Button) Focused() bool { return b.focused }
func (b *Button) Enabled() bool { return !b.disabled }

func (b *Button) Activate() Command {
	if b.disabled {
		return Command{}
	}
	return Command{Kind: CommandClick, ID: b.id}
}

func (b *Button) HandleKey(*tcell.EventKey, *Keymap) (Command, bool) {
	return Command{}, false
}

// HandleMouse clicks on release inside the button after a press inside it.
func (b *Button) HandleMouse(m Mouse) (Command, bool) {
	inside := b.bounds.Contains(m.X, m.Y)
	switch m.Kind {
	case MouseMove:
		b.hovered = inside
		return Command{}, false
	case MouseDown:
		if !inside {
			return Command{}, false
		}
		b.pressed = !b.disabled
		return Command{}, true
	case MouseDrag:
		b.hovered = inside
		return Command{}, b.pressed
	case MouseUp:
		wasPressed := b.pressed
		b.pressed = false
		b.hovered = inside
		if wasPressed && inside && !b.disabled {
			return Command{Kind: CommandClick, ID: b.id}, true
		}
		return Command{}, wasPressed
	}
	return Command{}, false
}

func (b *Button) style(th *Theme) (face, edge tcell.Style) {
	fg := th.Foreground
	if b.variant == Solid {
		fg = th.PrimaryForeground
	}
	var bg tcell.Color
	switch b.variant {
	case Ghost:
		bg = th.Ground
	case Outlined:
		bg = th.ButtonSurface
	default:
		bg = th.Primary
	}
	if !b.disabled && (b.hovered || b.pressed) {
		if b.variant == Solid {
			bg = th.PrimaryHover
		} else {
			bg = th.Highlight
		}
	}
	if b.disabled {
		fg = th.Disabled
	}
	face = tcell.StyleDefault.Foreground(fg).Background(bg)
	if b.focused && !b.disabled {
		face = face.Bold(true)
	}
	edgeColor := th.Border
	switch b.variant {
	case Ghost:
		edgeColor = bg
	case Solid:
		edgeColor = th.PrimaryHover
	}
	edge = tcell.StyleDefault.Foreground(edgeColor).Background(bg)
	return face, edge
}

func (b *Button) Render(s tcell.Screen, th *Theme) {
	r := b.bounds
	if r.W <= 0 || r.H <= 0 {
		return
	}
	face, edge := b.style(th)
	fill(s, r, face)
	y := r.Y + r.H/2
	if r.W >= 2 {
		left, right := '▕', '▏'
		if b.focused {
			left, right = '[', ']'
			edge = face
		}
		s.SetContent(r.X, y, left, nil, edge)
		s.SetContent(r.Right()-1, y, right, nil, edge)
	}
	inner := Rect{X: r.X + 1, Y: r.Y, W: r.W - 2, H: r.H}
	if b.icon != 0 && inner.W > 2 {
		s.SetContent(inner.Right()-1, y, b.icon, nil, face)
		inner.W -= 2
		drawText(s, inner.X+1, y, inner.W-1, b.label, face)
		return
	}
	drawCentered(s, inner, y, b.label, face)
}
