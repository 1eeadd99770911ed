package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Dialog is a modal prompt: a message and a row of buttons. While open it
// takes all input. Choosing a button emits CommandSelect with its index;
// dismissing emits CommandDismiss.
type Dialog struct {
	id      string
	message string
	buttons []*Button
	hot     int
	open    bool
	bounds  Rect
}

func NewDialog(id string, buttons ...string) *Dialog {
	d := &Dialog{id: id}
	for i, label := range buttons {
		v := Outlined
		if i == 0 {
			v = Solid
		}
		d.buttons = append(d.buttons, NewButton(id+"-"+strings.ToLower(label), label).WithVariant(v))
	}
	return d
}

func (d *Dialog) ID() string      { return d.id }
func (d *Dialog) Open() bool      { return d.open }
func (d *Dialog) Message() string { return d.message }
func (d *Dialog) Bounds() Rect    { return d.bounds }

// Show opens the dialog with message and focuses the first button.
func (d *Dialog) Show(message string) {
	d.message = message
	d.open = true
	d.setHot(0)
}

func (d *Dialog) Close() {
	d.open = false
}

func (d *Dialog) setHot(i int) {
	if len(d.buttons) == 0 {
		return
	}
	i = (i%len(d.buttons) + len(d.buttons)) % len(d.buttons)
	for j, b := range d.buttons {
		if j == i {
			b.Focus()
		} else {
			b.Blur()
		}
	}
	d.hot = i
}

func (d *Dialog) choose(i int) Command {
	d.open = false
	return Command{Kind: CommandSelect, ID: d.id, Index: i}
}

// wrap breaks the message into lines of at most width cells on spaces.
func wrap(text string, width int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case TextWidth(line)+1+TextWidth(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func (d *Dialog) layout(sw, sh int) []string {
	w := min(max(sw-4, 10), 50)
	lines := wrap(d.message, w-4)
	h := len(lines) + 5
	d.bounds = Rect{X: (sw - w) / 2, Y: max((sh-h)/2, 0), W: w, H: h}
	inner := Rect{X: d.bounds.X + 2, Y: d.bounds.Bottom() - 2, W: w - 4, H: 1}
	total := 0
	for _, b := range d.buttons {
		total += b.PreferredWidth() + 1
	}
	x := inner.Right() - total + 1
	for _, b := range d.buttons {
		bw := b.PreferredWidth()
		b.SetBounds(Rect{X: x, Y: inner.Y, W: bw, H: 1})
		x += bw + 1
	}
	return lines
}

func (d *Dialog) RenderOverlay(s tcell.Screen, th *Theme) {
	if !d.open {
		return
	}
	sw, sh := s.Size()
	lines := d.layout(sw, sh)
	border := tcell.StyleDefault.Foreground(th.Border).Background(th.Surface)
	inside := tcell.StyleDefault.Foreground(th.Foreground).Background(th.Surface)
	box(s, d.bounds, border, inside)
	for i, line := range lines {
		drawText(s, d.bounds.X+2, d.bounds.Y+1+i, d.bounds.W-4, line, inside)
	}
	for _, b := range d.buttons {
		b.Render(s, th)
	}
}

func (d *Dialog) HandleOverlayKey(ev *tcell.EventKey, km *Keymap) (Command, bool) {
	if !d.open {
		return Command{}, false
	}
	switch KeyName(ev) {
	case "left":
		d.setHot(d.hot - 1)
		return Command{}, true
	case "right":
		d.setHot(d.hot + 1)
		return Command{}, true
	}
	switch action, _ := km.AppAction(ev); action {
	case "focus_next":
		d.setHot(d.hot + 1)
	case "focus_prev":
		d.setHot(d.hot - 1)
	case "activate":
		return d.choose(d.hot), true
	case "dismiss":
		d.open = false
		return Command{Kind: CommandDismiss, ID: d.id}, true
	}
	return Command{}, true
}

func (d *Dialog) HandleOverlayMouse(m Mouse) (Command, bool) {
	if !d.open {
		return Command{}, false
	}
	for i, b := range d.buttons {
		if cmd, _ := b.HandleMouse(m); cmd.Kind == CommandClick {
			return d.choose(i), true
		}
	}
	return Command{}, true
}
