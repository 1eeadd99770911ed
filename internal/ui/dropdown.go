package ui

import "github.com/gdamore/tcell/v2"

// MenuItem is one entry of a dropdown menu.
type MenuItem struct {
	ID    string
	Label string
}

// Dropdown is a trigger button with a menu shown in a popover. Choosing an
// item emits CommandSelect with the item's index and closes the menu.
type Dropdown struct {
	id      string
	trigger *Button
	items   []MenuItem
	pop     *Popover
	hot     int
	pressed int
}

func NewDropdown(id, label string, items []MenuItem) *Dropdown {
	return &Dropdown{
		id:      id,
		trigger: NewButton(id+"-trigger", label).WithVariant(Outlined).WithIcon('▾'),
		items:   items,
		pop:     NewPopover(),
		pressed: -1,
	}
}

func (d *Dropdown) ID() string          { return d.id }
func (d *Dropdown) Trigger() *Button    { return d.trigger }
func (d *Dropdown) Items() []MenuItem   { return d.items }
func (d *Dropdown) Bounds() Rect        { return d.trigger.Bounds() }
func (d *Dropdown) SetBounds(r Rect)    { d.trigger.SetBounds(r) }
func (d *Dropdown) SetLabel(l string)   { d.trigger.SetLabel(l) }
func (d *Dropdown) Open() bool          { return d.pop.Open() }
func (d *Dropdown) Focus()              { d.trigger.Focus() }
func (d *Dropdown) Focused() bool       { return d.trigger.Focused() }
func (d *Dropdown) Enabled() bool       { return d.trigger.Enabled() }
func (d *Dropdown) PreferredWidth() int { return d.trigger.PreferredWidth() }

// Blur closes the menu as well.
func (d *Dropdown) Blur() {
	d.trigger.Blur()
	d.SetOpen(false)
}

func (d *Dropdown) SetOpen(open bool) {
	d.pop.SetOpen(open)
	d.pressed = -1
	if open {
		d.hot = 0
	}
}

// Activate toggles the menu.
func (d *Dropdown) Activate() Command {
	if !d.trigger.Enabled() {
		return Command{}
	}
	d.SetOpen(!d.Open())
	return Command{Kind: CommandClick, ID: d.id}
}

func (d *Dropdown) HandleKey(ev *tcell.EventKey, km *Keymap) (Command, bool) {
	if KeyName(ev) == "down" && !d.Open() {
		return d.Activate(), true
	}
	return Command{}, false
}

// HandleMouse handles the closed state; an open menu gets the pointer
// through HandleOverlayMouse first.
func (d *Dropdown) HandleMouse(m Mouse) (Command, bool) {
	cmd, ok := d.trigger.HandleMouse(m)
	if cmd.Kind == CommandClick {
		return d.Activate(), true
	}
	return cmd, ok
}

func (d *Dropdown) Render(s tcell.Screen, th *Theme) {
	d.trigger.Render(s, th)
}

func (d *Dropdown) menuSize() (int, int) {
	w := d.trigger.Bounds().W
	for _, it := range d.items {
		w = max(w, TextWidth(it.Label)+4)
	}
	return w, len(d.items) + 2
}

// RenderOverlay places and paints the open menu.
func (d *Dropdown) RenderOverlay(s tcell.Screen, th *Theme) {
	if !d.Open() {
		return
	}
	sw, sh := s.Size()
	w, h := d.menuSize()
	d.pop.Place(d.trigger.Bounds(), w, h, sw, sh)
	d.pop.Render(s, th)
	inner := d.pop.Inner()
	for i, it := range d.items {
		y := inner.Y + i
		if y >= inner.Bottom() {
			break
		}
		style := tcell.StyleDefault.Foreground(th.Foreground).Background(th.Surface)
		if i == d.hot {
			style = tcell.StyleDefault.Foreground(th.Foreground).Background(th.Highlight)
		}
		row := Rect{X: inner.X, Y: y, W: inner.W, H: 1}
		fill(s, row, style)
		drawText(s, row.X+1, y, row.W-2, it.Label, style)
	}
}

func (d *Dropdown) itemAt(x, y int) int {
	inner := d.pop.Inner()
	if !inner.Contains(x, y) {
		return -1
	}
	i := y - inner.Y
	if i >= len(d.items) {
		return -1
	}
	return i
}

func (d *Dropdown) choose(i int) Command {
	d.SetOpen(false)
	return Command{Kind: CommandSelect, ID: d.id, Index: i}
}

func (d *Dropdown) HandleOverlayKey(ev *tcell.EventKey, km *Keymap) (Command, bool) {
	if !d.Open() {
		return Command{}, false
	}
	switch KeyName(ev) {
	case "up":
		if d.hot > 0 {
			d.hot--
		}
		return Command{}, true
	case "down":
		if d.hot < len(d.items)-1 {
			d.hot++
		}
		return Command{}, true
	}
	switch action, _ := km.AppAction(ev); action {
	case "activate":
		if d.hot >= 0 && d.hot < len(d.items) {
			return d.choose(d.hot), true
		}
		return Command{}, true
	case "dismiss":
		d.SetOpen(false)
		return Command{Kind: CommandDismiss, ID: d.id}, true
	case "focus_next", "focus_prev":
		d.SetOpen(false)
		return Command{}, false
	}
	return Command{}, true
}

func (d *Dropdown) HandleOverlayMouse(m Mouse) (Command, bool) {
	if !d.Open() {
		return Command{}, false
	}
	i := d.itemAt(m.X, m.Y)
	switch m.Kind {
	case MouseMove, MouseDrag:
		if i >= 0 {
			d.hot = i
		}
		return Command{}, i >= 0 || d.pressed >= 0
	case MouseDown:
		if i >= 0 {
			d.hot = i
			d.pressed = i
			return Command{}, true
		}
		if d.trigger.Bounds().Contains(m.X, m.Y) {
			d.SetOpen(false)
			return Command{}, true
		}
		d.SetOpen(false)
		return Command{Kind: CommandDismiss, ID: d.id}, true
	case MouseUp:
		pressed := d.pressed
		d.pressed = -1
		if i >= 0 && i == pressed {
			return d.choose(i), true
		}
		return Command{}, pressed >= 0
	}
	return Command{}, false
}
