package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/sevenguis/internal/demo"
	"github.com/kobzarvs/sevenguis/internal/logger"
	"github.com/kobzarvs/sevenguis/internal/ui"
)

// Host runs one demo view inside a tcell screen: it routes input, owns
// focus and pointer capture, and draws a frame after every input turn.
type Host struct {
	view   demo.View
	keymap *ui.Keymap
	theme  ui.Theme

	focused ui.Focusable
	capture ui.Pointer
	buttons tcell.ButtonMask
}

func NewHost(v demo.View, km *ui.Keymap, th ui.Theme) *Host {
	h := &Host{view: v, keymap: km, theme: th}
	v.Derive()
	h.focusStep(1)
	return h
}

func (h *Host) View() demo.View       { return h.view }
func (h *Host) Focused() ui.Focusable { return h.focused }

// HandleEvent runs one input turn and reports whether the app should quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if action, ok := h.keymap.AppAction(ev); ok && action == "quit" {
			return true
		}
		h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	default:
		return false
	}
	h.view.Derive()
	if h.focused != nil && !h.focused.Enabled() {
		h.focusStep(1)
	}
	return false
}

func (h *Host) handleKey(ev *tcell.EventKey) {
	if ov := h.topOverlay(); ov != nil {
		if cmd, ok := ov.HandleOverlayKey(ev, h.keymap); ok {
			h.dispatch(cmd)
			return
		}
	}
	if h.focused != nil {
		if cmd, ok := h.focused.HandleKey(ev, h.keymap); ok {
			h.dispatch(cmd)
			return
		}
	}
	action, ok := h.keymap.AppAction(ev)
	if !ok {
		return
	}
	switch action {
	case "focus_next":
		h.focusStep(1)
	case "focus_prev":
		h.focusStep(-1)
	case "activate":
		if h.focused != nil {
			h.dispatch(h.focused.Activate())
		}
	case "compose":
		if in, ok := h.focused.(*ui.TextInput); ok {
			in.StartCompose()
		}
	}
}

// mouse turns tcell's button state into a press/drag/release transition
// for the primary button.
func (h *Host) mouse(ev *tcell.EventMouse) ui.Mouse {
	x, y := ev.Position()
	btn := ev.Buttons() & tcell.ButtonPrimary
	m := ui.Mouse{X: x, Y: y, Shift: ev.Modifiers()&tcell.ModShift != 0}
	switch {
	case btn != 0 && h.buttons == 0:
		m.Kind = ui.MouseDown
	case btn != 0:
		m.Kind = ui.MouseDrag
	case h.buttons != 0:
		m.Kind = ui.MouseUp
	default:
		m.Kind = ui.MouseMove
	}
	h.buttons = btn
	return m
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0 {
		return
	}
	m := h.mouse(ev)

	if h.capture != nil && (m.Kind == ui.MouseDrag || m.Kind == ui.MouseUp) {
		cmd, _ := h.capture.HandleMouse(m)
		if m.Kind == ui.MouseUp {
			h.capture = nil
		}
		h.dispatch(cmd)
		return
	}

	if ov := h.topOverlay(); ov != nil {
		if cmd, ok := ov.HandleOverlayMouse(m); ok {
			h.dispatch(cmd)
			return
		}
	}

	if m.Kind == ui.MouseMove {
		for _, w := range h.view.Widgets() {
			if p, ok := w.(ui.Pointer); ok {
				p.HandleMouse(m)
			}
		}
		return
	}

	w := h.widgetAt(m.X, m.Y)
	if w == nil {
		return
	}
	if m.Kind == ui.MouseDown {
		if f, ok := w.(ui.Focusable); ok && f.Enabled() {
			h.setFocus(f)
		}
	}
	p, ok := w.(ui.Pointer)
	if !ok {
		return
	}
	cmd, captured := p.HandleMouse(m)
	if m.Kind == ui.MouseDown && captured {
		h.capture = p
	}
	h.dispatch(cmd)
}

func (h *Host) widgetAt(x, y int) ui.Widget {
	ws := h.view.Widgets()
	for i := len(ws) - 1; i >= 0; i-- {
		if ws[i].Bounds().Contains(x, y) {
			return ws[i]
		}
	}
	return nil
}

func (h *Host) topOverlay() ui.Overlay {
	ovs := h.view.Overlays()
	for i := len(ovs) - 1; i >= 0; i-- {
		if ovs[i].Open() {
			return ovs[i]
		}
	}
	return nil
}

func (h *Host) dispatch(cmd ui.Command) {
	if cmd.Kind == ui.CommandNone {
		return
	}
	logger.Debug("command", "demo", h.view.Name(), "kind", cmd.Kind.String(), "id", cmd.ID, "index", cmd.Index)
	h.view.Handle(cmd)
}

func (h *Host) focusables() []ui.Focusable {
	var out []ui.Focusable
	for _, w := range h.view.Widgets() {
		if f, ok := w.(ui.Focusable); ok && f.Enabled() {
			out = append(out, f)
		}
	}
	return out
}

// focusStep moves focus dir places through the enabled focusables,
// wrapping around.
func (h *Host) focusStep(dir int) {
	fs := h.focusables()
	if len(fs) == 0 {
		h.setFocus(nil)
		return
	}
	cur := -1
	for i, f := range fs {
		if f == h.focused {
			cur = i
			break
		}
	}
	var next int
	switch {
	case cur < 0 && dir > 0:
		next = 0
	case cur < 0:
		next = len(fs) - 1
	default:
		next = (cur + dir + len(fs)) % len(fs)
	}
	h.setFocus(fs[next])
}

func (h *Host) setFocus(f ui.Focusable) {
	if h.focused == f {
		return
	}
	if h.focused != nil {
		h.focused.Blur()
	}
	h.focused = f
	if f != nil {
		f.Focus()
	}
}

// Draw lays the view out for the current screen size and paints one frame.
func (h *Host) Draw(s tcell.Screen) {
	w, ht := s.Size()
	base := h.theme.Base()
	s.SetStyle(base)
	s.Clear()
	s.HideCursor()

	title := ui.Truncate(h.view.Title(), w)
	x := (w - ui.TextWidth(title)) / 2
	for _, r := range title {
		s.SetContent(x, 0, r, nil, base.Bold(true))
		x += ui.TextWidth(string(r))
	}

	h.view.Layout(ui.Rect{X: 0, Y: 1, W: w, H: max(ht-1, 0)})
	for _, wd := range h.view.Widgets() {
		wd.Render(s, &h.theme)
	}
	covered := false
	for _, ov := range h.view.Overlays() {
		if ov.Open() {
			ov.RenderOverlay(s, &h.theme)
			covered = true
		}
	}
	if covered {
		s.HideCursor()
	}
	s.Show()
}
