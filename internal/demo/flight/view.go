package flight

import (
	"github.com/kobzarvs/sevenguis/internal/demo"
	"github.com/kobzarvs/sevenguis/internal/logger"
	"github.com/kobzarvs/sevenguis/internal/ui"
)

const (
	datePlaceholder = "DD.MM.YYYY"
	formWidth       = 30
)

// Menu items follow Kind order.
var kindItems = []ui.MenuItem{
	{ID: "one-way", Label: "One-way flight"},
	{ID: "return", Label: "Return flight"},
}

func triggerLabel(k Kind) string {
	if k == Return {
		return "Return flight"
	}
	return "One way flight"
}

type View struct {
	kind Kind

	kindMenu *ui.Dropdown
	start    *ui.TextInput
	ret      *ui.TextInput
	book     *ui.Button
	prompt   *ui.Dialog
}

func New(env demo.Env) *View {
	v := &View{
		kindMenu: ui.NewDropdown("kind", triggerLabel(OneWay), kindItems),
		start:    ui.NewTextInput("start", env.Clipboard, env.Measurer).WithPlaceholder(datePlaceholder),
		ret:      ui.NewTextInput("return", env.Clipboard, env.Measurer).WithPlaceholder(datePlaceholder),
		book:     ui.NewButton("book", "Book").WithFullWidth(true),
		prompt:   ui.NewDialog("booked", "Ok", "Cancel"),
	}
	v.Derive()
	return v
}

func (v *View) Name() string  { return "flight" }
func (v *View) Title() string { return "Flight Booker" }

// Booking returns the current domain state read from the inputs.
func (v *View) Booking() Booking {
	return Booking{Kind: v.kind, Start: v.start.Content(), Return: v.ret.Content()}
}

func (v *View) Derive() {
	b := v.Booking()
	v.kindMenu.SetLabel(triggerLabel(b.Kind))
	v.ret.SetDisabled(b.Kind == OneWay)
	v.start.SetInvalid(!b.StartOK())
	v.ret.SetInvalid(!b.ReturnOK())
	v.book.SetDisabled(!b.CanBook())
}

func (v *View) Layout(area ui.Rect) {
	box := demo.Center(area, formWidth, 7)
	row := func(i int) ui.Rect {
		return ui.Rect{X: box.X, Y: box.Y + 2*i, W: box.W, H: 1}
	}
	v.kindMenu.SetBounds(row(0))
	v.start.SetBounds(row(1))
	v.ret.SetBounds(row(2))
	v.book.SetBounds(row(3))
}

func (v *View) Widgets() []ui.Widget {
	return []ui.Widget{v.kindMenu, v.start, v.ret, v.book}
}

// Overlays are listed bottom to top.
func (v *View) Overlays() []ui.Overlay {
	return []ui.Overlay{v.kindMenu, v.prompt}
}

func (v *View) Handle(cmd ui.Command) {
	switch {
	case cmd.ID == "kind" && cmd.Kind == ui.CommandSelect:
		if cmd.Index >= 0 && cmd.Index < len(kindItems) {
			v.kind = Kind(cmd.Index)
			logger.Debug("flight kind selected", "kind", v.kind.String())
		}
	case cmd.ID == "book" && cmd.Kind == ui.CommandClick:
		b := v.Booking()
		if !b.CanBook() {
			return
		}
		v.prompt.Show(b.Message())
	case cmd.ID == "booked" && cmd.Kind == ui.CommandSelect:
		b := v.Booking()
		if cmd.Index == 0 {
			logger.Info("flight booked", "kind", b.Kind.String(), "start", b.Start, "return", b.Return)
		} else {
			logger.Info("booking cancelled", "kind", b.Kind.String())
		}
	}
}

func (v *View) Snapshot() map[string]string {
	b := v.Booking()
	return map[string]string{
		"kind":   b.Kind.String(),
		"start":  b.Start,
		"return": b.Return,
	}
}

func (v *View) Restore(values map[string]string) {
	if k, ok := ParseKind(values["kind"]); ok {
		v.kind = k
	}
	v.start.SetContent(values["start"])
	v.ret.SetContent(values["return"])
	v.Derive()
}

func (v *View) Close() {}
