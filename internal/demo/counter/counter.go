// Package counter is the counter demo: a number and a button that
// increments it.
package counter

import (
	"strconv"

	"github.com/kobzarvs/sevenguis/internal/demo"
	"github.com/kobzarvs/sevenguis/internal/logger"
	"github.com/kobzarvs/sevenguis/internal/ui"
)

type Model struct {
	count uint32
}

func (m *Model) Increment() {
	m.count++
}

func (m *Model) Count() uint32 {
	return m.count
}

type View struct {
	model  Model
	value  *ui.Label
	button *ui.Button
}

func New(demo.Env) *View {
	return &View{
		value:  ui.NewLabel("count", "0").WithAlign(ui.AlignCenter).WithBold(true),
		button: ui.NewButton("increment", "Increment"),
	}
}

func (v *View) Name() string  { return "counter" }
func (v *View) Title() string { return "Counter" }
func (v *View) Model() *Model { return &v.model }

func (v *View) Derive() {
	v.value.SetText(strconv.FormatUint(uint64(v.model.Count()), 10))
}

func (v *View) Layout(area ui.Rect) {
	w := v.button.PreferredWidth()
	box := demo.Center(area, max(w, 10), 3)
	v.value.SetBounds(ui.Rect{X: box.X, Y: box.Y, W: box.W, H: 1})
	v.button.SetBounds(demo.Center(ui.Rect{X: box.X, Y: box.Y + 2, W: box.W, H: 1}, w, 1))
}

func (v *View) Widgets() []ui.Widget {
	return []ui.Widget{v.value, v.button}
}

func (v *View) Overlays() []ui.Overlay {
	return nil
}

func (v *View) Handle(cmd ui.Command) {
	if cmd.Kind == ui.CommandClick && cmd.ID == "increment" {
		v.model.Increment()
		logger.Debug("counter incremented", "count", v.model.Count())
	}
}

func (v *View) Snapshot() map[string]string {
	return map[string]string{"count": strconv.FormatUint(uint64(v.model.count), 10)}
}

func (v *View) Restore(values map[string]string) {
	n, err := strconv.ParseUint(values["count"], 10, 32)
	if err != nil {
		return
	}
	v.model.count = uint32(n)
}

func (v *View) Close() {}
