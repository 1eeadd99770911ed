package tempconv

import (
	"github.com/kobzarvs/sevenguis/internal/demo"
	"github.com/kobzarvs/sevenguis/internal/logger"
	"github.com/kobzarvs/sevenguis/internal/textfield"
	"github.com/kobzarvs/sevenguis/internal/ui"
)

const inputWidth = 14

// View links two text inputs through the Model. User edits flow into the
// model; model changes flow into the opposite input as host edits, which
// the input listeners ignore, so an update never bounces back.
type View struct {
	model *Model

	celsius    *ui.TextInput
	fahrenheit *ui.TextInput
	cLabel     *ui.Label
	fLabel     *ui.Label

	unsubscribe []func()
}

func New(env demo.Env) *View {
	v := &View{
		model:      NewModel(),
		celsius:    ui.NewTextInput("celsius", env.Clipboard, env.Measurer).WithPlaceholder("Type here..."),
		fahrenheit: ui.NewTextInput("fahrenheit", env.Clipboard, env.Measurer).WithPlaceholder("Type here..."),
		cLabel:     ui.NewLabel("celsius-label", "Celsius ="),
		fLabel:     ui.NewLabel("fahrenheit-label", "Fahrenheit"),
	}
	v.celsius.SetContent(Format(v.model.Celsius()))
	v.fahrenheit.SetContent(Format(v.model.Fahrenheit()))

	v.unsubscribe = append(v.unsubscribe,
		v.celsius.Field().Subscribe(func(ch textfield.Change) {
			if ch.Origin != textfield.OriginUser {
				return
			}
			if c, ok := Parse(ch.State.Content); ok {
				v.model.SetCelsius(c)
			}
		}),
		v.fahrenheit.Field().Subscribe(func(ch textfield.Change) {
			if ch.Origin != textfield.OriginUser {
				return
			}
			if f, ok := Parse(ch.State.Content); ok {
				v.model.SetFahrenheit(f)
			}
		}),
		v.model.Subscribe(func(ch Change) {
			logger.Debug("temperature changed", "source", ch.Source.String(), "celsius", ch.Celsius, "fahrenheit", ch.Fahrenheit)
			switch ch.Source {
			case Celsius:
				v.fahrenheit.SetContent(Format(ch.Fahrenheit))
			case Fahrenheit:
				v.celsius.SetContent(Format(ch.Celsius))
			}
		}),
	)
	return v
}

func (v *View) Name() string  { return "temperature" }
func (v *View) Title() string { return "Temperature Converter" }
func (v *View) Model() *Model { return v.model }

func (v *View) Derive() {}

func (v *View) Layout(area ui.Rect) {
	cw, fw := v.cLabel.PreferredWidth(), v.fLabel.PreferredWidth()
	row := demo.Center(area, inputWidth+1+cw+2+inputWidth+1+fw, 1)
	x := row.X
	for _, part := range []struct {
		w     ui.Widget
		width int
		gap   int
	}{
		{v.celsius, inputWidth, 1},
		{v.cLabel, cw, 2},
		{v.fahrenheit, inputWidth, 1},
		{v.fLabel, fw, 0},
	} {
		part.w.SetBounds(ui.Rect{X: x, Y: row.Y, W: part.width, H: 1})
		x += part.width + part.gap
	}
}

func (v *View) Widgets() []ui.Widget {
	return []ui.Widget{v.celsius, v.cLabel, v.fahrenheit, v.fLabel}
}

func (v *View) Overlays() []ui.Overlay {
	return nil
}

func (v *View) Handle(ui.Command) {}

func (v *View) Snapshot() map[string]string {
	return map[string]string{
		"celsius":    v.celsius.Content(),
		"fahrenheit": v.fahrenheit.Content(),
	}
}

// Restore puts back both inputs as they were typed and resyncs the model
// from the Celsius side when it parses.
func (v *View) Restore(values map[string]string) {
	c, cok := values["celsius"]
	f, fok := values["fahrenheit"]
	if !cok || !fok {
		return
	}
	v.celsius.SetContent(c)
	v.fahrenheit.SetContent(f)
	if val, ok := Parse(c); ok {
		v.model.c, v.model.f = val, CToF(val)
	}
}

func (v *View) Close() {
	for _, fn := range v.unsubscribe {
		fn()
	}
	v.unsubscribe = nil
}
