// Package demo defines the contract between the host and the demo views.
package demo

import (
	"github.com/kobzarvs/sevenguis/internal/textfield"
	"github.com/kobzarvs/sevenguis/internal/ui"
)

// View is one demo window. The host drives it in a fixed order every input
// turn: deliver input and Handle the resulting commands, Derive, Layout,
// then render Widgets followed by Overlays.
type View interface {
	Name() string
	Title() string
	// Derive recomputes widget state (disabled, invalid, labels) from the
	// demo's domain state. It never runs during rendering.
	Derive()
	Layout(area ui.Rect)
	// Widgets lists widgets in paint order; the focusable ones also define
	// tab order.
	Widgets() []ui.Widget
	Overlays() []ui.Overlay
	Handle(cmd ui.Command)
	// Snapshot and Restore carry the demo's values across runs.
	Snapshot() map[string]string
	Restore(values map[string]string)
	// Close releases subscriptions.
	Close()
}

// Env is what the host provides to every demo.
type Env struct {
	Clipboard textfield.Clipboard
	Measurer  textfield.Measurer
}

// Center returns a w x h box centered in area.
func Center(area ui.Rect, w, h int) ui.Rect {
	w = min(w, area.W)
	h = min(h, area.H)
	return ui.Rect{X: area.X + (area.W-w)/2, Y: area.Y + (area.H-h)/2, W: w, H: h}
}
