package textfield

// Geometry is what a renderer needs to draw the field for one frame.
type Geometry struct {
	// Placeholder is set when the content is empty and the placeholder text
	// should be drawn instead.
	Placeholder bool

	Caret     Rect
	ShowCaret bool

	Selection    Rect
	HasSelection bool

	// Composition is the box under the marked text, drawn as an underline.
	Composition    Rect
	HasComposition bool
}

// Paint computes caret, selection and composition boxes for the current
// state against l. The caret is only shown while focused and only for a
// collapsed selection. A nil layout yields no boxes.
func (f *Field) Paint(l *Layout) Geometry {
	return PaintState(f.model.Read(), l, f.focused)
}

// PaintState is Paint for an arbitrary state snapshot.
func PaintState(st State, l *Layout, focused bool) Geometry {
	g := Geometry{Placeholder: st.Content == "" && st.Placeholder != ""}
	if l == nil {
		return g
	}
	n := l.Len()
	clampR := func(r Range) Range {
		if r.Start > n {
			r.Start = n
		}
		if r.End > n {
			r.End = n
		}
		return r
	}
	sel := clampR(st.Selection.Range)
	if sel.Empty() {
		if focused {
			x := l.X(sel.Start)
			g.Caret = Rect{X: x, Y: l.Origin.Y, W: caretWidth(l), H: l.LineHeight}
			g.ShowCaret = true
		}
	} else {
		g.Selection = l.Span(sel)
		g.HasSelection = true
	}
	if st.Marked != nil {
		m := clampR(*st.Marked)
		if !m.Empty() {
			g.Composition = l.Span(m)
			g.HasComposition = true
		}
	}
	return g
}

// caretWidth is a thin bar for pixel layouts and one cell for terminal
// layouts, whose line height is 1.
func caretWidth(l *Layout) float64 {
	if l.LineHeight <= 1 {
		return 1
	}
	return 2
}
