package textfield

// HitTester turns pointer input into selection changes using the most
// recent layout snapshot. It holds the transient drag state.
type HitTester struct {
	model     *Model
	selecting bool
	anchor    int
}

func NewHitTester(m *Model) *HitTester {
	return &HitTester{model: m}
}

// Selecting reports whether a drag is in progress.
func (h *HitTester) Selecting() bool {
	return h.selecting
}

// Offset maps p through l. A nil layout degrades to offset 0 and a stale one
// is clamped to the model's length.
func (h *HitTester) Offset(l *Layout, p Point) int {
	if l == nil {
		return 0
	}
	off := l.OffsetAt(p)
	if n := h.model.Len(); off > n {
		off = n
	}
	return off
}

// PointerDown places the caret under p and starts a drag. With extend the
// current anchor is kept and the head moves to p instead.
func (h *HitTester) PointerDown(l *Layout, p Point, extend bool) {
	if h.model.Disabled() {
		return
	}
	off := h.Offset(l, p)
	if extend {
		h.anchor = h.model.Selection().Anchor()
		h.model.SetSelection(h.anchor, off)
	} else {
		h.anchor = off
		h.model.SetCaret(off)
	}
	h.selecting = true
}

// PointerMove extends the drag selection to p. It does nothing unless a drag
// is in progress.
func (h *HitTester) PointerMove(l *Layout, p Point) {
	if !h.selecting || h.model.Disabled() {
		return
	}
	h.model.SetSelection(h.anchor, h.Offset(l, p))
}

// PointerUp ends the drag; the selection is kept.
func (h *HitTester) PointerUp(Point) {
	h.selecting = false
}
