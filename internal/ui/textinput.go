package ui

import (
	"math"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/sevenguis/internal/compose"
	"github.com/kobzarvs/sevenguis/internal/logger"
	"github.com/kobzarvs/sevenguis/internal/measure"
	"github.com/kobzarvs/sevenguis/internal/textfield"
)

// TextInput is the terminal view of a textfield.Field. Each Render measures
// the content with a cell measurer, scrolls so the caret stays visible and
// hands the resulting layout back to the field for hit testing.
type TextInput struct {
	id      string
	field   *textfield.Field
	measure textfield.Measurer
	bounds  Rect
	scroll  float64
	invalid bool

	composer compose.Composer
}

func NewTextInput(id string, clip textfield.Clipboard, m textfield.Measurer) *TextInput {
	if m == nil {
		m = measure.NewCells(false)
	}
	return &TextInput{id: id, field: textfield.New(clip), measure: m}
}

func (t *TextInput) WithPlaceholder(text string) *TextInput {
	t.field.SetPlaceholder(text)
	return t
}

func (t *TextInput) ID() string              { return t.id }
func (t *TextInput) Field() *textfield.Field { return t.field }
func (t *TextInput) Content() string         { return t.field.Content() }
func (t *TextInput) SetContent(text string)  { t.field.SetContent(text) }
func (t *TextInput) Bounds() Rect            { return t.bounds }
func (t *TextInput) SetBounds(r Rect)        { t.bounds = r }
func (t *TextInput) Focused() bool           { return t.field.Focused() }
func (t *TextInput) Enabled() bool           { return !t.field.Disabled() }
func (t *TextInput) Invalid() bool           { return t.invalid }

// SetInvalid highlights the input as holding unacceptable text.
func (t *TextInput) SetInvalid(invalid bool) {
	t.invalid = invalid
}

// SetDisabled is called from the owner's derive step. A pending
// composition is committed so disabling never loses typed text.
func (t *TextInput) SetDisabled(disabled bool) {
	if disabled && t.composer.Active() {
		t.composer.Cancel()
		t.field.CommitMarkedText()
	}
	t.field.SetDisabled(disabled)
}

func (t *TextInput) Focus() {
	t.field.Focus()
}

// Blur commits any composition and drops focus.
func (t *TextInput) Blur() {
	if t.composer.Active() {
		t.composer.Cancel()
		t.field.CommitMarkedText()
	}
	t.field.Blur()
}

// Activate has no meaning for a text input.
func (t *TextInput) Activate() Command {
	return Command{}
}

// Composing reports whether a compose sequence is in progress.
func (t *TextInput) Composing() bool {
	return t.composer.Active()
}

// StartCompose begins a digraph composition at the caret.
func (t *TextInput) StartCompose() {
	if !t.field.Focused() || t.field.Disabled() {
		return
	}
	t.composer.Start()
}

func (t *TextInput) changed(rev uint64) (Command, bool) {
	if t.field.Revision() != rev {
		return Command{Kind: CommandChange, ID: t.id}, true
	}
	return Command{}, true
}

// HandleKey routes ev to the compose sequence, the field keymap or text
// insertion, in that order.
func (t *TextInput) HandleKey(ev *tcell.EventKey, km *Keymap) (Command, bool) {
	if !t.field.Focused() {
		return Command{}, false
	}
	rev := t.field.Revision()
	if t.composer.Active() {
		if ok := t.handleCompose(ev); ok {
			return t.changed(rev)
		}
	}
	if a, ok := km.FieldAction(ev); ok {
		consumed, err := t.field.Do(a)
		if err != nil {
			logger.Warn("text input action failed", "input", t.id, "action", a.String(), "error", err)
		}
		if !consumed {
			return Command{}, false
		}
		return t.changed(rev)
	}
	if ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
		r := ev.Rune()
		if !unicode.IsPrint(r) {
			return Command{}, false
		}
		t.field.InsertText(string(r))
		return t.changed(rev)
	}
	return Command{}, false
}

func (t *TextInput) handleCompose(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape:
		t.composer.Cancel()
		t.field.CancelMarkedText()
		return true
	case ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2:
		step := t.composer.Backspace()
		t.applyStep(step)
		return true
	case ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0:
		step := t.composer.Feed(ev.Rune())
		t.applyStep(step)
		return true
	}
	// Any other key ends the composition with what was typed so far.
	t.composer.Cancel()
	t.field.CommitMarkedText()
	return false
}

func (t *TextInput) applyStep(step compose.Step) {
	if step.Marked == "" && !t.field.Composing() {
		return
	}
	t.field.SetMarkedText(nil, step.Marked)
	if step.Commit {
		t.field.CommitMarkedText()
	}
}

// point converts a screen cell to field coordinates. Clicking a cell puts
// the caret before the glyph in it.
func (t *TextInput) point(x, y int) textfield.Point {
	return textfield.Point{X: float64(x), Y: float64(y) + 0.5}
}

func (t *TextInput) HandleMouse(m Mouse) (Command, bool) {
	switch m.Kind {
	case MouseDown:
		if !t.bounds.Contains(m.X, m.Y) {
			return Command{}, false
		}
		if t.field.Disabled() {
			return Command{}, true
		}
		if t.composer.Active() {
			t.composer.Cancel()
			t.field.CommitMarkedText()
		}
		t.field.PointerDown(t.point(m.X, m.Y), m.Shift)
		return Command{}, true
	case MouseDrag:
		if !t.field.Selecting() {
			return Command{}, false
		}
		t.field.PointerMove(t.point(m.X, m.Y))
		return Command{}, true
	case MouseUp:
		if !t.field.Selecting() {
			return Command{}, false
		}
		t.field.PointerUp(t.point(m.X, m.Y))
		return Command{}, true
	}
	return Command{}, false
}

// inner is the text area: one cell of padding on each side.
func (t *TextInput) inner() Rect {
	r := t.bounds
	if r.W < 3 {
		return r
	}
	return Rect{X: r.X + 1, Y: r.Y, W: r.W - 2, H: r.H}
}

// relayout measures the content, adjusts the scroll offset so the caret
// stays inside the text area and stores the layout on the field.
func (t *TextInput) relayout() *textfield.Layout {
	st := t.field.State()
	inner := t.inner()
	edges, lh := t.measure.Measure(st.Content)
	if len(edges) == 0 {
		edges = []float64{0}
	}
	width := float64(inner.W - 1)
	if width < 0 {
		width = 0
	}
	head := st.Selection.Head()
	if head >= len(edges) {
		head = len(edges) - 1
	}
	caret := edges[head]
	total := edges[len(edges)-1]
	switch {
	case caret-t.scroll > width:
		t.scroll = caret - width
	case caret < t.scroll:
		t.scroll = caret
	}
	if total-t.scroll < width {
		t.scroll = math.Max(0, total-width)
	}
	row := float64(inner.Y + inner.H/2)
	bounds := textfield.Rect{X: float64(t.bounds.X), Y: row, W: float64(t.bounds.W), H: 1}
	origin := textfield.Point{X: float64(inner.X) - t.scroll, Y: row}
	l := &textfield.Layout{
		Bounds:     bounds,
		Origin:     origin,
		Edges:      edges,
		LineHeight: lh,
		Revision:   t.field.Revision(),
	}
	t.field.SetLayout(l)
	return l
}

func (t *TextInput) Render(s tcell.Screen, th *Theme) {
	r := t.bounds
	if r.W <= 0 || r.H <= 0 {
		return
	}
	bg := th.Surface
	if t.invalid {
		bg = th.Error
	}
	fg := th.Foreground
	if t.field.Disabled() {
		fg = th.Disabled
	}
	base := tcell.StyleDefault.Foreground(fg).Background(bg)
	fill(s, r, base)

	l := t.relayout()
	st := t.field.State()
	g := t.field.Paint(l)
	inner := t.inner()
	row := inner.Y + inner.H/2

	if t.field.Focused() && r.W >= 2 {
		edge := tcell.StyleDefault.Foreground(th.Highlight).Background(bg)
		s.SetContent(r.X, row, '▎', nil, edge)
	}

	if g.Placeholder {
		drawText(s, inner.X, row, inner.W, st.Placeholder,
			tcell.StyleDefault.Foreground(th.Placeholder).Background(bg))
	}

	selStyle := tcell.StyleDefault.Foreground(th.SelectionForeground).Background(th.SelectionBackground)
	markStyle := base.Foreground(th.Composition).Underline(true)
	runes := []rune(st.Content)
	for i := 0; i < len(runes); i++ {
		if l.Box(i).W == 0 {
			continue
		}
		x := int(math.Round(l.X(i)))
		if x < inner.X || x >= inner.Right() {
			continue
		}
		var comb []rune
		for j := i + 1; j < len(runes) && l.Box(j).W == 0; j++ {
			comb = append(comb, runes[j])
		}
		style := base
		switch {
		case st.Marked != nil && i >= st.Marked.Start && i < st.Marked.End:
			style = markStyle
		case !st.Selection.Collapsed() && i >= st.Selection.Start && i < st.Selection.End:
			style = selStyle
		}
		s.SetContent(x, row, runes[i], comb, style)
	}

	if g.ShowCaret {
		x := int(math.Round(g.Caret.X))
		if x >= inner.X && x <= inner.Right() {
			s.ShowCursor(x, row)
		}
	}
}
