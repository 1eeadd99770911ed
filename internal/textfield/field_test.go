package textfield

import "testing"

func TestSubscribeAndUnsubscribe(t *testing.T) {
	f := New(nil)
	var a, b int
	unsubA := f.Subscribe(func(Change) { a++ })
	f.Subscribe(func(Change) { b++ })
	f.InsertText("x")
	unsubA()
	f.InsertText("y")
	if a != 1 || b != 2 {
		t.Fatalf("calls = (%d, %d), want (1, 2)", a, b)
	}
	unsubA()
}

func TestSetContentReportsHostOrigin(t *testing.T) {
	f := New(nil)
	var origins []Origin
	f.Subscribe(func(c Change) { origins = append(origins, c.Origin) })
	f.SetContent("12")
	f.SetContent("12")
	f.InsertText("3")
	if len(origins) != 2 || origins[0] != OriginHost || origins[1] != OriginUser {
		t.Fatalf("origins = %v, want [host user]", origins)
	}
}

func TestSetContentWorksWhileDisabled(t *testing.T) {
	f := New(nil)
	f.SetDisabled(true)
	f.SetContent("shown")
	if got := f.Content(); got != "shown" {
		t.Fatalf("content = %q, want %q", got, "shown")
	}
	f.InsertText("!")
	if got := f.Content(); got != "shown" {
		t.Fatalf("disabled InsertText changed content to %q", got)
	}
}

func TestCompositionLifecycle(t *testing.T) {
	f := New(nil)
	f.SetContent("ab")
	f.model.SetCaret(2)
	f.SetMarkedText(nil, "e")
	if !f.Composing() {
		t.Fatalf("Composing = false after SetMarkedText")
	}
	f.SetMarkedText(nil, "é")
	f.CommitMarkedText()
	if f.Composing() {
		t.Fatalf("Composing = true after commit")
	}
	if got := f.Content(); got != "abé" {
		t.Fatalf("content = %q, want %q", got, "abé")
	}

	f.SetMarkedText(nil, "<<")
	f.CancelMarkedText()
	if got := f.Content(); got != "abé" {
		t.Fatalf("content after cancel = %q, want %q", got, "abé")
	}
}

func TestBlurEndsDrag(t *testing.T) {
	f := New(nil)
	f.SetContent("abc")
	f.Focus()
	f.SetLayout(testLayout(f.Content(), f.Revision()))
	f.PointerDown(Point{X: 10, Y: 5}, false)
	f.Blur()
	if f.Selecting() || f.Focused() {
		t.Fatalf("Blur left selecting=%v focused=%v", f.Selecting(), f.Focused())
	}
}

func TestLayoutFreshness(t *testing.T) {
	f := New(nil)
	if l, fresh := f.Layout(); l != nil || fresh {
		t.Fatalf("Layout() = (%v, %v), want (nil, false)", l, fresh)
	}
	f.SetContent("abc")
	f.SetLayout(testLayout(f.Content(), f.Revision()))
	if _, fresh := f.Layout(); !fresh {
		t.Fatalf("layout stale right after SetLayout")
	}
	f.Focus()
	mustDo(t, f, ActionEnd)
	if _, fresh := f.Layout(); !fresh {
		t.Fatalf("caret move made layout stale")
	}
	f.InsertText("d")
	if _, fresh := f.Layout(); fresh {
		t.Fatalf("layout fresh after insert")
	}
}

func TestPaintCaretAndSelection(t *testing.T) {
	f := New(nil)
	f.SetContent("abcdef")
	l := testLayout(f.Content(), f.Revision())

	g := f.Paint(l)
	if g.ShowCaret {
		t.Fatalf("caret shown while unfocused")
	}

	f.Focus()
	f.model.SetCaret(3)
	g = f.Paint(l)
	if !g.ShowCaret || g.Caret != (Rect{X: 30, Y: 0, W: 2, H: 20}) {
		t.Fatalf("caret = %+v shown=%v", g.Caret, g.ShowCaret)
	}
	if g.HasSelection {
		t.Fatalf("selection painted for a caret")
	}

	f.model.SetSelection(4, 1)
	g = f.Paint(l)
	if g.ShowCaret {
		t.Fatalf("caret shown over a selection")
	}
	if !g.HasSelection || g.Selection != (Rect{X: 10, Y: 0, W: 30, H: 20}) {
		t.Fatalf("selection = %+v has=%v", g.Selection, g.HasSelection)
	}
}

func TestPaintComposition(t *testing.T) {
	f := New(nil)
	f.SetContent("ab")
	f.model.SetCaret(1)
	f.SetMarkedText(nil, "xy")
	l := testLayout(f.Content(), f.Revision())
	g := f.Paint(l)
	if !g.HasComposition || g.Composition != (Rect{X: 10, Y: 0, W: 20, H: 20}) {
		t.Fatalf("composition = %+v has=%v", g.Composition, g.HasComposition)
	}
}

func TestPaintPlaceholderAndStaleLayout(t *testing.T) {
	f := New(nil)
	f.SetPlaceholder("Name")
	f.Focus()
	if g := f.Paint(nil); !g.Placeholder || g.ShowCaret {
		t.Fatalf("Paint(nil) = %+v", g)
	}
	f.InsertText("abcdef")
	short := testLayout("ab", 0)
	f.model.SetSelection(1, 6)
	g := f.Paint(short)
	if g.Placeholder {
		t.Fatalf("placeholder painted over content")
	}
	if g.Selection.Right() != 20 {
		t.Fatalf("stale selection right = %v, want clamp to 20", g.Selection.Right())
	}
}

func TestCellLayoutUsesThinCaret(t *testing.T) {
	l := NewLayout(mono{w: 1, lh: 1}, "ab", 0, Rect{W: 10, H: 1}, Point{})
	g := PaintState(State{Content: "ab", Selection: Selection{Range: Range{Start: 1, End: 1}}}, l, true)
	if g.Caret.W != 1 {
		t.Fatalf("caret width = %v, want 1", g.Caret.W)
	}
}
