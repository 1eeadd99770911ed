package textfield

import (
	"errors"
	"testing"
)

// memClip is an in-memory clipboard for tests.
type memClip struct {
	text     string
	readErr  error
	writeErr error
	writes   int
}

func (c *memClip) ReadText() (string, error) {
	if c.readErr != nil {
		return "", c.readErr
	}
	return c.text, nil
}

func (c *memClip) WriteText(text string) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.writes++
	c.text = text
	return nil
}

func focusedField(content string, clip Clipboard) *Field {
	f := New(clip)
	f.SetContent(content)
	f.Focus()
	return f
}

func mustDo(t *testing.T, f *Field, a Action) {
	t.Helper()
	ok, err := f.Do(a)
	if err != nil {
		t.Fatalf("Do(%s) error = %v", a, err)
	}
	if !ok {
		t.Fatalf("Do(%s) not consumed", a)
	}
}

func TestParseActionRoundTrip(t *testing.T) {
	for _, name := range ActionNames() {
		a, err := ParseAction(name)
		if err != nil {
			t.Fatalf("ParseAction(%q) error = %v", name, err)
		}
		if a.String() != name {
			t.Fatalf("ParseAction(%q).String() = %q", name, a.String())
		}
	}
	if _, err := ParseAction("launch_rockets"); err == nil {
		t.Fatalf("ParseAction accepted an unknown name")
	}
	if got := len(ActionNames()); got != 14 {
		t.Fatalf("len(ActionNames()) = %d, want 14", got)
	}
}

func TestDoRequiresFocus(t *testing.T) {
	f := New(nil)
	f.SetContent("abc")
	ok, err := f.Do(ActionSelectAll)
	if ok || err != nil {
		t.Fatalf("Do on unfocused = (%v, %v), want (false, nil)", ok, err)
	}
	if !f.State().Selection.Collapsed() {
		t.Fatalf("unfocused field changed selection")
	}
}

func TestDoUnknownActionNotConsumed(t *testing.T) {
	f := focusedField("abc", nil)
	if ok, _ := f.Do(ActionNone); ok {
		t.Fatalf("ActionNone consumed")
	}
}

func TestDoEditingSequence(t *testing.T) {
	f := focusedField("Hello", nil)
	mustDo(t, f, ActionEnd)
	mustDo(t, f, ActionSelectLeft)
	mustDo(t, f, ActionSelectLeft)
	if got := f.State().Selection; got.Start != 3 || got.End != 5 || !got.Reversed {
		t.Fatalf("selection = %+v, want (3,5) reversed", got)
	}
	mustDo(t, f, ActionBackspace)
	if got := f.Content(); got != "Hel" {
		t.Fatalf("content = %q, want %q", got, "Hel")
	}
	mustDo(t, f, ActionHome)
	mustDo(t, f, ActionDelete)
	if got := f.Content(); got != "el" {
		t.Fatalf("content = %q, want %q", got, "el")
	}
	mustDo(t, f, ActionRight)
	mustDo(t, f, ActionSelectHome)
	if got := f.State().Selection; got.Start != 0 || got.End != 1 || !got.Reversed {
		t.Fatalf("selection = %+v, want (0,1) reversed", got)
	}
	mustDo(t, f, ActionSelectEnd)
	if got := f.State().Selection; got.Start != 1 || got.End != 2 || got.Reversed {
		t.Fatalf("selection = %+v, want (1,2)", got)
	}
	mustDo(t, f, ActionLeft)
	if got := f.State().Selection; got.Start != 1 || got.End != 1 {
		t.Fatalf("selection = %+v, want caret at 1", got)
	}
	mustDo(t, f, ActionSelectRight)
	mustDo(t, f, ActionSelectAll)
	if got := f.State().Selection; got.Start != 0 || got.End != 2 {
		t.Fatalf("selection = %+v, want (0,2)", got)
	}
}

func TestDoDisabledConsumesButDoesNotMutate(t *testing.T) {
	clip := &memClip{text: "pasted"}
	f := focusedField("hello", clip)
	mustDo(t, f, ActionSelectAll)
	f.SetDisabled(true)
	before := f.State()
	for _, name := range ActionNames() {
		a, _ := ParseAction(name)
		ok, err := f.Do(a)
		if !ok || err != nil {
			t.Fatalf("Do(%s) on disabled = (%v, %v), want (true, nil)", a, ok, err)
		}
	}
	after := f.State()
	if after.Content != before.Content || after.Selection != before.Selection {
		t.Fatalf("disabled field changed: %+v -> %+v", before, after)
	}
	if clip.text != "hello" {
		t.Fatalf("clipboard = %q, want copy of the selection to still work", clip.text)
	}
}

func TestDoNotifiesOnlyOnContentChange(t *testing.T) {
	f := focusedField("abc", nil)
	var got []Change
	f.Subscribe(func(c Change) { got = append(got, c) })
	mustDo(t, f, ActionLeft)
	mustDo(t, f, ActionSelectAll)
	if len(got) != 0 {
		t.Fatalf("notified %d times for selection moves", len(got))
	}
	mustDo(t, f, ActionBackspace)
	if len(got) != 1 {
		t.Fatalf("notified %d times, want 1", len(got))
	}
	if got[0].Origin != OriginUser || got[0].State.Content != "" {
		t.Fatalf("change = %+v", got[0])
	}
}

func TestDoReturnsClipboardError(t *testing.T) {
	boom := errors.New("boom")
	clip := &memClip{readErr: boom}
	f := focusedField("abc", clip)
	ok, err := f.Do(ActionPaste)
	if !ok {
		t.Fatalf("paste not consumed")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if got := f.Content(); got != "abc" {
		t.Fatalf("content = %q, want unchanged", got)
	}
}
