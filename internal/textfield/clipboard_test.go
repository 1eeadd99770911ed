package textfield

import (
	"errors"
	"testing"
)

func TestCutThenPaste(t *testing.T) {
	clip := &memClip{}
	f := focusedField("abc", clip)
	f.model.SetSelection(0, 2)
	mustDo(t, f, ActionCut)
	if got := f.Content(); got != "c" {
		t.Fatalf("content after cut = %q, want %q", got, "c")
	}
	if clip.text != "ab" {
		t.Fatalf("clipboard = %q, want %q", clip.text, "ab")
	}
	mustDo(t, f, ActionEnd)
	mustDo(t, f, ActionPaste)
	if got := f.Content(); got != "cab" {
		t.Fatalf("content after paste = %q, want %q", got, "cab")
	}
	if sel := f.State().Selection; sel.Start != 3 || sel.End != 3 {
		t.Fatalf("selection = %+v, want caret at 3", sel)
	}
}

func TestCopyCollapsedWritesNothing(t *testing.T) {
	clip := &memClip{text: "keep"}
	f := focusedField("abc", clip)
	mustDo(t, f, ActionCopy)
	mustDo(t, f, ActionCut)
	if clip.writes != 0 || clip.text != "keep" {
		t.Fatalf("clipboard written on collapsed selection: %+v", clip)
	}
	if got := f.Content(); got != "abc" {
		t.Fatalf("content = %q, want unchanged", got)
	}
}

func TestCutWriteFailureKeepsContent(t *testing.T) {
	boom := errors.New("denied")
	clip := &memClip{writeErr: boom}
	f := focusedField("abc", clip)
	mustDo(t, f, ActionSelectAll)
	_, err := f.Do(ActionCut)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if got := f.Content(); got != "abc" {
		t.Fatalf("content = %q, want unchanged", got)
	}
}

func TestPasteEmptyIsNoop(t *testing.T) {
	clip := &memClip{}
	f := focusedField("abc", clip)
	mustDo(t, f, ActionSelectAll)
	rev := f.Revision()
	mustDo(t, f, ActionPaste)
	if f.Revision() != rev || f.Content() != "abc" {
		t.Fatalf("empty paste changed the field")
	}
}

func TestPasteStripsNewlines(t *testing.T) {
	clip := &memClip{text: "a\nb"}
	f := focusedField("", clip)
	mustDo(t, f, ActionPaste)
	if got := f.Content(); got != "ab" {
		t.Fatalf("content = %q, want %q", got, "ab")
	}
}

func TestNilClipboardIsNoop(t *testing.T) {
	f := focusedField("abc", nil)
	mustDo(t, f, ActionSelectAll)
	for _, a := range []Action{ActionCopy, ActionCut, ActionPaste} {
		if _, err := f.Do(a); err != nil {
			t.Fatalf("Do(%s) error = %v", a, err)
		}
	}
	if got := f.Content(); got != "abc" {
		t.Fatalf("content = %q, want unchanged", got)
	}
}

func TestSetClipboardSwapsBackend(t *testing.T) {
	first := &memClip{}
	second := &memClip{}
	f := focusedField("xy", first)
	mustDo(t, f, ActionSelectAll)
	f.SetClipboard(second)
	mustDo(t, f, ActionCopy)
	if first.writes != 0 || second.text != "xy" {
		t.Fatalf("copy went to the wrong clipboard: first=%+v second=%+v", first, second)
	}
}

func TestCopyThenPasteRoundTrip(t *testing.T) {
	clip := &memClip{}
	f := focusedField("hello", clip)
	f.model.SetSelection(1, 4)
	mustDo(t, f, ActionCopy)
	if clip.text != "ell" {
		t.Fatalf("clipboard = %q, want %q", clip.text, "ell")
	}
	f.model.SetSelection(1, 4)
	mustDo(t, f, ActionPaste)
	if got := f.Content(); got != "hello" {
		t.Fatalf("content = %q, want %q", got, "hello")
	}
	if sel := f.State().Selection; sel.Start != 4 || sel.End != 4 {
		t.Fatalf("selection = %+v, want caret at 4", sel)
	}
}

func TestClipboardEdits(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		clip       string
		start, end int
		action     Action
		want       string
		wantClip   string
		wantCaret  int
	}{
		{"paste into empty", "", "World", 0, 0, ActionPaste, "World", "World", 5},
		{"cut middle", "test", "", 1, 3, ActionCut, "tt", "es", 1},
		{"paste over selection", "test", "X", 1, 3, ActionPaste, "tXt", "X", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := &memClip{text: tt.clip}
			f := focusedField(tt.content, clip)
			f.model.SetSelection(tt.start, tt.end)
			mustDo(t, f, tt.action)
			if got := f.Content(); got != tt.want {
				t.Fatalf("content = %q, want %q", got, tt.want)
			}
			if clip.text != tt.wantClip {
				t.Fatalf("clipboard = %q, want %q", clip.text, tt.wantClip)
			}
			sel := f.State().Selection
			if sel.Start != tt.wantCaret || sel.End != tt.wantCaret {
				t.Fatalf("selection = %+v, want caret at %d", sel, tt.wantCaret)
			}
		})
	}
}
