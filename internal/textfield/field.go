package textfield

import "slices"

// Origin tells listeners who caused a content change.
type Origin int

const (
	// OriginUser is typing, deletion, clipboard and composition input.
	OriginUser Origin = iota
	// OriginHost is SetContent from the owning view.
	OriginHost
)

// Change is delivered to subscribers after the content changed.
type Change struct {
	State  State
	Origin Origin
}

// Field is the editable text widget: a Model plus focus, drag state, the
// clipboard bridge and the last layout snapshot supplied by the host.
type Field struct {
	model   *Model
	hit     *HitTester
	bridge  *Bridge
	layout  *Layout
	focused bool

	listeners map[int]func(Change)
	nextID    int
}

// New returns an empty field. clip may be nil, which makes copy and paste
// no-ops.
func New(clip Clipboard) *Field {
	m := NewModel()
	return &Field{
		model:     m,
		hit:       NewHitTester(m),
		bridge:    NewBridge(m, clip),
		listeners: make(map[int]func(Change)),
	}
}

// State returns a copy of the model state.
func (f *Field) State() State {
	return f.model.Read()
}

func (f *Field) Content() string {
	return f.model.Content()
}

// SetContent replaces the content wholesale. Subscribers see OriginHost.
func (f *Field) SetContent(text string) {
	if text == f.model.Content() {
		return
	}
	rev := f.model.Revision()
	f.model.SetContent(text)
	f.afterEdit(rev, OriginHost)
}

func (f *Field) SetPlaceholder(text string) {
	f.model.SetPlaceholder(text)
}

func (f *Field) SetDisabled(disabled bool) {
	f.model.SetDisabled(disabled)
	if disabled {
		f.hit.PointerUp(Point{})
	}
}

func (f *Field) Disabled() bool {
	return f.model.Disabled()
}

func (f *Field) SetClipboard(c Clipboard) {
	f.bridge.SetClipboard(c)
}

func (f *Field) Focus() {
	f.focused = true
}

// Blur drops focus and ends any drag.
func (f *Field) Blur() {
	f.focused = false
	f.hit.PointerUp(Point{})
}

func (f *Field) Focused() bool {
	return f.focused
}

// InsertText handles a text-insertion event.
func (f *Field) InsertText(text string) {
	rev := f.model.Revision()
	f.model.Insert(text)
	f.afterEdit(rev, OriginUser)
}

// SetMarkedText handles a composition update; see Model.SetMarked.
func (f *Field) SetMarkedText(r *Range, text string) {
	rev := f.model.Revision()
	f.model.SetMarked(r, text)
	f.afterEdit(rev, OriginUser)
}

// CommitMarkedText ends a composition, keeping its text.
func (f *Field) CommitMarkedText() {
	f.model.CommitMarked()
}

// CancelMarkedText ends a composition, dropping its text.
func (f *Field) CancelMarkedText() {
	rev := f.model.Revision()
	f.model.CancelMarked()
	f.afterEdit(rev, OriginUser)
}

// Composing reports whether marked text is present.
func (f *Field) Composing() bool {
	_, ok := f.model.Marked()
	return ok
}

// SetLayout stores the host's latest measurement.
func (f *Field) SetLayout(l *Layout) {
	f.layout = l
}

// Layout returns the last snapshot and whether it still matches the
// content.
func (f *Field) Layout() (*Layout, bool) {
	if f.layout == nil {
		return nil, false
	}
	return f.layout, f.layout.Revision == f.model.Revision()
}

// Revision is the model revision a fresh layout must be measured for.
func (f *Field) Revision() uint64 {
	return f.model.Revision()
}

// Selecting reports whether a pointer drag is in progress.
func (f *Field) Selecting() bool {
	return f.hit.Selecting()
}

func (f *Field) PointerDown(p Point, extend bool) {
	f.hit.PointerDown(f.layout, p, extend)
}

func (f *Field) PointerMove(p Point) {
	f.hit.PointerMove(f.layout, p)
}

func (f *Field) PointerUp(p Point) {
	f.hit.PointerUp(p)
}

// Subscribe registers fn for content changes and returns the function that
// removes it.
func (f *Field) Subscribe(fn func(Change)) func() {
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	return func() {
		delete(f.listeners, id)
	}
}

func (f *Field) afterEdit(rev uint64, origin Origin) {
	if f.model.Revision() == rev || len(f.listeners) == 0 {
		return
	}
	ch := Change{State: f.model.Read(), Origin: origin}
	ids := make([]int, 0, len(f.listeners))
	for id := range f.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := f.listeners[id]; ok {
			fn(ch)
		}
	}
}
