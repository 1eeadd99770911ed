// Package textfield implements the state machine behind a single-line
// editable text field: content, bidirectional selection, input-method
// (marked) text, action dispatch, layout-backed hit testing and the
// clipboard bridge.
//
// All offsets are codepoint (rune) offsets. Every mutation clamps its
// arguments so a Model never holds an out-of-range selection or marked range.
// A Model is not safe for concurrent use; the host event loop owns it.
package textfield

import "strings"

// Range is a half-open span of codepoint offsets with Start <= End.
type Range struct {
	Start int
	End   int
}

// Len returns the number of codepoints covered by r.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty reports whether r covers no codepoints.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// Selection is a Range plus direction. When Reversed is false the head
// (caret) is at End; when true the head is at Start.
type Selection struct {
	Range
	Reversed bool
}

// Head returns the moving end of the selection.
func (s Selection) Head() int {
	if s.Reversed {
		return s.Start
	}
	return s.End
}

// Anchor returns the fixed end of the selection.
func (s Selection) Anchor() int {
	if s.Reversed {
		return s.End
	}
	return s.Start
}

// Collapsed reports whether the selection is a plain caret.
func (s Selection) Collapsed() bool {
	return s.Start == s.End
}

// Direction is a caret movement.
type Direction int

const (
	Left Direction = iota
	Right
	Home
	End
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Home:
		return "home"
	case End:
		return "end"
	}
	return "unknown"
}

// State is a read-only copy of the model.
type State struct {
	Content     string
	Placeholder string
	Selection   Selection
	// Marked is nil unless a composition is in progress.
	Marked   *Range
	Disabled bool
}

// Model owns the field's content, selection and marked range.
type Model struct {
	content     []rune
	placeholder string
	sel         Selection
	marked      Range
	hasMarked   bool
	disabled    bool
	// rev increments on every content change and is what layout snapshots
	// are checked against.
	rev uint64
}

// NewModel returns an empty model with the caret at offset 0.
func NewModel() *Model {
	return &Model{}
}

// Read returns the current content, selection and marked range.
func (m *Model) Read() State {
	st := State{
		Content:     string(m.content),
		Placeholder: m.placeholder,
		Selection:   m.sel,
		Disabled:    m.disabled,
	}
	if m.hasMarked {
		r := m.marked
		st.Marked = &r
	}
	return st
}

// Len returns the content length in codepoints.
func (m *Model) Len() int {
	return len(m.content)
}

// Content returns the current text.
func (m *Model) Content() string {
	return string(m.content)
}

// Selection returns the current selection.
func (m *Model) Selection() Selection {
	return m.sel
}

// Marked returns the marked range and whether one is present.
func (m *Model) Marked() (Range, bool) {
	return m.marked, m.hasMarked
}

// Revision identifies the current content. It changes whenever the content
// changes and never otherwise.
func (m *Model) Revision() uint64 {
	return m.rev
}

func (m *Model) Placeholder() string {
	return m.placeholder
}

func (m *Model) SetPlaceholder(text string) {
	m.placeholder = text
}

func (m *Model) Disabled() bool {
	return m.disabled
}

// SetDisabled gates every edit and selection mutation.
func (m *Model) SetDisabled(disabled bool) {
	m.disabled = disabled
}

// SelectedText returns the selected substring, or "" for a caret.
func (m *Model) SelectedText() string {
	if m.sel.Collapsed() {
		return ""
	}
	return string(m.content[m.sel.Start:m.sel.End])
}

// SetContent replaces the whole content. It is the host's setter and is not
// gated by the disabled flag. The marked range is dropped and the selection
// is clamped to the new length.
func (m *Model) SetContent(text string) {
	m.content = []rune(sanitize(text))
	m.hasMarked = false
	m.marked = Range{}
	m.sel.Start = m.clamp(m.sel.Start)
	m.sel.End = m.clamp(m.sel.End)
	if m.sel.Collapsed() {
		m.sel.Reversed = false
	}
	m.rev++
}

// Insert replaces the selection with text and leaves the caret after it.
// A pending composition is committed first.
func (m *Model) Insert(text string) {
	if m.disabled {
		return
	}
	m.commitMarked()
	runes := []rune(sanitize(text))
	if len(runes) == 0 && m.sel.Collapsed() {
		return
	}
	at := m.sel.Start
	m.replace(m.sel.Range, runes)
	m.collapseTo(at + len(runes))
}

// DeleteBackward removes the selection, or the codepoint before the caret.
func (m *Model) DeleteBackward() {
	if m.disabled {
		return
	}
	m.commitMarked()
	if !m.sel.Collapsed() {
		m.deleteSelection()
		return
	}
	caret := m.sel.Start
	if caret == 0 {
		return
	}
	m.replace(Range{Start: caret - 1, End: caret}, nil)
	m.collapseTo(caret - 1)
}

// DeleteForward removes the selection, or the codepoint at the caret.
func (m *Model) DeleteForward() {
	if m.disabled {
		return
	}
	m.commitMarked()
	if !m.sel.Collapsed() {
		m.deleteSelection()
		return
	}
	caret := m.sel.Start
	if caret >= len(m.content) {
		return
	}
	m.replace(Range{Start: caret, End: caret + 1}, nil)
	m.collapseTo(caret)
}

// Move moves the caret. Without extend, a non-collapsed selection collapses
// to its boundary before any stepping happens. With extend the anchor stays
// put and only the head moves.
func (m *Model) Move(dir Direction, extend bool) {
	if m.disabled {
		return
	}
	if extend {
		anchor := m.sel.Anchor()
		m.SetSelection(anchor, m.target(dir, m.sel.Head()))
		return
	}
	if !m.sel.Collapsed() {
		switch dir {
		case Left:
			m.collapseTo(m.sel.Start)
		case Right:
			m.collapseTo(m.sel.End)
		default:
			m.collapseTo(m.target(dir, m.sel.Head()))
		}
		return
	}
	m.collapseTo(m.target(dir, m.sel.Start))
}

// SelectAll selects the whole content.
func (m *Model) SelectAll() {
	if m.disabled {
		return
	}
	m.sel = Selection{Range: Range{Start: 0, End: len(m.content)}}
}

// SetCaret collapses the selection at offset.
func (m *Model) SetCaret(offset int) {
	if m.disabled {
		return
	}
	m.collapseTo(offset)
}

// SetSelection selects between anchor and head; Reversed is derived from
// their order.
func (m *Model) SetSelection(anchor, head int) {
	if m.disabled {
		return
	}
	anchor = m.clamp(anchor)
	head = m.clamp(head)
	if head < anchor {
		m.sel = Selection{Range: Range{Start: head, End: anchor}, Reversed: true}
		return
	}
	m.sel = Selection{Range: Range{Start: anchor, End: head}}
}

// SetMarked replaces the composition text. The replaced span is r when given,
// else the current marked range, else the selection (the caret when it is
// collapsed). The new marked range covers exactly text; empty text ends the
// composition.
func (m *Model) SetMarked(r *Range, text string) {
	if m.disabled {
		return
	}
	var target Range
	switch {
	case r != nil:
		target = m.clampRange(*r)
	case m.hasMarked:
		target = m.marked
	default:
		target = m.sel.Range
	}
	runes := []rune(sanitize(text))
	if len(runes) == 0 && target.Empty() {
		m.hasMarked = false
		m.marked = Range{}
		return
	}
	m.replace(target, runes)
	end := target.Start + len(runes)
	if len(runes) == 0 {
		m.hasMarked = false
		m.marked = Range{}
	} else {
		m.hasMarked = true
		m.marked = Range{Start: target.Start, End: end}
	}
	m.collapseTo(end)
}

// CommitMarked keeps the marked text as ordinary content and ends the
// composition.
func (m *Model) CommitMarked() {
	if m.disabled {
		return
	}
	m.commitMarked()
}

// CancelMarked removes the marked text and ends the composition.
func (m *Model) CancelMarked() {
	if m.disabled || !m.hasMarked {
		return
	}
	r := m.marked
	m.hasMarked = false
	m.marked = Range{}
	m.replace(r, nil)
	m.collapseTo(r.Start)
}

func (m *Model) commitMarked() {
	m.hasMarked = false
	m.marked = Range{}
}

func (m *Model) deleteSelection() {
	start := m.sel.Start
	m.replace(m.sel.Range, nil)
	m.collapseTo(start)
}

// replace swaps r for runes and shifts a marked range lying after r. The
// selection is left for the caller to set.
func (m *Model) replace(r Range, runes []rune) {
	r = m.clampRange(r)
	next := make([]rune, 0, len(m.content)-r.Len()+len(runes))
	next = append(next, m.content[:r.Start]...)
	next = append(next, runes...)
	next = append(next, m.content[r.End:]...)
	m.content = next
	if m.hasMarked {
		delta := len(runes) - r.Len()
		switch {
		case m.marked.Start >= r.End:
			m.marked.Start += delta
			m.marked.End += delta
		case m.marked.End > r.Start:
			// overlap that was not resolved by a commit: drop the composition
			m.hasMarked = false
			m.marked = Range{}
		}
	}
	m.rev++
}

func (m *Model) target(dir Direction, from int) int {
	switch dir {
	case Left:
		return m.clamp(from - 1)
	case Right:
		return m.clamp(from + 1)
	case Home:
		return 0
	case End:
		return len(m.content)
	}
	return m.clamp(from)
}

func (m *Model) collapseTo(offset int) {
	offset = m.clamp(offset)
	m.sel = Selection{Range: Range{Start: offset, End: offset}}
}

func (m *Model) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(m.content) {
		return len(m.content)
	}
	return offset
}

func (m *Model) clampRange(r Range) Range {
	r.Start = m.clamp(r.Start)
	r.End = m.clamp(r.End)
	if r.End < r.Start {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

// sanitize drops line breaks; the field is single-line.
func sanitize(text string) string {
	if !strings.ContainsAny(text, "\r\n") {
		return text
	}
	return strings.NewReplacer("\r\n", "", "\r", "", "\n", "").Replace(text)
}
