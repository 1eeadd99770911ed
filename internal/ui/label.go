package ui

import "github.com/gdamore/tcell/v2"

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Label is static text.
type Label struct {
	id     string
	text   string
	align  Align
	bold   bool
	bounds Rect
}

func NewLabel(id, text string) *Label {
	return &Label{id: id, text: text}
}

func (l *Label) WithAlign(a Align) *Label {
	l.align = a
	return l
}

func (l *Label) WithBold(bold bool) *Label {
	l.bold = bold
	return l
}

func (l *Label) ID() string          { return l.id }
func (l *Label) Text() string        { return l.text }
func (l *Label) SetText(text string) { l.text = text }
func (l *Label) Bounds() Rect        { return l.bounds }
func (l *Label) SetBounds(r Rect)    { l.bounds = r }

// PreferredWidth is the text width in cells.
func (l *Label) PreferredWidth() int {
	return TextWidth(l.text)
}

func (l *Label) Render(s tcell.Screen, th *Theme) {
	r := l.bounds
	if r.W <= 0 || r.H <= 0 {
		return
	}
	style := th.Base().Bold(l.bold)
	y := r.Y + r.H/2
	if l.align == AlignCenter {
		drawCentered(s, r, y, l.text, style)
		return
	}
	drawText(s, r.X, y, r.W, l.text, style)
}
