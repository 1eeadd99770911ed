package ui

import "github.com/gdamore/tcell/v2"

// Corner is the corner of the trigger a popover attaches to.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// snapMargin keeps popovers this many cells away from the screen edge.
const snapMargin = 1

// Popover places a floating box next to a trigger and paints it above the
// regular content.
type Popover struct {
	anchor Corner
	open   bool
	bounds Rect
}

func NewPopover() *Popover {
	return &Popover{anchor: TopLeft}
}

func (p *Popover) SetAnchor(c Corner) { p.anchor = c }
func (p *Popover) SetOpen(open bool)  { p.open = open }
func (p *Popover) Open() bool         { return p.open }
func (p *Popover) Bounds() Rect       { return p.bounds }

// Place computes the popover box for content of w x h cells (border
// included) under or over trigger, snapped inside a screen of sw x sh.
func (p *Popover) Place(trigger Rect, w, h, sw, sh int) Rect {
	r := Rect{W: w, H: h}
	switch p.anchor {
	case TopLeft:
		r.X, r.Y = trigger.X, trigger.Bottom()
	case TopRight:
		r.X, r.Y = trigger.Right()-w, trigger.Bottom()
	case BottomLeft:
		r.X, r.Y = trigger.X, trigger.Y-h
	case BottomRight:
		r.X, r.Y = trigger.Right()-w, trigger.Y-h
	}
	r = snap(r, sw, sh)
	p.bounds = r
	return r
}

func snap(r Rect, sw, sh int) Rect {
	if r.Right() > sw-snapMargin {
		r.X = sw - snapMargin - r.W
	}
	if r.Bottom() > sh-snapMargin {
		r.Y = sh - snapMargin - r.H
	}
	if r.X < snapMargin {
		r.X = snapMargin
	}
	if r.Y < snapMargin {
		r.Y = snapMargin
	}
	if r.Right() > sw-snapMargin {
		r.W = max(sw-snapMargin-r.X, 0)
	}
	if r.Bottom() > sh-snapMargin {
		r.H = max(sh-snapMargin-r.Y, 0)
	}
	return r
}

// Render draws the frame; the caller paints content inside Inner.
func (p *Popover) Render(s tcell.Screen, th *Theme) {
	if !p.open {
		return
	}
	border := tcell.StyleDefault.Foreground(th.Border).Background(th.Surface)
	inside := tcell.StyleDefault.Foreground(th.Foreground).Background(th.Surface)
	box(s, p.bounds, border, inside)
}

// Inner is the content area inside the border.
func (p *Popover) Inner() Rect {
	r := p.bounds
	if r.W < 2 || r.H < 2 {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
}
