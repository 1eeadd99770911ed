// Package ui is the terminal widget set the demos are built from: buttons,
// dropdown menus in popovers, dialogs, labels and text inputs backed by
// textfield.Field.
//
// Widgets do not call back into their owners. Input handlers return a
// Command describing what happened and the owning view interprets it.
package ui

import "github.com/gdamore/tcell/v2"

// Rect is a box in terminal cells.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CommandKind says what a widget reports back to its owner.
type CommandKind int

const (
	CommandNone CommandKind = iota
	// CommandClick is a button press.
	CommandClick
	// CommandSelect is a menu item or dialog button choice; Index says which.
	CommandSelect
	// CommandDismiss closes an overlay without a choice.
	CommandDismiss
	// CommandChange is a text input whose content the user edited.
	CommandChange
)

func (k CommandKind) String() string {
	switch k {
	case CommandClick:
		return "click"
	case CommandSelect:
		return "select"
	case CommandDismiss:
		return "dismiss"
	case CommandChange:
		return "change"
	}
	return "none"
}

// Command is a tagged widget event. ID is the emitting widget's id.
type Command struct {
	Kind  CommandKind
	ID    string
	Index int
}

// Widget is anything placed in a view.
type Widget interface {
	ID() string
	Bounds() Rect
	SetBounds(r Rect)
	Render(s tcell.Screen, th *Theme)
}

// Focusable widgets take part in tab traversal and receive keys.
type Focusable interface {
	Widget
	Focus()
	Blur()
	Focused() bool
	// Enabled reports whether the widget can currently take focus.
	Enabled() bool
	// HandleKey is offered every key while focused; false passes the key
	// on to the app keymap.
	HandleKey(ev *tcell.EventKey, km *Keymap) (Command, bool)
	// Activate runs the widget's primary action (enter or space).
	Activate() Command
}

// MouseKind is a pointer transition derived from tcell button state.
type MouseKind int

const (
	MouseMove MouseKind = iota
	MouseDown
	MouseDrag
	MouseUp
)

// Mouse is a pointer event in screen cells.
type Mouse struct {
	Kind  MouseKind
	X, Y  int
	Shift bool
}

// Pointer widgets react to the mouse. A widget that returns true from a
// MouseDown captures the pointer until the next MouseUp.
type Pointer interface {
	HandleMouse(m Mouse) (Command, bool)
}

// Overlay is painted after regular content and receives input first while
// it is open, like a popover menu or a modal dialog.
type Overlay interface {
	Open() bool
	RenderOverlay(s tcell.Screen, th *Theme)
	HandleOverlayKey(ev *tcell.EventKey, km *Keymap) (Command, bool)
	HandleOverlayMouse(m Mouse) (Command, bool)
}

// fill paints r with spaces in style.
func fill(s tcell.Screen, r Rect, style tcell.Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// box draws a single-line border around r and fills the inside.
func box(s tcell.Screen, r Rect, border, inside tcell.Style) {
	if r.W < 2 || r.H < 2 {
		fill(s, r, inside)
		return
	}
	fill(s, Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}, inside)
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetContent(x, r.Y, tcell.RuneHLine, nil, border)
		s.SetContent(x, r.Bottom()-1, tcell.RuneHLine, nil, border)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetContent(r.X, y, tcell.RuneVLine, nil, border)
		s.SetContent(r.Right()-1, y, tcell.RuneVLine, nil, border)
	}
	s.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, border)
	s.SetContent(r.Right()-1, r.Y, tcell.RuneURCorner, nil, border)
	s.SetContent(r.X, r.Bottom()-1, tcell.RuneLLCorner, nil, border)
	s.SetContent(r.Right()-1, r.Bottom()-1, tcell.RuneLRCorner, nil, border)
}
