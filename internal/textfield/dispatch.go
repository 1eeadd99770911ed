package textfield

import (
	"fmt"
	"sort"
)

// Action is a named input action, already resolved from a physical key.
type Action int

const (
	ActionNone Action = iota
	ActionBackspace
	ActionDelete
	ActionLeft
	ActionRight
	ActionSelectLeft
	ActionSelectRight
	ActionHome
	ActionEnd
	ActionSelectHome
	ActionSelectEnd
	ActionSelectAll
	ActionCopy
	ActionCut
	ActionPaste
)

var actionNames = map[Action]string{
	ActionBackspace:   "backspace",
	ActionDelete:      "delete",
	ActionLeft:        "left",
	ActionRight:       "right",
	ActionSelectLeft:  "select_left",
	ActionSelectRight: "select_right",
	ActionHome:        "home",
	ActionEnd:         "end",
	ActionSelectHome:  "select_home",
	ActionSelectEnd:   "select_end",
	ActionSelectAll:   "select_all",
	ActionCopy:        "copy",
	ActionCut:         "cut",
	ActionPaste:       "paste",
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, len(actionNames))
	for a, name := range actionNames {
		m[name] = a
	}
	return m
}()

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction resolves a configured action name.
func ParseAction(name string) (Action, error) {
	if a, ok := actionsByName[name]; ok {
		return a, nil
	}
	return ActionNone, fmt.Errorf("unknown field action %q", name)
}

// ActionNames lists every action name in sorted order.
func ActionNames() []string {
	names := make([]string, 0, len(actionsByName))
	for name := range actionsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadOnly reports whether a leaves the model unchanged, which is what
// lets it run on a disabled field.
func (a Action) ReadOnly() bool {
	return a == ActionCopy
}

type handler func(f *Field) error

func move(dir Direction, extend bool) handler {
	return func(f *Field) error {
		f.model.Move(dir, extend)
		return nil
	}
}

var dispatchTable = map[Action]handler{
	ActionBackspace:   func(f *Field) error { f.model.DeleteBackward(); return nil },
	ActionDelete:      func(f *Field) error { f.model.DeleteForward(); return nil },
	ActionLeft:        move(Left, false),
	ActionRight:       move(Right, false),
	ActionSelectLeft:  move(Left, true),
	ActionSelectRight: move(Right, true),
	ActionHome:        move(Home, false),
	ActionEnd:         move(End, false),
	ActionSelectHome:  move(Home, true),
	ActionSelectEnd:   move(End, true),
	ActionSelectAll:   func(f *Field) error { f.model.SelectAll(); return nil },
	ActionCopy:        func(f *Field) error { return f.bridge.Copy() },
	ActionCut:         func(f *Field) error { return f.bridge.Cut() },
	ActionPaste:       func(f *Field) error { return f.bridge.Paste() },
}

// Do runs a on the field. It reports whether the action was consumed: an
// unfocused field consumes nothing, a disabled one consumes every action but
// only runs read-only ones. A clipboard failure is returned with the model
// unchanged.
func (f *Field) Do(a Action) (bool, error) {
	if !f.focused {
		return false, nil
	}
	h, ok := dispatchTable[a]
	if !ok {
		return false, nil
	}
	if f.model.Disabled() && !a.ReadOnly() {
		return true, nil
	}
	rev := f.model.Revision()
	err := h(f)
	f.afterEdit(rev, OriginUser)
	return true, err
}
