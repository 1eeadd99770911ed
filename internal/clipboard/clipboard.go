// Package clipboard provides the plain-text clipboards a text field can be
// wired to.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/kobzarvs/sevenguis/internal/logger"
)

// ErrUnavailable is returned when no system clipboard tool is installed.
var ErrUnavailable = errors.New("system clipboard unavailable")

// System is the OS clipboard (pbcopy, xclip, xsel, wl-clipboard or the
// Windows API, whichever atotto/clipboard finds).
type System struct{}

func (System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	return clipboard.ReadAll()
}

func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// Memory is a process-local clipboard.
type Memory struct {
	text string
}

func (m *Memory) ReadText() (string, error) {
	return m.text, nil
}

func (m *Memory) WriteText(text string) error {
	m.text = text
	return nil
}

// Backend is the subset of textfield.Clipboard this package builds on.
type Backend interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// Fallback mirrors every write into a Memory clipboard and serves reads from
// it when the primary fails, so copy and paste keep working inside the app on
// machines without a clipboard tool.
type Fallback struct {
	primary Backend
	local   Memory
	warned  bool
}

func NewFallback(primary Backend) *Fallback {
	return &Fallback{primary: primary}
}

func (f *Fallback) ReadText() (string, error) {
	text, err := f.primary.ReadText()
	if err != nil {
		f.warn(err)
		return f.local.ReadText()
	}
	return text, nil
}

// WriteText never fails: the local copy always succeeds, so a broken
// system clipboard only costs sharing with other programs.
func (f *Fallback) WriteText(text string) error {
	_ = f.local.WriteText(text)
	if err := f.primary.WriteText(text); err != nil {
		f.warn(err)
	}
	return nil
}

func (f *Fallback) warn(err error) {
	if f.warned {
		return
	}
	f.warned = true
	logger.Warn("system clipboard failed, using in-process clipboard", "error", err)
}

// New returns the clipboard for a configured backend name.
func New(backend string) (Backend, error) {
	switch backend {
	case "", "system":
		return NewFallback(System{}), nil
	case "memory":
		return &Memory{}, nil
	}
	return nil, fmt.Errorf("unknown clipboard backend %q", backend)
}
