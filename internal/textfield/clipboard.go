package textfield

import "fmt"

// Clipboard is the host's plain-text clipboard capability.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// Bridge moves text between a Model and a Clipboard. A failed read or write
// is returned and leaves the model untouched.
type Bridge struct {
	model *Model
	clip  Clipboard
}

func NewBridge(m *Model, c Clipboard) *Bridge {
	return &Bridge{model: m, clip: c}
}

// SetClipboard swaps the backing clipboard; nil disables copy and paste.
func (b *Bridge) SetClipboard(c Clipboard) {
	b.clip = c
}

// Copy writes the selection to the clipboard. A caret copies nothing.
func (b *Bridge) Copy() error {
	text := b.model.SelectedText()
	if text == "" || b.clip == nil {
		return nil
	}
	if err := b.clip.WriteText(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Cut copies the selection and then removes it.
func (b *Bridge) Cut() error {
	if b.model.Disabled() || b.model.Selection().Collapsed() || b.clip == nil {
		return nil
	}
	if err := b.Copy(); err != nil {
		return err
	}
	b.model.DeleteBackward()
	return nil
}

// Paste inserts the clipboard text in place of the selection.
func (b *Bridge) Paste() error {
	if b.model.Disabled() || b.clip == nil {
		return nil
	}
	text, err := b.clip.ReadText()
	if err != nil {
		return fmt.Errorf("paste from clipboard: %w", err)
	}
	if text == "" {
		return nil
	}
	b.model.Insert(text)
	return nil
}
