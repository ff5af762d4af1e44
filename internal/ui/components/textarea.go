package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea wraps bubbles/textarea for free-form submission input.
type TextArea struct {
	Model textarea.Model
}

// NewTextArea creates a styled multi-line input.
func NewTextArea(placeholder string) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	return TextArea{Model: ta}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input.
func (t TextArea) View() string {
	return t.Model.View()
}

// Value returns the current text.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// Focus puts the input into edit mode.
func (t *TextArea) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur takes the input out of edit mode.
func (t *TextArea) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input is in edit mode.
func (t TextArea) Focused() bool {
	return t.Model.Focused()
}

// Resize sets the visible dimensions.
func (t *TextArea) Resize(width, height int) {
	t.Model.SetWidth(width)
	t.Model.SetHeight(height)
}
