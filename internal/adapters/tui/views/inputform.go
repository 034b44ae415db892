package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vanta/internal/adapters/tui/styles"
)

// InputField is a labelled text input
type InputField struct {
	Label string
	Input textinput.Model
}

// NewInputField creates a field with a placeholder and an optional limit
func NewInputField(label, placeholder string, charLimit int) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	return InputField{Label: label, Input: input}
}

// InputForm is a column of text fields with at most one focused.
// FocusedField is -1 while the whole form is blurred.
type InputForm struct {
	Fields       []InputField
	FocusedField int
}

// NewInputForm creates a form focused on its first field
func NewInputForm(fields ...InputField) *InputForm {
	f := &InputForm{Fields: fields, FocusedField: -1}
	f.SetFocus(0)
	return f
}

// Init returns the cursor blink command
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the focused field
func (f *InputForm) Update(msg tea.Msg) tea.Cmd {
	if !f.Focused() {
		return nil
	}
	var cmd tea.Cmd
	f.Fields[f.FocusedField].Input, cmd = f.Fields[f.FocusedField].Input.Update(msg)
	return cmd
}

// Blur removes focus from every field
func (f *InputForm) Blur() {
	for i := range f.Fields {
		f.Fields[i].Input.Blur()
	}
	f.FocusedField = -1
}

// Focused reports whether any field has focus
func (f *InputForm) Focused() bool {
	return f.valid(f.FocusedField)
}

// SetFocus moves focus to field index. Out of range indices are ignored.
func (f *InputForm) SetFocus(index int) {
	if !f.valid(index) {
		return
	}
	if f.Focused() {
		f.Fields[f.FocusedField].Input.Blur()
	}
	f.FocusedField = index
	f.Fields[index].Input.Focus()
}

// Value returns a field's text with surrounding space trimmed
func (f *InputForm) Value(index int) string {
	return strings.TrimSpace(f.RawValue(index))
}

// RawValue returns a field's text as typed
func (f *InputForm) RawValue(index int) string {
	if !f.valid(index) {
		return ""
	}
	return f.Fields[index].Input.Value()
}

// SetValue replaces a field's text
func (f *InputForm) SetValue(index int, value string) {
	if f.valid(index) {
		f.Fields[index].Input.SetValue(value)
	}
}

// Reset empties every field and focuses the first
func (f *InputForm) Reset() {
	f.Blur()
	for i := range f.Fields {
		f.Fields[i].Input.SetValue("")
	}
	f.SetFocus(0)
}

// RenderField renders a field's label above its input
func (f *InputForm) RenderField(index int) string {
	if !f.valid(index) {
		return ""
	}
	field := f.Fields[index]

	style := styles.InputField
	if index == f.FocusedField {
		style = styles.InputFocused
	}
	return styles.InputLabel.Render(field.Label) + "\n" + style.Render(field.Input.View())
}

func (f *InputForm) valid(index int) bool {
	return index >= 0 && index < len(f.Fields)
}
