package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vanta/internal/adapters/tui/styles"
	"vanta/internal/domain"
)

// ConfirmKeyMap defines key bindings for confirmation prompts
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmationModel asks before a note is deleted
type ConfirmationModel struct {
	Target *domain.Note
	Keys   ConfirmKeyMap
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel() ConfirmationModel {
	return ConfirmationModel{
		Keys: DefaultConfirmKeys,
	}
}

// SetTarget arms the prompt for a note
func (m *ConfirmationModel) SetTarget(note *domain.Note) {
	m.Target = note
}

// Active reports whether the prompt is waiting for an answer
func (m *ConfirmationModel) Active() bool {
	return m.Target != nil
}

// HandleKeyMsg processes key messages while the prompt is active.
// Returns (handled, cmd) where handled is true if the key was processed.
// Either answer disarms the prompt.
func (m *ConfirmationModel) HandleKeyMsg(msg tea.KeyMsg, onConfirm, onCancel func(domain.Note) tea.Msg) (bool, tea.Cmd) {
	if m.Target == nil {
		return false, nil
	}
	target := *m.Target

	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.Target = nil
		return true, func() tea.Msg { return onCancel(target) }
	case key.Matches(msg, m.Keys.Confirm):
		m.Target = nil
		return true, func() tea.Msg { return onConfirm(target) }
	}
	return true, nil
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}

// RenderTargetInfo renders the note about to be acted on
func RenderTargetInfo(note *domain.Note, action string) string {
	if note == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(action + " " + note.Type.Label() + ":"))
	b.WriteString("\n  ")
	b.WriteString(Truncate(note.Content, 60))
	return b.String()
}
