package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vanta/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "?"),
		key.WithHelp("esc/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToProjectsMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("VANTA Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Music project workspace"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Views"))
	b.WriteString("\n")
	b.WriteString(helpLine("1", "Projects"))
	b.WriteString(helpLine("2", "Search"))
	b.WriteString(helpLine("3", "Vision board"))
	b.WriteString(helpLine("n", "New project"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Player"))
	b.WriteString("\n")
	b.WriteString(helpLine("space", "Play / pause"))
	b.WriteString(helpLine("+ / -", "Volume up / down"))
	b.WriteString(helpLine("> / <", "Seek forward / back"))
	b.WriteString(helpLine("L", "Like current track"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Projects"))
	b.WriteString("\n")
	b.WriteString(helpLine("/", "Filter by name or description"))
	b.WriteString(helpLine("v", "Switch grid / list"))
	b.WriteString(helpLine("enter", "Open the vision board"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Search"))
	b.WriteString("\n")
	b.WriteString(helpLine("tab", "Cycle all / tracks / projects"))
	b.WriteString(helpLine("enter", "Copy result title, or run a recent search or tag"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Vision Board"))
	b.WriteString("\n")
	b.WriteString(helpLine("i", "Write a note (ctrl+s adds it)"))
	b.WriteString(helpLine("t", "Cycle note type"))
	b.WriteString(helpLine("tab", "Notes / suggestions / moods"))
	b.WriteString(helpLine("enter", "Promote suggestion or add mood"))
	b.WriteString(helpLine("d", "Delete note"))
	b.WriteString(helpLine("g", "Generate suggestions"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return b.String()
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 14)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
