package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#A855F7") // Neon purple
	Secondary = lipgloss.Color("#22D3EE") // Cyan
	Accent    = lipgloss.Color("#EC4899") // Pink
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")
	Surface   = lipgloss.Color("#18181B")
	Border    = lipgloss.Color("#3F3F46")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Selection
	Selected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1).
		Width(26)

	CardSelected = Card.
			BorderForeground(Primary)

	CardInitial = lipgloss.NewStyle().
			Bold(true).
			Foreground(White).
			Background(Primary).
			Padding(0, 1)

	// Tags
	Tag = lipgloss.NewStyle().
		Foreground(Secondary).
		Padding(0, 1)

	TagActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1)

	TagCursor = lipgloss.NewStyle().
			Underline(true).
			Bold(true)

	Tab = lipgloss.NewStyle().
		Foreground(Muted).
		Padding(0, 1)

	TabActive = lipgloss.NewStyle().
			Foreground(White).
			Background(Primary).
			Padding(0, 1)

	// Sidebar
	Sidebar = lipgloss.NewStyle().
		Width(24).
		Padding(1, 1).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(Border)

	Brand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent)

	NavActive = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	NavItem = lipgloss.NewStyle().
		Foreground(Muted)

	// Player bar
	PlayerBar = lipgloss.NewStyle().
			Background(Surface).
			Foreground(White).
			Padding(0, 1)

	ProgressFill  = lipgloss.NewStyle().Foreground(Primary)
	ProgressEmpty = lipgloss.NewStyle().Foreground(Border)

	Liked = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	DropZone = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Border).
			Foreground(Muted).
			Padding(0, 2)

	DropZoneActive = DropZone.
			BorderForeground(Primary).
			Foreground(White)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// NoteColor returns the accent color of a note. Notes carry their own hex
// color; an empty one falls back to Primary.
func NoteColor(hex string) lipgloss.Color {
	if hex == "" {
		return Primary
	}
	return lipgloss.Color(hex)
}

// NoteBadge renders the type label of a note in its color
func NoteBadge(label, hex string) string {
	return lipgloss.NewStyle().
		Foreground(Black).
		Background(NoteColor(hex)).
		Padding(0, 1).
		Render(label)
}
