package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"vanta/internal/adapters/tui/styles"
	"vanta/internal/application"
	"vanta/internal/domain"
)

// BoardKeyMap defines key bindings for the vision board
type BoardKeyMap struct {
	Compose  key.Binding
	Save     key.Binding
	Cancel   key.Binding
	Type     key.Binding
	Section  key.Binding
	Up       key.Binding
	Down     key.Binding
	Act      key.Binding
	Delete   key.Binding
	Generate key.Binding
}

var BoardKeys = BoardKeyMap{
	Compose: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "write note"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "add note"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "stop writing"),
	),
	Type: key.NewBinding(
		key.WithKeys("t", "ctrl+t"),
		key.WithHelp("t", "note type"),
	),
	Section: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "section"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Act: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "x"),
		key.WithHelp("d", "delete note"),
	),
	Generate: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "inspire me"),
	),
}

// boardSection is the part of the board the cursor is in
type boardSection int

const (
	sectionNotes boardSection = iota
	sectionSuggestions
	sectionMoods
	sectionCount
)

func (s boardSection) String() string {
	switch s {
	case sectionSuggestions:
		return "AI Suggestions"
	case sectionMoods:
		return "Quick Moods"
	default:
		return "Notes"
	}
}

// BoardModel is the model for the vision board view
type BoardModel struct {
	ViewState
	ctx     context.Context
	board   *application.VisionBoard
	compose textarea.Model
	section boardSection
	cursors [sectionCount]int
	confirm ConfirmationModel
}

// NewBoardModel creates a new board view model. SetBoard must be called
// before the view is shown.
func NewBoardModel(ctx context.Context) *BoardModel {
	ta := textarea.New()
	ta.Placeholder = "Capture an idea, a mood, a reference..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 500
	ta.SetHeight(3)

	return &BoardModel{
		ctx:     ctx,
		compose: ta,
		confirm: NewConfirmationModel(),
	}
}

// SetBoard shows a project's board
func (m *BoardModel) SetBoard(b *application.VisionBoard) {
	if m.board != b {
		m.cursors = [sectionCount]int{}
		m.section = sectionNotes
		m.compose.Reset()
		m.compose.Blur()
		m.confirm.SetTarget(nil)
		m.ClearMessage()
	}
	m.board = b
}

// Board returns the board shown
func (m *BoardModel) Board() *application.VisionBoard {
	return m.board
}

// Init initializes the board view
func (m *BoardModel) Init() tea.Cmd {
	return nil
}

// Capturing reports whether the compose area or the delete prompt holds keys
func (m *BoardModel) Capturing() bool {
	return m.compose.Focused() || m.confirm.Active()
}

// Update handles messages for the board view
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.board == nil {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case noteDeletedMsg:
		if m.board.DeleteNote(msg.id) {
			m.SetMessage("Note deleted", false)
		}
		m.clampCursors()
		return m, nil

	case deleteCanceledMsg:
		m.ClearMessage()
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.confirm.HandleKeyMsg(msg, confirmDelete, cancelDelete); handled {
			return m, cmd
		}
		if m.compose.Focused() {
			return m.updateCompose(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.compose.Focused() {
		var cmd tea.Cmd
		m.compose, cmd = m.compose.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *BoardModel) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, BoardKeys.Cancel):
		m.compose.Blur()
		return m, nil

	case msg.String() == "ctrl+t":
		m.cycleType()
		return m, nil

	case key.Matches(msg, BoardKeys.Save):
		if note, ok := m.board.Compose(m.compose.Value()); ok {
			m.compose.Reset()
			m.SetMessage(fmt.Sprintf("Added %s", note.Type.Label()), false)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

func (m *BoardModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, BoardKeys.Compose):
		m.ClearMessage()
		return m, m.compose.Focus()

	case key.Matches(msg, BoardKeys.Type):
		m.cycleType()

	case key.Matches(msg, BoardKeys.Section):
		m.section = (m.section + 1) % sectionCount

	case key.Matches(msg, BoardKeys.Up):
		if m.cursors[m.section] > 0 {
			m.cursors[m.section]--
		}

	case key.Matches(msg, BoardKeys.Down):
		if m.cursors[m.section] < m.sectionLen(m.section)-1 {
			m.cursors[m.section]++
		}

	case key.Matches(msg, BoardKeys.Generate):
		if err := m.board.GenerateSuggestions(m.ctx); err != nil {
			m.SetMessage(err.Error(), true)
		} else {
			m.section = sectionSuggestions
			m.cursors[sectionSuggestions] = 0
			m.SetMessage(domain.Plural(len(m.board.Pending()), "suggestion"), false)
		}

	case key.Matches(msg, BoardKeys.Delete):
		if m.section == sectionNotes {
			notes := m.board.Notes()
			if i := m.cursors[sectionNotes]; i < len(notes) {
				m.confirm.SetTarget(&notes[i])
			}
		}

	case key.Matches(msg, BoardKeys.Act):
		m.act()
	}

	m.clampCursors()
	return m, nil
}

// act promotes the selected suggestion or adds the selected mood
func (m *BoardModel) act() {
	i := m.cursors[m.section]
	switch m.section {
	case sectionSuggestions:
		pending := m.board.Pending()
		if i < len(pending) {
			if _, ok := m.board.PromoteSuggestion(pending[i]); ok {
				m.SetMessage("Added to ideas", false)
			}
		}
	case sectionMoods:
		if i < len(domain.MoodVocabulary) {
			if _, ok := m.board.AddMood(domain.MoodVocabulary[i]); ok {
				m.SetMessage(fmt.Sprintf("Added mood: %s", domain.MoodVocabulary[i]), false)
			}
		}
	}
}

func (m *BoardModel) cycleType() {
	cur := m.board.SelectedType()
	for i, t := range domain.NoteTypes {
		if t == cur {
			m.board.SelectType(domain.NoteTypes[(i+1)%len(domain.NoteTypes)])
			return
		}
	}
	m.board.SelectType(domain.NoteTypes[0])
}

func (m *BoardModel) sectionLen(s boardSection) int {
	switch s {
	case sectionSuggestions:
		return len(m.board.Pending())
	case sectionMoods:
		return len(domain.MoodVocabulary)
	default:
		return len(m.board.Notes())
	}
}

func (m *BoardModel) clampCursors() {
	for s := range sectionCount {
		m.cursors[s] = max(0, min(m.cursors[s], m.sectionLen(s)-1))
	}
}

type noteDeletedMsg struct{ id string }

type deleteCanceledMsg struct{}

func confirmDelete(n domain.Note) tea.Msg { return noteDeletedMsg{id: n.ID} }

func cancelDelete(domain.Note) tea.Msg { return deleteCanceledMsg{} }

// SetSize updates the view dimensions
func (m *BoardModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.compose.SetWidth(max(20, width-8))
}

// View renders the board view
func (m *BoardModel) View() string {
	if m.board == nil {
		return RenderMuted("No project selected")
	}

	v := NewViewBuilder()
	v.Title("Vision Board")
	v.Subtitle(m.board.ProjectName)

	if m.confirm.Active() {
		v.Line(RenderTargetInfo(m.confirm.Target, "Delete"))
		v.BlankLine()
		v.Line(RenderConfirmPrompt("Delete this note?"))
		return v.String()
	}

	labels := make([]string, len(domain.NoteTypes))
	active := 0
	for i, t := range domain.NoteTypes {
		labels[i] = t.Label()
		if t == m.board.SelectedType() {
			active = i
		}
	}
	v.Line(RenderTabs(labels, active))
	if m.compose.Focused() {
		v.Line(styles.InputFocused.Render(m.compose.View()))
	} else {
		v.Line(styles.InputField.Render(m.compose.View()))
	}
	v.BlankLine()
	v.Message(m.Message, m.MessageErr)

	v.Raw(m.renderNotes())
	v.BlankLine()
	v.Raw(m.renderSuggestions())
	v.BlankLine()
	v.Raw(m.renderMoods())
	v.BlankLine()

	if m.compose.Focused() {
		v.Help(BoardKeys.Save, BoardKeys.Type, BoardKeys.Cancel)
	} else {
		v.Help(BoardKeys.Compose, BoardKeys.Section, BoardKeys.Act, BoardKeys.Delete, BoardKeys.Generate)
	}
	return v.String()
}

func (m *BoardModel) sectionHeader(s boardSection, extra string) string {
	style := styles.InputLabel
	if m.section == s && !m.compose.Focused() {
		style = styles.TabActive
	}
	h := style.Render(s.String())
	if extra != "" {
		h += " " + RenderMuted(extra)
	}
	return h + "\n"
}

func (m *BoardModel) marker(s boardSection, i int) string {
	if m.section == s && m.cursors[s] == i && !m.compose.Focused() {
		return "▸ "
	}
	return "  "
}

func (m *BoardModel) renderNotes() string {
	notes := m.board.Notes()

	var b strings.Builder
	b.WriteString(m.sectionHeader(sectionNotes, fmt.Sprintf("(%d)", len(notes))))
	if len(notes) == 0 {
		b.WriteString(RenderMuted("  Nothing here yet. Press i to write the first note."))
		b.WriteString("\n")
	}
	for i, n := range notes {
		b.WriteString(m.marker(sectionNotes, i))
		b.WriteString(styles.NoteBadge(n.Type.Label(), n.DisplayColor()))
		b.WriteString(" ")
		b.WriteString(strings.ReplaceAll(n.Content, "\n", " "))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *BoardModel) renderSuggestions() string {
	pending := m.board.Pending()

	var b strings.Builder
	b.WriteString(m.sectionHeader(sectionSuggestions, ""))
	if len(pending) == 0 {
		b.WriteString(RenderMuted("  Press g for production ideas"))
		b.WriteString("\n")
	}
	for i, s := range pending {
		b.WriteString(m.marker(sectionSuggestions, i))
		b.WriteString("✦ ")
		b.WriteString(s)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *BoardModel) renderMoods() string {
	var b strings.Builder
	b.WriteString(m.sectionHeader(sectionMoods, ""))
	for i, mood := range domain.MoodVocabulary {
		b.WriteString(m.marker(sectionMoods, i))
		b.WriteString(mood)
		b.WriteString("\n")
	}
	return b.String()
}
