package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vanta/internal/adapters/tui/styles"
	"vanta/internal/application"
	"vanta/internal/domain"
)

// ProjectsKeyMap defines key bindings for the project catalog
type ProjectsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Filter key.Binding
	Toggle key.Binding
	Open   key.Binding
	Done   key.Binding
	Clear  key.Binding
}

var ProjectsKeys = ProjectsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "grid/list"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open board"),
	),
	Done: key.NewBinding(
		key.WithKeys("enter", "esc"),
		key.WithHelp("enter/esc", "done"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("ctrl+u", "clear"),
	),
}

const (
	cardWidth      = 28
	gridPageRows   = 3
	listPageSize   = 12
	projectsChrome = 8
)

// ProjectsModel is the model for the project catalog view
type ProjectsModel struct {
	ViewState
	catalog  *application.ProjectCatalog
	input    textinput.Model
	projects []domain.Project
	pager    *Paginator
}

// NewProjectsModel creates a new catalog view model
func NewProjectsModel(catalog *application.ProjectCatalog) *ProjectsModel {
	input := textinput.New()
	input.Placeholder = "Search projects..."
	input.Prompt = "⌕ "
	input.CharLimit = 80
	input.SetValue(catalog.Query())

	m := &ProjectsModel{
		catalog: catalog,
		input:   input,
		pager:   NewPaginator(listPageSize),
	}
	m.Reload()
	return m
}

// Init initializes the catalog view
func (m *ProjectsModel) Init() tea.Cmd {
	return nil
}

// Reload re-reads the visible projects from the catalog
func (m *ProjectsModel) Reload() {
	projects, err := m.catalog.Visible()
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.projects = projects
	m.layout()
}

// Capturing reports whether the filter input has focus
func (m *ProjectsModel) Capturing() bool {
	return m.input.Focused()
}

// Projects returns the projects currently shown
func (m *ProjectsModel) Projects() []domain.Project {
	return m.projects
}

// Selected returns the project under the cursor
func (m *ProjectsModel) Selected() (domain.Project, bool) {
	i := m.pager.Cursor()
	if i < 0 || i >= len(m.projects) {
		return domain.Project{}, false
	}
	return m.projects[i], true
}

// Update handles messages for the catalog view
func (m *ProjectsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateFilter(msg)
		}

		switch {
		case key.Matches(msg, ProjectsKeys.Filter):
			m.input.Focus()
			return m, textinput.Blink
		case key.Matches(msg, ProjectsKeys.Toggle):
			m.toggleViewMode()
			return m, nil
		case key.Matches(msg, ProjectsKeys.Up):
			m.pager.CursorUp()
		case key.Matches(msg, ProjectsKeys.Down):
			m.pager.CursorDown()
		case key.Matches(msg, ProjectsKeys.Left):
			m.pager.CursorLeft()
		case key.Matches(msg, ProjectsKeys.Right):
			m.pager.CursorRight()
		case key.Matches(msg, ProjectsKeys.Open):
			if p, ok := m.Selected(); ok {
				return m, func() tea.Msg { return SwitchToBoardMsg{ProjectID: p.ID} }
			}
		}
	}
	return m, nil
}

func (m *ProjectsModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ProjectsKeys.Done):
		m.input.Blur()
		return m, nil
	case key.Matches(msg, ProjectsKeys.Clear):
		m.input.SetValue("")
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *ProjectsModel) applyFilter() {
	if m.input.Value() == m.catalog.Query() {
		return
	}
	m.catalog.SetQuery(m.input.Value())
	m.pager.Reset()
	m.Reload()
}

func (m *ProjectsModel) toggleViewMode() {
	if m.catalog.ViewMode() == domain.ViewModeGrid {
		m.catalog.SetViewMode(domain.ViewModeList)
	} else {
		m.catalog.SetViewMode(domain.ViewModeGrid)
	}
	m.layout()
}

// layout sizes the pager for the current mode and width
func (m *ProjectsModel) layout() {
	if m.catalog.ViewMode() == domain.ViewModeGrid {
		cols := max(1, (m.Width-4)/cardWidth)
		m.pager.SetColumns(cols)
		m.pager.SetPageSize(cols * gridPageRows)
	} else {
		m.pager.SetColumns(1)
		rows := listPageSize
		if m.Height > projectsChrome {
			rows = min(rows, m.Height-projectsChrome)
		}
		m.pager.SetPageSize(rows)
	}
	m.pager.SetTotal(len(m.projects))
}

// SetSize updates the view dimensions
func (m *ProjectsModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.layout()
}

// View renders the catalog view
func (m *ProjectsModel) View() string {
	v := NewViewBuilder()
	v.Title("Your Projects")

	if m.input.Focused() {
		v.Line(styles.InputFocused.Render(m.input.View()))
	} else {
		v.Line(styles.InputField.Render(m.input.View()))
	}

	mode := m.catalog.ViewMode()
	v.Muted(fmt.Sprintf("%s • %s view", application.CountLabel(len(m.projects)), mode))
	v.BlankLine()
	v.Message(m.Message, m.MessageErr)

	if len(m.projects) == 0 {
		v.Muted("No projects match your search")
		v.Line(RenderKeyHelp(key.NewBinding(key.WithHelp("n", "Create Your First Project"))))
	} else if mode == domain.ViewModeGrid {
		v.Line(m.renderGrid())
	} else {
		v.Line(m.renderList())
	}

	if m.pager.TotalPages() > 1 {
		v.Muted(fmt.Sprintf("page %d/%d", m.pager.CurrentPage(), m.pager.TotalPages()))
	}
	v.BlankLine()

	if m.input.Focused() {
		v.Help(ProjectsKeys.Done, ProjectsKeys.Clear)
	} else {
		v.Help(ProjectsKeys.Open, ProjectsKeys.Filter, ProjectsKeys.Toggle)
	}
	return v.String()
}

func (m *ProjectsModel) renderGrid() string {
	start, end := m.pager.VisibleRange()
	cols := m.pager.Columns()

	var rows []string
	var row []string
	for i := start; i < end; i++ {
		row = append(row, renderCard(m.projects[i], i == m.pager.Cursor()))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(p domain.Project, selected bool) string {
	var b strings.Builder
	b.WriteString(coverBadge(p))
	b.WriteString(" ")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(Truncate(p.Name, cardWidth-10)))
	b.WriteString("\n")
	b.WriteString(RenderMuted(Truncate(p.Description, cardWidth-4)))
	b.WriteString("\n")
	b.WriteString(RenderMuted(fmt.Sprintf("%s • %s", p.TrackLabel(), p.LastModified)))

	if selected {
		return styles.CardSelected.Render(b.String())
	}
	return styles.Card.Render(b.String())
}

func (m *ProjectsModel) renderList() string {
	start, end := m.pager.VisibleRange()

	var b strings.Builder
	for i := start; i < end; i++ {
		p := m.projects[i]
		line := fmt.Sprintf("%s %-22s %-10s %s",
			coverBadge(p), Truncate(p.Name, 22), p.TrackLabel(), p.LastModified)
		if i == m.pager.Cursor() {
			line = styles.Selected.Render(line)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// coverBadge stands in for the cover image: a marker when a cover is set,
// otherwise the name's initial
func coverBadge(p domain.Project) string {
	if p.CoverURL != "" {
		return styles.CardInitial.Render("▦")
	}
	return styles.CardInitial.Render(p.Initial())
}
