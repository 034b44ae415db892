package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vanta/internal/adapters/tui/styles"
	"vanta/internal/application"
	"vanta/internal/domain"
)

// copyToClipboard is swapped out in tests
var copyToClipboard = clipboard.WriteAll

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Category key.Binding
	Copy     key.Binding
	Focus    key.Binding
	Blur     key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Category: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "category"),
	),
	Copy: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "copy title"),
	),
	Focus: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "type"),
	),
	Blur: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "leave input"),
	),
}

const maxShownResults = 10

// SearchModel is the model for the search view
type SearchModel struct {
	ViewState
	index   *application.SearchIndex
	input   textinput.Model
	results []domain.SearchResult
	cursor  int
}

// NewSearchModel creates a new search view model
func NewSearchModel(index *application.SearchIndex) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search tracks, projects, tags..."
	input.Prompt = "⌕ "
	input.CharLimit = 80
	input.SetValue(index.Query())
	input.Focus()

	m := &SearchModel{
		index: index,
		input: input,
	}
	m.refresh()
	return m
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Focus gives the query input keyboard focus
func (m *SearchModel) Focus() tea.Cmd {
	m.input.Focus()
	return textinput.Blink
}

// Capturing reports whether the query input has focus
func (m *SearchModel) Capturing() bool {
	return m.input.Focused()
}

// Results returns the results currently listed
func (m *SearchModel) Results() []domain.SearchResult {
	return m.results
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.SetMessage(fmt.Sprintf("Copy failed: %v", msg.err), true)
		} else {
			m.SetMessage(fmt.Sprintf("Copied %q", msg.title), false)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Blur):
			m.input.Blur()
			return m, nil

		case key.Matches(msg, SearchKeys.Category):
			m.nextCategory()
			return m, nil

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < m.rows()-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Copy):
			if !m.index.IsQuerying() {
				m.runHint()
				return m, nil
			}
			if m.cursor >= 0 && m.cursor < len(m.results) {
				return m, copyTitle(m.results[m.cursor].Title)
			}
			return m, nil
		}

		if !m.input.Focused() {
			if key.Matches(msg, SearchKeys.Focus) {
				return m, m.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// hints are the idle-page entries: recent searches, then trending tags
func hints() []string {
	out := make([]string, 0, len(domain.RecentSearches)+len(domain.TrendingTags))
	out = append(out, domain.RecentSearches...)
	return append(out, domain.TrendingTags...)
}

// rows is the number of selectable lines on the page
func (m *SearchModel) rows() int {
	if !m.index.IsQuerying() {
		return len(hints())
	}
	return min(len(m.results), maxShownResults)
}

// runHint uses the selected recent search or tag as the query
func (m *SearchModel) runHint() {
	h := hints()
	if m.cursor < 0 || m.cursor >= len(h) {
		return
	}
	m.input.SetValue(h[m.cursor])
	m.input.CursorEnd()
	m.refresh()
}

func (m *SearchModel) nextCategory() {
	next := (int(m.index.Category()) + 1) % len(domain.Categories)
	m.index.SetCategory(domain.Categories[next])
	m.refresh()
}

// refresh runs the query and applies the category filter
func (m *SearchModel) refresh() {
	if _, err := m.index.Search(m.input.Value()); err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	results, err := m.index.Results()
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.results = results
	m.cursor = 0
	m.ClearMessage()
}

type copiedMsg struct {
	title string
	err   error
}

func copyTitle(title string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{title: title, err: copyToClipboard(title)}
	}
}

// View renders the search view
func (m *SearchModel) View() string {
	v := NewViewBuilder()
	v.Title("Search")

	if m.input.Focused() {
		v.Line(styles.InputFocused.Render(m.input.View()))
	} else {
		v.Line(styles.InputField.Render(m.input.View()))
	}

	labels := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		labels[i] = categoryLabel(c)
	}
	v.Line(RenderTabs(labels, int(m.index.Category())))
	v.BlankLine()
	v.Message(m.Message, m.MessageErr)

	if !m.index.IsQuerying() {
		v.Raw(m.renderIdle())
	} else {
		v.Raw(m.renderResults())
	}

	v.BlankLine()
	if m.input.Focused() {
		v.Help(SearchKeys.Category, SearchKeys.Copy, SearchKeys.Blur)
	} else {
		v.Help(SearchKeys.Focus, SearchKeys.Category, SearchKeys.Copy)
	}
	return v.String()
}

func (m *SearchModel) renderIdle() string {
	var b strings.Builder
	b.WriteString(styles.InputLabel.Render("Recent Searches"))
	b.WriteString("\n")
	for i, s := range domain.RecentSearches {
		b.WriteString(m.hintLine(i, "↺ "+s))
	}
	b.WriteString("\n")
	b.WriteString(styles.InputLabel.Render("Trending Tags"))
	b.WriteString("\n")
	offset := len(domain.RecentSearches)
	for i, tag := range domain.TrendingTags {
		b.WriteString(m.hintLine(offset+i, "#"+tag))
	}
	return b.String()
}

func (m *SearchModel) hintLine(i int, text string) string {
	if i == m.cursor {
		return styles.Selected.Render("▸ "+text) + "\n"
	}
	return "  " + RenderMuted(text) + "\n"
}

func (m *SearchModel) renderResults() string {
	var b strings.Builder
	b.WriteString(RenderSubtitle(m.index.Summary(len(m.results))))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(RenderMuted("No results found"))
		b.WriteString("\n")
		return b.String()
	}

	shown := min(len(m.results), maxShownResults)
	for i := 0; i < shown; i++ {
		b.WriteString(renderResult(m.results[i], i == m.cursor))
		b.WriteString("\n")
	}
	if len(m.results) > shown {
		b.WriteString(RenderMuted(fmt.Sprintf("... and %d more", len(m.results)-shown)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderResult(r domain.SearchResult, selected bool) string {
	typeStr := "[TRACK]"
	if r.Kind == domain.ResultProject {
		typeStr = "[PROJECT]"
	}

	title := fmt.Sprintf("%-9s %s", typeStr, r.Title)
	if selected {
		title = styles.Selected.Render(title)
	}
	return fmt.Sprintf("%s\n          %s  %s", title, RenderMuted(r.Subtitle()), RenderTags(r.Tags))
}

func categoryLabel(c domain.Category) string {
	switch c {
	case domain.CategoryTracks:
		return "Tracks"
	case domain.CategoryProjects:
		return "Projects"
	default:
		return "All"
	}
}
