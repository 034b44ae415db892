package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vanta/internal/adapters/tui/styles"
	"vanta/internal/application"
)

// CreateKeyMap defines key bindings for the create view
type CreateKeyMap struct {
	Submit  key.Binding
	Close   key.Binding
	Next    key.Binding
	Prev    key.Binding
	Suggest key.Binding
	Toggle  key.Binding
	Left    key.Binding
	Right   key.Binding
}

var CreateKeys = CreateKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "create project"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous"),
	),
	Suggest: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "suggest name"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle tag"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
}

// Focus slots of the create view. The tag picker follows the text fields.
const (
	fieldName = iota
	fieldDescription
	fieldCover
	slotTags
	slotCount
)

// CreateModel is the model for the project creation view
type CreateModel struct {
	ViewState
	ctx       context.Context
	ws        *application.Workspace
	inputs    *InputForm
	slot      int
	tagCursor int
}

// NewCreateModel creates a new create view model over the workspace form
func NewCreateModel(ctx context.Context, ws *application.Workspace) *CreateModel {
	inputs := NewInputForm(
		NewInputField("Project Name", "Enter project name...", 80),
		NewInputField("Description", "Describe your project...", 200),
		NewInputField("Cover Image", "Path or URL of the cover art", 300),
	)
	return &CreateModel{
		ctx:    ctx,
		ws:     ws,
		inputs: inputs,
	}
}

// Open shows the form, restoring a draft left by an earlier Close
func (m *CreateModel) Open() tea.Cmd {
	form := m.ws.Form
	form.Open()

	d := form.Draft()
	m.inputs.Reset()
	m.inputs.SetValue(fieldName, d.Name)
	m.inputs.SetValue(fieldDescription, d.Description)
	m.inputs.SetValue(fieldCover, d.CoverURL)
	m.slot = fieldName
	m.tagCursor = 0
	m.ClearMessage()
	return m.inputs.Init()
}

// Init initializes the create view
func (m *CreateModel) Init() tea.Cmd {
	return m.inputs.Init()
}

// Capturing is always true: the form is modal and leaves with esc
func (m *CreateModel) Capturing() bool {
	return true
}

// Update handles messages for the create view
func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, CreateKeys.Close):
			m.ws.Form.Close()
			return m, func() tea.Msg { return SwitchToProjectsMsg{} }

		case key.Matches(msg, CreateKeys.Next):
			m.focus((m.slot + 1) % slotCount)
			return m, nil

		case key.Matches(msg, CreateKeys.Prev):
			m.focus((m.slot - 1 + slotCount) % slotCount)
			return m, nil

		case key.Matches(msg, CreateKeys.Suggest):
			if err := m.ws.Form.SuggestName(m.ctx); err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			m.inputs.SetValue(fieldName, m.ws.Form.Draft().Name)
			return m, nil

		case key.Matches(msg, CreateKeys.Submit):
			return m, m.submit()
		}

		if m.slot == slotTags {
			m.updateTags(msg)
			return m, nil
		}
	}

	cmd := m.inputs.Update(msg)
	m.sync()
	if k, ok := msg.(tea.KeyMsg); ok && k.Paste && m.slot == fieldCover {
		m.ws.Form.Drop()
	}
	return m, cmd
}

func (m *CreateModel) updateTags(msg tea.KeyMsg) {
	vocab := m.ws.Form.Vocabulary()
	switch {
	case key.Matches(msg, CreateKeys.Left):
		if m.tagCursor > 0 {
			m.tagCursor--
		}
	case key.Matches(msg, CreateKeys.Right):
		if m.tagCursor < len(vocab)-1 {
			m.tagCursor++
		}
	case key.Matches(msg, CreateKeys.Toggle):
		if m.tagCursor < len(vocab) {
			m.ws.Form.ToggleTag(vocab[m.tagCursor])
		}
	}
}

// focus moves between the text fields and the tag picker. Focusing the
// cover field arms the drop zone.
func (m *CreateModel) focus(slot int) {
	m.slot = slot
	if slot == slotTags {
		m.inputs.Blur()
	} else {
		m.inputs.SetFocus(slot)
	}

	if slot == fieldCover {
		m.ws.Form.DragEnter()
	} else {
		m.ws.Form.DragLeave()
	}
}

// sync copies the text fields into the draft
func (m *CreateModel) sync() {
	m.ws.Form.SetName(m.inputs.RawValue(fieldName))
	m.ws.Form.SetDescription(m.inputs.RawValue(fieldDescription))
	m.ws.Form.SetCoverURL(m.inputs.Value(fieldCover))
}

func (m *CreateModel) submit() tea.Cmd {
	m.sync()
	if !m.ws.Form.Submit() {
		m.SetMessage("Project name is required", true)
		return nil
	}
	if err := m.ws.LastError(); err != nil {
		return func() tea.Msg { return CreateErrMsg{Err: err} }
	}

	project := *m.ws.LastCreated()
	m.inputs.Reset()
	return func() tea.Msg { return ProjectCreatedMsg{Project: project} }
}

// View renders the create view
func (m *CreateModel) View() string {
	form := m.ws.Form

	v := NewViewBuilder()
	v.Title("Create New Project")
	v.Subtitle("Start a new music project")

	v.Line(m.inputs.RenderField(fieldName) + "  " + RenderKeyHelp(CreateKeys.Suggest))
	v.BlankLine()
	v.Line(m.inputs.RenderField(fieldDescription))
	v.BlankLine()
	v.Line(m.inputs.RenderField(fieldCover))
	v.Line(m.renderDropZone())
	v.BlankLine()

	v.Line(styles.InputLabel.Render("Genre Tags"))
	v.Line(m.renderTags())
	v.BlankLine()

	v.Message(m.Message, m.MessageErr)

	if form.CanSubmit() {
		v.Line(styles.Success.Render("Ready to create"))
	} else {
		v.Muted("Enter a project name to continue")
	}
	v.BlankLine()

	if m.slot == slotTags {
		v.Help(CreateKeys.Toggle, CreateKeys.Next, CreateKeys.Submit, CreateKeys.Close)
	} else {
		v.Help(CreateKeys.Next, CreateKeys.Submit, CreateKeys.Close)
	}
	return v.String()
}

func (m *CreateModel) renderDropZone() string {
	form := m.ws.Form
	cover := form.Draft().CoverURL

	text := "Drop or paste cover art here (JPG, PNG up to 10MB)"
	if cover != "" {
		text = fmt.Sprintf("Cover: %s", Truncate(cover, 48))
	}
	if form.DragActive() {
		return styles.DropZoneActive.Render(text)
	}
	return styles.DropZone.Render(text)
}

func (m *CreateModel) renderTags() string {
	vocab := m.ws.Form.Vocabulary()
	parts := make([]string, 0, len(vocab))
	for i, tag := range vocab {
		label := tag
		if m.slot == slotTags && i == m.tagCursor {
			label = styles.TagCursor.Render(label)
		}
		if m.ws.Form.HasTag(tag) {
			parts = append(parts, styles.TagActive.Render(label))
		} else {
			parts = append(parts, styles.Tag.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
