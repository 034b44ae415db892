package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"vanta/internal/adapters/tui/styles"
	"vanta/internal/adapters/tui/views"
	"vanta/internal/application"
)

// ViewState represents the current view
type ViewState int

const (
	ViewProjects ViewState = iota
	ViewSearch
	ViewBoard
	ViewCreate
	ViewHelp
)

// AppKeyMap defines the keys handled above the views
type AppKeyMap struct {
	Projects     key.Binding
	Search       key.Binding
	Board        key.Binding
	New          key.Binding
	Play         key.Binding
	VolumeUp     key.Binding
	VolumeDown   key.Binding
	SeekForward  key.Binding
	SeekBackward key.Binding
	Like         key.Binding
	Help         key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

var AppKeys = AppKeyMap{
	Projects:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "projects")),
	Search:       key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "search")),
	Board:        key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "board")),
	New:          key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new project")),
	Play:         key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
	VolumeUp:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "volume up")),
	VolumeDown:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "volume down")),
	SeekForward:  key.NewBinding(key.WithKeys(">", "."), key.WithHelp(">", "seek")),
	SeekBackward: key.NewBinding(key.WithKeys("<", ","), key.WithHelp("<", "seek back")),
	Like:         key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "like")),
	Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:         key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit:    key.NewBinding(key.WithKeys("ctrl+c")),
}

// Step sizes of the transport keys, in percent
const (
	volumeStep = 5
	seekStep   = 5
)

// sidebarWidth is the width the sidebar takes, border included
const sidebarWidth = 25

// App is the main TUI application model
type App struct {
	ctx    context.Context
	ws     *application.Workspace
	logger *log.Logger

	state    ViewState
	projects *views.ProjectsModel
	search   *views.SearchModel
	board    *views.BoardModel
	create   *views.CreateModel
	help     *views.HelpModel

	width  int
	height int
}

// Option configures the App
type Option func(*App)

// WithLogger sets the logger
func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// NewApp creates a new TUI application over a workspace
func NewApp(ctx context.Context, ws *application.Workspace, opts ...Option) *App {
	a := &App{
		ctx:      ctx,
		ws:       ws,
		logger:   log.New(io.Discard),
		state:    ViewProjects,
		projects: views.NewProjectsModel(ws.Catalog),
		search:   views.NewSearchModel(ws.Search),
		board:    views.NewBoardModel(ctx),
		create:   views.NewCreateModel(ctx, ws),
		help:     views.NewHelpModel(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// State returns the view shown
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.projects.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		w, h := a.contentSize()
		a.projects.SetSize(w, h)
		a.search.SetSize(w, h)
		a.board.SetSize(w, h)
		a.create.SetSize(w, h)
		a.help.SetSize(w, h)
		return a, nil

	case tea.KeyMsg:
		if handled, cmd := a.handleGlobalKey(msg); handled {
			return a, cmd
		}

	// View switching messages
	case views.SwitchToProjectsMsg:
		a.state = ViewProjects
		a.projects.Reload()
		return a, nil

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		return a, a.search.Focus()

	case views.SwitchToBoardMsg:
		return a, a.openBoard(msg.ProjectID)

	case views.SwitchToCreateMsg:
		a.state = ViewCreate
		return a, a.create.Open()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	// Create view messages
	case views.ProjectCreatedMsg:
		a.logger.Info("project created", "id", msg.Project.ID, "name", msg.Project.Name)
		a.state = ViewProjects
		a.projects.Reload()
		a.projects.SetMessage(fmt.Sprintf("Created project: %s", msg.Project.Name), false)
		return a, nil

	case views.CreateErrMsg:
		a.create.SetMessage(msg.Err.Error(), true)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewProjects:
		_, cmd = a.projects.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewBoard:
		_, cmd = a.board.Update(msg)
	case ViewCreate:
		_, cmd = a.create.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// handleGlobalKey runs navigation and transport keys. Printable keys are
// left to the view while it has a text field focused.
func (a *App) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if key.Matches(msg, AppKeys.ForceQuit) {
		return true, tea.Quit
	}
	if a.capturing() {
		return false, nil
	}

	player := a.ws.Player
	switch {
	case key.Matches(msg, AppKeys.Quit):
		return true, tea.Quit
	case key.Matches(msg, AppKeys.Projects):
		return true, switchTo(views.SwitchToProjectsMsg{})
	case key.Matches(msg, AppKeys.Search):
		return true, switchTo(views.SwitchToSearchMsg{})
	case key.Matches(msg, AppKeys.Board):
		return true, switchTo(views.SwitchToBoardMsg{})
	case key.Matches(msg, AppKeys.New):
		return true, switchTo(views.SwitchToCreateMsg{})
	case key.Matches(msg, AppKeys.Help):
		if a.state == ViewHelp {
			return true, switchTo(views.SwitchToProjectsMsg{})
		}
		return true, switchTo(views.SwitchToHelpMsg{})
	case key.Matches(msg, AppKeys.Play):
		player.TogglePlay()
	case key.Matches(msg, AppKeys.VolumeUp):
		player.NudgeVolume(volumeStep)
	case key.Matches(msg, AppKeys.VolumeDown):
		player.NudgeVolume(-volumeStep)
	case key.Matches(msg, AppKeys.SeekForward):
		player.NudgeProgress(seekStep)
	case key.Matches(msg, AppKeys.SeekBackward):
		player.NudgeProgress(-seekStep)
	case key.Matches(msg, AppKeys.Like):
		player.ToggleLike()
	default:
		return false, nil
	}
	return true, nil
}

func (a *App) capturing() bool {
	if c, ok := a.current().(views.TextCapturer); ok {
		return c.Capturing()
	}
	return false
}

func (a *App) current() tea.Model {
	switch a.state {
	case ViewSearch:
		return a.search
	case ViewBoard:
		return a.board
	case ViewCreate:
		return a.create
	case ViewHelp:
		return a.help
	default:
		return a.projects
	}
}

func (a *App) openBoard(projectID string) tea.Cmd {
	var (
		b   *application.VisionBoard
		err error
	)
	if projectID == "" {
		if cur := a.board.Board(); cur != nil {
			b = cur
		} else {
			b, err = a.ws.DefaultBoard()
		}
	} else {
		b, err = a.ws.Board(projectID)
	}
	if err != nil {
		a.logger.Error("open board", "project", projectID, "err", err)
		a.projects.SetMessage(err.Error(), true)
		a.state = ViewProjects
		return nil
	}

	a.board.SetBoard(b)
	a.state = ViewBoard
	return nil
}

func switchTo(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (a *App) contentSize() (int, int) {
	return max(0, a.width-sidebarWidth-4), max(0, a.height-3)
}

func (a *App) route() string {
	switch a.state {
	case ViewSearch:
		return "/search"
	case ViewProjects:
		return "/"
	default:
		return ""
	}
}

// View renders the current view
func (a *App) View() string {
	sb, err := a.ws.Sidebar()
	if err != nil {
		a.logger.Error("sidebar", "err", err)
	}

	var content string
	switch a.state {
	case ViewSearch:
		content = a.search.View()
	case ViewBoard:
		content = a.board.View()
	case ViewCreate:
		content = a.create.View()
	case ViewHelp:
		content = a.help.View()
	default:
		content = a.projects.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		views.RenderSidebar(sb, a.route(), max(0, a.height-3)),
		styles.App.Render(content),
	)
	player := views.RenderPlayerBar(a.ws.Player.Track(), a.ws.Player.Snapshot(), a.width)
	return lipgloss.JoinVertical(lipgloss.Left, body, player)
}
