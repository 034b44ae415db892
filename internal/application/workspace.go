package application

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"vanta/internal/domain"
	"vanta/internal/ports"
)

// Dependencies are the adapters a Workspace is built from
type Dependencies struct {
	Projects  ports.ProjectRepository
	Results   ports.ResultSource
	Suggester ports.Suggester
	IDs       ports.IDGenerator
	Logger    *log.Logger
	Clock     func() time.Time

	ViewMode domain.ViewMode
	Volume   int
	Progress int
}

// Workspace owns the state containers of one session and connects the
// creation form to the catalog
type Workspace struct {
	Catalog *ProjectCatalog
	Search  *SearchIndex
	Form    *ProjectForm
	Player  *Playback

	boards      map[string]*VisionBoard
	suggester   ports.Suggester
	ids         ports.IDGenerator
	logger      *log.Logger
	lastCreated *domain.Project
	lastErr     error
}

// NewWorkspace wires the containers together
func NewWorkspace(deps Dependencies) *Workspace {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	w := &Workspace{
		boards:    make(map[string]*VisionBoard),
		suggester: deps.Suggester,
		ids:       deps.IDs,
		logger:    logger,
	}

	w.Catalog = NewProjectCatalog(deps.Projects, deps.IDs,
		WithCatalogClock(clock),
		WithCatalogLogger(logger.WithPrefix("catalog")),
		WithViewMode(deps.ViewMode),
	)
	w.Search = NewSearchIndex(deps.Results, logger.WithPrefix("search"))
	w.Form = NewProjectForm(deps.Suggester, w.CreateProject, logger.WithPrefix("form"))
	w.Player = NewPlayback(domain.CurrentTrack, deps.Volume, deps.Progress)
	return w
}

// CreateProject is the form's creation callback: it appends the draft to the
// catalog. Failures are logged and kept for LastError.
func (w *Workspace) CreateProject(draft domain.DraftProject) {
	project, err := w.Catalog.Add(draft)
	if err != nil {
		w.lastErr = err
		w.logger.Error("create project", "name", draft.Name, "err", err)
		return
	}
	w.lastErr = nil
	w.lastCreated = &project
	w.logger.Info("project created", "id", project.ID, "name", project.Name)
}

// LastCreated returns the most recent project created through the form
func (w *Workspace) LastCreated() *domain.Project {
	return w.lastCreated
}

// LastError returns the failure of the most recent creation, if any
func (w *Workspace) LastError() error {
	return w.lastErr
}

// Board returns the vision board of a project, creating it on first use
func (w *Workspace) Board(projectID string) (*VisionBoard, error) {
	if b, ok := w.boards[projectID]; ok {
		return b, nil
	}

	project, err := w.Catalog.repo.Get(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to open board: %w", err)
	}

	b := NewVisionBoard(project.ID, project.Name, w.suggester, w.ids,
		WithBoardLogger(w.logger.WithPrefix("board")))
	w.boards[projectID] = b
	return b, nil
}

// DefaultBoard returns the board of the first project in the catalog
func (w *Workspace) DefaultBoard() (*VisionBoard, error) {
	projects, err := w.Catalog.All()
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, &NotFoundError{Kind: "project", ID: "(any)"}
	}
	return w.Board(projects[0].ID)
}

// Sidebar is the navigation data shown alongside every view
type Sidebar struct {
	Nav      []domain.NavItem
	Projects []domain.RecentProject
	Liked    domain.NavItem
}

// Sidebar returns the navigation entries and the leading projects
func (w *Workspace) Sidebar() (Sidebar, error) {
	projects, err := w.Catalog.All()
	if err != nil {
		return Sidebar{}, err
	}
	return Sidebar{
		Nav:      domain.MainNav,
		Projects: domain.RecentProjects(projects),
		Liked:    domain.LikedTracks,
	}, nil
}
