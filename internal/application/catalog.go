package application

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"vanta/internal/domain"
	"vanta/internal/ports"
)

// ProjectCatalog holds the project list along with its query and layout state
type ProjectCatalog struct {
	repo   ports.ProjectRepository
	ids    ports.IDGenerator
	now    func() time.Time
	logger *log.Logger

	viewMode domain.ViewMode
	query    string
}

// CatalogOption configures a ProjectCatalog
type CatalogOption func(*ProjectCatalog)

// WithCatalogClock sets the clock used to stamp new projects
func WithCatalogClock(now func() time.Time) CatalogOption {
	return func(c *ProjectCatalog) {
		c.now = now
	}
}

// WithCatalogLogger sets the logger
func WithCatalogLogger(l *log.Logger) CatalogOption {
	return func(c *ProjectCatalog) {
		c.logger = l
	}
}

// WithViewMode sets the initial layout
func WithViewMode(mode domain.ViewMode) CatalogOption {
	return func(c *ProjectCatalog) {
		c.viewMode = mode
	}
}

// NewProjectCatalog creates a catalog over repo
func NewProjectCatalog(repo ports.ProjectRepository, ids ports.IDGenerator, opts ...CatalogOption) *ProjectCatalog {
	c := &ProjectCatalog{
		repo:   repo,
		ids:    ids,
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// All returns every project in catalog order
func (c *ProjectCatalog) All() ([]domain.Project, error) {
	projects, err := c.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Filter returns the projects whose name or description contains query.
// An empty query returns everything.
func (c *ProjectCatalog) Filter(query string) ([]domain.Project, error) {
	projects, err := c.All()
	if err != nil {
		return nil, err
	}
	return domain.FilterProjects(projects, query), nil
}

// SetQuery stores the active search text
func (c *ProjectCatalog) SetQuery(query string) {
	c.query = query
}

// Query returns the active search text
func (c *ProjectCatalog) Query() string {
	return c.query
}

// Visible returns the projects matching the active query
func (c *ProjectCatalog) Visible() ([]domain.Project, error) {
	return c.Filter(c.query)
}

// SetViewMode switches between grid and list. Filtering is unaffected.
func (c *ProjectCatalog) SetViewMode(mode domain.ViewMode) {
	c.viewMode = mode
}

// ViewMode returns the current layout
func (c *ProjectCatalog) ViewMode() domain.ViewMode {
	return c.viewMode
}

// Add turns a submitted draft into a project and appends it to the catalog
func (c *ProjectCatalog) Add(draft domain.DraftProject) (domain.Project, error) {
	if err := ValidateRequired("name", draft.Name); err != nil {
		return domain.Project{}, err
	}

	now := c.now()
	project := domain.Project{
		ID:           c.ids.NewID(),
		Name:         draft.TrimmedName(),
		Description:  draft.Description,
		CoverURL:     draft.CoverURL,
		TrackCount:   0,
		LastModified: humanize.RelTime(now, now, "ago", "from now"),
		Tags:         draft.Tags.Slice(),
	}

	if err := c.repo.Add(project); err != nil {
		return domain.Project{}, fmt.Errorf("failed to add project: %w", err)
	}

	c.logger.Debug("project created", "id", project.ID, "name", project.Name, "tags", project.Tags)
	return project, nil
}

// CountLabel renders "1 project" / "N projects"
func CountLabel(n int) string {
	return domain.Plural(n, "project")
}
