package memory

import (
	"fmt"
	"slices"

	"vanta/internal/application"
	"vanta/internal/domain"
	"vanta/internal/ports"
)

// Repository implements ports.ProjectRepository and ports.ResultSource over
// in-memory slices. Nothing is persisted.
type Repository struct {
	projects []domain.Project
	results  []domain.SearchResult
}

var (
	_ ports.ProjectRepository = (*Repository)(nil)
	_ ports.ResultSource      = (*Repository)(nil)
)

// NewRepository creates a repository holding the given records
func NewRepository(projects []domain.Project, results []domain.SearchResult) *Repository {
	return &Repository{
		projects: slices.Clone(projects),
		results:  slices.Clone(results),
	}
}

// NewFixtureRepository creates a repository seeded with the sample data
func NewFixtureRepository() *Repository {
	return NewRepository(domain.FixtureProjects(), domain.FixtureSearchResults())
}

// List returns a copy of the projects in insertion order
func (r *Repository) List() ([]domain.Project, error) {
	return slices.Clone(r.projects), nil
}

// Get returns the project with id
func (r *Repository) Get(id string) (*domain.Project, error) {
	idx := r.index(id)
	if idx < 0 {
		return nil, &application.NotFoundError{Kind: "project", ID: id}
	}
	p := r.projects[idx]
	return &p, nil
}

// Add appends a project, rejecting duplicate IDs
func (r *Repository) Add(project domain.Project) error {
	if project.ID == "" {
		return &application.ValidationError{Field: "projectID", Message: "project ID is required"}
	}
	if r.index(project.ID) >= 0 {
		return fmt.Errorf("project %s: %w", project.ID, application.ErrDuplicateID)
	}
	r.projects = append(r.projects, project)
	return nil
}

// Results returns a copy of the search records
func (r *Repository) Results() ([]domain.SearchResult, error) {
	return slices.Clone(r.results), nil
}

func (r *Repository) index(id string) int {
	return slices.IndexFunc(r.projects, func(p domain.Project) bool { return p.ID == id })
}
