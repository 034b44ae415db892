package ports

import "vanta/internal/domain"

// ProjectRepository defines storage for the project catalog
type ProjectRepository interface {
	// List returns every project in catalog order
	List() ([]domain.Project, error)

	// Get returns the project with the given ID
	Get(id string) (*domain.Project, error)

	// Add appends a project. IDs must be unique.
	Add(project domain.Project) error
}

// ResultSource provides the records the search page queries over
type ResultSource interface {
	Results() ([]domain.SearchResult, error)
}
