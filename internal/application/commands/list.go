package commands

import (
	"context"
	"fmt"

	"vanta/internal/application"
	"vanta/internal/domain"
)

// ListProjectsResult contains the visible projects
type ListProjectsResult struct {
	Projects []domain.Project
	ViewMode domain.ViewMode
	Message  string
}

// ListProjectsCommand filters the catalog with a query
type ListProjectsCommand struct {
	ws       *application.Workspace
	Query    string
	ViewMode string
}

// NewListProjectsCommand creates a new ListProjectsCommand. An empty view
// mode keeps the catalog's current one.
func NewListProjectsCommand(ws *application.Workspace, query, viewMode string) *ListProjectsCommand {
	return &ListProjectsCommand{
		ws:       ws,
		Query:    query,
		ViewMode: viewMode,
	}
}

// Validate checks the view mode
func (c *ListProjectsCommand) Validate() error {
	if c.ViewMode == "" {
		return nil
	}
	if _, err := domain.ParseViewMode(c.ViewMode); err != nil {
		return &application.ValidationError{
			Field:   "viewMode",
			Message: err.Error(),
		}
	}
	return nil
}

// Execute runs the list command
func (c *ListProjectsCommand) Execute(ctx context.Context) (*ListProjectsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.ViewMode != "" {
		mode, _ := domain.ParseViewMode(c.ViewMode)
		c.ws.Catalog.SetViewMode(mode)
	}
	c.ws.Catalog.SetQuery(c.Query)

	projects, err := c.ws.Catalog.Visible()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return &ListProjectsResult{
		Projects: projects,
		ViewMode: c.ws.Catalog.ViewMode(),
		Message:  application.CountLabel(len(projects)),
	}, nil
}
