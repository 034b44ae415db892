package commands

import (
	"context"
	"fmt"

	"vanta/internal/application"
	"vanta/internal/domain"
)

// CreateProjectResult contains the result of creating a project
type CreateProjectResult struct {
	Project *domain.Project
	Message string
}

// CreateProjectCommand fills the creation form and submits it
type CreateProjectCommand struct {
	ws          *application.Workspace
	Name        string
	Description string
	Tags        []string
	CoverURL    string
	SuggestName bool
}

// NewCreateProjectCommand creates a new CreateProjectCommand
func NewCreateProjectCommand(ws *application.Workspace, name, description string, tags []string) *CreateProjectCommand {
	return &CreateProjectCommand{
		ws:          ws,
		Name:        name,
		Description: description,
		Tags:        tags,
	}
}

// Validate checks the name and tags
func (c *CreateProjectCommand) Validate() error {
	if !c.SuggestName {
		if err := application.ValidateRequired("name", c.Name); err != nil {
			return err
		}
	}

	for _, tag := range c.Tags {
		if _, ok := domain.LookupGenreTag(tag); !ok {
			return &application.ValidationError{
				Field:   "tags",
				Message: fmt.Sprintf("%q: %v", tag, application.ErrUnknownTag),
			}
		}
	}
	return nil
}

// Execute submits the draft through the form so the form's callback adds it
// to the catalog
func (c *CreateProjectCommand) Execute(ctx context.Context) (*CreateProjectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// Each command starts from an empty draft and leaves none behind on failure.
	form := c.ws.Form
	form.Reset()
	form.Open()
	form.SetName(c.Name)
	form.SetDescription(c.Description)
	form.SetCoverURL(c.CoverURL)
	for _, tag := range c.Tags {
		canonical, _ := domain.LookupGenreTag(tag)
		if !form.HasTag(canonical) {
			form.ToggleTag(canonical)
		}
	}
	if c.SuggestName {
		if err := form.SuggestName(ctx); err != nil {
			form.Reset()
			return nil, err
		}
	}

	if !form.Submit() {
		form.Reset()
		return nil, &application.ValidationError{
			Field:   "name",
			Message: "name is required",
		}
	}
	if err := c.ws.LastError(); err != nil {
		return nil, err
	}

	project := c.ws.LastCreated()
	return &CreateProjectResult{
		Project: project,
		Message: fmt.Sprintf("Created project: %s", project.Name),
	}, nil
}
