package application

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"vanta/internal/domain"
	"vanta/internal/ports"
)

// CreateFunc receives a submitted draft. It is the only link between the
// creation form and the catalog.
type CreateFunc func(draft domain.DraftProject)

// ProjectForm holds the draft of a new project and the form surface state
type ProjectForm struct {
	draft      domain.DraftProject
	open       bool
	dragActive bool

	vocabulary []string
	suggester  ports.Suggester
	onCreate   CreateFunc
	logger     *log.Logger
}

// NewProjectForm creates a closed, empty form that hands drafts to onCreate
func NewProjectForm(suggester ports.Suggester, onCreate CreateFunc, logger *log.Logger) *ProjectForm {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ProjectForm{
		vocabulary: domain.GenreTags,
		suggester:  suggester,
		onCreate:   onCreate,
		logger:     logger,
	}
}

// Draft returns a copy of the current draft
func (f *ProjectForm) Draft() domain.DraftProject {
	d := f.draft
	d.Tags = domain.NewTagSet(f.draft.Tags.Slice()...)
	return d
}

// SetName sets the draft name
func (f *ProjectForm) SetName(name string) {
	f.draft.Name = name
}

// SetDescription sets the draft description
func (f *ProjectForm) SetDescription(description string) {
	f.draft.Description = description
}

// SetCoverURL sets the draft cover, an opaque asset URI
func (f *ProjectForm) SetCoverURL(url string) {
	f.draft.CoverURL = url
}

// Vocabulary returns the tags the form offers
func (f *ProjectForm) Vocabulary() []string {
	return slices.Clone(f.vocabulary)
}

// ToggleTag flips membership of a vocabulary tag. Unknown tags are ignored
// and reported as false.
func (f *ProjectForm) ToggleTag(tag string) bool {
	if !slices.Contains(f.vocabulary, tag) {
		return false
	}
	f.draft.Tags.Toggle(tag)
	return true
}

// HasTag reports whether tag is selected
func (f *ProjectForm) HasTag(tag string) bool {
	return f.draft.Tags.Contains(tag)
}

// SuggestName overwrites the name with a suggestion
func (f *ProjectForm) SuggestName(ctx context.Context) error {
	name, err := f.suggester.SuggestName(ctx)
	if err != nil {
		return fmt.Errorf("failed to suggest name: %w", err)
	}
	f.draft.Name = name
	return nil
}

// CanSubmit reports whether the draft has a non-blank name
func (f *ProjectForm) CanSubmit() bool {
	return f.draft.Ready()
}

// Submit hands the draft to the callback, resets it and closes the form.
// It does nothing and returns false when the draft cannot be submitted.
func (f *ProjectForm) Submit() bool {
	if !f.CanSubmit() {
		return false
	}

	draft := f.Draft()
	f.logger.Debug("project submitted", "name", draft.Name, "tags", draft.Tags.Len())
	if f.onCreate != nil {
		f.onCreate(draft)
	}

	f.Reset()
	return true
}

// Reset discards the draft and closes the form
func (f *ProjectForm) Reset() {
	f.draft = domain.DraftProject{}
	f.dragActive = false
	f.open = false
}

// Open shows the form surface
func (f *ProjectForm) Open() {
	f.open = true
}

// Close hides the form surface. The draft is kept.
func (f *ProjectForm) Close() {
	f.open = false
	f.dragActive = false
}

// IsOpen reports whether the form surface is shown
func (f *ProjectForm) IsOpen() bool {
	return f.open
}

// DragEnter marks the drop zone active
func (f *ProjectForm) DragEnter() {
	f.dragActive = true
}

// DragOver keeps the drop zone active
func (f *ProjectForm) DragOver() {
	f.dragActive = true
}

// DragLeave marks the drop zone inactive
func (f *ProjectForm) DragLeave() {
	f.dragActive = false
}

// Drop ends a drag. Dropped files are not ingested.
func (f *ProjectForm) Drop() {
	f.dragActive = false
}

// DragActive reports whether a drag is over the drop zone
func (f *ProjectForm) DragActive() bool {
	return f.dragActive
}
