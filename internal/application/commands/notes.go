package commands

import (
	"context"
	"fmt"

	"vanta/internal/application"
	"vanta/internal/domain"
)

// boardFor returns the board of projectID, or the first project's board when
// projectID is empty
func boardFor(ws *application.Workspace, projectID string) (*application.VisionBoard, error) {
	if projectID == "" {
		return ws.DefaultBoard()
	}
	return ws.Board(projectID)
}

// BoardResult contains the state of a vision board
type BoardResult struct {
	ProjectID   string
	ProjectName string
	Notes       []domain.Note
	Suggestions []string
	Message     string
}

func boardResult(b *application.VisionBoard, msg string) *BoardResult {
	return &BoardResult{
		ProjectID:   b.ProjectID,
		ProjectName: b.ProjectName,
		Notes:       b.Notes(),
		Suggestions: b.Pending(),
		Message:     msg,
	}
}

// ShowBoardCommand returns a board's notes and pending suggestions
type ShowBoardCommand struct {
	ws        *application.Workspace
	ProjectID string
}

// NewShowBoardCommand creates a new ShowBoardCommand
func NewShowBoardCommand(ws *application.Workspace, projectID string) *ShowBoardCommand {
	return &ShowBoardCommand{ws: ws, ProjectID: projectID}
}

// Execute runs the show board command
func (c *ShowBoardCommand) Execute(ctx context.Context) (*BoardResult, error) {
	b, err := boardFor(c.ws, c.ProjectID)
	if err != nil {
		return nil, err
	}
	return boardResult(b, fmt.Sprintf("%s: %s", b.ProjectName, domain.Plural(len(b.Notes()), "note"))), nil
}

// NoteResult contains the result of a note mutation
type NoteResult struct {
	Note    domain.Note
	Message string
}

// AddNoteCommand appends a note to a board
type AddNoteCommand struct {
	ws        *application.Workspace
	ProjectID string
	Type      string
	Content   string
}

// NewAddNoteCommand creates a new AddNoteCommand
func NewAddNoteCommand(ws *application.Workspace, projectID, noteType, content string) *AddNoteCommand {
	return &AddNoteCommand{
		ws:        ws,
		ProjectID: projectID,
		Type:      noteType,
		Content:   content,
	}
}

// Validate checks the note type and content
func (c *AddNoteCommand) Validate() error {
	if _, err := domain.ParseNoteType(c.Type); err != nil {
		return &application.ValidationError{
			Field:   "type",
			Message: err.Error(),
		}
	}
	return application.ValidateRequired("content", c.Content)
}

// Execute runs the add note command
func (c *AddNoteCommand) Execute(ctx context.Context) (*NoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	b, err := boardFor(c.ws, c.ProjectID)
	if err != nil {
		return nil, err
	}

	t, _ := domain.ParseNoteType(c.Type)
	note, ok := b.AddNote(t, c.Content)
	if !ok {
		return nil, application.ValidateRequired("content", "")
	}

	return &NoteResult{
		Note:    note,
		Message: fmt.Sprintf("Added %s to %s", t.Label(), b.ProjectName),
	}, nil
}

// DeleteNoteCommand removes a note from a board
type DeleteNoteCommand struct {
	ws        *application.Workspace
	ProjectID string
	NoteID    string
}

// NewDeleteNoteCommand creates a new DeleteNoteCommand
func NewDeleteNoteCommand(ws *application.Workspace, projectID, noteID string) *DeleteNoteCommand {
	return &DeleteNoteCommand{
		ws:        ws,
		ProjectID: projectID,
		NoteID:    noteID,
	}
}

// Validate checks the note ID
func (c *DeleteNoteCommand) Validate() error {
	return application.ValidateRequired("noteID", c.NoteID)
}

// Execute runs the delete note command. Deleting an unknown note reports
// not found and leaves the board unchanged.
func (c *DeleteNoteCommand) Execute(ctx context.Context) (*NoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	b, err := boardFor(c.ws, c.ProjectID)
	if err != nil {
		return nil, err
	}

	if !b.DeleteNote(c.NoteID) {
		return nil, &application.NotFoundError{Kind: "note", ID: c.NoteID}
	}

	return &NoteResult{
		Note:    domain.Note{ID: c.NoteID},
		Message: fmt.Sprintf("Deleted note %s", c.NoteID),
	}, nil
}

// AddMoodCommand adds a mood note from the vocabulary
type AddMoodCommand struct {
	ws        *application.Workspace
	ProjectID string
	Mood      string
}

// NewAddMoodCommand creates a new AddMoodCommand
func NewAddMoodCommand(ws *application.Workspace, projectID, mood string) *AddMoodCommand {
	return &AddMoodCommand{
		ws:        ws,
		ProjectID: projectID,
		Mood:      mood,
	}
}

// Validate checks the mood against the vocabulary
func (c *AddMoodCommand) Validate() error {
	return application.ValidateOneOf("mood", c.Mood, domain.MoodVocabulary)
}

// Execute runs the add mood command
func (c *AddMoodCommand) Execute(ctx context.Context) (*NoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	b, err := boardFor(c.ws, c.ProjectID)
	if err != nil {
		return nil, err
	}

	note, _ := b.AddMood(c.Mood)
	return &NoteResult{
		Note:    note,
		Message: fmt.Sprintf("Added mood %q to %s", c.Mood, b.ProjectName),
	}, nil
}

// GenerateSuggestionsCommand refreshes a board's pending suggestions
type GenerateSuggestionsCommand struct {
	ws        *application.Workspace
	ProjectID string
}

// NewGenerateSuggestionsCommand creates a new GenerateSuggestionsCommand
func NewGenerateSuggestionsCommand(ws *application.Workspace, projectID string) *GenerateSuggestionsCommand {
	return &GenerateSuggestionsCommand{ws: ws, ProjectID: projectID}
}

// Execute runs the generate command
func (c *GenerateSuggestionsCommand) Execute(ctx context.Context) (*BoardResult, error) {
	b, err := boardFor(c.ws, c.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := b.GenerateSuggestions(ctx); err != nil {
		return nil, err
	}
	return boardResult(b, domain.Plural(len(b.Pending()), "suggestion")), nil
}

// PromoteSuggestionCommand turns a pending suggestion into an idea note
type PromoteSuggestionCommand struct {
	ws         *application.Workspace
	ProjectID  string
	Suggestion string
}

// NewPromoteSuggestionCommand creates a new PromoteSuggestionCommand
func NewPromoteSuggestionCommand(ws *application.Workspace, projectID, suggestion string) *PromoteSuggestionCommand {
	return &PromoteSuggestionCommand{
		ws:         ws,
		ProjectID:  projectID,
		Suggestion: suggestion,
	}
}

// Validate checks the suggestion text
func (c *PromoteSuggestionCommand) Validate() error {
	return application.ValidateRequired("suggestion", c.Suggestion)
}

// Execute runs the promote command
func (c *PromoteSuggestionCommand) Execute(ctx context.Context) (*NoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	b, err := boardFor(c.ws, c.ProjectID)
	if err != nil {
		return nil, err
	}

	note, ok := b.PromoteSuggestion(c.Suggestion)
	if !ok {
		return nil, &application.NotFoundError{Kind: "suggestion", ID: fmt.Sprintf("%q", c.Suggestion)}
	}

	return &NoteResult{
		Note:    note,
		Message: fmt.Sprintf("Added idea to %s", b.ProjectName),
	}, nil
}
