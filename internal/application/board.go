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

// VisionBoard is the note-taking surface of a project
type VisionBoard struct {
	ProjectID   string
	ProjectName string

	notes    []domain.Note
	pending  []string
	selected domain.NoteType

	suggester ports.Suggester
	ids       ports.IDGenerator
	logger    *log.Logger
}

// BoardOption configures a VisionBoard
type BoardOption func(*VisionBoard)

// WithNotes replaces the starting notes
func WithNotes(notes []domain.Note) BoardOption {
	return func(b *VisionBoard) {
		b.notes = slices.Clone(notes)
	}
}

// WithBoardLogger sets the logger
func WithBoardLogger(l *log.Logger) BoardOption {
	return func(b *VisionBoard) {
		b.logger = l
	}
}

// NewVisionBoard creates a board for a project, seeded with the sample notes
func NewVisionBoard(projectID, projectName string, suggester ports.Suggester, ids ports.IDGenerator, opts ...BoardOption) *VisionBoard {
	b := &VisionBoard{
		ProjectID:   projectID,
		ProjectName: projectName,
		notes:       domain.FixtureNotes(),
		selected:    domain.NoteTypeNote,
		suggester:   suggester,
		ids:         ids,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Notes returns the notes in display order
func (b *VisionBoard) Notes() []domain.Note {
	return slices.Clone(b.notes)
}

// Pending returns the suggestions not yet promoted
func (b *VisionBoard) Pending() []string {
	return slices.Clone(b.pending)
}

// SelectType sets the type used by Compose
func (b *VisionBoard) SelectType(t domain.NoteType) {
	b.selected = t
}

// SelectedType returns the type used by Compose
func (b *VisionBoard) SelectedType() domain.NoteType {
	return b.selected
}

// CanAdd reports whether content would be accepted by AddNote
func (b *VisionBoard) CanAdd(content string) bool {
	return !domain.IsBlank(content)
}

// AddNote appends a note. Blank content is ignored and reported as false.
// The content is stored as given.
func (b *VisionBoard) AddNote(t domain.NoteType, content string) (domain.Note, bool) {
	if !b.CanAdd(content) {
		return domain.Note{}, false
	}

	note := domain.Note{
		ID:      b.newID(),
		Type:    t,
		Content: content,
	}
	b.notes = append(b.notes, note)
	b.logger.Debug("note added", "board", b.ProjectID, "id", note.ID, "type", t)
	return note, true
}

// Compose adds a note of the selected type
func (b *VisionBoard) Compose(content string) (domain.Note, bool) {
	return b.AddNote(b.selected, content)
}

// DeleteNote removes the note with id. Unknown ids are a no-op.
func (b *VisionBoard) DeleteNote(id string) bool {
	before := len(b.notes)
	b.notes = slices.DeleteFunc(b.notes, func(n domain.Note) bool { return n.ID == id })
	removed := len(b.notes) != before
	if removed {
		b.logger.Debug("note deleted", "board", b.ProjectID, "id", id)
	}
	return removed
}

// PromoteSuggestion turns a pending suggestion into an idea note and drops it
// from the pending list. A suggestion can be promoted at most once.
func (b *VisionBoard) PromoteSuggestion(text string) (domain.Note, bool) {
	idx := slices.Index(b.pending, text)
	if idx < 0 {
		return domain.Note{}, false
	}

	note := domain.Note{
		ID:      b.newID(),
		Type:    domain.NoteTypeIdea,
		Content: text,
	}
	b.notes = append(b.notes, note)
	b.pending = slices.DeleteFunc(b.pending, func(s string) bool { return s == text })
	b.logger.Debug("suggestion promoted", "board", b.ProjectID, "id", note.ID)
	return note, true
}

// GenerateSuggestions replaces the pending list with fresh ideas
func (b *VisionBoard) GenerateSuggestions(ctx context.Context) error {
	ideas, err := b.suggester.SuggestIdeas(ctx, b.ProjectName)
	if err != nil {
		return fmt.Errorf("failed to generate suggestions: %w", err)
	}
	b.pending = slices.Clone(ideas)
	b.logger.Debug("suggestions generated", "board", b.ProjectID, "count", len(ideas))
	return nil
}

// AddMood appends a mood note from the fixed vocabulary
func (b *VisionBoard) AddMood(mood string) (domain.Note, bool) {
	if !slices.Contains(domain.MoodVocabulary, mood) {
		return domain.Note{}, false
	}
	return b.AddNote(domain.NoteTypeMood, mood)
}

// maxIDDraws bounds how often the generator is retried before newID
// starts suffixing the last draw
const maxIDDraws = 8

// newID draws ids until one is free on this board. A generator that keeps
// repeating taken ids gets a numeric suffix appended instead.
func (b *VisionBoard) newID() string {
	var id string
	for range maxIDDraws {
		id = b.ids.NewID()
		if !b.hasNote(id) {
			return id
		}
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if !b.hasNote(candidate) {
			b.logger.Warn("id generator repeated taken ids", "board", b.ProjectID, "id", candidate)
			return candidate
		}
	}
}

func (b *VisionBoard) hasNote(id string) bool {
	return slices.ContainsFunc(b.notes, func(n domain.Note) bool { return n.ID == id })
}
