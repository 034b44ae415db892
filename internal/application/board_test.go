package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vanta/internal/domain"
	"vanta/internal/ports"
)

func newTestBoard(ideas ...string) *VisionBoard {
	return NewVisionBoard("1", "EP 2025", &stubSuggester{ideas: ideas}, seqIDs())
}

func TestVisionBoard_Seeded(t *testing.T) {
	b := newTestBoard()
	notes := b.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, domain.NoteTypeMood, notes[0].Type)
	assert.Equal(t, domain.NoteTypeIdea, notes[1].Type)
}

func TestVisionBoard_AddNote(t *testing.T) {
	t.Run("whitespace only leaves list unchanged", func(t *testing.T) {
		b := newTestBoard()
		before := b.Notes()

		_, ok := b.AddNote(domain.NoteTypeIdea, "  ")
		assert.False(t, ok)
		assert.Equal(t, before, b.Notes())
	})

	t.Run("appends exactly one note with the raw content", func(t *testing.T) {
		b := newTestBoard()
		before := len(b.Notes())

		note, ok := b.AddNote(domain.NoteTypeIdea, "Try reverb")
		require.True(t, ok)

		notes := b.Notes()
		require.Len(t, notes, before+1)
		assert.Equal(t, note, notes[len(notes)-1])
		assert.Equal(t, "Try reverb", note.Content)
		assert.Equal(t, domain.NoteTypeIdea, note.Type)
		assert.NotEmpty(t, note.ID)
	})

	t.Run("ids are unique", func(t *testing.T) {
		b := newTestBoard()
		seen := map[string]bool{}
		for _, n := range b.Notes() {
			seen[n.ID] = true
		}
		for range 5 {
			note, ok := b.AddNote(domain.NoteTypeNote, "x")
			require.True(t, ok)
			assert.False(t, seen[note.ID])
			seen[note.ID] = true
		}
	})
}

func TestVisionBoard_NewIDSkipsTakenIDs(t *testing.T) {
	// fixture notes hold "1" and "2"
	n := 0
	ids := ports.IDFunc(func() string {
		n++
		return []string{"1", "2", "3"}[min(n-1, 2)]
	})
	b := NewVisionBoard("p", "P", &stubSuggester{}, ids)

	note, ok := b.AddNote(domain.NoteTypeNote, "hello")
	require.True(t, ok)
	assert.Equal(t, "3", note.ID)
}

func TestVisionBoard_NewIDStuckGenerator(t *testing.T) {
	calls := 0
	ids := ports.IDFunc(func() string {
		calls++
		return "1"
	})
	b := NewVisionBoard("p", "P", &stubSuggester{}, ids)

	first, ok := b.AddNote(domain.NoteTypeNote, "a")
	require.True(t, ok)
	second, ok := b.AddNote(domain.NoteTypeNote, "b")
	require.True(t, ok)

	assert.Equal(t, "1-2", first.ID)
	assert.Equal(t, "1-3", second.ID)
	assert.Equal(t, 2*maxIDDraws, calls)
	assert.Len(t, b.Notes(), 4)
}

func TestVisionBoard_Compose(t *testing.T) {
	b := newTestBoard()
	assert.Equal(t, domain.NoteTypeNote, b.SelectedType())

	b.SelectType(domain.NoteTypeReference)
	note, ok := b.Compose("Kavinsky - Nightcall")
	require.True(t, ok)
	assert.Equal(t, domain.NoteTypeReference, note.Type)
}

func TestVisionBoard_DeleteNote(t *testing.T) {
	b := newTestBoard()

	assert.True(t, b.DeleteNote("1"))
	assert.Len(t, b.Notes(), 1)

	assert.False(t, b.DeleteNote("1"))
	assert.False(t, b.DeleteNote("missing"))
	assert.Len(t, b.Notes(), 1)
}

func TestVisionBoard_PromoteSuggestion(t *testing.T) {
	b := newTestBoard(domain.ProductionIdeas...)
	require.NoError(t, b.GenerateSuggestions(context.Background()))
	require.Equal(t, domain.ProductionIdeas, b.Pending())

	s := domain.ProductionIdeas[1]
	before := len(b.Notes())

	note, ok := b.PromoteSuggestion(s)
	require.True(t, ok)
	assert.Equal(t, domain.NoteTypeIdea, note.Type)
	assert.Equal(t, s, note.Content)
	assert.Len(t, b.Notes(), before+1)
	assert.NotContains(t, b.Pending(), s)
	assert.Len(t, b.Pending(), len(domain.ProductionIdeas)-1)

	_, ok = b.PromoteSuggestion(s)
	assert.False(t, ok)
	assert.Len(t, b.Notes(), before+1)
}

func TestVisionBoard_PromoteUnknownSuggestion(t *testing.T) {
	b := newTestBoard()
	_, ok := b.PromoteSuggestion("never suggested")
	assert.False(t, ok)
	assert.Len(t, b.Notes(), 2)
}

func TestVisionBoard_GenerateSuggestionsReplaces(t *testing.T) {
	stub := &stubSuggester{ideas: []string{"a", "b"}}
	b := NewVisionBoard("1", "EP 2025", stub, seqIDs())

	require.NoError(t, b.GenerateSuggestions(context.Background()))
	_, ok := b.PromoteSuggestion("a")
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, b.Pending())

	require.NoError(t, b.GenerateSuggestions(context.Background()))
	assert.Equal(t, []string{"a", "b"}, b.Pending())
}

func TestVisionBoard_GenerateSuggestionsError(t *testing.T) {
	b := NewVisionBoard("1", "EP 2025", &stubSuggester{err: errBoom}, seqIDs())
	err := b.GenerateSuggestions(context.Background())
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, b.Pending())
}

func TestVisionBoard_AddMood(t *testing.T) {
	b := newTestBoard()

	note, ok := b.AddMood("Calm & Meditative")
	require.True(t, ok)
	assert.Equal(t, domain.NoteTypeMood, note.Type)
	assert.Equal(t, "Calm & Meditative", note.Content)

	_, ok = b.AddMood("Not a mood")
	assert.False(t, ok)
	assert.Len(t, b.Notes(), 3)
}

func TestVisionBoard_WithNotes(t *testing.T) {
	b := NewVisionBoard("1", "EP", &stubSuggester{}, seqIDs(), WithNotes(nil))
	assert.Empty(t, b.Notes())
}
