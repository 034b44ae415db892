package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vanta/internal/domain"
)

func titles(results []domain.SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Title
	}
	return out
}

func TestSearchIndex_IdleState(t *testing.T) {
	s := NewSearchIndex(newFakeRepo(), nil)
	assert.False(t, s.IsQuerying())

	results, err := s.Search("")
	require.NoError(t, err)
	assert.False(t, s.IsQuerying())
	// The idle state still carries every record; the flag is what tells idle apart
	assert.Len(t, results, 3)
}

func TestSearchIndex_QueryingIsSeparateFromEmptyResults(t *testing.T) {
	s := NewSearchIndex(newFakeRepo(), nil)

	results, err := s.Search("polka")
	require.NoError(t, err)
	assert.True(t, s.IsQuerying())
	assert.Empty(t, results)
	assert.Equal(t, `0 results for "polka"`, s.Summary(len(results)))
}

func TestSearchIndex_CategoryComposesWithQuery(t *testing.T) {
	s := NewSearchIndex(newFakeRepo(), nil)

	_, err := s.Search("dark")
	require.NoError(t, err)

	tests := []struct {
		category domain.Category
		want     []string
	}{
		{domain.CategoryAll, []string{"Neon Dreams", "Dark Synthwave Collection", "Midnight City"}},
		{domain.CategoryTracks, []string{"Neon Dreams", "Midnight City"}},
		{domain.CategoryProjects, []string{"Dark Synthwave Collection"}},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			s.SetCategory(tt.category)
			assert.Equal(t, tt.category, s.Category())

			results, err := s.Results()
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(results))
		})
	}
}

func TestSearchIndex_Clear(t *testing.T) {
	s := NewSearchIndex(newFakeRepo(), nil)
	_, err := s.Search("neon")
	require.NoError(t, err)
	require.True(t, s.IsQuerying())

	s.Clear()
	assert.False(t, s.IsQuerying())
	assert.Equal(t, "", s.Query())
}

func TestSearchIndex_Summary(t *testing.T) {
	s := NewSearchIndex(newFakeRepo(), nil)
	_, err := s.Search("neon")
	require.NoError(t, err)
	assert.Equal(t, `1 result for "neon"`, s.Summary(1))
}

func TestSearchIndex_SourceError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errBoom
	s := NewSearchIndex(repo, nil)

	_, err := s.Search("x")
	assert.ErrorIs(t, err, errBoom)

	_, err = s.Results()
	assert.ErrorIs(t, err, errBoom)
}
