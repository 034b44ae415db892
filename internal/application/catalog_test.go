package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vanta/internal/domain"
)

func names(projects []domain.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.Name
	}
	return out
}

func TestProjectCatalog_Filter(t *testing.T) {
	c := NewProjectCatalog(newFakeRepo(), seqIDs())

	all, err := c.Filter("")
	require.NoError(t, err)
	assert.Len(t, all, 6)

	synth, err := c.Filter("synth")
	require.NoError(t, err)
	assert.Equal(t, []string{"EP 2025", "Dark Synthwave"}, names(synth))

	none, err := c.Filter("nothing matches this")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProjectCatalog_QueryAndVisible(t *testing.T) {
	c := NewProjectCatalog(newFakeRepo(), seqIDs())

	c.SetQuery("beats")
	assert.Equal(t, "beats", c.Query())

	visible, err := c.Visible()
	require.NoError(t, err)
	assert.Equal(t, []string{"Lo-Fi Beats"}, names(visible))
}

func TestProjectCatalog_ViewModeDoesNotAffectFilter(t *testing.T) {
	c := NewProjectCatalog(newFakeRepo(), seqIDs())
	assert.Equal(t, domain.ViewModeGrid, c.ViewMode())

	grid, err := c.Filter("bass")
	require.NoError(t, err)

	c.SetViewMode(domain.ViewModeList)
	assert.Equal(t, domain.ViewModeList, c.ViewMode())

	list, err := c.Filter("bass")
	require.NoError(t, err)
	assert.Equal(t, grid, list)
}

func TestProjectCatalog_Add(t *testing.T) {
	repo := newFakeRepo()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := NewProjectCatalog(repo, seqIDs(), WithCatalogClock(func() time.Time { return now }))

	draft := domain.DraftProject{
		Name:        "  Night Drive  ",
		Description: "Outrun",
		Tags:        domain.NewTagSet("Synthwave", "Electronic"),
		CoverURL:    "/covers/night.png",
	}
	p, err := c.Add(draft)
	require.NoError(t, err)

	assert.Equal(t, "id-1", p.ID)
	assert.Equal(t, "Night Drive", p.Name)
	assert.Equal(t, "Outrun", p.Description)
	assert.Equal(t, "/covers/night.png", p.CoverURL)
	assert.Equal(t, 0, p.TrackCount)
	assert.Equal(t, "now", p.LastModified)
	assert.Equal(t, []string{"Synthwave", "Electronic"}, p.Tags)

	all, err := c.All()
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, "Night Drive", all[6].Name)
}

func TestProjectCatalog_AddRejectsBlankName(t *testing.T) {
	c := NewProjectCatalog(newFakeRepo(), seqIDs())

	_, err := c.Add(domain.DraftProject{Name: "   "})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "name", valErr.Field)
}

func TestProjectCatalog_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errBoom
	c := NewProjectCatalog(repo, seqIDs())

	_, err := c.Filter("")
	assert.ErrorIs(t, err, errBoom)

	_, err = c.Add(domain.DraftProject{Name: "X"})
	assert.ErrorIs(t, err, errBoom)
}

func TestCountLabel(t *testing.T) {
	assert.Equal(t, "1 project", CountLabel(1))
	assert.Equal(t, "6 projects", CountLabel(6))
	assert.Equal(t, "0 projects", CountLabel(0))
}
