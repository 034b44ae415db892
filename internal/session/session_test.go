package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vanta/internal/config"
	"vanta/internal/domain"
)

func TestNew_Defaults(t *testing.T) {
	ws := New(config.DefaultConfig(), nil)

	projects, err := ws.Catalog.All()
	require.NoError(t, err)
	assert.Len(t, projects, 6)
	assert.Equal(t, domain.ViewModeGrid, ws.Catalog.ViewMode())

	snap := ws.Player.Snapshot()
	assert.Equal(t, 75, snap.VolumePercent)
	assert.Equal(t, 30, snap.ProgressPercent)
}

func TestNew_AppliesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.ViewMode = "list"
	cfg.Player.Volume = 10
	cfg.Suggestions.Names = []string{"Only Name"}
	cfg.Suggestions.Ideas = []string{"Only idea"}

	ws := New(cfg, nil)
	assert.Equal(t, domain.ViewModeList, ws.Catalog.ViewMode())
	assert.Equal(t, 10, ws.Player.Snapshot().VolumePercent)

	require.NoError(t, ws.Form.SuggestName(context.Background()))
	assert.Equal(t, "Only Name", ws.Form.Draft().Name)

	board, err := ws.DefaultBoard()
	require.NoError(t, err)
	require.NoError(t, board.GenerateSuggestions(context.Background()))
	assert.Contains(t, board.Pending(), "Only idea")
}
