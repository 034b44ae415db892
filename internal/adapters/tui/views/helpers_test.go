package views

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"vanta/internal/adapters/memory"
	"vanta/internal/adapters/suggest"
	"vanta/internal/application"
)

func newTestWorkspace(t *testing.T) *application.Workspace {
	t.Helper()
	repo := memory.NewFixtureRepository()
	return application.NewWorkspace(application.Dependencies{
		Projects:  repo,
		Results:   repo,
		Suggester: suggest.NewCanned(suggest.WithRand(rand.New(rand.NewPCG(7, 7)))),
		IDs:       memory.TimeIDs{},
		Volume:    application.DefaultVolume,
		Progress:  application.DefaultProgress,
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

var ctx = context.Background()

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
