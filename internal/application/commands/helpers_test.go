package commands

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

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
		Suggester: suggest.NewCanned(suggest.WithRand(rand.New(rand.NewPCG(1, 2)))),
		IDs:       memory.TimeIDs{},
		Volume:    application.DefaultVolume,
		Progress:  application.DefaultProgress,
	})
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func isValidation(err error) bool {
	var ve *application.ValidationError
	return errors.As(err, &ve)
}

func intPtr(n int) *int { return &n }
