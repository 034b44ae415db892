// Package session assembles a Workspace from the configuration and the
// in-memory adapters. Every entry point starts from here.
package session

import (
	"github.com/charmbracelet/log"

	"vanta/internal/adapters/memory"
	"vanta/internal/adapters/suggest"
	"vanta/internal/application"
	"vanta/internal/config"
)

// New builds a workspace over the sample catalog
func New(cfg *config.Config, logger *log.Logger) *application.Workspace {
	repo := memory.NewFixtureRepository()
	suggester := suggest.NewCanned(
		suggest.WithNames(cfg.Suggestions.Names),
		suggest.WithIdeas(cfg.Suggestions.Ideas),
	)

	return application.NewWorkspace(application.Dependencies{
		Projects:  repo,
		Results:   repo,
		Suggester: suggester,
		IDs:       memory.TimeIDs{},
		Logger:    logger,
		ViewMode:  cfg.ViewMode(),
		Volume:    cfg.Player.Volume,
		Progress:  cfg.Player.Progress,
	})
}
