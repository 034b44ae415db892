package ports

import "context"

// Suggester produces inspiration for the creation form and the vision board.
// The default implementation picks from canned lists; a generative backend can
// replace it without changing callers.
type Suggester interface {
	// SuggestName proposes a project name
	SuggestName(ctx context.Context) (string, error)

	// SuggestIdeas proposes production ideas for a project
	SuggestIdeas(ctx context.Context, projectName string) ([]string, error)
}
