package suggest

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"

	"vanta/internal/domain"
	"vanta/internal/ports"
)

// ErrNoCandidates is returned when a list to pick from is empty
var ErrNoCandidates = errors.New("no suggestion candidates configured")

// Canned implements ports.Suggester with fixed lists
type Canned struct {
	names []string
	ideas []string
	rng   *rand.Rand
}

var _ ports.Suggester = (*Canned)(nil)

// Option configures Canned
type Option func(*Canned)

// WithNames replaces the project name candidates
func WithNames(names []string) Option {
	return func(c *Canned) {
		if len(names) > 0 {
			c.names = slices.Clone(names)
		}
	}
}

// WithIdeas replaces the canned production ideas
func WithIdeas(ideas []string) Option {
	return func(c *Canned) {
		if len(ideas) > 0 {
			c.ideas = slices.Clone(ideas)
		}
	}
}

// WithRand sets the random source, mainly for deterministic tests
func WithRand(rng *rand.Rand) Option {
	return func(c *Canned) {
		c.rng = rng
	}
}

// NewCanned creates a suggester over the sample lists
func NewCanned(opts ...Option) *Canned {
	c := &Canned{
		names: slices.Clone(domain.ProjectNameIdeas),
		ideas: slices.Clone(domain.ProductionIdeas),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SuggestName picks a candidate name uniformly at random
func (c *Canned) SuggestName(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(c.names) == 0 {
		return "", ErrNoCandidates
	}
	return c.names[c.intN(len(c.names))], nil
}

// SuggestIdeas returns the canned ideas. The project name is not consulted.
func (c *Canned) SuggestIdeas(ctx context.Context, _ string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(c.ideas) == 0 {
		return nil, ErrNoCandidates
	}
	return slices.Clone(c.ideas), nil
}

func (c *Canned) intN(n int) int {
	if c.rng != nil {
		return c.rng.IntN(n)
	}
	return rand.IntN(n)
}
