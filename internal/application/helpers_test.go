package application

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"vanta/internal/domain"
	"vanta/internal/ports"
)

// seqIDs hands out "id-1", "id-2", ...
func seqIDs() ports.IDGenerator {
	n := 0
	return ports.IDFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

type stubSuggester struct {
	name  string
	ideas []string
	err   error
}

func (s *stubSuggester) SuggestName(context.Context) (string, error) {
	return s.name, s.err
}

func (s *stubSuggester) SuggestIdeas(context.Context, string) ([]string, error) {
	return s.ideas, s.err
}

// fakeRepo is a ProjectRepository and ResultSource over plain slices
type fakeRepo struct {
	projects []domain.Project
	results  []domain.SearchResult
	err      error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		projects: domain.FixtureProjects(),
		results:  domain.FixtureSearchResults(),
	}
}

func (r *fakeRepo) List() ([]domain.Project, error) {
	if r.err != nil {
		return nil, r.err
	}
	return slices.Clone(r.projects), nil
}

func (r *fakeRepo) Get(id string) (*domain.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, &NotFoundError{Kind: "project", ID: id}
}

func (r *fakeRepo) Add(p domain.Project) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.projects {
		if existing.ID == p.ID {
			return ErrDuplicateID
		}
	}
	r.projects = append(r.projects, p)
	return nil
}

func (r *fakeRepo) Results() ([]domain.SearchResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	return slices.Clone(r.results), nil
}

var errBoom = errors.New("boom")
