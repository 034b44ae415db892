package application

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"vanta/internal/domain"
	"vanta/internal/ports"
)

// SearchIndex holds the search page state: the query, the querying flag and
// the category filter.
type SearchIndex struct {
	source ports.ResultSource
	logger *log.Logger

	query    string
	querying bool
	category domain.Category
}

// NewSearchIndex creates a search index over source
func NewSearchIndex(source ports.ResultSource, logger *log.Logger) *SearchIndex {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SearchIndex{
		source: source,
		logger: logger,
	}
}

// Search sets the query and returns the text-matched results, ignoring the
// category. An empty query puts the index back in its idle state.
func (s *SearchIndex) Search(query string) ([]domain.SearchResult, error) {
	s.query = query
	s.querying = len(query) > 0

	results, err := s.source.Results()
	if err != nil {
		return nil, fmt.Errorf("failed to load search results: %w", err)
	}

	matched := domain.MatchResults(results, query)
	s.logger.Debug("search", "query", query, "matches", len(matched))
	return matched, nil
}

// Results returns the current query's matches narrowed by the category
func (s *SearchIndex) Results() ([]domain.SearchResult, error) {
	results, err := s.source.Results()
	if err != nil {
		return nil, fmt.Errorf("failed to load search results: %w", err)
	}
	return domain.ApplyCategoryFilter(domain.MatchResults(results, s.query), s.category), nil
}

// SetCategory selects the category filter
func (s *SearchIndex) SetCategory(category domain.Category) {
	s.category = category
}

// Category returns the selected category filter
func (s *SearchIndex) Category() domain.Category {
	return s.category
}

// Query returns the current query text
func (s *SearchIndex) Query() string {
	return s.query
}

// IsQuerying reports whether a query is active. This is independent of
// whether the query produced any results.
func (s *SearchIndex) IsQuerying() bool {
	return s.querying
}

// Clear returns the index to idle
func (s *SearchIndex) Clear() {
	s.query = ""
	s.querying = false
}

// Summary renders the header shown above the results
func (s *SearchIndex) Summary(count int) string {
	return fmt.Sprintf("%s for %q", domain.Plural(count, "result"), s.query)
}
