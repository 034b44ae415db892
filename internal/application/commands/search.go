package commands

import (
	"context"

	"vanta/internal/application"
	"vanta/internal/domain"
)

// SearchResultSet contains the matches of one query
type SearchResultSet struct {
	Query    string
	Category domain.Category
	Results  []domain.SearchResult
	Message  string
}

// SearchCommand queries the search index
type SearchCommand struct {
	ws       *application.Workspace
	Query    string
	Category string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(ws *application.Workspace, query, category string) *SearchCommand {
	return &SearchCommand{
		ws:       ws,
		Query:    query,
		Category: category,
	}
}

// Validate checks the category
func (c *SearchCommand) Validate() error {
	if _, err := domain.ParseCategory(c.Category); err != nil {
		return &application.ValidationError{
			Field:   "category",
			Message: err.Error(),
		}
	}
	return nil
}

// Execute runs the search and narrows the matches by category
func (c *SearchCommand) Execute(ctx context.Context) (*SearchResultSet, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	category, _ := domain.ParseCategory(c.Category)
	c.ws.Search.SetCategory(category)
	if _, err := c.ws.Search.Search(c.Query); err != nil {
		return nil, err
	}

	results, err := c.ws.Search.Results()
	if err != nil {
		return nil, err
	}

	msg := "Start typing to search"
	if c.ws.Search.IsQuerying() {
		msg = c.ws.Search.Summary(len(results))
	}

	return &SearchResultSet{
		Query:    c.Query,
		Category: category,
		Results:  results,
		Message:  msg,
	}, nil
}

// SearchHints contains what the search page shows before a query
type SearchHints struct {
	Recent   []string
	Trending []string
}

// Hints returns the recent searches and trending tags
func Hints() SearchHints {
	return SearchHints{
		Recent:   domain.RecentSearches,
		Trending: domain.TrendingTags,
	}
}
