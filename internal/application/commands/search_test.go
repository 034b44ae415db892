package commands

import (
	"context"
	"testing"

	"vanta/internal/domain"
)

func TestSearchCommand(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		category   string
		wantTitles []string
		wantMsg    string
	}{
		{
			name:    "idle",
			wantMsg: "Start typing to search",
			wantTitles: []string{
				"Neon Dreams", "Dark Synthwave Collection", "Midnight City",
			},
		},
		{
			name:       "matches title and tags",
			query:      "dark",
			wantTitles: []string{"Neon Dreams", "Dark Synthwave Collection", "Midnight City"},
			wantMsg:    `3 results for "dark"`,
		},
		{
			name:       "tracks only",
			query:      "dark",
			category:   "tracks",
			wantTitles: []string{"Neon Dreams", "Midnight City"},
			wantMsg:    `2 results for "dark"`,
		},
		{
			name:       "projects only",
			query:      "synthwave",
			category:   "projects",
			wantTitles: []string{"Dark Synthwave Collection"},
			wantMsg:    `1 result for "synthwave"`,
		},
		{
			name:    "no results still querying",
			query:   "polka",
			wantMsg: `0 results for "polka"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := newTestWorkspace(t)
			res, err := NewSearchCommand(ws, tt.query, tt.category).Execute(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(res.Results) != len(tt.wantTitles) {
				t.Fatalf("got %d results, want %d", len(res.Results), len(tt.wantTitles))
			}
			for i, r := range res.Results {
				if r.Title != tt.wantTitles[i] {
					t.Errorf("result %d = %q, want %q", i, r.Title, tt.wantTitles[i])
				}
			}
			if res.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", res.Message, tt.wantMsg)
			}
		})
	}
}

func TestSearchCommand_InvalidCategory(t *testing.T) {
	ws := newTestWorkspace(t)
	_, err := NewSearchCommand(ws, "dark", "albums").Execute(context.Background())
	if !isValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHints(t *testing.T) {
	h := Hints()
	if len(h.Recent) != len(domain.RecentSearches) {
		t.Errorf("recent = %v", h.Recent)
	}
	if len(h.Trending) != len(domain.TrendingTags) {
		t.Errorf("trending = %v", h.Trending)
	}
}
