package domain

import (
	"slices"
	"testing"
)

func resultTitles(results []SearchResult) []string {
	titles := make([]string, len(results))
	for i, r := range results {
		titles[i] = r.Title
	}
	return titles
}

func TestMatchResults(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "title match",
			query: "neon",
			want:  []string{"Neon Dreams"},
		},
		{
			name:  "tag match",
			query: "dark",
			want:  []string{"Neon Dreams", "Dark Synthwave Collection", "Midnight City"},
		},
		{
			name:  "tag substring",
			query: "atmos",
			want:  []string{"Midnight City"},
		},
		{
			name:  "case insensitive",
			query: "RETRO",
			want:  []string{"Dark Synthwave Collection"},
		},
		{
			name:  "no match",
			query: "polka",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resultTitles(MatchResults(FixtureSearchResults(), tt.query))
			if !slices.Equal(got, tt.want) {
				t.Errorf("MatchResults(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestApplyCategoryFilter(t *testing.T) {
	matched := MatchResults(FixtureSearchResults(), "synthwave")

	tests := []struct {
		category Category
		want     []string
	}{
		{CategoryAll, []string{"Neon Dreams", "Dark Synthwave Collection"}},
		{CategoryTracks, []string{"Neon Dreams"}},
		{CategoryProjects, []string{"Dark Synthwave Collection"}},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			got := resultTitles(ApplyCategoryFilter(matched, tt.category))
			if !slices.Equal(got, tt.want) {
				t.Errorf("ApplyCategoryFilter(%s) = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"all", CategoryAll, false},
		{"", CategoryAll, false},
		{"tracks", CategoryTracks, false},
		{"Projects", CategoryProjects, false},
		{"albums", CategoryAll, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSearchResult_Variants(t *testing.T) {
	results := FixtureSearchResults()

	track := results[0]
	if track.Kind != ResultTrack || track.Track == nil || track.Project != nil {
		t.Fatalf("expected track variant, got %+v", track)
	}
	if got := track.Subtitle(); got != "EP 2025 • 3:24 • 2 hours ago" {
		t.Errorf("unexpected track subtitle %q", got)
	}

	project := results[1]
	if project.Kind != ResultProject || project.Project == nil || project.Track != nil {
		t.Fatalf("expected project variant, got %+v", project)
	}
	if got := project.Subtitle(); got != "8 tracks • 1 week ago" {
		t.Errorf("unexpected project subtitle %q", got)
	}
}
