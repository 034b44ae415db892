package domain

import (
	"slices"
	"strings"
	"testing"
)

func projectNames(projects []Project) []string {
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}
	return names
}

func TestFilterProjects(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "empty query returns all in order",
			query: "",
			want:  []string{"EP 2025", "Dark Synthwave", "Ambient Sessions", "Bass Experiments", "Vocal Chops", "Lo-Fi Beats"},
		},
		{
			name:  "name or description match",
			query: "synth",
			want:  []string{"EP 2025", "Dark Synthwave"},
		},
		{
			name:  "case insensitive",
			query: "LO-FI",
			want:  []string{"Lo-Fi Beats"},
		},
		{
			name:  "description only",
			query: "meditation",
			want:  []string{"Ambient Sessions"},
		},
		{
			name:  "no match",
			query: "polka",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := projectNames(FilterProjects(FixtureProjects(), tt.query))
			if !slices.Equal(got, tt.want) {
				t.Errorf("FilterProjects(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterProjects_SynthNameMatch(t *testing.T) {
	var byName []string
	for _, p := range FilterProjects(FixtureProjects(), "synth") {
		if strings.Contains(strings.ToLower(p.Name), "synth") {
			byName = append(byName, p.Name)
		}
	}
	if !slices.Equal(byName, []string{"Dark Synthwave"}) {
		t.Errorf("expected only Dark Synthwave to match on name, got %v", byName)
	}
}

func TestFilterProjects_Subsequence(t *testing.T) {
	source := FixtureProjects()
	for _, q := range []string{"", "a", "bass", "sessions", "zzz", "E"} {
		got := FilterProjects(source, q)

		// Every result appears in the source, in the same relative order
		idx := 0
		for _, p := range got {
			for idx < len(source) && source[idx].ID != p.ID {
				idx++
			}
			if idx == len(source) {
				t.Fatalf("query %q: %s is not an ordered member of the source", q, p.ID)
			}
			idx++
		}

		again := FilterProjects(got, q)
		if !slices.Equal(projectNames(again), projectNames(got)) {
			t.Errorf("query %q: filter is not idempotent: %v vs %v", q, again, got)
		}
	}
}

func TestFilterProjects_DoesNotMutate(t *testing.T) {
	source := FixtureProjects()
	before := slices.Clone(source)

	FilterProjects(source, "bass")

	if !slices.EqualFunc(source, before, func(a, b Project) bool { return a.ID == b.ID && a.Name == b.Name }) {
		t.Error("source slice was modified")
	}
}

func TestParseViewMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ViewMode
		wantErr bool
	}{
		{"grid", ViewModeGrid, false},
		{"LIST", ViewModeList, false},
		{"", ViewModeGrid, false},
		{"table", ViewModeGrid, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseViewMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseViewMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseViewMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestProject_Labels(t *testing.T) {
	if got := (Project{TrackCount: 1}).TrackLabel(); got != "1 track" {
		t.Errorf("expected '1 track', got %q", got)
	}
	if got := (Project{TrackCount: 0}).TrackLabel(); got != "0 tracks" {
		t.Errorf("expected '0 tracks', got %q", got)
	}
	if got := (Project{Name: "lo-fi"}).Initial(); got != "L" {
		t.Errorf("expected initial L, got %q", got)
	}
	if got := (Project{}).Initial(); got != "?" {
		t.Errorf("expected placeholder initial, got %q", got)
	}
}

func TestRecentProjects(t *testing.T) {
	recent := RecentProjects(FixtureProjects())
	if len(recent) != MaxRecentProjects {
		t.Fatalf("expected %d recent projects, got %d", MaxRecentProjects, len(recent))
	}
	if recent[3].Name != "Bass Experiments" || recent[3].Tracks != 12 {
		t.Errorf("unexpected fourth entry: %+v", recent[3])
	}

	if got := RecentProjects(nil); len(got) != 0 {
		t.Errorf("expected no entries for empty catalog, got %v", got)
	}
}
